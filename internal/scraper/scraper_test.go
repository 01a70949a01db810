package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseDomain(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"https://www.youtube.com/watch?v=x": "youtube.com",
		"https://m.youtube.com/":            "youtube.com",
		"https://news.bbc.co.uk/story":      "bbc.co.uk",
	}
	for in, want := range tests {
		got, err := baseDomain(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := baseDomain("not a url")
	assert.Error(t, err)
}

func TestWriteNetscape(t *testing.T) {
	t.Parallel()
	exp := time.Unix(1700000000, 0)
	cookies := []*http.Cookie{
		{Name: "SID", Value: "abc", Domain: ".youtube.com", Path: "/", Secure: true, Expires: exp},
		{Name: "PREF", Value: "f1"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeNetscape(&buf, cookies, "youtube.com"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "# Netscape HTTP Cookie File", lines[0])
	assert.Equal(t, ".youtube.com\tTRUE\t/\tTRUE\t1700000000\tSID\tabc", lines[len(lines)-2])
	assert.Equal(t, "youtube.com\tFALSE\t/\tFALSE\t0\tPREF\tf1", lines[len(lines)-1])
}

func TestExportForURL(t *testing.T) {
	t.Parallel()
	calls := 0
	cm := NewCookieManagerWithReader(func(_ context.Context, domain string) ([]*http.Cookie, error) {
		calls++
		if domain != "youtube.com" {
			return nil, nil
		}
		return []*http.Cookie{{Name: "SID", Value: "abc", Domain: ".youtube.com"}}, nil
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "cookies.txt")

	got, err := cm.ExportForURL(context.Background(), "https://www.youtube.com/watch?v=x", path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SID\tabc")

	// Cached on the second lookup.
	_, err = cm.ExportForURL(context.Background(), "https://youtube.com/shorts/y", path)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	got, err = cm.ExportForURL(context.Background(), "https://vimeo.com/1", filepath.Join(dir, "none.txt"))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoFileExists(t, filepath.Join(dir, "none.txt"))
}

func TestGetCookiesReaderError(t *testing.T) {
	t.Parallel()
	cm := NewCookieManagerWithReader(func(context.Context, string) ([]*http.Cookie, error) {
		return nil, errors.New("no browsers")
	})
	cookies, err := cm.GetCookies(context.Background(), "https://youtube.com")
	require.NoError(t, err)
	assert.Empty(t, cookies)
}

func TestPageTitle(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		switch r.URL.Path {
		case "/notitle":
			fmt.Fprint(w, "<html><body>hi</body></html>")
		default:
			fmt.Fprint(w, "<html><head><title>  My Page  </title></head><body></body></html>")
		}
	}))
	defer srv.Close()

	title, err := PageTitle(srv.URL+"/page", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "My Page", title)

	_, err = PageTitle(srv.URL+"/notitle", 5*time.Second)
	assert.Error(t, err)
}
