package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"ytd/internal/domain/errconsts"
	"ytd/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakePrompter struct {
	answers []string
	asked   int
}

func (f *fakePrompter) Ask(_ context.Context, _ string) (string, error) {
	if f.asked >= len(f.answers) {
		return "", io.EOF
	}
	ans := f.answers[f.asked]
	f.asked++
	return ans, nil
}

// tokenServer answers both code exchanges and refreshes.
func tokenServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.NoError(t, r.ParseForm())

		access := "exchanged"
		if r.Form.Get("grant_type") == "refresh_token" {
			access = "refreshed"
		} else if r.Form.Get("code") != "good-code" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":%q,"token_type":"Bearer","refresh_token":"r1","expires_in":3600}`, access)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testSettings(t *testing.T, tokenURL string) *models.Settings {
	t.Helper()
	dir := t.TempDir()
	secrets := filepath.Join(dir, "client_secrets.json")
	body := fmt.Sprintf(`{"installed":{"client_id":"id","client_secret":"secret","auth_uri":"https://accounts.example/auth","token_uri":%q,"redirect_uris":["http://localhost"]}}`, tokenURL)
	require.NoError(t, os.WriteFile(secrets, []byte(body), 0o600))

	return &models.Settings{
		CredentialsDir: filepath.Join(dir, "credentials"),
		ClientSecrets:  secrets,
		RedirectURL:    "http://localhost:8080/",
	}
}

func TestMissingDescriptorIsUnavailable(t *testing.T) {
	t.Parallel()
	p := &fakePrompter{}
	s := &models.Settings{
		CredentialsDir: t.TempDir(),
		ClientSecrets:  filepath.Join(t.TempDir(), "missing.json"),
		RedirectURL:    "http://localhost:8080/",
	}
	a := New(s, p, io.Discard)

	assert.False(t, a.Available())
	_, err := a.Client(context.Background(), models.IntegrationYouTube)
	assert.ErrorIs(t, err, errconsts.ErrAuthUnavailable)
	assert.Zero(t, p.asked)
}

func TestInteractiveFlowSavesToken(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := tokenServer(t, &hits)
	s := testSettings(t, srv.URL+"/token")
	p := &fakePrompter{answers: []string{"http://localhost:8080/?code=good-code&scope=x"}}
	a := New(s, p, io.Discard)

	require.True(t, a.Available())
	require.False(t, a.Authenticated(models.IntegrationGCS))

	ts, err := a.TokenSource(context.Background(), models.IntegrationGCS)
	require.NoError(t, err)
	tok, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "exchanged", tok.AccessToken)
	assert.Equal(t, 1, p.asked)

	assert.True(t, a.Authenticated(models.IntegrationGCS))
	info, err := os.Stat(s.TokenPath(models.IntegrationGCS))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A second call reuses the stored token without prompting.
	_, err = a.TokenSource(context.Background(), models.IntegrationGCS)
	require.NoError(t, err)
	assert.Equal(t, 1, p.asked)
	assert.Equal(t, int32(1), hits.Load())
}

func TestExpiredTokenIsRefreshedAndPersisted(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := tokenServer(t, &hits)
	s := testSettings(t, srv.URL+"/token")
	a := New(s, &fakePrompter{}, io.Discard)

	stale := &oauth2.Token{AccessToken: "stale", RefreshToken: "r0", Expiry: time.Now().Add(-time.Hour)}
	require.NoError(t, saveToken(s.TokenPath(models.IntegrationYouTube), stale))

	_, err := a.TokenSource(context.Background(), models.IntegrationYouTube)
	require.NoError(t, err)

	var stored oauth2.Token
	data, err := os.ReadFile(s.TokenPath(models.IntegrationYouTube))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, "refreshed", stored.AccessToken)
}

func TestFailedExchangeRequiresAuth(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := tokenServer(t, &hits)
	s := testSettings(t, srv.URL+"/token")
	a := New(s, &fakePrompter{answers: []string{"bad-code"}}, io.Discard)

	err := a.Authorize(context.Background(), models.IntegrationYouTube)
	assert.ErrorIs(t, err, errconsts.ErrAuthRequired)
	assert.False(t, a.Authenticated(models.IntegrationYouTube))
}

func TestReset(t *testing.T) {
	t.Parallel()
	s := &models.Settings{CredentialsDir: t.TempDir()}
	a := New(s, nil, io.Discard)

	require.NoError(t, saveToken(s.TokenPath(models.IntegrationYouTube), &oauth2.Token{AccessToken: "x"}))
	require.True(t, a.Authenticated(models.IntegrationYouTube))

	require.NoError(t, a.Reset(models.IntegrationYouTube))
	assert.False(t, a.Authenticated(models.IntegrationYouTube))
	assert.NoError(t, a.Reset(models.IntegrationYouTube))
}

func TestParseAuthCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"4/abc", "4/abc", nil},
		{"http://localhost:8080/?state=s1&code=4%2Fxyz&scope=a", "4/xyz", nil},
		{"code=plain", "plain", nil},
		{"http://localhost:8080/?state=other&code=c", "", errconsts.ErrAuthRequired},
		{"http://localhost:8080/?error=access_denied", "", errconsts.ErrAuthRequired},
		{"", "", errconsts.ErrInvalidInput},
	}
	for _, tt := range tests {
		got, err := parseAuthCode(tt.in, "s1")
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
