package downloads

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"ytd/internal/domain/errconsts"
	"ytd/internal/models"

	"github.com/lrstanley/go-ytdlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeYtdlp writes a shell script standing in for yt-dlp.
func fakeYtdlp(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}
	p := filepath.Join(t.TempDir(), "yt-dlp")
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return p
}

func TestVideoReportsSavedFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "Some_Title.mp4")
	bin := fakeYtdlp(t, fmt.Sprintf("printf 'data' > %q\necho %q", out, out))

	d := New(&models.Settings{DownloadDir: dir, YtdlpPath: bin}, nil, nil)
	res, err := d.Video(context.Background(), "https://www.youtube.com/watch?v=abc")
	require.NoError(t, err)
	assert.Equal(t, out, res.Path)
	assert.Equal(t, "Some_Title", res.Title)
}

func TestVideoFailure(t *testing.T) {
	dir := t.TempDir()
	bin := fakeYtdlp(t, "echo 'ERROR: Video unavailable' >&2\nexit 1")

	d := New(&models.Settings{DownloadDir: dir, YtdlpPath: bin}, nil, nil)
	_, err := d.Video(context.Background(), "https://www.youtube.com/watch?v=gone")
	require.Error(t, err)
	assert.ErrorIs(t, err, errconsts.ErrDownloadFailed)
}

func TestAudioExtractsMP3(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(t.TempDir(), "args")
	out := filepath.Join(dir, "Song.mp3")
	bin := fakeYtdlp(t, fmt.Sprintf("echo \"$@\" > %q\nprintf 'data' > %q\necho %q", argsFile, out, out))

	d := New(&models.Settings{DownloadDir: dir, YtdlpPath: bin}, nil, nil)
	res, err := d.Audio(context.Background(), "https://www.youtube.com/watch?v=abc")
	require.NoError(t, err)
	assert.Equal(t, out, res.Path)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Contains(t, string(args), "--extract-audio")
	assert.Contains(t, string(args), "--audio-format mp3")
	assert.Contains(t, string(args), "--audio-quality 192")
}

func TestInfoParsesJSON(t *testing.T) {
	bin := fakeYtdlp(t, `echo '{"title":"Clip","channel":"Chan","duration":212,"view_count":42,"upload_date":"20091025"}'`)

	d := New(&models.Settings{DownloadDir: t.TempDir(), YtdlpPath: bin}, nil, nil)
	info, err := d.Info(context.Background(), "https://www.youtube.com/watch?v=abc")
	require.NoError(t, err)
	assert.Equal(t, "Clip", info.Title)
	assert.Equal(t, "Chan", info.ChannelName())
	assert.Equal(t, int64(42), info.ViewCount)
	assert.InDelta(t, 212.0, info.Duration, 0.001)
}

func TestParseInfo(t *testing.T) {
	t.Parallel()
	info, err := parseInfo("[info] noise\n{\"title\":\"T\",\"uploader\":\"U\"}\n")
	require.NoError(t, err)
	assert.Equal(t, "U", info.ChannelName())

	_, err = parseInfo("not json")
	assert.Error(t, err)

	_, err = parseInfo(`{"duration":3}`)
	assert.Error(t, err)
}

func TestOutputPathFromStdout(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	mp4 := filepath.Join(dir, "a.mp4")
	require.NoError(t, os.WriteFile(mp4, []byte("x"), 0o644))

	stdout := strings.Join([]string{"[download] 100%", mp4, filepath.Join(dir, "ghost.mp4"), ""}, "\n")
	assert.Equal(t, mp4, outputPathFromStdout(stdout, []string{".mp4"}))
	assert.Empty(t, outputPathFromStdout(stdout, []string{".mp3"}))
}

func TestNewestArtifact(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	start := time.Now()

	oldPath := filepath.Join(dir, "old.mp3")
	require.NoError(t, os.WriteFile(oldPath, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(oldPath, start.Add(-time.Hour), start.Add(-time.Hour)))

	assert.Empty(t, newestArtifact(dir, []string{".mp3"}, start))

	newPath := filepath.Join(dir, "new.mp3")
	require.NoError(t, os.WriteFile(newPath, []byte("x"), 0o644))
	assert.Equal(t, newPath, newestArtifact(dir, []string{".mp3"}, start))
}

func TestVerifyDownload(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.mp4")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	assert.Error(t, verifyDownload(empty))
	assert.Error(t, verifyDownload(dir))
	assert.Error(t, verifyDownload(filepath.Join(dir, "missing.mp4")))
}

func TestDescribeFailure(t *testing.T) {
	t.Parallel()
	res := &ytdlp.Result{Stderr: "WARNING: x\nERROR: Sign in to confirm you're not a bot"}
	err := describeFailure("https://www.youtube.com/watch?v=x", res, errors.New("exit status 1"))
	assert.Contains(t, err.Error(), "www.youtube.com flagged the request as a bot")

	err = describeFailure("https://a.b", &ytdlp.Result{Stderr: "ERROR: Unsupported URL"}, errors.New("exit status 1"))
	assert.Equal(t, "ERROR: Unsupported URL", err.Error())

	err = describeFailure("https://a.b", nil, errors.New("exec: not found"))
	assert.Equal(t, "exec: not found", err.Error())
}

func TestProgressLine(t *testing.T) {
	t.Parallel()
	line := progressLine("clip", 500_000, 1_000_000, 75)
	assert.Contains(t, line, " 50.0% of 1.0 MB")
	assert.Contains(t, line, "ETA 1:15")

	assert.Contains(t, progressLine("clip", 2000, 0, 0), "2.0 kB")
	assert.Contains(t, progressLine(strings.Repeat("n", 60), 1, 2, 0), strings.Repeat("n", 37)+"...")
}
