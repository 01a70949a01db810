package downloads

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"ytd/internal/utils/logging"

	"github.com/lrstanley/go-ytdlp"
)

var botPhrases = []string{
	"confirm you’re not a bot", // Curly apostrophe (used by some tube sites)
	"confirm you're not a bot",
	"not a robot",
	"sign in to confirm",
}

// describeFailure builds the error for a failed yt-dlp run from its stderr.
func describeFailure(u string, res *ytdlp.Result, err error) error {
	msg := err.Error()
	if res != nil && res.Stderr != "" {
		msg = lastLine(res.Stderr)
	}

	lower := strings.ToLower(msg)
	for _, p := range botPhrases {
		if strings.Contains(lower, p) {
			host := u
			if parsed, pErr := url.Parse(u); pErr == nil {
				host = parsed.Hostname()
			}
			return fmt.Errorf("%s flagged the request as a bot, try cookie-source 'browser': %s", host, msg)
		}
	}
	return fmt.Errorf("%s", msg)
}

// outputPathFromStdout returns the last printed line that names an existing file with one of exts.
func outputPathFromStdout(stdout string, exts []string) string {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || !hasExt(line, exts) {
			continue
		}
		if _, err := os.Stat(line); err == nil {
			return line
		}
	}
	return ""
}

// newestArtifact returns the most recently modified file in dir with one of exts, written at or after since.
func newestArtifact(dir string, exts []string, since time.Time) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.D(1, "Could not read %q: %v", dir, err)
		return ""
	}

	var (
		best     string
		bestTime time.Time
	)
	for _, e := range entries {
		if e.IsDir() || !hasExt(e.Name(), exts) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		mod := info.ModTime()
		if mod.Before(since.Add(-time.Second)) || mod.Before(bestTime) {
			continue
		}
		best, bestTime = filepath.Join(dir, e.Name()), mod
	}
	return best
}

// verifyDownload checks the downloaded file is a non-empty regular file.
func verifyDownload(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file verification failed: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("output path %q is a directory", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("downloaded file is empty: %s", path)
	}
	return nil
}

func hasExt(name string, exts []string) bool {
	return slices.Contains(exts, strings.ToLower(filepath.Ext(name)))
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

// lastJSONLine returns the last line that looks like a JSON object, or the whole input.
func lastJSONLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "{") {
			return lines[i]
		}
	}
	return s
}
