package validation_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ytd/internal/domain/errconsts"
	"ytd/internal/models"
	"ytd/internal/validation"
)

// TestValidateDirectory runs checks for directory validation --------------------------------------------------------------------
func TestValidateDirectory_ExistingDirectory(t *testing.T) {
	tmp := t.TempDir()

	info, err := validation.ValidateDirectory(tmp, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if info == nil {
		t.Fatalf("expected file info, got nil")
	}
}

func TestValidateDirectory_CreateIfMissing(t *testing.T) {
	tmp := t.TempDir()
	missing := tmp + "/new"
	invalidName := tmp + "/bad\x00name"

	// Missing, create it
	info, err := validation.ValidateDirectory(missing, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(missing); statErr != nil {
		t.Fatalf("directory was not created")
	}
	if info == nil {
		t.Fatalf("expected file info, got nil")
	}

	// Missing, invalid directory name
	info, err = validation.ValidateDirectory(invalidName, true)
	if err == nil {
		t.Fatalf("expected error, got: %v", err)
	}
	if info != nil {
		t.Fatalf("expected nil file info, got info")
	}
}

func TestValidateDirectory_ErrorIfMissing(t *testing.T) {
	tmp := t.TempDir()
	missing := filepath.Join(tmp, "nope")

	if _, err := validation.ValidateDirectory(missing, false); err == nil {
		t.Fatalf("expected error for missing directory without create flag")
	}
	if _, statErr := os.Stat(missing); statErr == nil {
		t.Fatalf("directory should not have been created")
	}
}

func TestValidateDirectory_PathIsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(f, []byte("hello"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if _, err := validation.ValidateDirectory(f, false); err == nil {
		t.Fatalf("expected error when path is a file")
	}
}

// TestValidateFile runs checks for file validation -----------------------------------------------------------------------------
func TestValidateFile_ExistingFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(f, []byte("hello"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	info, err := validation.ValidateFile(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil {
		t.Fatalf("expected file info, got nil")
	}
}

func TestValidateFile_Missing(t *testing.T) {
	f := filepath.Join(t.TempDir(), "does_not_exist.txt")

	if _, err := validation.ValidateFile(f); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidateFile_PathIsDirectory(t *testing.T) {
	tmp := t.TempDir()

	if _, err := validation.ValidateFile(tmp); err == nil {
		t.Fatalf("expected error when path is a directory")
	}
}

// TestValidateURL checks URL normalization and rejection ------------------------------------------------------------------------
func TestValidateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{in: "  http://youtu.be/dQw4w9WgXcQ ", want: "http://youtu.be/dQw4w9WgXcQ"},
		{in: "www.youtube.com/watch?v=abc", want: "https://www.youtube.com/watch?v=abc"},
		{in: "", wantErr: true},
		{in: "ftp://example.com/file", wantErr: true},
		{in: "not a url", wantErr: true},
		{in: "https://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := validation.ValidateURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ValidateURL(%q): expected error, got %q", tt.in, got)
			}
			if !errors.Is(err, errconsts.ErrInvalidInput) {
				t.Fatalf("ValidateURL(%q): expected ErrInvalidInput, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ValidateURL(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ValidateURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLooksLikeURL(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"http://a.b", "https://a.b/c", "www.example.com"} {
		if !validation.LooksLikeURL(in) {
			t.Fatalf("expected %q to look like a URL", in)
		}
	}
	for _, in := range []string{"video", "example.com", "", "htp://x"} {
		if validation.LooksLikeURL(in) {
			t.Fatalf("expected %q not to look like a URL", in)
		}
	}
}

func TestValidatePrivacy(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":         "private",
		"PUBLIC":   "public",
		"unlisted": "unlisted",
		" private ": "private",
		"friends":  "private",
	}
	for in, want := range cases {
		if got := validation.ValidatePrivacy(in); got != want {
			t.Fatalf("ValidatePrivacy(%q) = %q, want %q", in, got, want)
		}
	}
	if validation.IsPrivacy("friends") {
		t.Fatalf("IsPrivacy accepted an unknown status")
	}
}

func TestValidateBinary(t *testing.T) {
	t.Parallel()

	if _, err := validation.ValidateBinary(""); !errors.Is(err, errconsts.ErrMissingBinary) {
		t.Fatalf("expected ErrMissingBinary for empty name, got %v", err)
	}
	if _, err := validation.ValidateBinary("ytd-definitely-not-installed-binary"); !errors.Is(err, errconsts.ErrMissingBinary) {
		t.Fatalf("expected ErrMissingBinary for unknown program, got %v", err)
	}
}

// TestDeduplicateSliceEntries checks order-preserving deduplication -------------------------------------------------------------
func TestDeduplicateSliceEntries(t *testing.T) {
	t.Parallel()

	got := validation.DeduplicateSliceEntries([]string{"cats", "dogs", "cats", "birds", "dogs"})
	want := []string{"cats", "dogs", "birds"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if got := validation.SplitList(" a, ,b,, c "); len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("SplitList returned %v", got)
	}
}

// TestValidateSettingsModel checks struct validation and directory creation -----------------------------------------------------
func TestValidateSettingsModel(t *testing.T) {
	tmp := t.TempDir()

	s := &models.Settings{
		DownloadDir:    filepath.Join(tmp, "downloads"),
		CredentialsDir: filepath.Join(tmp, "credentials"),
		ClientSecrets:  filepath.Join(tmp, "client_secrets.json"),
		YtdlpPath:      "yt-dlp",
		FFmpegPath:     "ffmpeg",
		FFprobePath:    "ffprobe",
		RedirectURL:    "http://localhost:8080/",
	}
	if err := validation.ValidateSettingsModel(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, dir := range []string{s.DownloadDir, s.CredentialsDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q to be created", dir)
		}
	}

	bad := *s
	bad.RedirectURL = ""
	bad.DebugLevel = 9
	if err := validation.ValidateSettingsModel(&bad); err == nil {
		t.Fatalf("expected error for missing redirect URL and debug level out of range")
	}
}
