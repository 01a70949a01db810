// Package validation handles validation of user flag and prompt input.
package validation

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"slices"
	"strings"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/utils/logging"
)

// ValidateDirectory validates that the directory exists, else creates it if desired.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	logging.D(3, "Statting directory %q...", dir)

	info, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) || !createIfNotFound {
			return nil, fmt.Errorf("failed to stat directory %q: %w", dir, err)
		}
		if err := os.MkdirAll(dir, consts.PermsGenericDir); err != nil {
			return nil, fmt.Errorf("directory %q does not exist and could not be created: %w", dir, err)
		}
		if info, err = os.Stat(dir); err != nil {
			return nil, fmt.Errorf("failed to stat directory %q after creation: %w", dir, err)
		}
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is a file, not a directory", dir)
	}
	return info, nil
}

// ValidateFile validates that the file exists and is not a directory.
func ValidateFile(f string) (os.FileInfo, error) {
	logging.D(3, "Statting file %q...", f)

	info, err := os.Stat(f)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file %q: %w", f, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("path %q is a directory, not a file", f)
	}
	return info, nil
}

// ValidateBinary resolves an external program on PATH (or as a direct path).
func ValidateBinary(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty program name", errconsts.ErrMissingBinary)
	}
	p, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", errconsts.ErrMissingBinary, name, err)
	}
	return p, nil
}

// LooksLikeURL reports whether the input is something the shell treats as a bare URL.
func LooksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "www.")
}

// ValidateURL checks a download or QR target, normalizing "www." input to https.
func ValidateURL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: missing URL", errconsts.ErrInvalidInput)
	}
	if strings.HasPrefix(s, "www.") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid URL: %v", errconsts.ErrInvalidInput, s, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q must start with http:// or https://", errconsts.ErrInvalidInput, s)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", errconsts.ErrInvalidInput, s)
	}
	return s, nil
}

// ValidatePrivacy returns a supported privacy status, defaulting to private.
func ValidatePrivacy(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	if slices.Contains(consts.PrivacyStatuses[:], p) {
		return p
	}
	if p != "" {
		logging.D(1, "Unsupported privacy %q, using %q", p, consts.PrivacyPrivate)
	}
	return consts.PrivacyPrivate
}

// IsPrivacy reports whether p names a privacy status.
func IsPrivacy(p string) bool {
	return slices.Contains(consts.PrivacyStatuses[:], strings.ToLower(strings.TrimSpace(p)))
}

