// Package paths initializes ytd's program filepaths.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ytd/internal/domain/consts"

	"github.com/mitchellh/go-homedir"
)

const (
	yDir       = ".ytd"
	ytdLogFile = "ytd.log"
)

// ProgramFiles holds the per-user program locations.
type ProgramFiles struct {
	HomeDir     string
	LogFilePath string
}

// InitProgFiles resolves (and creates if needed) the per-user program directory ~/.ytd.
func InitProgFiles() (ProgramFiles, error) {
	userHomeDir, err := homedir.Dir()
	if err != nil {
		return ProgramFiles{}, errors.New("failed to get home directory")
	}

	home := filepath.Join(userHomeDir, yDir)
	if _, err := os.Stat(home); os.IsNotExist(err) {
		if err := os.MkdirAll(home, consts.PermsGenericDir); err != nil {
			return ProgramFiles{}, fmt.Errorf("failed to make directories: %w", err)
		}
	}

	return ProgramFiles{
		HomeDir:     home,
		LogFilePath: filepath.Join(home, ytdLogFile),
	}, nil
}

// Expand resolves a leading "~" and cleans the path. Empty input stays empty.
func Expand(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("failed to expand path %q: %w", p, err)
	}
	return filepath.Clean(expanded), nil
}
