package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ytd/internal/domain/consts"
	"ytd/internal/utils/logging"
	"ytd/internal/validation"
)

// WriteJSONFile writes v as indented JSON, creating the parent directory if needed.
func WriteJSONFile(path string, v any, perm os.FileMode) error {
	if _, err := validation.ValidateDirectory(filepath.Dir(path), true); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.E("failed to close file %v due to error: %v", path, err)
		}
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	// OpenFile keeps the mode of an existing file.
	return os.Chmod(path, perm)
}

// WriteLine overwrites path with a single line of text.
func WriteLine(path, line string) error {
	if _, err := validation.ValidateDirectory(filepath.Dir(path), true); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(line+"\n"), consts.PermsSettingsFile)
}
