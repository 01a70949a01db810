package validation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"ytd/internal/domain/consts"
	"ytd/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateSettingsModel validates correct Settings values.
//
// Creates the artifact and credentials directories when they are missing.
func ValidateSettingsModel(s *models.Settings) error {
	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid settings: %w", err)
	}

	if _, err := ValidateDirectory(s.DownloadDir, true); err != nil {
		return fmt.Errorf("invalid download directory %q in settings: %w", s.DownloadDir, err)
	}
	if err := os.MkdirAll(s.CredentialsDir, consts.PermsCredentialsDir); err != nil {
		return fmt.Errorf("failed to create credentials directory %q: %w", s.CredentialsDir, err)
	}
	if _, err := ValidateDirectory(s.CredentialsDir, false); err != nil {
		return fmt.Errorf("invalid credentials directory %q in settings: %w", s.CredentialsDir, err)
	}
	return nil
}
