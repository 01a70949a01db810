package cfg

import (
	"fmt"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/domain/paths"
	"ytd/internal/models"
	"ytd/internal/parsing"
	"ytd/internal/utils/logging"
	"ytd/internal/validation"
)

// defaultSettings returns the container layout used when nothing overrides it.
func defaultSettings(logFile string) models.Settings {
	return models.Settings{
		DownloadDir:    consts.DefaultDownloadDir,
		CredentialsDir: consts.DefaultCredentialsDir,
		ClientSecrets:  consts.DefaultClientSecrets,
		LogFile:        logFile,
		YtdlpPath:      consts.DefaultYtdlpBin,
		FFmpegPath:     consts.DefaultFFmpegBin,
		FFprobePath:    consts.DefaultFFprobeBin,
		RedirectURL:    consts.DefaultRedirectURL,
	}
}

// BuildSettings resolves flags, environment and config file values into validated Settings.
func BuildSettings(v parsing.ConfigSource, logFile string) (*models.Settings, error) {
	s := defaultSettings(logFile)
	if err := parsing.LoadViperIntoStruct(v, &s); err != nil {
		return nil, err
	}

	for _, p := range []*string{&s.DownloadDir, &s.CredentialsDir, &s.ClientSecrets, &s.LogFile} {
		expanded, err := paths.Expand(*p)
		if err != nil {
			return nil, err
		}
		*p = expanded
	}

	if err := validation.ValidateSettingsModel(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", errconsts.ErrInvalidConfig, err)
	}
	return &s, nil
}

// checkPrograms resolves the external programs. A missing ffprobe only disables stitch pre-flight checks.
func checkPrograms(s *models.Settings) error {
	for _, p := range []*string{&s.YtdlpPath, &s.FFmpegPath} {
		resolved, err := validation.ValidateBinary(*p)
		if err != nil {
			return err
		}
		*p = resolved
	}

	resolved, err := validation.ValidateBinary(s.FFprobePath)
	if err != nil {
		logging.W("%v (stitch input checks will fail)", err)
		return nil
	}
	s.FFprobePath = resolved
	return nil
}
