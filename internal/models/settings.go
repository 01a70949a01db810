package models

import (
	"path/filepath"

	"ytd/internal/domain/consts"
)

// Settings holds the resolved program configuration.
//
// Built once at startup from flags, environment and config file, then passed to every
// component that touches the artifact directory, the credentials directory or an external program.
type Settings struct {
	DownloadDir    string `viper:"download-dir" validate:"required"`
	CredentialsDir string `viper:"credentials-dir" validate:"required"`
	ClientSecrets  string `viper:"client-secrets" validate:"required"`
	LogFile        string `viper:"log-file"`

	YtdlpPath   string `viper:"ytdlp-path" validate:"required"`
	FFmpegPath  string `viper:"ffmpeg-path" validate:"required"`
	FFprobePath string `viper:"ffprobe-path" validate:"required"`

	CookieSource string `viper:"cookie-source"`
	RedirectURL  string `viper:"redirect-url" validate:"required,url"`
	GCSBucket    string `viper:"gcs-bucket"`

	DebugLevel int `viper:"debug" validate:"gte=0,lte=5"`
}

// TokenPath returns where the authorization token for an integration is persisted.
func (s *Settings) TokenPath(i Integration) string {
	return filepath.Join(s.CredentialsDir, i.TokenFile())
}

// BucketFilePath returns the file holding the saved object-storage bucket name.
func (s *Settings) BucketFilePath() string {
	return filepath.Join(s.CredentialsDir, consts.GCSBucketFile)
}

// CookieFilePath returns where browser cookies are exported for yt-dlp.
func (s *Settings) CookieFilePath() string {
	return filepath.Join(s.CredentialsDir, consts.CookiesFile)
}

// ArtifactPath joins a filename onto the artifact directory.
func (s *Settings) ArtifactPath(name string) string {
	return filepath.Join(s.DownloadDir, name)
}
