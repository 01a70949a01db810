// Package keys holds the terminal flag names, which double as Viper keys.
package keys

// Files and directories.
const (
	DownloadDir    string = "download-dir"
	CredentialsDir string = "credentials-dir"
	ClientSecrets  string = "client-secrets"
	ConfigFile     string = "config-file"
	LogFile        string = "log-file"
)

// External programs.
const (
	YtdlpPath   string = "ytdlp-path"
	FFmpegPath  string = "ffmpeg-path"
	FFprobePath string = "ffprobe-path"
)

// Downloads.
const (
	CookieSource string = "cookie-source"
)

// Cloud integrations.
const (
	RedirectURL string = "redirect-url"
	GCSBucket   string = "gcs-bucket"
)

// One-shot mode.
const (
	Audio string = "audio"
	Info  string = "info"
)

// Logging.
const (
	DebugLevel string = "debug"
)
