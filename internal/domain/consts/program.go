package consts

// Program identity.
const (
	ProgramName = "ytd"
	EnvPrefix   = "YTD"
)

// Default container layout.
const (
	DefaultDownloadDir    = "/app/downloads"
	DefaultCredentialsDir = "/app/credentials"
	DefaultClientSecrets  = "/app/client_secrets.json"
	DefaultRedirectURL    = "http://localhost:8080/"
)

// Credential file names inside the credentials directory.
const (
	YouTubeTokenFile = "youtube_oauth.json"
	GCSTokenFile     = "gcs_oauth.json"
	GCSBucketFile    = "gcs_bucket.txt"
	CookiesFile      = "cookies.txt"
)

// External binaries.
const (
	DefaultYtdlpBin   = "yt-dlp"
	DefaultFFmpegBin  = "ffmpeg"
	DefaultFFprobeBin = "ffprobe"
)

// OAuth scopes.
const (
	YouTubeUploadScope = "https://www.googleapis.com/auth/youtube.upload"
	GCSScope           = "https://www.googleapis.com/auth/devstorage.read_write"
)

// Program messages.
const (
	ShellPrompt = ColorRed + "ytd" + ColorReset + ColorBold + ColorWhite + ">" + ColorReset + " "
)
