// Package consts holds various global, unchanging values.
package consts

// VideoExtensions are the artifact extensions offered for stitch, upload and backup.
var VideoExtensions = [...]string{".mp4", ".mkv", ".webm", ".avi", ".mov"}

// ContentTypes maps artifact extensions to object-storage content types.
var ContentTypes = map[string]string{
	".mp4":  "video/mp4",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".mp3":  "audio/mpeg",
	".png":  "image/png",
}

// DefaultContentType is used for extensions missing from ContentTypes.
const DefaultContentType = "application/octet-stream"

// yt-dlp selectors.
const (
	BestVideoFormat   = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
	MergeOutputFormat = "mp4"
	BestAudioFormat   = "bestaudio/best"
	AudioCodec        = "mp3"
	AudioQuality      = "192"
	OutputTemplate    = "%(title)s.%(ext)s"
)

// Stitch output.
const (
	StitchPrefix     = "stitched_"
	StitchTimeFormat = "20060102_150405"
	StitchExt        = ".mp4"
	StitchVideoCodec = "libx264"
	StitchAudioCodec = "aac"
)

// QR codes.
const (
	QRDefaultName = "qr_code"
	QRSuffix      = "_qr.png"
	QRModuleSize  = 10
	QRMaxNameLen  = 50
)

// Object storage.
const (
	BackupPrefix    = "ytd-backups/"
	BackupChunkSize = 10 * 1024 * 1024
)

// YouTube upload.
const (
	YouTubeCategoryPeopleBlogs = "22"
	YouTubeWatchURL            = "https://www.youtube.com/watch?v="
	YouTubeStudioURL           = "https://studio.youtube.com"
	UploadChunkSize            = 1024 * 1024
	AttributionSeparator       = "\n\n---\n"
)

// Privacy statuses.
const (
	PrivacyPrivate  = "private"
	PrivacyUnlisted = "unlisted"
	PrivacyPublic   = "public"
)

// PrivacyStatuses lists the accepted privacy statuses, default first.
var PrivacyStatuses = [...]string{PrivacyPrivate, PrivacyUnlisted, PrivacyPublic}
