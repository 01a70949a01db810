package models

// DownloadResult describes a finished yt-dlp download.
type DownloadResult struct {
	Title string
	Path  string
}

// VideoInfo holds the metadata fields printed by "info".
type VideoInfo struct {
	Title      string  `json:"title"`
	Channel    string  `json:"channel"`
	Uploader   string  `json:"uploader"`
	Duration   float64 `json:"duration"`
	ViewCount  int64   `json:"view_count"`
	UploadDate string  `json:"upload_date"`
	WebpageURL string  `json:"webpage_url"`
}

// ChannelName returns the channel, falling back to the uploader.
func (v *VideoInfo) ChannelName() string {
	if v.Channel != "" {
		return v.Channel
	}
	return v.Uploader
}
