package models

// UploadRequest carries the video-hosting metadata gathered by the upload wizard.
type UploadRequest struct {
	Title       string
	Description string
	Sources     []string
	Tags        []string
	Privacy     string
}

// UploadResult is returned after a successful video-hosting upload.
type UploadResult struct {
	VideoID string
	URL     string
}
