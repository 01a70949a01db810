// Package youtube uploads video artifacts through the YouTube Data API.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/models"
	"ytd/internal/utils/logging"
	"ytd/internal/validation"

	"github.com/dustin/go-humanize"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// ClientProvider returns HTTP clients authorized for an integration.
type ClientProvider interface {
	Client(ctx context.Context, i models.Integration) (*http.Client, error)
}

// Uploader inserts videos on the authorized channel.
type Uploader struct {
	auth     ClientProvider
	progress io.Writer
	opts     []option.ClientOption
}

// NewUploader returns an Uploader. Extra client options are appended to the authorized HTTP client.
func NewUploader(auth ClientProvider, progress io.Writer, opts ...option.ClientOption) *Uploader {
	if progress == nil {
		progress = io.Discard
	}
	return &Uploader{
		auth:     auth,
		progress: progress,
		opts:     opts,
	}
}

// Upload sends the file at path with the metadata in req.
func (u *Uploader) Upload(ctx context.Context, path string, req models.UploadRequest) (*models.UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errconsts.ErrUploadFailed, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("failed to close file %q due to error: %v", path, err)
		}
	}()

	client, err := u.auth.Client(ctx, models.IntegrationYouTube)
	if err != nil {
		if errors.Is(err, errconsts.ErrAuthUnavailable) || errors.Is(err, errconsts.ErrAuthRequired) || errors.Is(err, errconsts.ErrCancelled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errconsts.ErrAuthRequired, err)
	}

	svc, err := ytapi.NewService(ctx, append([]option.ClientOption{option.WithHTTPClient(client)}, u.opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: could not create YouTube client: %w", errconsts.ErrUploadFailed, err)
	}

	video := buildVideo(req)
	logging.D(1, "Uploading %q as %q (%s)", path, video.Snippet.Title, video.Status.PrivacyStatus)

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	resp, err := svc.Videos.Insert([]string{"snippet", "status"}, video).
		Media(f, googleapi.ChunkSize(consts.UploadChunkSize)).
		ProgressUpdater(func(current, total int64) {
			if total <= 0 {
				total = size
			}
			printProgress(u.progress, current, total)
		}).
		Context(ctx).
		Do()
	fmt.Fprintln(u.progress)
	if err != nil {
		return nil, classifyAPIError(err)
	}

	logging.D(1, "Uploaded %q as video %s", filepath.Base(path), resp.Id)
	return &models.UploadResult{
		VideoID: resp.Id,
		URL:     consts.YouTubeWatchURL + resp.Id,
	}, nil
}

// buildVideo maps the wizard answers onto the API resource.
func buildVideo(req models.UploadRequest) *ytapi.Video {
	return &ytapi.Video{
		Snippet: &ytapi.VideoSnippet{
			Title:       req.Title,
			Description: BuildDescription(req.Description, req.Sources),
			Tags:        req.Tags,
			CategoryId:  consts.YouTubeCategoryPeopleBlogs,
		},
		Status: &ytapi.VideoStatus{
			PrivacyStatus:           validation.ValidatePrivacy(req.Privacy),
			SelfDeclaredMadeForKids: false,
			ForceSendFields:         []string{"SelfDeclaredMadeForKids"},
		},
	}
}

// BuildDescription appends the attribution block for sources to a description.
func BuildDescription(desc string, sources []string) string {
	var kept []string
	for _, s := range sources {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return desc
	}

	var b strings.Builder
	b.WriteString(desc)
	b.WriteString(consts.AttributionSeparator)
	b.WriteString("Original content used with permission from:\n")
	for _, s := range kept {
		b.WriteString("• " + s + "\n")
	}
	b.WriteString("All rights belong to the original creators.")
	return b.String()
}

// classifyAPIError separates rejected credentials from other upload failures.
func classifyAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", errconsts.ErrAuthRequired, apiErr.Message)
	}
	return fmt.Errorf("%w: %w", errconsts.ErrUploadFailed, err)
}

func printProgress(w io.Writer, current, total int64) {
	if total <= 0 {
		fmt.Fprintf(w, "\r  Uploading %s", humanize.Bytes(uint64(current)))
		return
	}
	fmt.Fprintf(w, "\r  Uploading %5.1f%% of %s", float64(current)/float64(total)*100, humanize.Bytes(uint64(total)))
}
