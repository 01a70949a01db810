package cfg

import (
	"io"

	"ytd/internal/auth"
	"ytd/internal/backup"
	"ytd/internal/domain/consts"
	"ytd/internal/downloads"
	"ytd/internal/media"
	"ytd/internal/models"
	"ytd/internal/qr"
	"ytd/internal/scraper"
	"ytd/internal/shell"
	"ytd/internal/utils/prompt"
	"ytd/internal/youtube"
)

// newShell wires every collaborator around one shared prompt reader.
func newShell(s *models.Settings, in io.Reader, out io.Writer) *shell.Shell {
	reader := prompt.New(in, out)
	authorizer := auth.New(s, reader, out)

	deps := shell.Deps{
		Downloader: downloads.New(s, scraper.NewCookieManager(), out),
		Stitcher:   media.NewStitcher(s.FFmpegPath, s.FFprobePath),
		Auth:       authorizer,
		Uploader:   youtube.NewUploader(authorizer, out),
		Backuper:   backup.New(authorizer, out),
		QR:         qr.Writer{},
		Titles: func(u string) (string, error) {
			return scraper.PageTitle(u, consts.ScraperTimeout)
		},
	}
	return shell.New(s, deps, reader, out)
}
