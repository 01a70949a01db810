// Package downloads wraps yt-dlp for the video, audio and info verbs.
package downloads

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/domain/keys"
	"ytd/internal/models"
	"ytd/internal/utils/logging"

	"github.com/lrstanley/go-ytdlp"
)

// CookieExporter writes browser cookies for a URL to a yt-dlp cookie file.
type CookieExporter interface {
	ExportForURL(ctx context.Context, u, path string) (string, error)
}

// Downloader runs yt-dlp into the artifact directory.
type Downloader struct {
	settings *models.Settings
	cookies  CookieExporter
	progress io.Writer
}

// New returns a Downloader. cookies may be nil when no browser cookie source is configured.
func New(s *models.Settings, cookies CookieExporter, progress io.Writer) *Downloader {
	if progress == nil {
		progress = io.Discard
	}
	return &Downloader{
		settings: s,
		cookies:  cookies,
		progress: progress,
	}
}

// Video downloads the best mp4-compatible streams and merges them into an mp4 container.
func (d *Downloader) Video(ctx context.Context, u string) (*models.DownloadResult, error) {
	cmd := d.baseCommand(ctx, u).
		Format(consts.BestVideoFormat).
		MergeOutputFormat(consts.MergeOutputFormat)

	return d.run(ctx, cmd, u, consts.VideoExtensions[:])
}

// Audio downloads the best audio stream and extracts it to mp3. yt-dlp removes the source container.
func (d *Downloader) Audio(ctx context.Context, u string) (*models.DownloadResult, error) {
	cmd := d.baseCommand(ctx, u).
		Format(consts.BestAudioFormat).
		ExtractAudio().
		AudioFormat(consts.AudioCodec).
		AudioQuality(consts.AudioQuality)

	return d.run(ctx, cmd, u, []string{"." + consts.AudioCodec})
}

// Info fetches metadata for a URL without downloading any media.
func (d *Downloader) Info(ctx context.Context, u string) (*models.VideoInfo, error) {
	cmd := ytdlp.New().
		SetExecutable(d.settings.YtdlpPath).
		NoPlaylist().
		SkipDownload().
		DumpSingleJSON()
	d.applyCookies(ctx, cmd, u)

	logging.D(1, "Fetching info for %q", u)
	res, err := cmd.Run(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errconsts.ErrInfoFailed, describeFailure(u, res, err))
	}

	info, err := parseInfo(res.Stdout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errconsts.ErrInfoFailed, err)
	}
	return info, nil
}

// baseCommand returns the options shared by the media downloads.
func (d *Downloader) baseCommand(ctx context.Context, u string) *ytdlp.Command {
	cmd := ytdlp.New().
		SetExecutable(d.settings.YtdlpPath).
		NoPlaylist().
		RestrictFilenames().
		Output(filepath.Join(d.settings.DownloadDir, consts.OutputTemplate)).
		Print("after_move:filepath")

	cmd.ProgressFunc(consts.ProgressInterval, func(update ytdlp.ProgressUpdate) {
		writeProgress(d.progress, update)
	})

	d.applyCookies(ctx, cmd, u)
	return cmd
}

// applyCookies adds '--cookies' when a cookie source is configured and yields a file.
func (d *Downloader) applyCookies(ctx context.Context, cmd *ytdlp.Command, u string) {
	src := d.settings.CookieSource
	switch src {
	case keys.CookieSourceNone:
		return

	case keys.CookieSourceBrowser:
		if d.cookies == nil {
			return
		}
		path, err := d.cookies.ExportForURL(ctx, u, d.settings.CookieFilePath())
		if err != nil {
			logging.W("Could not export browser cookies for %q: %v", u, err)
			return
		}
		if path != "" {
			cmd.Cookies(path)
		}

	default:
		if _, err := os.Stat(src); err != nil {
			logging.W("Cookie file %q not usable: %v", src, err)
			return
		}
		cmd.Cookies(src)
	}
}

// run executes a media download and locates the file it produced.
func (d *Downloader) run(ctx context.Context, cmd *ytdlp.Command, u string, exts []string) (*models.DownloadResult, error) {
	started := time.Now()
	logging.D(1, "Downloading %q into %q", u, d.settings.DownloadDir)

	res, err := cmd.Run(ctx, u)
	fmt.Fprintln(d.progress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errconsts.ErrDownloadFailed, describeFailure(u, res, err))
	}

	path := outputPathFromStdout(res.Stdout, exts)
	if path == "" {
		path = newestArtifact(d.settings.DownloadDir, exts, started)
	}
	if path == "" {
		return nil, fmt.Errorf("%w: no output file captured", errconsts.ErrDownloadFailed)
	}
	if err := verifyDownload(path); err != nil {
		return nil, fmt.Errorf("%w: %w", errconsts.ErrDownloadFailed, err)
	}

	logging.D(1, "Download successful: %s", path)
	return &models.DownloadResult{
		Title: titleFromPath(path),
		Path:  path,
	}, nil
}

// parseInfo decodes the single JSON document printed by '--dump-single-json'.
func parseInfo(stdout string) (*models.VideoInfo, error) {
	var info models.VideoInfo
	if err := json.Unmarshal([]byte(lastJSONLine(stdout)), &info); err != nil {
		return nil, fmt.Errorf("could not parse yt-dlp JSON output: %w", err)
	}
	if info.Title == "" {
		return nil, fmt.Errorf("yt-dlp returned no title")
	}
	return &info, nil
}
