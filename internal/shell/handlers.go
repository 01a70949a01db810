package shell

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"ytd/internal/artifacts"
	"ytd/internal/backup"
	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/domain/keys"
	"ytd/internal/media"
	"ytd/internal/models"
	"ytd/internal/parsing"
	"ytd/internal/qr"
	"ytd/internal/utils/logging"
	"ytd/internal/validation"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.English)

func (sh *Shell) video(ctx context.Context, arg string) error {
	u, err := sh.urlArg(ctx, arg)
	if err != nil {
		return err
	}

	fmt.Fprintf(sh.out, "Downloading video: %s\n", u)
	res, err := sh.deps.Downloader.Video(ctx, u)
	if err != nil {
		return err
	}
	sh.okf("Saved: %s", filepath.Base(res.Path))
	return nil
}

func (sh *Shell) audio(ctx context.Context, arg string) error {
	u, err := sh.urlArg(ctx, arg)
	if err != nil {
		return err
	}

	fmt.Fprintf(sh.out, "Downloading audio: %s\n", u)
	res, err := sh.deps.Downloader.Audio(ctx, u)
	if err != nil {
		return err
	}
	sh.okf("Saved: %s", filepath.Base(res.Path))
	return nil
}

func (sh *Shell) info(ctx context.Context, arg string) error {
	u, err := sh.urlArg(ctx, arg)
	if err != nil {
		return err
	}

	info, err := sh.deps.Downloader.Info(ctx, u)
	if err != nil {
		return err
	}

	uploaded := info.UploadDate
	if formatted, err := parsing.FormatUploadDate(info.UploadDate); err == nil {
		uploaded = formatted
	}
	if uploaded == "" {
		uploaded = "unknown"
	}

	fmt.Fprintln(sh.out)
	sh.field("Title", info.Title)
	sh.field("Duration", parsing.FormatDuration(info.Duration))
	sh.field("Channel", info.ChannelName())
	sh.field("Views", humanize.Comma(info.ViewCount))
	sh.field("Uploaded", uploaded)
	return nil
}

func (sh *Shell) list() error {
	list, err := artifacts.List(sh.settings.DownloadDir)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(sh.out, "No downloads yet.")
		return nil
	}

	fmt.Fprintf(sh.out, "Downloads in %s:\n", sh.settings.DownloadDir)
	artifacts.Print(sh.out, list)
	return nil
}

func (sh *Shell) stitch(ctx context.Context, arg string) error {
	videos, err := sh.videos()
	if err != nil {
		return err
	}
	if len(videos) < 2 {
		return fmt.Errorf("%w: need at least 2 videos to stitch, found %d", errconsts.ErrInvalidInput, len(videos))
	}

	artifacts.Print(sh.out, videos)
	sel, err := sh.in.Ask(ctx, "Select videos in order (e.g. 1 3 2): ")
	if err != nil {
		return err
	}
	chosen, err := artifacts.Select(videos, sel)
	if err != nil {
		return err
	}
	if len(chosen) < 2 {
		return fmt.Errorf("%w: select at least 2 videos to stitch", errconsts.ErrInvalidInput)
	}

	name := arg
	if name == "" {
		if name, err = sh.in.AskDefault(ctx, "Output name", media.OutputName("", sh.now())); err != nil {
			return err
		}
	}
	name = media.OutputName(name, sh.now())

	inputs := make([]string, 0, len(chosen))
	for _, a := range chosen {
		inputs = append(inputs, a.Path)
	}
	output := sh.settings.ArtifactPath(name)
	if media.IsInput(inputs, output) {
		return fmt.Errorf("%w: output %s is one of the selected videos", errconsts.ErrInvalidInput, name)
	}

	fmt.Fprintf(sh.out, "Stitching into %s:\n", name)
	for i, a := range chosen {
		fmt.Fprintf(sh.out, "  %d. %s\n", i+1, a.Name)
	}
	if ok, err := sh.in.Confirm(ctx, "Proceed?"); err != nil {
		return err
	} else if !ok {
		return errconsts.ErrCancelled
	}

	if err := sh.deps.Stitcher.Stitch(ctx, inputs, output); err != nil {
		return err
	}
	sh.okf("Stitched: %s", name)
	return nil
}

func (sh *Shell) upload(ctx context.Context, arg string) error {
	if !sh.deps.Auth.Available() {
		return fmt.Errorf("%w: credential file %q not found", errconsts.ErrAuthUnavailable, sh.settings.ClientSecrets)
	}

	videos, err := sh.videos()
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		return errconsts.ErrNoArtifacts
	}

	var sel, privacy string
	if fields := strings.Fields(arg); len(fields) > 0 {
		sel = fields[0]
		if len(fields) > 1 {
			privacy = fields[1]
		}
	}
	if sel == "" {
		artifacts.Print(sh.out, videos)
		if sel, err = sh.in.Ask(ctx, "Select video to upload (number): "); err != nil {
			return err
		}
	}
	chosen, err := artifacts.Select(videos, sel)
	if err != nil {
		return err
	}
	if len(chosen) != 1 {
		return fmt.Errorf("%w: select exactly one video to upload", errconsts.ErrInvalidInput)
	}
	video := chosen[0]

	req, err := sh.uploadDetails(ctx, video, privacy)
	if err != nil {
		return err
	}

	if !sh.deps.Auth.Authenticated(models.IntegrationYouTube) {
		fmt.Fprintln(sh.out, "YouTube is not authorized yet, starting authorization.")
	}
	res, err := sh.deps.Uploader.Upload(ctx, video.Path, req)
	if err != nil {
		return err
	}

	sh.okf("Uploaded: %s", res.VideoID)
	sh.field("URL", res.URL)

	qrPath := qr.PathFor(sh.settings.DownloadDir, req.Title)
	if err := sh.deps.QR.Write(res.URL, qrPath); err != nil {
		sh.failf("QR code not saved: %v", err)
	} else {
		sh.okf("QR code saved: %s", filepath.Base(qrPath))
	}

	if req.Privacy == consts.PrivacyPrivate {
		fmt.Fprintf(sh.out, "\nThis video is private. To share it, open %s, select the video and\n", consts.YouTubeStudioURL)
		fmt.Fprintln(sh.out, "invite viewers by email, or change its visibility to unlisted.")
	}
	return nil
}

// uploadDetails runs the metadata wizard for an upload.
func (sh *Shell) uploadDetails(ctx context.Context, video models.Artifact, privacy string) (models.UploadRequest, error) {
	var req models.UploadRequest
	var err error

	if req.Title, err = sh.in.AskDefault(ctx, "Title", parsing.Stem(video.Name)); err != nil {
		return req, err
	}
	if req.Description, err = sh.in.Ask(ctx, "Description (optional): "); err != nil {
		return req, err
	}

	fmt.Fprintln(sh.out, "Attribution sources, one per line (blank line to finish):")
	if req.Sources, err = sh.in.Lines(ctx, "  Source: "); err != nil {
		return req, err
	}

	tags, err := sh.in.Ask(ctx, "Tags (comma separated, optional): ")
	if err != nil {
		return req, err
	}
	req.Tags = validation.DeduplicateSliceEntries(validation.SplitList(tags))

	if privacy == "" {
		if privacy, err = sh.in.AskDefault(ctx, "Privacy (private/unlisted/public)", consts.PrivacyPrivate); err != nil {
			return req, err
		}
	}
	if !validation.IsPrivacy(privacy) {
		fmt.Fprintf(sh.out, "Unknown privacy %q, using %s.\n", privacy, consts.PrivacyPrivate)
	}
	req.Privacy = validation.ValidatePrivacy(privacy)

	fmt.Fprintln(sh.out)
	sh.field("File", video.Name)
	sh.field("Title", req.Title)
	sh.field("Privacy", titleCase.String(req.Privacy))
	if len(req.Sources) > 0 {
		sh.field("Sources", strings.Join(req.Sources, ", "))
	}
	if len(req.Tags) > 0 {
		sh.field("Tags", strings.Join(req.Tags, ", "))
	}

	ok, err := sh.in.Confirm(ctx, "Upload now?")
	if err != nil {
		return req, err
	}
	if !ok {
		return req, errconsts.ErrCancelled
	}
	return req, nil
}

func (sh *Shell) backup(ctx context.Context, arg string) error {
	if !sh.deps.Auth.Available() {
		return fmt.Errorf("%w: credential file %q not found", errconsts.ErrAuthUnavailable, sh.settings.ClientSecrets)
	}

	videos, err := sh.videos()
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		return errconsts.ErrNoArtifacts
	}

	sel := arg
	if sel == "" {
		artifacts.Print(sh.out, videos)
		if sel, err = sh.in.Ask(ctx, "Select videos to back up (e.g. 1 3, or 'all'): "); err != nil {
			return err
		}
	}

	chosen := videos
	if !strings.EqualFold(strings.TrimSpace(sel), keys.SelectAll) {
		if chosen, err = artifacts.Select(videos, sel); err != nil {
			return err
		}
		chosen = uniqueArtifacts(chosen)
	}

	bucket, err := sh.bucket(ctx)
	if err != nil {
		return err
	}

	if !sh.deps.Auth.Authenticated(models.IntegrationGCS) {
		fmt.Fprintln(sh.out, "Google Cloud Storage is not authorized yet, starting authorization.")
	}

	done := 0
	var fatal error
	for i, a := range chosen {
		fmt.Fprintf(sh.out, "[%d/%d] %s\n", i+1, len(chosen), a.Name)
		uri, err := sh.deps.Backuper.Backup(ctx, a.Path, bucket)
		if err != nil {
			if isFatal(ctx, err) {
				fatal = err
				break
			}
			sh.failf("%s: %v", a.Name, err)
			continue
		}
		sh.okf("%s", uri)
		done++
	}

	fmt.Fprintf(sh.out, "Backup complete: %d/%d files uploaded\n", done, len(chosen))
	return fatal
}

// bucket resolves the backup bucket from config, the saved bucket file, then a prompt.
func (sh *Shell) bucket(ctx context.Context) (string, error) {
	if b := strings.TrimSpace(sh.settings.GCSBucket); b != "" {
		return b, nil
	}
	if b := backup.SavedBucket(sh.settings); b != "" {
		fmt.Fprintf(sh.out, "Using bucket: %s\n", b)
		return b, nil
	}

	b, err := sh.in.Ask(ctx, "GCS bucket name: ")
	if err != nil {
		return "", err
	}
	if b == "" {
		return "", fmt.Errorf("%w: no bucket name entered", errconsts.ErrInvalidInput)
	}
	if err := backup.SaveBucket(sh.settings, b); err != nil {
		logging.W("Bucket name not saved: %v", err)
	}
	return b, nil
}

func (sh *Shell) qr(ctx context.Context, arg string) error {
	raw := arg
	if raw == "" {
		var err error
		if raw, err = sh.in.Ask(ctx, "Enter URL: "); err != nil {
			return err
		}
	}
	u, err := validation.ValidateURL(raw)
	if err != nil {
		return err
	}

	def := consts.QRDefaultName
	if sh.deps.Titles != nil {
		if title, err := sh.deps.Titles(u); err == nil && strings.TrimSpace(title) != "" {
			def = title
		} else if err != nil {
			logging.D(1, "No page title for %q: %v", u, err)
		}
	}

	name, err := sh.in.AskDefault(ctx, "Name for QR code", def)
	if err != nil {
		return err
	}

	path := qr.PathFor(sh.settings.DownloadDir, name)
	if err := sh.deps.QR.Write(u, path); err != nil {
		return err
	}
	sh.okf("QR code saved: %s", filepath.Base(path))
	return nil
}

func (sh *Shell) auth(ctx context.Context, arg string) error {
	target := arg
	if target == "" {
		fmt.Fprintln(sh.out, "Re-authorize which service?")
		for i, in := range models.AllIntegrations {
			fmt.Fprintf(sh.out, "  %d. %s\n", i+1, in)
		}
		fmt.Fprintf(sh.out, "  %d. Both\n", len(models.AllIntegrations)+1)

		var err error
		if target, err = sh.in.AskDefault(ctx, "Choice", "3"); err != nil {
			return err
		}
	}

	integrations, ok := models.ParseAuthTarget(target)
	if !ok {
		return fmt.Errorf("%w: unknown auth target %q (use youtube, gcs or all)", errconsts.ErrInvalidInput, target)
	}
	if !sh.deps.Auth.Available() {
		return fmt.Errorf("%w: credential file %q not found", errconsts.ErrAuthUnavailable, sh.settings.ClientSecrets)
	}

	for _, in := range integrations {
		if err := sh.deps.Auth.Reset(in); err != nil {
			return err
		}
		if err := sh.deps.Auth.Authorize(ctx, in); err != nil {
			return err
		}
		sh.okf("%s authorized", in)
	}
	return nil
}

// urlArg returns the validated URL argument, prompting when it is missing.
func (sh *Shell) urlArg(ctx context.Context, arg string) (string, error) {
	if arg == "" {
		var err error
		if arg, err = sh.in.Ask(ctx, "Enter URL: "); err != nil {
			return "", err
		}
	}
	return validation.ValidateURL(arg)
}

// uniqueArtifacts drops repeated selections, keeping first-seen order.
func uniqueArtifacts(in []models.Artifact) []models.Artifact {
	seen := make(map[string]bool, len(in))
	out := make([]models.Artifact, 0, len(in))
	for _, a := range in {
		if seen[a.Path] {
			continue
		}
		seen[a.Path] = true
		out = append(out, a)
	}
	return out
}

func (sh *Shell) videos() ([]models.Artifact, error) {
	return artifacts.Videos(sh.settings.DownloadDir)
}

func (sh *Shell) field(label, value string) {
	fmt.Fprintf(sh.out, "  %s%-9s%s %s\n", consts.ColorBold, label+":", consts.ColorReset, value)
}

// isFatal reports errors that would fail every remaining file in a batch.
func isFatal(ctx context.Context, err error) bool {
	return ctx.Err() != nil ||
		errors.Is(err, errconsts.ErrAuthUnavailable) ||
		errors.Is(err, errconsts.ErrAuthRequired) ||
		errors.Is(err, errconsts.ErrCancelled) ||
		errors.Is(err, errconsts.ErrInvalidInput)
}
