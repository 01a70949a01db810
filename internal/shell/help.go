package shell

import (
	"context"
	"fmt"
	"strings"

	"ytd/internal/domain/consts"
)

var helpRows = [][2]string{
	{"video <URL>", "Download best-quality video (mp4)"},
	{"audio <URL>", "Download audio only (mp3)"},
	{"info <URL>", "Show title, duration, channel, views and upload date"},
	{"list", "List downloaded files"},
	{"stitch [name]", "Join two or more videos into one"},
	{"upload [n] [privacy]", "Upload a video to YouTube"},
	{"backup [n ...|all]", "Back up videos to Google Cloud Storage"},
	{"qr [URL]", "Save a QR code image for a URL"},
	{"auth [youtube|gcs|all]", "Re-authorize YouTube and/or Cloud Storage"},
	{"help", "Show this help"},
	{"exit", "Quit (also: quit, q)"},
}

func (sh *Shell) help() {
	fmt.Fprintf(sh.out, "\n%sCommands:%s\n", consts.ColorBold, consts.ColorReset)
	for _, r := range helpRows {
		fmt.Fprintf(sh.out, "  %s%-24s%s %s\n", consts.ColorCyan, r[0], consts.ColorReset, r[1])
	}

	privacy := make([]string, 0, len(consts.PrivacyStatuses))
	for _, p := range consts.PrivacyStatuses {
		privacy = append(privacy, titleCase.String(p))
	}
	fmt.Fprintf(sh.out, "\nA bare URL downloads the video. Privacy: %s (default %s).\n", strings.Join(privacy, ", "), consts.PrivacyPrivate)
	fmt.Fprintf(sh.out, "Files are saved to %s.\n\n", sh.settings.DownloadDir)
}

// RunOnce executes a single command-line invocation: help, or a download, audio or info request for u.
//
// Command failures are reported and returned; they are not startup errors.
func (sh *Shell) RunOnce(ctx context.Context, u string, audio, info bool) error {
	if strings.EqualFold(strings.TrimSpace(u), VerbHelp.String()) {
		sh.help()
		return nil
	}

	var err error
	switch {
	case info:
		err = sh.info(ctx, u)
	case audio:
		err = sh.audio(ctx, u)
	default:
		err = sh.video(ctx, u)
	}
	if err != nil {
		sh.report(err)
	}
	return err
}
