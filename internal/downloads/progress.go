package downloads

import (
	"fmt"
	"io"

	"ytd/internal/domain/consts"

	"github.com/dustin/go-humanize"
	"github.com/lrstanley/go-ytdlp"
)

// writeProgress rewrites the current terminal line with download progress.
func writeProgress(w io.Writer, u ytdlp.ProgressUpdate) {
	name := ""
	if u.Info != nil && u.Info.Title != nil {
		name = *u.Info.Title
	}
	fmt.Fprint(w, "\r"+progressLine(name, u.DownloadedBytes, u.TotalBytes, int(u.ETA().Seconds())))
}

// progressLine renders one progress line. total may be zero when the size is unknown.
func progressLine(name string, done, total, etaSec int) string {
	if len(name) > 40 {
		name = name[:37] + "..."
	}
	if total <= 0 {
		return fmt.Sprintf("  %sDownloading%s %s %s", consts.ColorCyan, consts.ColorReset, name, humanize.Bytes(uint64(max(done, 0))))
	}

	pct := float64(done) / float64(total) * 100
	eta := ""
	if etaSec > 0 {
		eta = fmt.Sprintf(" ETA %d:%02d", etaSec/60, etaSec%60)
	}
	return fmt.Sprintf("  %sDownloading%s %s %5.1f%% of %s%s   ",
		consts.ColorCyan, consts.ColorReset, name, pct, humanize.Bytes(uint64(total)), eta)
}
