package artifacts

import (
	"fmt"
	"io"

	"ytd/internal/domain/consts"
	"ytd/internal/models"

	"github.com/dustin/go-humanize"
)

// Print writes one line per artifact with its human-readable size.
// Video artifacts are prefixed with their selection index.
func Print(w io.Writer, list []models.Artifact) {
	for _, a := range list {
		size := humanize.Bytes(uint64(a.Size))
		if a.Video {
			fmt.Fprintf(w, "  %s%2d.%s %s %s(%s)%s\n", consts.ColorCyan, a.Index, consts.ColorReset, a.Name, consts.ColorDim, size, consts.ColorReset)
			continue
		}
		fmt.Fprintf(w, "      %s %s(%s)%s\n", a.Name, consts.ColorDim, size, consts.ColorReset)
	}
}
