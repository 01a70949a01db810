package parsing

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
)

// HyphenateYyyyMmDd simply hyphenates yyyymmdd date values for display.
func HyphenateYyyyMmDd(d string) string {
	d = strings.ReplaceAll(d, " ", "")
	d = strings.ReplaceAll(d, "-", "")
	if len(d) < 8 {
		return d
	}

	return d[0:4] + "-" + d[4:6] + "-" + d[6:8]
}

// FormatUploadDate renders a yt-dlp upload date (e.g. 20091025) as "Oct 25, 2009".
func FormatUploadDate(d string) (string, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return "", fmt.Errorf("empty date")
	}

	t, err := dateparse.ParseAny(HyphenateYyyyMmDd(d))
	if err != nil {
		return "", fmt.Errorf("unable to parse date: %s", d)
	}
	return t.Format("Jan 2, 2006"), nil
}

// FormatDuration renders seconds as m:ss (or h:mm:ss for long videos).
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
