package scraper

import (
	"fmt"
	"strings"
	"time"

	"ytd/internal/utils/logging"

	"github.com/gocolly/colly"
)

// PageTitle fetches a page and returns the text of its first <title> element.
func PageTitle(u string, timeout time.Duration) (string, error) {
	var (
		title    string
		visitErr error
	)

	collector := colly.NewCollector()
	collector.SetRequestTimeout(timeout)

	collector.OnHTML("title", func(e *colly.HTMLElement) {
		if title == "" {
			title = strings.TrimSpace(e.Text)
		}
	})
	collector.OnError(func(r *colly.Response, err error) {
		visitErr = fmt.Errorf("request to %q failed (status %d): %w", u, r.StatusCode, err)
	})

	if err := collector.Visit(u); err != nil {
		return "", err
	}
	if visitErr != nil {
		return "", visitErr
	}
	if title == "" {
		return "", fmt.Errorf("no title found at %q", u)
	}

	logging.D(2, "Fetched page title %q for %q", title, u)
	return title, nil
}
