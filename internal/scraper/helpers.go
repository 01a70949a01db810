package scraper

import (
	"fmt"
	"net/url"

	"golang.org/x/net/publicsuffix"
)

// baseDomain returns the registrable domain of a URL (e.g. "youtube.com" for "https://m.youtube.com/...").
func baseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("no host in URL %q", rawURL)
	}
	return publicsuffix.EffectiveTLDPlusOne(u.Hostname())
}
