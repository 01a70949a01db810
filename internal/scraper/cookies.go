// Package scraper reads browser cookies and page metadata for URLs handed to the shell.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"ytd/internal/domain/consts"
	"ytd/internal/utils/logging"

	"github.com/browserutils/kooky"
	// Use all browsers for Kooky:
	_ "github.com/browserutils/kooky/browser/all"
)

// CookieReader loads the cookies stored for a registrable domain.
type CookieReader func(ctx context.Context, domain string) ([]*http.Cookie, error)

// CookieManager holds cookies for a domain.
type CookieManager struct {
	mu      sync.RWMutex
	cookies map[string][]*http.Cookie
	read    CookieReader
}

// NewCookieManager initializes a new cookie manager instance reading from local browsers.
func NewCookieManager() *CookieManager {
	return NewCookieManagerWithReader(readBrowserCookies)
}

// NewCookieManagerWithReader initializes a cookie manager with a custom cookie source.
func NewCookieManagerWithReader(r CookieReader) *CookieManager {
	return &CookieManager{
		cookies: make(map[string][]*http.Cookie),
		read:    r,
	}
}

// GetCookies retrieves cookies for a given URL.
func (cm *CookieManager) GetCookies(ctx context.Context, u string) ([]*http.Cookie, error) {
	baseURL, err := baseDomain(u)
	if err != nil {
		return nil, fmt.Errorf("error extracting base domain in cookie grab: %w", err)
	}

	// Check if we already have cookies for this domain
	cm.mu.RLock()
	if cookies, ok := cm.cookies[baseURL]; ok {
		cm.mu.RUnlock()
		return cookies, nil
	}
	cm.mu.RUnlock()

	cookies, err := cm.read(ctx, baseURL)
	if err != nil {
		logging.D(2, "Failed reading cookies: %v", err)
		return nil, nil
	}

	if len(cookies) > 0 {
		logging.I("Found %d cookies for %s", len(cookies), baseURL)
	} else {
		logging.I("No cookies found for %s", baseURL)
	}

	cm.mu.Lock()
	cm.cookies[baseURL] = cookies
	cm.mu.Unlock()

	return cookies, nil
}

// ExportForURL writes the browser cookies for a URL's domain to path in Netscape format.
//
// Returns the written path, or "" when no cookies were found (yt-dlp then runs without '--cookies').
func (cm *CookieManager) ExportForURL(ctx context.Context, u, path string) (string, error) {
	cookies, err := cm.GetCookies(ctx, u)
	if err != nil {
		return "", err
	}
	if len(cookies) == 0 {
		logging.I("0 cookies to write to file %q, won't use '--cookies' in commands", path)
		return "", nil
	}

	domain, _ := baseDomain(u)
	if err := saveCookiesToFile(cookies, domain, path); err != nil {
		return "", err
	}
	return path, nil
}

// readBrowserCookies loads the cookies associated with a particular domain from every supported browser.
func readBrowserCookies(ctx context.Context, domain string) ([]*http.Cookie, error) {
	kookieCookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.Domain(domain))
	if err != nil && len(kookieCookies) == 0 {
		return nil, err
	}
	return convertToHTTPCookies(kookieCookies), nil
}

// convertToHTTPCookies converts kooky cookies to http.Cookie format.
func convertToHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, len(kookyCookies))
	for i, c := range kookyCookies {
		httpCookies[i] = &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		}
	}
	return httpCookies
}

// saveCookiesToFile saves the cookies to a file in Netscape format.
func saveCookiesToFile(cookies []*http.Cookie, fallbackDomain, cookieFilePath string) error {
	file, err := os.OpenFile(cookieFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, consts.PermsCookieFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.E("failed to close file %q due to error: %v", cookieFilePath, err)
		}
	}()

	logging.D(1, "Saving %d cookies to file %s...", len(cookies), cookieFilePath)
	return writeNetscape(file, cookies, fallbackDomain)
}

// writeNetscape writes the Netscape cookie-file header and one tab-separated line per cookie.
func writeNetscape(w io.Writer, cookies []*http.Cookie, fallbackDomain string) error {
	_, err := io.WriteString(w, "# Netscape HTTP Cookie File\n# https://curl.haxx.se/rfc/cookie_spec.html\n# This is a generated file! Do not edit.\n\n")
	if err != nil {
		return err
	}

	for _, cookie := range cookies {
		domain := cookie.Domain
		if domain == "" {
			domain = fallbackDomain
		}

		// Leading dot means the cookie applies to subdomains.
		includeSub := "FALSE"
		if strings.HasPrefix(domain, ".") {
			includeSub = "TRUE"
		}

		secure := "FALSE"
		if cookie.Secure {
			secure = "TRUE"
		}

		path := cookie.Path
		if path == "" {
			path = "/"
		}

		expires := int64(0)
		if !cookie.Expires.IsZero() {
			expires = cookie.Expires.Unix()
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			domain, includeSub, path, secure, expires, cookie.Name, cookie.Value); err != nil {
			return err
		}
	}
	return nil
}
