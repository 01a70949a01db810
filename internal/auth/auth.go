// Package auth manages the OAuth2 authorization of the cloud integrations.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/models"
	"ytd/internal/utils/logging"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Prompter asks the user for one line of input.
type Prompter interface {
	Ask(ctx context.Context, msg string) (string, error)
}

// Authorizer owns the token files of every integration.
type Authorizer struct {
	settings *models.Settings
	prompt   Prompter
	out      io.Writer
}

// New returns an Authorizer. Instructions are written to out and answers read through p.
func New(s *models.Settings, p Prompter, out io.Writer) *Authorizer {
	return &Authorizer{
		settings: s,
		prompt:   p,
		out:      out,
	}
}

// Available reports whether the credential descriptor exists.
func (a *Authorizer) Available() bool {
	info, err := os.Stat(a.settings.ClientSecrets)
	return err == nil && !info.IsDir()
}

// Authenticated reports whether a token file exists for the integration.
func (a *Authorizer) Authenticated(i models.Integration) bool {
	_, err := os.Stat(a.settings.TokenPath(i))
	return err == nil
}

// Client returns an HTTP client authorized for the integration.
func (a *Authorizer) Client(ctx context.Context, i models.Integration) (*http.Client, error) {
	ts, err := a.TokenSource(ctx, i)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}

// TokenSource returns a refreshing token source for the integration.
//
// The interactive flow runs when no token is stored or the stored one cannot be refreshed.
func (a *Authorizer) TokenSource(ctx context.Context, i models.Integration) (oauth2.TokenSource, error) {
	cfg, err := a.config(i)
	if err != nil {
		return nil, err
	}

	path := a.settings.TokenPath(i)
	tok, err := loadToken(path)
	if err != nil {
		logging.W("Stored %s token unreadable, re-authorizing: %v", i, err)
		tok = nil
	}

	if tok != nil {
		ts := newPersistingTokenSource(cfg.TokenSource(ctx, tok), path, tok)
		_, err := ts.Token()
		if err == nil {
			return ts, nil
		}
		logging.W("Stored %s token could not be refreshed: %v", i, err)
	}

	if tok, err = a.authorize(ctx, cfg, i); err != nil {
		return nil, err
	}
	return newPersistingTokenSource(cfg.TokenSource(ctx, tok), path, tok), nil
}

// Authorize runs the interactive flow for the integration, replacing any stored token.
func (a *Authorizer) Authorize(ctx context.Context, i models.Integration) error {
	cfg, err := a.config(i)
	if err != nil {
		return err
	}
	_, err = a.authorize(ctx, cfg, i)
	return err
}

// Reset deletes the stored token for the integration.
func (a *Authorizer) Reset(i models.Integration) error {
	path := a.settings.TokenPath(i)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token %q: %w", path, err)
	}
	logging.D(1, "Removed %s token %q", i, path)
	return nil
}

// config loads the OAuth client for the integration's scope.
func (a *Authorizer) config(i models.Integration) (*oauth2.Config, error) {
	data, err := os.ReadFile(a.settings.ClientSecrets)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: credential file %q not found", errconsts.ErrAuthUnavailable, a.settings.ClientSecrets)
		}
		return nil, fmt.Errorf("%w: %w", errconsts.ErrAuthUnavailable, err)
	}

	cfg, err := google.ConfigFromJSON(data, i.Scope())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credential file %q: %w", errconsts.ErrAuthUnavailable, a.settings.ClientSecrets, err)
	}
	cfg.RedirectURL = a.settings.RedirectURL
	return cfg, nil
}

// authorize walks the user through the consent page and exchanges the pasted code.
func (a *Authorizer) authorize(ctx context.Context, cfg *oauth2.Config, i models.Integration) (*oauth2.Token, error) {
	if a.prompt == nil {
		return nil, fmt.Errorf("%w: no interactive input for %s", errconsts.ErrAuthRequired, i)
	}

	state := uuid.NewString()
	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	fmt.Fprintf(a.out, "\n%s%s authorization%s\n", consts.ColorBold, i, consts.ColorReset)
	fmt.Fprintf(a.out, "1. Open this URL in your browser:\n\n   %s\n\n", authURL)
	fmt.Fprintf(a.out, "2. Approve access. The browser is sent to %s, which may fail to load.\n", cfg.RedirectURL)
	fmt.Fprintln(a.out, "3. Copy the full URL from the address bar and paste it below.")

	ans, err := a.prompt.Ask(ctx, "\nRedirect URL (or code): ")
	if err != nil {
		return nil, err
	}

	code, err := parseAuthCode(ans, state)
	if err != nil {
		return nil, err
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: token exchange failed: %w", errconsts.ErrAuthRequired, err)
	}
	if err := saveToken(a.settings.TokenPath(i), tok); err != nil {
		return nil, err
	}

	logging.D(1, "%s authorized", i)
	return tok, nil
}

// parseAuthCode extracts the authorization code from a pasted redirect URL or a bare code.
func parseAuthCode(input, state string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: no authorization code entered", errconsts.ErrInvalidInput)
	}

	if !strings.Contains(input, "code=") && !strings.Contains(input, "error=") {
		return input, nil
	}

	raw := input
	if i := strings.Index(raw, "?"); i >= 0 {
		raw = raw[i+1:]
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		return "", fmt.Errorf("%w: could not parse redirect URL: %w", errconsts.ErrInvalidInput, err)
	}
	if e := q.Get("error"); e != "" {
		return "", fmt.Errorf("%w: authorization denied: %s", errconsts.ErrAuthRequired, e)
	}
	if s := q.Get("state"); s != "" && s != state {
		return "", fmt.Errorf("%w: state mismatch in redirect URL", errconsts.ErrAuthRequired)
	}

	code := q.Get("code")
	if code == "" {
		return "", fmt.Errorf("%w: redirect URL carries no code", errconsts.ErrInvalidInput)
	}
	return code, nil
}
