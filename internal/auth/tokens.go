package auth

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"ytd/internal/domain/consts"
	"ytd/internal/file"
	"ytd/internal/utils/logging"

	"golang.org/x/oauth2"
)

// loadToken reads a stored token. A missing file returns (nil, nil).
func loadToken(path string) (*oauth2.Token, error) {
	var tok oauth2.Token
	if err := file.ReadJSONFile(path, &tok); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return &tok, nil
}

// saveToken writes a token readable only by the owner.
func saveToken(path string, tok *oauth2.Token) error {
	if err := file.WriteJSONFile(path, tok, consts.PermsTokenFile); err != nil {
		return fmt.Errorf("failed to save token to %q: %w", path, err)
	}
	logging.D(1, "Saved token to %q", path)
	return nil
}

// persistingTokenSource writes refreshed tokens back to disk.
type persistingTokenSource struct {
	mu   sync.Mutex
	base oauth2.TokenSource
	path string
	last string
}

func newPersistingTokenSource(base oauth2.TokenSource, path string, current *oauth2.Token) *persistingTokenSource {
	last := ""
	if current != nil {
		last = current.AccessToken
	}
	return &persistingTokenSource{base: base, path: path, last: last}
}

// Token implements oauth2.TokenSource.
func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := p.base.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if tok.AccessToken != p.last {
		if err := saveToken(p.path, tok); err != nil {
			logging.W("Refreshed token could not be saved: %v", err)
		} else {
			p.last = tok.AccessToken
		}
	}
	return tok, nil
}
