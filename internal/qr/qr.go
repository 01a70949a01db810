// Package qr renders URLs as PNG QR codes.
package qr

import (
	"fmt"
	"path/filepath"
	"strings"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/parsing"
	"ytd/internal/utils/logging"

	"github.com/skip2/go-qrcode"
)

// Writer writes QR code images.
type Writer struct{}

// Write renders u into a PNG at path.
func (Writer) Write(u, path string) error {
	u = strings.TrimSpace(u)
	if u == "" {
		return fmt.Errorf("%w: no URL to encode", errconsts.ErrInvalidInput)
	}

	q, err := qrcode.New(u, qrcode.Low)
	if err != nil {
		return fmt.Errorf("%w: %w", errconsts.ErrQRFailed, err)
	}

	// Negative size sets pixels per module instead of total width.
	if err := q.WriteFile(-consts.QRModuleSize, path); err != nil {
		return fmt.Errorf("%w: %w", errconsts.ErrQRFailed, err)
	}

	logging.D(1, "Wrote QR code for %q to %q", u, path)
	return nil
}

// FileName returns the QR image filename for a title, falling back to the default name.
func FileName(title string) string {
	name := parsing.SafeName(title, consts.QRMaxNameLen)
	if name == "" {
		name = consts.QRDefaultName
	}
	return name + consts.QRSuffix
}

// PathFor joins the QR filename for a title onto dir.
func PathFor(dir, title string) string {
	return filepath.Join(dir, FileName(title))
}
