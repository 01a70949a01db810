// Package artifacts enumerates and selects media files in the artifact directory.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/models"
	"ytd/internal/utils/logging"
)

// IsVideo reports whether the filename carries a video extension.
func IsVideo(name string) bool {
	return slices.Contains(consts.VideoExtensions[:], strings.ToLower(filepath.Ext(name)))
}

// List returns every regular file in dir in lexical order.
//
// Video artifacts are numbered 1..N in that order, the same numbering used by selection prompts.
// A missing directory lists as empty.
func List(dir string) ([]models.Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read artifact directory %q: %w", dir, err)
	}

	// ReadDir sorts by filename.
	out := make([]models.Artifact, 0, len(entries))
	idx := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			logging.W("Skipping %q: %v", e.Name(), err)
			continue
		}

		a := models.Artifact{
			Name:    e.Name(),
			Path:    filepath.Join(dir, e.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Video:   IsVideo(e.Name()),
		}
		if a.Video {
			idx++
			a.Index = idx
		}
		out = append(out, a)
	}

	logging.D(2, "Listed %d artifacts (%d videos) in %q", len(out), idx, dir)
	return out, nil
}

// Videos returns the video artifacts of dir, ordered by selection index.
func Videos(dir string) ([]models.Artifact, error) {
	all, err := List(dir)
	if err != nil {
		return nil, err
	}
	videos := make([]models.Artifact, 0, len(all))
	for _, a := range all {
		if a.Video {
			videos = append(videos, a)
		}
	}
	return videos, nil
}

// ParseSelection parses "1 3 2" or "1,3,2" into zero-based indices over n items.
//
// Order and repeats are preserved. Every number must be within 1..n.
func ParseSelection(input string, n int) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no selection entered", errconsts.ErrInvalidInput)
	}

	out := make([]int, 0, len(fields))
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errconsts.ErrInvalidInput, f)
		}
		if i < 1 || i > n {
			return nil, fmt.Errorf("%w: %d is out of range 1-%d", errconsts.ErrInvalidInput, i, n)
		}
		out = append(out, i-1)
	}
	return out, nil
}

// Select resolves a selection string against a list of artifacts.
func Select(list []models.Artifact, input string) ([]models.Artifact, error) {
	idx, err := ParseSelection(input, len(list))
	if err != nil {
		return nil, err
	}
	out := make([]models.Artifact, 0, len(idx))
	for _, i := range idx {
		out = append(out, list[i])
	}
	return out, nil
}
