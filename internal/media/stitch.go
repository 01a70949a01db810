// Package media joins downloaded video artifacts with ffmpeg.
package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/parsing"
	"ytd/internal/utils/logging"

	"github.com/google/uuid"
)

// Stitcher concatenates video files through ffmpeg's concat demuxer.
type Stitcher struct {
	ffmpegPath string
	probe      func(path string) error
}

// NewStitcher returns a Stitcher using the given ffmpeg and ffprobe binaries.
func NewStitcher(ffmpegPath, ffprobePath string) *Stitcher {
	return &Stitcher{
		ffmpegPath: ffmpegPath,
		probe: func(path string) error {
			return ProbeVideo(ffmpegPath, ffprobePath, path)
		},
	}
}

// Stitch re-encodes inputs, in order, into a single libx264/aac output.
func (s *Stitcher) Stitch(ctx context.Context, inputs []string, output string) error {
	if len(inputs) < 2 {
		return fmt.Errorf("%w: need at least 2 videos to stitch, got %d", errconsts.ErrInvalidInput, len(inputs))
	}
	if IsInput(inputs, output) {
		return fmt.Errorf("%w: output %q would overwrite one of its inputs", errconsts.ErrInvalidInput, filepath.Base(output))
	}

	for _, in := range inputs {
		if err := s.probe(in); err != nil {
			return fmt.Errorf("%w: %w", errconsts.ErrStitchFailed, err)
		}
	}

	listPath, err := writeConcatList(os.TempDir(), inputs)
	if err != nil {
		return fmt.Errorf("%w: %w", errconsts.ErrStitchFailed, err)
	}
	defer func() {
		if err := os.Remove(listPath); err != nil && !os.IsNotExist(err) {
			logging.W("Failed to remove concat list %q: %v", listPath, err)
		}
	}()

	args := concatArgs(listPath, output)
	logging.D(1, "Executing command: %s %s", s.ffmpegPath, strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.ffmpegPath, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: "+errconsts.FFmpegFailure, errconsts.ErrStitchFailed, lastLines(stderr.String(), err))
	}

	logging.D(1, "Stitched %d videos into %s", len(inputs), output)
	return nil
}

// OutputName returns the stitch output filename for an optional user-supplied name.
// Directory components are dropped so the output stays in the artifact directory.
func OutputName(name string, now time.Time) string {
	name = strings.TrimSpace(name)
	if name != "" {
		name = filepath.Base(filepath.Clean(name))
	}
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return consts.StitchPrefix + now.Format(consts.StitchTimeFormat) + consts.StitchExt
	}
	return parsing.EnsureExt(name, consts.StitchExt)
}

// IsInput reports whether output names the same file as one of the inputs.
func IsInput(inputs []string, output string) bool {
	out := filepath.Clean(output)
	for _, in := range inputs {
		if strings.EqualFold(filepath.Clean(in), out) {
			return true
		}
	}
	return false
}

// concatArgs builds the ffmpeg argument list for a concat-demuxer re-encode.
func concatArgs(listPath, output string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c:v", consts.StitchVideoCodec,
		"-c:a", consts.StitchAudioCodec,
		output,
	}
}

// writeConcatList writes a uniquely named concat-demuxer list into dir.
func writeConcatList(dir string, inputs []string) (string, error) {
	var b strings.Builder
	for _, in := range inputs {
		abs, err := filepath.Abs(in)
		if err != nil {
			return "", err
		}
		// Single quotes are closed, escaped and reopened.
		b.WriteString("file '" + strings.ReplaceAll(abs, "'", `'\''`) + "'\n")
	}

	p := filepath.Join(dir, "ytd_concat_"+uuid.NewString()+".txt")
	if err := os.WriteFile(p, []byte(b.String()), consts.PermsArtifactFile); err != nil {
		return "", fmt.Errorf("failed to write concat list: %w", err)
	}
	return p, nil
}

// lastLines keeps the tail of ffmpeg's stderr so errors stay on one screen.
func lastLines(stderr string, err error) error {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return err
	}
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	return fmt.Errorf("%w: %s", err, strings.Join(lines, " | "))
}
