// Package prompt reads user answers line by line, cancellable through a context.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"ytd/internal/domain/errconsts"
	"ytd/internal/utils/logging"
)

// Reader serves lines read from an input stream by a background goroutine.
type Reader struct {
	out   io.Writer
	lines chan string // closed at end of input
}

// New starts reading lines from in. Prompts are written to out.
func New(in io.Reader, out io.Writer) *Reader {
	r := &Reader{
		out:   out,
		lines: make(chan string),
	}

	go func() {
		defer close(r.lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			r.lines <- strings.TrimRight(scanner.Text(), "\r")
		}
		if err := scanner.Err(); err != nil {
			logging.D(1, "Input reader stopped: %v", err)
		}
	}()
	return r
}

// Ask prints msg and waits for one line of input, trimmed.
//
// Returns errconsts.ErrCancelled when ctx ends first and io.EOF once input is exhausted.
func (r *Reader) Ask(ctx context.Context, msg string) (string, error) {
	fmt.Fprint(r.out, msg)

	select {
	case line, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil

	case <-ctx.Done():
		fmt.Fprintln(r.out)
		return "", errconsts.ErrCancelled
	}
}

// AskDefault is Ask, returning def for an empty answer.
func (r *Reader) AskDefault(ctx context.Context, msg, def string) (string, error) {
	ans, err := r.Ask(ctx, fmt.Sprintf("%s [%s]: ", msg, def))
	if err != nil {
		return "", err
	}
	if ans == "" {
		return def, nil
	}
	return ans, nil
}

// Confirm asks a [Y/n] question. Anything but "n"/"no" confirms.
func (r *Reader) Confirm(ctx context.Context, msg string) (bool, error) {
	ans, err := r.Ask(ctx, msg+" [Y/n]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(ans) {
	case "n", "no":
		return false, nil
	}
	return true, nil
}

// Lines collects answers until a blank line.
func (r *Reader) Lines(ctx context.Context, msg string) ([]string, error) {
	var out []string
	for {
		ans, err := r.Ask(ctx, msg)
		if err != nil {
			return nil, err
		}
		if ans == "" {
			return out, nil
		}
		out = append(out, ans)
	}
}
