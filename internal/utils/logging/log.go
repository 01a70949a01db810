// Package logging prints leveled, colored program messages and mirrors them to the log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"ytd/internal/domain/consts"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

var (
	console    io.Writer = colorable.NewColorableStdout()
	fileLogger *zerolog.Logger
	logFile    *os.File
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging opens (or creates) the log file and sets the debug level.
func SetupLogging(logFilePath string, level int) error {
	mu.Lock()
	defer mu.Unlock()

	Level = level
	if logFilePath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logFilePath), consts.PermsGenericDir); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consts.PermsLogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
	}

	l := zerolog.New(f).With().Timestamp().Str("program", consts.ProgramName).Logger()
	fileLogger = &l
	logFile = f

	fileLogger.Info().Msgf("=========== %v ===========", time.Now().Format(time.RFC1123Z))
	return nil
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	fileLogger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// SetConsole redirects console output, returning the previous writer.
func SetConsole(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()

	prev := console
	console = w
	return prev
}

// emit prints to the console and writes the stripped message to the log file. Callers hold mu.
func emit(msg string, lvl zerolog.Level) {
	fmt.Fprint(console, msg)

	if fileLogger == nil {
		return
	}
	fileLogger.WithLevel(lvl).Msg(stripAnsiCodes(msg))
}

// stripAnsiCodes removes ANSI escape codes and the trailing newline from a string.
func stripAnsiCodes(input string) string {
	out := ansiEscape.ReplaceAllString(input, "")
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return out
}
