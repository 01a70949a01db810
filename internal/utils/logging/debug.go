package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"ytd/internal/domain/consts"

	"github.com/rs/zerolog"
)

const (
	tagBaseLen = 1 + // "["
		len(consts.ColorBlue) +
		9 + // "Function: "
		len(consts.ColorReset) +
		3 + // " - "
		len(consts.ColorBlue) +
		5 + // "File: "
		len(consts.ColorReset) +
		3 + // " : "
		len(consts.ColorBlue) +
		5 + // "Line: "
		len(consts.ColorReset) +
		2 // "]\n"
)

var (
	Level int = -1 // Pre initialization
	mu    sync.Mutex
)

// E logs an error with caller information.
func E(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.RedError, format, args, true)
	emit(msg, zerolog.ErrorLevel)
	return msg
}

// W logs a warning.
func W(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.YellowWarning, format, args, false)
	emit(msg, zerolog.WarnLevel)
	return msg
}

// D logs a debug message when the configured debug level is at least l.
func D(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}

	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.YellowDebug, format, args, true)
	emit(msg, zerolog.DebugLevel)
	return msg
}

// I logs an info message.
func I(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.BlueInfo, format, args, false)
	emit(msg, zerolog.InfoLevel)
	return msg
}

// build assembles a tagged message. Callers hold mu.
func build(tag, format string, args []any, withCaller bool) string {
	var b strings.Builder
	b.Grow(len(tag) + tagBaseLen + len(format) + (len(args) * 32))
	b.WriteString(tag)

	// Write formatted message
	if len(args) != 0 {
		fmt.Fprintf(&b, format, args...)
	} else {
		b.WriteString(format)
	}

	if !withCaller {
		b.WriteString("\n")
		return b.String()
	}

	pc, file, line, _ := runtime.Caller(2)
	file = filepath.Base(file)
	funcName := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = filepath.Base(fn.Name())
	}

	b.WriteString(" [")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Function: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(funcName)
	b.WriteString(" - ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("File: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(file)
	b.WriteString(" : ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Line: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(strconv.Itoa(line))
	b.WriteString("]\n")
	return b.String()
}
