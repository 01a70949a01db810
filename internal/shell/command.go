// Package shell parses user input into commands and dispatches them to the collaborators.
package shell

import (
	"strings"
	"unicode"

	"ytd/internal/validation"
)

// Verb is the closed set of shell commands.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbNone         // blank line
	VerbVideo
	VerbAudio
	VerbInfo
	VerbList
	VerbStitch
	VerbUpload
	VerbBackup
	VerbQR
	VerbAuth
	VerbHelp
	VerbExit
)

var verbNames = map[string]Verb{
	"video":  VerbVideo,
	"audio":  VerbAudio,
	"info":   VerbInfo,
	"list":   VerbList,
	"stitch": VerbStitch,
	"upload": VerbUpload,
	"backup": VerbBackup,
	"qr":     VerbQR,
	"auth":   VerbAuth,
	"help":   VerbHelp,
	"exit":   VerbExit,
	"quit":   VerbExit,
	"q":      VerbExit,
}

// String returns the canonical verb name.
func (v Verb) String() string {
	switch v {
	case VerbVideo:
		return "video"
	case VerbAudio:
		return "audio"
	case VerbInfo:
		return "info"
	case VerbList:
		return "list"
	case VerbStitch:
		return "stitch"
	case VerbUpload:
		return "upload"
	case VerbBackup:
		return "backup"
	case VerbQR:
		return "qr"
	case VerbAuth:
		return "auth"
	case VerbHelp:
		return "help"
	case VerbExit:
		return "exit"
	case VerbNone:
		return ""
	default:
		return "unknown"
	}
}

// Command is one parsed line of input.
type Command struct {
	Verb Verb
	Arg  string // remainder of the line, case preserved
	Word string // first token as typed
}

// Parse classifies a line of input. Verbs are case-insensitive.
//
// A line starting with a URL instead of a verb is a video download.
func Parse(line string) Command {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Verb: VerbNone}
	}

	word, arg := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, arg = line[:i], strings.TrimSpace(line[i:])
	}

	if v, ok := verbNames[strings.ToLower(word)]; ok {
		return Command{Verb: v, Arg: arg, Word: word}
	}
	if validation.LooksLikeURL(word) {
		return Command{Verb: VerbVideo, Arg: line, Word: word}
	}
	return Command{Verb: VerbUnknown, Arg: arg, Word: word}
}
