package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Letters and digits of any script are kept.
	unsafeNameChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Zs}-]`)
	nameSeparators  = regexp.MustCompile(`[-\s\p{Zs}]+`)
)

// SafeName turns a title into a filename stem: drops characters outside word/space/hyphen,
// trims, truncates to maxLen runes and joins words with underscores.
func SafeName(title string, maxLen int) string {
	s := strings.TrimSpace(unsafeNameChars.ReplaceAllString(title, ""))
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		s = string([]rune(s)[:maxLen])
	}
	return nameSeparators.ReplaceAllString(s, "_")
}

// EnsureExt appends ext to name unless it already ends with it (case-insensitive).
func EnsureExt(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		return name
	}
	return name + ext
}

// Stem returns the filename without its extension.
func Stem(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
