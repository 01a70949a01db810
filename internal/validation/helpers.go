package validation

import (
	"strings"

	"ytd/internal/utils/logging"
)

// DeduplicateSliceEntries removes duplicate entries in slices, keeping first-seen order.
func DeduplicateSliceEntries(input []string) []string {
	if len(input) == 0 {
		return input
	}

	dedupedSlice := make([]string, 0, len(input))
	dedupMap := make(map[string]bool, len(input))

	for _, in := range input {
		if dedupMap[in] {
			logging.D(2, "Removing duplicate of entry %q", in)
			continue
		}
		dedupMap[in] = true
		dedupedSlice = append(dedupedSlice, in)
	}
	return dedupedSlice
}

// SplitList splits comma separated input, trimming blanks.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
