package history

import "strings"

// Complete returns the entries that begin with prefix, in their original
// order. Matching is literal and case-sensitive; an empty prefix matches all.
func Complete(entries []string, prefix string) []string {
	matches := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry, prefix) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Contains reports whether command appears in entries verbatim.
func Contains(entries []string, command string) bool {
	for _, entry := range entries {
		if entry == command {
			return true
		}
	}
	return false
}
