package models

import "strings"

// JoinLabels renders an ordered label set as the single comma-joined string
// the backend expects for ItemPayload.Tags and ItemPayload.Features.
func JoinLabels(labels []string) string {
	return strings.Join(labels, ",")
}

// SplitLabels parses a comma-joined label string back into an ordered set.
// Surrounding whitespace is trimmed and empty entries are dropped, so
// "a, b,,c" yields ["a" "b" "c"].
func SplitLabels(s string) []string {
	parts := strings.Split(s, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		labels = append(labels, p)
	}
	return labels
}
