package extract

import "strings"

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = "#"

// CleanLine removes the comment suffix and surrounding whitespace.
func CleanLine(line string) string {
	before, _, _ := strings.Cut(line, commentMarker)
	return strings.TrimSpace(before)
}

// ParseLine reports whether metric occurs in the cleaned line and, if so,
// returns the trimmed text following its first occurrence. Matching is by
// substring, so "ipc" also matches a "system.cpu.ipc" line.
func ParseLine(line, metric string) (string, bool) {
	clean := CleanLine(line)
	idx := strings.Index(clean, metric)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(clean[idx+len(metric):]), true
}
