package utils

import "strings"

// Ellipsis is appended to strings cut by Truncate
const Ellipsis = "…"

// Truncate shortens text to at most maxLength runes. Longer text is cut to
// maxLength-1 runes followed by an ellipsis, so truncating twice at the same
// limit returns the same string.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if maxLength <= 0 || len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength-1]) + Ellipsis
}

// FirstLine returns the text before the first newline
func FirstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSuffix(line, "\r")
}

// ShortSHA returns the 7-character abbreviation of a commit SHA
func ShortSHA(sha string) string {
	if len(sha) <= 7 {
		return sha
	}
	return sha[:7]
}
