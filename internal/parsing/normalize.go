// Package parsing derives structured job metadata from raw posting text using
// ordered regex rule tables. Every function is pure and total: malformed or
// empty input yields empty values, never an error.
package parsing

import (
	"regexp"
	"strings"
)

var (
	bulletPrefixPattern = regexp.MustCompile(`^\s*[•\-]\s*`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

// NormalizeForMatching flattens posting text for keyword matching: line
// breaks become spaces, markdown bold markers and leading bullet glyphs are
// stripped, and whitespace runs collapse to a single space.
func NormalizeForMatching(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = bulletPrefixPattern.ReplaceAllString(line, "")
	}

	flat := strings.Join(lines, " ")
	flat = strings.ReplaceAll(flat, "**", "")
	flat = whitespacePattern.ReplaceAllString(flat, " ")
	return strings.TrimSpace(flat)
}

// splitLines returns the non-empty trimmed lines of the text.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
