package parsing

import (
	"regexp"
	"strings"
)

var (
	locationLabelPattern = regexp.MustCompile(`(?im)^\s*location\s*[:\-]\s*(.+)$`)
	cityStatePattern     = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)*, [A-Z]{2})\b`)

	// Secondary patterns tried when the primary capture turns out to be a
	// work-arrangement keyword instead of a place.
	secondaryLocationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bbased in\s+([A-Z][A-Za-z]+(?:[ ,][A-Z][A-Za-z]+)*)`),
		regexp.MustCompile(`(?i)\bheadquarter(?:s|ed)? in\s+([A-Z][A-Za-z]+(?:[ ,][A-Z][A-Za-z]+)*)`),
		regexp.MustCompile(`(?im)^\s*office\s*:\s*(.+)$`),
	}
)

// ExtractLocation finds the posting's location. A "Location:" label wins,
// then a "City, ST" pattern. A captured value that is itself an arrangement
// keyword (e.g. "Remote") is discarded, since it feeds work-arrangement
// detection instead, and the secondary based-in/headquarters patterns are
// tried.
func ExtractLocation(text string) string {
	candidate := extractLocationCandidate(text)
	if candidate == "" {
		return ""
	}
	if IsArrangementKeyword(candidate) {
		return extractSecondaryLocation(text)
	}
	return candidate
}

// extractLocationCandidate returns the raw primary capture, arrangement
// keywords included. DeriveJobMetadata feeds this value to
// DetectWorkArrangement before it is discarded from the location field.
func extractLocationCandidate(text string) string {
	if m := locationLabelPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := cityStatePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractSecondaryLocation(text string) string {
	for _, pattern := range secondaryLocationPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			value := strings.TrimSpace(m[1])
			if value != "" && !IsArrangementKeyword(value) {
				return value
			}
		}
	}
	return ""
}
