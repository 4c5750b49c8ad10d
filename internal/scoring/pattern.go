// Package scoring computes keyword-coverage match analyses between a job
// posting's candidate keyword set and a resume document.
package scoring

import (
	"regexp"
	"strings"
)

// MatchPattern builds the case-insensitive matcher for one keyword. Keywords
// containing slash, hyphen or underscore are matched as plain substrings so
// tokens like "CI/CD" work; everything else gets word boundaries so "AI"
// never matches inside "retail". Keywords are escaped before compilation; a
// pattern that still fails to compile is treated as never matching (nil).
func MatchPattern(keyword string) *regexp.Regexp {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}

	quoted := regexp.QuoteMeta(keyword)
	var expr string
	if strings.ContainsAny(keyword, "/-_") {
		expr = "(?i)" + quoted
	} else {
		expr = `(?i)\b` + quoted + `\b`
	}

	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return pattern
}
