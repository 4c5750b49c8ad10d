package keywords

import "strings"

// genericHeadings are boilerplate section titles that never count as titles,
// key phrases, or candidate keywords.
var genericHeadings = map[string]bool{
	"about the job":        true,
	"about the role":       true,
	"about the team":       true,
	"about the company":    true,
	"about us":             true,
	"about you":            true,
	"benefits":             true,
	"compensation":         true,
	"description":          true,
	"job description":      true,
	"job summary":          true,
	"nice to have":         true,
	"nice to haves":        true,
	"overview":             true,
	"perks":                true,
	"qualifications":       true,
	"requirements":         true,
	"responsibilities":     true,
	"summary":              true,
	"the role":             true,
	"the team":             true,
	"what we offer":        true,
	"what you'll do":       true,
	"what you will do":     true,
	"who we are":           true,
	"who you are":          true,
	"your responsibilities": true,
}

// IsGenericHeading reports whether the text is a boilerplate section heading.
// Comparison is case-insensitive with surrounding whitespace and a trailing
// colon ignored.
func IsGenericHeading(text string) bool {
	folded := strings.ToLower(strings.TrimSpace(text))
	folded = strings.TrimSuffix(folded, ":")
	folded = strings.TrimSpace(folded)
	return genericHeadings[folded]
}
