package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-match-engine/internal/types"
)

// jobTypeRule pairs a detection pattern with the job type it yields. The
// optional unless pattern vetoes the rule when it also matches, which keeps
// "full-time" from winning in postings that say "part-time".
type jobTypeRule struct {
	pattern *regexp.Regexp
	unless  *regexp.Regexp
	value   string
}

// jobTypeRules is evaluated in order; the first matching rule wins. All
// patterns use word boundaries so "contraction" never reads as "contract".
var jobTypeRules = []jobTypeRule{
	{
		pattern: regexp.MustCompile(`\b(?:full[\s-]?time|ft|permanent)\b`),
		unless:  regexp.MustCompile(`\bpart[\s-]?time\b`),
		value:   types.JobTypeFullTime,
	},
	{
		pattern: regexp.MustCompile(`\b(?:contract[\s-]?to[\s-]?hire|cth|contractor|contract basis)\b`),
		value:   types.JobTypeContractor,
	},
	{
		pattern: regexp.MustCompile(`\b(?:contract|temporary|temp)\b`),
		value:   types.JobTypeContractor,
	},
	{
		pattern: regexp.MustCompile(`\b(?:part[\s-]?time|pt)\b`),
		value:   types.JobTypePartTime,
	},
	{
		pattern: regexp.MustCompile(`\b(?:internship|intern)\b`),
		value:   types.JobTypeInternship,
	},
}

// DetectJobType classifies the employment type of a posting. Full Time is the
// default when nothing matches; that is a product decision, not a fallback
// for errors.
func DetectJobType(text string) string {
	folded := strings.ToLower(text)
	for _, rule := range jobTypeRules {
		if !rule.pattern.MatchString(folded) {
			continue
		}
		if rule.unless != nil && rule.unless.MatchString(folded) {
			continue
		}
		return rule.value
	}
	return types.JobTypeFullTime
}
