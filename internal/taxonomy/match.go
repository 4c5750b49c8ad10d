package taxonomy

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-match-engine/internal/types"
)

// TechnicalSkills returns the technical vocabulary terms present in the text,
// matched with word boundaries, in vocabulary order, capped at
// TechnicalSkillCap.
func TechnicalSkills(text string) []string {
	if text == "" {
		return nil
	}
	matched := matchBoundary(text, technicalSkills)
	if len(matched) > TechnicalSkillCap {
		matched = matched[:TechnicalSkillCap]
	}
	return matched
}

// SoftSkills returns the soft-skill vocabulary terms present in the text,
// matched as case-insensitive substrings.
func SoftSkills(text string) []string {
	return matchSubstring(text, softSkills)
}

// Insights returns the ATS insight term sets found in the text.
func Insights(text string) types.ATSInsights {
	return types.ATSInsights{
		ActionVerbs:   matchSubstring(text, actionVerbs),
		Metrics:       matchSubstring(text, metricTerms),
		IndustryTerms: matchSubstring(text, industryTerms),
	}
}

// IsTechnical reports whether the term is in the technical vocabulary,
// compared case-insensitively.
func IsTechnical(term string) bool {
	folded := strings.ToLower(strings.TrimSpace(term))
	return technicalIndex[folded]
}

var technicalIndex = func() map[string]bool {
	index := make(map[string]bool, len(technicalSkills))
	for _, skill := range technicalSkills {
		index[strings.ToLower(skill)] = true
	}
	return index
}()

// boundaryPatterns are compiled once per vocabulary term. A \b anchor is only
// attached next to a word character; terms like "C++" end on punctuation
// where \b would never match.
var boundaryPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(technicalSkills))
	for _, term := range technicalSkills {
		patterns[term] = boundaryPattern(term)
	}
	return patterns
}()

func boundaryPattern(term string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(term)
	expr := "(?i)"
	if isWordChar(term[0]) {
		expr += `\b`
	}
	expr += quoted
	if isWordChar(term[len(term)-1]) {
		expr += `\b`
	}
	return regexp.MustCompile(expr)
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func matchBoundary(text string, vocab []string) []string {
	var matched []string
	seen := make(map[string]bool)
	for _, term := range vocab {
		pattern, ok := boundaryPatterns[term]
		if !ok {
			pattern = boundaryPattern(term)
		}
		folded := strings.ToLower(term)
		if seen[folded] {
			continue
		}
		if pattern.MatchString(text) {
			matched = append(matched, term)
			seen[folded] = true
		}
	}
	return matched
}

func matchSubstring(text string, vocab []string) []string {
	if text == "" {
		return nil
	}
	folded := strings.ToLower(text)
	var matched []string
	seen := make(map[string]bool)
	for _, term := range vocab {
		key := strings.ToLower(term)
		if seen[key] {
			continue
		}
		if strings.Contains(folded, key) {
			matched = append(matched, term)
			seen[key] = true
		}
	}
	return matched
}
