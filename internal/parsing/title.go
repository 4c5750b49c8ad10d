package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-match-engine/internal/keywords"
)

const (
	maxTitleTokens      = 8
	titleScanLines      = 10
	lastResortScanLines = 12
	minTitleLineLength  = 4
)

var (
	titleLabelPattern = regexp.MustCompile(`(?im)^\s*(?:job\s+)?(?:title|position|role)\s*:\s*(.+)$`)

	// seniorityTitlePattern finds "Senior ... Engineer" style titles inside a
	// line: a seniority marker, up to four connecting words, then a role noun.
	seniorityTitlePattern = regexp.MustCompile(
		`(?i)\b(?:senior|sr\.?|junior|jr\.?|lead|principal|staff|chief|head of|entry[\s-]?level|mid[\s-]?level|associate)` +
			`\s+(?:[A-Za-z+/&.-]+\s+){0,4}?` +
			`(?:engineer|developer|manager|designer|analyst|architect|scientist|consultant|specialist|administrator|director|programmer|intern)\b`)

	// directTitlePattern finds a run of capitalized words ending in a role noun.
	directTitlePattern = regexp.MustCompile(
		`\b((?:[A-Z][A-Za-z0-9+/&.-]*\s+){1,4}` +
			`(?:Engineer|Developer|Manager|Designer|Analyst|Architect|Scientist|Consultant|Specialist|Administrator|Director|Programmer|Intern))\b`)

	// noiseLinePattern flags lines that are never titles: salary figures,
	// apply buttons, logos, relative timestamps.
	noiseLinePattern = regexp.MustCompile(`(?i)\$|\bapply\b|\blogo\b|\bposted\b|\bago\b|\d{1,2}:\d{2}|\bsalary\b`)

	introPrefixPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^we(?:'re| are) (?:looking for|seeking|hiring|searching for)(?: an?| a| the)?\s+`),
		regexp.MustCompile(`(?i)^(?:looking|searching) for(?: an?| a| the)?\s+`),
		regexp.MustCompile(`(?i)^(?:seeking|hiring)(?: an?| a| the)?\s+`),
		regexp.MustCompile(`(?i)^join (?:us|our team) as(?: an?| a)?\s+`),
		regexp.MustCompile(`(?i)^as an?\s+`),
	}

	leadingArticlePattern = regexp.MustCompile(`(?i)^(?:a|an|the)\s+`)

	roleNouns = map[string]bool{
		"engineer": true, "developer": true, "manager": true, "designer": true,
		"analyst": true, "architect": true, "scientist": true, "consultant": true,
		"specialist": true, "administrator": true, "director": true,
		"programmer": true, "intern": true, "lead": true,
	}
)

// titleCandidate is one stage's raw output before cleanup.
type titleCandidate struct {
	title   string
	company string
}

// titleStages is the cascade, in priority order. The first stage whose
// candidate survives CleanTitle wins.
var titleStages = []func(text string, lines []string) titleCandidate{
	titleFromLabel,
	titleFromSeniorityLine,
	titleFromDirectPattern,
	titleFromCapitalizedRun,
	titleFromFirstLine,
	titleFromAnyPlausibleLine,
}

// ExtractTitle runs the title cascade over the posting text. It returns the
// cleaned title and, when a stage split a "Title at Company" line, the
// company half; both are "" when nothing matches.
func ExtractTitle(text string) (string, string) {
	lines := splitLines(text)
	for _, stage := range titleStages {
		candidate := stage(text, lines)
		if candidate.title == "" {
			continue
		}
		cleaned := CleanTitle(candidate.title)
		if cleaned == "" {
			continue
		}
		return cleaned, strings.TrimSpace(candidate.company)
	}
	return "", ""
}

func titleFromLabel(text string, _ []string) titleCandidate {
	if m := titleLabelPattern.FindStringSubmatch(text); m != nil {
		return titleCandidate{title: m[1]}
	}
	return titleCandidate{}
}

func titleFromSeniorityLine(_ string, lines []string) titleCandidate {
	limit := min(len(lines), titleScanLines)
	for _, line := range lines[:limit] {
		if keywords.IsGenericHeading(line) || isNoiseLine(line) {
			continue
		}
		if m := seniorityTitlePattern.FindString(line); m != "" {
			return titleCandidate{title: m}
		}
	}
	return titleCandidate{}
}

func titleFromDirectPattern(text string, _ []string) titleCandidate {
	if m := directTitlePattern.FindStringSubmatch(text); m != nil {
		return titleCandidate{title: m[1]}
	}
	return titleCandidate{}
}

// titleFromCapitalizedRun scans each line for a run of capitalized words that
// ends in a role noun. Known to false-positive on boilerplate lines; the
// generic-heading list is the only guard.
func titleFromCapitalizedRun(_ string, lines []string) titleCandidate {
	for _, line := range lines {
		if keywords.IsGenericHeading(line) {
			continue
		}
		tokens := strings.Fields(line)
		run := make([]string, 0, len(tokens))
		for _, token := range tokens {
			word := strings.Trim(token, ".,;:!?()")
			if word == "" || !startsUpper(word) {
				run = run[:0]
				continue
			}
			run = append(run, word)
			if len(run) >= 2 && roleNouns[strings.ToLower(word)] {
				return titleCandidate{title: strings.Join(run, " ")}
			}
		}
	}
	return titleCandidate{}
}

// titleFromFirstLine falls back to the first non-generic line, splitting a
// "Title at Company" or "Title @ Company" form into both halves.
func titleFromFirstLine(_ string, lines []string) titleCandidate {
	for _, line := range lines {
		if keywords.IsGenericHeading(line) || isNoiseLine(line) {
			continue
		}
		if len(line) < minTitleLineLength {
			continue
		}
		return splitTitleCompany(line)
	}
	return titleCandidate{}
}

// titleFromAnyPlausibleLine is the last resort: any of the first 12 lines
// that is not a bullet, is at least four characters long and is not a section
// heading.
func titleFromAnyPlausibleLine(_ string, lines []string) titleCandidate {
	limit := min(len(lines), lastResortScanLines)
	for _, line := range lines[:limit] {
		if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
			continue
		}
		if len(line) < minTitleLineLength || keywords.IsGenericHeading(line) {
			continue
		}
		return titleCandidate{title: line}
	}
	return titleCandidate{}
}

// splitTitleCompany splits "Senior Engineer at Acme" into title and company.
func splitTitleCompany(line string) titleCandidate {
	if idx := strings.Index(line, " at "); idx > 0 {
		return titleCandidate{
			title:   strings.TrimSpace(line[:idx]),
			company: cleanCompany(line[idx+4:]),
		}
	}
	if idx := strings.Index(line, "@"); idx > 0 {
		return titleCandidate{
			title:   strings.TrimSpace(line[:idx]),
			company: cleanCompany(line[idx+1:]),
		}
	}
	return titleCandidate{title: line}
}

// CleanTitle normalizes a raw title candidate: strips a leading intro phrase,
// truncates at sentence-ending punctuation, drops leading articles, keeps at
// most eight tokens and re-title-cases them. A cleaned title that matches a
// generic heading is rejected (returns "").
func CleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	for _, pattern := range introPrefixPatterns {
		title = pattern.ReplaceAllString(title, "")
	}
	if idx := strings.IndexAny(title, ".!?;"); idx >= 0 {
		title = title[:idx]
	}
	title = strings.TrimSpace(title)
	title = leadingArticlePattern.ReplaceAllString(title, "")

	tokens := strings.Fields(title)
	if len(tokens) > maxTitleTokens {
		tokens = tokens[:maxTitleTokens]
	}
	for i, token := range tokens {
		tokens[i] = keywords.TitleCaseWord(token)
	}

	cleaned := strings.Join(tokens, " ")
	if cleaned == "" || keywords.IsGenericHeading(cleaned) {
		return ""
	}
	return cleaned
}

func isNoiseLine(line string) bool {
	return noiseLinePattern.MatchString(line)
}

func startsUpper(word string) bool {
	return word[0] >= 'A' && word[0] <= 'Z'
}
