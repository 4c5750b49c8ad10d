package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultPhraseLimit is how many key phrases are kept.
const DefaultPhraseLimit = 40

// phraseTokenPattern matches alphanumeric tokens, allowing the +, / and &
// characters so compounds like "CI/CD" and "C++" survive tokenization.
var phraseTokenPattern = regexp.MustCompile(`[A-Za-z0-9+/&]+`)

// KeyPhrases walks the text line by line, builds uni/bi/tri-grams from each
// line's tokens, accumulates counts and returns the top phrases ranked by
// descending count with first-seen order breaking ties. Each word of the
// returned phrases is title-cased.
func KeyPhrases(text string, limit int) []string {
	if strings.TrimSpace(text) == "" || limit <= 0 {
		return nil
	}

	counts := make(map[string]int)
	// Counting folds case; display keeps the first-seen original so
	// acronym tokens like "CI/CD" survive title-casing.
	display := make(map[string]string)
	order := make([]string, 0)

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for _, line := range lines {
		tokens := phraseTokenPattern.FindAllString(line, -1)
		for n := 1; n <= 3; n++ {
			for i := 0; i+n <= len(tokens); i++ {
				raw := strings.Join(tokens[i:i+n], " ")
				gram := strings.ToLower(raw)
				if !acceptGram(gram) {
					continue
				}
				if counts[gram] == 0 {
					order = append(order, gram)
					display[gram] = raw
				}
				counts[gram]++
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	result := make([]string, len(order))
	for i, gram := range order {
		result[i] = TitleCasePhrase(display[gram])
	}
	return result
}

// acceptGram rejects grams shorter than four characters, generic headings and
// grams consisting entirely of stop words.
func acceptGram(gram string) bool {
	if len(gram) < 4 {
		return false
	}
	if IsGenericHeading(gram) {
		return false
	}
	for _, word := range strings.Fields(gram) {
		if !IsStopWord(word) {
			return true
		}
	}
	return false
}
