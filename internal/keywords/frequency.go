package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/job-match-engine/internal/types"
)

const (
	// DefaultKeywordLimit is how many frequency-ranked keywords are kept.
	DefaultKeywordLimit = 12

	// Importance tier thresholds for high-frequency keywords.
	highImportanceMinCount   = 5
	mediumImportanceMinCount = 3
)

// wordPattern matches alphabetic words of at least four characters in
// lowercased text.
var wordPattern = regexp.MustCompile(`[a-z]{4,}`)

// wordCount is a token with its accumulated count and first-seen position.
type wordCount struct {
	word  string
	count int
	first int
}

// countWords tokenizes the text and accumulates per-word counts, preserving
// first-seen order for deterministic tie-breaking.
func countWords(text string) []wordCount {
	folded := strings.ToLower(text)

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, word := range wordPattern.FindAllString(folded, -1) {
		if IsStopWord(word) {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	ranked := make([]wordCount, 0, len(order))
	for i, word := range order {
		ranked = append(ranked, wordCount{word: word, count: counts[word], first: i})
	}
	return ranked
}

// TopKeywords returns the most frequent non-stop-words in the text, ranked by
// descending count with first-seen order breaking ties, capped at limit. The
// first letter of each keyword is capitalized.
func TopKeywords(text string, limit int) []string {
	if strings.TrimSpace(text) == "" || limit <= 0 {
		return nil
	}

	ranked := countWords(text)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	result := make([]string, len(ranked))
	for i, wc := range ranked {
		result[i] = Capitalize(wc.word)
	}
	return result
}

// HighFrequency returns keywords that occur at least twice, annotated with
// their count and an importance tier, sorted by importance rank then count
// then first-seen order.
func HighFrequency(text string, limit int) []types.HighFrequencyKeyword {
	if strings.TrimSpace(text) == "" || limit <= 0 {
		return nil
	}

	ranked := countWords(text)
	entries := make([]types.HighFrequencyKeyword, 0, len(ranked))
	firstSeen := make(map[string]int, len(ranked))
	for _, wc := range ranked {
		if wc.count < 2 {
			continue
		}
		entries = append(entries, types.HighFrequencyKeyword{
			Keyword:    Capitalize(wc.word),
			Frequency:  wc.count,
			Importance: importanceFor(wc.count),
		})
		firstSeen[Capitalize(wc.word)] = wc.first
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := types.ImportanceRank(entries[i].Importance), types.ImportanceRank(entries[j].Importance)
		if ri != rj {
			return ri > rj
		}
		if entries[i].Frequency != entries[j].Frequency {
			return entries[i].Frequency > entries[j].Frequency
		}
		return firstSeen[entries[i].Keyword] < firstSeen[entries[j].Keyword]
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func importanceFor(count int) string {
	switch {
	case count >= highImportanceMinCount:
		return types.ImportanceHigh
	case count >= mediumImportanceMinCount:
		return types.ImportanceMedium
	default:
		return types.ImportanceLow
	}
}
