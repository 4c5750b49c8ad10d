// Package highlight locates keyword occurrences in free text and marks them
// as non-overlapping emphasis spans for any rendering layer.
package highlight

import (
	"sort"

	"github.com/jonathan/job-match-engine/internal/scoring"
	"github.com/jonathan/job-match-engine/internal/types"
)

// span is one candidate keyword occurrence in the text.
type span struct {
	start   int
	end     int
	keyword string
}

// Highlight splits the text into ordered segments, marking every keyword
// occurrence that survives overlap resolution. Keywords are tried longest
// first so "React Native" wins over "React"; overlapping later matches are
// dropped (greedy interval scheduling). Concatenating the segment texts
// reproduces the input unchanged.
func Highlight(text string, keywordList []string) []types.Segment {
	if text == "" {
		return nil
	}

	kept := resolveSpans(text, keywordList)
	if len(kept) == 0 {
		return []types.Segment{{Text: text}}
	}

	segments := make([]types.Segment, 0, len(kept)*2+1)
	cursor := 0
	for _, s := range kept {
		if s.start > cursor {
			segments = append(segments, types.Segment{Text: text[cursor:s.start]})
		}
		segments = append(segments, types.Segment{
			Text:    text[s.start:s.end],
			IsMatch: true,
			Keyword: s.keyword,
		})
		cursor = s.end
	}
	if cursor < len(text) {
		segments = append(segments, types.Segment{Text: text[cursor:]})
	}
	return segments
}

// KeywordsInBullet returns the subset of keywords that match the bullet text,
// in the order given. Used to tag which missing keywords a generated bullet
// already covers.
func KeywordsInBullet(bulletText string, keywordList []string) []string {
	if bulletText == "" {
		return nil
	}
	var found []string
	for _, kw := range keywordList {
		pattern := scoring.MatchPattern(kw)
		if pattern != nil && pattern.MatchString(bulletText) {
			found = append(found, kw)
		}
	}
	return found
}

// resolveSpans collects all keyword matches and keeps a non-overlapping
// subset: keywords sorted by length descending claim their spans first, then
// surviving spans are ordered by start index.
func resolveSpans(text string, keywordList []string) []span {
	ordered := make([]string, len(keywordList))
	copy(ordered, keywordList)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	var collected []span
	for _, kw := range ordered {
		pattern := scoring.MatchPattern(kw)
		if pattern == nil {
			continue
		}
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			collected = append(collected, span{start: loc[0], end: loc[1], keyword: kw})
		}
	}

	// Longer keywords were collected first, so on overlap they win.
	var kept []span
	for _, candidate := range collected {
		if !overlapsAny(candidate, kept) {
			kept = append(kept, candidate)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].start < kept[j].start
	})
	return kept
}

func overlapsAny(candidate span, kept []span) bool {
	for _, s := range kept {
		if candidate.start < s.end && s.start < candidate.end {
			return true
		}
	}
	return false
}
