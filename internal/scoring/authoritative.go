package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/job-match-engine/internal/taxonomy"
	"github.com/jonathan/job-match-engine/internal/types"
)

// ServiceAnalysis is the match result returned by the external AI match
// service.
type ServiceAnalysis struct {
	MatchingKeywords []string `json:"matching_keywords"`
	MissingKeywords  []string `json:"missing_keywords"`
	SimilarityScore  float64  `json:"similarity_score"`
	TechnicalScore   float64  `json:"technical_score"`
}

// ApplyServiceAnalysis normalizes an authoritative service result into a
// MatchAnalysis, which takes precedence over the local estimate. When no
// service result is available the local estimate passes through unchanged.
func ApplyServiceAnalysis(local *types.MatchAnalysis, svc *ServiceAnalysis) *types.MatchAnalysis {
	if svc == nil {
		return local
	}

	matched := foldUnique(svc.MatchingKeywords, nil)
	// Keep the partition disjoint: the matched set wins ties.
	missing := foldUnique(svc.MissingKeywords, matched)

	var techMatched, techMissing []string
	for _, kw := range matched {
		if taxonomy.IsTechnical(kw) {
			techMatched = append(techMatched, kw)
		}
	}
	for _, kw := range missing {
		if taxonomy.IsTechnical(kw) {
			techMissing = append(techMissing, kw)
		}
	}

	return &types.MatchAnalysis{
		SimilarityScore:  clampScore(svc.SimilarityScore),
		TechnicalScore:   clampScore(svc.TechnicalScore),
		MatchingKeywords: matched,
		MissingKeywords:  missing,
		TechnicalMatches: techMatched,
		TechnicalMissing: techMissing,
		TotalJobKeywords: len(matched) + len(missing),
		MatchCount:       len(matched),
		MissingCount:     len(missing),
		Authoritative:    true,
	}
}

// foldUnique dedupes case-insensitively, keeping first-seen casing, and drops
// entries already present in exclude.
func foldUnique(values, exclude []string) []string {
	excluded := make(map[string]bool, len(exclude))
	for _, v := range exclude {
		excluded[strings.ToLower(strings.TrimSpace(v))] = true
	}

	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] || excluded[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
