package parsing

import (
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-match-engine/internal/keywords"
	"github.com/jonathan/job-match-engine/internal/taxonomy"
	"github.com/jonathan/job-match-engine/internal/types"
)

// DeriveJobMetadata parses raw posting text into JobMetadata. The field
// extractors, frequency extractors and taxonomy matchers have no
// cross-dependency, so each group runs on its own goroutine writing disjoint
// fields. Returns nil for blank input.
func DeriveJobMetadata(text string) *types.JobMetadata {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	normalized := NormalizeForMatching(text)
	md := &types.JobMetadata{}

	var g errgroup.Group

	g.Go(func() error {
		title, companyFromTitle := ExtractTitle(text)
		company := ExtractCompany(text)
		if company == "" {
			company = companyFromTitle
		}
		md.Title = title
		md.Company = company
		return nil
	})

	g.Go(func() error {
		locationCandidate := extractLocationCandidate(text)
		md.Location = ExtractLocation(text)
		md.RemoteStatus = DetectWorkArrangement(normalized, locationCandidate)
		md.JobType = DetectJobType(normalized)
		md.Budget = ExtractBudget(text)
		return nil
	})

	g.Go(func() error {
		top := keywords.TopKeywords(normalized, keywords.DefaultKeywordLimit)
		phrases := keywords.KeyPhrases(text, keywords.DefaultPhraseLimit)
		md.Keywords = dedupeFold(append(top, phrases...))
		md.HighFrequencyKeywords = keywords.HighFrequency(normalized, keywords.DefaultKeywordLimit)
		return nil
	})

	g.Go(func() error {
		md.Skills = taxonomy.TechnicalSkills(normalized)
		md.SoftSkills = taxonomy.SoftSkills(normalized)
		md.ATSInsights = taxonomy.Insights(normalized)
		return nil
	})

	// The extractors never fail; Wait only synchronizes.
	_ = g.Wait()
	return md
}

// dedupeFold removes case-insensitive duplicates, keeping first-seen casing
// and order.
func dedupeFold(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
