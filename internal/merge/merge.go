// Package merge combines job metadata arriving from multiple sources
// (free-text derivation, the external extraction service, previously saved
// records) with a deterministic, additive precedence order.
package merge

import (
	"sort"
	"strings"

	"github.com/jonathan/job-match-engine/internal/types"
)

// Merge returns a copy of base patched with updates. Scalar fields overwrite
// only when the update value is non-empty; array fields replace only when the
// update's array is non-empty; ATS insights merge key by key. Later merges
// win ties, but an empty later source never clears an earlier value.
func Merge(base, updates *types.JobMetadata) *types.JobMetadata {
	var out types.JobMetadata
	if base != nil {
		out = *base
	}
	if updates == nil {
		return &out
	}

	setScalar(&out.Title, updates.Title)
	setScalar(&out.Company, updates.Company)
	setScalar(&out.JobType, updates.JobType)
	setScalar(&out.RemoteStatus, updates.RemoteStatus)
	setScalar(&out.Location, updates.Location)
	setScalar(&out.Budget, updates.Budget)

	if len(updates.Skills) > 0 {
		out.Skills = dedupeFold(updates.Skills)
	}
	if len(updates.Keywords) > 0 {
		out.Keywords = dedupeFold(updates.Keywords)
	}
	if len(updates.SoftSkills) > 0 {
		out.SoftSkills = dedupeFold(updates.SoftSkills)
	}
	if len(updates.HighFrequencyKeywords) > 0 {
		out.HighFrequencyKeywords = SortHighFrequency(updates.HighFrequencyKeywords)
	}

	if len(updates.ATSInsights.ActionVerbs) > 0 {
		out.ATSInsights.ActionVerbs = dedupeFold(updates.ATSInsights.ActionVerbs)
	}
	if len(updates.ATSInsights.Metrics) > 0 {
		out.ATSInsights.Metrics = dedupeFold(updates.ATSInsights.Metrics)
	}
	if len(updates.ATSInsights.IndustryTerms) > 0 {
		out.ATSInsights.IndustryTerms = dedupeFold(updates.ATSInsights.IndustryTerms)
	}

	return &out
}

// ApplyBundle patches base metadata with a normalized keyword bundle, using
// the same additive rules as Merge.
func ApplyBundle(base *types.JobMetadata, bundle *types.KeywordBundle) *types.JobMetadata {
	if bundle == nil {
		return Merge(base, nil)
	}
	updates := &types.JobMetadata{
		Skills:                bundle.Skills,
		Keywords:              bundle.Keywords,
		SoftSkills:            bundle.SoftSkills,
		HighFrequencyKeywords: bundle.HighFrequencyKeywords,
		ATSInsights: types.ATSInsights{
			ActionVerbs:   bundle.ActionVerbs,
			Metrics:       bundle.Metrics,
			IndustryTerms: bundle.IndustryTerms,
		},
	}
	return Merge(base, updates)
}

// SortHighFrequency returns the entries sorted descending by importance rank
// then frequency, preserving input order for full ties, with case-insensitive
// duplicates removed (first-seen wins).
func SortHighFrequency(entries []types.HighFrequencyKeyword) []types.HighFrequencyKeyword {
	seen := make(map[string]bool, len(entries))
	out := make([]types.HighFrequencyKeyword, 0, len(entries))
	for _, e := range entries {
		e.Keyword = strings.TrimSpace(e.Keyword)
		if e.Keyword == "" {
			continue
		}
		key := strings.ToLower(e.Keyword)
		if seen[key] {
			continue
		}
		seen[key] = true
		e.Importance = strings.ToLower(strings.TrimSpace(e.Importance))
		if types.ImportanceRank(e.Importance) == 0 {
			e.Importance = types.ImportanceLow
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := types.ImportanceRank(out[i].Importance), types.ImportanceRank(out[j].Importance)
		if ri != rj {
			return ri > rj
		}
		return out[i].Frequency > out[j].Frequency
	})
	return out
}

func setScalar(dst *string, value string) {
	value = strings.TrimSpace(value)
	if value != "" {
		*dst = value
	}
}

func dedupeFold(values []string) []string {
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
