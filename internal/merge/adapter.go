package merge

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/job-match-engine/internal/schemas"
	"github.com/jonathan/job-match-engine/internal/types"
)

// The external extraction service emits one of two response layouts: the
// current "normalized" shape (high_intensity_keywords/high_priority_keywords)
// and the legacy shape found in stored records
// (high_frequency_keywords/priority_keywords). Both are converted to a
// KeywordBundle at this single boundary.

// normalizedResponse is the current service response layout.
type normalizedResponse struct {
	SkillNames            []string         `json:"skills"`
	SoftSkills            []string         `json:"soft_skills"`
	HighIntensityKeywords []serviceKeyword `json:"high_intensity_keywords"`
	HighPriorityKeywords  []string         `json:"high_priority_keywords"`
	ATSInsights           *serviceInsights `json:"ats_insights"`
}

// storedResponse is the legacy layout persisted by older records.
type storedResponse struct {
	SkillNames            []string         `json:"skills"`
	SoftSkills            []string         `json:"soft_skills"`
	HighFrequencyKeywords []serviceKeyword `json:"high_frequency_keywords"`
	PriorityKeywords      []string         `json:"priority_keywords"`
	ActionVerbs           []string         `json:"action_verbs"`
	Metrics               []string         `json:"metrics"`
	IndustryTerms         []string         `json:"industry_terms"`
}

type serviceKeyword struct {
	Keyword    string `json:"keyword"`
	Frequency  int    `json:"frequency"`
	Importance string `json:"importance"`
}

type serviceInsights struct {
	ActionVerbs   []string `json:"action_verbs"`
	Metrics       []string `json:"metrics"`
	IndustryTerms []string `json:"industry_terms"`
}

// ShapeError is returned when a response document matches neither known
// layout.
type ShapeError struct {
	Message string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unrecognized service response shape: %s", e.Message)
}

// NormalizeServiceResponse detects which layout the raw document uses,
// validates it against the corresponding schema and converts it into the
// internal keyword bundle. It is pure: no network access, no side effects.
func NormalizeServiceResponse(doc []byte) (*types.KeywordBundle, error) {
	shape, err := detectShape(doc)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateServiceResponse(doc, shape); err != nil {
		return nil, err
	}

	switch shape {
	case schemas.ShapeNormalized:
		var resp normalizedResponse
		if err := json.Unmarshal(doc, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode normalized response: %w", err)
		}
		return &types.KeywordBundle{
			Skills:                dedupeFold(resp.SkillNames),
			Keywords:              dedupeFold(resp.HighPriorityKeywords),
			SoftSkills:            dedupeFold(resp.SoftSkills),
			HighFrequencyKeywords: SortHighFrequency(convertKeywords(resp.HighIntensityKeywords)),
			ActionVerbs:           dedupeFold(insightVerbs(resp.ATSInsights)),
			Metrics:               dedupeFold(insightMetrics(resp.ATSInsights)),
			IndustryTerms:         dedupeFold(insightIndustry(resp.ATSInsights)),
		}, nil

	default:
		var resp storedResponse
		if err := json.Unmarshal(doc, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode stored response: %w", err)
		}
		return &types.KeywordBundle{
			Skills:                dedupeFold(resp.SkillNames),
			Keywords:              dedupeFold(resp.PriorityKeywords),
			SoftSkills:            dedupeFold(resp.SoftSkills),
			HighFrequencyKeywords: SortHighFrequency(convertKeywords(resp.HighFrequencyKeywords)),
			ActionVerbs:           dedupeFold(resp.ActionVerbs),
			Metrics:               dedupeFold(resp.Metrics),
			IndustryTerms:         dedupeFold(resp.IndustryTerms),
		}, nil
	}
}

// detectShape probes top-level keys to pick the layout before validation.
func detectShape(doc []byte) (schemas.Shape, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(doc, &probe); err != nil {
		return "", &ShapeError{Message: "not a JSON object"}
	}

	if _, ok := probe["high_intensity_keywords"]; ok {
		return schemas.ShapeNormalized, nil
	}
	if _, ok := probe["high_priority_keywords"]; ok {
		return schemas.ShapeNormalized, nil
	}
	if _, ok := probe["high_frequency_keywords"]; ok {
		return schemas.ShapeStored, nil
	}
	if _, ok := probe["priority_keywords"]; ok {
		return schemas.ShapeStored, nil
	}
	return "", &ShapeError{Message: "no recognized keyword field present"}
}

func convertKeywords(in []serviceKeyword) []types.HighFrequencyKeyword {
	out := make([]types.HighFrequencyKeyword, 0, len(in))
	for _, kw := range in {
		out = append(out, types.HighFrequencyKeyword{
			Keyword:    kw.Keyword,
			Frequency:  kw.Frequency,
			Importance: kw.Importance,
		})
	}
	return out
}

func insightVerbs(in *serviceInsights) []string {
	if in == nil {
		return nil
	}
	return in.ActionVerbs
}

func insightMetrics(in *serviceInsights) []string {
	if in == nil {
		return nil
	}
	return in.Metrics
}

func insightIndustry(in *serviceInsights) []string {
	if in == nil {
		return nil
	}
	return in.IndustryTerms
}
