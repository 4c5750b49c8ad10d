package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/job-match-engine/internal/keywords"
	"github.com/jonathan/job-match-engine/internal/taxonomy"
	"github.com/jonathan/job-match-engine/internal/types"
)

// FlattenResume reduces a resume document to a lowercase text blob: title,
// summary, section titles and the text of visible bullets. Bullets explicitly
// marked not-visible are excluded.
func FlattenResume(resume *types.Resume) string {
	if resume == nil {
		return ""
	}

	var sb strings.Builder
	appendPart := func(part string) {
		part = strings.TrimSpace(part)
		if part == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(part)
	}

	appendPart(resume.Title)
	appendPart(resume.Summary)
	for _, section := range resume.Sections {
		appendPart(section.Title)
		for _, bullet := range section.Bullets {
			if bullet.IsVisible() {
				appendPart(bullet.Text)
			}
		}
	}
	return strings.ToLower(sb.String())
}

// BuildCandidates forms the candidate keyword set from a bundle: the union of
// priority keywords, technical skills, soft skills, high-frequency entries
// and ATS insight terms, case-insensitively deduplicated with first-seen
// casing, generic headings excluded.
func BuildCandidates(bundle *types.KeywordBundle) []string {
	if bundle == nil {
		return nil
	}

	union := make([]string, 0,
		len(bundle.Keywords)+len(bundle.Skills)+len(bundle.SoftSkills)+
			len(bundle.HighFrequencyKeywords)+len(bundle.ActionVerbs)+
			len(bundle.Metrics)+len(bundle.IndustryTerms))

	union = append(union, bundle.Keywords...)
	union = append(union, bundle.Skills...)
	union = append(union, bundle.SoftSkills...)
	for _, hf := range bundle.HighFrequencyKeywords {
		union = append(union, hf.Keyword)
	}
	union = append(union, bundle.ActionVerbs...)
	union = append(union, bundle.Metrics...)
	union = append(union, bundle.IndustryTerms...)

	seen := make(map[string]bool, len(union))
	candidates := make([]string, 0, len(union))
	for _, kw := range union {
		kw = strings.TrimSpace(kw)
		if kw == "" || keywords.IsGenericHeading(kw) {
			continue
		}
		key := strings.ToLower(kw)
		if seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, kw)
	}
	return candidates
}

// ScoreKeywords partitions the candidate keywords into matched and missing
// against the flattened resume text and computes the coverage scores. Returns
// nil (no score, not zero) when the candidate set is empty. The function is
// deterministic and idempotent: identical inputs yield identical output.
func ScoreKeywords(candidateKeywords []string, resumeText string) *types.MatchAnalysis {
	candidates := BuildCandidates(&types.KeywordBundle{Keywords: candidateKeywords})
	if len(candidates) == 0 {
		return nil
	}

	var matched, missing []string
	for _, kw := range candidates {
		pattern := MatchPattern(kw)
		if pattern != nil && pattern.MatchString(resumeText) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

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

	analysis := &types.MatchAnalysis{
		SimilarityScore:  percent(len(matched), len(candidates)),
		MatchingKeywords: matched,
		MissingKeywords:  missing,
		TechnicalMatches: techMatched,
		TechnicalMissing: techMissing,
		TotalJobKeywords: len(candidates),
		MatchCount:       len(matched),
		MissingCount:     len(missing),
	}
	if techTotal := len(techMatched) + len(techMissing); techTotal > 0 {
		analysis.TechnicalScore = percent(len(techMatched), techTotal)
	}
	return analysis
}

// Score analyzes a resume against a job keyword bundle.
func Score(bundle *types.KeywordBundle, resume *types.Resume) *types.MatchAnalysis {
	return ScoreKeywords(BuildCandidates(bundle), FlattenResume(resume))
}

// ScoreText analyzes a resume against raw job posting text, deriving the
// keyword bundle locally. This is the "Estimated Fit" path used when no
// authoritative service analysis exists.
func ScoreText(jobText string, resume *types.Resume) *types.MatchAnalysis {
	bundle := LocalBundle(jobText)
	if bundle == nil {
		return nil
	}
	return Score(bundle, resume)
}

// LocalBundle derives a keyword bundle from raw posting text using the
// frequency extractors and taxonomy matchers. Returns nil for blank input.
func LocalBundle(jobText string) *types.KeywordBundle {
	if strings.TrimSpace(jobText) == "" {
		return nil
	}

	flat := strings.Join(strings.Fields(jobText), " ")
	insights := taxonomy.Insights(flat)
	return &types.KeywordBundle{
		Skills:                taxonomy.TechnicalSkills(flat),
		Keywords:              append(keywords.TopKeywords(flat, keywords.DefaultKeywordLimit), keywords.KeyPhrases(jobText, keywords.DefaultPhraseLimit)...),
		SoftSkills:            taxonomy.SoftSkills(flat),
		HighFrequencyKeywords: keywords.HighFrequency(flat, keywords.DefaultKeywordLimit),
		ActionVerbs:           insights.ActionVerbs,
		Metrics:               insights.Metrics,
		IndustryTerms:         insights.IndustryTerms,
	}
}

// BundleFromMetadata converts merged job metadata into the bundle shape the
// scorer consumes.
func BundleFromMetadata(md *types.JobMetadata) *types.KeywordBundle {
	if md == nil {
		return nil
	}
	return &types.KeywordBundle{
		Skills:                md.Skills,
		Keywords:              md.Keywords,
		SoftSkills:            md.SoftSkills,
		HighFrequencyKeywords: md.HighFrequencyKeywords,
		ActionVerbs:           md.ATSInsights.ActionVerbs,
		Metrics:               md.ATSInsights.Metrics,
		IndustryTerms:         md.ATSInsights.IndustryTerms,
	}
}

func percent(part, total int) int {
	return int(math.Round(100 * float64(part) / float64(total)))
}
