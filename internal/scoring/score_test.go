package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-engine/internal/types"
)

func boolPtr(b bool) *bool { return &b }

func sampleResume() *types.Resume {
	return &types.Resume{
		Title:   "Platform Engineer",
		Summary: "Infrastructure engineer with Kubernetes and Docker experience.",
		Sections: []types.ResumeSection{
			{
				Title: "Experience",
				Bullets: []types.ResumeBullet{
					{Text: "Automated CI/CD pipelines with Terraform."},
					{Text: "Secret Redis migration.", Params: &types.BulletParams{Visible: boolPtr(false)}},
				},
			},
		},
	}
}

func TestFlattenResume(t *testing.T) {
	flat := FlattenResume(sampleResume())

	assert.Contains(t, flat, "platform engineer")
	assert.Contains(t, flat, "kubernetes")
	assert.Contains(t, flat, "ci/cd pipelines")
	assert.NotContains(t, flat, "redis", "hidden bullets are excluded")
	assert.Equal(t, flat, strings.ToLower(flat), "output is lowercased")
}

func TestFlattenResumeNil(t *testing.T) {
	assert.Equal(t, "", FlattenResume(nil))
}

func TestScoreKeywordsPartition(t *testing.T) {
	analysis := ScoreKeywords([]string{"Kubernetes", "Terraform", "Kafka"}, FlattenResume(sampleResume()))
	require.NotNil(t, analysis)

	assert.Equal(t, []string{"Kubernetes", "Terraform"}, analysis.MatchingKeywords)
	assert.Equal(t, []string{"Kafka"}, analysis.MissingKeywords)
	assert.Equal(t, 3, analysis.TotalJobKeywords)
	assert.Equal(t, 2, analysis.MatchCount)
	assert.Equal(t, 1, analysis.MissingCount)
	assert.Equal(t, 67, analysis.SimilarityScore, "2 of 3 rounds to 67")
	assert.Equal(t, 67, analysis.TechnicalScore, "all three candidates are technical")
	assert.False(t, analysis.Authoritative)
}

func TestScoreKeywordsEmptyCandidates(t *testing.T) {
	assert.Nil(t, ScoreKeywords(nil, "some resume text"), "no candidates means no score, not zero")
	assert.Nil(t, ScoreKeywords([]string{"", "  "}, "some resume text"))
}

func TestScoreKeywordsNoTechnicalCandidates(t *testing.T) {
	analysis := ScoreKeywords([]string{"Leadership", "Mentoring"}, "leadership track record")
	require.NotNil(t, analysis)

	assert.Equal(t, 50, analysis.SimilarityScore)
	assert.Zero(t, analysis.TechnicalScore, "no technical candidates leaves the technical score unset")
	assert.Empty(t, analysis.TechnicalMatches)
	assert.Empty(t, analysis.TechnicalMissing)
}

func TestScoreKeywordsWordBoundaries(t *testing.T) {
	analysis := ScoreKeywords([]string{"AI"}, "retail experience at scale")
	require.NotNil(t, analysis)
	assert.Empty(t, analysis.MatchingKeywords, `"AI" must not match inside "retail"`)

	analysis = ScoreKeywords([]string{"CI/CD"}, "built ci/cd tooling")
	require.NotNil(t, analysis)
	assert.Equal(t, []string{"CI/CD"}, analysis.MatchingKeywords, "slash keywords match as substrings")
}

func TestScoreKeywordsDeduplicatesCandidates(t *testing.T) {
	analysis := ScoreKeywords([]string{"Docker", "docker", "DOCKER"}, "docker everywhere")
	require.NotNil(t, analysis)

	assert.Equal(t, 1, analysis.TotalJobKeywords)
	assert.Equal(t, []string{"Docker"}, analysis.MatchingKeywords, "first-seen casing wins")
}

func TestScoreKeywordsIdempotent(t *testing.T) {
	candidates := []string{"Kubernetes", "Kafka", "Leadership"}
	text := FlattenResume(sampleResume())

	first := ScoreKeywords(candidates, text)
	second := ScoreKeywords(candidates, text)

	assert.Equal(t, first, second, "identical inputs yield identical analyses")
}

func TestBuildCandidates(t *testing.T) {
	bundle := &types.KeywordBundle{
		Keywords:   []string{"Kubernetes", "Requirements", "platform"},
		Skills:     []string{"Docker", "kubernetes"},
		SoftSkills: []string{"Leadership"},
		HighFrequencyKeywords: []types.HighFrequencyKeyword{
			{Keyword: "Platform", Frequency: 4, Importance: types.ImportanceMedium},
		},
		ActionVerbs: []string{"Built"},
	}

	candidates := BuildCandidates(bundle)

	assert.Equal(t, []string{"Kubernetes", "platform", "Docker", "Leadership", "Built"}, candidates,
		"union order with generic headings and duplicates removed")
}

func TestScoreEndToEnd(t *testing.T) {
	jobText := "Platform team seeks Kubernetes and Terraform experience. Kafka a plus. Kubernetes required."

	analysis := ScoreText(jobText, sampleResume())
	require.NotNil(t, analysis)

	assert.Contains(t, analysis.MatchingKeywords, "Kubernetes")
	assert.Contains(t, analysis.MatchingKeywords, "Terraform")
	assert.Contains(t, analysis.MissingKeywords, "Kafka")
	assert.GreaterOrEqual(t, analysis.SimilarityScore, 1)
	assert.LessOrEqual(t, analysis.SimilarityScore, 100)
}

func TestScoreTextBlankJob(t *testing.T) {
	assert.Nil(t, ScoreText("   ", sampleResume()))
}

func TestBundleFromMetadata(t *testing.T) {
	assert.Nil(t, BundleFromMetadata(nil))

	md := &types.JobMetadata{
		Skills:   []string{"Docker"},
		Keywords: []string{"platform"},
		ATSInsights: types.ATSInsights{
			ActionVerbs: []string{"Built"},
		},
	}
	bundle := BundleFromMetadata(md)
	require.NotNil(t, bundle)
	assert.Equal(t, []string{"Docker"}, bundle.Skills)
	assert.Equal(t, []string{"Built"}, bundle.ActionVerbs)
}
