package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-engine/internal/types"
)

func TestMerge(t *testing.T) {
	base := &types.JobMetadata{
		Title:    "Platform Engineer",
		Company:  "Initech",
		Location: "Denver",
		Skills:   []string{"Docker"},
		Keywords: []string{"platform"},
	}
	updates := &types.JobMetadata{
		Title:  "Senior Platform Engineer",
		Skills: []string{"Kubernetes", "Docker"},
	}

	out := Merge(base, updates)

	assert.Equal(t, "Senior Platform Engineer", out.Title, "non-empty update overwrites")
	assert.Equal(t, "Initech", out.Company, "empty update never clears")
	assert.Equal(t, "Denver", out.Location)
	assert.Equal(t, []string{"Kubernetes", "Docker"}, out.Skills, "non-empty array replaces")
	assert.Equal(t, []string{"platform"}, out.Keywords, "empty array keeps base")

	assert.Equal(t, "Platform Engineer", base.Title, "base is not mutated")
}

func TestMergeNilInputs(t *testing.T) {
	base := &types.JobMetadata{Title: "Engineer"}

	out := Merge(base, nil)
	require.NotNil(t, out)
	assert.Equal(t, "Engineer", out.Title)
	assert.NotSame(t, base, out, "always returns a copy")

	out = Merge(nil, &types.JobMetadata{Title: "Engineer"})
	require.NotNil(t, out)
	assert.Equal(t, "Engineer", out.Title)
}

func TestMergeInsightsPerSubfield(t *testing.T) {
	base := &types.JobMetadata{
		ATSInsights: types.ATSInsights{
			ActionVerbs: []string{"Built"},
			Metrics:     []string{"Uptime"},
		},
	}
	updates := &types.JobMetadata{
		ATSInsights: types.ATSInsights{
			ActionVerbs: []string{"Launched"},
		},
	}

	out := Merge(base, updates)

	assert.Equal(t, []string{"Launched"}, out.ATSInsights.ActionVerbs)
	assert.Equal(t, []string{"Uptime"}, out.ATSInsights.Metrics, "untouched subfield survives")
}

func TestMergeIsMonotone(t *testing.T) {
	// Patching with an entirely empty update is the identity.
	base := &types.JobMetadata{
		Title:                 "Engineer",
		Budget:                "$100k-$120k",
		SoftSkills:            []string{"Communication"},
		HighFrequencyKeywords: []types.HighFrequencyKeyword{{Keyword: "Go", Frequency: 2, Importance: types.ImportanceLow}},
	}

	out := Merge(base, &types.JobMetadata{})

	assert.Equal(t, base, out)
}

func TestApplyBundle(t *testing.T) {
	base := &types.JobMetadata{Title: "Engineer", Skills: []string{"Docker"}}
	bundle := &types.KeywordBundle{
		Skills:      []string{"Kubernetes"},
		ActionVerbs: []string{"Shipped"},
	}

	out := ApplyBundle(base, bundle)

	assert.Equal(t, "Engineer", out.Title, "bundles never carry scalar fields")
	assert.Equal(t, []string{"Kubernetes"}, out.Skills)
	assert.Equal(t, []string{"Shipped"}, out.ATSInsights.ActionVerbs)

	assert.Equal(t, base, ApplyBundle(base, nil))
}

func TestSortHighFrequency(t *testing.T) {
	entries := []types.HighFrequencyKeyword{
		{Keyword: "docker", Frequency: 2, Importance: "low"},
		{Keyword: "Kubernetes", Frequency: 6, Importance: "HIGH"},
		{Keyword: "Terraform", Frequency: 4, Importance: "unknown-tier"},
		{Keyword: "DOCKER", Frequency: 9, Importance: "high"},
		{Keyword: "", Frequency: 1, Importance: "high"},
	}

	out := SortHighFrequency(entries)

	require.Len(t, out, 3)
	assert.Equal(t, "Kubernetes", out[0].Keyword)
	assert.Equal(t, types.ImportanceHigh, out[0].Importance, "importance is lowercased")
	assert.Equal(t, "Terraform", out[1].Keyword, "unknown tier demotes to low")
	assert.Equal(t, types.ImportanceLow, out[1].Importance)
	assert.Equal(t, "docker", out[2].Keyword, "first-seen casing wins the dedup")
}
