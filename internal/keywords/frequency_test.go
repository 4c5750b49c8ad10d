package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-match-engine/internal/types"
)

func TestTopKeywords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected []string
	}{
		{
			name:     "Ranks by descending count",
			input:    "kubernetes kubernetes kubernetes docker docker terraform",
			limit:    12,
			expected: []string{"Kubernetes", "Docker", "Terraform"},
		},
		{
			name:     "First-seen order breaks ties",
			input:    "docker kubernetes docker kubernetes terraform",
			limit:    12,
			expected: []string{"Docker", "Kubernetes", "Terraform"},
		},
		{
			name:     "Ignores words shorter than four characters",
			input:    "go api sql kubernetes",
			limit:    12,
			expected: []string{"Kubernetes"},
		},
		{
			name:     "Excludes stop words",
			input:    "experience with kubernetes through their platform",
			limit:    12,
			expected: []string{"Experience", "Kubernetes", "Platform"},
		},
		{
			name:     "Case folds before counting",
			input:    "Docker docker DOCKER terraform",
			limit:    12,
			expected: []string{"Docker", "Terraform"},
		},
		{
			name:     "Caps at limit",
			input:    "alpha alpha bravo bravo charlie delta",
			limit:    2,
			expected: []string{"Alpha", "Bravo"},
		},
		{
			name:     "Empty text",
			input:    "   ",
			limit:    12,
			expected: nil,
		},
		{
			name:     "Zero limit",
			input:    "kubernetes",
			limit:    0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TopKeywords(tt.input, tt.limit)
			assert.Equal(t, tt.expected, result, "should rank keywords correctly")
		})
	}
}

func TestHighFrequency(t *testing.T) {
	text := strings.Join([]string{
		strings.Repeat("kubernetes ", 6),
		strings.Repeat("docker ", 3),
		strings.Repeat("terraform ", 2),
		"ansible",
	}, "\n")

	result := HighFrequency(text, 12)

	assert.Equal(t, []types.HighFrequencyKeyword{
		{Keyword: "Kubernetes", Frequency: 6, Importance: types.ImportanceHigh},
		{Keyword: "Docker", Frequency: 3, Importance: types.ImportanceMedium},
		{Keyword: "Terraform", Frequency: 2, Importance: types.ImportanceLow},
	}, result, "singletons are excluded and tiers follow counts")
}

func TestHighFrequencyOrdering(t *testing.T) {
	// Same tier entries sort by count, then by first appearance.
	text := "bravo alpha alpha alpha alpha bravo bravo charlie delta charlie delta"

	result := HighFrequency(text, 12)

	assert.Len(t, result, 4)
	assert.Equal(t, "Alpha", result[0].Keyword, "higher count first within tier")
	assert.Equal(t, "Bravo", result[1].Keyword)
	assert.Equal(t, "Charlie", result[2].Keyword, "first seen wins ties")
	assert.Equal(t, "Delta", result[3].Keyword)
}

func TestHighFrequencyEmpty(t *testing.T) {
	assert.Nil(t, HighFrequency("", 12))
	assert.Nil(t, HighFrequency("every word once here", 0))
}
