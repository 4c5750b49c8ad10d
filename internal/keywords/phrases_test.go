package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPhrases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		contains []string
		excludes []string
	}{
		{
			name:     "Builds multi-word grams within a line",
			input:    "distributed systems engineer\ndistributed systems engineer",
			limit:    40,
			contains: []string{"Distributed Systems", "Distributed Systems Engineer", "Systems Engineer"},
		},
		{
			name:     "Grams never cross line boundaries",
			input:    "kubernetes experience\nterraform modules",
			limit:    40,
			contains: []string{"Kubernetes Experience", "Terraform Modules"},
			excludes: []string{"Experience Terraform"},
		},
		{
			name:     "Rejects generic headings",
			input:    "Requirements\nkubernetes experience required",
			limit:    40,
			excludes: []string{"Requirements"},
		},
		{
			name:     "Rejects short grams",
			input:    "use Go and C daily for automation work",
			limit:    40,
			excludes: []string{"Go", "C", "Use"},
		},
		{
			name:     "Rejects all-stop-word grams",
			input:    "with their most experienced platform team",
			limit:    40,
			excludes: []string{"With Their", "Their Most"},
		},
		{
			name:     "Preserves compound tokens",
			input:    "CI/CD pipelines\nCI/CD pipelines",
			limit:    40,
			contains: []string{"CI/CD", "CI/CD Pipelines"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := KeyPhrases(tt.input, tt.limit)
			for _, phrase := range tt.contains {
				assert.Contains(t, result, phrase)
			}
			for _, phrase := range tt.excludes {
				assert.NotContains(t, result, phrase)
			}
		})
	}
}

func TestKeyPhrasesRanking(t *testing.T) {
	input := "platform engineering\nplatform engineering\nsite reliability"

	result := KeyPhrases(input, 40)

	assert.NotEmpty(t, result)
	assert.Equal(t, "Platform", result[0], "most frequent gram ranks first")
}

func TestKeyPhrasesLimit(t *testing.T) {
	input := "alpha beta gamma delta epsilon zeta"

	result := KeyPhrases(input, 3)

	assert.Len(t, result, 3)
}

func TestKeyPhrasesEmpty(t *testing.T) {
	assert.Nil(t, KeyPhrases("  \n ", 40))
	assert.Nil(t, KeyPhrases("kubernetes", 0))
}
