package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-engine/internal/types"
)

func TestHighlight(t *testing.T) {
	segments := Highlight("Built Kubernetes operators in Go.", []string{"Kubernetes"})

	require.Equal(t, []types.Segment{
		{Text: "Built "},
		{Text: "Kubernetes", IsMatch: true, Keyword: "Kubernetes"},
		{Text: " operators in Go."},
	}, segments)
}

func TestHighlightReconstructsInput(t *testing.T) {
	text := "Automated CI/CD for React and React Native apps with React tooling."
	segments := Highlight(text, []string{"React", "React Native", "CI/CD"})

	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Text)
	}
	assert.Equal(t, text, sb.String(), "concatenated segments reproduce the input")
}

func TestHighlightLongestKeywordWins(t *testing.T) {
	segments := Highlight("Ships React Native apps.", []string{"React", "React Native"})

	var matches []string
	for _, s := range segments {
		if s.IsMatch {
			matches = append(matches, s.Keyword)
		}
	}
	assert.Equal(t, []string{"React Native"}, matches, "the longer keyword claims the span")
}

func TestHighlightMarksEveryOccurrence(t *testing.T) {
	segments := Highlight("docker, Docker and DOCKER", []string{"Docker"})

	count := 0
	for _, s := range segments {
		if s.IsMatch {
			count++
			assert.Equal(t, "Docker", s.Keyword)
		}
	}
	assert.Equal(t, 3, count, "matching is case-insensitive per occurrence")
}

func TestHighlightNoMatches(t *testing.T) {
	segments := Highlight("plain text", []string{"Kubernetes"})

	require.Len(t, segments, 1)
	assert.Equal(t, "plain text", segments[0].Text)
	assert.False(t, segments[0].IsMatch)
}

func TestHighlightEmptyText(t *testing.T) {
	assert.Nil(t, Highlight("", []string{"Kubernetes"}))
}

func TestKeywordsInBullet(t *testing.T) {
	found := KeywordsInBullet("Cut AWS spend with Terraform modules.", []string{"Terraform", "AWS", "Kafka"})
	assert.Equal(t, []string{"Terraform", "AWS"}, found, "input order is preserved")

	assert.Nil(t, KeywordsInBullet("", []string{"AWS"}))
	assert.Nil(t, KeywordsInBullet("nothing here", []string{"AWS"}))
}
