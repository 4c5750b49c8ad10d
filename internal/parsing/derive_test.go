package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-engine/internal/types"
)

func TestDeriveJobMetadataSingleLine(t *testing.T) {
	// A dense single-line posting exercises most extractors at once.
	text := "We're looking for a Senior DevOps Engineer at Acme Corp. " +
		"$120k-$150k, remote or hybrid (2 days in office in Austin, TX)."

	md := DeriveJobMetadata(text)
	require.NotNil(t, md)

	assert.Equal(t, "Senior DevOps Engineer", md.Title)
	assert.Equal(t, "Acme Corp", md.Company)
	assert.Equal(t, types.JobTypeFullTime, md.JobType, "no employment keyword defaults to full time")
	assert.Equal(t, types.RemoteStatusHybrid, md.RemoteStatus, "hybrid overrides remote")
	assert.Equal(t, "Austin, TX", md.Location)
	assert.Equal(t, "$120k-$150k", md.Budget)
}

func TestDeriveJobMetadataStructuredPosting(t *testing.T) {
	text := `Title: Platform Engineer
Company: Initech
Location: Remote
We are headquartered in Denver.

Requirements:
• 5+ years with Kubernetes and Docker
• Kubernetes operations at scale
• Kubernetes, Terraform and CI/CD pipelines
• Strong communication skills
This is a full-time position.`

	md := DeriveJobMetadata(text)
	require.NotNil(t, md)

	assert.Equal(t, "Platform Engineer", md.Title)
	assert.Equal(t, "Initech", md.Company)
	assert.Equal(t, types.JobTypeFullTime, md.JobType)
	assert.Equal(t, types.RemoteStatusRemote, md.RemoteStatus)
	assert.Equal(t, "Denver", md.Location, "arrangement keyword in the label is not a location")
	assert.Empty(t, md.Budget)

	assert.Contains(t, md.Skills, "Kubernetes")
	assert.Contains(t, md.Skills, "Docker")
	assert.Contains(t, md.Skills, "Terraform")
	assert.Contains(t, md.Skills, "CI/CD")
	assert.Contains(t, md.SoftSkills, "Communication")

	assert.NotEmpty(t, md.Keywords)
	require.NotEmpty(t, md.HighFrequencyKeywords)
	assert.Equal(t, "Kubernetes", md.HighFrequencyKeywords[0].Keyword)
	assert.Equal(t, 3, md.HighFrequencyKeywords[0].Frequency)
}

func TestDeriveJobMetadataBlankInput(t *testing.T) {
	assert.Nil(t, DeriveJobMetadata(""))
	assert.Nil(t, DeriveJobMetadata("   \n\t "))
}

func TestDedupeFold(t *testing.T) {
	result := dedupeFold([]string{"Kubernetes", "kubernetes", " Docker ", "", "KUBERNETES", "docker"})
	assert.Equal(t, []string{"Kubernetes", "Docker"}, result, "first-seen casing wins")
}
