package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-match-engine/internal/types"
)

func TestDetectJobType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Full-time keyword", "This is a full-time position.", types.JobTypeFullTime},
		{"Full time with space", "We offer full time employment.", types.JobTypeFullTime},
		{"Permanent reads as full time", "Permanent role with benefits.", types.JobTypeFullTime},
		{"Part-time keyword", "This is a part-time role.", types.JobTypePartTime},
		{"Part-time vetoes full-time", "Available full-time or part-time.", types.JobTypePartTime},
		{"Contract-to-hire", "6 month contract-to-hire opportunity.", types.JobTypeContractor},
		{"Plain contract", "This is a 6-month contract.", types.JobTypeContractor},
		{"Temporary", "Temporary assignment through December.", types.JobTypeContractor},
		{"Internship", "Summer internship for students.", types.JobTypeInternship},
		{"Word boundary guards contract", "Avoid contraction of the team.", types.JobTypeFullTime},
		{"Default when nothing matches", "Great role on a great team.", types.JobTypeFullTime},
		{"Empty text defaults", "", types.JobTypeFullTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectJobType(tt.input)
			assert.Equal(t, tt.expected, result, "should classify employment type correctly")
		})
	}
}
