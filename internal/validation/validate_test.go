package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-engine/internal/types"
)

func TestValidateResume(t *testing.T) {
	resume := &types.Resume{
		Title: "Platform Engineer",
		Sections: []types.ResumeSection{
			{Title: "Experience", Bullets: []types.ResumeBullet{{Text: "Built things."}}},
		},
	}

	assert.NoError(t, ValidateResume(resume))
}

func TestValidateResumeNil(t *testing.T) {
	assert.ErrorIs(t, ValidateResume(nil), ErrEmptyResume)
}

func TestValidateResumeNoContent(t *testing.T) {
	tests := []struct {
		name  string
		input *types.Resume
	}{
		{"Completely empty", &types.Resume{}},
		{"Whitespace only", &types.Resume{Title: "   ", Summary: "\t"}},
		{
			"Only hidden bullets",
			&types.Resume{
				Sections: []types.ResumeSection{
					{Bullets: []types.ResumeBullet{
						{Text: "Hidden work.", Params: &types.BulletParams{Visible: boolPtr(false)}},
					}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateResume(tt.input), ErrEmptyResume)
		})
	}
}

func TestValidateResumeFieldConstraints(t *testing.T) {
	resume := &types.Resume{
		Title: strings.Repeat("x", 301),
		Sections: []types.ResumeSection{
			{Bullets: []types.ResumeBullet{{Text: ""}}},
		},
	}

	err := ValidateResume(resume)
	require.Error(t, err)

	var resumeErr *ResumeError
	require.ErrorAs(t, err, &resumeErr)
	assert.NotEmpty(t, resumeErr.Fields)
	assert.Contains(t, resumeErr.Error(), "invalid resume document")
}

func boolPtr(b bool) *bool { return &b }
