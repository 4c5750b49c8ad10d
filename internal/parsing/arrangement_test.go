package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-match-engine/internal/types"
)

func TestDetectWorkArrangement(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		location string
		expected string
	}{
		{"Location keyword decides directly", "long posting body", "Remote", types.RemoteStatusRemote},
		{"Parenthesized location keyword", "long posting body", "(Hybrid)", types.RemoteStatusHybrid},
		{"Onsite location keyword", "long posting body", "On-site", types.RemoteStatusOnsite},
		{"Remote indicator in text", "This role is fully remote.", "", types.RemoteStatusRemote},
		{"Work from home", "Work from home with quarterly meetups.", "", types.RemoteStatusRemote},
		{"Hybrid overrides remote", "Remote-friendly: remote with 2 days in office hybrid schedule.", "", types.RemoteStatusHybrid},
		{"Hybrid alone", "Hybrid schedule, 3 days per week in office.", "", types.RemoteStatusHybrid},
		{"Onsite indicator", "This position is onsite at our Austin campus.", "", types.RemoteStatusOnsite},
		{"No indicators", "Great engineering culture.", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectWorkArrangement(tt.text, tt.location)
			assert.Equal(t, tt.expected, result, "should classify work arrangement correctly")
		})
	}
}

func TestIsArrangementKeyword(t *testing.T) {
	assert.True(t, IsArrangementKeyword("Remote"))
	assert.True(t, IsArrangementKeyword("(remote)"))
	assert.True(t, IsArrangementKeyword("100% Remote"))
	assert.False(t, IsArrangementKeyword("Austin, TX"))
	assert.False(t, IsArrangementKeyword(""))
}
