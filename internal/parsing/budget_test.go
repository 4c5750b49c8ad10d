package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Compact k range", "Compensation: $120k-$150k DOE", "$120k-$150k"},
		{"Full figures with en dash", "We pay $120,000 – $150,000 annually.", "$120,000 – $150,000"},
		{"To separator with year suffix", "Range is $90k to $110k/year for this level.", "$90k to $110k/year"},
		{"Second figure without dollar sign", "$100k-120k depending on experience", "$100k-120k"},
		{"No dollar sign", "Salary range 120000-150000", ""},
		{"Lone figure is not a range", "Up to $150,000 total compensation", ""},
		{"Empty text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractBudget(tt.input)
			assert.Equal(t, tt.expected, result, "should extract the salary range verbatim")
		})
	}
}
