// Package types provides type definitions for structured data used throughout the job-match engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job type values detected from posting text
const (
	JobTypeFullTime   = "Full Time"
	JobTypePartTime   = "Part-time"
	JobTypeContractor = "Contractor"
	JobTypeInternship = "Internship"
)

// Work arrangement values detected from posting text
const (
	RemoteStatusRemote = "Remote"
	RemoteStatusHybrid = "Hybrid"
	RemoteStatusOnsite = "Onsite"
)

// Importance tiers for high-frequency keywords
const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
	ImportanceLow    = "low"
)

// JobMetadata is the derived description of a job posting. It is built fresh
// each time posting text is parsed and progressively patched as better-quality
// sources arrive (free-text derivation, extraction service, saved record).
type JobMetadata struct {
	Title                 string                 `json:"title,omitempty"`
	Company               string                 `json:"company,omitempty"`
	JobType               string                 `json:"jobType,omitempty"`
	RemoteStatus          string                 `json:"remoteStatus,omitempty"`
	Location              string                 `json:"location,omitempty"`
	Budget                string                 `json:"budget,omitempty"`
	Skills                []string               `json:"skills"`
	Keywords              []string               `json:"keywords"`
	SoftSkills            []string               `json:"softSkills"`
	HighFrequencyKeywords []HighFrequencyKeyword `json:"highFrequencyKeywords"`
	ATSInsights           ATSInsights            `json:"atsInsights"`
}

// HighFrequencyKeyword is a keyword annotated with an occurrence count and an
// importance tier.
type HighFrequencyKeyword struct {
	Keyword    string `json:"keyword"`
	Frequency  int    `json:"frequency"`
	Importance string `json:"importance"`
}

// ATSInsights groups the applicant-tracking-system signal vocabularies found
// in a posting.
type ATSInsights struct {
	ActionVerbs   []string `json:"actionVerbs"`
	Metrics       []string `json:"metrics"`
	IndustryTerms []string `json:"industryTerms"`
}

// ImportanceRank maps an importance tier to a sortable rank (higher = more
// important). Unknown tiers rank below low.
func ImportanceRank(importance string) int {
	switch importance {
	case ImportanceHigh:
		return 3
	case ImportanceMedium:
		return 2
	case ImportanceLow:
		return 1
	default:
		return 0
	}
}

// KeywordBundle is the single internal shape every keyword source (local
// derivation, either external service response shape, saved record) is
// normalized into before merging and scoring.
type KeywordBundle struct {
	Skills                []string               `json:"skills"`
	Keywords              []string               `json:"keywords"`
	SoftSkills            []string               `json:"softSkills"`
	HighFrequencyKeywords []HighFrequencyKeyword `json:"highFrequencyKeywords"`
	ActionVerbs           []string               `json:"actionVerbs"`
	Metrics               []string               `json:"metrics"`
	IndustryTerms         []string               `json:"industryTerms"`
}
