package types

// MatchAnalysis is the outcome of scoring one (job, resume) pair. Scores are
// integer percentages in [0,100]; matching and missing sets partition the
// candidate keyword set.
type MatchAnalysis struct {
	SimilarityScore  int      `json:"similarityScore"`
	TechnicalScore   int      `json:"technicalScore"`
	MatchingKeywords []string `json:"matchingKeywords"`
	MissingKeywords  []string `json:"missingKeywords"`
	TechnicalMatches []string `json:"technicalMatches"`
	TechnicalMissing []string `json:"technicalMissing"`
	TotalJobKeywords int      `json:"totalJobKeywords"`
	MatchCount       int      `json:"matchCount"`
	MissingCount     int      `json:"missingCount"`

	// Authoritative is true when the analysis came from the external match
	// service rather than the local estimate.
	Authoritative bool `json:"authoritative,omitempty"`
}

// Segment is one run of highlighted output text. Segments are ordered and
// non-overlapping; concatenating their Text fields reproduces the input.
type Segment struct {
	Text    string `json:"text"`
	IsMatch bool   `json:"isMatch"`
	Keyword string `json:"keyword,omitempty"`
}
