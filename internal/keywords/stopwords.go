// Package keywords provides frequency-ranked keyword and key-phrase
// extraction from normalized job posting text.
package keywords

// stopWords is the fixed set of common English function words excluded from
// frequency ranking. Only words of four or more characters matter here since
// shorter tokens never survive tokenization.
var stopWords = map[string]bool{
	"about": true, "above": true, "after": true, "again": true, "also": true,
	"been": true, "being": true, "best": true, "both": true, "each": true,
	"from": true, "have": true, "having": true, "here": true, "into": true,
	"more": true, "most": true, "other": true, "over": true, "some": true,
	"such": true, "than": true, "that": true, "their": true, "them": true,
	"then": true, "there": true, "these": true, "they": true, "this": true,
	"those": true, "through": true, "under": true, "very": true, "well": true,
	"were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "will": true, "with": true, "would": true, "your": true,
}

// IsStopWord reports whether the lowercased word is in the stop-word set.
func IsStopWord(word string) bool {
	return stopWords[word]
}
