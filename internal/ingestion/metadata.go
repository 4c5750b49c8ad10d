package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata describes one ingested job posting. Hash keys saved analyses:
// identical cleaned content hashes identically regardless of source file.
type Metadata struct {
	Source    string `json:"source,omitempty"`
	Timestamp string `json:"timestamp"`
	Hash      string `json:"hash"`
}

// NewMetadata builds metadata for cleaned posting content.
func NewMetadata(content, source string) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      ContentHash(content),
	}
}

// ContentHash returns the SHA-256 hex digest of the content.
func ContentHash(content string) string {
	digest := sha256.Sum256([]byte(content))
	return hex.EncodeToString(digest[:])
}
