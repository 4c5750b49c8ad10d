// Package store persists analysis results keyed by posting content hash.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/job-match-engine/internal/types"
)

// Record is one saved analysis for a job posting.
type Record struct {
	PostingHash     string               `json:"posting_hash"`
	ResumeSignature string               `json:"resume_signature"`
	Metadata        *types.JobMetadata   `json:"metadata,omitempty"`
	Analysis        *types.MatchAnalysis `json:"analysis,omitempty"`
	SavedAt         time.Time            `json:"saved_at"`
}

// Repository stores and retrieves analysis records. Implementations must be
// safe for concurrent use.
type Repository interface {
	// Get returns the record for a posting hash, or nil if none is saved.
	Get(ctx context.Context, postingHash string) (*Record, error)
	// Set saves or replaces the record for its posting hash.
	Set(ctx context.Context, rec *Record) error
}

// MemoryStore is an in-process Repository used when no database is configured
// and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStore creates an empty in-memory repository.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

// Get returns the saved record for a posting hash, or nil.
func (s *MemoryStore) Get(_ context.Context, postingHash string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[postingHash]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

// Set saves or replaces the record for its posting hash.
func (s *MemoryStore) Set(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *rec
	if copied.SavedAt.IsZero() {
		copied.SavedAt = time.Now().UTC()
	}
	s.records[copied.PostingHash] = &copied
	return nil
}

// Len reports the number of saved records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
