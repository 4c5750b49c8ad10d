package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/job-match-engine/internal/types"
)

// PostgresStore is a Repository backed by a PostgreSQL connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the analyses table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			posting_hash     TEXT PRIMARY KEY,
			resume_signature TEXT NOT NULL,
			metadata         JSONB,
			analysis         JSONB,
			saved_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Get returns the saved record for a posting hash, or nil if none is saved.
func (s *PostgresStore) Get(ctx context.Context, postingHash string) (*Record, error) {
	var (
		rec          Record
		metadataJSON []byte
		analysisJSON []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT posting_hash, resume_signature, metadata, analysis, saved_at
		 FROM analyses WHERE posting_hash = $1`,
		postingHash,
	).Scan(&rec.PostingHash, &rec.ResumeSignature, &metadataJSON, &analysisJSON, &rec.SavedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if len(metadataJSON) > 0 {
		var md types.JobMetadata
		if err := json.Unmarshal(metadataJSON, &md); err != nil {
			return nil, fmt.Errorf("failed to unmarshal saved metadata: %w", err)
		}
		rec.Metadata = &md
	}
	if len(analysisJSON) > 0 {
		var analysis types.MatchAnalysis
		if err := json.Unmarshal(analysisJSON, &analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal saved analysis: %w", err)
		}
		rec.Analysis = &analysis
	}
	return &rec, nil
}

// Set saves or replaces the record for its posting hash.
func (s *PostgresStore) Set(ctx context.Context, rec *Record) error {
	metadataJSON, err := json.Marshal(rec.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	analysisJSON, err := json.Marshal(rec.Analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	savedAt := rec.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now().UTC()
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (posting_hash, resume_signature, metadata, analysis, saved_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (posting_hash) DO UPDATE
		 SET resume_signature = $2, metadata = $3, analysis = $4, saved_at = $5`,
		rec.PostingHash, rec.ResumeSignature, metadataJSON, analysisJSON, savedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}
