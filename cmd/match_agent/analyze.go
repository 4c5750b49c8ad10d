package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-engine/internal/ingestion"
	"github.com/jonathan/job-match-engine/internal/merge"
	"github.com/jonathan/job-match-engine/internal/observability"
	"github.com/jonathan/job-match-engine/internal/parsing"
	"github.com/jonathan/job-match-engine/internal/scoring"
	"github.com/jonathan/job-match-engine/internal/store"
	"github.com/jonathan/job-match-engine/internal/types"
	"github.com/jonathan/job-match-engine/internal/validation"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job posting",
	Long:  "Derive keywords from a job posting, score a resume document's coverage of them, and print the match analysis. A saved match-service response replaces the local estimate when provided.",
	RunE:  runAnalyze,
}

var (
	analyzeJobFile     string
	analyzeResumeFile  string
	analyzeServiceFile string
	analyzeMatchFile   string
	analyzeSave        bool
	analyzeDatabaseURL string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job posting file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume JSON document (required)")
	analyzeCmd.Flags().StringVar(&analyzeServiceFile, "service-response", "", "Path to saved extraction-service response JSON")
	analyzeCmd.Flags().StringVar(&analyzeMatchFile, "match-response", "", "Path to saved match-service response JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the analysis keyed by posting hash")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "Database URL (required with --save; falls back to DATABASE_URL)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeJobFile == "" || analyzeResumeFile == "" {
		return fmt.Errorf("--job and --resume are required")
	}

	text, meta, err := ingestion.ReadJobPosting(analyzeJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}

	resume, err := loadResume(analyzeResumeFile)
	if err != nil {
		return err
	}

	metadata := parsing.DeriveJobMetadata(text)
	if metadata == nil {
		return fmt.Errorf("job posting is empty after cleaning")
	}

	// A previously saved record is the lowest-precedence source: fresh
	// derivation and service responses patch over it.
	if saved := loadSavedMetadata(meta.Hash); saved != nil {
		metadata = merge.Merge(saved, metadata)
	}

	if analyzeServiceFile != "" {
		doc, err := os.ReadFile(analyzeServiceFile)
		if err != nil {
			return fmt.Errorf("failed to read service response: %w", err)
		}
		bundle, err := merge.NormalizeServiceResponse(doc)
		if err != nil {
			return fmt.Errorf("failed to normalize service response: %w", err)
		}
		metadata = merge.ApplyBundle(metadata, bundle)
	}

	analysis := scoring.Score(scoring.BundleFromMetadata(metadata), resume)

	if analyzeMatchFile != "" {
		doc, err := os.ReadFile(analyzeMatchFile)
		if err != nil {
			return fmt.Errorf("failed to read match response: %w", err)
		}
		var svc scoring.ServiceAnalysis
		if err := json.Unmarshal(doc, &svc); err != nil {
			return fmt.Errorf("failed to parse match response: %w", err)
		}
		analysis = scoring.ApplyServiceAnalysis(analysis, &svc)
	}

	if verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobMetadata(metadata)
		printer.PrintMatchAnalysis(analysis)
	} else {
		jsonBytes, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(jsonBytes))
	}

	if analyzeSave {
		if err := saveAnalysis(meta.Hash, resume, metadata, analysis); err != nil {
			return err
		}
	}
	return nil
}

func loadResume(path string) (*types.Resume, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}
	var resume types.Resume
	if err := json.Unmarshal(doc, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if err := validation.ValidateResume(&resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// loadSavedMetadata fetches the saved record for a posting hash, if a
// database is configured. Lookup failures only log; analysis proceeds from
// the fresh derivation.
func loadSavedMetadata(postingHash string) *types.JobMetadata {
	databaseURL := analyzeDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil
	}

	ctx := context.Background()
	repo, err := store.Connect(ctx, databaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("saved-analysis lookup skipped")
		return nil
	}
	defer repo.Close()

	rec, err := repo.Get(ctx, postingHash)
	if err != nil {
		log.Warn().Err(err).Msg("saved-analysis lookup failed")
		return nil
	}
	if rec == nil {
		return nil
	}
	log.Debug().Str("posting_hash", postingHash).Msg("merging saved metadata")
	return rec.Metadata
}

func saveAnalysis(postingHash string, resume *types.Resume, metadata *types.JobMetadata, analysis *types.MatchAnalysis) error {
	databaseURL := analyzeDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL required when using --save")
	}

	ctx := context.Background()
	repo, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := repo.Set(ctx, &store.Record{
		PostingHash:     postingHash,
		ResumeSignature: scoring.ResumeSignature(resume),
		Metadata:        metadata,
		Analysis:        analysis,
	}); err != nil {
		return err
	}
	log.Info().Str("posting_hash", postingHash).Msg("saved analysis")
	return nil
}
