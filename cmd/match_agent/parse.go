package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-engine/internal/ingestion"
	"github.com/jonathan/job-match-engine/internal/merge"
	"github.com/jonathan/job-match-engine/internal/observability"
	"github.com/jonathan/job-match-engine/internal/parsing"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Derive structured metadata from a job posting",
	Long:  "Parse a job posting file (.txt, .md or .html), derive title, company, job type, work arrangement, location, budget and keyword lists, and print the result as JSON.",
	RunE:  runParse,
}

var (
	parseJobFile     string
	parseServiceFile string
	parseOutputFile  string
)

func init() {
	parseCmd.Flags().StringVarP(&parseJobFile, "job", "j", "", "Path to job posting file (required)")
	parseCmd.Flags().StringVar(&parseServiceFile, "service-response", "", "Path to saved extraction-service response JSON to merge in")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	if parseJobFile == "" {
		return fmt.Errorf("--job is required")
	}

	text, meta, err := ingestion.ReadJobPosting(parseJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}
	log.Debug().Str("source", meta.Source).Str("hash", meta.Hash).Msg("ingested job posting")

	metadata := parsing.DeriveJobMetadata(text)
	if metadata == nil {
		return fmt.Errorf("job posting is empty after cleaning")
	}

	// A saved service response refines the locally derived metadata
	if parseServiceFile != "" {
		doc, err := os.ReadFile(parseServiceFile)
		if err != nil {
			return fmt.Errorf("failed to read service response: %w", err)
		}
		bundle, err := merge.NormalizeServiceResponse(doc)
		if err != nil {
			return fmt.Errorf("failed to normalize service response: %w", err)
		}
		metadata = merge.ApplyBundle(metadata, bundle)
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintJobMetadata(metadata)
	}

	jsonBytes, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile != "" {
		if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	if !verbose {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
	}
	return nil
}
