package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-engine/internal/highlight"
	"github.com/jonathan/job-match-engine/internal/ingestion"
	"github.com/jonathan/job-match-engine/internal/observability"
	"github.com/jonathan/job-match-engine/internal/scoring"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Show a resume with matched job keywords emphasized",
	Long:  "Derive keywords from a job posting and print the resume's visible text with every matched keyword occurrence emphasized.",
	RunE:  runHighlight,
}

var (
	highlightJobFile    string
	highlightResumeFile string
)

func init() {
	highlightCmd.Flags().StringVarP(&highlightJobFile, "job", "j", "", "Path to job posting file (required)")
	highlightCmd.Flags().StringVarP(&highlightResumeFile, "resume", "r", "", "Path to resume JSON document (required)")

	rootCmd.AddCommand(highlightCmd)
}

func runHighlight(_ *cobra.Command, _ []string) error {
	if highlightJobFile == "" || highlightResumeFile == "" {
		return fmt.Errorf("--job and --resume are required")
	}

	text, _, err := ingestion.ReadJobPosting(highlightJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}

	resume, err := loadResume(highlightResumeFile)
	if err != nil {
		return err
	}

	analysis := scoring.ScoreText(text, resume)
	if analysis == nil {
		return fmt.Errorf("no keywords derived from job posting")
	}

	printer := observability.NewPrinter(os.Stdout)

	if resume.Title != "" {
		printer.PrintHighlighted(highlight.Highlight(resume.Title, analysis.MatchingKeywords))
	}
	if resume.Summary != "" {
		printer.PrintHighlighted(highlight.Highlight(resume.Summary, analysis.MatchingKeywords))
	}
	for _, section := range resume.Sections {
		if section.Title != "" {
			fmt.Fprintf(os.Stdout, "\n%s\n", section.Title)
		}
		for _, bullet := range section.Bullets {
			if !bullet.IsVisible() {
				continue
			}
			fmt.Fprint(os.Stdout, "  • ")
			printer.PrintHighlighted(highlight.Highlight(bullet.Text, analysis.MatchingKeywords))
		}
	}

	fmt.Fprintf(os.Stdout, "\nMatched %d of %d keywords (%d%%)\n",
		analysis.MatchCount, analysis.TotalJobKeywords, analysis.SimilarityScore)
	return nil
}
