package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/ingestion"
	"github.com/jonathan/job-match-engine/internal/observability"
	"github.com/jonathan/job-match-engine/internal/parsing"
	"github.com/jonathan/job-match-engine/internal/scoring"
	"github.com/jonathan/job-match-engine/internal/session"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-score a resume whenever its file changes",
	Long:  "Watch a resume JSON file and re-score it against the job posting after each edit, waiting for a quiet period so rapid edits trigger one re-score.",
	RunE:  runWatch,
}

var (
	watchJobFile    string
	watchResumeFile string
	watchDebounceMS int
)

// watchPollInterval is how often the resume file's mtime is checked.
const watchPollInterval = 250 * time.Millisecond

func init() {
	watchCmd.Flags().StringVarP(&watchJobFile, "job", "j", "", "Path to job posting file (required)")
	watchCmd.Flags().StringVarP(&watchResumeFile, "resume", "r", "", "Path to resume JSON document (required)")
	watchCmd.Flags().IntVar(&watchDebounceMS, "debounce-ms", config.DefaultDebounceMS, "Quiet period before re-scoring")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	if watchJobFile == "" || watchResumeFile == "" {
		return fmt.Errorf("--job and --resume are required")
	}
	if watchDebounceMS < 0 {
		return fmt.Errorf("--debounce-ms must be non-negative")
	}

	text, _, err := ingestion.ReadJobPosting(watchJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}
	metadata := parsing.DeriveJobMetadata(text)
	if metadata == nil {
		return fmt.Errorf("job posting is empty after cleaning")
	}
	bundle := scoring.BundleFromMetadata(metadata)

	printer := observability.NewPrinter(os.Stdout)
	tracker := session.NewTracker(log)
	debouncer := session.NewDebouncer(time.Duration(watchDebounceMS) * time.Millisecond)
	defer debouncer.Stop()

	rescore := func() {
		req := tracker.Begin()
		resume, err := loadResume(watchResumeFile)
		if err != nil {
			log.Warn().Err(err).Msg("resume not scorable, waiting for next edit")
			return
		}
		analysis := scoring.Score(bundle, resume)
		if !tracker.Accept(req) {
			return
		}
		printer.PrintMatchAnalysis(analysis)
	}

	rescore()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	lastModTime := time.Time{}
	if info, err := os.Stat(watchResumeFile); err == nil {
		lastModTime = info.ModTime()
	}

	log.Info().Str("resume", watchResumeFile).Msg("watching for changes")
	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			info, err := os.Stat(watchResumeFile)
			if err != nil {
				continue
			}
			if info.ModTime().After(lastModTime) {
				lastModTime = info.ModTime()
				debouncer.Trigger(rescore)
			}
		}
	}
}
