// Package main provides the entry point for the job match engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-engine/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Job posting analysis and resume match scoring",
	Long:  "match_agent derives structured metadata from job postings, scores resume documents against extracted keywords, and highlights matched terms.",
}

var (
	configPath string
	verbose    bool
	logLevel   string

	log zerolog.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print formatted boxes instead of bare JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.PersistentPreRunE = setup
}

// setup initializes logging and applies config file values as flag defaults.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if configPath == "" {
		return nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	applyConfigDefaults(cmd, cfg)
	return nil
}

// applyConfigDefaults fills unset string flags from the config file. Flags
// given on the command line always win.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	defaults := map[string]string{
		"job":              cfg.Job,
		"resume":           cfg.Resume,
		"service-response": cfg.ServiceResponse,
		"match-response":   cfg.MatchResponse,
		"db-url":           cfg.DatabaseURL,
	}
	for name, value := range defaults {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || value == "" || flag.Changed {
			continue
		}
		_ = flag.Value.Set(value)
	}
	if cfg.Verbose && !cmd.Flags().Changed("verbose") {
		verbose = true
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
