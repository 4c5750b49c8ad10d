// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDebounceMS is the quiet period before a re-score when watching an
// actively edited resume.
const DefaultDebounceMS = 750

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Job             string `json:"job,omitempty"`              // Path to job posting file (.txt, .md or .html)
	Resume          string `json:"resume,omitempty"`           // Path to resume JSON document
	ServiceResponse string `json:"service_response,omitempty"` // Path to saved extraction-service response JSON
	MatchResponse   string `json:"match_response,omitempty"`   // Path to saved match-service response JSON

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print formatted boxes instead of bare JSON
	Save        bool   `json:"save,omitempty"`         // Persist the analysis keyed by posting hash
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for saved analyses
	DebounceMS  int    `json:"debounce_ms,omitempty"`  // Quiet period for watch-mode re-scoring
	LogLevel    string `json:"log_level,omitempty"`    // zerolog level name (debug, info, warn, error)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.DebounceMS < 0 {
		return fmt.Errorf("config error: 'debounce_ms' must be non-negative")
	}
	if c.Save && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'save' requires 'database_url'")
	}

	for _, path := range []string{c.Job, c.Resume, c.ServiceResponse, c.MatchResponse} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.ServiceResponse == "" {
		result.ServiceResponse = defaults.ServiceResponse
	}
	if result.MatchResponse == "" {
		result.MatchResponse = defaults.MatchResponse
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	if result.DebounceMS == 0 {
		if defaults.DebounceMS > 0 {
			result.DebounceMS = defaults.DebounceMS
		} else {
			result.DebounceMS = DefaultDebounceMS
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
