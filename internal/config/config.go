// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults, env
// variables, or must be provided via CLI flags.
type Config struct {
	// Credentials
	APIKey       string `json:"api_key,omitempty"`        // Gemini API key
	SearchAPIKey string `json:"search_api_key,omitempty"` // Exa search API key
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL

	// Server
	Port string `json:"port,omitempty"` // HTTP listen port

	// Search defaults
	Location  string `json:"location,omitempty"`   // Default job search location
	WorkStyle string `json:"work_style,omitempty"` // Default work style (Remote, Hybrid, On-site)
	NumJobs   int    `json:"num_jobs,omitempty"`   // Default number of jobs per search

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// FromEnv returns a Config populated from environment variables.
// Call godotenv.Load first if a .env file should be honored.
func FromEnv() *Config {
	return &Config{
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		SearchAPIKey: os.Getenv("EXA_API_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Port:         os.Getenv("PORT"),
	}
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; those are handled by CLI flag
// validation after merging.
func (c *Config) Validate() error {
	if c.NumJobs < 0 {
		return fmt.Errorf("config error: 'num_jobs' must be non-negative")
	}

	switch c.WorkStyle {
	case "", "Any", "Remote", "Hybrid", "On-site":
	default:
		return fmt.Errorf("config error: 'work_style' must be one of Any, Remote, Hybrid, On-site")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags, and env
// values as defaults for config file values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SearchAPIKey == "" {
		result.SearchAPIKey = defaults.SearchAPIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == "" {
		result.Port = defaults.Port
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.WorkStyle == "" {
		result.WorkStyle = defaults.WorkStyle
	}

	// Int fields: use default if zero
	if result.NumJobs == 0 {
		result.NumJobs = defaults.NumJobs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
