package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/career-copilot/internal/config"
	"github.com/jonathan/career-copilot/internal/ingestion"
	"github.com/jonathan/career-copilot/internal/llm"
)

// loadMergedConfig loads the optional config file and fills missing values
// from environment variables.
func loadMergedConfig(configPath string) (config.Config, error) {
	var cfg config.Config

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	return cfg.MergeWithDefaults(*config.FromEnv()), nil
}

// newLLMClient returns a Gemini client when an API key is available, or an
// unavailable client that keeps the agents on their offline fallbacks.
func newLLMClient(ctx context.Context, apiKey string) (llm.Client, error) {
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set, using offline fallbacks")
		return llm.Unavailable("GEMINI_API_KEY not set"), nil
	}
	return llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
}

// readJobText loads a job description from a text file or fetches it from a
// posting URL. Exactly one of jobFile and jobURL must be set.
func readJobText(ctx context.Context, jobFile, jobURL string, useBrowser, verbose bool) (string, error) {
	if jobFile == "" && jobURL == "" {
		return "", fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if jobFile != "" {
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return ingestion.CleanText(string(data)), nil
	}

	text, _, err := ingestion.IngestJobPosting(ctx, jobURL, useBrowser, verbose)
	return text, err
}
