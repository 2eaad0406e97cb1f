package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-copilot/internal/audit"
	"github.com/jonathan/career-copilot/internal/observability"
	"github.com/jonathan/career-copilot/internal/search"
	"github.com/jonathan/career-copilot/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for live job postings",
	Long: `Search the web for job postings matching a title, filter out blog posts
and aggregated listing pages, and print the matches with company details and
a bias audit per listing.`,
	RunE: runSearch,
}

var (
	searchConfigPath string
	searchTitle      string
	searchLocation   string
	searchWorkStyle  string
	searchNumJobs    int
)

func init() {
	searchCmd.Flags().StringVar(&searchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	searchCmd.Flags().StringVarP(&searchTitle, "title", "t", "", "Job title to search for (required)")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Preferred location (e.g. \"New York\", \"Any\")")
	searchCmd.Flags().StringVarP(&searchWorkStyle, "work-style", "w", "", "Work style: Any, Remote, Hybrid, or On-site")
	searchCmd.Flags().IntVarP(&searchNumJobs, "num", "n", 0, "Number of jobs to return (default 5)")

	_ = searchCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(searchConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = searchLocation
	}
	if cmd.Flags().Changed("work-style") {
		cfg.WorkStyle = searchWorkStyle
	}
	if cmd.Flags().Changed("num") {
		cfg.NumJobs = searchNumJobs
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.SearchAPIKey == "" {
		return fmt.Errorf("EXA_API_KEY environment variable or 'search_api_key' config value is required")
	}

	client, err := newLLMClient(ctx, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	auditor := audit.NewAuditor(client)
	searcher := search.NewSearcher(search.NewExaProvider(cfg.SearchAPIKey))
	processor := search.NewProcessor(client, auditor)

	raw := searcher.Search(ctx, types.SearchRequest{
		JobTitle:  searchTitle,
		Location:  cfg.Location,
		WorkStyle: cfg.WorkStyle,
		NumJobs:   cfg.NumJobs,
	})
	jobs := processor.ProcessJobs(ctx, raw.Jobs)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobMatches(&types.SearchResult{
		Jobs:   jobs,
		Status: raw.Status,
		Count:  len(jobs),
	})

	return nil
}
