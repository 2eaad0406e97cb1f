package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-copilot/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Extract clean text from a resume file or job posting URL",
	Long:  "Extract plain text from a resume document (PDF, DOCX, or TXT) or a job posting URL, clean the content, and write the cleaned text with metadata.",
	RunE:  runIngest,
}

var (
	ingestResume     string
	ingestURL        string
	ingestOut        string
	ingestUseBrowser bool
	ingestVerbose    bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestResume, "resume", "r", "", "Path to resume file (mutually exclusive with --url)")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "Job posting URL to fetch (mutually exclusive with --resume)")
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Output directory (cleaned text and metadata are printed to stdout when omitted)")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	if ingestResume == "" && ingestURL == "" {
		return fmt.Errorf("either --resume or --url must be provided")
	}
	if ingestResume != "" && ingestURL != "" {
		return fmt.Errorf("--resume and --url are mutually exclusive; provide only one")
	}

	var cleanedText string
	var metadata *ingestion.Metadata
	var err error

	if ingestResume != "" {
		cleanedText, metadata, err = ingestion.IngestResumeFile(ingestResume)
		if err != nil {
			return fmt.Errorf("failed to ingest resume: %w", err)
		}
	} else {
		cleanedText, metadata, err = ingestion.IngestJobPosting(context.Background(), ingestURL, ingestUseBrowser, ingestVerbose)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	if ingestOut == "" {
		fmt.Println(cleanedText)
		fmt.Println(string(metaJSON))
		return nil
	}

	if err := os.MkdirAll(ingestOut, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	textPath := filepath.Join(ingestOut, "ingested.cleaned.txt")
	metaPath := filepath.Join(ingestOut, "ingested.meta.json")
	if err := os.WriteFile(textPath, []byte(cleanedText+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write cleaned text: %w", err)
	}
	if err := os.WriteFile(metaPath, metaJSON, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested\n")
	fmt.Fprintf(os.Stdout, "Cleaned text: %s\n", textPath)
	fmt.Fprintf(os.Stdout, "Metadata: %s\n", metaPath)

	return nil
}
