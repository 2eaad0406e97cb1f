package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-copilot/internal/audit"
	"github.com/jonathan/career-copilot/internal/ingestion"
	"github.com/jonathan/career-copilot/internal/observability"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit a resume or job description for bias signals",
	Long: `Scan a resume for signals that commonly invite screening bias (age
indicators, gendered language, elite-credential emphasis), or a job
description for discriminatory language. Audits run entirely offline.`,
	RunE: runAudit,
}

var (
	auditResumePath  string
	auditJobFile     string
	auditJobURL      string
	auditUseBrowser  bool
	auditVerboseFlag bool
)

func init() {
	auditCmd.Flags().StringVarP(&auditResumePath, "resume", "r", "", "Path to resume file (.pdf, .docx, or .txt)")
	auditCmd.Flags().StringVarP(&auditJobFile, "job", "j", "", "Path to job description text file")
	auditCmd.Flags().StringVar(&auditJobURL, "job-url", "", "URL to fetch job posting from")
	auditCmd.Flags().BoolVar(&auditUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	auditCmd.Flags().BoolVarP(&auditVerboseFlag, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(auditCmd)
}

func runAudit(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if auditResumePath == "" && auditJobFile == "" && auditJobURL == "" {
		return fmt.Errorf("one of --resume, --job, or --job-url must be provided")
	}

	if auditResumePath != "" {
		text, _, err := ingestion.IngestResumeFile(auditResumePath)
		if err != nil {
			return err
		}
		result := audit.AuditResume(text)
		observability.NewPrinter(os.Stdout).PrintResumeAudit(result)
		return nil
	}

	jobText, err := readJobText(ctx, auditJobFile, auditJobURL, auditUseBrowser, auditVerboseFlag)
	if err != nil {
		return err
	}

	result := audit.AuditJobDescription(jobText)
	fmt.Printf("Fairness score: %d/100\n", result.Score)
	if result.IsDiscriminatory {
		fmt.Println("This posting contains potentially discriminatory language:")
	}
	for _, issue := range result.Issues {
		fmt.Printf("  ⚠ %s\n", issue)
	}
	for _, flag := range result.Flags {
		fmt.Printf("  - %s\n", flag)
	}

	return nil
}
