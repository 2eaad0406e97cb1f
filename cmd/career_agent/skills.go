package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-copilot/internal/ingestion"
	"github.com/jonathan/career-copilot/internal/observability"
	"github.com/jonathan/career-copilot/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Analyze skill gaps between a resume and a job description",
	Long: `Extract skills from a resume (PDF, DOCX, or TXT) and a job description,
compare them, and print the skill gaps by severity along with learning
resource recommendations and a 12-month roadmap.`,
	RunE: runSkills,
}

var (
	skillsConfigPath string
	skillsResume     string
	skillsJobFile    string
	skillsJobURL     string
	skillsRoadmap    bool
	skillsUseBrowser bool
	skillsVerbose    bool
)

func init() {
	skillsCmd.Flags().StringVar(&skillsConfigPath, "config", "", "Path to config.json file")
	skillsCmd.Flags().StringVarP(&skillsResume, "resume", "r", "", "Path to resume file (.pdf, .docx, or .txt) (required)")
	skillsCmd.Flags().StringVarP(&skillsJobFile, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	skillsCmd.Flags().StringVar(&skillsJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	skillsCmd.Flags().BoolVar(&skillsRoadmap, "roadmap", false, "Also print the 12-month learning roadmap as JSON")
	skillsCmd.Flags().BoolVar(&skillsUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	skillsCmd.Flags().BoolVarP(&skillsVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = skillsCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(skillsConfigPath)
	if err != nil {
		return err
	}

	resumeText, _, err := ingestion.IngestResumeFile(skillsResume)
	if err != nil {
		return err
	}

	jobText, err := readJobText(ctx, skillsJobFile, skillsJobURL, skillsUseBrowser, skillsVerbose)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	analyzer := skills.NewAnalyzer(client)
	resumeSkills := analyzer.ExtractSkills(ctx, resumeText, "resume")
	jobSkills := analyzer.ExtractSkills(ctx, jobText, "job description")
	analysis := skills.AnalyzeGaps(resumeSkills, jobSkills)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintGapAnalysis(analysis)

	gaps := analysis.Gaps.All()
	if len(gaps) == 0 {
		return nil
	}

	recs := analyzer.RecommendResources(ctx, gaps)
	for _, rec := range recs {
		fmt.Printf("  %s: %s (%s, %s) [%s]\n", rec.Skill, rec.Course, rec.Platform, rec.Duration, rec.Priority)
	}

	if skillsRoadmap {
		roadmap := skills.BuildRoadmap(recs)
		encoded, err := json.MarshalIndent(roadmap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode roadmap: %w", err)
		}
		fmt.Println(string(encoded))
	}

	return nil
}
