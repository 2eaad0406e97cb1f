package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-copilot/internal/interview"
	"github.com/jonathan/career-copilot/internal/observability"
	"github.com/jonathan/career-copilot/internal/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Generate interview questions or score a practice answer",
	Long: `Generate behavioral, technical, or situational interview questions tailored
to a job description. With --question and --answer, scores the answer instead
and prints detailed feedback. Use --tips for preparation tips only.`,
	RunE: runInterview,
}

var (
	interviewConfigPath string
	interviewJobFile    string
	interviewJobURL     string
	interviewType       string
	interviewCount      int
	interviewQuestion   string
	interviewAnswer     string
	interviewTips       bool
	interviewUseBrowser bool
	interviewVerbose    bool
)

func init() {
	interviewCmd.Flags().StringVar(&interviewConfigPath, "config", "", "Path to config.json file")
	interviewCmd.Flags().StringVarP(&interviewJobFile, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	interviewCmd.Flags().StringVar(&interviewJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	interviewCmd.Flags().StringVarP(&interviewType, "type", "t", "behavioral", "Question type: behavioral, technical, or situational")
	interviewCmd.Flags().IntVarP(&interviewCount, "count", "n", 5, "Number of questions to generate")
	interviewCmd.Flags().StringVarP(&interviewQuestion, "question", "q", "", "Question being answered (requires --answer)")
	interviewCmd.Flags().StringVarP(&interviewAnswer, "answer", "a", "", "Answer to score (requires --question)")
	interviewCmd.Flags().BoolVar(&interviewTips, "tips", false, "Print preparation tips for the question type and exit")
	interviewCmd.Flags().BoolVar(&interviewUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	interviewCmd.Flags().BoolVarP(&interviewVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	questionType := types.QuestionType(interviewType)
	if !questionType.Valid() {
		return fmt.Errorf("unknown question type %q: must be behavioral, technical, or situational", interviewType)
	}

	if interviewTips {
		fmt.Printf("Preparation tips (%s):\n", questionType)
		for _, tip := range interview.PracticeTips(questionType) {
			fmt.Printf("  - %s\n", tip)
		}
		return nil
	}

	if (interviewQuestion == "") != (interviewAnswer == "") {
		return fmt.Errorf("--question and --answer must be provided together")
	}

	cfg, err := loadMergedConfig(interviewConfigPath)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	coach := interview.NewCoach(client)

	// Evaluation mode: the job description is optional context
	if interviewQuestion != "" {
		jobText := ""
		if interviewJobFile != "" || interviewJobURL != "" {
			jobText, err = readJobText(ctx, interviewJobFile, interviewJobURL, interviewUseBrowser, interviewVerbose)
			if err != nil {
				return err
			}
		}

		evaluation := coach.EvaluateAnswer(ctx, interviewQuestion, interviewAnswer, jobText)
		observability.NewPrinter(os.Stdout).PrintEvaluation(evaluation)
		return nil
	}

	jobText, err := readJobText(ctx, interviewJobFile, interviewJobURL, interviewUseBrowser, interviewVerbose)
	if err != nil {
		return err
	}

	questions := coach.GenerateQuestions(ctx, jobText, questionType, interviewCount)
	fmt.Printf("Practice questions (%s):\n", questionType)
	for i, q := range questions {
		fmt.Printf("  %d. %s\n", i+1, q)
	}

	return nil
}
