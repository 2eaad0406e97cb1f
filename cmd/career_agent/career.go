package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-copilot/internal/career"
	"github.com/jonathan/career-copilot/internal/ingestion"
	"github.com/jonathan/career-copilot/internal/observability"
	"github.com/jonathan/career-copilot/internal/skills"
	"github.com/jonathan/career-copilot/internal/types"
)

var careerCmd = &cobra.Command{
	Use:   "career",
	Short: "Plan a career transition between two roles",
	Long: `Predict the feasibility and timeline of moving from the current role to a
target role, with milestones and likely challenges. Optionally suggests bridge
roles, a networking strategy, and a phased skill roadmap.`,
	RunE: runCareer,
}

var (
	careerConfigPath string
	careerCurrent    string
	careerTarget     string
	careerResume     string
	careerIndustry   string
	careerBridge     bool
	careerNetworking bool
	careerRoadmap    bool
)

func init() {
	careerCmd.Flags().StringVar(&careerConfigPath, "config", "", "Path to config.json file")
	careerCmd.Flags().StringVar(&careerCurrent, "current", "", "Current role (required)")
	careerCmd.Flags().StringVar(&careerTarget, "target", "", "Target role (required)")
	careerCmd.Flags().StringVarP(&careerResume, "resume", "r", "", "Path to resume file for skill-aware predictions")
	careerCmd.Flags().StringVar(&careerIndustry, "industry", "", "Target industry for the networking strategy")
	careerCmd.Flags().BoolVar(&careerBridge, "bridge", false, "Also suggest bridge roles")
	careerCmd.Flags().BoolVar(&careerNetworking, "networking", false, "Also print a networking strategy")
	careerCmd.Flags().BoolVar(&careerRoadmap, "roadmap", false, "Also print a phased skill roadmap")

	_ = careerCmd.MarkFlagRequired("current")
	_ = careerCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(careerCmd)
}

func runCareer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(careerConfigPath)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	var skillSet *types.SkillSet
	if careerResume != "" {
		resumeText, _, err := ingestion.IngestResumeFile(careerResume)
		if err != nil {
			return err
		}
		skillSet = skills.NewAnalyzer(client).ExtractSkills(ctx, resumeText, "resume")
	}

	planner := career.NewPlanner(client)
	path := planner.PredictPath(ctx, careerCurrent, careerTarget, skillSet)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintCareerPath(path)

	if careerBridge {
		for _, role := range planner.BridgeRoles(ctx, careerCurrent, careerTarget, skillSet) {
			fmt.Printf("  Bridge role: %s (~%d months)\n", role.RoleTitle, role.TimelineMonths)
			if role.Rationale != "" {
				fmt.Printf("    %s\n", role.Rationale)
			}
		}
	}

	if careerNetworking {
		strategy := planner.NetworkingStrategy(ctx, careerTarget, careerIndustry)
		fmt.Printf("  Contacts: %s\n", strings.Join(strategy.TargetContacts, ", "))
		fmt.Printf("  Communities: %s\n", strings.Join(strategy.EventsCommunities, ", "))
	}

	if careerRoadmap {
		currentSkills := ""
		if skillSet != nil {
			currentSkills = strings.Join(skillSet.Technical, ", ")
		}
		roadmap := planner.SkillRoadmap(ctx, careerCurrent, careerTarget, currentSkills, path.FeasibilityScore)
		for _, phase := range roadmap.LearningPhases {
			fmt.Printf("  %s (%s): %s\n", phase.PhaseName, phase.Duration, phase.Focus)
		}
	}

	return nil
}
