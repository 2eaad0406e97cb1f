package skills

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/career-copilot/internal/llm"
	"github.com/jonathan/career-copilot/internal/prompts"
	"github.com/jonathan/career-copilot/internal/types"
)

// maxGapsPerRequest limits how many gaps are sent to the model at once.
const maxGapsPerRequest = 10

// RecommendResources suggests learning resources for the given skill gaps.
// An empty gap list yields no recommendations. Provider failure yields generic
// "Introduction to X" records for the first five gaps, the first three marked
// High priority.
func (a *Analyzer) RecommendResources(ctx context.Context, gaps []string) []types.Recommendation {
	if len(gaps) == 0 {
		return nil
	}

	limited := gaps
	if len(limited) > maxGapsPerRequest {
		limited = limited[:maxGapsPerRequest]
	}

	var list strings.Builder
	for _, gap := range limited {
		fmt.Fprintf(&list, "- %s\n", gap)
	}

	template := prompts.MustGet("skills.json", "recommend-resources")
	prompt := prompts.Format(template, map[string]string{
		"Gaps": list.String(),
	})

	response, err := a.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[skills] recommendation failed, using generic courses: %v", err)
		return fallbackRecommendations(gaps)
	}

	return ParseRecommendations(response)
}

// ParseRecommendations parses SKILL:/COURSE:/PLATFORM:/DURATION:/PRIORITY:
// blocks separated by "---" lines from a model reply.
func ParseRecommendations(text string) []types.Recommendation {
	var recs []types.Recommendation
	var current types.Recommendation

	flush := func() {
		if current.Skill != "" {
			recs = append(recs, current)
		}
		current = types.Recommendation{}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "SKILL:"):
			flush()
			current.Skill = strings.TrimSpace(strings.TrimPrefix(line, "SKILL:"))
		case strings.HasPrefix(line, "COURSE:"):
			current.Course = strings.TrimSpace(strings.TrimPrefix(line, "COURSE:"))
		case strings.HasPrefix(line, "PLATFORM:"):
			current.Platform = strings.TrimSpace(strings.TrimPrefix(line, "PLATFORM:"))
		case strings.HasPrefix(line, "DURATION:"):
			current.Duration = strings.TrimSpace(strings.TrimPrefix(line, "DURATION:"))
		case strings.HasPrefix(line, "PRIORITY:"):
			current.Priority = strings.TrimSpace(strings.TrimPrefix(line, "PRIORITY:"))
		case line == "---":
			flush()
		}
	}
	flush()

	return recs
}

// fallbackRecommendations builds generic records when the model is unreachable.
func fallbackRecommendations(gaps []string) []types.Recommendation {
	limited := gaps
	if len(limited) > 5 {
		limited = limited[:5]
	}

	recs := make([]types.Recommendation, 0, len(limited))
	for i, gap := range limited {
		priority := "Medium"
		if i < 3 {
			priority = "High"
		}
		recs = append(recs, types.Recommendation{
			Skill:    gap,
			Course:   fmt.Sprintf("Introduction to %s", gap),
			Platform: "Coursera",
			Duration: "4-6 weeks",
			Priority: priority,
		})
	}
	return recs
}
