// Package career predicts career trajectories, recommends bridge roles, and
// builds networking strategies and learning roadmaps for role transitions.
//
// Like the skills package, every LLM-backed operation degrades to a
// hard-coded default on provider failure rather than returning an error.
package career

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/career-copilot/internal/llm"
	"github.com/jonathan/career-copilot/internal/prompts"
	"github.com/jonathan/career-copilot/internal/types"
)

// defaultTimelineMonths is used when the model reply carries no usable
// month estimate.
const defaultTimelineMonths = 12

var (
	feasibilityTagPattern   = regexp.MustCompile(`(?i)FEASIBILITY:\s*(\d+)/10`)
	feasibilityScorePattern = regexp.MustCompile(`(?i)(\d+)\s*(?:/|out of)\s*10`)
	feasibilityLoosePattern = regexp.MustCompile(`(?i)feasibility[:\s]+(\d+)`)
	timelinePattern         = regexp.MustCompile(`(?i)(\d+)\s*(?:to\s*)?(\d+)?\s*months?`)
)

// Planner predicts career paths using an LLM.
type Planner struct {
	client llm.Client
}

// NewPlanner creates a Planner backed by the given LLM client.
func NewPlanner(client llm.Client) *Planner {
	return &Planner{client: client}
}

// PredictPath analyzes the transition from currentRole to targetRole given the
// candidate's skills. On provider failure the result is a generic path with a
// feasibility score derived from the skill count.
func (p *Planner) PredictPath(ctx context.Context, currentRole, targetRole string, skills *types.SkillSet) *types.CareerPath {
	template := prompts.MustGet("career.json", "predict-path")
	prompt := prompts.Format(template, map[string]string{
		"CurrentRole": currentRole,
		"TargetRole":  targetRole,
		"Skills":      formatSkills(skills),
	})

	response, err := p.client.GenerateWithTemperature(ctx, prompt, llm.TierStandard, llm.TemperaturePlanning)
	if err != nil {
		log.Printf("[career] path prediction failed, using skill-based estimate: %v", err)
		return fallbackPath(currentRole, targetRole, skills)
	}

	return ParseCareerPath(response, currentRole, targetRole, skills)
}

// ParseCareerPath extracts a structured career path from a model reply. The
// feasibility score is tried against three patterns in order of strictness;
// when none match it is derived from the skill count. The full reply text
// becomes the pathway description.
func ParseCareerPath(text, currentRole, targetRole string, skills *types.SkillSet) *types.CareerPath {
	feasibility, found := parseFeasibility(text)
	if !found {
		feasibility = estimateFeasibility(skills)
	}

	return &types.CareerPath{
		CurrentRole:        currentRole,
		TargetRole:         targetRole,
		FeasibilityScore:   clampScore(feasibility),
		TimelineMonths:     parseTimeline(text),
		Milestones:         parseMilestones(text),
		Challenges:         parseChallenges(text),
		PathwayDescription: text,
	}
}

// parseFeasibility tries the requested FEASIBILITY: X/10 tag first, then any
// "X/10" or "X out of 10" mention, then a bare number after "feasibility".
func parseFeasibility(text string) (int, bool) {
	if m := feasibilityTagPattern.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, true
	}
	if m := feasibilityScorePattern.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, true
	}
	if m := feasibilityLoosePattern.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, true
	}
	return 0, false
}

// estimateFeasibility maps the total skill count onto a conservative score.
func estimateFeasibility(skills *types.SkillSet) int {
	total := 0
	if skills != nil {
		total = skills.Total()
	}

	switch {
	case total == 0:
		return 3
	case total < 3:
		return 4
	case total < 6:
		return 6
	default:
		return 7
	}
}

// parseTimeline finds the first "N months" or "N to M months" mention,
// preferring the upper bound of a range. Defaults to twelve months.
func parseTimeline(text string) int {
	if !strings.Contains(strings.ToLower(text), "month") {
		return defaultTimelineMonths
	}

	m := timelinePattern.FindStringSubmatch(text)
	if m == nil {
		return defaultTimelineMonths
	}
	if m[2] != "" {
		n, _ := strconv.Atoi(m[2])
		return n
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// parseMilestones collects bullet or numbered lines following a line that
// mentions "milestone". Entries of ten characters or fewer are dropped, and
// at most six are kept.
func parseMilestones(text string) []string {
	var milestones []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(strings.ToLower(trimmed), "milestone") {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		next := strconv.Itoa(len(milestones) + 1)
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, next) {
			milestone := strings.TrimSpace(strings.TrimLeft(trimmed, "-•0123456789."))
			if len(milestone) > 10 {
				milestones = append(milestones, milestone)
			}
		}
	}

	if len(milestones) == 0 {
		return []string{
			"Build foundational skills",
			"Gain relevant experience",
			"Expand network",
			"Apply to target roles",
		}
	}
	if len(milestones) > 6 {
		milestones = milestones[:6]
	}
	return milestones
}

// parseChallenges collects bullet lines following a line mentioning
// "challenge" or "obstacle", keeping at most five.
func parseChallenges(text string) []string {
	var challenges []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, "challenge") || strings.Contains(lower, "obstacle") {
			inSection = true
			continue
		}
		if inSection && (strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•")) {
			challenge := strings.TrimSpace(strings.TrimLeft(trimmed, "-•"))
			if challenge != "" {
				challenges = append(challenges, challenge)
			}
		}
	}

	if len(challenges) == 0 {
		return []string{"Skill acquisition", "Market competition"}
	}
	if len(challenges) > 5 {
		challenges = challenges[:5]
	}
	return challenges
}

// fallbackPath builds a generic transition plan when the model is unreachable.
func fallbackPath(currentRole, targetRole string, skills *types.SkillSet) *types.CareerPath {
	return &types.CareerPath{
		CurrentRole:      currentRole,
		TargetRole:       targetRole,
		FeasibilityScore: estimateFeasibility(skills),
		TimelineMonths:   defaultTimelineMonths,
		Milestones: []string{
			"Gain required skills",
			"Build portfolio",
			"Network in target industry",
			"Apply strategically",
		},
		Challenges: []string{
			"Skill acquisition",
			"Market competition",
			"Experience requirements",
		},
		PathwayDescription: "Standard career transition path",
	}
}

// clampScore bounds a feasibility score to 1-10.
func clampScore(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

// formatSkills renders a skill set as "Category: a, b, c" lines with at most
// five skills per category.
func formatSkills(skills *types.SkillSet) string {
	if skills == nil {
		return "No skills provided"
	}

	var lines []string
	for _, category := range []types.SkillCategory{types.CategoryTechnical, types.CategorySoft, types.CategoryDomain} {
		list := skills.Get(category)
		if len(list) == 0 {
			continue
		}
		if len(list) > 5 {
			list = list[:5]
		}
		title := strings.ToUpper(string(category)[:1]) + string(category)[1:]
		lines = append(lines, fmt.Sprintf("%s: %s", title, strings.Join(list, ", ")))
	}

	if len(lines) == 0 {
		return "No skills provided"
	}
	return strings.Join(lines, "\n")
}
