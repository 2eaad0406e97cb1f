package career

import (
	"context"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/career-copilot/internal/llm"
	"github.com/jonathan/career-copilot/internal/prompts"
	"github.com/jonathan/career-copilot/internal/types"
)

var totalDurationPattern = regexp.MustCompile(`(?i)(\d+[-\s]*\d*)\s*months?`)

// SkillRoadmap generates a phased learning plan for closing the gap to the
// target role. feasibilityScore steers how aggressive the plan should be.
// Provider failure yields a generic two-phase roadmap.
func (p *Planner) SkillRoadmap(ctx context.Context, currentRole, targetRole, currentSkills string, feasibilityScore int) *types.SkillRoadmap {
	if currentSkills == "" {
		currentSkills = "Limited skills provided"
	}

	template := prompts.MustGet("career.json", "skill-roadmap")
	prompt := prompts.Format(template, map[string]string{
		"CurrentRole": currentRole,
		"TargetRole":  targetRole,
		"Skills":      currentSkills,
		"Feasibility": strconv.Itoa(feasibilityScore),
	})

	response, err := p.client.GenerateWithTemperature(ctx, prompt, llm.TierStandard, llm.TemperaturePlanning)
	if err != nil {
		log.Printf("[career] roadmap generation failed, using default plan: %v", err)
		return defaultRoadmap()
	}

	return ParseSkillRoadmap(response)
}

// ParseSkillRoadmap parses the SKILL GAPS / PHASE N / TOTAL DURATION layout
// from a model reply. When nothing at all parses the default roadmap is
// returned; when only one side parses the other is filled with a generic
// placeholder.
func ParseSkillRoadmap(text string) *types.SkillRoadmap {
	roadmap := &types.SkillRoadmap{TotalDuration: "6-9 months"}

	const (
		sectionNone = iota
		sectionGaps
		sectionPhase
		sectionResources
		sectionProjects
	)
	section := sectionNone

	var phase *types.LearningPhase
	savePhase := func() {
		if phase != nil {
			roadmap.LearningPhases = append(roadmap.LearningPhases, *phase)
			phase = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)

		switch {
		case strings.Contains(upper, "SKILL GAP"):
			section = sectionGaps
			savePhase()
		case strings.Contains(upper, "TOTAL DURATION"):
			if m := totalDurationPattern.FindString(line); m != "" {
				roadmap.TotalDuration = m
			}
			section = sectionNone
		case strings.HasPrefix(upper, "PHASE"):
			savePhase()
			name := line
			if idx := strings.Index(line, ":"); idx >= 0 {
				name = strings.TrimSpace(line[idx+1:])
			}
			phase = &types.LearningPhase{PhaseName: name, Duration: "3 months"}
			section = sectionPhase
		case phase != nil && strings.Contains(upper, "DURATION:"):
			phase.Duration = valueAfterColon(line)
		case phase != nil && strings.Contains(upper, "FOCUS:"):
			phase.Focus = valueAfterColon(line)
		case phase != nil && strings.Contains(upper, "RESOURCE"):
			section = sectionResources
		case phase != nil && strings.Contains(upper, "PROJECT"):
			section = sectionProjects
		case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•"):
			item := strings.TrimSpace(strings.TrimLeft(line, "-•"))
			if item == "" {
				continue
			}
			switch section {
			case sectionGaps:
				roadmap.SkillGaps = append(roadmap.SkillGaps, item)
			case sectionResources:
				phase.Resources = append(phase.Resources, item)
			case sectionProjects:
				phase.Projects = append(phase.Projects, item)
			}
		}
	}
	savePhase()

	if len(roadmap.SkillGaps) == 0 && len(roadmap.LearningPhases) == 0 {
		return defaultRoadmap()
	}
	if len(roadmap.SkillGaps) == 0 {
		roadmap.SkillGaps = []string{"Core technical skills", "Domain knowledge", "Best practices"}
	}
	if len(roadmap.LearningPhases) == 0 {
		roadmap.LearningPhases = []types.LearningPhase{{
			PhaseName: "Learning Phase",
			Duration:  "3-6 months",
			Focus:     "Build required skills for target role",
			Resources: []string{"Online courses", "Documentation", "Practice"},
			Projects:  []string{"Build portfolio projects"},
		}}
	}

	return roadmap
}

// valueAfterColon returns the trimmed text after the first colon in line.
func valueAfterColon(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	return line
}

// defaultRoadmap is the hard-coded plan used when the model is unreachable or
// its reply is unparsable.
func defaultRoadmap() *types.SkillRoadmap {
	return &types.SkillRoadmap{
		SkillGaps: []string{
			"Core technical skills for target role",
			"Domain-specific knowledge",
			"Industry best practices",
			"Relevant tools and technologies",
		},
		LearningPhases: []types.LearningPhase{
			{
				PhaseName: "Phase 1: Foundation Building",
				Duration:  "3 months",
				Focus:     "Master fundamental technical skills",
				Resources: []string{
					"Coursera or Udemy beginner courses",
					"Official documentation",
					"YouTube tutorials",
				},
				Projects: []string{
					"Build 2-3 small practice projects",
					"Contribute to open source",
				},
			},
			{
				PhaseName: "Phase 2: Intermediate Skills",
				Duration:  "3 months",
				Focus:     "Apply skills in real-world scenarios",
				Resources: []string{
					"Advanced online courses",
					"Industry certifications",
					"Professional communities",
				},
				Projects: []string{
					"Create portfolio projects",
					"Build end-to-end applications",
				},
			},
		},
		TotalDuration: "6-9 months",
	}
}
