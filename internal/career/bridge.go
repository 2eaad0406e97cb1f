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

// maxBridgeRoles caps how many intermediate roles a reply can contribute.
const maxBridgeRoles = 5

var digitsPattern = regexp.MustCompile(`\d+`)

// BridgeRoles recommends intermediate roles between the current and target
// role. Provider failure yields a single "Senior <current role>" suggestion.
func (p *Planner) BridgeRoles(ctx context.Context, currentRole, targetRole string, skills *types.SkillSet) []types.BridgeRole {
	template := prompts.MustGet("career.json", "bridge-roles")
	prompt := prompts.Format(template, map[string]string{
		"CurrentRole": currentRole,
		"TargetRole":  targetRole,
		"Skills":      formatSkills(skills),
	})

	response, err := p.client.GenerateWithTemperature(ctx, prompt, llm.TierStandard, llm.TemperaturePlanning)
	if err != nil {
		log.Printf("[career] bridge role recommendation failed: %v", err)
		return []types.BridgeRole{
			{
				RoleTitle:      fmt.Sprintf("Senior %s", currentRole),
				Rationale:      "Deepens expertise before transition",
				SkillsBuilt:    []string{"Advanced technical skills", "Leadership"},
				TimelineMonths: defaultTimelineMonths,
			},
		}
	}

	return ParseBridgeRoles(response)
}

// ParseBridgeRoles parses ROLE:/WHY:/SKILLS:/TIMELINE: blocks separated by
// "---" lines, keeping at most five roles. A missing or unparsable timeline
// defaults to twelve months.
func ParseBridgeRoles(text string) []types.BridgeRole {
	var roles []types.BridgeRole
	var current types.BridgeRole

	flush := func() {
		if current.RoleTitle != "" {
			if current.TimelineMonths == 0 {
				current.TimelineMonths = defaultTimelineMonths
			}
			roles = append(roles, current)
		}
		current = types.BridgeRole{}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "ROLE:"):
			flush()
			current.RoleTitle = strings.TrimSpace(strings.TrimPrefix(line, "ROLE:"))
		case strings.HasPrefix(line, "WHY:"):
			current.Rationale = strings.TrimSpace(strings.TrimPrefix(line, "WHY:"))
		case strings.HasPrefix(line, "SKILLS:"):
			list := strings.TrimSpace(strings.TrimPrefix(line, "SKILLS:"))
			for _, skill := range strings.Split(list, ",") {
				if skill = strings.TrimSpace(skill); skill != "" {
					current.SkillsBuilt = append(current.SkillsBuilt, skill)
				}
			}
		case strings.HasPrefix(line, "TIMELINE:"):
			if m := digitsPattern.FindString(line); m != "" {
				current.TimelineMonths, _ = strconv.Atoi(m)
			} else {
				current.TimelineMonths = defaultTimelineMonths
			}
		case line == "---":
			flush()
		}
	}
	flush()

	if len(roles) > maxBridgeRoles {
		roles = roles[:maxBridgeRoles]
	}
	return roles
}
