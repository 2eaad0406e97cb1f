package career

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/career-copilot/internal/llm"
	"github.com/jonathan/career-copilot/internal/prompts"
	"github.com/jonathan/career-copilot/internal/types"
)

// NetworkingStrategy builds networking advice for a target role, optionally
// scoped to an industry. Provider failure yields generic advice.
func (p *Planner) NetworkingStrategy(ctx context.Context, targetRole, targetIndustry string) *types.NetworkingStrategy {
	industryContext := ""
	if targetIndustry != "" {
		industryContext = fmt.Sprintf("in the %s industry", targetIndustry)
	}

	template := prompts.MustGet("career.json", "networking-strategy")
	prompt := prompts.Format(template, map[string]string{
		"TargetRole":      targetRole,
		"IndustryContext": industryContext,
	})

	response, err := p.client.GenerateWithTemperature(ctx, prompt, llm.TierStandard, llm.TemperaturePlanning)
	if err != nil {
		log.Printf("[career] networking strategy failed: %v", err)
		return &types.NetworkingStrategy{
			TargetContacts:    []string{"Hiring Managers", "Team Leads", "Recruiters"},
			EventsCommunities: []string{"LinkedIn Groups", "Industry Conferences"},
			OutreachTemplate:  "Professional networking message template",
		}
	}

	return ParseNetworkingStrategy(response)
}

// ParseNetworkingStrategy splits a model reply into contacts, events, and an
// outreach template. Section boundaries are keyword lines; bullets under the
// first two sections become list items, and free text under the template
// section accumulates verbatim.
func ParseNetworkingStrategy(text string) *types.NetworkingStrategy {
	strategy := &types.NetworkingStrategy{}

	const (
		sectionNone = iota
		sectionContacts
		sectionEvents
		sectionTemplate
	)
	section := sectionNone

	var template strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "target contact") || strings.Contains(lower, "who to contact"):
			section = sectionContacts
		case strings.Contains(lower, "event") || strings.Contains(lower, "communit"):
			section = sectionEvents
		case strings.Contains(lower, "template") || strings.Contains(lower, "message"):
			section = sectionTemplate
			template.Reset()
		case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•"):
			item := strings.TrimSpace(strings.TrimLeft(line, "-•"))
			switch section {
			case sectionContacts:
				strategy.TargetContacts = append(strategy.TargetContacts, item)
			case sectionEvents:
				strategy.EventsCommunities = append(strategy.EventsCommunities, item)
			}
		case section == sectionTemplate && line != "":
			template.WriteString(line)
			template.WriteString("\n")
		}
	}

	strategy.OutreachTemplate = template.String()
	return strategy
}
