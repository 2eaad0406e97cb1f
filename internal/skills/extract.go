// Package skills provides skill extraction from resumes and job descriptions,
// gap analysis between the two, and learning resource recommendations.
//
// All LLM-backed operations degrade to hard-coded defaults on provider
// failure; callers never see an error from a model outage, only an empty or
// generic result.
package skills

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/career-copilot/internal/llm"
	"github.com/jonathan/career-copilot/internal/prompts"
	"github.com/jonathan/career-copilot/internal/types"
)

// maxInputChars limits the text sent to the model to stay under token limits.
const maxInputChars = 3000

// Analyzer extracts skills and recommends learning resources using an LLM.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an Analyzer backed by the given LLM client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// ExtractSkills extracts categorized skills from resume or job description
// text. sourceType is "resume" or "job description" and only steers the
// prompt. On any provider failure the result is an empty skill set.
func (a *Analyzer) ExtractSkills(ctx context.Context, text, sourceType string) *types.SkillSet {
	if sourceType == "" {
		sourceType = "resume"
	}

	template := prompts.MustGet("skills.json", "extract-skills")
	prompt := prompts.Format(template, map[string]string{
		"SourceType": sourceType,
		"Text":       truncate(text, maxInputChars),
	})

	response, err := a.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[skills] extraction failed, returning empty set: %v", err)
		return &types.SkillSet{}
	}

	return ParseSkills(response)
}

// ParseSkills scans a model reply for TECHNICAL:/SOFT:/DOMAIN: section headers
// and accumulates the "- " bullet lines under each. Bullets shorter than three
// characters are dropped.
func ParseSkills(text string) *types.SkillSet {
	set := &types.SkillSet{}

	var current types.SkillCategory
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)

		switch {
		case strings.Contains(upper, "TECHNICAL:"):
			current = types.CategoryTechnical
		case strings.Contains(upper, "SOFT:"):
			current = types.CategorySoft
		case strings.Contains(upper, "DOMAIN:"):
			current = types.CategoryDomain
		case strings.HasPrefix(line, "-") && current != "":
			skill := strings.TrimSpace(strings.TrimLeft(line, "-"))
			if len(skill) > 2 {
				set.Add(current, skill)
			}
		}
	}

	return set
}

// truncate cuts s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
