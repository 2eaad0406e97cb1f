package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-copilot/internal/types"
)

func TestTransparencyReport_EmptySession(t *testing.T) {
	report := TransparencyReport(&types.SessionData{})

	assert.Contains(t, report, "No data processed yet")
	assert.Contains(t, report, "No decisions made yet")
	assert.Contains(t, report, "## Bias Mitigation")
}

func TestTransparencyReport_PopulatedSession(t *testing.T) {
	data := &types.SessionData{
		ResumeAnalyzed: true,
		JobDescription: "Backend Engineer at Acme",
		SkillGaps:      []string{"Kubernetes", "Terraform"},
		Recommendations: []types.Recommendation{
			{Skill: "Kubernetes", Course: "Kubernetes for Developers"},
		},
		JobMatches: []types.JobListing{{Title: "Backend Engineer"}},
	}

	report := TransparencyReport(data)

	assert.Contains(t, report, "Resume/profile data")
	assert.Contains(t, report, "Identified **2 skill gaps**")
	assert.Contains(t, report, "Provided **1 course recommendations**")
	assert.Contains(t, report, "### Job Matching")
	assert.NotContains(t, report, "No decisions made yet")
}

func TestExplainDecision(t *testing.T) {
	assert.Contains(t, ExplainDecision(FeatureSkillGap, "Kubernetes"), "'Kubernetes' was identified as a gap")
	assert.Contains(t, ExplainDecision(FeatureBridgeRole, "Analytics Engineer"), "strategic intermediate step")
	assert.Equal(t, "Recommended based on analysis of: X", ExplainDecision("mystery", "X"))
}
