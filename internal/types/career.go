package types

// CareerPath is the predicted trajectory from a current role to a target role.
// FeasibilityScore is always within 1-10 and TimelineMonths defaults to 12 when
// the model reply carries no usable estimate.
type CareerPath struct {
	CurrentRole        string   `json:"current_role"`
	TargetRole         string   `json:"target_role"`
	FeasibilityScore   int      `json:"feasibility_score"`
	TimelineMonths     int      `json:"timeline_months"`
	Milestones         []string `json:"milestones"`
	Challenges         []string `json:"challenges"`
	PathwayDescription string   `json:"pathway_description"`
}

// BridgeRole is a suggested intermediate job title between the current and target role.
type BridgeRole struct {
	RoleTitle      string   `json:"role_title"`
	Rationale      string   `json:"rationale"`
	SkillsBuilt    []string `json:"skills_built"`
	TimelineMonths int      `json:"timeline_months"`
}

// NetworkingStrategy holds actionable networking advice for a target role.
type NetworkingStrategy struct {
	TargetContacts    []string `json:"target_contacts"`
	EventsCommunities []string `json:"events_communities"`
	OutreachTemplate  string   `json:"outreach_template"`
}

// LearningPhase is one phase of a skill roadmap.
type LearningPhase struct {
	PhaseName string   `json:"phase_name"`
	Duration  string   `json:"duration"`
	Focus     string   `json:"focus"`
	Resources []string `json:"resources"`
	Projects  []string `json:"projects"`
}

// SkillRoadmap is a structured learning plan for closing the gap to a target role.
type SkillRoadmap struct {
	SkillGaps      []string        `json:"skill_gaps"`
	LearningPhases []LearningPhase `json:"learning_phases"`
	TotalDuration  string          `json:"total_duration"`
}
