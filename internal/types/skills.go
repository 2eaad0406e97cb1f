// Package types provides type definitions for structured data used throughout the career-copilot system.
package types

// SkillCategory identifies one of the three skill buckets used across the system.
type SkillCategory string

// Skill categories for extraction and gap analysis.
const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
	CategoryDomain    SkillCategory = "domain"
)

// Categories returns the skill categories in canonical order.
func Categories() []SkillCategory {
	return []SkillCategory{CategoryTechnical, CategorySoft, CategoryDomain}
}

// SkillSet holds categorized skills extracted from a resume or job description.
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Domain    []string `json:"domain"`
}

// Get returns the skills for a category.
func (s *SkillSet) Get(c SkillCategory) []string {
	switch c {
	case CategoryTechnical:
		return s.Technical
	case CategorySoft:
		return s.Soft
	case CategoryDomain:
		return s.Domain
	}
	return nil
}

// Add appends a skill to a category.
func (s *SkillSet) Add(c SkillCategory, skill string) {
	switch c {
	case CategoryTechnical:
		s.Technical = append(s.Technical, skill)
	case CategorySoft:
		s.Soft = append(s.Soft, skill)
	case CategoryDomain:
		s.Domain = append(s.Domain, skill)
	}
}

// Total returns the number of skills across all categories.
func (s *SkillSet) Total() int {
	if s == nil {
		return 0
	}
	return len(s.Technical) + len(s.Soft) + len(s.Domain)
}

// SkillGaps groups missing skills by severity. Technical gaps are critical,
// domain gaps moderate, soft gaps minor.
type SkillGaps struct {
	Critical []string `json:"critical"`
	Moderate []string `json:"moderate"`
	Minor    []string `json:"minor"`
}

// All returns every gap in severity order.
func (g *SkillGaps) All() []string {
	out := make([]string, 0, len(g.Critical)+len(g.Moderate)+len(g.Minor))
	out = append(out, g.Critical...)
	out = append(out, g.Moderate...)
	out = append(out, g.Minor...)
	return out
}

// GapAnalysis is the result of comparing resume skills against job requirements.
type GapAnalysis struct {
	Gaps            SkillGaps `json:"gaps"`
	Matched         SkillSet  `json:"matched"`
	MatchPercentage float64   `json:"match_percentage"`
	ResumeSkills    SkillSet  `json:"resume_skills"`
	JobSkills       SkillSet  `json:"job_skills"`
}

// Recommendation is a single learning resource suggested for a skill gap.
type Recommendation struct {
	Skill    string `json:"skill"`
	Course   string `json:"course"`
	Platform string `json:"platform"`
	Duration string `json:"duration"`
	Priority string `json:"priority"`
}

// LearningRoadmap buckets recommendations into quarters of a 12-month plan.
type LearningRoadmap struct {
	Months1To3   []Recommendation `json:"months_1_3"`
	Months4To6   []Recommendation `json:"months_4_6"`
	Months7To9   []Recommendation `json:"months_7_9"`
	Months10To12 []Recommendation `json:"months_10_12"`
}
