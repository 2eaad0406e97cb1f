package types

import (
	"time"

	"github.com/google/uuid"
)

// SessionData is the per-session working state of the dashboard. It mirrors
// what each page stores after an agent call so the transparency report can
// explain which data informed which decision. All fields are optional.
type SessionData struct {
	ResumeAnalyzed  bool              `json:"resume_analyzed,omitempty"`
	JobDescription  string            `json:"job_description,omitempty"`
	ResumeSkills    *SkillSet         `json:"resume_skills,omitempty"`
	JobSkills       *SkillSet         `json:"job_skills,omitempty"`
	SkillGaps       []string          `json:"skill_gaps,omitempty"`
	Recommendations []Recommendation  `json:"recommendations,omitempty"`
	CareerPath      *CareerPath       `json:"career_path,omitempty"`
	InterviewLog    []InterviewRecord `json:"interview_answers,omitempty"`
	JobMatches      []JobListing      `json:"job_matches,omitempty"`
	SearchQuery     string            `json:"search_query,omitempty"`
}

// Session is a persisted dashboard session.
type Session struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id,omitempty"`
	Data      SessionData `json:"data"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
