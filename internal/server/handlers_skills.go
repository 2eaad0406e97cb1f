package server

import (
	"net/http"

	"github.com/jonathan/career-copilot/internal/skills"
)

// ExtractSkillsRequest asks for the skills found in a block of text.
type ExtractSkillsRequest struct {
	Text       string `json:"text" validate:"required,min=10"`
	SourceType string `json:"source_type" validate:"required,oneof=resume job_description"`
}

// SkillGapsRequest compares resume text against a job description.
type SkillGapsRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=10"`
	JobDescription string `json:"job_description" validate:"required,min=10"`
}

// RecommendationsRequest asks for learning resources covering the given gaps.
type RecommendationsRequest struct {
	Gaps []string `json:"gaps" validate:"required,min=1,dive,min=1"`
}

// handleExtractSkills extracts a categorized skill set from resume or job text.
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractSkillsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	skillSet := s.analyzer.ExtractSkills(r.Context(), req.Text, req.SourceType)
	s.jsonResponse(w, http.StatusOK, skillSet)
}

// handleSkillGaps extracts skills from both texts and returns the gap analysis.
func (s *Server) handleSkillGaps(w http.ResponseWriter, r *http.Request) {
	var req SkillGapsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	resumeSkills := s.analyzer.ExtractSkills(r.Context(), req.ResumeText, "resume")
	jobSkills := s.analyzer.ExtractSkills(r.Context(), req.JobDescription, "job_description")
	analysis := skills.AnalyzeGaps(resumeSkills, jobSkills)
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleRecommendations returns learning resources for the given skill gaps.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	recs := s.analyzer.RecommendResources(r.Context(), req.Gaps)
	s.jsonResponse(w, http.StatusOK, recs)
}

// handleLearningRoadmap returns recommendations bucketed into a 12-month plan.
func (s *Server) handleLearningRoadmap(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	recs := s.analyzer.RecommendResources(r.Context(), req.Gaps)
	roadmap := skills.BuildRoadmap(recs)
	s.jsonResponse(w, http.StatusOK, roadmap)
}
