package server

import (
	"net/http"

	"github.com/jonathan/career-copilot/internal/types"
)

// CareerPathRequest asks for a transition plan between two roles.
type CareerPathRequest struct {
	CurrentRole string          `json:"current_role" validate:"required,min=2"`
	TargetRole  string          `json:"target_role" validate:"required,min=2"`
	Skills      *types.SkillSet `json:"skills,omitempty"`
}

// NetworkingRequest asks for a networking strategy toward a target role.
type NetworkingRequest struct {
	TargetRole     string `json:"target_role" validate:"required,min=2"`
	TargetIndustry string `json:"target_industry,omitempty"`
}

// SkillRoadmapRequest asks for a phased skill plan for a role transition.
type SkillRoadmapRequest struct {
	CurrentRole      string `json:"current_role" validate:"required,min=2"`
	TargetRole       string `json:"target_role" validate:"required,min=2"`
	CurrentSkills    string `json:"current_skills,omitempty"`
	FeasibilityScore int    `json:"feasibility_score,omitempty" validate:"omitempty,min=1,max=10"`
}

// handleCareerPath predicts a transition path between the current and target role.
func (s *Server) handleCareerPath(w http.ResponseWriter, r *http.Request) {
	var req CareerPathRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	path := s.planner.PredictPath(r.Context(), req.CurrentRole, req.TargetRole, req.Skills)
	s.jsonResponse(w, http.StatusOK, path)
}

// handleBridgeRoles suggests intermediate roles for the transition.
func (s *Server) handleBridgeRoles(w http.ResponseWriter, r *http.Request) {
	var req CareerPathRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	roles := s.planner.BridgeRoles(r.Context(), req.CurrentRole, req.TargetRole, req.Skills)
	s.jsonResponse(w, http.StatusOK, roles)
}

// handleNetworking returns a networking strategy for the target role.
func (s *Server) handleNetworking(w http.ResponseWriter, r *http.Request) {
	var req NetworkingRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	strategy := s.planner.NetworkingStrategy(r.Context(), req.TargetRole, req.TargetIndustry)
	s.jsonResponse(w, http.StatusOK, strategy)
}

// handleSkillRoadmap returns a phased skill development plan for the transition.
func (s *Server) handleSkillRoadmap(w http.ResponseWriter, r *http.Request) {
	var req SkillRoadmapRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	roadmap := s.planner.SkillRoadmap(r.Context(), req.CurrentRole, req.TargetRole, req.CurrentSkills, req.FeasibilityScore)
	s.jsonResponse(w, http.StatusOK, roadmap)
}
