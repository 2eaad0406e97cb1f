package server

import (
	"net/http"

	"github.com/jonathan/career-copilot/internal/audit"
)

// AuditRequest carries the text to audit for bias signals.
type AuditRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// handleAuditResume audits resume text for signals that invite screening bias.
func (s *Server) handleAuditResume(w http.ResponseWriter, r *http.Request) {
	var req AuditRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := audit.AuditResume(req.Text)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleAuditJob audits a job description for discriminatory language.
func (s *Server) handleAuditJob(w http.ResponseWriter, r *http.Request) {
	var req AuditRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := audit.AuditJobDescription(req.Text)
	s.jsonResponse(w, http.StatusOK, result)
}
