package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/career-copilot/internal/audit"
	"github.com/jonathan/career-copilot/internal/types"
)

// CreateSessionRequest opens a new dashboard session, optionally owned by a user.
type CreateSessionRequest struct {
	UserID string `json:"user_id,omitempty" validate:"omitempty,uuid"`
}

// handleCreateSession creates an empty session and returns its ID.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	var req CreateSessionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	userID := uuid.Nil
	if req.UserID != "" {
		userID = uuid.MustParse(req.UserID)
	}

	sessionID, err := s.db.CreateSession(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"session_id": sessionID.String()})
}

// handleListSessions lists a user's sessions, most recently updated first.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid or missing user_id")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sessions, err := s.db.ListSessions(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// handleGetSession retrieves a session with its stored state.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	sessionID, ok := s.sessionIDFromPath(w, r)
	if !ok {
		return
	}

	session, err := s.db.GetSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get session")
		return
	}
	if session == nil {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, session)
}

// handleSaveSession replaces the stored state of a session.
func (s *Server) handleSaveSession(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	sessionID, ok := s.sessionIDFromPath(w, r)
	if !ok {
		return
	}

	var data types.SessionData
	if !s.decodeAndValidate(w, r, &data) {
		return
	}

	if err := s.db.SaveSessionData(r.Context(), sessionID, &data); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handleDeleteSession removes a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	sessionID, ok := s.sessionIDFromPath(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteSession(r.Context(), sessionID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleTransparency returns a plain-language report of what a session's
// analyses were based on.
func (s *Server) handleTransparency(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	sessionID, ok := s.sessionIDFromPath(w, r)
	if !ok {
		return
	}

	session, err := s.db.GetSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get session")
		return
	}
	if session == nil {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	report := audit.TransparencyReport(&session.Data)
	s.jsonResponse(w, http.StatusOK, map[string]string{"report": report})
}

// handleMemoryContext returns the remembered exchanges relevant to a query.
func (s *Server) handleMemoryContext(w http.ResponseWriter, r *http.Request) {
	if !s.memory.Enabled() {
		s.errorResponse(w, http.StatusServiceUnavailable, "Memory not configured")
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing query parameter")
		return
	}

	context := s.memory.GetContext(r.Context(), query)
	s.jsonResponse(w, http.StatusOK, map[string]string{"context": context})
}

// sessionIDFromPath parses the {id} path segment as a session UUID.
// Returns false after writing a 400 on failure.
func (s *Server) sessionIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID")
		return uuid.Nil, false
	}
	return sessionID, true
}
