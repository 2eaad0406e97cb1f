package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/career-copilot/internal/types"
)

// handleSearch runs a job search and returns processed, bias-audited listings.
// With memory enabled, relevant past exchanges are recalled into the result
// and the search itself is recorded for later recall.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req types.SearchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	prior := s.memory.GetContext(r.Context(), req.JobTitle)

	raw := s.searcher.Search(r.Context(), req)
	jobs := s.processor.ProcessJobs(r.Context(), raw.Jobs)

	s.memory.SaveInteraction(r.Context(), uuid.Nil, req.JobTitle, fmt.Sprintf("Found %d jobs", len(jobs)))

	result := &types.SearchResult{
		Jobs:    jobs,
		Status:  raw.Status,
		Count:   len(jobs),
		Context: prior,
	}
	s.jsonResponse(w, http.StatusOK, result)
}
