package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/career-copilot/internal/ingestion"
)

// IngestJobURLRequest asks for the text of a job posting at a URL.
type IngestJobURLRequest struct {
	URL        string `json:"url" validate:"required,url"`
	UseBrowser bool   `json:"use_browser,omitempty"`
}

// handleIngestResume extracts plain text from an uploaded resume file.
// Expects a multipart form with a "file" field; PDF, DOCX, and TXT are supported.
func (s *Server) handleIngestResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(ingestion.MaxDocumentBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, ingestion.MaxDocumentBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	text, err := ingestion.ExtractDocumentText(header.Filename, data)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, ingestion.ErrUnsupportedFormat) {
			status = http.StatusUnsupportedMediaType
		}
		if errors.Is(err, ingestion.ErrDocumentTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	metadata := ingestion.NewMetadata(text, "")
	metadata.Source = ingestion.SourceFromFilename(header.Filename)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"text":     text,
		"metadata": metadata,
	})
}

// handleIngestJobURL fetches a job posting URL and returns its cleaned text.
func (s *Server) handleIngestJobURL(w http.ResponseWriter, r *http.Request) {
	var req IngestJobURLRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	text, metadata, err := ingestion.IngestJobPosting(r.Context(), req.URL, req.UseBrowser, false)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"text":     text,
		"metadata": metadata,
	})
}
