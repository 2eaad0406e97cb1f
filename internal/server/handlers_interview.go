package server

import (
	"net/http"

	"github.com/jonathan/career-copilot/internal/interview"
	"github.com/jonathan/career-copilot/internal/types"
)

// QuestionsRequest asks for practice questions tailored to a job description.
type QuestionsRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=10"`
	QuestionType   string `json:"question_type" validate:"required,oneof=behavioral technical situational"`
	Count          int    `json:"count,omitempty" validate:"omitempty,min=1,max=10"`
}

// EvaluateRequest submits an answer for scoring against the job description.
type EvaluateRequest struct {
	Question       string `json:"question" validate:"required,min=5"`
	Answer         string `json:"answer" validate:"required,min=1"`
	JobDescription string `json:"job_description,omitempty"`
}

// handleInterviewQuestions generates practice questions for a job description.
func (s *Server) handleInterviewQuestions(w http.ResponseWriter, r *http.Request) {
	var req QuestionsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	questions := s.coach.GenerateQuestions(r.Context(), req.JobDescription, types.QuestionType(req.QuestionType), req.Count)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": questions,
		"type":      req.QuestionType,
	})
}

// handleEvaluateAnswer scores a practice answer and returns detailed feedback.
func (s *Server) handleEvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	evaluation := s.coach.EvaluateAnswer(r.Context(), req.Question, req.Answer, req.JobDescription)
	s.jsonResponse(w, http.StatusOK, evaluation)
}

// handleInterviewTips returns preparation tips for a question type.
func (s *Server) handleInterviewTips(w http.ResponseWriter, r *http.Request) {
	questionType := types.QuestionType(r.URL.Query().Get("type"))
	if questionType == "" {
		questionType = types.QuestionBehavioral
	}
	if !questionType.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown question type: "+string(questionType))
		return
	}

	tips := interview.PracticeTips(questionType)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"type": string(questionType),
		"tips": tips,
	})
}
