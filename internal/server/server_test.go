package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-copilot/internal/audit"
	"github.com/jonathan/career-copilot/internal/career"
	"github.com/jonathan/career-copilot/internal/db"
	"github.com/jonathan/career-copilot/internal/interview"
	"github.com/jonathan/career-copilot/internal/llm"
	"github.com/jonathan/career-copilot/internal/memory"
	"github.com/jonathan/career-copilot/internal/search"
	"github.com/jonathan/career-copilot/internal/skills"
	"github.com/jonathan/career-copilot/internal/types"
)

// stubProvider returns canned search hits without touching the network.
type stubProvider struct {
	hits []types.RawJob
	err  error
}

func (p *stubProvider) Search(_ context.Context, _ string, _ int, _ time.Time) ([]types.RawJob, error) {
	return p.hits, p.err
}

// stubMemoryStore is an in-process memory.Store for handler tests.
type stubMemoryStore struct {
	interactions []db.Interaction
	saved        []db.Interaction
}

func (s *stubMemoryStore) SaveInteraction(_ context.Context, userID uuid.UUID, userQuery, systemResponse string) error {
	s.saved = append(s.saved, db.Interaction{UserID: userID, UserQuery: userQuery, SystemResponse: systemResponse})
	return nil
}

func (s *stubMemoryStore) SearchInteractions(_ context.Context, _ string, limit int) ([]db.Interaction, error) {
	if len(s.interactions) > limit {
		return s.interactions[:limit], nil
	}
	return s.interactions, nil
}

// newTestServer builds a server with no database and an unavailable LLM, so
// every agent serves its deterministic offline fallback.
func newTestServer(provider search.Provider) *Server {
	client := llm.Unavailable("test")
	auditor := audit.NewAuditor(client)
	if provider == nil {
		provider = &stubProvider{}
	}
	return &Server{
		validate:  validator.New(),
		auditor:   auditor,
		analyzer:  skills.NewAnalyzer(client),
		planner:   career.NewPlanner(client),
		coach:     interview.NewCoach(client),
		processor: search.NewProcessor(client, auditor),
		searcher:  search.NewSearcher(provider),
		memory:    memory.NewAgent(nil),
	}
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestSearch_ProviderHits(t *testing.T) {
	provider := &stubProvider{hits: []types.RawJob{
		{
			Title:         "Senior Backend Engineer",
			URL:           "https://boards.greenhouse.io/acme/jobs/123",
			Text:          "Acme is hiring. Responsibilities include building APIs. Requirements: Go, SQL. Salary: $150,000 - $180,000. This remote role is open now and we are an equal opportunity employer with great benefits for every applicant who wants to apply today.",
			PublishedDate: "2024-05-01",
		},
	}}
	s := newTestServer(provider)

	rec := doJSON(t, s.routes(), "POST", "/search", types.SearchRequest{JobTitle: "Backend Engineer"})
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, "Senior Backend Engineer", result.Jobs[0].Title)
	assert.Equal(t, 1, result.Count)
	assert.Greater(t, result.Jobs[0].Audit.Score, 0)
}

func TestSearch_ValidationError(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/search", map[string]string{"job_title": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch_EmptyProvider(t *testing.T) {
	s := newTestServer(&stubProvider{})
	rec := doJSON(t, s.routes(), "POST", "/search", types.SearchRequest{JobTitle: "Data Scientist"})
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Jobs)
}

func TestSearch_RecordsInteraction(t *testing.T) {
	provider := &stubProvider{hits: []types.RawJob{
		{
			Title:         "Senior Backend Engineer",
			URL:           "https://boards.greenhouse.io/acme/jobs/123",
			Text:          "Acme is hiring. Responsibilities include building APIs. Requirements: Go, SQL. Salary: $150,000 - $180,000. This remote role is open now and we are an equal opportunity employer with great benefits for every applicant who wants to apply today.",
			PublishedDate: "2024-05-01",
		},
	}}
	s := newTestServer(provider)
	store := &stubMemoryStore{interactions: []db.Interaction{
		{UserQuery: "Backend Engineer in Berlin", SystemResponse: "Found 3 jobs"},
	}}
	s.memory = memory.NewAgent(store)

	rec := doJSON(t, s.routes(), "POST", "/search", types.SearchRequest{JobTitle: "Backend Engineer"})
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "- Backend Engineer in Berlin: Found 3 jobs", result.Context)

	require.Len(t, store.saved, 1)
	assert.Equal(t, "Backend Engineer", store.saved[0].UserQuery)
	assert.Equal(t, "Found 1 jobs", store.saved[0].SystemResponse)
	assert.Equal(t, uuid.Nil, store.saved[0].UserID)
}

func TestSearch_NoMemoryOmitsContext(t *testing.T) {
	s := newTestServer(&stubProvider{})
	rec := doJSON(t, s.routes(), "POST", "/search", types.SearchRequest{JobTitle: "Data Scientist"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"context"`)
}

func TestExtractSkills_OfflineReturnsEmptySet(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/skills/extract", ExtractSkillsRequest{
		Text:       "Five years of Python and PostgreSQL experience.",
		SourceType: "resume",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var set types.SkillSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	assert.Empty(t, set.Technical)
}

func TestSkillGaps(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/skills/gaps", SkillGapsRequest{
		ResumeText:     "Python developer with Django experience.",
		JobDescription: "Looking for a Python developer with Kubernetes skills.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis types.GapAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	// Offline extraction yields empty sets on both sides: nothing required.
	assert.Zero(t, analysis.MatchPercentage)
	assert.Empty(t, analysis.Gaps.Critical)
}

func TestRecommendations_OfflineFallback(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/skills/recommendations", RecommendationsRequest{
		Gaps: []string{"Kubernetes", "Terraform"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var recs []types.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	require.NotEmpty(t, recs)
	assert.Equal(t, "Kubernetes", recs[0].Skill)
}

func TestLearningRoadmap(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/skills/roadmap", RecommendationsRequest{
		Gaps: []string{"Kubernetes"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var roadmap types.LearningRoadmap
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roadmap))
	assert.NotEmpty(t, roadmap.Months1To3)
}

func TestCareerPath_OfflineFallback(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/career/path", CareerPathRequest{
		CurrentRole: "Data Analyst",
		TargetRole:  "Data Scientist",
		Skills:      &types.SkillSet{Technical: []string{"Python", "SQL"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var path types.CareerPath
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &path))
	assert.Equal(t, "Data Analyst", path.CurrentRole)
	assert.Equal(t, "Data Scientist", path.TargetRole)
	assert.GreaterOrEqual(t, path.FeasibilityScore, 1)
	assert.LessOrEqual(t, path.FeasibilityScore, 10)
	assert.NotEmpty(t, path.Milestones)
}

func TestBridgeRoles_OfflineEmpty(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/career/bridge-roles", CareerPathRequest{
		CurrentRole: "Teacher",
		TargetRole:  "Product Manager",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNetworking_OfflineFallback(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/career/networking", NetworkingRequest{
		TargetRole: "Engineering Manager",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var strategy types.NetworkingStrategy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &strategy))
	assert.NotEmpty(t, strategy.TargetContacts)
}

func TestInterviewQuestions_OfflineUsesBank(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/interview/questions", QuestionsRequest{
		JobDescription: "We are hiring a backend engineer to build APIs.",
		QuestionType:   "behavioral",
		Count:          3,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Questions []string `json:"questions"`
		Type      string   `json:"type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, 3)
	assert.Equal(t, "behavioral", resp.Type)
}

func TestInterviewQuestions_UnknownTypeRejected(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/interview/questions", QuestionsRequest{
		JobDescription: "We are hiring a backend engineer.",
		QuestionType:   "trivia",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluateAnswer_OfflineError(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/interview/evaluate", EvaluateRequest{
		Question: "Tell me about a time you led a project.",
		Answer:   "I led the migration of our billing system.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var eval types.Evaluation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eval))
	assert.Equal(t, 5, eval.Score)
	assert.Equal(t, types.CorrectnessError, eval.IsCorrect)
}

func TestInterviewTips(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "GET", "/interview/tips?type=technical", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Type string   `json:"type"`
		Tips []string `json:"tips"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "technical", resp.Type)
	assert.NotEmpty(t, resp.Tips)
}

func TestInterviewTips_UnknownType(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "GET", "/interview/tips?type=trivia", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuditResume(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/audit/resume", AuditRequest{
		Text: "Experienced software engineer skilled in Python. Worked at several companies building web services and data pipelines over the years. Education: state university.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ResumeAudit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
}

func TestAuditJob_FlagsGenderedLanguage(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/audit/job", AuditRequest{
		Text: "We need a rockstar ninja developer. He will dominate the competition and crush deadlines under aggressive pressure every single day.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.JobAudit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.IsDiscriminatory)
	assert.NotEmpty(t, result.Issues)
}

func TestIngestResume_MultipartTxt(t *testing.T) {
	s := newTestServer(nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("Jane Doe\nSoftware Engineer\n\nPython, Go, SQL"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/ingest/resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Text     string `json:"text"`
		Metadata struct {
			Source    string `json:"source"`
			WordCount int    `json:"word_count"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Text, "Jane Doe")
	assert.Equal(t, "txt", resp.Metadata.Source)
	assert.Equal(t, 7, resp.Metadata.WordCount)
}

func TestIngestResume_UnsupportedFormat(t *testing.T) {
	s := newTestServer(nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "resume.rtf")
	require.NoError(t, err)
	_, err = part.Write([]byte("{\\rtf1 hello}"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/ingest/resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestIngestResume_MissingFile(t *testing.T) {
	s := newTestServer(nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "resume"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/ingest/resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestJobURL_InvalidURL(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/ingest/job-url", IngestJobURLRequest{URL: "not a url"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestJobURL_Success(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main><h1>Backend Engineer</h1><p>Build and operate APIs in Go.</p></main></body></html>`))
	}))
	defer upstream.Close()

	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/ingest/job-url", IngestJobURLRequest{URL: upstream.URL})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Text     string `json:"text"`
		Metadata struct {
			Source string `json:"source"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Text, "Backend Engineer")
	assert.Equal(t, "url", resp.Metadata.Source)
}

func TestSessions_NoDatabase(t *testing.T) {
	s := newTestServer(nil)

	paths := []struct {
		method string
		path   string
	}{
		{"POST", "/sessions"},
		{"GET", "/sessions/0f2fdc9c-6d31-4f5a-8f57-0b6a36e1f001"},
		{"DELETE", "/sessions/0f2fdc9c-6d31-4f5a-8f57-0b6a36e1f001"},
	}
	for _, p := range paths {
		rec := doJSON(t, s.routes(), p.method, p.path, map[string]string{})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestAuth_NoDatabase(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "POST", "/auth/register", types.CreateUserRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMemoryContext_NotConfigured(t *testing.T) {
	s := newTestServer(nil)
	rec := doJSON(t, s.routes(), "GET", "/memory/context?query=python", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(nil)
	handler := s.withCORS(s.routes())

	req := httptest.NewRequest("OPTIONS", "/search", strings.NewReader(""))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
