// Package server provides the HTTP REST API for the career copilot.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-copilot/internal/audit"
	"github.com/jonathan/career-copilot/internal/career"
	"github.com/jonathan/career-copilot/internal/config"
	"github.com/jonathan/career-copilot/internal/db"
	"github.com/jonathan/career-copilot/internal/interview"
	"github.com/jonathan/career-copilot/internal/llm"
	"github.com/jonathan/career-copilot/internal/memory"
	"github.com/jonathan/career-copilot/internal/search"
	"github.com/jonathan/career-copilot/internal/server/middleware"
	"github.com/jonathan/career-copilot/internal/server/ratelimit"
	"github.com/jonathan/career-copilot/internal/skills"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	validate    *validator.Validate

	// agents
	searcher  *search.Searcher
	processor *search.Processor
	analyzer  *skills.Analyzer
	planner   *career.Planner
	coach     *interview.Coach
	auditor   *audit.Auditor
	memory    *memory.Agent
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	APIKey       string
	SearchAPIKey string
	UseBrowser   bool
}

// New creates a new server instance. DatabaseURL is optional: without it the
// agent endpoints still work, but sessions, auth, and memory return 503.
func New(ctx context.Context, cfg Config) (*Server, error) {
	s := &Server{
		validate: validator.New(),
	}

	// Database is optional
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
		s.memory = memory.NewAgent(database)

		passwordConfig, err := config.NewPasswordConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create password config: %w", err)
		}
		s.userService = NewUserService(database, passwordConfig)

		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
		s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	} else {
		s.memory = memory.NewAgent(nil)
	}

	// LLM client: without an API key the agents run on their offline fallbacks
	var client llm.Client
	if cfg.APIKey != "" {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, agents will use offline fallbacks")
		client = llm.Unavailable("GEMINI_API_KEY not set")
	}

	s.auditor = audit.NewAuditor(client)
	s.analyzer = skills.NewAnalyzer(client)
	s.planner = career.NewPlanner(client)
	s.coach = interview.NewCoach(client)
	s.processor = search.NewProcessor(client, s.auditor)
	s.searcher = search.NewSearcher(search.NewExaProvider(cfg.SearchAPIKey))

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // LLM calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Job search
	mux.HandleFunc("POST /search", s.handleSearch)

	// Skill analysis
	mux.HandleFunc("POST /skills/extract", s.handleExtractSkills)
	mux.HandleFunc("POST /skills/gaps", s.handleSkillGaps)
	mux.HandleFunc("POST /skills/recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /skills/roadmap", s.handleLearningRoadmap)

	// Career planning
	mux.HandleFunc("POST /career/path", s.handleCareerPath)
	mux.HandleFunc("POST /career/bridge-roles", s.handleBridgeRoles)
	mux.HandleFunc("POST /career/networking", s.handleNetworking)
	mux.HandleFunc("POST /career/roadmap", s.handleSkillRoadmap)

	// Interview practice
	mux.HandleFunc("POST /interview/questions", s.handleInterviewQuestions)
	mux.HandleFunc("POST /interview/evaluate", s.handleEvaluateAnswer)
	mux.HandleFunc("GET /interview/tips", s.handleInterviewTips)

	// Bias audits
	mux.HandleFunc("POST /audit/resume", s.handleAuditResume)
	mux.HandleFunc("POST /audit/job", s.handleAuditJob)

	// Ingestion
	mux.HandleFunc("POST /ingest/resume", s.handleIngestResume)
	mux.HandleFunc("POST /ingest/job-url", s.handleIngestJobURL)

	// Sessions
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions", s.handleListSessions)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("PUT /sessions/{id}", s.handleSaveSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("GET /sessions/{id}/transparency", s.handleTransparency)

	// Memory
	mux.HandleFunc("GET /memory/context", s.handleMemoryContext)

	// Auth
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	if s.jwtService != nil {
		authRequired := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
		mux.Handle("PUT /auth/password", authRequired(http.HandlerFunc(s.handleUpdatePassword)))
	} else {
		mux.HandleFunc("PUT /auth/password", s.handleUpdatePassword)
	}

	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	s.authHandler.Register(w, r)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	s.authHandler.Login(w, r)
}

// handleUpdatePassword handles password update requests for the authenticated user.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// requireDB guards endpoints that need the database. Returns false after
// writing a 503 when no database is configured.
func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Database not configured")
		return false
	}
	return true
}

// decodeAndValidate decodes the request body into dst and runs struct validation.
// Returns false after writing an error response on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return false
	}
	return true
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
