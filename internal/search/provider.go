// Package search finds live job postings through a neural search provider,
// filters out blog posts and aggregated listing pages, and enriches the
// survivors into displayable listings with a bias audit attached.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/career-copilot/internal/types"
)

// DefaultEndpoint is the Exa search API endpoint.
const DefaultEndpoint = "https://api.exa.ai/search"

// DefaultTimeout bounds one search request.
const DefaultTimeout = 30 * time.Second

// Provider executes a web search and returns raw hits with page text.
type Provider interface {
	Search(ctx context.Context, query string, numResults int, startPublishedDate time.Time) ([]types.RawJob, error)
}

// ProviderError represents a failure talking to the search provider.
type ProviderError struct {
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("search provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("search provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// ExaProvider is a Provider backed by the Exa search API.
type ExaProvider struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewExaProvider creates a provider for the given API key.
func NewExaProvider(apiKey string) *ExaProvider {
	return &ExaProvider{
		apiKey:   apiKey,
		endpoint: DefaultEndpoint,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

type exaRequest struct {
	Query              string      `json:"query"`
	NumResults         int         `json:"numResults"`
	Contents           exaContents `json:"contents"`
	StartPublishedDate string      `json:"startPublishedDate,omitempty"`
}

type exaContents struct {
	Text bool `json:"text"`
}

type exaResponse struct {
	Results []exaResult `json:"results"`
}

type exaResult struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Text          string `json:"text"`
	PublishedDate string `json:"publishedDate"`
}

// Search runs a search-and-contents request against the Exa API.
func (p *ExaProvider) Search(ctx context.Context, query string, numResults int, startPublishedDate time.Time) ([]types.RawJob, error) {
	payload := exaRequest{
		Query:      query,
		NumResults: numResults,
		Contents:   exaContents{Text: true},
	}
	if !startPublishedDate.IsZero() {
		payload.StartPublishedDate = startPublishedDate.Format(time.RFC3339)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ProviderError{Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			Message: fmt.Sprintf("HTTP status %d: %s", resp.StatusCode, truncate(string(respBody), 200)),
		}
	}

	var parsed exaResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &ProviderError{Message: "failed to decode response", Cause: err}
	}

	jobs := make([]types.RawJob, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		jobs = append(jobs, types.RawJob{
			Title:         r.Title,
			URL:           r.URL,
			Text:          r.Text,
			PublishedDate: r.PublishedDate,
		})
	}
	return jobs, nil
}

// truncate cuts s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
