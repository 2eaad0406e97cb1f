package search

import (
	"context"
	"log"
	"time"

	"github.com/jonathan/career-copilot/internal/types"
)

// publishedWindow is how far back postings may have been published.
const publishedWindow = 60 * 24 * time.Hour

// defaultNumJobs is used when a request doesn't say how many jobs it wants.
const defaultNumJobs = 5

// RawResults is the outcome of one provider search after filtering.
type RawResults struct {
	Jobs   []types.RawJob `json:"raw_results"`
	Status string         `json:"status"`
	Count  int            `json:"count"`
}

// Searcher runs filtered job searches against a Provider.
type Searcher struct {
	provider Provider
	now      func() time.Time
}

// NewSearcher creates a Searcher for the given provider.
func NewSearcher(provider Provider) *Searcher {
	return &Searcher{provider: provider, now: time.Now}
}

// Search queries the provider for postings matching the request, keeping only
// hits that pass the posting filter and deduplicating by URL. The provider is
// over-asked threefold to survive filtering, and collection stops at twice
// the requested count. A provider failure yields an empty no_results outcome
// rather than an error.
func (s *Searcher) Search(ctx context.Context, req types.SearchRequest) *RawResults {
	numJobs := req.NumJobs
	if numJobs <= 0 {
		numJobs = defaultNumJobs
	}

	query := BuildQuery(req)
	since := s.now().Add(-publishedWindow)

	hits, err := s.provider.Search(ctx, query, numJobs*3, since)
	if err != nil {
		log.Printf("[search] provider search failed: %v", err)
		return &RawResults{Status: "no_results"}
	}

	seen := make(map[string]struct{})
	var kept []types.RawJob
	for _, hit := range hits {
		if _, dup := seen[hit.URL]; dup {
			continue
		}
		if !IsJobPosting(hit.URL, hit.Title, hit.Text) {
			continue
		}
		seen[hit.URL] = struct{}{}

		if hit.Text == "" {
			hit.Text = "Job opportunity. Visit link for details."
		}
		kept = append(kept, hit)

		if len(kept) >= numJobs*2 {
			break
		}
	}

	status := "success"
	if len(kept) == 0 {
		status = "no_results"
	}
	return &RawResults{
		Jobs:   kept,
		Status: status,
		Count:  len(kept),
	}
}
