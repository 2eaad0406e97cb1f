// Package memory gives agents lightweight conversational recall: past
// query/response exchanges are persisted and surfaced as bullet context for
// later prompts.
//
// Memory is strictly best-effort. A missing or failing store never blocks an
// agent call; recall just comes back empty.
package memory

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/career-copilot/internal/db"
)

// contextLimit caps how many past exchanges feed into one prompt.
const contextLimit = 3

// Store persists and searches past interactions.
type Store interface {
	SaveInteraction(ctx context.Context, userID uuid.UUID, userQuery, systemResponse string) error
	SearchInteractions(ctx context.Context, query string, limit int) ([]db.Interaction, error)
}

// Agent records interactions and recalls relevant ones as prompt context.
// A nil store disables memory entirely.
type Agent struct {
	store Store
}

// NewAgent creates an Agent over the given store. store may be nil.
func NewAgent(store Store) *Agent {
	return &Agent{store: store}
}

// Enabled reports whether memory is backed by a store.
func (a *Agent) Enabled() bool {
	return a.store != nil
}

// GetContext returns up to three past exchanges matching the query, formatted
// as "- " bullets for prompt injection. Any failure returns the empty string.
func (a *Agent) GetContext(ctx context.Context, query string) string {
	if a.store == nil {
		return ""
	}

	interactions, err := a.store.SearchInteractions(ctx, query, contextLimit)
	if err != nil {
		log.Printf("[memory] context search failed: %v", err)
		return ""
	}
	if len(interactions) == 0 {
		return ""
	}

	bullets := make([]string, 0, len(interactions))
	for _, in := range interactions {
		bullets = append(bullets, fmt.Sprintf("- %s: %s", in.UserQuery, summarize(in.SystemResponse)))
	}
	return strings.Join(bullets, "\n")
}

// SaveInteraction records one exchange. Failures are logged and swallowed.
func (a *Agent) SaveInteraction(ctx context.Context, userID uuid.UUID, userQuery, systemResponse string) {
	if a.store == nil {
		return
	}
	if err := a.store.SaveInteraction(ctx, userID, userQuery, systemResponse); err != nil {
		log.Printf("[memory] save failed: %v", err)
	}
}

// summarize keeps the first line of a response, bounded to 200 bytes.
func summarize(response string) string {
	if idx := strings.IndexByte(response, '\n'); idx >= 0 {
		response = response[:idx]
	}
	if len(response) > 200 {
		response = response[:200]
	}
	return strings.TrimSpace(response)
}
