package memory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-copilot/internal/db"
)

type stubStore struct {
	interactions []db.Interaction
	searchErr    error
	saved        []db.Interaction
	saveErr      error
}

func (s *stubStore) SaveInteraction(_ context.Context, userID uuid.UUID, userQuery, systemResponse string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, db.Interaction{UserID: userID, UserQuery: userQuery, SystemResponse: systemResponse})
	return nil
}

func (s *stubStore) SearchInteractions(_ context.Context, _ string, limit int) ([]db.Interaction, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	if len(s.interactions) > limit {
		return s.interactions[:limit], nil
	}
	return s.interactions, nil
}

func TestGetContext(t *testing.T) {
	store := &stubStore{interactions: []db.Interaction{
		{UserQuery: "backend jobs in Berlin", SystemResponse: "Found 4 postings.\nDetails follow.", CreatedAt: time.Now()},
		{UserQuery: "skill gaps for platform engineer", SystemResponse: "Kubernetes, Terraform", CreatedAt: time.Now()},
	}}

	out := NewAgent(store).GetContext(context.Background(), "backend")

	assert.Equal(t, "- backend jobs in Berlin: Found 4 postings.\n- skill gaps for platform engineer: Kubernetes, Terraform", out)
}

func TestGetContext_Degrades(t *testing.T) {
	assert.Empty(t, NewAgent(nil).GetContext(context.Background(), "anything"))
	assert.Empty(t, NewAgent(&stubStore{searchErr: errors.New("db down")}).GetContext(context.Background(), "anything"))
	assert.Empty(t, NewAgent(&stubStore{}).GetContext(context.Background(), "anything"))
}

func TestGetContext_LimitsToThree(t *testing.T) {
	store := &stubStore{}
	for i := 0; i < 5; i++ {
		store.interactions = append(store.interactions, db.Interaction{UserQuery: "q", SystemResponse: "r"})
	}

	out := NewAgent(store).GetContext(context.Background(), "q")
	assert.Len(t, strings.Split(out, "\n"), 3)
}

func TestSaveInteraction(t *testing.T) {
	store := &stubStore{}
	agent := NewAgent(store)

	agent.SaveInteraction(context.Background(), uuid.Nil, "find jobs", "done")
	assert.Len(t, store.saved, 1)

	// Failures are swallowed.
	NewAgent(&stubStore{saveErr: errors.New("db down")}).SaveInteraction(context.Background(), uuid.Nil, "q", "r")
	NewAgent(nil).SaveInteraction(context.Background(), uuid.Nil, "q", "r")
}
