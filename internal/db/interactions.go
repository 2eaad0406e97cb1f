package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Interaction is one recorded query/response exchange with the system.
type Interaction struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id,omitempty"`
	UserQuery      string    `json:"user_query"`
	SystemResponse string    `json:"system_response"`
	CreatedAt      time.Time `json:"created_at"`
}

// SaveInteraction records one exchange for later context recall.
// userID may be uuid.Nil for anonymous usage.
func (db *DB) SaveInteraction(ctx context.Context, userID uuid.UUID, userQuery, systemResponse string) error {
	var owner any
	if userID != uuid.Nil {
		owner = userID
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO interactions (user_id, user_query, system_response)
		 VALUES ($1, $2, $3)`,
		owner, userQuery, systemResponse,
	)
	if err != nil {
		return fmt.Errorf("failed to save interaction: %w", err)
	}
	return nil
}

// SearchInteractions finds recent exchanges whose query or response matches
// the search text, newest first.
func (db *DB) SearchInteractions(ctx context.Context, query string, limit int) ([]Interaction, error) {
	if limit <= 0 {
		limit = 3
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, COALESCE(user_id, '00000000-0000-0000-0000-000000000000'::uuid), user_query, system_response, created_at
		 FROM interactions
		 WHERE user_query ILIKE $1 OR system_response ILIKE $1
		 ORDER BY created_at DESC LIMIT $2`,
		"%"+query+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search interactions: %w", err)
	}
	defer rows.Close()

	var interactions []Interaction
	for rows.Next() {
		var in Interaction
		if err := rows.Scan(&in.ID, &in.UserID, &in.UserQuery, &in.SystemResponse, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		interactions = append(interactions, in)
	}
	return interactions, nil
}
