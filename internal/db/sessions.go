package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-copilot/internal/types"
)

// CreateSession creates an empty dashboard session and returns its ID.
// userID may be uuid.Nil for anonymous sessions.
func (db *DB) CreateSession(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	var owner any
	if userID != uuid.Nil {
		owner = userID
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO sessions (user_id, data)
		 VALUES ($1, '{}'::jsonb)
		 RETURNING id`,
		owner,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// GetSession retrieves a session by ID. Returns nil without error when no
// session exists.
func (db *DB) GetSession(ctx context.Context, sessionID uuid.UUID) (*types.Session, error) {
	var session types.Session
	var owner *uuid.UUID
	var dataBytes []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, data, created_at, updated_at
		 FROM sessions WHERE id = $1`,
		sessionID,
	).Scan(&session.ID, &owner, &dataBytes, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if owner != nil {
		session.UserID = *owner
	}
	if len(dataBytes) > 0 {
		if err := json.Unmarshal(dataBytes, &session.Data); err != nil {
			return nil, fmt.Errorf("failed to decode session data: %w", err)
		}
	}
	return &session, nil
}

// SaveSessionData replaces the stored state of a session
func (db *DB) SaveSessionData(ctx context.Context, sessionID uuid.UUID, data *types.SessionData) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE sessions SET data = $1, updated_at = NOW() WHERE id = $2`,
		dataBytes, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to save session data: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	return nil
}

// DeleteSession removes a session and its stored state
func (db *DB) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	return nil
}

// ListSessions retrieves a user's sessions ordered by recency
func (db *DB) ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]types.Session, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, data, created_at, updated_at
		 FROM sessions WHERE user_id = $1
		 ORDER BY updated_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []types.Session
	for rows.Next() {
		var session types.Session
		var owner *uuid.UUID
		var dataBytes []byte
		if err := rows.Scan(&session.ID, &owner, &dataBytes, &session.CreatedAt, &session.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if owner != nil {
			session.UserID = *owner
		}
		if len(dataBytes) > 0 {
			if err := json.Unmarshal(dataBytes, &session.Data); err != nil {
				return nil, fmt.Errorf("failed to decode session data: %w", err)
			}
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
