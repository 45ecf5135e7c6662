package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no session exists for a token
var ErrNotFound = errors.New("session not found")

// Session is the server-side state behind an opaque client token
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store defines the interface for session persistence, keyed by token
type Store interface {
	Put(ctx context.Context, session *Session) error
	// Get returns the session for a token, or ErrNotFound.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete removes a session; deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
}
