package storage

import (
	"context"

	"github.com/mcoot/bingo-server/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	// CreateUser persists a new user and assigns its ID.
	// Returns model.ErrUsernameTaken if the username is already in use.
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Score operations
	// CreateScore persists a new score row and assigns its ID.
	CreateScore(ctx context.Context, score *model.Score) error
	// TopScores returns up to limit scores ordered by score descending.
	// Ties are returned in insertion order.
	TopScores(ctx context.Context, limit int) ([]*model.Score, error)
}
