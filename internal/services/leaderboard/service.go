package leaderboard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/bingo-server/internal/model"
	"github.com/mcoot/bingo-server/internal/storage"
)

// DefaultLimit is the number of entries served when no limit is given
const DefaultLimit = 10

// UnknownUser is shown for scores whose owning user record is missing
const UnknownUser = "Unknown User"

// Entry is one ranked leaderboard row
type Entry struct {
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

// Service ranks submitted scores
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new leaderboard Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// SubmitScore appends a score for a user. Any integer is accepted, any
// number of times.
func (s *Service) SubmitScore(ctx context.Context, userID int64, value int64) (*model.Score, error) {
	score := &model.Score{
		Score:  value,
		UserID: userID,
	}

	if err := s.storage.CreateScore(ctx, score); err != nil {
		return nil, err
	}

	s.logger.Info("score submitted",
		slog.Int64("user_id", userID),
		slog.Int64("score", value),
	)

	return score, nil
}

// TopScores returns up to limit entries ordered by score descending,
// ties in submission order. Scores whose user record is missing are
// listed under UnknownUser rather than dropped.
func (s *Service) TopScores(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	scores, err := s.storage.TopScores(ctx, limit)
	if err != nil {
		return nil, err
	}

	usernames := make(map[int64]string)

	entries := make([]Entry, len(scores))
	for i, score := range scores {
		username, ok := usernames[score.UserID]
		if !ok {
			user, err := s.storage.GetUser(ctx, score.UserID)
			switch {
			case err == nil:
				username = user.Username
			case errors.Is(err, model.ErrUserNotFound):
				username = UnknownUser
			default:
				return nil, err
			}
			usernames[score.UserID] = username
		}

		entries[i] = Entry{
			Username: username,
			Score:    score.Score,
		}
	}

	return entries, nil
}
