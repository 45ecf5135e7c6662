package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/bingo-server/internal/model"
	"github.com/mcoot/bingo-server/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[int64]*model.User
	usernameIndex map[string]int64
	scores        []*model.Score

	nextUserID  int64
	nextScoreID int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[int64]*model.User),
		usernameIndex: make(map[string]int64),
		nextUserID:    1,
		nextScoreID:   1,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usernameIndex[user.Username]; ok {
		return model.ErrUsernameTaken
	}

	user.ID = s.nextUserID
	s.nextUserID++

	stored := *user
	s.users[user.ID] = &stored
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// Score operations

func (s *Storage) CreateScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	score.ID = s.nextScoreID
	s.nextScoreID++

	stored := *score
	s.scores = append(s.scores, &stored)
	return nil
}

func (s *Storage) TopScores(ctx context.Context, limit int) ([]*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Score, len(s.scores))
	for i, sc := range s.scores {
		copied := *sc
		result[i] = &copied
	}

	// Stable sort keeps equal scores in insertion order
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})

	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
