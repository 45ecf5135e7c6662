package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/bingo-server/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestCreateUserAssignsID() {
	user := &model.User{Username: "alice", PasswordHash: "somehash"}

	err := s.storage.CreateUser(s.ctx, user)
	s.Require().NoError(err)
	s.Equal(int64(1), user.ID)

	user2 := &model.User{Username: "bob", PasswordHash: "otherhash"}
	err = s.storage.CreateUser(s.ctx, user2)
	s.Require().NoError(err)
	s.Equal(int64(2), user2.ID)
}

func (s *StorageSuite) TestCreateUserRejectsDuplicateUsername() {
	err := s.storage.CreateUser(s.ctx, &model.User{Username: "alice", PasswordHash: "h1"})
	s.Require().NoError(err)

	err = s.storage.CreateUser(s.ctx, &model.User{Username: "alice", PasswordHash: "h2"})
	s.ErrorIs(err, model.ErrUsernameTaken)
}

func (s *StorageSuite) TestGetUser() {
	user := &model.User{Username: "alice", PasswordHash: "somehash"}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	got, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("alice", got.Username)
	s.Equal("somehash", got.PasswordHash)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	user := &model.User{Username: "alice", PasswordHash: "somehash"}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	got, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.ID, got.ID)
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Score tests

func (s *StorageSuite) TestCreateScoreAssignsID() {
	score := &model.Score{Score: 50, UserID: 1}

	err := s.storage.CreateScore(s.ctx, score)
	s.Require().NoError(err)
	s.Equal(int64(1), score.ID)
}

func (s *StorageSuite) TestTopScoresOrdersDescending() {
	for _, v := range []int64{50, 90, 10, 70} {
		s.Require().NoError(s.storage.CreateScore(s.ctx, &model.Score{Score: v, UserID: 1}))
	}

	scores, err := s.storage.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(scores, 4)
	s.Equal(int64(90), scores[0].Score)
	s.Equal(int64(70), scores[1].Score)
	s.Equal(int64(50), scores[2].Score)
	s.Equal(int64(10), scores[3].Score)
}

func (s *StorageSuite) TestTopScoresBreaksTiesByInsertionOrder() {
	first := &model.Score{Score: 90, UserID: 1}
	second := &model.Score{Score: 90, UserID: 2}
	s.Require().NoError(s.storage.CreateScore(s.ctx, first))
	s.Require().NoError(s.storage.CreateScore(s.ctx, second))

	scores, err := s.storage.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	s.Equal(first.ID, scores[0].ID)
	s.Equal(second.ID, scores[1].ID)
}

func (s *StorageSuite) TestTopScoresRespectsLimit() {
	for i := int64(0); i < 15; i++ {
		s.Require().NoError(s.storage.CreateScore(s.ctx, &model.Score{Score: i, UserID: 1}))
	}

	scores, err := s.storage.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Len(scores, 10)
}

func (s *StorageSuite) TestTopScoresEmpty() {
	scores, err := s.storage.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(scores)
}
