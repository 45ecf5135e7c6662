package postgres

import (
	"context"

	"github.com/mcoot/bingo-server/internal/model"
)

func (s *DBTestSuite) TestCreateUser_AssignsID() {
	user := &model.User{Username: "alice", PasswordHash: "somehash"}

	err := s.storage.CreateUser(context.Background(), user)

	s.Require().NoError(err)
	s.NotZero(user.ID)
}

func (s *DBTestSuite) TestCreateUser_DuplicateUsername_ReturnsUsernameTaken() {
	ctx := context.Background()
	err := s.storage.CreateUser(ctx, &model.User{Username: "alice", PasswordHash: "h1"})
	s.Require().NoError(err)

	err = s.storage.CreateUser(ctx, &model.User{Username: "alice", PasswordHash: "h2"})

	s.ErrorIs(err, model.ErrUsernameTaken)
}

func (s *DBTestSuite) TestGetUserByUsername_PopulatedTable_ReturnsExpectedUser() {
	ctx := context.Background()
	for _, username := range []string{"stanley", "kevin"} {
		err := s.storage.CreateUser(ctx, &model.User{Username: username, PasswordHash: "somehash"})
		s.Require().NoError(err)
	}

	user, err := s.storage.GetUserByUsername(ctx, "kevin")

	s.Require().NoError(err)
	s.Equal("kevin", user.Username)

	_, err = s.storage.GetUserByUsername(ctx, "michael")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *DBTestSuite) TestGetUser_UnknownID_ReturnsNotFound() {
	_, err := s.storage.GetUser(context.Background(), 12345)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *DBTestSuite) TestTopScores_OrdersDescendingWithStableTies() {
	ctx := context.Background()
	user := &model.User{Username: "alice", PasswordHash: "somehash"}
	s.Require().NoError(s.storage.CreateUser(ctx, user))

	var ids []int64
	for _, v := range []int64{50, 90, 10, 90} {
		score := &model.Score{Score: v, UserID: user.ID}
		s.Require().NoError(s.storage.CreateScore(ctx, score))
		ids = append(ids, score.ID)
	}

	scores, err := s.storage.TopScores(ctx, 10)

	s.Require().NoError(err)
	s.Require().Len(scores, 4)
	s.Equal(int64(90), scores[0].Score)
	s.Equal(int64(90), scores[1].Score)
	s.Equal(int64(50), scores[2].Score)
	s.Equal(int64(10), scores[3].Score)
	// The two 90s keep submission order
	s.Equal(ids[1], scores[0].ID)
	s.Equal(ids[3], scores[1].ID)
}

func (s *DBTestSuite) TestTopScores_RespectsLimit() {
	ctx := context.Background()
	user := &model.User{Username: "alice", PasswordHash: "somehash"}
	s.Require().NoError(s.storage.CreateUser(ctx, user))

	for i := int64(0); i < 12; i++ {
		s.Require().NoError(s.storage.CreateScore(ctx, &model.Score{Score: i, UserID: user.ID}))
	}

	scores, err := s.storage.TopScores(ctx, 10)

	s.Require().NoError(err)
	s.Len(scores, 10)
}
