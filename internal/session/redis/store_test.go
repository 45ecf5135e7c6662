package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/bingo-server/internal/session"
)

type StoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.store = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StoreSuite) testSession(token string) *session.Session {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &session.Session{
		Token:     token,
		UserID:    1,
		Username:  "alice",
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
}

func (s *StoreSuite) TestPutAndGet() {
	sess := s.testSession("sess_abc")

	err := s.store.Put(s.ctx, sess)
	s.Require().NoError(err)

	got, err := s.store.Get(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal(sess.UserID, got.UserID)
	s.Equal(sess.Username, got.Username)
	s.True(sess.ExpiresAt.Equal(got.ExpiresAt))
}

func (s *StoreSuite) TestGetUnknownTokenReturnsNotFound() {
	_, err := s.store.Get(s.ctx, "sess_unknown")
	s.ErrorIs(err, session.ErrNotFound)
}

func (s *StoreSuite) TestDelete() {
	sess := s.testSession("sess_abc")
	s.Require().NoError(s.store.Put(s.ctx, sess))

	err := s.store.Delete(s.ctx, "sess_abc")
	s.Require().NoError(err)

	_, err = s.store.Get(s.ctx, "sess_abc")
	s.ErrorIs(err, session.ErrNotFound)
}

func (s *StoreSuite) TestDeleteUnknownTokenIsNoop() {
	err := s.store.Delete(s.ctx, "sess_unknown")
	s.NoError(err)
}

func (s *StoreSuite) TestSessionExpiresWithTTL() {
	sess := s.testSession("sess_abc")
	s.Require().NoError(s.store.Put(s.ctx, sess))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.store.Get(s.ctx, "sess_abc")
	s.ErrorIs(err, session.ErrNotFound)
}
