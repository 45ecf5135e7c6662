package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/bingo-server/internal/services/auth"
	"github.com/mcoot/bingo-server/internal/services/leaderboard"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Complete flow from registration to a ranked leaderboard
func (s *IntegrationSuite) TestCompleteUserFlow() {
	// Step 1: Register two users
	alice, err := s.app.AuthService.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)
	bob, err := s.app.AuthService.Register(s.ctx, "bob", "swordfish")
	s.Require().NoError(err)

	// Step 2: Log both in
	aliceSess, err := s.app.AuthService.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)
	bobSess, err := s.app.AuthService.Login(s.ctx, "bob", "swordfish")
	s.Require().NoError(err)

	// Step 3: Submit scores as each user
	_, err = s.app.LeaderboardService.SubmitScore(s.ctx, alice.ID, 80)
	s.Require().NoError(err)
	_, err = s.app.LeaderboardService.SubmitScore(s.ctx, bob.ID, 120)
	s.Require().NoError(err)

	// Step 4: Leaderboard ranks bob first
	entries, err := s.app.LeaderboardService.TopScores(s.ctx, leaderboard.DefaultLimit)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(leaderboard.Entry{Username: "bob", Score: 120}, entries[0])
	s.Equal(leaderboard.Entry{Username: "alice", Score: 80}, entries[1])

	// Step 5: Both sessions still resolve
	resolved, err := s.app.AuthService.ValidateSession(s.ctx, aliceSess.Token)
	s.Require().NoError(err)
	s.Equal(alice.ID, resolved.UserID)
	_, err = s.app.AuthService.ValidateSession(s.ctx, bobSess.Token)
	s.Require().NoError(err)
}

// Test: Sessions created through the factory expire on the injected clock
func (s *IntegrationSuite) TestSessionExpiresAfterClockAdvance() {
	_, err := s.app.AuthService.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	sess, err := s.app.AuthService.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	// Just before expiry the session is still good
	s.app.MockClock.Advance(23 * time.Hour)
	_, err = s.app.AuthService.ValidateSession(s.ctx, sess.Token)
	s.Require().NoError(err)

	// Past the 24h duration it is rejected
	s.app.MockClock.Advance(2 * time.Hour)
	_, err = s.app.AuthService.ValidateSession(s.ctx, sess.Token)
	s.ErrorIs(err, auth.ErrInvalidSession)
}

// Test: Logout through the factory-wired services invalidates the session
func (s *IntegrationSuite) TestLogoutInvalidatesSession() {
	_, err := s.app.AuthService.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	sess, err := s.app.AuthService.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.Require().NoError(s.app.AuthService.Logout(s.ctx, sess.Token))

	_, err = s.app.AuthService.ValidateSession(s.ctx, sess.Token)
	s.ErrorIs(err, auth.ErrInvalidSession)
}

// Factory config validation

func (s *IntegrationSuite) TestNewRejectsUnknownStorageType() {
	_, err := New(Config{StorageType: "etcd"})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewRejectsPostgresWithoutDatabaseURL() {
	_, err := New(Config{StorageType: StorageTypePostgres})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewRejectsRedisWithoutConfig() {
	_, err := New(Config{SessionStoreType: SessionStoreRedis})
	s.Error(err)
}
