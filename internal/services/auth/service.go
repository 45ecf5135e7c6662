package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/bingo-server/internal/dependencies/clock"
	"github.com/mcoot/bingo-server/internal/model"
	"github.com/mcoot/bingo-server/internal/session"
	"github.com/mcoot/bingo-server/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUsernameExists     = errors.New("username already exists")
	ErrMissingCredentials = errors.New("username and password are required")
)

// Service handles registration, login, and session lifecycle
type Service struct {
	storage  storage.Storage
	sessions session.Store
	clock    clock.Clock

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, sessions session.Store, clock clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		sessions:        sessions,
		clock:           clock,
		sessionDuration: cfg.SessionDuration,
	}
}

// Register creates a new user account. It does not log the user in.
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
	}

	// Registration is a single insert; the storage layer enforces
	// username uniqueness.
	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and creates a session. An unknown username
// and a wrong password yield the same error, so responses don't reveal
// which usernames exist.
func (s *Service) Login(ctx context.Context, username, password string) (*session.Session, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, user)
}

// Logout destroys the session for a token. It is idempotent and always
// succeeds for unknown tokens.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession resolves a token to its session. The session is only
// valid while it is unexpired and its user still exists.
func (s *Service) ValidateSession(ctx context.Context, token string) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if s.clock.Now().After(sess.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrInvalidSession
	}

	// A session whose user record is gone is treated as anonymous
	if _, err := s.storage.GetUser(ctx, sess.UserID); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			_ = s.sessions.Delete(ctx, token)
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	return sess, nil
}

// GetUser returns the user for a session token
func (s *Service) GetUser(ctx context.Context, token string) (*model.User, error) {
	sess, err := s.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.storage.GetUser(ctx, sess.UserID)
}

// createSession creates a new session for a user
func (s *Service) createSession(ctx context.Context, user *model.User) (*session.Session, error) {
	now := s.clock.Now()

	sess := &session.Session{
		Token:     generateToken(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

// generateToken generates an opaque random session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
