package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mcoot/bingo-server/internal/api/apierr"
	"github.com/mcoot/bingo-server/internal/model"
	"github.com/mcoot/bingo-server/internal/services/auth"
	"github.com/mcoot/bingo-server/internal/session"
)

type contextKey string

const (
	userContextKey    contextKey = "user"
	sessionContextKey contextKey = "session"
	tokenContextKey   contextKey = "token"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "session"

// Auth creates authentication middleware. Requests without a valid
// session are rejected with 401 before the handler runs.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			sess, err := authService.ValidateSession(r.Context(), token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess, token)))
		})
	}
}

// OptionalAuth resolves the session if present but doesn't require it
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := ExtractToken(r); token != "" {
				if sess, err := authService.ValidateSession(r.Context(), token); err == nil {
					r = r.WithContext(withSession(r.Context(), sess, token))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func withSession(ctx context.Context, sess *session.Session, token string) context.Context {
	ctx = context.WithValue(ctx, sessionContextKey, sess)
	ctx = context.WithValue(ctx, tokenContextKey, token)
	ctx = context.WithValue(ctx, userContextKey, &model.User{
		ID:       sess.UserID,
		Username: sess.Username,
	})
	return ctx
}

// ExtractToken extracts the session token from the request
func ExtractToken(r *http.Request) string {
	// Check Authorization header first
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to cookie
	cookie, err := r.Cookie(SessionCookieName)
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetUser returns the authenticated user from the request context
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// GetSession returns the session from the request context
func GetSession(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionContextKey).(*session.Session)
	return sess
}

// MustGetUser returns the authenticated user or panics
func MustGetUser(ctx context.Context) *model.User {
	user := GetUser(ctx)
	if user == nil {
		panic("no user in context - auth middleware not applied?")
	}
	return user
}
