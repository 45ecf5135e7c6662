package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/bingo-server/internal/services/auth"
)

// ErrorResponse is the JSON shape for all API errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// httpError combines an HTTP status code with an error message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for explicitly constructed HTTP errors
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map auth errors
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return &httpError{http.StatusBadRequest, "Username and password are required"}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, "Username already exists"}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, "Invalid username or password"}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, "Unauthorized"}

	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, "Unauthorized"}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
