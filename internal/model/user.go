package model

// User is a registered player account.
// Users are created on registration and never mutated or deleted.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
