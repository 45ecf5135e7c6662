package model

// Score is a single score submission tied to the submitting user.
// Score rows are append-only; nothing bounds the score value.
type Score struct {
	ID     int64 `json:"id"`
	Score  int64 `json:"score"`
	UserID int64 `json:"user_id"`
}
