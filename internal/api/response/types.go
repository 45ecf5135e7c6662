package response

import (
	"github.com/mcoot/bingo-server/internal/services/leaderboard"
)

// MessageResponse is the generic success response
type MessageResponse struct {
	Message string `json:"message"`
}

// MeResponse reports the current session's username, or null when the
// caller is not logged in
type MeResponse struct {
	Username *string `json:"username"`
}

// LeaderboardEntry is one row of the leaderboard response
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

// LeaderboardFromEntries converts service entries to response rows
func LeaderboardFromEntries(entries []leaderboard.Entry) []LeaderboardEntry {
	rows := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		rows[i] = LeaderboardEntry{
			Username: e.Username,
			Score:    e.Score,
		}
	}
	return rows
}
