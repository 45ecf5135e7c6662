package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/bingo-server/internal/api/middleware"
	"github.com/mcoot/bingo-server/internal/api/request"
	"github.com/mcoot/bingo-server/internal/api/response"
	"github.com/mcoot/bingo-server/internal/services/leaderboard"
)

// ScoreHandler handles score submission and the leaderboard
type ScoreHandler struct {
	leaderboardService *leaderboard.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(leaderboardService *leaderboard.Service) *ScoreHandler {
	return &ScoreHandler{
		leaderboardService: leaderboardService,
	}
}

// Submit handles POST /api/submit_score
func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Score == nil {
		WriteError(w, NewInvalidRequestError("Score is required"))
		return
	}

	if _, err := h.leaderboardService.SubmitScore(r.Context(), user.ID, *req.Score); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MessageResponse{Message: "Score submitted successfully"})
}

// Leaderboard handles GET /api/leaderboard
func (h *ScoreHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.TopScores(r.Context(), leaderboard.DefaultLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromEntries(entries))
}
