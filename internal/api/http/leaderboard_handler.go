package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/service"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardSvc: leaderboardSvc}
}

type leaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
	Total   int                       `json:"total"`
}

func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 10)

	entries, err := h.leaderboardSvc.GetLeaderboard(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, leaderboardResponse{Entries: entries, Total: len(entries)})
}

// GetUserContributions serves one user's breakdown, points and tier.
func (h *LeaderboardHandler) GetUserContributions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, domain.NewValidationError("invalid user id"))
		return
	}

	entry, err := h.leaderboardSvc.GetUserContributions(r.Context(), int32(id))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
