package rest

import (
	"net/http"
	"strconv"

	"github.com/heartmarshall/learning-continuity/internal/service/streak"
	"github.com/heartmarshall/learning-continuity/pkg/ctxutil"
)

// Continue returns the caller's ranked "continue learning" list.
// The optional limit query parameter falls back to the configured default.
func (h *Handler) Continue(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, r)
		return
	}

	limit := h.continuity.DefaultLimit()
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w, r, "limit must be an integer")
			return
		}
		limit = n
	}

	items, err := h.continuity.Rank(r.Context(), userID, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toContinuationResponses(items)})
}

// Insights returns statistics over the caller's full history.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, r)
		return
	}

	in, err := h.insights.GetInsights(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toInsightsResponse(in))
}

// Streak returns the caller's streak as of now.
func (h *Handler) Streak(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, r)
		return
	}

	s, err := h.streaks.Get(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStreakResponse(s))
}

// SetGoals replaces the caller's daily and weekly goals.
func (h *Handler) SetGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, r)
		return
	}

	var req goalsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, "invalid request body")
		return
	}

	s, err := h.streaks.SetGoals(r.Context(), streak.SetGoalsInput{
		UserID:            userID,
		DailyGoalMinutes:  req.DailyGoalMinutes,
		WeeklyGoalMinutes: req.WeeklyGoalMinutes,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStreakResponse(s))
}
