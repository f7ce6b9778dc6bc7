package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/learning-continuity/internal/domain"
	"github.com/heartmarshall/learning-continuity/internal/service/session"
	"github.com/heartmarshall/learning-continuity/pkg/ctxutil"
)

// PutSession creates the session or merges the body into the stored one.
func (h *Handler) PutSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, r)
		return
	}

	var req sessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, "invalid request body")
		return
	}

	// Another user's session is reported as missing, not as a conflict.
	sessionID := chi.URLParam(r, "id")
	existing, err := h.sessions.Get(r.Context(), sessionID)
	switch {
	case err == nil && existing.UserID != userID:
		h.writeError(w, r, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound))
		return
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		h.writeError(w, r, err)
		return
	}

	input := session.CreateOrUpdateInput{
		ID:                       sessionID,
		UserID:                   userID,
		CourseID:                 req.CourseID,
		ActivityType:             domain.ActivityType(req.ActivityType),
		Platform:                 domain.Platform(req.Platform),
		Difficulty:               domain.Difficulty(req.Difficulty),
		Title:                    req.Title,
		Description:              req.Description,
		Notes:                    req.Notes,
		ProgressPercent:          req.ProgressPercent,
		TimeSpentMinutes:         req.TimeSpentMinutes,
		EstimatedDurationMinutes: req.EstimatedDurationMinutes,
	}
	if req.NextSuggestion != nil {
		input.NextSuggestion = &domain.NextSuggestion{
			ID:           req.NextSuggestion.ID,
			Title:        req.NextSuggestion.Title,
			ActivityType: domain.ActivityType(req.NextSuggestion.ActivityType),
		}
	}

	s, err := h.sessions.CreateOrUpdate(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(s))
}

// GetSession returns one of the caller's sessions.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, r)
		return
	}

	s, err := h.ownedSession(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(s))
}

// ListSessions returns the caller's non-archived sessions in insertion order.
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, r)
		return
	}

	sessions, err := h.sessions.ListByUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"sessions": toSessionResponses(sessions)})
}

// UpdateProgress records study progress against one of the caller's sessions.
func (h *Handler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, r)
		return
	}

	var req progressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, "invalid request body")
		return
	}

	sessionID := chi.URLParam(r, "id")
	if _, err := h.ownedSession(r.Context(), userID, sessionID); err != nil {
		h.writeError(w, r, err)
		return
	}

	s, err := h.sessions.UpdateProgress(r.Context(), session.UpdateProgressInput{
		SessionID:       sessionID,
		ProgressPercent: req.ProgressPercent,
		MinutesDelta:    req.MinutesDelta,
		Notes:           req.Notes,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(s))
}

// AddBookmark appends a bookmark to one of the caller's sessions.
func (h *Handler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, r)
		return
	}

	var req bookmarkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, "invalid request body")
		return
	}

	sessionID := chi.URLParam(r, "id")
	if _, err := h.ownedSession(r.Context(), userID, sessionID); err != nil {
		h.writeError(w, r, err)
		return
	}

	b, err := h.sessions.AddBookmark(r.Context(), session.AddBookmarkInput{
		SessionID: sessionID,
		Position:  req.Position,
		Title:     req.Title,
		Note:      req.Note,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookmarkResponse(*b))
}

// ownedSession loads a session and hides sessions of other users as not found.
func (h *Handler) ownedSession(ctx context.Context, userID, sessionID string) (*domain.LearningSession, error) {
	s, err := h.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.UserID != userID {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return s, nil
}
