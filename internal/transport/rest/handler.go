package rest

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/learning-continuity/internal/domain"
	"github.com/heartmarshall/learning-continuity/internal/service/session"
	"github.com/heartmarshall/learning-continuity/internal/service/streak"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type sessionService interface {
	CreateOrUpdate(ctx context.Context, input session.CreateOrUpdateInput) (*domain.LearningSession, error)
	UpdateProgress(ctx context.Context, input session.UpdateProgressInput) (*domain.LearningSession, error)
	AddBookmark(ctx context.Context, input session.AddBookmarkInput) (*domain.Bookmark, error)
	Get(ctx context.Context, sessionID string) (*domain.LearningSession, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.LearningSession, error)
}

type continuityService interface {
	Rank(ctx context.Context, userID string, limit int) ([]domain.ContinuationItem, error)
	DefaultLimit() int
}

type insightsService interface {
	GetInsights(ctx context.Context, userID string) (domain.Insights, error)
}

type streakService interface {
	Get(ctx context.Context, userID string) (*domain.StudyStreak, error)
	SetGoals(ctx context.Context, input streak.SetGoalsInput) (*domain.StudyStreak, error)
}

// Handler serves the learner-facing API.
type Handler struct {
	sessions   sessionService
	continuity continuityService
	insights   insightsService
	streaks    streakService
	log        *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	log *slog.Logger,
	sessions sessionService,
	continuity continuityService,
	insights insightsService,
	streaks streakService,
) *Handler {
	return &Handler{
		sessions:   sessions,
		continuity: continuity,
		insights:   insights,
		streaks:    streaks,
		log:        log.With("handler", "rest"),
	}
}
