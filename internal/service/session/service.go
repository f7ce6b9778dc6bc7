// Package session implements the session store: create-or-merge of learning
// sessions, progress updates with streak bookkeeping, bookmarks and the
// retention sweep.
package session

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/learning-continuity/internal/domain"
	"github.com/heartmarshall/learning-continuity/pkg/clock"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type sessionRepo interface {
	GetByID(ctx context.Context, id string) (*domain.LearningSession, error)
	Create(ctx context.Context, s *domain.LearningSession) error
	Update(ctx context.Context, s *domain.LearningSession) error
	ListByUser(ctx context.Context, userID string, includeArchived bool) ([]*domain.LearningSession, error)
	ListIDs(ctx context.Context) ([]string, error)
	Archive(ctx context.Context, id string, at time.Time) error
}

type streakRecorder interface {
	Record(ctx context.Context, userID string, minutesDelta int, now time.Time) (*domain.StudyStreak, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the session store business logic.
type Service struct {
	sessions sessionRepo
	streaks  streakRecorder
	log      *slog.Logger
	clock    clock.Clock
}

// NewService creates a new Session service.
func NewService(
	log *slog.Logger,
	sessions sessionRepo,
	streaks streakRecorder,
	clk clock.Clock,
) *Service {
	return &Service{
		sessions: sessions,
		streaks:  streaks,
		log:      log.With("service", "session"),
		clock:    clk,
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
