// Package streak derives per-user study streaks and goal progress from a
// stream of (user, minutes, timestamp) events.
package streak

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/learning-continuity/internal/config"
	"github.com/heartmarshall/learning-continuity/internal/domain"
	"github.com/heartmarshall/learning-continuity/pkg/clock"
)

type streakRepo interface {
	Get(ctx context.Context, userID string) (*domain.StudyStreak, error)
	Save(ctx context.Context, s *domain.StudyStreak) error
}

// Service implements the streak state machine.
type Service struct {
	streaks  streakRepo
	log      *slog.Logger
	clock    clock.Clock
	loc      *time.Location
	firstDay time.Weekday

	defaultDailyGoal  int
	defaultWeeklyGoal int
}

// NewService creates a new Streak service. cfg must have passed
// config.Validate so that its location and first weekday are resolved.
func NewService(
	log *slog.Logger,
	streaks streakRepo,
	cfg config.StreakConfig,
	clk clock.Clock,
) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		streaks:           streaks,
		log:               log.With("service", "streak"),
		clock:             clk,
		loc:               loc,
		firstDay:          cfg.FirstWeekday,
		defaultDailyGoal:  cfg.DailyGoalMinutes,
		defaultWeeklyGoal: cfg.WeeklyGoalMinutes,
	}
}
