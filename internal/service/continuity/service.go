// Package continuity ranks a user's open sessions into "continue learning"
// suggestions. Rankings depend on the current time and are recomputed on
// every call.
package continuity

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/learning-continuity/internal/config"
	"github.com/heartmarshall/learning-continuity/internal/domain"
	"github.com/heartmarshall/learning-continuity/pkg/clock"
)

type sessionLister interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.LearningSession, error)
}

// Service implements the continuity ranker.
type Service struct {
	sessions sessionLister
	log      *slog.Logger
	clock    clock.Clock

	defaultLimit int
	maxLimit     int
	horizon      time.Duration
}

// NewService creates a new Continuity service.
func NewService(
	log *slog.Logger,
	sessions sessionLister,
	cfg config.ContinuityConfig,
	clk clock.Clock,
) *Service {
	return &Service{
		sessions:     sessions,
		log:          log.With("service", "continuity"),
		clock:        clk,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
		horizon:      cfg.StalenessHorizon,
	}
}

// DefaultLimit is the configured number of items returned when a caller does
// not choose a limit.
func (s *Service) DefaultLimit() int {
	return s.defaultLimit
}
