package session

import (
	"context"
	"fmt"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

// Get returns a single session or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, sessionID string) (*domain.LearningSession, error) {
	if errs := validateID("session_id", sessionID); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// ListByUser returns the user's non-archived sessions in insertion order.
// The order carries no priority meaning.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*domain.LearningSession, error) {
	return s.list(ctx, userID, false)
}

// ListHistory returns every session of the user, archived ones included.
func (s *Service) ListHistory(ctx context.Context, userID string) ([]*domain.LearningSession, error) {
	return s.list(ctx, userID, true)
}

func (s *Service) list(ctx context.Context, userID string, includeArchived bool) ([]*domain.LearningSession, error) {
	if errs := validateID("user_id", userID); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	sessions, err := s.sessions.ListByUser(ctx, userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
