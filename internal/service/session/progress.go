package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

// UpdateProgress records study on a session: progress is clamped to
// [0, 100], minutes are added to the time spent, and the streak tracker is
// told about the minutes. Reaching 100 completes the session once and for
// all; a lower progress on a completed session is ignored and logged while
// the rest of the update still applies.
func (s *Service) UpdateProgress(ctx context.Context, input UpdateProgressInput) (*domain.LearningSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	now := s.clock.Now()
	wasCompleted := session.IsCompleted

	session.TimeSpentMinutes += input.MinutesDelta
	if !session.ApplyProgress(input.ProgressPercent, now) {
		s.logIgnoredRegression(ctx, session, input.ProgressPercent)
	}
	if notes := trimOrNil(input.Notes); notes != nil {
		session.Notes = *notes
	}
	session.LastAccessedAt = now

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	if _, err := s.streaks.Record(ctx, session.UserID, input.MinutesDelta, now); err != nil {
		return nil, fmt.Errorf("record streak: %w", err)
	}

	if !wasCompleted && session.IsCompleted {
		s.log.InfoContext(ctx, "session completed",
			slog.String("user_id", session.UserID),
			slog.String("session_id", session.ID),
			slog.Int("actual_duration_minutes", *session.ActualDurationMinutes),
		)
	}

	return session, nil
}
