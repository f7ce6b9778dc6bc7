package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

// CreateOrUpdate inserts a session when none with input.ID exists, otherwise
// merges the input into the stored one. LastAccessedAt is always set to now.
func (s *Service) CreateOrUpdate(ctx context.Context, input CreateOrUpdateInput) (*domain.LearningSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.sessions.GetByID(ctx, input.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if existing == nil {
		return s.create(ctx, input)
	}
	return s.merge(ctx, existing, input)
}

func (s *Service) create(ctx context.Context, input CreateOrUpdateInput) (*domain.LearningSession, error) {
	if err := input.validateNew(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := &domain.LearningSession{
		ID:                       input.ID,
		UserID:                   input.UserID,
		CourseID:                 input.CourseID,
		ActivityType:             input.ActivityType,
		Platform:                 input.Platform,
		Difficulty:               input.Difficulty,
		Title:                    strings.TrimSpace(input.Title),
		Description:              strings.TrimSpace(input.Description),
		Notes:                    strings.TrimSpace(input.Notes),
		TimeSpentMinutes:         input.TimeSpentMinutes,
		EstimatedDurationMinutes: input.EstimatedDurationMinutes,
		NextSuggestion:           input.NextSuggestion,
		LastAccessedAt:           now,
		CreatedAt:                now,
	}
	session.ApplyProgress(input.ProgressPercent, now)

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session created",
		slog.String("user_id", session.UserID),
		slog.String("session_id", session.ID),
		slog.String("activity_type", session.ActivityType.String()),
		slog.String("platform", session.Platform.String()),
	)

	return session, nil
}

func (s *Service) merge(ctx context.Context, session *domain.LearningSession, input CreateOrUpdateInput) (*domain.LearningSession, error) {
	if session.UserID != input.UserID {
		return nil, domain.NewValidationError("user_id", "does not match the stored session")
	}

	now := s.clock.Now()

	if input.CourseID != "" {
		session.CourseID = input.CourseID
	}
	if input.ActivityType != "" {
		session.ActivityType = input.ActivityType
	}
	if input.Platform != "" {
		session.Platform = input.Platform
	}
	if input.Difficulty != "" {
		session.Difficulty = input.Difficulty
	}
	if title := strings.TrimSpace(input.Title); title != "" {
		session.Title = title
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		session.Description = desc
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		session.Notes = notes
	}
	if input.EstimatedDurationMinutes > 0 {
		session.EstimatedDurationMinutes = input.EstimatedDurationMinutes
	}
	if input.NextSuggestion != nil {
		session.NextSuggestion = input.NextSuggestion
	}
	session.TimeSpentMinutes = max(session.TimeSpentMinutes, input.TimeSpentMinutes)
	if input.ProgressPercent > 0 && !session.ApplyProgress(input.ProgressPercent, now) {
		s.logIgnoredRegression(ctx, session, input.ProgressPercent)
	}
	session.LastAccessedAt = now

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.log.InfoContext(ctx, "session updated",
		slog.String("user_id", session.UserID),
		slog.String("session_id", session.ID),
	)

	return session, nil
}

func (s *Service) logIgnoredRegression(ctx context.Context, session *domain.LearningSession, requested float64) {
	s.log.WarnContext(ctx, "progress update ignored for completed session",
		slog.String("user_id", session.UserID),
		slog.String("session_id", session.ID),
		slog.Float64("requested_percent", requested),
		slog.Float64("frozen_percent", session.ProgressPercent),
	)
}
