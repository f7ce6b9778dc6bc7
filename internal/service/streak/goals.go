package streak

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

// Get returns the user's streak as seen today: counters whose day or week has
// passed read as zero, and a streak whose last study date is older than
// yesterday reads as broken. The stored record is not modified.
func (s *Service) Get(ctx context.Context, userID string) (*domain.StudyStreak, error) {
	if errs := validateUserID(userID); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	st, err := s.streaks.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}

	now := s.clock.Now()
	days := CalendarDayDifference(now, st.LastStudyDate, s.loc)
	if days > 0 {
		st.TodayProgressMinutes = 0
	}
	if days > 1 {
		st.CurrentStreak = 0
	}
	if days > 0 && !SameWeek(now, st.LastStudyDate, s.loc, s.firstDay) {
		st.WeeklyProgressMinutes = 0
	}

	return st, nil
}

// SetGoals changes the user's daily and weekly goals, initialising the
// streak record if the user has none yet.
func (s *Service) SetGoals(ctx context.Context, input SetGoalsInput) (*domain.StudyStreak, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	st, fresh, err := s.load(ctx, input.UserID, now)
	if err != nil {
		return nil, err
	}

	st.DailyGoalMinutes = input.DailyGoalMinutes
	st.WeeklyGoalMinutes = input.WeeklyGoalMinutes
	st.UpdatedAt = now

	if err := s.streaks.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("save streak: %w", err)
	}
	if fresh {
		s.logInitialised(ctx, st)
	}

	s.log.InfoContext(ctx, "goals updated",
		slog.String("user_id", input.UserID),
		slog.Int("daily_goal_minutes", st.DailyGoalMinutes),
		slog.Int("weekly_goal_minutes", st.WeeklyGoalMinutes),
	)

	return st, nil
}
