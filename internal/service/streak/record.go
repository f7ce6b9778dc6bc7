package streak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

// Record applies minutesDelta studied at now to the user's streak.
//
// Same-date events only accumulate today's minutes; the next date extends
// the streak; a longer gap restarts it at 1. A zero-minute event does not
// qualify as study and leaves the record untouched.
func (s *Service) Record(ctx context.Context, userID string, minutesDelta int, now time.Time) (*domain.StudyStreak, error) {
	errs := validateUserID(userID)
	if minutesDelta < 0 {
		errs = append(errs, domain.FieldError{Field: "minutes_delta", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	st, fresh, err := s.load(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	if minutesDelta == 0 {
		return st, nil
	}

	wasDailyGoalMet := st.DailyGoalMet()
	days := CalendarDayDifference(now, st.LastStudyDate, s.loc)

	switch {
	case days <= 0:
		// Same date. Events that arrive out of order are folded into the
		// latest recorded date.
		st.TodayProgressMinutes += minutesDelta
		if st.CurrentStreak == 0 {
			st.CurrentStreak = 1
		}
	case days == 1:
		st.TodayProgressMinutes = minutesDelta
		st.CurrentStreak++
		wasDailyGoalMet = false
	default:
		s.log.InfoContext(ctx, "streak reset",
			slog.String("user_id", userID),
			slog.Int("days_since_last_study", days),
			slog.Int("previous_streak", st.CurrentStreak),
		)
		st.TodayProgressMinutes = minutesDelta
		st.CurrentStreak = 1
		wasDailyGoalMet = false
	}
	st.LongestStreak = max(st.LongestStreak, st.CurrentStreak)

	if days > 0 && !SameWeek(now, st.LastStudyDate, s.loc, s.firstDay) {
		st.WeeklyProgressMinutes = minutesDelta
	} else {
		st.WeeklyProgressMinutes += minutesDelta
	}

	if days >= 0 {
		st.LastStudyDate = now
	}
	st.UpdatedAt = s.clock.Now()

	if err := s.streaks.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("save streak: %w", err)
	}
	if fresh {
		s.logInitialised(ctx, st)
	}

	if !wasDailyGoalMet && st.DailyGoalMet() {
		s.log.InfoContext(ctx, "daily goal reached",
			slog.String("user_id", userID),
			slog.Int("today_minutes", st.TodayProgressMinutes),
			slog.Int("daily_goal_minutes", st.DailyGoalMinutes),
		)
	}

	return st, nil
}

// load returns the stored streak, or a freshly initialised unsaved one with
// fresh set.
func (s *Service) load(ctx context.Context, userID string, now time.Time) (st *domain.StudyStreak, fresh bool, err error) {
	st, err = s.streaks.Get(ctx, userID)
	if err == nil {
		return st, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get streak: %w", err)
	}

	return &domain.StudyStreak{
		UserID:            userID,
		LastStudyDate:     now,
		DailyGoalMinutes:  s.defaultDailyGoal,
		WeeklyGoalMinutes: s.defaultWeeklyGoal,
	}, true, nil
}

// logInitialised is called once a fresh record has been saved, so the log
// line matches a stored record.
func (s *Service) logInitialised(ctx context.Context, st *domain.StudyStreak) {
	s.log.InfoContext(ctx, "streak initialised",
		slog.String("user_id", st.UserID),
		slog.Time("last_study_date", st.LastStudyDate),
	)
}
