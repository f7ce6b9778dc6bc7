package domain

import "time"

// StudyStreak holds per-user streak and goal bookkeeping.
type StudyStreak struct {
	UserID string

	CurrentStreak int
	LongestStreak int
	LastStudyDate time.Time

	DailyGoalMinutes      int
	TodayProgressMinutes  int
	WeeklyGoalMinutes     int
	WeeklyProgressMinutes int

	UpdatedAt time.Time
}

// DailyGoalMet reports whether today's minutes reached the daily goal.
func (s *StudyStreak) DailyGoalMet() bool {
	return s.DailyGoalMinutes > 0 && s.TodayProgressMinutes >= s.DailyGoalMinutes
}

// WeeklyGoalMet reports whether this week's minutes reached the weekly goal.
func (s *StudyStreak) WeeklyGoalMet() bool {
	return s.WeeklyGoalMinutes > 0 && s.WeeklyProgressMinutes >= s.WeeklyGoalMinutes
}
