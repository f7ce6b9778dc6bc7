package domain

import "time"

// MaxProgressPercent is the progress value at which a session is complete.
const MaxProgressPercent = 100.0

// LearningSession is one tracked unit of study for one user.
type LearningSession struct {
	ID       string
	UserID   string
	CourseID string

	ActivityType ActivityType
	Platform     Platform
	Difficulty   Difficulty

	Title       string
	Description string
	Notes       string

	ProgressPercent          float64
	TimeSpentMinutes         int
	EstimatedDurationMinutes int
	ActualDurationMinutes    *int

	IsCompleted bool
	CompletedAt *time.Time

	LastAccessedAt time.Time
	CreatedAt      time.Time
	ArchivedAt     *time.Time

	Bookmarks      []Bookmark
	NextSuggestion *NextSuggestion
}

// IsArchived reports whether the retention sweep has archived the session.
func (s *LearningSession) IsArchived() bool {
	return s.ArchivedAt != nil
}

// SubjectKey returns the grouping key used for per-subject statistics.
func (s *LearningSession) SubjectKey() string {
	if s.CourseID != "" {
		return s.CourseID
	}
	return string(s.Platform)
}

// ApplyProgress sets the progress percent, honouring the completion invariant.
// Values are clamped to [0, 100]. The first time progress reaches 100 the
// session is marked completed at now with its actual duration fixed to the
// current time spent. Once completed, progress is frozen and the call reports
// false so that callers can log the ignored update.
func (s *LearningSession) ApplyProgress(percent float64, now time.Time) bool {
	if s.IsCompleted {
		return percent >= s.ProgressPercent
	}

	s.ProgressPercent = ClampProgress(percent)
	if s.ProgressPercent >= MaxProgressPercent {
		completedAt := now
		actual := s.TimeSpentMinutes
		s.IsCompleted = true
		s.CompletedAt = &completedAt
		s.ActualDurationMinutes = &actual
	}
	return true
}

// ClampProgress bounds a progress percent to [0, 100].
func ClampProgress(percent float64) float64 {
	switch {
	case percent < 0:
		return 0
	case percent > MaxProgressPercent:
		return MaxProgressPercent
	}
	return percent
}

// Bookmark is a named marker inside a session's content.
// Position is a content-specific offset (for example a video seek position in
// seconds) and is unrelated to CreatedAt.
type Bookmark struct {
	ID        string
	Position  float64
	Title     string
	Note      *string
	CreatedAt time.Time
}

// NextSuggestion is an advisory pointer to a follow-on unit of study.
type NextSuggestion struct {
	ID           string
	Title        string
	ActivityType ActivityType
}
