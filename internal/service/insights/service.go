// Package insights computes read-only statistics over a user's session
// history. It never mutates sessions.
package insights

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

const (
	strongSubjectThreshold = 0.7
	maxStrongestSubjects   = 3
	maxRecommendedFocus    = 3
)

type historyLister interface {
	ListHistory(ctx context.Context, userID string) ([]*domain.LearningSession, error)
}

// Service implements the insights aggregator.
type Service struct {
	sessions historyLister
	log      *slog.Logger
	loc      *time.Location
}

// NewService creates a new Insights service. Hours of day are bucketed in loc.
func NewService(log *slog.Logger, sessions historyLister, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		sessions: sessions,
		log:      log.With("service", "insights"),
		loc:      loc,
	}
}

// GetInsights aggregates the user's full history, archived sessions included.
func (s *Service) GetInsights(ctx context.Context, userID string) (domain.Insights, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Insights{}, domain.NewValidationError("user_id", "required")
	}

	sessions, err := s.sessions.ListHistory(ctx, userID)
	if err != nil {
		return domain.Insights{}, fmt.Errorf("list history: %w", err)
	}

	out := Compute(sessions, s.loc)

	s.log.DebugContext(ctx, "insights computed",
		slog.String("user_id", userID),
		slog.Int("total_sessions", out.TotalSessions),
		slog.Float64("completion_rate", out.CompletionRate),
	)

	return out, nil
}

// Compute derives insights from sessions. It is pure and safe on empty input.
func Compute(sessions []*domain.LearningSession, loc *time.Location) domain.Insights {
	out := domain.Insights{
		TotalSessions:        len(sessions),
		PreferredStudyWindow: PreferredStudyWindow(sessions, loc),
		StrongestSubjects:    StrongestSubjects(sessions),
		RecommendedFocus:     RecommendedFocus(sessions),
	}

	for _, sess := range sessions {
		out.TotalTimeStudiedMinutes += sess.TimeSpentMinutes
		if sess.IsCompleted {
			out.CompletedSessions++
		} else {
			out.InProgressSessions++
		}
	}

	if out.TotalSessions > 0 {
		out.CompletionRate = float64(out.CompletedSessions) / float64(out.TotalSessions)
		out.AverageSessionMinutes = float64(out.TotalTimeStudiedMinutes) / float64(out.TotalSessions)
	}

	return out
}

// PreferredStudyWindow buckets minutes studied by the local hour of
// LastAccessedAt and returns the window holding the busiest hour. Ties go to
// the lowest hour, so an empty history reports the night window (hour 0).
func PreferredStudyWindow(sessions []*domain.LearningSession, loc *time.Location) domain.StudyWindow {
	var bins [24]int
	for _, sess := range sessions {
		bins[sess.LastAccessedAt.In(loc).Hour()] += sess.TimeSpentMinutes
	}

	best := 0
	for hour := 1; hour < len(bins); hour++ {
		if bins[hour] > bins[best] {
			best = hour
		}
	}
	return domain.StudyWindowForHour(best)
}

type subjectStats struct {
	key   string
	total int
	done  int
}

func (s subjectStats) rate() float64 {
	return float64(s.done) / float64(s.total)
}

// StrongestSubjects returns up to three subject keys whose completion rate
// exceeds 0.7, highest rate first and ties by key.
func StrongestSubjects(sessions []*domain.LearningSession) []string {
	groups := make(map[string]*subjectStats)
	for _, sess := range sessions {
		key := sess.SubjectKey()
		g, ok := groups[key]
		if !ok {
			g = &subjectStats{key: key}
			groups[key] = g
		}
		g.total++
		if sess.IsCompleted {
			g.done++
		}
	}

	strong := make([]subjectStats, 0, len(groups))
	for _, g := range groups {
		if g.rate() > strongSubjectThreshold {
			strong = append(strong, *g)
		}
	}

	slices.SortFunc(strong, func(a, b subjectStats) int {
		if c := cmp.Compare(b.rate(), a.rate()); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})

	keys := make([]string, 0, maxStrongestSubjects)
	for _, g := range strong {
		if len(keys) == maxStrongestSubjects {
			break
		}
		keys = append(keys, g.key)
	}
	return keys
}

// RecommendedFocus returns the three incomplete sessions with the lowest
// progress, ascending, ties by ID.
func RecommendedFocus(sessions []*domain.LearningSession) []*domain.LearningSession {
	open := make([]*domain.LearningSession, 0, len(sessions))
	for _, sess := range sessions {
		if !sess.IsCompleted {
			open = append(open, sess)
		}
	}

	slices.SortFunc(open, func(a, b *domain.LearningSession) int {
		if c := cmp.Compare(a.ProgressPercent, b.ProgressPercent); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if len(open) > maxRecommendedFocus {
		open = open[:maxRecommendedFocus]
	}
	return open
}
