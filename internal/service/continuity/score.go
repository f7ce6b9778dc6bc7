package continuity

import "github.com/heartmarshall/learning-continuity/internal/domain"

const (
	baseScore = 3.0
	minScore  = 1.0
	maxScore  = 5.0
)

// PriorityScore computes the ranking score of an open session. Lower scores
// are resurfaced first. All adjustments are summed before clamping to
// [1, 5].
func PriorityScore(s *domain.LearningSession, hoursSinceAccess float64) float64 {
	score := baseScore

	switch {
	case hoursSinceAccess < 2:
		score -= 2.0
	case hoursSinceAccess < 6:
		score -= 1.0
	case hoursSinceAccess > 48:
		score += 1.0
	}

	switch {
	case s.ProgressPercent > 80:
		score -= 1.0
	case s.ProgressPercent > 50:
		score -= 0.5
	}

	switch {
	case s.ActivityType == domain.ActivityTypeVideo && s.ProgressPercent > 10:
		score -= 0.5
	case s.ActivityType == domain.ActivityTypeQuiz && s.ProgressPercent > 0:
		score -= 1.0
	}

	if s.Platform == domain.PlatformStructuredCourse {
		score -= 0.5
	}

	return min(max(score, minScore), maxScore)
}
