package continuity

import (
	"fmt"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

// Reason picks the justification shown next to a suggestion. Rules are
// checked in order and the first match wins.
func Reason(s *domain.LearningSession, hoursSinceAccess float64) (domain.ReasonKind, string) {
	switch {
	case s.ProgressPercent > 80:
		return domain.ReasonAlmostDone, fmt.Sprintf("Almost done: %.0f%% complete", s.ProgressPercent)
	case hoursSinceAccess < 2:
		return domain.ReasonJustStudying, "You were just studying this"
	case s.ActivityType == domain.ActivityTypeVideo && s.ProgressPercent > 20:
		return domain.ReasonResumeVideo, fmt.Sprintf("Resume from %.0f%%", s.ProgressPercent)
	case s.ActivityType == domain.ActivityTypeQuiz:
		return domain.ReasonCompleteQuiz, "Complete this quiz"
	case hoursSinceAccess > 24:
		return domain.ReasonRefreshMemory, "Refresh your memory before it fades"
	default:
		return domain.ReasonContinue, "Continue where you left off"
	}
}
