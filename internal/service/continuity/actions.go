package continuity

import "github.com/heartmarshall/learning-continuity/internal/domain"

const maxActions = 3

// SuggestedActions lists what the dispatcher may offer for a session. The
// resume (or start) action always comes first; review, practice, next and
// help fill the remaining slots in that order.
func SuggestedActions(s *domain.LearningSession) []domain.SuggestedAction {
	actions := make([]domain.SuggestedAction, 0, maxActions)

	if s.ProgressPercent > 0 {
		actions = append(actions, domain.SuggestedAction{Kind: domain.ActionKindResume, Label: "Resume", SessionID: s.ID})
	} else {
		actions = append(actions, domain.SuggestedAction{Kind: domain.ActionKindStart, Label: "Start", SessionID: s.ID})
	}

	var optional []domain.SuggestedAction
	if s.ProgressPercent > 50 || s.IsCompleted {
		optional = append(optional, domain.SuggestedAction{Kind: domain.ActionKindReview, Label: "Review", SessionID: s.ID})
	}
	if s.ActivityType == domain.ActivityTypeQuiz || s.Platform == domain.PlatformPracticeDrill {
		optional = append(optional, domain.SuggestedAction{Kind: domain.ActionKindPractice, Label: "Practice", SessionID: s.ID})
	}
	if s.NextSuggestion != nil {
		optional = append(optional, domain.SuggestedAction{
			Kind:      domain.ActionKindNext,
			Label:     "Next: " + s.NextSuggestion.Title,
			SessionID: s.ID,
			TargetID:  s.NextSuggestion.ID,
		})
	}
	optional = append(optional, domain.SuggestedAction{Kind: domain.ActionKindHelp, Label: "Get help", SessionID: s.ID})

	for _, a := range optional {
		if len(actions) == maxActions {
			break
		}
		actions = append(actions, a)
	}
	return actions
}
