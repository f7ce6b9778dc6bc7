package domain

// ContinuationItem is one ranked "continue learning" suggestion.
type ContinuationItem struct {
	Session          *LearningSession
	PriorityScore    float64
	Reason           ReasonKind
	ReasonText       string
	StaleInHours     float64
	SuggestedActions []SuggestedAction
}

// SuggestedAction is a tagged action descriptor. The dispatcher maps Kind to
// behaviour; the engine only supplies the data needed to perform it.
type SuggestedAction struct {
	Kind      ActionKind
	Label     string
	SessionID string
	// TargetID is set for ActionKindNext and points at the suggested unit.
	TargetID string
}
