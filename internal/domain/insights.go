package domain

// Insights holds read-only statistics derived from a user's session history.
type Insights struct {
	TotalSessions           int
	CompletedSessions       int
	InProgressSessions      int
	TotalTimeStudiedMinutes int
	AverageSessionMinutes   float64
	CompletionRate          float64
	PreferredStudyWindow    StudyWindow
	StrongestSubjects       []string
	RecommendedFocus        []*LearningSession
}
