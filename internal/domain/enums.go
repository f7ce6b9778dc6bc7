package domain

// ActivityType classifies what the learner is doing inside a session.
type ActivityType string

const (
	ActivityTypeVideo           ActivityType = "video"
	ActivityTypeReading         ActivityType = "reading"
	ActivityTypeQuiz            ActivityType = "quiz"
	ActivityTypeAssignment      ActivityType = "assignment"
	ActivityTypeInteractive     ActivityType = "interactive"
	ActivityTypeOpenExploration ActivityType = "open-exploration"
)

func (a ActivityType) String() string { return string(a) }

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityTypeVideo, ActivityTypeReading, ActivityTypeQuiz, ActivityTypeAssignment,
		ActivityTypeInteractive, ActivityTypeOpenExploration:
		return true
	}
	return false
}

// Platform identifies which learning surface the session belongs to.
type Platform string

const (
	PlatformStructuredCourse Platform = "structured-course"
	PlatformOpenExploration  Platform = "open-exploration"
	PlatformAITutor          Platform = "ai-tutor"
	PlatformPracticeDrill    Platform = "practice-drill"
)

func (p Platform) String() string { return string(p) }

func (p Platform) IsValid() bool {
	switch p {
	case PlatformStructuredCourse, PlatformOpenExploration, PlatformAITutor, PlatformPracticeDrill:
		return true
	}
	return false
}

// Difficulty is the self-declared level of the content.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ActionKind tags a suggested action handed to the navigation dispatcher.
type ActionKind string

const (
	ActionKindResume   ActionKind = "resume"
	ActionKindStart    ActionKind = "start"
	ActionKindReview   ActionKind = "review"
	ActionKindPractice ActionKind = "practice"
	ActionKindNext     ActionKind = "next"
	ActionKindHelp     ActionKind = "help"
)

func (k ActionKind) String() string { return string(k) }

// ReasonKind identifies which rule produced a continuation reason.
type ReasonKind string

const (
	ReasonAlmostDone    ReasonKind = "almost_done"
	ReasonJustStudying  ReasonKind = "just_studying"
	ReasonResumeVideo   ReasonKind = "resume_video"
	ReasonCompleteQuiz  ReasonKind = "complete_quiz"
	ReasonRefreshMemory ReasonKind = "refresh_memory"
	ReasonContinue      ReasonKind = "continue"
)

func (r ReasonKind) String() string { return string(r) }

// StudyWindow is a coarse part of the day.
type StudyWindow string

const (
	StudyWindowMorning   StudyWindow = "morning"
	StudyWindowAfternoon StudyWindow = "afternoon"
	StudyWindowEvening   StudyWindow = "evening"
	StudyWindowNight     StudyWindow = "night"
)

func (w StudyWindow) String() string { return string(w) }

// StudyWindowForHour maps an hour of day (0-23) to its window:
// morning 6-12, afternoon 12-18, evening 18-22, night otherwise.
func StudyWindowForHour(hour int) StudyWindow {
	switch {
	case hour >= 6 && hour < 12:
		return StudyWindowMorning
	case hour >= 12 && hour < 18:
		return StudyWindowAfternoon
	case hour >= 18 && hour < 22:
		return StudyWindowEvening
	default:
		return StudyWindowNight
	}
}
