package rest

import (
	"time"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type sessionRequest struct {
	CourseID                 string                 `json:"course_id"`
	ActivityType             string                 `json:"activity_type"`
	Platform                 string                 `json:"platform"`
	Difficulty               string                 `json:"difficulty"`
	Title                    string                 `json:"title"`
	Description              string                 `json:"description"`
	Notes                    string                 `json:"notes"`
	ProgressPercent          float64                `json:"progress_percent"`
	TimeSpentMinutes         int                    `json:"time_spent_minutes"`
	EstimatedDurationMinutes int                    `json:"estimated_duration_minutes"`
	NextSuggestion           *nextSuggestionPayload `json:"next_suggestion"`
}

type progressRequest struct {
	ProgressPercent float64 `json:"progress_percent"`
	MinutesDelta    int     `json:"minutes_delta"`
	Notes           *string `json:"notes"`
}

type bookmarkRequest struct {
	Position float64 `json:"position"`
	Title    string  `json:"title"`
	Note     *string `json:"note"`
}

type goalsRequest struct {
	DailyGoalMinutes  int `json:"daily_goal_minutes"`
	WeeklyGoalMinutes int `json:"weekly_goal_minutes"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// SessionResponse is the JSON form of a learning session.
type SessionResponse struct {
	ID                       string                 `json:"id"`
	UserID                   string                 `json:"user_id"`
	CourseID                 string                 `json:"course_id,omitempty"`
	ActivityType             string                 `json:"activity_type"`
	Platform                 string                 `json:"platform"`
	Difficulty               string                 `json:"difficulty,omitempty"`
	Title                    string                 `json:"title"`
	Description              string                 `json:"description,omitempty"`
	Notes                    string                 `json:"notes,omitempty"`
	ProgressPercent          float64                `json:"progress_percent"`
	TimeSpentMinutes         int                    `json:"time_spent_minutes"`
	EstimatedDurationMinutes int                    `json:"estimated_duration_minutes"`
	ActualDurationMinutes    *int                   `json:"actual_duration_minutes,omitempty"`
	IsCompleted              bool                   `json:"is_completed"`
	CompletedAt              *time.Time             `json:"completed_at,omitempty"`
	LastAccessedAt           time.Time              `json:"last_accessed_at"`
	CreatedAt                time.Time              `json:"created_at"`
	ArchivedAt               *time.Time             `json:"archived_at,omitempty"`
	Bookmarks                []BookmarkResponse     `json:"bookmarks"`
	NextSuggestion           *nextSuggestionPayload `json:"next_suggestion,omitempty"`
}

// BookmarkResponse is the JSON form of a bookmark.
type BookmarkResponse struct {
	ID        string    `json:"id"`
	Position  float64   `json:"position"`
	Title     string    `json:"title"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type nextSuggestionPayload struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ActivityType string `json:"activity_type"`
}

// ContinuationResponse is one ranked suggestion.
type ContinuationResponse struct {
	Session          SessionResponse  `json:"session"`
	PriorityScore    float64          `json:"priority_score"`
	Reason           string           `json:"reason"`
	ReasonText       string           `json:"reason_text"`
	StaleInHours     float64          `json:"stale_in_hours"`
	SuggestedActions []ActionResponse `json:"suggested_actions"`
}

// ActionResponse is a suggested action descriptor.
type ActionResponse struct {
	Kind      string `json:"kind"`
	Label     string `json:"label"`
	SessionID string `json:"session_id"`
	TargetID  string `json:"target_id,omitempty"`
}

// InsightsResponse is the JSON form of a user's insights.
type InsightsResponse struct {
	TotalSessions           int               `json:"total_sessions"`
	CompletedSessions       int               `json:"completed_sessions"`
	InProgressSessions      int               `json:"in_progress_sessions"`
	TotalTimeStudiedMinutes int               `json:"total_time_studied_minutes"`
	AverageSessionMinutes   float64           `json:"average_session_minutes"`
	CompletionRate          float64           `json:"completion_rate"`
	PreferredStudyWindow    string            `json:"preferred_study_window"`
	StrongestSubjects       []string          `json:"strongest_subjects"`
	RecommendedFocus        []SessionResponse `json:"recommended_focus"`
}

// StreakResponse is the JSON form of a user's streak.
type StreakResponse struct {
	UserID                string     `json:"user_id"`
	CurrentStreak         int        `json:"current_streak"`
	LongestStreak         int        `json:"longest_streak"`
	LastStudyDate         *time.Time `json:"last_study_date,omitempty"`
	DailyGoalMinutes      int        `json:"daily_goal_minutes"`
	TodayProgressMinutes  int        `json:"today_progress_minutes"`
	DailyGoalMet          bool       `json:"daily_goal_met"`
	WeeklyGoalMinutes     int        `json:"weekly_goal_minutes"`
	WeeklyProgressMinutes int        `json:"weekly_progress_minutes"`
	WeeklyGoalMet         bool       `json:"weekly_goal_met"`
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toSessionResponse(s *domain.LearningSession) SessionResponse {
	resp := SessionResponse{
		ID:                       s.ID,
		UserID:                   s.UserID,
		CourseID:                 s.CourseID,
		ActivityType:             string(s.ActivityType),
		Platform:                 string(s.Platform),
		Difficulty:               string(s.Difficulty),
		Title:                    s.Title,
		Description:              s.Description,
		Notes:                    s.Notes,
		ProgressPercent:          s.ProgressPercent,
		TimeSpentMinutes:         s.TimeSpentMinutes,
		EstimatedDurationMinutes: s.EstimatedDurationMinutes,
		ActualDurationMinutes:    s.ActualDurationMinutes,
		IsCompleted:              s.IsCompleted,
		CompletedAt:              s.CompletedAt,
		LastAccessedAt:           s.LastAccessedAt,
		CreatedAt:                s.CreatedAt,
		ArchivedAt:               s.ArchivedAt,
		Bookmarks:                make([]BookmarkResponse, 0, len(s.Bookmarks)),
	}
	for _, b := range s.Bookmarks {
		resp.Bookmarks = append(resp.Bookmarks, toBookmarkResponse(b))
	}
	if s.NextSuggestion != nil {
		resp.NextSuggestion = &nextSuggestionPayload{
			ID:           s.NextSuggestion.ID,
			Title:        s.NextSuggestion.Title,
			ActivityType: string(s.NextSuggestion.ActivityType),
		}
	}
	return resp
}

func toSessionResponses(sessions []*domain.LearningSession) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionResponse(s))
	}
	return out
}

func toBookmarkResponse(b domain.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:        b.ID,
		Position:  b.Position,
		Title:     b.Title,
		Note:      b.Note,
		CreatedAt: b.CreatedAt,
	}
}

func toContinuationResponses(items []domain.ContinuationItem) []ContinuationResponse {
	out := make([]ContinuationResponse, 0, len(items))
	for _, it := range items {
		actions := make([]ActionResponse, 0, len(it.SuggestedActions))
		for _, a := range it.SuggestedActions {
			actions = append(actions, ActionResponse{
				Kind:      string(a.Kind),
				Label:     a.Label,
				SessionID: a.SessionID,
				TargetID:  a.TargetID,
			})
		}
		out = append(out, ContinuationResponse{
			Session:          toSessionResponse(it.Session),
			PriorityScore:    it.PriorityScore,
			Reason:           string(it.Reason),
			ReasonText:       it.ReasonText,
			StaleInHours:     it.StaleInHours,
			SuggestedActions: actions,
		})
	}
	return out
}

func toInsightsResponse(in domain.Insights) InsightsResponse {
	subjects := in.StrongestSubjects
	if subjects == nil {
		subjects = []string{}
	}
	return InsightsResponse{
		TotalSessions:           in.TotalSessions,
		CompletedSessions:       in.CompletedSessions,
		InProgressSessions:      in.InProgressSessions,
		TotalTimeStudiedMinutes: in.TotalTimeStudiedMinutes,
		AverageSessionMinutes:   in.AverageSessionMinutes,
		CompletionRate:          in.CompletionRate,
		PreferredStudyWindow:    string(in.PreferredStudyWindow),
		StrongestSubjects:       subjects,
		RecommendedFocus:        toSessionResponses(in.RecommendedFocus),
	}
}

func toStreakResponse(s *domain.StudyStreak) StreakResponse {
	resp := StreakResponse{
		UserID:                s.UserID,
		CurrentStreak:         s.CurrentStreak,
		LongestStreak:         s.LongestStreak,
		DailyGoalMinutes:      s.DailyGoalMinutes,
		TodayProgressMinutes:  s.TodayProgressMinutes,
		DailyGoalMet:          s.DailyGoalMet(),
		WeeklyGoalMinutes:     s.WeeklyGoalMinutes,
		WeeklyProgressMinutes: s.WeeklyProgressMinutes,
		WeeklyGoalMet:         s.WeeklyGoalMet(),
	}
	if !s.LastStudyDate.IsZero() {
		last := s.LastStudyDate
		resp.LastStudyDate = &last
	}
	return resp
}
