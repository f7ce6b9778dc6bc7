package session

import (
	"time"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

// record is the stored JSON shape of a LearningSession. ArchivedAt is not
// part of it; the archive marker lives under its own key.
type record struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	CourseID string `json:"course_id,omitempty"`

	ActivityType string `json:"activity_type"`
	Platform     string `json:"platform"`
	Difficulty   string `json:"difficulty,omitempty"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`

	ProgressPercent          float64 `json:"progress_percent"`
	TimeSpentMinutes         int     `json:"time_spent_minutes"`
	EstimatedDurationMinutes int     `json:"estimated_duration_minutes"`
	ActualDurationMinutes    *int    `json:"actual_duration_minutes,omitempty"`

	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	LastAccessedAt time.Time `json:"last_accessed_at"`
	CreatedAt      time.Time `json:"created_at"`

	Bookmarks      []bookmarkRecord      `json:"bookmarks,omitempty"`
	NextSuggestion *nextSuggestionRecord `json:"next_suggestion,omitempty"`
}

type bookmarkRecord struct {
	ID        string    `json:"id"`
	Position  float64   `json:"position"`
	Title     string    `json:"title"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type nextSuggestionRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ActivityType string `json:"activity_type,omitempty"`
}

func toRecord(s *domain.LearningSession) record {
	r := record{
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
	}

	if len(s.Bookmarks) > 0 {
		r.Bookmarks = make([]bookmarkRecord, 0, len(s.Bookmarks))
		for _, b := range s.Bookmarks {
			r.Bookmarks = append(r.Bookmarks, bookmarkRecord{
				ID:        b.ID,
				Position:  b.Position,
				Title:     b.Title,
				Note:      b.Note,
				CreatedAt: b.CreatedAt,
			})
		}
	}

	if s.NextSuggestion != nil {
		r.NextSuggestion = &nextSuggestionRecord{
			ID:           s.NextSuggestion.ID,
			Title:        s.NextSuggestion.Title,
			ActivityType: string(s.NextSuggestion.ActivityType),
		}
	}

	return r
}

func (r record) toDomain() *domain.LearningSession {
	s := &domain.LearningSession{
		ID:                       r.ID,
		UserID:                   r.UserID,
		CourseID:                 r.CourseID,
		ActivityType:             domain.ActivityType(r.ActivityType),
		Platform:                 domain.Platform(r.Platform),
		Difficulty:               domain.Difficulty(r.Difficulty),
		Title:                    r.Title,
		Description:              r.Description,
		Notes:                    r.Notes,
		ProgressPercent:          r.ProgressPercent,
		TimeSpentMinutes:         r.TimeSpentMinutes,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		ActualDurationMinutes:    r.ActualDurationMinutes,
		IsCompleted:              r.IsCompleted,
		CompletedAt:              r.CompletedAt,
		LastAccessedAt:           r.LastAccessedAt,
		CreatedAt:                r.CreatedAt,
	}

	for _, b := range r.Bookmarks {
		s.Bookmarks = append(s.Bookmarks, domain.Bookmark{
			ID:        b.ID,
			Position:  b.Position,
			Title:     b.Title,
			Note:      b.Note,
			CreatedAt: b.CreatedAt,
		})
	}

	if r.NextSuggestion != nil {
		s.NextSuggestion = &domain.NextSuggestion{
			ID:           r.NextSuggestion.ID,
			Title:        r.NextSuggestion.Title,
			ActivityType: domain.ActivityType(r.NextSuggestion.ActivityType),
		}
	}

	return s
}
