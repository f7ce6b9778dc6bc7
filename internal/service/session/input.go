package session

import (
	"math"
	"strings"
	"time"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

const (
	maxIDLength          = 128
	maxTitleLength       = 200
	maxDescriptionLength = 2000
	maxNotesLength       = 10000
	maxNoteLength        = 2000
)

// validateID checks an identifier that becomes part of a storage key.
func validateID(field, id string) []domain.FieldError {
	switch {
	case id == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case len(id) > maxIDLength:
		return []domain.FieldError{{Field: field, Message: "max 128 characters"}}
	case strings.ContainsAny(id, "/ \t\r\n"):
		return []domain.FieldError{{Field: field, Message: "must not contain '/' or whitespace"}}
	}
	return nil
}

func validateProgress(field string, p float64) []domain.FieldError {
	if math.IsNaN(p) || p < 0 || p > domain.MaxProgressPercent {
		return []domain.FieldError{{Field: field, Message: "must be between 0 and 100"}}
	}
	return nil
}

// CreateOrUpdateInput holds the parameters for creating or merging a session.
// Zero values mean "keep the stored value" when the session already exists.
type CreateOrUpdateInput struct {
	ID       string
	UserID   string
	CourseID string

	ActivityType domain.ActivityType
	Platform     domain.Platform
	Difficulty   domain.Difficulty

	Title       string
	Description string
	Notes       string

	ProgressPercent          float64
	TimeSpentMinutes         int
	EstimatedDurationMinutes int

	NextSuggestion *domain.NextSuggestion
}

// Validate checks all fields and collects all errors.
func (i CreateOrUpdateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateID("id", i.ID)...)
	errs = append(errs, validateID("user_id", i.UserID)...)
	if i.CourseID != "" {
		errs = append(errs, validateID("course_id", i.CourseID)...)
	}

	if i.ActivityType != "" && !i.ActivityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity_type", Message: "invalid value"})
	}
	if i.Platform != "" && !i.Platform.IsValid() {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "invalid value"})
	}
	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}

	if len(i.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if len(i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 10000 characters"})
	}

	errs = append(errs, validateProgress("progress_percent", i.ProgressPercent)...)
	if i.TimeSpentMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "time_spent_minutes", Message: "must be non-negative"})
	}
	if i.EstimatedDurationMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "estimated_duration_minutes", Message: "must be non-negative"})
	}

	if i.NextSuggestion != nil {
		if strings.TrimSpace(i.NextSuggestion.ID) == "" {
			errs = append(errs, domain.FieldError{Field: "next_suggestion.id", Message: "required"})
		}
		if i.NextSuggestion.ActivityType != "" && !i.NextSuggestion.ActivityType.IsValid() {
			errs = append(errs, domain.FieldError{Field: "next_suggestion.activity_type", Message: "invalid value"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateNew checks the fields a session must have when it is first stored.
func (i CreateOrUpdateInput) validateNew() error {
	var errs []domain.FieldError

	if i.ActivityType == "" {
		errs = append(errs, domain.FieldError{Field: "activity_type", Message: "required"})
	}
	if i.Platform == "" {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.EstimatedDurationMinutes <= 0 {
		errs = append(errs, domain.FieldError{Field: "estimated_duration_minutes", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProgressInput holds the parameters for a progress update.
type UpdateProgressInput struct {
	SessionID       string
	ProgressPercent float64
	MinutesDelta    int
	Notes           *string
}

// Validate checks all fields and collects all errors.
// ProgressPercent outside [0, 100] is clamped, not rejected.
func (i UpdateProgressInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateID("session_id", i.SessionID)...)
	if math.IsNaN(i.ProgressPercent) {
		errs = append(errs, domain.FieldError{Field: "progress_percent", Message: "must be a number"})
	}
	if i.MinutesDelta < 0 {
		errs = append(errs, domain.FieldError{Field: "minutes_delta", Message: "must be non-negative"})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 10000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddBookmarkInput holds the parameters for adding a bookmark.
type AddBookmarkInput struct {
	SessionID string
	Position  float64
	Title     string
	Note      *string
}

// Validate checks all fields and collects all errors.
func (i AddBookmarkInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateID("session_id", i.SessionID)...)
	if math.IsNaN(i.Position) || math.IsInf(i.Position, 0) || i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must be a non-negative number"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Note != nil && len(strings.TrimSpace(*i.Note)) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ArchiveInput holds the parameters for a retention sweep.
type ArchiveInput struct {
	// OlderThan is the minimum age of LastAccessedAt for a completed session
	// to be archived.
	OlderThan time.Duration
	// Concurrency bounds the number of sessions processed in parallel.
	Concurrency int
	// DryRun counts candidates without writing.
	DryRun bool
}

// Validate checks all fields and collects all errors.
func (i ArchiveInput) Validate() error {
	var errs []domain.FieldError
	if i.OlderThan <= 0 {
		errs = append(errs, domain.FieldError{Field: "older_than", Message: "must be positive"})
	}
	if i.Concurrency < 1 {
		errs = append(errs, domain.FieldError{Field: "concurrency", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
