package streak

import (
	"strings"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

const maxGoalMinutes = 24 * 60 * 7

func validateUserID(userID string) []domain.FieldError {
	if strings.TrimSpace(userID) == "" {
		return []domain.FieldError{{Field: "user_id", Message: "required"}}
	}
	return nil
}

// SetGoalsInput holds the parameters for changing a user's goals.
type SetGoalsInput struct {
	UserID            string
	DailyGoalMinutes  int
	WeeklyGoalMinutes int
}

// Validate checks all fields and collects all errors.
func (i SetGoalsInput) Validate() error {
	errs := validateUserID(i.UserID)

	if i.DailyGoalMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "daily_goal_minutes", Message: "must be non-negative"})
	}
	if i.DailyGoalMinutes > 24*60 {
		errs = append(errs, domain.FieldError{Field: "daily_goal_minutes", Message: "max 1440"})
	}
	if i.WeeklyGoalMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "weekly_goal_minutes", Message: "must be non-negative"})
	}
	if i.WeeklyGoalMinutes > maxGoalMinutes {
		errs = append(errs, domain.FieldError{Field: "weekly_goal_minutes", Message: "max 10080"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
