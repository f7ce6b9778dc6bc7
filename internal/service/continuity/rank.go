package continuity

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

// Rank returns up to limit continuation items for the user, most urgent
// first. Only sessions that are started but not completed are eligible.
// A limit of 0 yields an empty result; callers apply DefaultLimit when the
// client did not ask for a specific count.
func (s *Service) Rank(ctx context.Context, userID string, limit int) ([]domain.ContinuationItem, error) {
	var errs []domain.FieldError
	if strings.TrimSpace(userID) == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if limit > s.maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", s.maxLimit)})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	if limit == 0 {
		return []domain.ContinuationItem{}, nil
	}

	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	now := s.clock.Now()
	horizonHours := s.horizon.Hours()

	items := make([]domain.ContinuationItem, 0, len(sessions))
	for _, session := range sessions {
		if session.IsCompleted || session.ProgressPercent <= 0 {
			continue
		}

		hours := max(now.Sub(session.LastAccessedAt).Hours(), 0)
		reason, text := Reason(session, hours)

		items = append(items, domain.ContinuationItem{
			Session:          session,
			PriorityScore:    PriorityScore(session, hours),
			Reason:           reason,
			ReasonText:       text,
			StaleInHours:     max(0, horizonHours-hours),
			SuggestedActions: SuggestedActions(session),
		})
	}

	slices.SortFunc(items, compareItems)
	if len(items) > limit {
		items = items[:limit]
	}

	s.log.DebugContext(ctx, "continuation ranked",
		slog.String("user_id", userID),
		slog.Int("candidates", len(sessions)),
		slog.Int("returned", len(items)),
	)

	return items, nil
}

// compareItems orders by score ascending, then most recently accessed, then ID.
func compareItems(a, b domain.ContinuationItem) int {
	if c := cmp.Compare(a.PriorityScore, b.PriorityScore); c != 0 {
		return c
	}
	if c := b.Session.LastAccessedAt.Compare(a.Session.LastAccessedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.Session.ID, b.Session.ID)
}
