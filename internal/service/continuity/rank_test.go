package continuity

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/heartmarshall/learning-continuity/internal/config"
	"github.com/heartmarshall/learning-continuity/internal/domain"
	"github.com/heartmarshall/learning-continuity/pkg/clock"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, sessions []*domain.LearningSession) (*Service, *sessionListerMock) {
	t.Helper()
	mock := &sessionListerMock{
		ListByUserFunc: func(ctx context.Context, userID string) ([]*domain.LearningSession, error) {
			return sessions, nil
		},
	}
	svc := NewService(slog.Default(), mock, config.ContinuityConfig{
		DefaultLimit:     5,
		MaxLimit:         20,
		StalenessHorizon: 72 * time.Hour,
	}, clock.Fixed(now))
	return svc, mock
}

func open(id string, progress float64, ago time.Duration) *domain.LearningSession {
	return &domain.LearningSession{
		ID:              id,
		UserID:          "u1",
		ActivityType:    domain.ActivityTypeReading,
		Platform:        domain.PlatformOpenExploration,
		ProgressPercent: progress,
		LastAccessedAt:  now.Add(-ago),
	}
}

func ids(items []domain.ContinuationItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Session.ID)
	}
	return out
}

func TestRank_ConcreteScenario(t *testing.T) {
	t.Parallel()

	a := open("A", 85, time.Hour)
	a.ActivityType = domain.ActivityTypeVideo
	a.Platform = domain.PlatformStructuredCourse

	svc, mock := newTestService(t, []*domain.LearningSession{a})

	items, err := svc.Rank(context.Background(), "u1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items: got %d, want 1", len(items))
	}

	it := items[0]
	if it.PriorityScore != 1.0 {
		t.Errorf("score = %v, want 1.0", it.PriorityScore)
	}
	if it.Reason != domain.ReasonAlmostDone {
		t.Errorf("reason = %q, want %q", it.Reason, domain.ReasonAlmostDone)
	}
	if it.StaleInHours != 71 {
		t.Errorf("stale in hours = %v, want 71", it.StaleInHours)
	}
	if len(mock.ListByUserCalls()) != 1 || mock.ListByUserCalls()[0].UserID != "u1" {
		t.Errorf("ListByUser calls = %+v", mock.ListByUserCalls())
	}
}

func TestRank_FiltersIneligible(t *testing.T) {
	t.Parallel()

	done := open("done", 100, time.Hour)
	done.IsCompleted = true
	notStarted := open("fresh", 0, time.Hour)

	svc, _ := newTestService(t, []*domain.LearningSession{done, notStarted, open("open", 30, time.Hour)})

	items, err := svc.Rank(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(items); len(got) != 1 || got[0] != "open" {
		t.Errorf("ranked = %v, want [open]", got)
	}
}

func TestRank_OrderAndTieBreak(t *testing.T) {
	t.Parallel()

	// Scores: recent 1.0, halfway 2.5, the three ties 3.0, stale 4.0.
	sessions := []*domain.LearningSession{
		open("stale", 30, 100*time.Hour),
		open("tie-old", 30, 10*time.Hour),
		open("tie-new", 30, 8*time.Hour),
		open("recent", 30, 30*time.Minute),
		open("tie-new-b", 30, 8*time.Hour),
		open("halfway", 60, 20*time.Hour),
	}
	svc, _ := newTestService(t, sessions)

	items, err := svc.Rank(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"recent", "halfway", "tie-new", "tie-new-b", "tie-old", "stale"}
	got := ids(items)
	if len(got) != len(want) {
		t.Fatalf("ranked = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ranked = %v, want %v", got, want)
		}
	}

	if items[len(items)-1].StaleInHours != 0 {
		t.Errorf("stale item budget = %v, want 0", items[len(items)-1].StaleInHours)
	}
}

func TestRank_Deterministic(t *testing.T) {
	t.Parallel()

	sessions := []*domain.LearningSession{
		open("c", 30, 10*time.Hour),
		open("a", 30, 10*time.Hour),
		open("b", 30, 10*time.Hour),
		open("d", 90, 70*time.Hour),
	}
	svc, _ := newTestService(t, sessions)
	ctx := context.Background()

	first, err := svc.Rank(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Rank(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, b := ids(first), ids(second)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("rank not deterministic: %v vs %v", a, b)
		}
	}
	if a[0] != "a" || a[1] != "b" || a[2] != "c" {
		t.Errorf("equal candidates should sort by id, got %v", a)
	}
}

func TestRank_Limit(t *testing.T) {
	t.Parallel()

	var sessions []*domain.LearningSession
	for i := range 8 {
		sessions = append(sessions, open(string(rune('a'+i)), 30, time.Duration(i+1)*time.Hour))
	}
	svc, _ := newTestService(t, sessions)
	ctx := context.Background()

	none, err := svc.Rank(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("limit 0: got %v, want empty", none)
	}

	def, err := svc.Rank(ctx, "u1", svc.DefaultLimit())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(def) != 5 {
		t.Errorf("default limit: got %d items, want 5", len(def))
	}

	two, err := svc.Rank(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(two) != 2 {
		t.Errorf("limit 2: got %d items", len(two))
	}
}

func TestRank_Validation(t *testing.T) {
	t.Parallel()

	svc, mock := newTestService(t, nil)
	ctx := context.Background()

	for _, tc := range []struct {
		userID string
		limit  int
	}{
		{"", 5},
		{"u1", -1},
		{"u1", 21},
	} {
		_, err := svc.Rank(ctx, tc.userID, tc.limit)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Rank(%q, %d): expected ErrValidation, got %v", tc.userID, tc.limit, err)
		}
	}
	if len(mock.ListByUserCalls()) != 0 {
		t.Errorf("ListByUser should not be called on invalid input")
	}
}

func TestRank_Empty(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil)

	items, err := svc.Rank(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("items = %v, want empty non-nil slice", items)
	}
}

func TestRank_StorageError(t *testing.T) {
	t.Parallel()

	mock := &sessionListerMock{
		ListByUserFunc: func(ctx context.Context, userID string) ([]*domain.LearningSession, error) {
			return nil, domain.NewStorageError("list", "users/u1/sessions/", errors.New("down"))
		},
	}
	svc := NewService(slog.Default(), mock, config.ContinuityConfig{DefaultLimit: 5, MaxLimit: 20, StalenessHorizon: 72 * time.Hour}, clock.Fixed(now))

	_, err := svc.Rank(context.Background(), "u1", 0)
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
