// Package streak persists per-user study streaks in a kv.Store under
// streaks/<user>.
package streak

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/learning-continuity/internal/adapter/kv"
	"github.com/heartmarshall/learning-continuity/internal/domain"
)

type record struct {
	UserID                string    `json:"user_id"`
	CurrentStreak         int       `json:"current_streak"`
	LongestStreak         int       `json:"longest_streak"`
	LastStudyDate         time.Time `json:"last_study_date"`
	DailyGoalMinutes      int       `json:"daily_goal_minutes"`
	TodayProgressMinutes  int       `json:"today_progress_minutes"`
	WeeklyGoalMinutes     int       `json:"weekly_goal_minutes"`
	WeeklyProgressMinutes int       `json:"weekly_progress_minutes"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// Repo stores one streak record per user.
type Repo struct {
	store kv.Store
}

// New creates a Repo on top of store.
func New(store kv.Store) *Repo {
	return &Repo{store: store}
}

func recordKey(userID string) string {
	return kv.Key("streaks", userID)
}

// Get returns the user's streak or domain.ErrNotFound if none was recorded.
func (r *Repo) Get(ctx context.Context, userID string) (*domain.StudyStreak, error) {
	key := recordKey(userID)
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, domain.NewStorageError("get", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("streak for %s: %w", userID, domain.ErrNotFound)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, domain.NewStorageError("decode", key, err)
	}

	return &domain.StudyStreak{
		UserID:                rec.UserID,
		CurrentStreak:         rec.CurrentStreak,
		LongestStreak:         rec.LongestStreak,
		LastStudyDate:         rec.LastStudyDate,
		DailyGoalMinutes:      rec.DailyGoalMinutes,
		TodayProgressMinutes:  rec.TodayProgressMinutes,
		WeeklyGoalMinutes:     rec.WeeklyGoalMinutes,
		WeeklyProgressMinutes: rec.WeeklyProgressMinutes,
		UpdatedAt:             rec.UpdatedAt,
	}, nil
}

// Save replaces the user's streak record.
func (r *Repo) Save(ctx context.Context, s *domain.StudyStreak) error {
	key := recordKey(s.UserID)
	raw, err := json.Marshal(record{
		UserID:                s.UserID,
		CurrentStreak:         s.CurrentStreak,
		LongestStreak:         s.LongestStreak,
		LastStudyDate:         s.LastStudyDate,
		DailyGoalMinutes:      s.DailyGoalMinutes,
		TodayProgressMinutes:  s.TodayProgressMinutes,
		WeeklyGoalMinutes:     s.WeeklyGoalMinutes,
		WeeklyProgressMinutes: s.WeeklyProgressMinutes,
		UpdatedAt:             s.UpdatedAt,
	})
	if err != nil {
		return domain.NewStorageError("encode", key, err)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		return domain.NewStorageError("set", key, err)
	}
	return nil
}
