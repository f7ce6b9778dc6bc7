package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func render(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown output format %q (want yaml or json)", format)
}

type sweepReport struct {
	Scanned  int  `yaml:"scanned"  json:"scanned"`
	Archived int  `yaml:"archived" json:"archived"`
	DryRun   bool `yaml:"dry_run"  json:"dry_run"`
}

type rankRow struct {
	SessionID    string   `yaml:"session_id"     json:"session_id"`
	Title        string   `yaml:"title"          json:"title"`
	Score        float64  `yaml:"score"          json:"score"`
	Reason       string   `yaml:"reason"         json:"reason"`
	StaleInHours float64  `yaml:"stale_in_hours" json:"stale_in_hours"`
	Actions      []string `yaml:"actions"        json:"actions"`
}

type rankReport struct {
	Items []rankRow `yaml:"items" json:"items"`
}

func toRankReport(items []domain.ContinuationItem) rankReport {
	rep := rankReport{Items: make([]rankRow, 0, len(items))}
	for _, it := range items {
		row := rankRow{
			SessionID:    it.Session.ID,
			Title:        it.Session.Title,
			Score:        it.PriorityScore,
			Reason:       it.ReasonText,
			StaleInHours: it.StaleInHours,
		}
		for _, a := range it.SuggestedActions {
			row.Actions = append(row.Actions, a.Label)
		}
		rep.Items = append(rep.Items, row)
	}
	return rep
}

type insightsReport struct {
	TotalSessions           int      `yaml:"total_sessions"             json:"total_sessions"`
	CompletedSessions       int      `yaml:"completed_sessions"         json:"completed_sessions"`
	InProgressSessions      int      `yaml:"in_progress_sessions"       json:"in_progress_sessions"`
	TotalTimeStudiedMinutes int      `yaml:"total_time_studied_minutes" json:"total_time_studied_minutes"`
	AverageSessionMinutes   float64  `yaml:"average_session_minutes"    json:"average_session_minutes"`
	CompletionRate          float64  `yaml:"completion_rate"            json:"completion_rate"`
	PreferredStudyWindow    string   `yaml:"preferred_study_window"     json:"preferred_study_window"`
	StrongestSubjects       []string `yaml:"strongest_subjects"         json:"strongest_subjects"`
	RecommendedFocus        []string `yaml:"recommended_focus"          json:"recommended_focus"`
}

func toInsightsReport(in domain.Insights) insightsReport {
	rep := insightsReport{
		TotalSessions:           in.TotalSessions,
		CompletedSessions:       in.CompletedSessions,
		InProgressSessions:      in.InProgressSessions,
		TotalTimeStudiedMinutes: in.TotalTimeStudiedMinutes,
		AverageSessionMinutes:   in.AverageSessionMinutes,
		CompletionRate:          in.CompletionRate,
		PreferredStudyWindow:    string(in.PreferredStudyWindow),
		StrongestSubjects:       in.StrongestSubjects,
	}
	for _, s := range in.RecommendedFocus {
		rep.RecommendedFocus = append(rep.RecommendedFocus, s.ID)
	}
	return rep
}

type streakReport struct {
	CurrentStreak         int    `yaml:"current_streak"          json:"current_streak"`
	LongestStreak         int    `yaml:"longest_streak"          json:"longest_streak"`
	LastStudyDate         string `yaml:"last_study_date"         json:"last_study_date"`
	TodayProgressMinutes  int    `yaml:"today_progress_minutes"  json:"today_progress_minutes"`
	DailyGoalMinutes      int    `yaml:"daily_goal_minutes"      json:"daily_goal_minutes"`
	WeeklyProgressMinutes int    `yaml:"weekly_progress_minutes" json:"weekly_progress_minutes"`
	WeeklyGoalMinutes     int    `yaml:"weekly_goal_minutes"     json:"weekly_goal_minutes"`
}

func toStreakReport(s *domain.StudyStreak) streakReport {
	rep := streakReport{
		CurrentStreak:         s.CurrentStreak,
		LongestStreak:         s.LongestStreak,
		TodayProgressMinutes:  s.TodayProgressMinutes,
		DailyGoalMinutes:      s.DailyGoalMinutes,
		WeeklyProgressMinutes: s.WeeklyProgressMinutes,
		WeeklyGoalMinutes:     s.WeeklyGoalMinutes,
	}
	if !s.LastStudyDate.IsZero() {
		rep.LastStudyDate = s.LastStudyDate.Format("2006-01-02")
	}
	return rep
}
