package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Streak.validate(); err != nil {
		return fmt.Errorf("streak: %w", err)
	}

	if err := c.Continuity.validate(); err != nil {
		return fmt.Errorf("continuity: %w", err)
	}

	if c.Retention.ArchiveAfter <= 0 {
		return fmt.Errorf("retention.archive_after must be > 0 (got %v)", c.Retention.ArchiveAfter)
	}
	if c.Retention.SweepConcurrency < 1 {
		return fmt.Errorf("retention.sweep_concurrency must be >= 1 (got %d)", c.Retention.SweepConcurrency)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", DriverPostgres)
		}
	case DriverRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("redis.url is required for driver %q", DriverRedis)
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required for driver %q", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown driver %q", c.Storage.Driver)
	}
	return nil
}

func (s *StreakConfig) validate() error {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	day, err := ParseWeekday(s.WeekStart)
	if err != nil {
		return fmt.Errorf("week_start: %w", err)
	}
	s.FirstWeekday = day

	if s.DailyGoalMinutes < 0 {
		return fmt.Errorf("daily_goal_minutes must be >= 0 (got %d)", s.DailyGoalMinutes)
	}
	if s.WeeklyGoalMinutes < 0 {
		return fmt.Errorf("weekly_goal_minutes must be >= 0 (got %d)", s.WeeklyGoalMinutes)
	}
	return nil
}

func (c ContinuityConfig) validate() error {
	if c.MaxLimit < 1 {
		return fmt.Errorf("max_limit must be >= 1 (got %d)", c.MaxLimit)
	}
	if c.DefaultLimit < 1 || c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("default_limit must be in [1, %d] (got %d)", c.MaxLimit, c.DefaultLimit)
	}
	if c.StalenessHorizon <= 0 {
		return fmt.Errorf("staleness_horizon must be > 0 (got %v)", c.StalenessHorizon)
	}
	return nil
}

// ParseWeekday parses an English weekday name (case-insensitive, full or
// three-letter form).
func ParseWeekday(raw string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", raw)
}
