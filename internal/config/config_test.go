package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// chdirTemp moves into an empty temp dir so no stray config.yaml or .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	return dir
}

func validConfig() *Config {
	return &Config{
		Storage: StorageConfig{Driver: DriverMemory},
		Streak: StreakConfig{
			Timezone:          "UTC",
			WeekStart:         "monday",
			DailyGoalMinutes:  30,
			WeeklyGoalMinutes: 150,
		},
		Continuity: ContinuityConfig{DefaultLimit: 5, MaxLimit: 50, StalenessHorizon: 72 * time.Hour},
		Retention:  RetentionConfig{ArchiveAfter: 90 * 24 * time.Hour, SweepConcurrency: 4},
		RateLimit:  RateLimitConfig{RequestsPerMinute: 60, CleanupInterval: time.Minute},
	}
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

storage:
  driver: "postgres"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

log:
  level: "debug"
  format: "text"

streak:
  timezone: "Europe/Berlin"
  week_start: "sun"
  daily_goal_minutes: 20
  weekly_goal_minutes: 100

continuity:
  default_limit: 3
  max_limit: 10
  staleness_horizon: "48h"

retention:
  archive_after: "720h"
  sweep_concurrency: 2
`

func TestLoad_ValidYAML(t *testing.T) {
	chdirTemp(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Storage.Driver != DriverPostgres {
		t.Errorf("storage.driver = %q, want %q", cfg.Storage.Driver, DriverPostgres)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	if cfg.Streak.Location == nil || cfg.Streak.Location.String() != "Europe/Berlin" {
		t.Errorf("streak.location = %v, want Europe/Berlin", cfg.Streak.Location)
	}
	if cfg.Streak.FirstWeekday != time.Sunday {
		t.Errorf("streak.first_weekday = %v, want Sunday", cfg.Streak.FirstWeekday)
	}
	if cfg.Streak.DailyGoalMinutes != 20 {
		t.Errorf("streak.daily_goal_minutes = %d, want 20", cfg.Streak.DailyGoalMinutes)
	}

	if cfg.Continuity.DefaultLimit != 3 || cfg.Continuity.MaxLimit != 10 {
		t.Errorf("continuity limits = %d/%d, want 3/10", cfg.Continuity.DefaultLimit, cfg.Continuity.MaxLimit)
	}
	if cfg.Continuity.StalenessHorizon != 48*time.Hour {
		t.Errorf("continuity.staleness_horizon = %v, want 48h", cfg.Continuity.StalenessHorizon)
	}
	if cfg.Retention.ArchiveAfter != 720*time.Hour {
		t.Errorf("retention.archive_after = %v, want 720h", cfg.Retention.ArchiveAfter)
	}

	// Defaults for sections absent from YAML.
	if cfg.Redis.Namespace != "continuity:" {
		t.Errorf("redis.namespace = %q, want default", cfg.Redis.Namespace)
	}
	if cfg.RateLimit.RequestsPerMinute != 600 {
		t.Errorf("rate_limit.requests_per_minute = %d, want 600", cfg.RateLimit.RequestsPerMinute)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	chdirTemp(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("STREAK_TIMEZONE", "Asia/Tokyo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Streak.Location.String() != "Asia/Tokyo" {
		t.Errorf("streak.location = %v, want Asia/Tokyo (ENV override)", cfg.Streak.Location)
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverMemory {
		t.Errorf("storage.driver = %q, want memory (default)", cfg.Storage.Driver)
	}
	if cfg.Continuity.DefaultLimit != 5 {
		t.Errorf("continuity.default_limit = %d, want 5", cfg.Continuity.DefaultLimit)
	}
	if cfg.Continuity.StalenessHorizon != 72*time.Hour {
		t.Errorf("continuity.staleness_horizon = %v, want 72h", cfg.Continuity.StalenessHorizon)
	}
	if cfg.Streak.FirstWeekday != time.Monday {
		t.Errorf("streak.first_weekday = %v, want Monday", cfg.Streak.FirstWeekday)
	}
	if cfg.Database.HealthCheckPeriod != 30*time.Second || cfg.Database.StatementTimeout != 5*time.Second {
		t.Errorf("database timings = %v/%v, want 30s/5s", cfg.Database.HealthCheckPeriod, cfg.Database.StatementTimeout)
	}
	if cfg.Database.ApplicationName != "learning-continuity" {
		t.Errorf("database.application_name = %q, want learning-continuity", cfg.Database.ApplicationName)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ENV_FILE", "")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=7070\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("SERVER_PORT") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("server.port = %d, want 7070 from .env", cfg.Server.Port)
	}
}

func TestLoad_ExplicitEnvFileNotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ENV_FILE", "/nonexistent/.env")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit env file")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	chdirTemp(t)
	path := writeYAML(t, t.TempDir(), `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Streak.Location != time.UTC {
		t.Errorf("streak.location = %v, want UTC", cfg.Streak.Location)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.Storage.Driver = "mongo" }},
		{"postgres without dsn", func(c *Config) { c.Storage.Driver = DriverPostgres }},
		{"redis without url", func(c *Config) { c.Storage.Driver = DriverRedis }},
		{"sqlite without path", func(c *Config) { c.Storage.Driver = DriverSQLite }},
		{"bad timezone", func(c *Config) { c.Streak.Timezone = "Mars/Olympus" }},
		{"bad week start", func(c *Config) { c.Streak.WeekStart = "someday" }},
		{"negative daily goal", func(c *Config) { c.Streak.DailyGoalMinutes = -1 }},
		{"negative weekly goal", func(c *Config) { c.Streak.WeeklyGoalMinutes = -1 }},
		{"zero max limit", func(c *Config) { c.Continuity.MaxLimit = 0 }},
		{"default above max", func(c *Config) { c.Continuity.DefaultLimit = 51 }},
		{"zero default", func(c *Config) { c.Continuity.DefaultLimit = 0 }},
		{"zero horizon", func(c *Config) { c.Continuity.StalenessHorizon = 0 }},
		{"zero archive after", func(c *Config) { c.Retention.ArchiveAfter = 0 }},
		{"zero concurrency", func(c *Config) { c.Retention.SweepConcurrency = 0 }},
		{"negative rate limit", func(c *Config) { c.RateLimit.RequestsPerMinute = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_DriversWithSettings(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = DriverPostgres
	cfg.Database.DSN = "postgres://localhost/db"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("postgres: unexpected error: %v", err)
	}

	cfg.Storage.Driver = DriverRedis
	cfg.Redis.URL = "redis://localhost:6379/0"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("redis: unexpected error: %v", err)
	}

	cfg.Storage.Driver = DriverSQLite
	cfg.SQLite.Path = "/tmp/continuity.db"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sqlite: unexpected error: %v", err)
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want time.Weekday
	}{
		{"monday", time.Monday},
		{"Mon", time.Monday},
		{" SUNDAY ", time.Sunday},
		{"sat", time.Saturday},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.in)
		if err != nil {
			t.Errorf("ParseWeekday(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWeekday(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseWeekday("funday"); err == nil {
		t.Error("expected error for unknown weekday")
	}
}
