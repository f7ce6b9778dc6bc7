package config

import (
	"time"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	SQLite     SQLiteConfig     `yaml:"sqlite"`
	Log        LogConfig        `yaml:"log"`
	Streak     StreakConfig     `yaml:"streak"`
	Continuity ContinuityConfig `yaml:"continuity"`
	Retention  RetentionConfig  `yaml:"retention"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-User-Id,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"600"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD" env-default:"30s"`
	ConnectTimeout    time.Duration `yaml:"connect_timeout"     env:"DATABASE_CONNECT_TIMEOUT"     env-default:"5s"`
	StatementTimeout  time.Duration `yaml:"statement_timeout"   env:"DATABASE_STATEMENT_TIMEOUT"   env-default:"5s"` // 0 keeps the server default
	ApplicationName   string        `yaml:"application_name"    env:"DATABASE_APPLICATION_NAME"    env-default:"learning-continuity"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	URL       string `yaml:"url"       env:"REDIS_URL"       env-default:"redis://localhost:6379/0"`
	Namespace string `yaml:"namespace" env:"REDIS_NAMESPACE" env-default:"continuity:"`
}

// SQLiteConfig holds the embedded database location.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"./data/continuity.db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StreakConfig holds calendar and goal defaults for streak bookkeeping.
type StreakConfig struct {
	Timezone          string `yaml:"timezone"            env:"STREAK_TIMEZONE"            env-default:"UTC"`
	WeekStart         string `yaml:"week_start"          env:"STREAK_WEEK_START"          env-default:"monday"`
	DailyGoalMinutes  int    `yaml:"daily_goal_minutes"  env:"STREAK_DAILY_GOAL_MINUTES"  env-default:"30"`
	WeeklyGoalMinutes int    `yaml:"weekly_goal_minutes" env:"STREAK_WEEKLY_GOAL_MINUTES" env-default:"150"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
	// FirstWeekday is resolved from WeekStart during validation.
	FirstWeekday time.Weekday `yaml:"-" env:"-"`
}

// ContinuityConfig holds ranking parameters.
type ContinuityConfig struct {
	DefaultLimit     int           `yaml:"default_limit"     env:"CONTINUITY_DEFAULT_LIMIT"     env-default:"5"`
	MaxLimit         int           `yaml:"max_limit"         env:"CONTINUITY_MAX_LIMIT"         env-default:"50"`
	StalenessHorizon time.Duration `yaml:"staleness_horizon" env:"CONTINUITY_STALENESS_HORIZON" env-default:"72h"`
}

// RetentionConfig holds archive sweep settings.
type RetentionConfig struct {
	ArchiveAfter     time.Duration `yaml:"archive_after"     env:"RETENTION_ARCHIVE_AFTER"     env-default:"2160h"`
	SweepConcurrency int           `yaml:"sweep_concurrency" env:"RETENTION_SWEEP_CONCURRENCY" env-default:"8"`
}
