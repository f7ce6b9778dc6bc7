package app

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/learning-continuity/internal/config"
	"github.com/heartmarshall/learning-continuity/internal/transport/middleware"
	"github.com/heartmarshall/learning-continuity/pkg/clock"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Driver: driver},
		Streak: config.StreakConfig{
			DailyGoalMinutes:  30,
			WeeklyGoalMinutes: 150,
			Location:          time.UTC,
			FirstWeekday:      time.Monday,
		},
		Continuity: config.ContinuityConfig{DefaultLimit: 5, MaxLimit: 50, StalenessHorizon: 72 * time.Hour},
		CORS:       config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,PUT,POST", AllowedHeaders: "Content-Type"},
		RateLimit:  config.RateLimitConfig{RequestsPerMinute: 2, CleanupInterval: time.Minute},
	}
}

func TestOpenStorage_Memory(t *testing.T) {
	t.Parallel()

	s, err := OpenStorage(context.Background(), testConfig(config.DriverMemory), slog.Default())
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, config.DriverMemory, s.Driver)
	assert.NoError(t, s.Pinger.Ping(context.Background()))
}

func TestOpenStorage_SQLite(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.DriverSQLite)
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "engine.db")

	s, err := OpenStorage(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Store.Set(context.Background(), "k", []byte("v")))
	assert.NoError(t, s.Pinger.Ping(context.Background()))
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := OpenStorage(context.Background(), testConfig("etcd"), slog.Default())
	assert.ErrorContains(t, err, `unknown storage driver "etcd"`)
}

func TestNewHTTPHandler_ServesAPIWithMiddleware(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.DriverMemory)
	storage, err := OpenStorage(context.Background(), cfg, slog.Default())
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	engine := NewEngine(logger, storage.Store, cfg, clock.Fixed(time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)))

	handler, stop := NewHTTPHandler(cfg, logger, engine, storage)
	defer stop()

	req := httptest.NewRequest(http.MethodGet, "/v1/streak", nil)
	req.Header.Set(middleware.UserIDHeader, "u1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// No study recorded yet.
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Contains(t, logs.String(), `"user_id":"u1"`)

	// Anonymous requests share the host bucket; the third exceeds two per minute.
	for range 3 {
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	}
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
