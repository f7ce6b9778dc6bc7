package app

import (
	"log/slog"

	"github.com/heartmarshall/learning-continuity/internal/adapter/kv"
	sessionrepo "github.com/heartmarshall/learning-continuity/internal/adapter/repo/session"
	streakrepo "github.com/heartmarshall/learning-continuity/internal/adapter/repo/streak"
	"github.com/heartmarshall/learning-continuity/internal/config"
	"github.com/heartmarshall/learning-continuity/internal/service/continuity"
	"github.com/heartmarshall/learning-continuity/internal/service/insights"
	"github.com/heartmarshall/learning-continuity/internal/service/session"
	"github.com/heartmarshall/learning-continuity/internal/service/streak"
	"github.com/heartmarshall/learning-continuity/pkg/clock"
)

// Engine groups the services that make up the continuity engine.
type Engine struct {
	Sessions   *session.Service
	Streaks    *streak.Service
	Continuity *continuity.Service
	Insights   *insights.Service
}

// NewEngine wires repositories and services over one key-value store.
func NewEngine(logger *slog.Logger, store kv.Store, cfg *config.Config, clk clock.Clock) *Engine {
	streaks := streak.NewService(logger, streakrepo.New(store), cfg.Streak, clk)
	sessions := session.NewService(logger, sessionrepo.New(store), streaks, clk)

	return &Engine{
		Sessions:   sessions,
		Streaks:    streaks,
		Continuity: continuity.NewService(logger, sessions, cfg.Continuity, clk),
		Insights:   insights.NewService(logger, sessions, cfg.Streak.Location),
	}
}
