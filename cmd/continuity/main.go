// Command continuity runs the learning continuity engine: the HTTP API, the
// retention sweep, database migrations and read-only reports for operators.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/learning-continuity/internal/adapter/postgres"
	"github.com/heartmarshall/learning-continuity/internal/app"
	"github.com/heartmarshall/learning-continuity/internal/config"
	"github.com/heartmarshall/learning-continuity/internal/service/session"
	"github.com/heartmarshall/learning-continuity/migrations"
	"github.com/heartmarshall/learning-continuity/pkg/clock"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	output     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "continuity",
		Short:         "Learning continuity engine",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (overrides CONFIG_PATH)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", formatYAML, "report format: yaml or json")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newMigrateCmd(opts))
	root.AddCommand(newSweepCmd(opts))
	root.AddCommand(newRankCmd(opts))
	root.AddCommand(newInsightsCmd(opts))
	root.AddCommand(newStreakCmd(opts))
	return root
}

func loadConfig(opts *rootOptions) (*config.Config, *slog.Logger, error) {
	if opts.configPath != "" {
		if err := os.Setenv("CONFIG_PATH", opts.configPath); err != nil {
			return nil, nil, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, app.NewLogger(cfg), nil
}

// withEngine opens storage, wires the engine and runs fn against it.
func withEngine(ctx context.Context, opts *rootOptions, fn func(*config.Config, *slog.Logger, *app.Engine) error) error {
	cfg, logger, err := loadConfig(opts)
	if err != nil {
		return err
	}

	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close() //nolint:errcheck

	return fn(cfg, logger, app.NewEngine(logger, storage.Store, cfg, clock.System{}))
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx, cfg, logger)
		},
	}
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if cfg.Database.DSN == "" {
				return errors.New("migrate: database.dsn is not set")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			applied, err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS)
			if err != nil {
				return err
			}
			logger.InfoContext(ctx, "migrations applied", slog.Int("count", applied))
			return nil
		},
	}
}

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var (
		dryRun    bool
		olderThan time.Duration
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Archive completed sessions not accessed within the retention window",
		Long: "Archive completed sessions not accessed within the retention window.\n" +
			"Intended to be invoked by an external scheduler.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Minute)
			defer cancel()

			return withEngine(ctx, opts, func(cfg *config.Config, logger *slog.Logger, engine *app.Engine) error {
				input := session.ArchiveInput{
					OlderThan:   cfg.Retention.ArchiveAfter,
					Concurrency: cfg.Retention.SweepConcurrency,
					DryRun:      dryRun,
				}
				if olderThan > 0 {
					input.OlderThan = olderThan
				}

				res, err := engine.Sessions.ArchiveCompleted(ctx, input)
				if err != nil {
					logger.ErrorContext(ctx, "retention sweep failed", slog.String("error", err.Error()))
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, sweepReport{
					Scanned:  res.Scanned,
					Archived: res.Archived,
					DryRun:   dryRun,
				})
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "count candidates without archiving")
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "override retention.archive_after")
	return cmd
}

func newRankCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rank <user-id>",
		Short: "Print a user's continue-learning list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withEngine(ctx, opts, func(cfg *config.Config, _ *slog.Logger, engine *app.Engine) error {
				if !cmd.Flags().Changed("limit") {
					limit = cfg.Continuity.DefaultLimit
				}
				items, err := engine.Continuity.Rank(ctx, args[0], limit)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, toRankReport(items))
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum items (defaults to continuity.default_limit)")
	return cmd
}

func newInsightsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insights <user-id>",
		Short: "Print statistics over a user's full history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withEngine(ctx, opts, func(_ *config.Config, _ *slog.Logger, engine *app.Engine) error {
				in, err := engine.Insights.GetInsights(ctx, args[0])
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, toInsightsReport(in))
			})
		},
	}
}

func newStreakCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "streak <user-id>",
		Short: "Print a user's streak and goal progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withEngine(ctx, opts, func(_ *config.Config, _ *slog.Logger, engine *app.Engine) error {
				s, err := engine.Streaks.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, toStreakReport(s))
			})
		},
	}
}
