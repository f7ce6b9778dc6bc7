package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

// ArchiveResult summarises a retention sweep.
type ArchiveResult struct {
	Scanned  int
	Archived int
}

// ArchiveCompleted marks completed sessions whose LastAccessedAt is older
// than input.OlderThan as archived. Incomplete sessions are never touched.
// The sweep only writes the repo's archive marker and never rewrites a
// session record, so concurrent writes to the same session are kept.
func (s *Service) ArchiveCompleted(ctx context.Context, input ArchiveInput) (ArchiveResult, error) {
	if err := input.Validate(); err != nil {
		return ArchiveResult{}, err
	}

	ids, err := s.sessions.ListIDs(ctx)
	if err != nil {
		return ArchiveResult{}, fmt.Errorf("list session ids: %w", err)
	}

	now := s.clock.Now()
	cutoff := now.Add(-input.OlderThan)
	var archived atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(input.Concurrency)

	for _, id := range ids {
		g.Go(func() error {
			session, err := s.sessions.GetByID(gctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("get session %s: %w", id, err)
			}

			if !session.IsCompleted || session.IsArchived() || !session.LastAccessedAt.Before(cutoff) {
				return nil
			}

			if !input.DryRun {
				if err := s.sessions.Archive(gctx, id, now); err != nil {
					return fmt.Errorf("archive session %s: %w", id, err)
				}
			}
			archived.Add(1)
			return nil
		})
	}

	result := ArchiveResult{Scanned: len(ids)}
	if err := g.Wait(); err != nil {
		result.Archived = int(archived.Load())
		return result, err
	}
	result.Archived = int(archived.Load())

	s.log.InfoContext(ctx, "retention sweep completed",
		slog.Int("scanned", result.Scanned),
		slog.Int("archived", result.Archived),
		slog.Time("cutoff", cutoff),
		slog.Bool("dry_run", input.DryRun),
	)

	return result, nil
}
