package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

// AddBookmark appends a bookmark to a session. Position is the place inside
// the content; CreatedAt is when the bookmark was made.
func (s *Service) AddBookmark(ctx context.Context, input AddBookmarkInput) (*domain.Bookmark, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	now := s.clock.Now()
	bookmark := domain.Bookmark{
		ID:        uuid.New().String(),
		Position:  input.Position,
		Title:     strings.TrimSpace(input.Title),
		Note:      trimOrNil(input.Note),
		CreatedAt: now,
	}
	session.Bookmarks = append(session.Bookmarks, bookmark)
	session.LastAccessedAt = now

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.log.InfoContext(ctx, "bookmark added",
		slog.String("user_id", session.UserID),
		slog.String("session_id", session.ID),
		slog.String("bookmark_id", bookmark.ID),
		slog.Float64("position", bookmark.Position),
	)

	return &bookmark, nil
}
