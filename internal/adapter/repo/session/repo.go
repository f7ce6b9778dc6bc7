// Package session persists learning sessions in a kv.Store.
//
// Layout:
//
//	sessions/<id>                               JSON record
//	users/<user>/sessions/<created-nanos>/<id>  empty per-user index entry
//	archived/<id>                               archive time (RFC 3339)
//
// The index key embeds the zero-padded creation time so that listing it
// yields insertion order. The archive marker is written separately so that
// archiving never rewrites a session record.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/learning-continuity/internal/adapter/kv"
	"github.com/heartmarshall/learning-continuity/internal/domain"
)

const (
	sessionsSegment = "sessions"
	usersSegment    = "users"
	archivedSegment = "archived"
)

// Repo stores sessions as JSON documents.
type Repo struct {
	store kv.Store
}

// New creates a Repo on top of store.
func New(store kv.Store) *Repo {
	return &Repo{store: store}
}

func recordKey(id string) string {
	return kv.Key(sessionsSegment, id)
}

func archivedKey(id string) string {
	return kv.Key(archivedSegment, id)
}

func indexKey(s *domain.LearningSession) string {
	return kv.Key(usersSegment, s.UserID, sessionsSegment, fmt.Sprintf("%020d", s.CreatedAt.UnixNano()), s.ID)
}

// GetByID returns the session with the given ID or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.LearningSession, error) {
	key := recordKey(id)
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, domain.NewStorageError("get", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, domain.NewStorageError("decode", key, err)
	}
	s := rec.toDomain()

	archivedAt, err := r.archivedAt(ctx, id)
	if err != nil {
		return nil, err
	}
	s.ArchivedAt = archivedAt
	return s, nil
}

func (r *Repo) archivedAt(ctx context.Context, id string) (*time.Time, error) {
	key := archivedKey(id)
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, domain.NewStorageError("get", key, err)
	}
	if !ok {
		return nil, nil
	}
	at, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return nil, domain.NewStorageError("decode", key, err)
	}
	return &at, nil
}

// Archive marks the session as archived at the given time. Only the marker
// key is written; the session record is left untouched.
func (r *Repo) Archive(ctx context.Context, id string, at time.Time) error {
	key := archivedKey(id)
	if err := r.store.Set(ctx, key, []byte(at.UTC().Format(time.RFC3339Nano))); err != nil {
		return domain.NewStorageError("set", key, err)
	}
	return nil
}

// Create stores a new session and its per-user index entry. The index entry
// is written first; a dangling entry left by a failed record write is skipped
// by ListByUser.
func (r *Repo) Create(ctx context.Context, s *domain.LearningSession) error {
	idx := indexKey(s)
	if err := r.store.Set(ctx, idx, []byte{}); err != nil {
		return domain.NewStorageError("set", idx, err)
	}
	return r.Update(ctx, s)
}

// Update replaces the stored record of an existing session. ArchivedAt is
// ignored; use Archive.
func (r *Repo) Update(ctx context.Context, s *domain.LearningSession) error {
	key := recordKey(s.ID)
	raw, err := json.Marshal(toRecord(s))
	if err != nil {
		return domain.NewStorageError("encode", key, err)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		return domain.NewStorageError("set", key, err)
	}
	return nil
}

// ListByUser returns the user's sessions in insertion order. Archived
// sessions are included only when includeArchived is set.
func (r *Repo) ListByUser(ctx context.Context, userID string, includeArchived bool) ([]*domain.LearningSession, error) {
	prefix := kv.Prefix(usersSegment, userID, sessionsSegment)
	keys, err := r.store.ListKeysByPrefix(ctx, prefix)
	if err != nil {
		return nil, domain.NewStorageError("list", prefix, err)
	}

	sessions := make([]*domain.LearningSession, 0, len(keys))
	for _, key := range keys {
		s, err := r.GetByID(ctx, kv.LastSegment(key))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if s.UserID != userID {
			continue
		}
		if s.IsArchived() && !includeArchived {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// ListIDs returns the IDs of every stored session, in key order.
func (r *Repo) ListIDs(ctx context.Context) ([]string, error) {
	prefix := kv.Prefix(sessionsSegment)
	keys, err := r.store.ListKeysByPrefix(ctx, prefix)
	if err != nil {
		return nil, domain.NewStorageError("list", prefix, err)
	}

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, kv.LastSegment(key))
	}
	return ids, nil
}
