package postgres

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// TableName is the table created by the kv_records migration.
const TableName = "kv_records"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// record maps one kv_records row.
type record struct {
	Key   string `db:"key"`
	Value []byte `db:"value"`
}

// Store implements kv.Store on a single PostgreSQL table. Each Set is a
// single-statement upsert, so a reader never observes a partial value.
type Store struct {
	db Querier
}

// NewStore creates a Store over a pool (or any Querier).
func NewStore(db Querier) *Store {
	return &Store{db: db}
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := psql.
		Select("key", "value").
		From(TableName).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, wrapError(err, "build get", key)
	}

	var rec record
	if err := pgxscan.Get(ctx, s.db, &rec, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, false, nil
		}
		return nil, false, wrapError(err, "get", key)
	}

	return rec.Value, true, nil
}

// Set upserts value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := psql.
		Insert(TableName).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return wrapError(err, "build set", key)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return wrapError(err, "set", key)
	}
	return nil
}

// ListKeysByPrefix returns the keys starting with prefix in byte order.
func (s *Store) ListKeysByPrefix(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := psql.
		Select("key").
		From(TableName).
		Where(sq.Like{"key": escapeLike(prefix) + "%"}).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, wrapError(err, "build list", prefix)
	}

	var rows []struct {
		Key string `db:"key"`
	}
	if err := pgxscan.Select(ctx, s.db, &rows, query, args...); err != nil {
		return nil, wrapError(err, "list", prefix)
	}

	keys := make([]string, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, r.Key)
	}
	return keys, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// escapeLike escapes LIKE metacharacters using the default backslash escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
