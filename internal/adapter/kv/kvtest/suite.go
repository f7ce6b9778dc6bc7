// Package kvtest holds a behavioural test suite shared by every kv.Store backend.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/learning-continuity/internal/adapter/kv"
)

// RunStoreSuite exercises the get/set/list contract against a fresh store
// returned by newStore for every subtest.
func RunStoreSuite(t *testing.T, newStore func(t *testing.T) kv.Store) {
	t.Helper()

	t.Run("get absent key", func(t *testing.T) {
		store := newStore(t)

		value, ok, err := store.Get(context.Background(), "missing/key")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "sessions/s1", []byte(`{"id":"s1"}`)))

		value, ok, err := store.Get(ctx, "sessions/s1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `{"id":"s1"}`, string(value))
	})

	t.Run("set overwrites", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "streaks/u1", []byte("one")))
		require.NoError(t, store.Set(ctx, "streaks/u1", []byte("two")))

		value, ok, err := store.Get(ctx, "streaks/u1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "two", string(value))
	})

	t.Run("list keys by prefix", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		for _, key := range []string{
			"users/u1/sessions/0002/b",
			"users/u1/sessions/0001/a",
			"users/u10/sessions/0001/c",
			"users/u2/sessions/0001/d",
			"sessions/a",
		} {
			require.NoError(t, store.Set(ctx, key, []byte("x")))
		}

		keys, err := store.ListKeysByPrefix(ctx, "users/u1/")
		require.NoError(t, err)
		assert.Equal(t, []string{"users/u1/sessions/0001/a", "users/u1/sessions/0002/b"}, keys)

		none, err := store.ListKeysByPrefix(ctx, "users/u3/")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("prefix with pattern characters is literal", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "tags/a%b/1", []byte("x")))
		require.NoError(t, store.Set(ctx, "tags/axb/1", []byte("x")))
		require.NoError(t, store.Set(ctx, "tags/a*b/1", []byte("x")))

		keys, err := store.ListKeysByPrefix(ctx, "tags/a%b/")
		require.NoError(t, err)
		assert.Equal(t, []string{"tags/a%b/1"}, keys)

		keys, err = store.ListKeysByPrefix(ctx, "tags/a*b/")
		require.NoError(t, err)
		assert.Equal(t, []string{"tags/a*b/1"}, keys)
	})

	t.Run("values are copied", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		buf := []byte("original")
		require.NoError(t, store.Set(ctx, "copy/k", buf))
		buf[0] = 'X'

		value, _, err := store.Get(ctx, "copy/k")
		require.NoError(t, err)
		assert.Equal(t, "original", string(value))
	})
}
