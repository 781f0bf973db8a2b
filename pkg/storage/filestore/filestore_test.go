package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"chaibisket/pkg/logger"
	"chaibisket/pkg/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	log := logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
	store, err := New(t.TempDir(), log)
	require.NoError(t, err)
	return store
}

func TestSetGetRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, storage.KeyCart)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Set(ctx, storage.KeyCart, []byte(`[{"id":1,"quantity":2}]`)))

	value, err := store.Get(ctx, storage.KeyCart)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":1,"quantity":2}]`, string(value))

	require.NoError(t, store.Remove(ctx, storage.KeyCart))
	_, err = store.Get(ctx, storage.KeyCart)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSetOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeySession, []byte(`{"email":"a@example.com"}`)))
	require.NoError(t, store.Set(ctx, storage.KeySession, []byte(`{"email":"b@example.com"}`)))

	value, err := store.Get(ctx, storage.KeySession)
	require.NoError(t, err)
	require.JSONEq(t, `{"email":"b@example.com"}`, string(value))
}

func TestRemoveAbsentKey(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Remove(context.Background(), storage.KeyOrders))
}

func TestRejectsPathEscapingKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "../etc/passwd", "a/b", `a\b`, "a..b"} {
		require.Error(t, store.Set(ctx, key, []byte("x")), "key %q", key)
		_, err := store.Get(ctx, key)
		require.Error(t, err, "key %q", key)
	}
}

func TestLeavesNoTempFilesBehind(t *testing.T) {
	log := logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
	dir := t.TempDir()
	store, err := New(dir, log)
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), storage.KeyUsers, []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, storage.KeyUsers+".json", filepath.Base(entries[0].Name()))
}
