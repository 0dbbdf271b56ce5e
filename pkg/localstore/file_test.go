package localstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/craftmarket/storefront-go/pkg/localstore"
)

func TestFile_CRUD(t *testing.T) {
	t.Parallel()

	t.Run("requires a directory", func(t *testing.T) {
		t.Parallel()

		_, err := localstore.NewFile("  ")
		require.Error(t, err)
	})

	t.Run("creates the state directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "state")
		_, err := localstore.NewFile(dir)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		t.Parallel()

		store := newFileStore(t)
		require.NoError(t, store.Set("session.json", []byte(`{"token":"abc"}`)))

		got, err := store.Get("session.json")
		require.NoError(t, err)
		require.JSONEq(t, `{"token":"abc"}`, string(got))
	})

	t.Run("set overwrites previous value", func(t *testing.T) {
		t.Parallel()

		store := newFileStore(t)
		require.NoError(t, store.Set("key", []byte("one")))
		require.NoError(t, store.Set("key", []byte("two")))

		got, err := store.Get("key")
		require.NoError(t, err)
		require.Equal(t, []byte("two"), got)
	})

	t.Run("get returns ErrNotFound for absent key", func(t *testing.T) {
		t.Parallel()

		store := newFileStore(t)
		_, err := store.Get("missing")
		require.ErrorIs(t, err, localstore.ErrNotFound)
	})

	t.Run("delete removes and is idempotent", func(t *testing.T) {
		t.Parallel()

		store := newFileStore(t)
		require.NoError(t, store.Set("key", []byte("v")))
		require.NoError(t, store.Delete("key"))
		require.NoError(t, store.Delete("key"))

		_, err := store.Get("key")
		require.ErrorIs(t, err, localstore.ErrNotFound)
	})

	t.Run("rejects path-escaping keys", func(t *testing.T) {
		t.Parallel()

		store := newFileStore(t)
		for _, key := range []string{"", ".", "..", "a/b", `a\b`} {
			_, err := store.Get(key)
			require.ErrorIs(t, err, localstore.ErrInvalidKey, "key %q", key)
			require.ErrorIs(t, store.Set(key, nil), localstore.ErrInvalidKey, "key %q", key)
		}
	})

	t.Run("values written with restricted permissions", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store, err := localstore.NewFile(dir)
		require.NoError(t, err)
		require.NoError(t, store.Set("secret", []byte("token")))

		info, err := os.Stat(filepath.Join(dir, "secret"))
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})
}

func TestFile_Watch(t *testing.T) {
	t.Parallel()

	t.Run("observes writes from another store instance", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		watchSide, err := localstore.NewFile(dir)
		require.NoError(t, err)
		writeSide, err := localstore.NewFile(dir)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, err := watchSide.Watch(ctx)
		require.NoError(t, err)

		require.NoError(t, writeSide.Set("session.json", []byte(`{"token":"abc"}`)))

		ev := awaitKey(t, events, "session.json")
		require.Equal(t, localstore.OpSet, ev.Op)
	})

	t.Run("observes deletes", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store, err := localstore.NewFile(dir)
		require.NoError(t, err)
		require.NoError(t, store.Set("auth_token", []byte("tok")))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, err := store.Watch(ctx)
		require.NoError(t, err)

		require.NoError(t, store.Delete("auth_token"))

		ev := awaitKey(t, events, "auth_token")
		require.Equal(t, localstore.OpDelete, ev.Op)
	})
}

// awaitKey drains events until one matches the key; atomic writes may
// surface intermediate directory events first.
func awaitKey(t *testing.T, events <-chan localstore.Event, key string) localstore.Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatal("watch channel closed early")
			}
			if ev.Key == key {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event on %q", key)
		}
	}
}

func newFileStore(t *testing.T) *localstore.File {
	t.Helper()
	store, err := localstore.NewFile(t.TempDir())
	require.NoError(t, err)
	return store
}
