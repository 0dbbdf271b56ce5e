package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftmarket/storefront-go/pkg/localstore"
	"github.com/craftmarket/storefront-go/pkg/session"
)

func TestStore_SetSession(t *testing.T) {
	t.Parallel()

	t.Run("populates in-memory state", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore(localstore.NewMemory())
		user := &session.User{ID: "u1", Email: "a@b.com"}
		store.SetSession(user, "tok-123")

		require.Equal(t, "tok-123", store.Token())
		require.Equal(t, user, store.User())
	})

	t.Run("survives a fresh hydration", func(t *testing.T) {
		t.Parallel()

		storage := localstore.NewMemory()
		first := session.NewStore(storage)
		user := &session.User{ID: "u1", Email: "a@b.com", AccountType: session.AccountSeller}
		first.SetSession(user, "tok-123")

		// Fresh store over the same storage simulates a restart.
		second := session.NewStore(storage)
		sess := session.NewHydrator(second).Hydrate(context.Background())

		require.Equal(t, "tok-123", sess.Token)
		require.Equal(t, user, sess.User)
	})

	t.Run("writes the legacy key by default", func(t *testing.T) {
		t.Parallel()

		storage := localstore.NewMemory()
		store := session.NewStore(storage)
		store.SetSession(&session.User{ID: "u1"}, "tok-123")

		raw, err := storage.Get(session.DefaultLegacyKey)
		require.NoError(t, err)
		require.Equal(t, "tok-123", string(raw))
	})

	t.Run("legacy write can be disabled", func(t *testing.T) {
		t.Parallel()

		storage := localstore.NewMemory()
		store := session.NewStore(storage, session.WithLegacyWrite(false))
		store.SetSession(&session.User{ID: "u1"}, "tok-123")

		_, err := storage.Get(session.DefaultLegacyKey)
		require.ErrorIs(t, err, localstore.ErrNotFound)
	})

	t.Run("storage failure degrades to memory-only", func(t *testing.T) {
		t.Parallel()

		storage := localstore.NewMemory()
		require.NoError(t, storage.Close()) // every write now fails

		store := session.NewStore(storage)
		store.SetSession(&session.User{ID: "u1"}, "tok-123")

		// No panic, no error; the session lives in memory.
		require.Equal(t, "tok-123", store.Token())
	})
}

func TestStore_ClearSession(t *testing.T) {
	t.Parallel()

	t.Run("clears memory and both durable keys", func(t *testing.T) {
		t.Parallel()

		storage := localstore.NewMemory()
		store := session.NewStore(storage)
		store.SetSession(&session.User{ID: "u1"}, "tok-123")

		store.ClearSession()

		require.Empty(t, store.Token())
		require.Nil(t, store.User())
		_, err := storage.Get(session.DefaultPrimaryKey)
		require.ErrorIs(t, err, localstore.ErrNotFound)
		_, err = storage.Get(session.DefaultLegacyKey)
		require.ErrorIs(t, err, localstore.ErrNotFound)
	})

	t.Run("idempotent on an empty session", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore(localstore.NewMemory())

		require.NotPanics(t, func() {
			store.ClearSession()
			store.ClearSession()
		})
		require.Empty(t, store.Token())
	})

	t.Run("safe when storage is unavailable", func(t *testing.T) {
		t.Parallel()

		storage := localstore.NewMemory()
		require.NoError(t, storage.Close())

		store := session.NewStore(storage)
		require.NotPanics(t, store.ClearSession)
	})
}

func TestStore_Hydrated(t *testing.T) {
	t.Parallel()

	t.Run("false at construction", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore(localstore.NewMemory())
		require.False(t, store.Hydrated())
	})

	t.Run("true after hydration even when logged out", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore(localstore.NewMemory())
		sess := session.NewHydrator(store).Hydrate(context.Background())

		require.False(t, sess.Authenticated())
		require.True(t, store.Hydrated())
	})
}
