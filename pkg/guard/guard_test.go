package guard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftmarket/storefront-go/pkg/guard"
	"github.com/craftmarket/storefront-go/pkg/localstore"
	"github.com/craftmarket/storefront-go/pkg/session"
)

// recordingNav captures ToLogin invocations.
type recordingNav struct {
	calls     int
	returnTos []string
}

func (n *recordingNav) ToLogin(returnTo string) {
	n.calls++
	n.returnTos = append(n.returnTos, returnTo)
}

func newGuard(t *testing.T, storage localstore.Store, nav guard.Navigator) (*guard.Guard, *session.Store) {
	t.Helper()
	store := session.NewStore(storage)
	return guard.New(session.NewHydrator(store), nav), store
}

func TestGuard_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("valid durable session authenticates without any redirect", func(t *testing.T) {
		t.Parallel()

		storage := localstore.NewMemory()
		require.NoError(t, storage.Set(session.DefaultPrimaryKey, []byte(`{"user":{"id":"u1"},"token":"tok"}`)))

		nav := &recordingNav{}
		g, store := newGuard(t, storage, nav)

		state := g.Resolve(context.Background(), "/account")
		require.Equal(t, guard.StateAuthenticated, state)
		// No flash of the redirect: the navigator must never fire when
		// a durable session hydrates successfully.
		require.Zero(t, nav.calls)
		require.True(t, store.Hydrated())
	})

	t.Run("empty storage redirects to login with the destination", func(t *testing.T) {
		t.Parallel()

		nav := &recordingNav{}
		g, _ := newGuard(t, localstore.NewMemory(), nav)

		state := g.Resolve(context.Background(), "/account/orders")
		require.Equal(t, guard.StateUnauthenticated, state)
		require.Equal(t, 1, nav.calls)
		require.Equal(t, []string{"/account/orders"}, nav.returnTos)
	})

	t.Run("legacy bare token authenticates", func(t *testing.T) {
		t.Parallel()

		storage := localstore.NewMemory()
		require.NoError(t, storage.Set(session.DefaultLegacyKey, []byte("bare")))

		nav := &recordingNav{}
		g, _ := newGuard(t, storage, nav)

		require.Equal(t, guard.StateAuthenticated, g.Resolve(context.Background(), "/account"))
		require.Zero(t, nav.calls)
	})

	t.Run("nil navigator is tolerated", func(t *testing.T) {
		t.Parallel()

		g, _ := newGuard(t, localstore.NewMemory(), nil)
		require.NotPanics(t, func() {
			require.Equal(t, guard.StateUnauthenticated, g.Resolve(context.Background(), "/x"))
		})
	})

	t.Run("fresh resolve after logout redirects again", func(t *testing.T) {
		t.Parallel()

		storage := localstore.NewMemory()
		nav := &recordingNav{}
		g, store := newGuard(t, storage, nav)

		store.SetSession(&session.User{ID: "u1"}, "tok")
		require.Equal(t, guard.StateAuthenticated, g.Resolve(context.Background(), "/a"))

		store.ClearSession()
		require.Equal(t, guard.StateUnauthenticated, g.Resolve(context.Background(), "/b"))
		require.Equal(t, []string{"/b"}, nav.returnTos)
	})
}

func TestGuard_Protect(t *testing.T) {
	t.Parallel()

	t.Run("runs the operation when authenticated", func(t *testing.T) {
		t.Parallel()

		storage := localstore.NewMemory()
		require.NoError(t, storage.Set(session.DefaultPrimaryKey, []byte(`{"token":"tok"}`)))

		g, _ := newGuard(t, storage, nil)

		ran := false
		err := g.Protect("/account", func(ctx context.Context) error {
			ran = true
			return nil
		})(context.Background())

		require.NoError(t, err)
		require.True(t, ran)
	})

	t.Run("blocks the operation when unauthenticated", func(t *testing.T) {
		t.Parallel()

		nav := &recordingNav{}
		g, _ := newGuard(t, localstore.NewMemory(), nav)

		ran := false
		err := g.Protect("/account", func(ctx context.Context) error {
			ran = true
			return nil
		})(context.Background())

		require.ErrorIs(t, err, guard.ErrUnauthenticated)
		require.False(t, ran)
		require.Equal(t, 1, nav.calls)
	})
}

func TestState_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "checking", guard.StateChecking.String())
	require.Equal(t, "authenticated", guard.StateAuthenticated.String())
	require.Equal(t, "unauthenticated", guard.StateUnauthenticated.String())
}
