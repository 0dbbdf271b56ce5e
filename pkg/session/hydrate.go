package session

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/craftmarket/storefront-go/pkg/localstore"
)

// Hydrator reconciles the in-memory Store with durable storage.
//
// Hydration resolves the multi-source ambiguity of client-side storage
// with a fixed precedence: an already-populated in-memory session wins
// (no I/O), then the structured primary record, then the legacy
// bare-token key. Only after both durable locations have been tried is
// the visitor considered logged out.
type Hydrator struct {
	store *Store
	group singleflight.Group
}

// NewHydrator creates a Hydrator for the given store.
func NewHydrator(store *Store) *Hydrator {
	return &Hydrator{store: store}
}

// Hydrate ensures the store reflects durable state and returns the
// resulting session snapshot. Concurrent calls are collapsed into a
// single reconciliation.
//
// Hydrate never fails: storage errors and malformed records read as
// "absent", and an empty result is the normal logged-out state, not an
// error.
func (h *Hydrator) Hydrate(ctx context.Context) Session {
	v, _, _ := h.group.Do("hydrate", func() (any, error) {
		return h.hydrate(ctx), nil
	})
	return v.(Session)
}

func (h *Hydrator) hydrate(_ context.Context) Session {
	// Step 1: in-memory session already populated, skip storage I/O.
	if sess := h.store.Session(); sess.Authenticated() {
		h.store.markHydrated()
		return sess
	}

	// Steps 2-3: prefer the richer structured record over the bare
	// token so the identity is available without a profile fetch.
	if token, user, ok := readDurable(h.store.storage, h.store.primaryKey, h.store.legacyKey); ok {
		sess := Session{User: user, Token: token}
		h.store.adopt(sess)
		return sess
	}

	// Step 4: nothing recoverable. This is the only path that means
	// "definitely logged out".
	h.store.markHydrated()
	return Session{}
}

// readDurable reads both storage locations in precedence order and
// returns the recovered credentials, if any. Read errors and parse
// garbage are treated as absent keys.
func readDurable(storage localstore.Store, primaryKey, legacyKey string) (token string, user *User, ok bool) {
	if data, err := storage.Get(primaryKey); err == nil {
		if rec := DecodeRecord(data); rec.Kind != RecordEmpty {
			return rec.Token, rec.User, true
		}
	}

	if data, err := storage.Get(legacyKey); err == nil {
		if t := string(data); t != "" {
			// Bare token only: identity is refreshed lazily by the next
			// authenticated profile fetch.
			return t, nil, true
		}
	}

	return "", nil, false
}
