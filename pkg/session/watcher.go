package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/craftmarket/storefront-go/pkg/localstore"
)

// ChangeObserver is the event source a LoginWatcher subscribes to.
// localstore.Store implementations satisfy it; tests can inject a fake
// that synthesizes events.
type ChangeObserver interface {
	Watch(ctx context.Context) (<-chan localstore.Event, error)
}

// LoginWatcher keeps login-state indicators consistent across sibling
// processes sharing the same durable storage. It reacts to storage
// mutations by re-reading both session keys and reporting flips of the
// logged-in state.
//
// The watcher is read-only: it never mutates storage and never forces
// navigation. Forced logout stays the job of the HTTP layer's 401
// handling; this exists purely so UI state (for example a logout
// button) converges after another process logs in or out.
type LoginWatcher struct {
	storage    localstore.Store
	observer   ChangeObserver
	primaryKey string
	legacyKey  string
	onChange   func(loggedIn bool)
	log        *slog.Logger

	mu       sync.RWMutex
	loggedIn bool
}

// WatcherOption configures the LoginWatcher.
type WatcherOption func(*LoginWatcher)

// WithObserver overrides the event source. Defaults to the store's
// own durable storage.
func WithObserver(obs ChangeObserver) WatcherOption {
	return func(w *LoginWatcher) {
		if obs != nil {
			w.observer = obs
		}
	}
}

// WithWatcherLogger sets the logger for subscription failures.
func WithWatcherLogger(log *slog.Logger) WatcherOption {
	return func(w *LoginWatcher) {
		if log != nil {
			w.log = log
		}
	}
}

// NewLoginWatcher creates a watcher over the store's durable storage.
// onChange is invoked from the watch goroutine whenever the logged-in
// state flips; it may be nil.
func NewLoginWatcher(store *Store, onChange func(loggedIn bool), opts ...WatcherOption) *LoginWatcher {
	w := &LoginWatcher{
		storage:    store.storage,
		observer:   store.storage,
		primaryKey: store.primaryKey,
		legacyKey:  store.legacyKey,
		onChange:   onChange,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// LoggedIn returns the last observed login state.
func (w *LoginWatcher) LoggedIn() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.loggedIn
}

// Run subscribes to storage mutations and blocks until ctx is
// cancelled or the event channel closes. The initial state is read
// before the first event so LoggedIn is meaningful immediately.
func (w *LoginWatcher) Run(ctx context.Context) error {
	events, err := w.observer.Watch(ctx)
	if err != nil {
		return err
	}

	// Initial settle: record the current state without firing
	// onChange. The callback reports observed flips, not the state a
	// fresh watcher happens to start in.
	_, _, initial := readDurable(w.storage, w.primaryKey, w.legacyKey)
	w.mu.Lock()
	w.loggedIn = initial
	w.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Key != w.primaryKey && ev.Key != w.legacyKey {
				continue
			}
			w.recheck()
		}
	}
}

// recheck re-reads both keys with the hydration precedence and fires
// onChange if the state flipped.
func (w *LoginWatcher) recheck() {
	_, _, ok := readDurable(w.storage, w.primaryKey, w.legacyKey)

	w.mu.Lock()
	changed := w.loggedIn != ok
	w.loggedIn = ok
	w.mu.Unlock()

	if changed && w.onChange != nil {
		w.onChange(ok)
	}
}
