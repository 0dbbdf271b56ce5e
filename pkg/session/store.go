package session

import (
	"log/slog"
	"sync"

	"github.com/craftmarket/storefront-go/pkg/localstore"
)

// Default durable storage keys.
const (
	// DefaultPrimaryKey holds the structured session record.
	DefaultPrimaryKey = "session.json"
	// DefaultLegacyKey holds a bare token string, kept for
	// compatibility with the older session format.
	DefaultLegacyKey = "auth_token"
)

// Store holds the canonical in-memory Session for this process and
// keeps the durable record in sync on every mutation.
//
// It is the single piece of process-wide mutable session state; all
// access is serialized by an internal mutex. Durable-storage failures
// never surface to callers: the store degrades to memory-only (the
// session is simply lost on restart).
type Store struct {
	mu       sync.RWMutex
	sess     Session
	hydrated bool

	storage     localstore.Store
	primaryKey  string
	legacyKey   string
	legacyWrite bool
	log         *slog.Logger
}

// StoreOption configures the Store.
type StoreOption func(*Store)

// WithPrimaryKey overrides the durable key for the structured record.
func WithPrimaryKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.primaryKey = key
		}
	}
}

// WithLegacyKey overrides the durable key for the bare-token record.
func WithLegacyKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.legacyKey = key
		}
	}
}

// WithLegacyWrite controls whether SetSession also writes the bare
// token under the legacy key. Enabled by default so sessions written
// by this process remain readable by older clients; disable once no
// legacy readers remain.
func WithLegacyWrite(enabled bool) StoreOption {
	return func(s *Store) {
		s.legacyWrite = enabled
	}
}

// WithStoreLogger sets the logger for storage degradation warnings.
func WithStoreLogger(log *slog.Logger) StoreOption {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore creates a Store persisting to the given durable storage.
func NewStore(storage localstore.Store, opts ...StoreOption) *Store {
	s := &Store{
		storage:     storage,
		primaryKey:  DefaultPrimaryKey,
		legacyKey:   DefaultLegacyKey,
		legacyWrite: true,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetSession replaces the in-memory session and persists the durable
// record. Idempotent: identical arguments leave state unchanged.
func (s *Store) SetSession(user *User, token string) {
	s.mu.Lock()
	s.sess = Session{User: user, Token: token}
	s.mu.Unlock()

	data, err := EncodeRecord(user, token)
	if err != nil {
		// Session stays valid in memory; only persistence is lost.
		s.log.Warn("session: encode durable record failed", slog.String("error", err.Error()))
		return
	}
	if err := s.storage.Set(s.primaryKey, data); err != nil {
		s.log.Warn("session: persist failed, session is memory-only", slog.String("error", err.Error()))
	}
	if s.legacyWrite {
		if err := s.storage.Set(s.legacyKey, []byte(token)); err != nil {
			s.log.Warn("session: legacy token write failed", slog.String("error", err.Error()))
		}
	}
}

// ClearSession resets the session to empty and removes both durable
// keys. Safe to call when no session exists.
func (s *Store) ClearSession() {
	s.mu.Lock()
	s.sess = Session{}
	s.mu.Unlock()

	if err := s.storage.Delete(s.primaryKey); err != nil {
		s.log.Warn("session: clear durable record failed", slog.String("error", err.Error()))
	}
	if err := s.storage.Delete(s.legacyKey); err != nil {
		s.log.Warn("session: clear legacy token failed", slog.String("error", err.Error()))
	}
}

// Token returns the current bearer token. Pure in-memory read.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Token
}

// User returns the current user identity, or nil. Pure in-memory read.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.User
}

// Session returns a snapshot of the current session.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess
}

// Hydrated reports whether the store has been reconciled with durable
// storage since this process started.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// adopt installs a hydrated session without writing durable storage;
// the durable record is the source the session came from.
func (s *Store) adopt(sess Session) {
	s.mu.Lock()
	s.sess = sess
	s.hydrated = true
	s.mu.Unlock()
}

// markHydrated records that a reconciliation attempt completed,
// whatever its outcome.
func (s *Store) markHydrated() {
	s.mu.Lock()
	s.hydrated = true
	s.mu.Unlock()
}
