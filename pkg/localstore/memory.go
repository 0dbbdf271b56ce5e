package localstore

import (
	"context"
	"sync"
)

// Memory is an in-memory Store. It is primarily useful in tests,
// where watchers can be driven by synthesized mutations without a
// real filesystem, and as a degraded fallback when durable storage
// is unavailable (state is lost when the process exits).
type Memory struct {
	mu     sync.Mutex
	items  map[string][]byte
	subs   map[chan Event]struct{}
	closed bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		items: make(map[string][]byte),
		subs:  make(map[chan Event]struct{}),
	}
}

// Get returns the value for a key.
func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy so callers cannot mutate stored state.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set writes a value and notifies watchers.
func (m *Memory) Set(key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.items[key] = stored
	m.mu.Unlock()

	m.notify(Event{Key: key, Op: OpSet})
	return nil
}

// Delete removes a key and notifies watchers. Absent keys are a no-op
// and produce no event.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	_, existed := m.items[key]
	delete(m.items, key)
	m.mu.Unlock()

	if existed {
		m.notify(Event{Key: key, Op: OpDelete})
	}
	return nil
}

// Watch returns a channel of mutation events. The channel is closed
// when ctx is cancelled.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrClosed
	}
	ch := make(chan Event, 16)
	m.subs[ch] = struct{}{}
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs, ch)
		m.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}

// Emit injects a synthetic event to all watchers without touching
// stored values. Tests use this to simulate mutations made by another
// process.
func (m *Memory) Emit(ev Event) {
	m.notify(ev)
}

// Close marks the store closed and rejects further writes.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *Memory) notify(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for ch := range m.subs {
		select {
		case ch <- ev:
		default:
			// Slow subscriber: drop rather than block writers. Observers
			// re-read the store on each event, so a dropped event only
			// delays convergence until the next mutation.
		}
	}
}

var _ Store = (*Memory)(nil)
