package localstore

import "context"

// Op identifies the kind of mutation observed on a key.
type Op int

const (
	// OpSet indicates a key was written or overwritten.
	OpSet Op = iota
	// OpDelete indicates a key was removed.
	OpDelete
)

// String returns a human-readable operation name.
func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Event describes a mutation of a single key. Events may originate
// from this process or from another process sharing the same store.
type Event struct {
	Key string
	Op  Op
}

// Store is a durable key-value store for small client-side state
// (credentials, preferences). Writers do not coordinate beyond
// last-write-wins; values are total overwrites.
type Store interface {
	// Get returns the value for a key.
	// Returns ErrNotFound if the key does not exist.
	Get(key string) ([]byte, error)

	// Set writes a value, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes a key. Deleting an absent key is a no-op.
	Delete(key string) error

	// Watch returns a channel of mutation events. The channel is
	// closed when ctx is cancelled or the store is closed. Events
	// are delivered after the fact; observers see an eventually
	// consistent view.
	Watch(ctx context.Context) (<-chan Event, error)
}
