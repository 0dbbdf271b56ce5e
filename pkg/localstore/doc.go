// Package localstore provides small durable key-value storage for
// client-side state, with change notification across processes.
//
// It is the local analogue of a browser's persistent storage: a handful
// of well-known keys holding serialized state that must survive process
// restarts and stay observable by sibling processes of the same user.
//
// # Implementations
//
// File stores each key as a file under a state directory with atomic
// writes, and watches the directory (fsnotify) to surface mutations made
// by other processes:
//
//	store, err := localstore.NewFile(filepath.Join(home, ".storefront"))
//	if err != nil { ... }
//
//	events, err := store.Watch(ctx)
//	for ev := range events {
//	    // react to ev.Key / ev.Op
//	}
//
// Memory keeps everything in a map and lets tests synthesize watch
// events via Emit, so observer logic can be exercised without a real
// filesystem or a second process.
//
// # Consistency
//
// Writers do not coordinate: the last write wins, and every write is a
// total overwrite of one key. Watch events are delivered after the
// fact, so observers across processes converge eventually rather than
// atomically.
package localstore
