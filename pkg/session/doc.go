// Package session manages client-side authentication state: the
// in-memory credential store, its durable record, hydration after a
// restart, and login-state convergence across sibling processes.
//
// # Store
//
// Store is the single source of truth for "is this visitor
// authenticated" within a process. Mutations go through SetSession and
// ClearSession, which also keep the durable record in sync. Durable
// storage failing (missing directory, permissions, full disk) degrades
// to a memory-only session rather than surfacing errors.
//
// # Hydration
//
// Two durable locations can hold credentials: the structured primary
// record (current format, flat or residual nested shape) and a legacy
// bare-token key. Hydrator resolves them with a fixed precedence and
// treats malformed data as absent, so a corrupt record can never fail
// hydration or mask the other location. An empty outcome is the normal
// logged-out state.
//
// # Watching
//
// LoginWatcher subscribes to storage mutation events and re-derives the
// logged-in state whenever either key changes, letting one process
// observe a login or logout performed by another.
package session
