// Package guard gates access to operations that require an
// authenticated session.
//
// A guarded access starts in StateChecking while hydration reconciles
// the in-memory session with durable storage, then settles on
// StateAuthenticated or StateUnauthenticated. The ordering matters:
// deciding from an un-hydrated store would misread a valid durable
// session as a logout and bounce the visitor to login for no reason.
//
// Navigation on the unauthenticated outcome goes through the injected
// Navigator rather than any concrete UI primitive, carrying the
// originally requested destination for post-login return.
package guard
