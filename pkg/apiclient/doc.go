// Package apiclient is the HTTP transport for the remote storefront
// API. It owns the three cross-cutting request concerns: bearer
// credential attachment, request ID stamping, and the global reaction
// to server-declared authentication failure.
//
// # Request flavors
//
// Do sends JSON-bodied (or body-less) requests; DoMultipart sends
// multipart/form-data with binary file parts. Both share attachment
// and 401 behavior exactly.
//
// # 401 handling
//
// Any 401 response fires the OnUnauthorized hook before the error is
// returned. The hook is where the application clears its credential
// store and routes the user back to login; the triggering caller still
// observes the error (wrapped around ErrUnauthorized) so it can do its
// own bookkeeping, but the global side effect does not depend on it.
//
// Network failures and 5xx responses are deliberately not handled
// here beyond wrapping: retry and user messaging belong to the
// calling feature code.
package apiclient
