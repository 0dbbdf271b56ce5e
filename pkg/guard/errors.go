package guard

import "errors"

// ErrUnauthenticated is returned by protected operations when the
// session resolved without a credential. By the time callers see it,
// the navigator has already routed the visitor to login.
var ErrUnauthenticated = errors.New("guard: unauthenticated")
