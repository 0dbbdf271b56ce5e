package guard

import (
	"context"
	"log/slog"

	"github.com/craftmarket/storefront-go/pkg/session"
)

// State is the resolution state of a guarded access attempt.
type State int

const (
	// StateChecking is the initial state: hydration has not completed
	// yet and nothing must be shown or executed.
	StateChecking State = iota
	// StateAuthenticated means hydration resolved with a credential;
	// the protected operation may proceed.
	StateAuthenticated
	// StateUnauthenticated means hydration resolved without a
	// credential; the visitor has been routed to login.
	StateUnauthenticated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Navigator is the injected navigation handler invoked when an
// unauthenticated visitor hits a protected view. returnTo is the
// originally requested destination, preserved for post-login return.
type Navigator interface {
	ToLogin(returnTo string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(returnTo string)

// ToLogin implements Navigator.
func (f NavigatorFunc) ToLogin(returnTo string) {
	f(returnTo)
}

// Resolver yields a settled session; satisfied by *session.Hydrator.
type Resolver interface {
	Hydrate(ctx context.Context) session.Session
}

// Guard gates protected operations on a resolved, authenticated
// session. Each Resolve call is a fresh pass through the state
// machine; terminal states are never left automatically.
type Guard struct {
	sessions Resolver
	nav      Navigator
	log      *slog.Logger
}

// Option configures the Guard.
type Option func(*Guard)

// WithLogger sets the guard's logger.
func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

// New creates a Guard. nav may be nil, in which case unauthenticated
// resolutions produce no navigation (useful for passive checks).
func New(sessions Resolver, nav Navigator, opts ...Option) *Guard {
	g := &Guard{
		sessions: sessions,
		nav:      nav,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Resolve runs hydration to completion, then transitions out of
// StateChecking. Nothing is rendered or redirected while checking:
// the navigator fires only after hydration has settled, and only for
// the unauthenticated outcome, so a valid durable session can never
// produce a flash of the login redirect.
func (g *Guard) Resolve(ctx context.Context, returnTo string) State {
	sess := g.sessions.Hydrate(ctx)
	if sess.Authenticated() {
		return StateAuthenticated
	}

	g.log.Debug("guard: unauthenticated access", slog.String("return_to", returnTo))
	if g.nav != nil {
		g.nav.ToLogin(returnTo)
	}
	return StateUnauthenticated
}

// Protect wraps a protected operation. The wrapped function runs only
// when Resolve settles on StateAuthenticated; otherwise the visitor is
// routed to login and ErrUnauthenticated is returned.
func (g *Guard) Protect(returnTo string, fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if g.Resolve(ctx, returnTo) != StateAuthenticated {
			return ErrUnauthenticated
		}
		return fn(ctx)
	}
}
