package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/craftmarket/storefront-go/pkg/apiclient"
	"github.com/craftmarket/storefront-go/pkg/guard"
	"github.com/craftmarket/storefront-go/pkg/localstore"
	"github.com/craftmarket/storefront-go/pkg/logger"
	"github.com/craftmarket/storefront-go/pkg/session"
)

// Client is the storefront SDK facade. It wires the credential store,
// hydrator, access guard, and HTTP transport together and exposes the
// typed API surface (auth, catalog, lead forms, subscriptions).
//
// All persistence and business rules live in the remote API; the
// client's only stateful concern is the session.
type Client struct {
	cfg      Config
	log      *slog.Logger
	storage  localstore.Store
	sessions *session.Store
	hydrator *session.Hydrator
	guard    *guard.Guard
	nav      guard.Navigator
	api      *apiclient.Client
	httpc    *http.Client
}

func (c *Client) httpClientOrDefault() *http.Client {
	if c.httpc != nil {
		return c.httpc
	}
	return http.DefaultClient
}

// New creates a fully wired Client.
//
// With no options it loads defaults (production endpoint, state under
// ~/.storefront, discard logger). If the state directory cannot be
// created, the session degrades to memory-only rather than failing
// construction, matching how the session core treats every storage
// fault.
func New(opts ...Option) *Client {
	c := &Client{}
	c.cfg.applyDefaults()

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		if c.cfg.SentryDSN != "" {
			c.log = logger.NewWithSentry(logger.SentryConfig{
				DSN:         c.cfg.SentryDSN,
				Environment: c.cfg.Environment,
			})
		} else {
			c.log = logger.NewDiscard()
		}
	}

	if c.storage == nil {
		fileStore, err := localstore.NewFile(c.cfg.StateDir)
		if err != nil {
			c.log.Warn("storefront: durable storage unavailable, session is memory-only",
				slog.String("state_dir", c.cfg.StateDir),
				slog.String("error", err.Error()))
			c.storage = localstore.NewMemory()
		} else {
			c.storage = fileStore
		}
	}

	c.sessions = session.NewStore(c.storage, session.WithStoreLogger(c.log))
	c.hydrator = session.NewHydrator(c.sessions)
	c.guard = guard.New(c.hydrator, c.nav, guard.WithLogger(c.log))

	c.api = apiclient.New(c.cfg.BaseURL,
		apiclient.WithTokenSource(c.sessions),
		apiclient.WithLogger(c.log),
		apiclient.WithHTTPClient(c.httpClientOrDefault()),
		// A 401 anywhere invalidates the session globally. The store is
		// cleared first so the navigator observes the logged-out state.
		apiclient.WithOnUnauthorized(func() {
			c.sessions.ClearSession()
			if c.nav != nil {
				c.nav.ToLogin("")
			}
		}),
	)

	return c
}

// Sessions exposes the credential store (reads and explicit mutation).
func (c *Client) Sessions() *session.Store {
	return c.sessions
}

// Hydrate reconciles the in-memory session with durable storage and
// returns the settled session. See session.Hydrator for precedence.
func (c *Client) Hydrate(ctx context.Context) session.Session {
	return c.hydrator.Hydrate(ctx)
}

// Guard returns the access guard for protected views.
func (c *Client) Guard() *guard.Guard {
	return c.guard
}

// WatchLogins creates a watcher that reports login-state flips caused
// by sibling processes sharing the state directory. The caller runs it:
//
//	w := client.WatchLogins(func(in bool) { render(in) })
//	go w.Run(ctx)
func (c *Client) WatchLogins(onChange func(loggedIn bool)) *session.LoginWatcher {
	return session.NewLoginWatcher(c.sessions, onChange, session.WithWatcherLogger(c.log))
}

// API exposes the raw transport for endpoints the typed surface does
// not cover yet.
func (c *Client) API() *apiclient.Client {
	return c.api
}

func (c *Client) String() string {
	return fmt.Sprintf("storefront.Client(%s)", c.api.BaseURL())
}
