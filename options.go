package storefront

import (
	"log/slog"
	"net/http"

	"github.com/craftmarket/storefront-go/pkg/guard"
	"github.com/craftmarket/storefront-go/pkg/localstore"
)

// Option configures the Client.
type Option func(*Client)

// WithConfig applies a loaded configuration wholesale. Later options
// still override individual fields.
func WithConfig(cfg Config) Option {
	return func(c *Client) {
		cfg.applyDefaults()
		c.cfg = cfg
	}
}

// WithBaseURL overrides the remote API endpoint.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.cfg.BaseURL = url
		}
	}
}

// WithStateDir overrides where durable session state is kept.
func WithStateDir(dir string) Option {
	return func(c *Client) {
		if dir != "" {
			c.cfg.StateDir = dir
		}
	}
}

// WithLogger sets the SDK logger. If unset, logging is disabled
// unless the config carries a Sentry DSN, in which case a forwarding
// logger is built automatically.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient sets the underlying HTTP client for all requests.
// Timeouts and proxies are inherited from it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpc = hc
		}
	}
}

// WithStorage injects a durable store, replacing the default
// file-backed one. Tests use localstore.Memory for isolated instances.
func WithStorage(store localstore.Store) Option {
	return func(c *Client) {
		if store != nil {
			c.storage = store
		}
	}
}

// WithNavigator sets the navigation handler invoked on forced logout
// and on guarded access without a session. If unset, invalidation
// still clears the session but triggers no navigation.
func WithNavigator(nav guard.Navigator) Option {
	return func(c *Client) {
		c.nav = nav
	}
}
