package storefront

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the production API endpoint, overridable via
// config, environment, or WithBaseURL.
const DefaultBaseURL = "https://api.craftmarket.io/v1"

// Config is the SDK's ambient configuration.
type Config struct {
	// BaseURL is the remote API endpoint.
	BaseURL string `yaml:"base_url"`
	// StateDir is where durable session state lives.
	// Defaults to ~/.storefront.
	StateDir string `yaml:"state_dir"`
	// SentryDSN enables error forwarding when set.
	SentryDSN string `yaml:"sentry_dsn"`
	// Environment tags Sentry events (e.g. "production", "staging").
	Environment string `yaml:"environment"`
}

// LoadConfig reads a YAML config file and applies environment
// overrides. A missing file is not an error; environment variables
// alone are a valid configuration. Recognized variables:
//
//	STOREFRONT_API_URL    overrides BaseURL
//	STOREFRONT_STATE_DIR  overrides StateDir
//	SENTRY_DSN            overrides SentryDSN
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("storefront: parse config %q: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to env + defaults
		default:
			return Config{}, fmt.Errorf("storefront: read config %q: %w", path, err)
		}
	}

	if v := os.Getenv("STOREFRONT_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("STOREFRONT_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.SentryDSN = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.StateDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.StateDir = filepath.Join(home, ".storefront")
		}
	}
	if c.Environment == "" {
		c.Environment = "production"
	}
}
