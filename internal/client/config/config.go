package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the MyAuthApp terminal client.
//
// Fields:
//   - DatabasePath: SQLite file holding the session snapshot.
//   - LogLevel / LogFormat: logger setup (debug|info|warn|error, text|json).
//   - StorageTimeout: upper bound for a single storage call.
//   - PersistQueueSize: capacity of the background persistence queue.
type Config struct {
	DatabasePath     string        `validate:"required"`
	LogLevel         string        `validate:"oneof=debug info warn error"`
	LogFormat        string        `validate:"oneof=text json"`
	StorageTimeout   time.Duration `validate:"gt=0"`
	PersistQueueSize int           `validate:"min=1,max=1024"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "myauthapp.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.StorageTimeout = 3 * time.Second
	c.PersistQueueSize = 16
}

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. The result is validated before it is returned.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
