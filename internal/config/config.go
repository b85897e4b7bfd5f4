package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BackendURL is the API root every backend call is made against,
	// including the version prefix.
	BackendURL string `env:"BACKEND_URL, default=http://localhost:8000/api/v1"`

	// SeedFile optionally points at a JSON snapshot used to hydrate the
	// store at startup, before the first backend fetch.
	SeedFile string `env:"SEED_FILE"`

	Redis RedisConfig
}

// RedisConfig drives the preference vault. An empty Addr disables Redis and
// the server falls back to the in-memory vault.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
