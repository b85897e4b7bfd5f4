// Package vault stores per-visitor preferences (locale, federation access
// token) keyed by the visitor cookie. Persistence is best effort: a vault
// that cannot read or write degrades to defaults without failing the page.
package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/trackeo/trackeo-web/internal/core/ports"
)

const (
	connectTimeout = 5 * time.Second

	// Preferences outlive the browser session but not an inactive visitor.
	prefTTL = 30 * 24 * time.Hour
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisVault keeps visitor preferences in Redis.
// Key format: pref:<visitor_id>
type RedisVault struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisVault wraps an established Redis client.
func NewRedisVault(client *redis.Client, logger zerolog.Logger) *RedisVault {
	return &RedisVault{client: client, logger: logger}
}

func (v *RedisVault) Load(ctx context.Context, visitorID string) ports.Preferences {
	var prefs ports.Preferences
	if visitorID == "" {
		return prefs
	}

	raw, err := v.client.Get(ctx, v.key(visitorID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			v.logger.Warn().Err(err).Msg("preference load failed")
		}
		return prefs
	}
	if err := json.Unmarshal(raw, &prefs); err != nil {
		v.logger.Warn().Err(err).Msg("preference payload corrupt, resetting")
		return ports.Preferences{}
	}
	return prefs
}

func (v *RedisVault) Save(ctx context.Context, visitorID string, prefs ports.Preferences) {
	if visitorID == "" {
		return
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		v.logger.Warn().Err(err).Msg("preference encode failed")
		return
	}
	if err := v.client.Set(ctx, v.key(visitorID), raw, prefTTL).Err(); err != nil {
		v.logger.Warn().Err(err).Msg("preference save failed")
	}
}

func (v *RedisVault) key(visitorID string) string {
	return "pref:" + visitorID
}

var _ ports.PreferenceVault = (*RedisVault)(nil)
