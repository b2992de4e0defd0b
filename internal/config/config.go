// Package config reads runtime settings from the environment (and .env).
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sukalov/sbsong/internal/utils"
)

const (
	defaultDatabaseURL = "songbook.db"
	defaultCacheTTL    = 24 * time.Hour
)

type Config struct {
	DatabaseURL string
	AuthToken   string

	RedisURL      string
	RedisPassword string
	CacheTTL      time.Duration

	PublishWebhookURL string
	PublishToken      string

	Debug bool
}

// BotConfig holds what the admin bot needs on top of Config.
type BotConfig struct {
	Token          string
	AdminUsernames []string
	LogChannelID   int64
}

// Load reads the shared settings. Everything has a default, so only
// malformed values are errors.
func Load() (*Config, error) {
	// loads .env as a side effect
	if _, err := utils.LoadEnv(nil); err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:       utils.EnvOr("SONGBOOK_DATABASE_URL", defaultDatabaseURL),
		AuthToken:         utils.EnvOr("SONGBOOK_AUTH_TOKEN", ""),
		RedisURL:          utils.EnvOr("REDIS_URL", ""),
		RedisPassword:     utils.EnvOr("REDIS_PASSWORD", ""),
		CacheTTL:          defaultCacheTTL,
		PublishWebhookURL: utils.EnvOr("PUBLISH_WEBHOOK_URL", ""),
		PublishToken:      utils.EnvOr("PUBLISH_TOKEN", ""),
	}

	if raw := utils.EnvOr("CACHE_TTL", ""); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = ttl
	}

	if raw := utils.EnvOr("DEBUG", ""); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DEBUG: %w", err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

// CacheEnabled reports whether a Redis parse cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// LoadBot reads the settings required to run the admin bot.
func LoadBot() (*BotConfig, error) {
	env, err := utils.LoadEnv([]string{"BOT_TOKEN", "ADMIN_USERNAMES", "LOG_CHANNEL_ID"})
	if err != nil {
		return nil, err
	}

	channelID, err := strconv.ParseInt(env["LOG_CHANNEL_ID"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LOG_CHANNEL_ID: %w", err)
	}

	var admins []string
	for _, name := range utils.SplitList(env["ADMIN_USERNAMES"]) {
		admins = append(admins, strings.TrimPrefix(name, "@"))
	}

	return &BotConfig{
		Token:          env["BOT_TOKEN"],
		AdminUsernames: admins,
		LogChannelID:   channelID,
	}, nil
}
