package cache

import (
	"github.com/haltia-labs/dynamics/internal/config"
)

// Backend names recognized by New.
const (
	BackendEmbedded = "embedded"
	BackendRedis    = "redis"
)

// Config selects and tunes the cache backend. Values come from the
// environment via FromEnv or are filled in directly by the caller.
type Config struct {
	// Backend picks the implementation: BackendEmbedded or BackendRedis.
	Backend string `env:"CACHE_BACKEND" envDefault:"embedded"`

	// Filename and Path locate the embedded store's database.
	Filename string `env:"CACHE_FILENAME" envDefault:"dynamics.cache"`
	Path     string `env:"CACHE_PATH"`

	// Redis settings apply when Backend is BackendRedis.
	RedisAddr      string `env:"CACHE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string `env:"CACHE_REDIS_PASSWORD"`
	RedisDB        int    `env:"CACHE_REDIS_DB"`
	RedisKeyPrefix string `env:"CACHE_REDIS_KEY_PREFIX" envDefault:"dynamics:cache:"`
}

// FromEnv loads cache configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
