package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Token store backends.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// LoginRateLimit caps auth attempts per IP per minute on the portal.
	LoginRateLimit int `env:"LOGIN_RATE_LIMIT, default=10"`

	API   APIConfig
	Store StoreConfig
	Redis RedisConfig
}

type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL, default=https://rotaractd4465api.up.railway.app/api/v1"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=15s"`
}

type StoreConfig struct {
	Backend  string `env:"TOKEN_STORE, default=file"`
	StateDir string `env:"STATE_DIR,   default=.rotaract"`
	Key      string `env:"STORAGE_KEY, default=rotaract-d4465-auth"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through lookuper and validates it.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	switch cfg.Store.Backend {
	case StoreFile, StoreRedis:
	default:
		return nil, fmt.Errorf("TOKEN_STORE must be %q or %q, got %q", StoreFile, StoreRedis, cfg.Store.Backend)
	}
	if cfg.API.Timeout <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT must be positive, got %s", cfg.API.Timeout)
	}
	return &cfg, nil
}
