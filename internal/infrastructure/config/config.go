package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Redis   RedisConfig
	Session SessionConfig
	Image   ImageProxyConfig
}

type BackendConfig struct {
	// BaseURL points at the news/bookmark proxy this front-end renders.
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:5000"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=10s"`
	// Rate caps outbound calls to the backend (requests per second).
	Rate  float64 `env:"BACKEND_RATE,  default=5"`
	Burst int     `env:"BACKEND_BURST, default=10"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	CookieName   string        `env:"SESSION_COOKIE_NAME,   default=sarvanews_session"`
	TTL          time.Duration `env:"SESSION_TTL,           default=720h"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

type ImageProxyConfig struct {
	Timeout  time.Duration `env:"IMAGE_PROXY_TIMEOUT,   default=8s"`
	MaxBytes int64         `env:"IMAGE_PROXY_MAX_BYTES, default=5242880"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
