package config

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AppID scopes the profile collection path and the Redis keys.
	AppID string `env:"APP_ID, default=default-app-id"`
	// InitialAuthToken is a custom sign-in token exchanged once at startup.
	InitialAuthToken string `env:"INITIAL_AUTH_TOKEN"`
	// RegistrationRedirectDelay is how long after a successful registration
	// the portal waits before moving to the login page.
	RegistrationRedirectDelay time.Duration `env:"REGISTRATION_REDIRECT_DELAY, default=2s"`

	Identity IdentityConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type IdentityConfig struct {
	APIKey   string        `env:"IDENTITY_API_KEY"`
	BaseURL  string        `env:"IDENTITY_BASE_URL,  default=https://identitytoolkit.googleapis.com/v1"`
	TokenURL string        `env:"IDENTITY_TOKEN_URL, default=https://securetoken.googleapis.com/v1"`
	Timeout  time.Duration `env:"IDENTITY_TIMEOUT,   default=10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=membership"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
	// SealKey is the hex encoded 32-byte key protecting stored sessions.
	SealKey string `env:"SESSION_SEAL_KEY"`
}

// ErrNoSealKey is returned by SessionSealKey when SESSION_SEAL_KEY is unset.
var ErrNoSealKey = errors.New("SESSION_SEAL_KEY is not set")

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.RegistrationRedirectDelay < 0 {
		return nil, fmt.Errorf("config: REGISTRATION_REDIRECT_DELAY must not be negative")
	}
	if cfg.Redis.SealKey != "" {
		if _, err := cfg.SessionSealKey(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// SessionSealKey decodes SESSION_SEAL_KEY.
func (c *Config) SessionSealKey() ([32]byte, error) {
	var key [32]byte
	if c.Redis.SealKey == "" {
		return key, ErrNoSealKey
	}
	raw, err := hex.DecodeString(c.Redis.SealKey)
	if err != nil {
		return key, fmt.Errorf("SESSION_SEAL_KEY: %w", err)
	}
	if len(raw) != len(key) {
		return key, fmt.Errorf("SESSION_SEAL_KEY: want %d bytes, got %d", len(key), len(raw))
	}
	copy(key[:], raw)
	return key, nil
}
