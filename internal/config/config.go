package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env   string `envconfig:"APP_ENV" default:"development"`
	Port  int    `envconfig:"APP_PORT" default:"8080"`
	DB    DBConfig
	Redis RedisConfig
	CORS  CORSConfig
	JWT   JWTConfig
	AI    AIConfig
}

// database configuration
type DBConfig struct {
	DSN      string `envconfig:"DATABASE_URL" required:"true"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// redis configuration; an empty Addr disables the shared result cache and
// an in-memory one is used instead
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// JWT configuration
type JWTConfig struct {
	Secret         string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"1h"`
}

// AI provider and orchestration configuration. A provider is available for
// generation (and for fallback) exactly when its key is set.
type AIConfig struct {
	OpenAIKey   string `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIModel string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	GeminiKey   string `envconfig:"GEMINI_API_KEY" default:""`
	GeminiModel string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash-latest"`

	// DefaultProvider is the env-level preference; the admin setting in the
	// database, when present, takes precedence. Empty means "first provider
	// with credentials".
	DefaultProvider string `envconfig:"AI_DEFAULT_PROVIDER" default:""`

	MaxAttempts      int           `envconfig:"AI_MAX_ATTEMPTS" default:"3"`
	OpenAIRetryDelay time.Duration `envconfig:"AI_OPENAI_RETRY_DELAY" default:"800ms"`
	GeminiRetryDelay time.Duration `envconfig:"AI_GEMINI_RETRY_DELAY" default:"1s"`
	CacheTTL         time.Duration `envconfig:"AI_CACHE_TTL" default:"1h"`

	// RequestTimeout is the overall deadline for one generation call,
	// covering primary plus fallback including all retries and backoff.
	RequestTimeout time.Duration `envconfig:"AI_REQUEST_TIMEOUT" default:"3m"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.AI.OpenAIKey == "" && cfg.AI.GeminiKey == "" {
		return nil, fmt.Errorf("load config: at least one of OPENAI_API_KEY or GEMINI_API_KEY must be set")
	}
	return &cfg, nil
}
