package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	Port    int    `envconfig:"APP_PORT" default:"8080"`
	BaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	JWT     JWTConfig
	Groq    GroqConfig
	Session SessionConfig
}

// database configuration
type DBConfig struct {
	DSN          string        `envconfig:"DATABASE_URL" required:"true"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxConnLife  time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// redis cache configuration
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"REDIS_INTERVIEW_TTL" default:"5m"`
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

// Groq AI configuration
type GroqConfig struct {
	APIKey  string        `envconfig:"GROQ_API_KEY" required:"true"`
	Model   string        `envconfig:"GROQ_MODEL" default:"meta-llama/llama-4-maverick-17b-128e-instruct"`
	Timeout time.Duration `envconfig:"GROQ_TIMEOUT" default:"30s"`
}

// candidate session configuration
type SessionConfig struct {
	IdleTTL time.Duration `envconfig:"SESSION_IDLE_TTL" default:"2h"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.BaseURL == "" || (!strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://")) {
		return fmt.Errorf("PUBLIC_BASE_URL must be an absolute http(s) URL (got %q)", c.BaseURL)
	}
	if c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.Groq.Timeout <= 0 {
		return fmt.Errorf("GROQ_TIMEOUT must be positive")
	}
	if len(c.CORS.TrustedOrigins) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// InterviewLink builds the candidate-facing shareable link for a record id.
func (c *Config) InterviewLink(id string) string {
	return fmt.Sprintf("%s/interview/%s", strings.TrimRight(c.BaseURL, "/"), id)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
