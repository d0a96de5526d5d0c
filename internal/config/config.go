package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the console and the stub
// backend.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Logger  LoggerConfig
	Stub    StubConfig
}

// APIConfig points the console at its backend.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// SessionConfig controls token persistence and expiry warnings.
type SessionConfig struct {
	// TokenPath overrides where the bearer token is stored; empty uses
	// ~/.warehouse-console/token.
	TokenPath         string
	ExpiryWarnMinutes int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// StubConfig configures the local stub backend (stubd).
type StubConfig struct {
	Host            string
	Port            string
	JWTSecret       string
	TokenTTLMinutes int
	BcryptCost      int
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		API: APIConfig{
			BaseURL:        getEnv("CONSOLE_API_BASE_URL", "http://localhost:8080"),
			TimeoutSeconds: getEnvAsInt("CONSOLE_HTTP_TIMEOUT_SECONDS", 30),
		},
		Session: SessionConfig{
			TokenPath:         os.Getenv("CONSOLE_TOKEN_PATH"),
			ExpiryWarnMinutes: getEnvAsInt("CONSOLE_EXPIRY_WARN_MINUTES", 5),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Stub: StubConfig{
			Host:            getEnv("STUB_HOST", "127.0.0.1"),
			Port:            getEnv("STUB_PORT", "8080"),
			JWTSecret:       getEnv("STUB_JWT_SECRET", "dev-secret"),
			TokenTTLMinutes: getEnvAsInt("STUB_TOKEN_TTL_MINUTES", 60),
			BcryptCost:      getEnvAsInt("STUB_BCRYPT_COST", 10),
		},
	}

	return cfg, nil
}

// Timeout returns the configured HTTP client timeout.
func (a APIConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// ExpiryWarnWindow returns how close to expiry the console warns.
func (s SessionConfig) ExpiryWarnWindow() time.Duration {
	if s.ExpiryWarnMinutes <= 0 {
		return 0
	}
	return time.Duration(s.ExpiryWarnMinutes) * time.Minute
}

// Addr returns the stub server bind address.
func (s StubConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// TokenTTL returns the stub server's token lifetime.
func (s StubConfig) TokenTTL() time.Duration {
	if s.TokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(s.TokenTTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
