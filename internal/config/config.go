package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Gemini  GeminiConfig
	Session SessionConfig
	Redis   RedisConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// GeminiConfig holds the generative-language service parameters.
type GeminiConfig struct {
	APIKey                string
	Model                 string
	BaseURL               string
	RequestTimeoutSeconds int
}

// SessionConfig holds chat session parameters.
type SessionConfig struct {
	InactivityTimeoutMinutes int
}

// RedisConfig holds Redis connection values for the analysis cache.
type RedisConfig struct {
	Addr                string
	Password            string
	DB                  int
	AnalysisCacheTTLMin int
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "support-desk"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 60),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Gemini: GeminiConfig{
			APIKey:                os.Getenv("GEMINI_API_KEY"),
			Model:                 getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			BaseURL:               getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			RequestTimeoutSeconds: getEnvAsInt("GEMINI_REQUEST_TIMEOUT_SECONDS", 45),
		},
		Session: SessionConfig{
			InactivityTimeoutMinutes: getEnvAsInt("SESSION_INACTIVITY_TIMEOUT_MINUTES", 15),
		},
		Redis: RedisConfig{
			Addr:                getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:            os.Getenv("REDIS_PASSWORD"),
			DB:                  redisDB,
			AnalysisCacheTTLMin: getEnvAsInt("ANALYSIS_CACHE_TTL_MINUTES", 60),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// RequestTimeout returns the generative-service call timeout.
func (g GeminiConfig) RequestTimeout() time.Duration {
	if g.RequestTimeoutSeconds <= 0 {
		return 45 * time.Second
	}
	return time.Duration(g.RequestTimeoutSeconds) * time.Second
}

// InactivityTimeout returns the chat session inactivity window.
func (s SessionConfig) InactivityTimeout() time.Duration {
	if s.InactivityTimeoutMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(s.InactivityTimeoutMinutes) * time.Minute
}

// AnalysisCacheTTL returns how long one-shot analyses stay cached.
func (r RedisConfig) AnalysisCacheTTL() time.Duration {
	if r.AnalysisCacheTTLMin <= 0 {
		return time.Hour
	}
	return time.Duration(r.AnalysisCacheTTLMin) * time.Minute
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
