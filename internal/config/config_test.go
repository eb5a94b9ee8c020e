package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "support-desk", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Gemini.RequestTimeout())
	assert.Equal(t, 15*time.Minute, cfg.Session.InactivityTimeout())
	assert.Equal(t, time.Hour, cfg.Redis.AnalysisCacheTTL())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SESSION_INACTIVITY_TIMEOUT_MINUTES", "5")
	t.Setenv("ANALYSIS_CACHE_TTL_MINUTES", "10")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, 5*time.Minute, cfg.Session.InactivityTimeout())
	assert.Equal(t, 10*time.Minute, cfg.Redis.AnalysisCacheTTL())
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestTimeoutFallbacks(t *testing.T) {
	assert.Equal(t, 45*time.Second, GeminiConfig{}.RequestTimeout())
	assert.Equal(t, 15*time.Minute, SessionConfig{}.InactivityTimeout())
	assert.Equal(t, time.Hour, RedisConfig{}.AnalysisCacheTTL())
	assert.Equal(t, time.Duration(0), AppConfig{}.RequestTimeout())
}
