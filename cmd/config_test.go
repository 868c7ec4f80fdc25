package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("LINE_LOGIN_CHANNEL_ID", "1650000000")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 720*time.Hour, cfg.CartRetention)
	assert.Zero(t, cfg.PendingOrderTTL)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "order.changed", cfg.KafkaOrderChangedTopic)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PENDING_ORDER_TTL", "45m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("LOGIN_RATE_LIMIT", "0.5")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "foodorder")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 45*time.Minute, cfg.PendingOrderTTL)
	assert.True(t, cfg.CookieSecure)
	assert.InDelta(t, 0.5, cfg.LoginRateLimit, 1e-9)
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=foodorder sslmode=disable", cfg.DSN())
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("LINE_LOGIN_CHANNEL_ID", "")
	t.Setenv("SESSION_TTL", "a month")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TTL")
	assert.Contains(t, err.Error(), "SESSION_SECRET is required")
	assert.Contains(t, err.Error(), "LINE_LOGIN_CHANNEL_ID is required")
}
