package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "")
	t.Setenv("TWITCH_LOGINS", "")
	t.Setenv("POLL_INTERVAL_SECONDS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_MAX_SIZE_MB", "")

	cfg := Load()

	assert.Equal(t, "", cfg.ClientID)
	assert.Nil(t, cfg.Logins)
	assert.Equal(t, 60*time.Second, cfg.PollInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.LogMaxSizeMB)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "cid")
	t.Setenv("TWITCH_LOGINS", "ninja, shroud ,,pokimane")
	t.Setenv("POLL_INTERVAL_SECONDS", "15")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "cid", cfg.ClientID)
	assert.Equal(t, []string{"ninja", "shroud", "pokimane"}, cfg.Logins)
	assert.Equal(t, 15*time.Second, cfg.PollInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadIgnoresBadInt(t *testing.T) {
	t.Setenv("POLL_INTERVAL_SECONDS", "soon")

	cfg := Load()
	assert.Equal(t, 60*time.Second, cfg.PollInterval)
}
