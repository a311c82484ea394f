package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "countdownvibes.db", cfg.DatabaseURL)
	assert.Equal(t, "09:00", cfg.ReminderTime)
	assert.Equal(t, 15*time.Second, cfg.SearchTimeout())
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.False(t, cfg.RequireAuth)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"listen: \":9090\"\ndatabase_url: data/countdowns.db\nreminder_time: \"07:30\"\nrequire_auth: true\n",
	), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "data/countdowns.db", cfg.DatabaseURL)
	assert.Equal(t, "07:30", cfg.ReminderTime)
	assert.True(t, cfg.RequireAuth)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":9090\"\n"), 0o600))

	t.Setenv("LISTEN_ADDR", ":7070")
	t.Setenv("TICKETMASTER_API_KEY", "tm-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Listen)
	assert.Equal(t, "tm-key", cfg.TicketmasterAPIKey)
}

func TestLoadRejectsBadReminderTime(t *testing.T) {
	t.Setenv("REMINDER_TIME", "25:00")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("REMINDER_TIME", "not a time")
	_, err = Load("")
	assert.Error(t, err)
}
