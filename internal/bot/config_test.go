package bot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "test-token"
  admin_ids: [100, 200]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "longpoll", cfg.Telegram.RunMode)
	assert.Equal(t, 2000, cfg.Enrichment.CooldownMS)
	assert.False(t, cfg.HasDatabase())
	assert.True(t, cfg.IsAdmin(100))
	assert.False(t, cfg.IsAdmin(300))
	assert.NotNil(t, cfg.CoreConfig())
}

func TestLoadConfigDatabaseDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "test-token"
database:
  host: "localhost"
  user: "barbot"
  name: "barbot"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.True(t, cfg.HasDatabase())
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxConnections)
}

func TestLoadConfigMissingToken(t *testing.T) {
	path := writeConfig(t, `
telegram:
  run_mode: longpoll
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}

func TestLoadConfigWebhookValidation(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "test-token"
  run_mode: webhook
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook.url")
}
