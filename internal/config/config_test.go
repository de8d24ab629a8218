package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestLoad_Defaults проверяет значения по умолчанию для пустого файла
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 2*time.Second, cfg.Reconcile.Interval())
	assert.Equal(t, "Europe/Moscow", cfg.Venue.Timezone)
	assert.Equal(t, 12*time.Hour, cfg.Operator.SessionTTL())
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[venue]
timezone = "Europe/Moscow"
quests = ["Опасная зона", "В поисках артефакта"]

[storage]
driver = "postgres"

[database]
host = "localhost"
port = 5432
user = "quests"
password = "secret"
dbname = "quests"

[reconcile]
interval_ms = 500
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"Опасная зона", "В поисках артефакта"}, cfg.Venue.Quests)
	assert.Equal(t, 500*time.Millisecond, cfg.Reconcile.Interval())
	assert.Equal(t, "host=localhost port=5432 user=quests password=secret dbname=quests sslmode=disable", cfg.Database.DSN())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "mongo" }},
		{name: "postgres without host", mutate: func(c *Config) { c.Storage.Driver = StoragePostgres }},
		{name: "redis without addr", mutate: func(c *Config) { c.Storage.Driver = StorageRedis }},
		{name: "remote without url", mutate: func(c *Config) { c.Storage.Driver = StorageRemote }},
		{name: "bad timezone", mutate: func(c *Config) { c.Venue.Timezone = "Mars/Olympus" }},
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 70000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
