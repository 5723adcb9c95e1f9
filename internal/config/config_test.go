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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: s3cret
database:
  host: mongo
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "mongo", cfg.Database.Host)
	assert.Equal(t, 27017, cfg.Database.Port)
	assert.Equal(t, "restaurant_db", cfg.Database.Name)
	assert.Equal(t, 5*time.Second, cfg.Database.Timeout())
	assert.Equal(t, "mongodb://mongo:27017", cfg.Database.URI())
	assert.Equal(t, 24, cfg.JWT.ExpiresIn)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileEnvOverrides(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: from-file\n")
	t.Setenv("MONGO_HOST", "db.internal")
	t.Setenv("MONGO_PORT", "27018")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 27018, cfg.Database.Port)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, "server:\n  address: :9000\n"))
	assert.ErrorContains(t, err, "jwt.secret")

	t.Setenv("MONGO_PORT", "not-a-port")
	_, err = LoadFile(writeConfig(t, "jwt:\n  secret: x\n"))
	assert.ErrorContains(t, err, "MONGO_PORT")
}

func TestLoadUsesConfigPath(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: x\nserver:\n  address: 127.0.0.1:9999\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Address)
}
