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

func TestLoad_FromYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  env: production
  shutdown_timeout: 5s
database:
  url: postgres://u:p@db:5432/yt
jwt:
  secret: s3cret
email:
  enabled: true
  smtp_host: smtp.test
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres://u:p@db:5432/yt", cfg.Database.DSN)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://file
server:
  port: 8000
`)
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.Database.DSN)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "development", cfg.Server.Env)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://only-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://only-env", cfg.Database.DSN)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid development", func(c *Config) {}, false},
		{"missing dsn", func(c *Config) { c.Database.DSN = "" }, true},
		{"production without secret", func(c *Config) { c.Server.Env = "production" }, true},
		{"email enabled without host", func(c *Config) { c.Email.Enabled = true }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Database.DSN = "postgres://x"
			cfg.Server.Env = "development"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_WorkerAndTokenDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://u:p@db:5432/yt
jwt:
  ttl: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Workers.OverdueInterval)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL())
}
