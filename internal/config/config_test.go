package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
api:
  environment: test
  port: "9090"
  jwt_signing_key: secret
  jwt_ttl: 2h
  allowed_cors_domains:
    - http://campus.local
database:
  driver: sqlite
  dsn: file::memory:
ratelimit:
  login_per_minute: 30
  burst: 3
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, 2*time.Hour, conf.API.JWTTTL)
	assert.Equal(t, []string{"http://campus.local"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "sqlite", conf.Database.Driver)
	assert.Equal(t, 30, conf.RateLimit.LoginPerMinute)
	assert.Equal(t, 3, conf.RateLimit.Burst)

	// defaults
	assert.Equal(t, "debug", conf.Gin.Mode)
	assert.Equal(t, 10*time.Second, conf.API.ShutdownTimeout)
	assert.Equal(t, "localhost", conf.Database.Postgres.Host)
	assert.False(t, conf.Seed.Enabled)
	assert.Empty(t, conf.API.TrustedProxies)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CAMPUS_API_PORT", "7070")
	t.Setenv("CAMPUS_SEED_ENABLED", "true")

	content := strings.Replace(testConfig, "api:\n", "api:\n  trusted_proxies:\n    - 10.0.0.0/8\n", 1)
	conf, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8"}, conf.API.TrustedProxies)

	assert.Equal(t, "7070", conf.API.Port)
	assert.True(t, conf.Seed.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing signing key",
			content: `
database:
  driver: sqlite
`,
		},
		{
			name: "unknown driver",
			content: `
api:
  jwt_signing_key: secret
database:
  driver: mysql
`,
		},
		{
			name: "non positive rate limit",
			content: `
api:
  jwt_signing_key: secret
ratelimit:
  login_per_minute: 0
`,
		},
		{
			name: "bad trusted proxy",
			content: `
api:
  jwt_signing_key: secret
  trusted_proxies:
    - 10.0.0.0/33
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	path := writeConfig(t, testConfig)

	var burst atomic.Int64
	require.NoError(t, Watch(path, func(conf *AppConfig) {
		burst.Store(int64(conf.RateLimit.Burst))
	}))

	updated := strings.Replace(testConfig, "burst: 3", "burst: 9", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	assert.Eventually(t, func() bool {
		return burst.Load() == 9
	}, 5*time.Second, 50*time.Millisecond)
}
