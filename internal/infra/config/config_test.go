package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8000", cfg.HTTP.Address)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, DriverMemory, cfg.Store.Driver)
	require.Equal(t, time.Hour, cfg.Cache.TTL)
	require.Equal(t, "faqs", cfg.Cache.Prefix)
	require.Equal(t, []string{"hi", "bn"}, cfg.FAQ.Languages)
	require.Equal(t, 5, cfg.FAQ.DefaultPageSize)
	require.Equal(t, ProviderGoogle, cfg.Translate.Provider)
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_SECRET", "")

	_, err := Load()
	require.ErrorContains(t, err, "auth.secret")
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9000"
auth:
  secret: from-file
cache:
  enabled: true
  addr: localhost:6379
faq:
  languages: [hi]
  defaultPageSize: 10
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("CACHE_TTL", "120")
	t.Setenv("FAQ_LANGUAGES", "hi, bn ,ta")
	t.Setenv("HTTP_GZIP", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTP.Address)
	require.Equal(t, "from-file", cfg.Auth.Secret)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	require.Equal(t, []string{"hi", "bn", "ta"}, cfg.FAQ.Languages)
	require.Equal(t, 10, cfg.FAQ.DefaultPageSize)
	require.False(t, cfg.HTTP.Gzip)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AUTH_SECRET=dotenv-secret\n"), 0o600))
	t.Setenv("AUTH_SECRET", "")
	// godotenv does not override variables that are already set, even empty
	require.NoError(t, os.Unsetenv("AUTH_SECRET"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dotenv-secret", cfg.Auth.Secret)
}

func TestLoad_CacheAddrFallsBackToRedisURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_SECRET", "s")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "redis://cache:6379/0", cfg.Cache.Addr)

	t.Setenv("CACHE_ADDR", "valkey:6379")
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, "valkey:6379", cfg.Cache.Addr)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty address":        func(c *Config) { c.HTTP.Address = "" },
		"unknown driver":       func(c *Config) { c.Store.Driver = "mongo" },
		"postgres without dsn": func(c *Config) { c.Store.Driver = DriverPostgres },
		"cache without addr":   func(c *Config) { c.Cache.Enabled = true },
		"zero ttl":             func(c *Config) { c.Cache.TTL = 0 },
		"zero page size":       func(c *Config) { c.FAQ.DefaultPageSize = 0 },
		"max below default":    func(c *Config) { c.FAQ.MaxPageSize = 2 },
		"bad language":         func(c *Config) { c.FAQ.Languages = []string{"not a tag"} },
		"canonical as target":  func(c *Config) { c.FAQ.Languages = []string{"hi", "en-GB"} },
		"unknown provider":     func(c *Config) { c.Translate.Provider = "deepl" },
		"chatgpt without key":  func(c *Config) { c.Translate.Provider = ProviderChatGPT },
		"zero timeout":         func(c *Config) { c.Translate.Timeout = 0 },
		"zero concurrency":     func(c *Config) { c.Translate.MaxConcurrency = 0 },
		"sample ratio":         func(c *Config) { c.Tracing.SampleRatio = 1.5 },
	}
	for name, mutate := range cases {
		cfg := defaultConfig()
		cfg.Auth.Secret = "s"
		mutate(cfg)
		require.Error(t, cfg.Validate(), name)
	}

	ok := defaultConfig()
	ok.Auth.Secret = "s"
	require.NoError(t, ok.Validate())
}
