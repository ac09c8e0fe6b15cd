package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Logging *LoggingConfig `yaml:"logging" toml:"logging"`
	Retry   *RetryConfig   `yaml:"retry" toml:"retry"`
}

func newTestConfig() *testConfig {
	return &testConfig{
		Logging: NewLoggingConfig(),
		Retry:   NewRetryConfig(),
	}
}

func TestLoadConfigYAML(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("logging:\n  level: debug\nretry:\n  delay: 250ms\n"), 0644))

	cfg := newTestConfig()
	require.NoError(t, LoadConfig(filename, cfg))
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stdout", cfg.Logging.Logfile)
	assert.Equal(t, Duration(250*time.Millisecond), cfg.Retry.Delay)
	assert.Equal(t, 5, cfg.Retry.Count)
}

func TestLoadConfigTOML(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(filename, []byte("[logging]\nlogfile = \"stderr\"\n[retry]\ncount = 2\ndelay = \"2s\"\n"), 0644))

	cfg := newTestConfig()
	require.NoError(t, LoadConfig(filename, cfg))
	assert.Equal(t, "stderr", cfg.Logging.Logfile)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Retry.Count)
	assert.Equal(t, Duration(2*time.Second), cfg.Retry.Delay)
}

func TestLoadConfigEmptyName(t *testing.T) {
	cfg := newTestConfig()
	assert.NoError(t, LoadConfig("", cfg))
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GOTABTEST_LOGGING_LEVEL", "warn")
	t.Setenv("GOTABTEST_RETRY_COUNT", "7")

	cfg := newTestConfig()
	require.NoError(t, LoadEnv("gotabtest", cfg))
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.Retry.Count)
	assert.Equal(t, "stdout", cfg.Logging.Logfile)
}

func TestLoadEnvIgnoresUnprefixed(t *testing.T) {
	t.Setenv("LEVEL", "bogus")
	t.Setenv("LOGFILE", "/tmp/bogus.log")
	t.Setenv("COUNT", "100")
	t.Setenv("GOTABTEST_LOGGING_TRUNCATE_FILE", "true")

	cfg := newTestConfig()
	require.NoError(t, LoadEnv("gotabtest", cfg))
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stdout", cfg.Logging.Logfile)
	assert.Equal(t, 5, cfg.Retry.Count)
	assert.True(t, cfg.Logging.TruncateFile)
}
