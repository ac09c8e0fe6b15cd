package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/gotabulator/util"
)

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		env   map[string]string
		check func(t *testing.T, cfg *Config)
	}{
		{
			env: map[string]string{"PATH": "/usr/bin:/bin", "DSN": "http://localhost:8123", "PORT": "1"},
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Cache.Path)
				assert.Empty(t, cfg.Export.DSN)
				assert.Equal(t, NewConfig().HTTP.Port, cfg.HTTP.Port)
			},
		},
		{
			env: map[string]string{
				"TABULATOR_CACHE_PATH":              "/var/lib/gotabulator",
				"TABULATOR_CACHE_COMPRESSION_LEVEL": "9",
				"TABULATOR_TABULATOR_MAX_CELLS":     "64",
				"TABULATOR_HTTP_PORT":               "9090",
				"TABULATOR_HTTP_SHUTDOWN_TIMEOUT":   "3s",
				"TABULATOR_EXPORT_BATCH_SIZE":       "100",
				"TABULATOR_ETCD_RETRY_COUNT":        "2",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/var/lib/gotabulator", cfg.Cache.Path)
				assert.Equal(t, 9, cfg.Cache.CompressionLevel)
				assert.Equal(t, int64(64), cfg.Tabulator.MaxCells)
				assert.Equal(t, 9090, cfg.HTTP.Port)
				assert.Equal(t, 3*time.Second, time.Duration(cfg.HTTP.ShutdownTimeout))
				assert.Equal(t, 100, cfg.Export.BatchSize)
				assert.Equal(t, 2, cfg.ETCD.Retry.Count)
			},
		},
	}

	for i, test := range tests {
		t.Run("", func(t *testing.T) {
			for k, v := range test.env {
				t.Setenv(k, v)
			}
			cfg := NewConfig()
			require.NoError(t, util.LoadEnv(EnvPrefix, cfg), "Failed #%d:", i)
			test.check(t, cfg)
		})
	}
}
