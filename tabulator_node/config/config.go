package config

import (
	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/util"
	"github.com/GDVFox/gotabulator/util/httplib"
	"github.com/GDVFox/gotabulator/util/storage"
)

// EnvPrefix префикс переменных окружения, переопределяющих конфиг.
const EnvPrefix = "tabulator"

// Conf глобальный конфиг синглтон.
var Conf = NewConfig()

// Config конфигурация сервиса.
type Config struct {
	HTTP      *httplib.HTTPConfig `yaml:"http" toml:"http"`
	Logging   *util.LoggingConfig `yaml:"logging" toml:"logging"`
	ETCD      *storage.ETCDConfig `yaml:"etcd" toml:"etcd"`
	Tabulator *tabulator.Config   `yaml:"tabulator" toml:"tabulator"`
	Cache     *CacheConfig        `yaml:"cache" toml:"cache"`
	Export    *ExportConfig       `yaml:"export" toml:"export"`
}

// CacheConfig настройки кеша результатов.
type CacheConfig struct {
	// Path директория leveldb, пустая строка отключает кеш.
	Path string `yaml:"path" toml:"path"`
	// CompressionLevel уровень сжатия zstd.
	CompressionLevel int `yaml:"compression-level" toml:"compression-level" split_words:"true"`
}

// ExportConfig настройки выгрузки результатов в clickhouse.
type ExportConfig struct {
	// DSN строка подключения, пустая строка отключает выгрузку.
	DSN   string `yaml:"dsn" toml:"dsn"`
	Table string `yaml:"table" toml:"table"`
	// BatchSize количество строк в одной транзакции.
	BatchSize int `yaml:"batch-size" toml:"batch-size" split_words:"true"`
}

// NewConfig создает конфиг с настройками по-умолчанию
func NewConfig() *Config {
	return &Config{
		HTTP:      httplib.NewHTTPConfig(),
		Logging:   util.NewLoggingConfig(),
		ETCD:      storage.NewETCDConfig(),
		Tabulator: tabulator.NewConfig(),
		Cache: &CacheConfig{
			CompressionLevel: 3,
		},
		Export: &ExportConfig{
			Table:     "tabulations",
			BatchSize: 10000,
		},
	}
}
