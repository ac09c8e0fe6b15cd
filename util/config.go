package util

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadConfig загружает конфиг из файла filename поверх значений в cfg.
// Формат выбирается по расширению: .toml или yaml во всех остальных случаях.
// Пустой filename оставляет cfg без изменений.
func LoadConfig(filename string, cfg interface{}) error {
	if filename == "" {
		return nil
	}

	cfgFile, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "can not read config file")
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		if err := toml.Unmarshal(cfgFile, cfg); err != nil {
			return errors.Wrap(err, "can not decode toml config")
		}
	default:
		if err := yaml.Unmarshal(cfgFile, cfg); err != nil {
			return errors.Wrap(err, "can not decode yaml config")
		}
	}
	return nil
}

// LoadEnv переопределяет поля cfg переменными окружения с префиксом prefix.
func LoadEnv(prefix string, cfg interface{}) error {
	if err := envconfig.Process(prefix, cfg); err != nil {
		return errors.Wrap(err, "can not apply env config")
	}
	return nil
}

// Duration алиас для time.Duration, позволяющий
// использовать time.Duration в yaml, toml и env конфигах.
type Duration time.Duration

// UnmarshalYAML загружает из конфига time.Duration
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	durationStr := ""
	if err := unmarshal(&durationStr); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(durationStr))
}

// UnmarshalText используется toml и envconfig.
func (d *Duration) UnmarshalText(text []byte) error {
	t, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "failed to parse '%s' to time.Duration", string(text))
	}

	*d = Duration(t)
	return nil
}

// MarshalYAML сохраняет Duration в виде строки.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
