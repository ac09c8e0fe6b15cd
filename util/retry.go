package util

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// RetryConfig параметры ретраев.
type RetryConfig struct {
	Delay Duration `yaml:"delay" toml:"delay"`
	Count int      `yaml:"count" toml:"count"`
}

// NewRetryConfig создает RetryConfig с настройками по-умолчанию.
func NewRetryConfig() *RetryConfig {
	return &RetryConfig{
		Delay: Duration(1 * time.Second),
		Count: 5,
	}
}

// Retry выполняет f, пока она не завершится успешно, не кончатся попытки
// или не будет отменен ctx. cfg.Count = 0 означает бесконечные попытки.
func Retry(ctx context.Context, cfg *RetryConfig, f func() error) error {
	var err error
	var i int
	for {
		if err = f(); err == nil {
			return nil
		}
		if i++; i == cfg.Count {
			return errors.Wrapf(err, "failed after %d attempts", i)
		}
		select {
		case <-time.After(time.Duration(cfg.Delay)):
			continue
		case <-ctx.Done():
			return err
		}
	}
}
