package httplib

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/util"
)

// HTTPConfig настройки для работы встроенного http сервера.
type HTTPConfig struct {
	Host            string        `yaml:"host" toml:"host"`
	Port            int           `yaml:"port" toml:"port"`
	ShutdownTimeout util.Duration `yaml:"shutdown-timeout" toml:"shutdown-timeout" split_words:"true"`
}

// NewHTTPConfig создает HTTPConfig с настройками по-умолчанию.
func NewHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Host:            "0.0.0.0",
		Port:            8080,
		ShutdownTimeout: util.Duration(10 * time.Second),
	}
}

// GetAddr возвращает адрес в виде host:port
func (c *HTTPConfig) GetAddr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// StartServer запускает http сервер с обработчиком h и блокируется
// до отмены ctx или ошибки сервера.
func StartServer(ctx context.Context, h http.Handler, cfg *HTTPConfig, logger *util.Logger) error {
	srv := &http.Server{
		Addr:    cfg.GetAddr(),
		Handler: h,
	}

	errChannel := make(chan error, 1)
	go func() {
		defer close(errChannel)
		errChannel <- srv.ListenAndServe()
	}()

	logger.Infof("started server at %s", cfg.GetAddr())
	defer logger.Info("server was stopped")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout))
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "failed to gracefully shut down server")
		}
		return nil
	case err := <-errChannel:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
