package httplib

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GDVFox/gotabulator/util"
)

type ctxKey string

const (
	// RequestLogger ключ контекста для логгера.
	RequestLogger ctxKey = "logger"
	// RequestIDHeader заголовок, в котором возвращается идентификатор запроса.
	RequestIDHeader = "X-Request-ID"
)

// Handler обработчик запроса.
// err в данном случае означает системную ошибку.
type Handler func(r *http.Request) (*Response, error)

// WSHandler обработчик на открытие вебсокета.
// err в данном случае означает системную ошибку.
type WSHandler func(w http.ResponseWriter, r *http.Request) error

// LoggerFromContext возвращает логгер запроса или l, если в контексте логгера нет.
func LoggerFromContext(ctx context.Context, l *util.Logger) *util.Logger {
	if logger, ok := ctx.Value(RequestLogger).(*util.Logger); ok {
		return logger
	}
	return l
}

func withRequestLogger(w http.ResponseWriter, r *http.Request, l *util.Logger) (*http.Request, *util.Logger) {
	token := uuid.New().String()
	w.Header().Set(RequestIDHeader, token)

	logger := l.WithFields(zap.String("request_id", token))
	logger.Infof("got request %s, %s", r.Method, r.URL)
	return r.WithContext(context.WithValue(r.Context(), RequestLogger, logger)), logger
}

// CreateHandler создает обертку, которая преобразует переданный обработчик
// в стандартный http.Handler
func CreateHandler(h Handler, l *util.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r, logger := withRequestLogger(w, r, l)

		reply, err := h(r)
		if err != nil {
			logger.Errorf("handler error: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if err := reply.WriteTo(w); err != nil {
			logger.Errorf("resp body write error: %v", err)
		}
		logger.Infof("request done with code: %d %s", reply.StatusCode, http.StatusText(reply.StatusCode))
	}
}

// CreateWSHandler создает обертку, которая преобразует переданный обработчик
// в стандартный http.Handler
func CreateWSHandler(h WSHandler, l *util.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r, logger := withRequestLogger(w, r, l)

		if err := h(w, r); err != nil {
			logger.Errorf("handler error: %v", err)
			return
		}
		logger.Infof("ws request done")
	}
}
