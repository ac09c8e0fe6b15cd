package util

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig параметры логирования
type LoggingConfig struct {
	Logfile string `yaml:"logfile" toml:"logfile"`
	Level   string `yaml:"level" toml:"level"`
	// TruncateFile очищать ли logfile при открытии.
	TruncateFile bool `yaml:"truncate-file" toml:"truncate-file" split_words:"true"`
}

// NewLoggingConfig создает LoggingConfig с настройками по-умолчанию.
func NewLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Logfile: "stdout",
		Level:   "info",
	}
}

// Logger структура, предназначенная для записи логов.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger создает новый логгер
func NewLogger(cfg *LoggingConfig) (*Logger, error) {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, errors.Wrap(err, "can not set logging level")
	}

	var f *os.File
	switch cfg.Logfile {
	case "stdout", "":
		f = os.Stdout
	case "stderr":
		f = os.Stderr
	default:
		flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
		if cfg.TruncateFile {
			flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		}

		var err error
		f, err = os.OpenFile(cfg.Logfile, flags, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "can not open logfile")
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	ws := zapcore.Lock(zapcore.AddSync(f))
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), ws, lvl)
	return &Logger{
		SugaredLogger: zap.New(core).Sugar(),
	}, nil
}

// NewNopLogger создает логгер, который ничего не пишет.
func NewNopLogger() *Logger {
	return &Logger{
		SugaredLogger: zap.NewNop().Sugar(),
	}
}

// WithName возвращает дочерний логгер с именем name.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		SugaredLogger: l.Named(name),
	}
}

// WithFields возвращает дочерний логгер с дополнительными полями.
func (l *Logger) WithFields(fields ...zap.Field) *Logger {
	args := make([]interface{}, 0, len(fields))
	for _, f := range fields {
		args = append(args, f)
	}
	return &Logger{
		SugaredLogger: l.With(args...),
	}
}
