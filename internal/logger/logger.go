// Package logger wraps the zap logger shared by the CLI and the gateway.
package logger

import (
	"go.uber.org/zap"
)

type LoggerI interface {
	Info(msg string, keysAndValues ...interface{})
	Init(lvl, encoding string) error
}

type Logger struct {
	Log *zap.Logger
}

var _ LoggerI = (*Logger)(nil)

// New returns a logger that discards everything until Init is called.
func New() *Logger {
	return &Logger{
		Log: zap.NewNop(),
	}
}

// Init builds a production logger writing to stderr, so that stdout stays
// free for command output. encoding is "json" or "console", empty means json.
func (l *Logger) Init(level, encoding string) error {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	if encoding != "" {
		cfg.Encoding = encoding
	}
	cfg.OutputPaths = []string{"stderr"}
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	l.Log = zl.Named("use0mk")
	return nil
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	sugar := l.Log.Sugar()

	sugar.Infow(msg, keysAndValues...)
}
