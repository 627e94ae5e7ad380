// Package logger wraps zap behind the small structured-logging interface
// the service and CLI layers depend on.
package logger

import (
	"fmt"
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

type Fields map[string]any

type Logger interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
	With(fields Fields) Logger
	WithError(err error) Logger
	Sync() error
}

// Levels and formats accepted by ParseLevel and New.
var (
	Levels  = []string{"debug", "info", "warn", "error"}
	Formats = []string{"console", "json"}
)

// ParseLevel maps a level name to its zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch s {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// New builds a zap logger writing to stderr. format "json" selects the
// production encoder; anything else the development console encoder.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

// NewStructured is New wrapped in the Logger interface.
func NewStructured(level, format string) (Logger, error) {
	l, err := New(level, format)
	if err != nil {
		return nil, err
	}
	return NewZapAdapter(l), nil
}

// NewWriter logs JSON lines at level to w.
func NewWriter(w io.Writer, level zapcore.Level) Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return &zapWrapper{l: zap.New(core)}
}

// NewZapAdapter wraps an already built zap logger.
func NewZapAdapter(l *zap.Logger) Logger {
	return &zapWrapper{l: l}
}

// NewTestLogger logs through t.
func NewTestLogger(t testing.TB) Logger {
	return &zapWrapper{l: zaptest.NewLogger(t)}
}

func NewNoOpLogger() Logger {
	return &zapWrapper{l: zap.NewNop()}
}

type zapWrapper struct {
	l *zap.Logger
}

func (z *zapWrapper) Debug(msg string, fields Fields) { z.l.Debug(msg, toZap(fields)...) }
func (z *zapWrapper) Info(msg string, fields Fields)  { z.l.Info(msg, toZap(fields)...) }
func (z *zapWrapper) Warn(msg string, fields Fields)  { z.l.Warn(msg, toZap(fields)...) }
func (z *zapWrapper) Error(msg string, fields Fields) { z.l.Error(msg, toZap(fields)...) }

func (z *zapWrapper) With(fields Fields) Logger {
	return &zapWrapper{l: z.l.With(toZap(fields)...)}
}

func (z *zapWrapper) WithError(err error) Logger {
	return &zapWrapper{l: z.l.With(zap.Error(err))}
}

func (z *zapWrapper) Sync() error {
	return z.l.Sync()
}

func toZap(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
