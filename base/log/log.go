package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields is a set of key/value pairs to attach to a log line
type Fields map[string]interface{}

// Logger wraps zap's sugared logger with an immutable field list. WithField
// copies the list so a derived logger never leaks fields into its parent.
type Logger struct {
	sugar *zap.SugaredLogger
	kvs   []interface{}
}

var root *zap.SugaredLogger

func init() {
	cfg := zap.NewProductionConfig()
	if os.Getenv("LOG_LEVEL") == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	root = logger.Sugar()
}

// Log returns a logger with no fields attached
func Log() Logger {
	return Logger{sugar: root}
}

// WithField returns a logger carrying the parent's fields plus key/value
func (l Logger) WithField(key string, value interface{}) Logger {
	kvs := make([]interface{}, 0, len(l.kvs)+2)
	kvs = append(kvs, l.kvs...)
	kvs = append(kvs, key, value)
	return Logger{sugar: l.sugar, kvs: kvs}
}

// WithFields returns a logger carrying the parent's fields plus fields
func (l Logger) WithFields(fields Fields) Logger {
	out := l
	for k, v := range fields {
		out = out.WithField(k, v)
	}
	return out
}

func (l Logger) Debug(args ...interface{}) {
	l.sugar.With(l.kvs...).Debug(args...)
}

func (l Logger) Info(args ...interface{}) {
	l.sugar.With(l.kvs...).Info(args...)
}

func (l Logger) Warn(args ...interface{}) {
	l.sugar.With(l.kvs...).Warn(args...)
}

func (l Logger) Error(args ...interface{}) {
	l.sugar.With(l.kvs...).Error(args...)
}

func (l Logger) Panic(args ...interface{}) {
	l.sugar.With(l.kvs...).Panic(args...)
}
