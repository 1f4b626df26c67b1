package logging

import (
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]interface{}

var (
	mu     sync.RWMutex
	logger = mustBuild("info", []string{"stderr"})
)

func newConfig(level string, outputPaths []string) (zap.Config, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return zap.Config{}, err
	}
	return zap.Config{
		Level:    lvl,
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}, nil
}

func mustBuild(level string, outputPaths []string) *zap.Logger {
	cfg, err := newConfig(level, outputPaths)
	if err != nil {
		panic(err)
	}
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l
}

// Configure replaces the process logger. outputPaths accepts anything zap
// does: "stdout", "stderr" or file paths.
func Configure(level string, outputPaths []string) error {
	if len(outputPaths) == 0 {
		outputPaths = []string{"stderr"}
	}
	cfg, err := newConfig(level, outputPaths)
	if err != nil {
		return err
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	old := logger
	logger = l
	mu.Unlock()
	_ = old.Sync()
	return nil
}

// Discard silences all logging.
func Discard() {
	mu.Lock()
	logger = zap.NewNop()
	mu.Unlock()
}

// Sync flushes buffered entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func toZap(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	current().Info(msg, toZap(fields)...)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	zf := toZap(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	current().Error(msg, zf...)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	Error(msg, err, fields)
	Sync()
	os.Exit(1)
}
