// Package log builds the zap loggers utilkit components accept.
package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity threshold of a logger.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogDebug:
		return zap.DebugLevel
	case LogWarn:
		return zap.WarnLevel
	case LogError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// NewConsole returns a human readable logger writing to w at the given level.
func NewConsole(w io.Writer, level LogLevel) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level.zapLevel(),
	)
	return zap.New(consoleCore)
}

// NewTestLogger logs everything to stdout.
func NewTestLogger() *zap.Logger {
	return NewConsole(os.Stdout, LogDebug)
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
