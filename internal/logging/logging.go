// Package logging builds the zap logger used across the diary.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a logger for human-readable console output on w,
// normally stderr. Debug messages are only written when debug is set.
func New(w io.Writer, debug bool) *zap.Logger {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(w), level(debug))
	return zap.New(core)
}

func level(debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func encoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	config.TimeKey = ""
	config.NameKey = ""
	config.CallerKey = ""
	config.MessageKey = "message"
	config.StacktraceKey = ""
	return config
}
