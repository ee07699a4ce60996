// Package logging builds the zap loggers used by the datum CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for file logs
const (
	maxSizeMB  = 20
	maxBackups = 5
	maxAgeDays = 14
)

// New returns a file logger when logFile is set, otherwise a console logger
func New(logFile, level string) (*zap.Logger, error) {
	if logFile == "" {
		return NewConsole(level)
	}
	return NewFile(logFile, level), nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// NewConsole builds a production logger writing JSON to stderr
func NewConsole(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig = encoderConfig()
	config.Level = zap.NewAtomicLevelAt(ParseLevel(level))

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewFile builds a JSON logger writing to logFile, rotated by size and age
// with gzip-compressed backups
func NewFile(logFile, level string) *zap.Logger {
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	})

	return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), sink, ParseLevel(level)))
}

// ParseLevel parses a level name, falling back to info
func ParseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
