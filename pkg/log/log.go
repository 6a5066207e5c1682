// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface shared by the simulation engines.
// Key-value pairs follow the zap sugared convention.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
	Sync() error
}

type zapLogger struct {
	log *zap.SugaredLogger
}

// New creates a production logger at info level.
func New() Logger {
	return NewWithLevel("info")
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(level string) Logger {
	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "info":
		lvl = zapcore.InfoLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return &noOpLogger{}
	}

	return &zapLogger{log: l.Sugar()}
}

// NewNamed creates an info-level logger with a name attached to every entry.
func NewNamed(name string) Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return &noOpLogger{}
	}
	return &zapLogger{log: l.Named(name).Sugar()}
}

// NoOp returns a no-op logger.
func NoOp() Logger {
	return &noOpLogger{}
}

// NoLog is a no-op logger instance.
var NoLog = NoOp()

func (l *zapLogger) Debug(msg string, kv ...any) { l.log.Debugw(msg, kv...) }
func (l *zapLogger) Info(msg string, kv ...any)  { l.log.Infow(msg, kv...) }
func (l *zapLogger) Warn(msg string, kv ...any)  { l.log.Warnw(msg, kv...) }
func (l *zapLogger) Error(msg string, kv ...any) { l.log.Errorw(msg, kv...) }
func (l *zapLogger) Sync() error                 { return l.log.Sync() }

// noOpLogger is a logger that does nothing.
type noOpLogger struct{}

func (n *noOpLogger) Debug(msg string, kv ...any) {}
func (n *noOpLogger) Info(msg string, kv ...any)  {}
func (n *noOpLogger) Warn(msg string, kv ...any)  {}
func (n *noOpLogger) Error(msg string, kv ...any) {}
func (n *noOpLogger) Sync() error                 { return nil }
