// Copyright 2024 DataStone, Inc. All rights reserved.

// Package logger provides the shared logging interface for the module. The
// default implementation is backed by zap; NopLogger is available for code
// paths (and tests) that should stay silent.
package logger

import (
	"go.uber.org/zap"
)

// Ensure implementations satisfy the interface.
var (
	_ Logger = &zapLogger{}
	_ Logger = &nopLogger{}
)

// Logger represents an interface for a shared logger.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	// WithPrefix returns a new Logger with the same configuration as this
	// one, but all logs will carry the given prefix.
	WithPrefix(prefix string) Logger
}

// NopLogger represents a Logger that doesn't do anything.
var NopLogger Logger = &nopLogger{}

type nopLogger struct{}

func (n *nopLogger) Debugf(format string, v ...interface{}) {}
func (n *nopLogger) Infof(format string, v ...interface{})  {}
func (n *nopLogger) Warnf(format string, v ...interface{})  {}
func (n *nopLogger) Errorf(format string, v ...interface{}) {}
func (n *nopLogger) WithPrefix(prefix string) Logger        { return n }

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger returns a zap-backed Logger. When verbose is true the debug
// level is enabled and output is in the human-oriented development format.
func NewZapLogger(verbose bool) Logger {
	var z *zap.Logger
	var err error
	if verbose {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return NopLogger
	}
	return &zapLogger{sugar: z.Sugar()}
}

// NewLoggerFromZap wraps an existing zap logger so hosts with their own zap
// configuration can pass it through.
func NewLoggerFromZap(z *zap.Logger) Logger {
	return &zapLogger{sugar: z.Sugar()}
}

func (l *zapLogger) Debugf(format string, v ...interface{}) { l.sugar.Debugf(format, v...) }
func (l *zapLogger) Infof(format string, v ...interface{})  { l.sugar.Infof(format, v...) }
func (l *zapLogger) Warnf(format string, v ...interface{})  { l.sugar.Warnf(format, v...) }
func (l *zapLogger) Errorf(format string, v ...interface{}) { l.sugar.Errorf(format, v...) }

func (l *zapLogger) WithPrefix(prefix string) Logger {
	return &zapLogger{sugar: l.sugar.Named(prefix)}
}
