/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/logging/api"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/logging/metadata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rwmutex = &sync.RWMutex{}
var moduleLevels = &metadata.ModuleLevels{}

// Formats accepted by NewZapLogger
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Provider hands out module loggers backed by a single zap logger.
// Level filtering is done per module here, so the zap core should be
// built with the lowest level that may ever be enabled.
type Provider struct {
	base *zap.Logger
}

// NewProvider returns a provider writing through the given zap logger
func NewProvider(base *zap.Logger) *Provider {
	return &Provider{base: base}
}

//LoggerProvider returns the default provider: console output on stderr
func LoggerProvider() api.LoggerProvider {
	l, err := NewZapLogger(FormatConsole)
	if err != nil {
		// the console encoder with stderr output never fails to build
		panic(err)
	}
	return NewProvider(l)
}

// NewZapLogger builds a zap logger writing to stderr in the given format.
func NewZapLogger(format string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(format) {
	case "", FormatConsole:
		cfg = zap.NewDevelopmentConfig()
		cfg.Development = false
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case FormatJSON:
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, errors.Errorf("unsupported log format [%s]", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

//GetLogger returns a logger for the given module
func (p *Provider) GetLogger(module string) api.Logger {
	// two frames: Log method and the common/logging wrapper
	sugar := p.base.Named(module).WithOptions(zap.AddCallerSkip(2)).Sugar()
	return &Log{sugar: sugar, module: module}
}

//Log is a module logger; messages below the module level are dropped
type Log struct {
	sugar  *zap.SugaredLogger
	module string
}

//SetLevel - setting log level for given module
func SetLevel(module string, level api.Level) {
	rwmutex.Lock()
	defer rwmutex.Unlock()
	moduleLevels.SetLevel(module, level)
}

//GetLevel - getting log level for given module
func GetLevel(module string) api.Level {
	rwmutex.RLock()
	defer rwmutex.RUnlock()
	return moduleLevels.GetLevel(module)
}

//IsEnabledFor - Check if given log level is enabled for given module
func IsEnabledFor(module string, level api.Level) bool {
	rwmutex.RLock()
	defer rwmutex.RUnlock()
	return moduleLevels.IsEnabledFor(module, level)
}

// Fatal is CRITICAL log followed by a call to os.Exit(1).
func (l *Log) Fatal(args ...interface{}) {
	l.sugar.Fatal(args...)
}

// Fatalf is CRITICAL log formatted followed by a call to os.Exit(1).
func (l *Log) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

// Panic is CRITICAL log followed by a call to panic()
func (l *Log) Panic(args ...interface{}) {
	l.sugar.Panic(args...)
}

// Panicf is CRITICAL log formatted followed by a call to panic()
func (l *Log) Panicf(format string, args ...interface{}) {
	l.sugar.Panicf(format, args...)
}

// Debug logs at DEBUG level.
func (l *Log) Debug(args ...interface{}) {
	if l.enabled(api.DEBUG) {
		l.sugar.Debug(args...)
	}
}

// Debugf logs a formatted message at DEBUG level.
func (l *Log) Debugf(format string, args ...interface{}) {
	if l.enabled(api.DEBUG) {
		l.sugar.Debugf(format, args...)
	}
}

// Debugw logs msg with structured context.
func (l *Log) Debugw(msg string, keysAndValues ...interface{}) {
	if l.enabled(api.DEBUG) {
		l.sugar.Debugw(msg, keysAndValues...)
	}
}

// Info logs at INFO level.
func (l *Log) Info(args ...interface{}) {
	if l.enabled(api.INFO) {
		l.sugar.Info(args...)
	}
}

// Infof logs a formatted message at INFO level.
func (l *Log) Infof(format string, args ...interface{}) {
	if l.enabled(api.INFO) {
		l.sugar.Infof(format, args...)
	}
}

// Infow logs msg with structured context.
func (l *Log) Infow(msg string, keysAndValues ...interface{}) {
	if l.enabled(api.INFO) {
		l.sugar.Infow(msg, keysAndValues...)
	}
}

// Warn logs at WARNING level.
func (l *Log) Warn(args ...interface{}) {
	if l.enabled(api.WARNING) {
		l.sugar.Warn(args...)
	}
}

// Warnf logs a formatted message at WARNING level.
func (l *Log) Warnf(format string, args ...interface{}) {
	if l.enabled(api.WARNING) {
		l.sugar.Warnf(format, args...)
	}
}

// Warnw logs msg with structured context.
func (l *Log) Warnw(msg string, keysAndValues ...interface{}) {
	if l.enabled(api.WARNING) {
		l.sugar.Warnw(msg, keysAndValues...)
	}
}

// Error logs at ERROR level.
func (l *Log) Error(args ...interface{}) {
	if l.enabled(api.ERROR) {
		l.sugar.Error(args...)
	}
}

// Errorf logs a formatted message at ERROR level.
func (l *Log) Errorf(format string, args ...interface{}) {
	if l.enabled(api.ERROR) {
		l.sugar.Errorf(format, args...)
	}
}

// Errorw logs msg with structured context.
func (l *Log) Errorw(msg string, keysAndValues ...interface{}) {
	if l.enabled(api.ERROR) {
		l.sugar.Errorw(msg, keysAndValues...)
	}
}

// Sync flushes any buffered entries of the underlying zap logger.
func (l *Log) Sync() error {
	return l.sugar.Sync()
}

func (l *Log) enabled(level api.Level) bool {
	return IsEnabledFor(l.module, level)
}
