/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package api

// Level defines all available log levels for log messages.
type Level int

// Log levels.
const (
	CRITICAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

//Logger - Standard logger interface
type Logger interface {
	Fatal(args ...interface{})

	Fatalf(format string, args ...interface{})

	Panic(args ...interface{})

	Panicf(format string, args ...interface{})

	Debug(args ...interface{})

	Debugf(format string, args ...interface{})

	// Debugw logs a message with alternating key/value pairs
	Debugw(msg string, keysAndValues ...interface{})

	Info(args ...interface{})

	Infof(format string, args ...interface{})

	Infow(msg string, keysAndValues ...interface{})

	Warn(args ...interface{})

	Warnf(format string, args ...interface{})

	Warnw(msg string, keysAndValues ...interface{})

	Error(args ...interface{})

	Errorf(format string, args ...interface{})

	Errorw(msg string, keysAndValues ...interface{})
}

// LoggerProvider is a factory for module loggers
type LoggerProvider interface {
	GetLogger(module string) Logger
}

// LoggingType defines the logging section of the config
type LoggingType struct {
	Level  string
	Format string
}
