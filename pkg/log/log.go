// Package log provides application-level logging on top of the asynclog
// engine.
//
// It offers a simplified API for wiring a logger with appropriate defaults:
//
// - In non-production environments: Debug level with colored console output
// - In production environments: Info level
// - Severity filtering before records reach the buffering engine
// - Fatal methods that flush synchronously and terminate the process
//
// This package is intended to be the primary entry point for applications
// using the asynclog package, providing leveled and formatted methods over a
// running AsyncLogger.
//
// Usage:
//
//	logger, err := log.NewWithDefaults("development")
//	if err != nil {
//		panic(err)
//	}
//	defer logger.Stop()
//
//	logger.Info("service started")
//	logger.Warnf("queue depth %d", depth)
package log

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/hyp3rd/ewrap"

	"github.com/xiaojitui007/asynclog"
	"github.com/xiaojitui007/asynclog/internal/constants"
	"github.com/xiaojitui007/asynclog/pkg/sink"
)

//nolint:gochecknoglobals // indirection for testing Fatal without killing the process.
var osExit = os.Exit

// Logger filters by severity and forwards records to an AsyncLogger.
type Logger struct {
	core  *asynclog.AsyncLogger
	level atomic.Int32
}

// New wraps an already-started AsyncLogger with leveled logging methods.
func New(core *asynclog.AsyncLogger, level asynclog.Severity) *Logger {
	logger := &Logger{core: core}
	logger.SetLevel(level)

	return logger
}

// NewWithDefaults creates and starts a logger with the specified environment.
// It configures a colored console sink on stdout and sets the level to Debug
// for non-production environments and Info otherwise.
func NewWithDefaults(environment string) (*Logger, error) {
	consoleSink := sink.NewConsole(os.Stdout, asynclog.DefaultColorConfig())

	core := asynclog.NewAsyncLogger(consoleSink, asynclog.DefaultConfig())

	err := core.Start()
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to start logger")
	}

	level := asynclog.InfoSeverity
	if environment == constants.NonProductionEnvironment {
		level = asynclog.DebugSeverity
	}

	return New(core, level), nil
}

// Core returns the underlying AsyncLogger.
func (l *Logger) Core() *asynclog.AsyncLogger {
	return l.core
}

// GetLevel returns the current minimum severity.
func (l *Logger) GetLevel() asynclog.Severity {
	return asynclog.Severity(l.level.Load())
}

// SetLevel sets the minimum severity to log.
func (l *Logger) SetLevel(level asynclog.Severity) {
	l.level.Store(int32(level))
}

// Flush blocks until everything logged so far has reached the sink.
func (l *Logger) Flush() error {
	return l.core.Flush()
}

// Stop flushes remaining records and terminates the underlying logger.
func (l *Logger) Stop() error {
	return l.core.Stop()
}

// Trace logs a message at the Trace severity.
func (l *Logger) Trace(msg string) { l.write(asynclog.TraceSeverity, msg) }

// Debug logs a message at the Debug severity.
func (l *Logger) Debug(msg string) { l.write(asynclog.DebugSeverity, msg) }

// Info logs a message at the Info severity.
func (l *Logger) Info(msg string) { l.write(asynclog.InfoSeverity, msg) }

// Warn logs a message at the Warn severity.
func (l *Logger) Warn(msg string) { l.write(asynclog.WarnSeverity, msg) }

// Error logs a message at the Error severity.
func (l *Logger) Error(msg string) { l.write(asynclog.ErrorSeverity, msg) }

// Fatal logs a message at the Fatal severity, waits for it to reach the
// sink, and terminates the process.
func (l *Logger) Fatal(msg string) {
	l.write(asynclog.FatalSeverity, msg)
	osExit(1)
}

// Tracef logs a formatted message at the Trace severity.
func (l *Logger) Tracef(format string, args ...any) {
	l.writef(asynclog.TraceSeverity, format, args...)
}

// Debugf logs a formatted message at the Debug severity.
func (l *Logger) Debugf(format string, args ...any) {
	l.writef(asynclog.DebugSeverity, format, args...)
}

// Infof logs a formatted message at the Info severity.
func (l *Logger) Infof(format string, args ...any) {
	l.writef(asynclog.InfoSeverity, format, args...)
}

// Warnf logs a formatted message at the Warn severity.
func (l *Logger) Warnf(format string, args ...any) {
	l.writef(asynclog.WarnSeverity, format, args...)
}

// Errorf logs a formatted message at the Error severity.
func (l *Logger) Errorf(format string, args ...any) {
	l.writef(asynclog.ErrorSeverity, format, args...)
}

// Fatalf logs a formatted message at the Fatal severity, waits for it to
// reach the sink, and terminates the process.
func (l *Logger) Fatalf(format string, args ...any) {
	l.writef(asynclog.FatalSeverity, format, args...)
	osExit(1)
}

func (l *Logger) write(severity asynclog.Severity, msg string) {
	if severity < l.GetLevel() {
		return
	}

	// Lifecycle errors here are contract violations by the host application;
	// a logging front-end has nowhere to report them.
	_ = l.core.Write(asynclog.NewRecord(severity, []byte(msg)), false)
}

func (l *Logger) writef(severity asynclog.Severity, format string, args ...any) {
	if severity < l.GetLevel() {
		return
	}

	_ = l.core.Write(asynclog.NewRecord(severity, fmt.Appendf(nil, format, args...)), false)
}
