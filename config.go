package asynclog

import (
	"strings"

	"github.com/hyp3rd/ewrap"
)

const (
	// DefaultMaxBufferBytes is the default bound on buffered record memory.
	DefaultMaxBufferBytes = 2 * 1024 * 1024
	// DefaultForceFlushSeverity is the default severity at or above which a
	// write implies a sink flush once the record is drained.
	DefaultForceFlushSeverity = WarnSeverity
	// DefaultFatalSeverity is the default severity at or above which a write
	// is flushed synchronously before returning.
	DefaultFatalSeverity = FatalSeverity
)

// Config holds configuration for an AsyncLogger.
type Config struct {
	// MaxBufferBytes bounds the approximate size of the active buffer.
	// Producers block once the bound is reached until the writer completes a
	// drain cycle.
	MaxBufferBytes int
	// ForceFlushSeverity marks records at or above this severity as requiring
	// a sink flush after they are drained.
	ForceFlushSeverity Severity
	// FatalSeverity marks records at or above this severity as synchronous:
	// Write does not return until the record has been handed to the sink and
	// the sink flushed.
	FatalSeverity Severity
	// ErrorHandler is called with sink write and flush failures. The writer
	// does not retry; it surfaces the error and keeps draining.
	ErrorHandler func(error)
	// DropHandler is invoked with each record dropped on the writer's own
	// re-entrant write path.
	DropHandler func(Record)
	// MetricsReporter receives a metrics snapshot after every write and drain.
	MetricsReporter func(Metrics)
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		MaxBufferBytes:     DefaultMaxBufferBytes,
		ForceFlushSeverity: DefaultForceFlushSeverity,
		FatalSeverity:      DefaultFatalSeverity,
		ErrorHandler:       nil,
		DropHandler:        nil,
		MetricsReporter:    nil,
	}
}

// ParseSeverity parses the given severity string and returns the matching
// Severity value, or an error if the string is not a recognized severity.
func ParseSeverity(severity string) (Severity, error) {
	// Normalize the input to lowercase for case-insensitive comparison
	switch strings.ToLower(severity) {
	case "trace":
		return TraceSeverity, nil
	case "debug":
		return DebugSeverity, nil
	case "info":
		return InfoSeverity, nil
	case "warn", "warning":
		return WarnSeverity, nil
	case "error":
		return ErrorSeverity, nil
	case "fatal":
		return FatalSeverity, nil
	default:
		return 0, ewrap.New("invalid severity: " + severity)
	}
}
