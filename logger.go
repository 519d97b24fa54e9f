// Package asynclog decouples log-message producers from a slow, file-backed
// log sink through asynchronous double buffering.
//
// Producers append records to the active buffer and wake a dedicated writer
// goroutine. The writer swaps in a fresh buffer and drains the accumulated
// records to the wrapped sink, so producer goroutines never wait on sink
// latency; flushing a log file can block for milliseconds, and in bad cases
// for much longer.
//
// The package provides:
// - An AsyncLogger coordinator with a strict Init → Running → Stopped lifecycle
// - Size-based backpressure bounding buffered memory
// - Synchronous flushing for fatal-grade records so a crash immediately after
//   logging them cannot lose the message
// - A small Sink capability interface so any destination can be wrapped
// - Flush, drop, and sink-error counters with an optional metrics reporter
//
// The semantics are slightly weaker than a fully synchronous logger: a record
// below the fatal severity may still be in memory when the process dies. The
// buffer bound keeps that window small, and Flush and Stop both guarantee
// complete delivery of everything appended before them.
//
// Basic usage:
//
//	fileSink, err := sink.NewFile(sink.FileConfig{Path: "/var/log/app.log"})
//	if err != nil {
//		panic(err)
//	}
//
//	logger := asynclog.NewAsyncLogger(fileSink, asynclog.DefaultConfig())
//	if err := logger.Start(); err != nil {
//		panic(err)
//	}
//	defer logger.Stop()
//
//	logger.Write(asynclog.NewRecord(asynclog.InfoSeverity, []byte("service started")), false)
package asynclog

import (
	"time"
)

// Severity represents the priority of a log record. The zero value is not a
// valid severity; configuration treats it as unset so defaults can apply.
type Severity uint8

const (
	// TraceSeverity represents verbose debugging information.
	TraceSeverity Severity = iota + 1
	// DebugSeverity represents debugging information.
	DebugSeverity
	// InfoSeverity represents general operational information.
	InfoSeverity
	// WarnSeverity represents warning messages.
	WarnSeverity
	// ErrorSeverity represents error messages.
	ErrorSeverity
	// FatalSeverity represents unrecoverable error messages.
	FatalSeverity
)

// String returns the string representation of a severity.
func (s Severity) String() string {
	switch s {
	case TraceSeverity:
		return "TRACE"
	case DebugSeverity:
		return "DEBUG"
	case InfoSeverity:
		return "INFO"
	case WarnSeverity:
		return "WARN"
	case ErrorSeverity:
		return "ERROR"
	case FatalSeverity:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the given Severity is a valid severity, and false otherwise.
func (s Severity) IsValid() bool {
	return s >= TraceSeverity && s <= FatalSeverity
}

// Record is one immutable log event. Ownership of a Record transfers into
// exactly one buffer when it is written; callers must not mutate Message
// afterwards.
type Record struct {
	// Time is when the event occurred.
	Time time.Time
	// Severity is the record's priority.
	Severity Severity
	// Message is the encoded log line payload.
	Message []byte
}

// NewRecord builds a Record stamped with the current time. The message bytes
// are copied so the caller may reuse its slice.
func NewRecord(severity Severity, message []byte) Record {
	buf := make([]byte, len(message))
	copy(buf, message)

	return Record{
		Time:     time.Now(),
		Severity: severity,
		Message:  buf,
	}
}

// ApproximateSize estimates the memory cost of the record inside a buffer:
// per-record bookkeeping overhead plus the payload length. It is a soft
// accounting figure, not an exact byte count.
func (r Record) ApproximateSize() int {
	return recordOverhead + len(r.Message)
}

// Sink is the destination capability consumed by AsyncLogger. Implementations
// own formatting, rotation, and the actual I/O.
//
// Write and Flush are only ever called from the logger's writer goroutine, so
// implementations need no internal locking for them. ApproximateSize may be
// called from any goroutine and is used for reporting only. Records passed to
// Write must not be retained past the call.
type Sink interface {
	// Write appends the records, in order, to the underlying destination.
	Write(records []Record) error
	// Flush pushes any sink-side buffered data through to durable storage.
	Flush() error
	// ApproximateSize reports the current size of the destination. The value
	// is approximate since buffered data may not have been flushed yet.
	ApproximateSize() int64
}
