// Package sink provides ready-made Sink implementations for the asynclog
// engine: a rotating file sink and a color-capable console sink.
//
// Both format records as single glog-style lines:
//
//	I0823 14:02:11.052863 service started
//
// where the leading letter is the severity and the timestamp is
// month/day hour:minute:second.microsecond.
package sink

import (
	"github.com/xiaojitui007/asynclog"
)

const recordTimeLayout = "0102 15:04:05.000000"

func severityLetter(s asynclog.Severity) byte {
	switch s {
	case asynclog.TraceSeverity:
		return 'T'
	case asynclog.DebugSeverity:
		return 'D'
	case asynclog.InfoSeverity:
		return 'I'
	case asynclog.WarnSeverity:
		return 'W'
	case asynclog.ErrorSeverity:
		return 'E'
	case asynclog.FatalSeverity:
		return 'F'
	default:
		return '?'
	}
}

// appendRecord appends the formatted record to dst without a trailing
// newline. A single trailing newline already present in the message is
// trimmed so every record renders as exactly one line.
func appendRecord(dst []byte, r asynclog.Record) []byte {
	dst = append(dst, severityLetter(r.Severity))
	dst = r.Time.AppendFormat(dst, recordTimeLayout)
	dst = append(dst, ' ')

	message := r.Message
	if n := len(message); n > 0 && message[n-1] == '\n' {
		message = message[:n-1]
	}

	return append(dst, message...)
}

func formatRecord(dst []byte, r asynclog.Record) []byte {
	dst = appendRecord(dst, r)

	return append(dst, '\n')
}
