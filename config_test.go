package asynclog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, DefaultMaxBufferBytes, config.MaxBufferBytes)
	assert.Equal(t, DefaultForceFlushSeverity, config.ForceFlushSeverity)
	assert.Equal(t, DefaultFatalSeverity, config.FatalSeverity)
	assert.Nil(t, config.ErrorHandler)
	assert.Nil(t, config.DropHandler)
	assert.Nil(t, config.MetricsReporter)
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{TraceSeverity, "TRACE"},
		{DebugSeverity, "DEBUG"},
		{InfoSeverity, "INFO"},
		{WarnSeverity, "WARN"},
		{ErrorSeverity, "ERROR"},
		{FatalSeverity, "FATAL"},
		{Severity(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.severity.String())
		})
	}
}

func TestSeverityIsValid(t *testing.T) {
	assert.True(t, TraceSeverity.IsValid())
	assert.True(t, FatalSeverity.IsValid())
	assert.False(t, Severity(0).IsValid())
	assert.False(t, Severity(42).IsValid())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input   string
		want    Severity
		wantErr bool
	}{
		{"trace", TraceSeverity, false},
		{"DEBUG", DebugSeverity, false},
		{"Info", InfoSeverity, false},
		{"warn", WarnSeverity, false},
		{"warning", WarnSeverity, false},
		{"error", ErrorSeverity, false},
		{"fatal", FatalSeverity, false},
		{"verbose", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)

			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRecordCopiesMessage(t *testing.T) {
	message := []byte("mutable")
	record := NewRecord(WarnSeverity, message)

	message[0] = 'X'

	assert.Equal(t, "mutable", string(record.Message))
	assert.Equal(t, WarnSeverity, record.Severity)
	assert.False(t, record.Time.IsZero())
	assert.Equal(t, recordOverhead+7, record.ApproximateSize())
}
