package asynclog

import (
	"github.com/hyp3rd/ewrap"
)

// ConfigBuilder provides a fluent API for constructing logger configurations.
// It allows for more readable and chainable configuration setup.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new builder with sensible defaults.
// This is the entry point for the fluent configuration API.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: DefaultConfig(),
	}
}

// WithMaxBufferBytes sets the backpressure bound on buffered record memory.
// Example: builder.WithMaxBufferBytes(1 << 20).
func (b *ConfigBuilder) WithMaxBufferBytes(maxBufferBytes int) *ConfigBuilder {
	b.config.MaxBufferBytes = maxBufferBytes

	return b
}

// WithForceFlushSeverity sets the severity at or above which writes imply a
// sink flush.
func (b *ConfigBuilder) WithForceFlushSeverity(severity Severity) *ConfigBuilder {
	b.config.ForceFlushSeverity = severity

	return b
}

// WithFatalSeverity sets the severity at or above which writes flush
// synchronously before returning.
func (b *ConfigBuilder) WithFatalSeverity(severity Severity) *ConfigBuilder {
	b.config.FatalSeverity = severity

	return b
}

// WithErrorHandler sets the handler invoked with sink write and flush failures.
func (b *ConfigBuilder) WithErrorHandler(handler func(error)) *ConfigBuilder {
	b.config.ErrorHandler = handler

	return b
}

// WithDropHandler sets the handler invoked with records dropped on the
// writer's re-entrant write path.
func (b *ConfigBuilder) WithDropHandler(handler func(Record)) *ConfigBuilder {
	b.config.DropHandler = handler

	return b
}

// WithMetricsReporter sets the reporter receiving metrics snapshots.
func (b *ConfigBuilder) WithMetricsReporter(reporter func(Metrics)) *ConfigBuilder {
	b.config.MetricsReporter = reporter

	return b
}

// Build validates the configuration and returns it.
// Returns an error if the configuration is invalid.
func (b *ConfigBuilder) Build() (Config, error) {
	if b.config.MaxBufferBytes <= 0 {
		return Config{}, ewrap.New("max buffer bytes must be positive")
	}

	if !b.config.ForceFlushSeverity.IsValid() {
		return Config{}, ewrap.New("invalid force-flush severity")
	}

	if !b.config.FatalSeverity.IsValid() {
		return Config{}, ewrap.New("invalid fatal severity")
	}

	if b.config.FatalSeverity < b.config.ForceFlushSeverity {
		return Config{}, ewrap.New("fatal severity must not be below the force-flush severity")
	}

	return b.config, nil
}
