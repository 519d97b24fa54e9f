package configloader

import (
	"github.com/hyp3rd/ewrap"

	"github.com/xiaojitui007/asynclog"
)

type rawConfig struct {
	MaxBufferBytes     *int   `mapstructure:"max_buffer_bytes"     yaml:"max_buffer_bytes"`
	ForceFlushSeverity string `mapstructure:"force_flush_severity" yaml:"force_flush_severity"`
	FatalSeverity      string `mapstructure:"fatal_severity"       yaml:"fatal_severity"`
}

func applyRaw(raw rawConfig) (*asynclog.Config, error) {
	builder := asynclog.NewConfigBuilder()

	if raw.MaxBufferBytes != nil {
		if *raw.MaxBufferBytes <= 0 {
			return nil, ewrap.New("max_buffer_bytes must be positive")
		}

		builder.WithMaxBufferBytes(*raw.MaxBufferBytes)
	}

	if raw.ForceFlushSeverity != "" {
		severity, err := asynclog.ParseSeverity(raw.ForceFlushSeverity)
		if err != nil {
			return nil, err
		}

		builder.WithForceFlushSeverity(severity)
	}

	if raw.FatalSeverity != "" {
		severity, err := asynclog.ParseSeverity(raw.FatalSeverity)
		if err != nil {
			return nil, err
		}

		builder.WithFatalSeverity(severity)
	}

	cfg, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func allKeys() []string {
	return []string{
		"max_buffer_bytes",
		"force_flush_severity",
		"fatal_severity",
	}
}
