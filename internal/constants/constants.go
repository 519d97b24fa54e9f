// Package constants provides fixed values shared across the logger system.
// These constants define environment names and default durations to ensure
// consistency across the codebase.
package constants

import "time"

const (
	// NonProductionEnvironment is the environment name for non-production environments.
	NonProductionEnvironment = "development"
	// DefaultTimeout is the default timeout for metrics emission.
	DefaultTimeout = 5 * time.Second
)
