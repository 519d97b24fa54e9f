package asynclog

//nolint:revive // Pointless to comment the colors.
const (
	// ANSI color codes for terminal output.

	// Regular colors.

	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	// Bold colors.

	BoldRed = "\x1b[31;1m"

	// Reset resets the terminal's color settings.
	Reset = "\x1b[0m"
)

// DefaultSeverityColors returns a map of severities to their default ANSI
// color codes. The colors are chosen to provide good visibility and contrast
// for each severity.
func DefaultSeverityColors() map[Severity]string {
	return map[Severity]string{
		TraceSeverity: Magenta,
		DebugSeverity: Blue,
		InfoSeverity:  Green,
		WarnSeverity:  Yellow,
		ErrorSeverity: Red,
		FatalSeverity: BoldRed,
	}
}

// ColorConfig holds color-related configuration for console sinks.
// Enable enables colored output.
// ForceTTY forces colored output even when the target is not a terminal.
// SeverityColors maps severities to their ANSI color codes.
type ColorConfig struct {
	// Enable enables colored output
	Enable bool
	// ForceTTY forces colored output even when the target is not a terminal
	ForceTTY bool
	// SeverityColors maps severities to their ANSI color codes
	SeverityColors map[Severity]string
}

// DefaultColorConfig returns the default color configuration. The returned
// ColorConfig has Enable set to true, ForceTTY set to false, and
// SeverityColors set to the DefaultSeverityColors map.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		Enable:         true,
		ForceTTY:       false,
		SeverityColors: DefaultSeverityColors(),
	}
}
