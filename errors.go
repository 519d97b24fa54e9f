package asynclog

import (
	"github.com/hyp3rd/ewrap"
)

// Lifecycle precondition errors. These signal contract violations by the
// caller, not runtime conditions the logger recovers from.
var (
	// ErrAlreadyStarted is returned when Start is called outside the Init state.
	ErrAlreadyStarted = ewrap.New("logger already started")

	// ErrNotRunning is returned when Write, Flush, or Stop is called before Start.
	ErrNotRunning = ewrap.New("logger is not running")

	// ErrStopped is returned when Write or Flush is called after Stop.
	ErrStopped = ewrap.New("logger is stopped")
)
