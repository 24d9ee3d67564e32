package driven

import "time"

// Clock supplies the current time. Timestamp defaults and generator date
// ranges take a Clock rather than calling time.Now directly, so tests can
// pin the instant.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now returns the function's result.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}
