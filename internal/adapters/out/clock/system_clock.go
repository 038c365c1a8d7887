// Package clock provides the wall clock used by command handlers.
package clock

import "time"

type SystemClock struct{}

func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current time in UTC, truncated to microseconds so that values
// survive a round trip through timestamptz unchanged.
func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
