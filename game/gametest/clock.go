package gametest

import "time"

// Countdown returns a clock starting at start that loses step every time it is
// read, so a search runs out of time after a fixed number of polls.
func Countdown(start, step time.Duration) func() time.Duration {
	left := start
	return func() time.Duration {
		current := left
		left -= step
		return current
	}
}

// Frozen returns a clock that always reports left
func Frozen(left time.Duration) func() time.Duration {
	return func() time.Duration {
		return left
	}
}

// Polls wraps clock and counts how often it is read
func Polls(clock func() time.Duration) (func() time.Duration, *int) {
	count := 0
	return func() time.Duration {
		count++
		return clock()
	}, &count
}
