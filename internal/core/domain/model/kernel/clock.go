package kernel

import "time"

// Clock supplies the current time to the domain.
// Injecting a Clock instead of calling time.Now directly keeps timestamp
// assignment (createdAt, updatedAt, event timestamps) deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the system time.
type SystemClock struct{}

// NewSystemClock creates a Clock that returns the current system time.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock that always returns the same instant.
// Intended for tests that need deterministic timestamps.
type FixedClock struct {
	instant time.Time
}

// NewFixedClock creates a Clock pinned to the given instant.
func NewFixedClock(instant time.Time) FixedClock {
	return FixedClock{instant: instant}
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.instant
}
