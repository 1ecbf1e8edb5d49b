package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/andikahmad/warkop/internal/common/clock Clock
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// After waits for the duration to elapse on the system clock
func (c *DefaultClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
