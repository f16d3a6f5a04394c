package clock

import "time"

// Clock stamps match start and finish times.
// Tests substitute mocks.MockClock to control match durations.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// RealClock reads the wall clock
type RealClock struct{}

func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since is time.Since; match durations are measured with it while a match is running
func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
