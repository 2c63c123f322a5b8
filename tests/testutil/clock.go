package testutil

import (
	"time"

	"github.com/garasindo/sparepart-service/internal/pkg/clock"
)

// NewFixedClock returns a clock frozen at t, for tests that assert exact
// timestamps.
func NewFixedClock(t time.Time) clock.Clock {
	return clock.NewMockClock(t)
}

// NewMockClock returns an adjustable clock started at the current time.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(time.Now())
}
