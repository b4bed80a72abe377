// Package clock supplies the time source for the session engine. The engine
// never reads time.Now directly so that tests can control time.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time. Values returned by the system clock carry
// Go's monotonic reading, so durations derived from them are immune to
// wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// New returns the system clock.
func New() Clock {
	return systemClock{}
}

// Mock is a manually advanced clock for deterministic tests.
type Mock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

// Advance moves the clock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)
}

// Set moves the clock to an absolute time.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = t
}
