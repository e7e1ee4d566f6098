package timeutil

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so the current moment can be pinned in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a controllable time for testing. An optional step
// advances the clock on every read, which lets tests observe a non-zero
// elapsed search time from consecutive Now() calls.
type MockClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewMockClock creates a mock clock with the given fixed time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 time string.
// Panics if the time string is invalid (for use in tests only).
func NewMockClockFromString(timeStr string) *MockClock {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return &MockClock{current: t}
}

// Now returns the current mock time, then advances it by the configured
// step (zero by default).
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.current
	m.current = m.current.Add(m.step)
	return t
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// SetStep configures the duration added to the clock after each Now() call.
func (m *MockClock) SetStep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.step = d
}

// Advance moves the mock clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
