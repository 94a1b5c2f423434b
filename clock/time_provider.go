package clock

import (
	"sync"
	"time"
)

// TimeSource supplies the current time and timed waits
type TimeSource interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// After waits for d on the wall clock
func (p *TimeProvider) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// MockTimeProvider provides a controllable time source for testing
// After advances the mock time by the requested duration and fires at once
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	waited      time.Duration
	waits       int
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// After advances the mock time by d and returns an already-fired channel
func (m *MockTimeProvider) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	m.currentTime = m.currentTime.Add(d)
	m.waited += d
	m.waits++
	now := m.currentTime
	m.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

// Waited returns the total duration slept through After and the call count
func (m *MockTimeProvider) Waited() (time.Duration, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.waited, m.waits
}
