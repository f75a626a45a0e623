package engine

import (
	"context"
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Sleep advances the mocked time instantly and records the duration
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      []time.Duration
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

// Sleep advances time by d unless ctx is already done
func (m *MockTimeProvider) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	if d > 0 {
		m.currentTime = m.currentTime.Add(d)
	}
	return nil
}

// Sleeps returns a copy of every duration passed to Sleep
func (m *MockTimeProvider) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]time.Duration(nil), m.sleeps...)
}
