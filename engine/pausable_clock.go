package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable animation time over a real clock
type PausableClock struct {
	mu sync.RWMutex

	source    Clock
	startTime time.Time // Source time at creation

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (source time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock starts animation time at zero on source's current time
func NewPausableClock(source Clock) *PausableClock {
	return &PausableClock{
		source:    source,
		startTime: source.Now(),
	}
}

// Elapsed returns animation time since creation, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStartTime.Sub(pc.startTime) - pc.totalPausedTime
	}
	return pc.source.Now().Sub(pc.startTime) - pc.totalPausedTime
}

// Seconds returns Elapsed in seconds, the shader's time parameter
func (pc *PausableClock) Seconds() float64 {
	return pc.Elapsed().Seconds()
}

// Pause stops animation time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.source.Now()
	}
}

// Resume continues animation time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(true, false) {
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// Toggle flips the pause state and reports whether the clock is now paused
func (pc *PausableClock) Toggle() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	now := pc.source.Now()
	if pc.isPaused.Load() {
		pc.totalPausedTime += now.Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
		pc.isPaused.Store(false)
		return false
	}
	pc.pauseStartTime = now
	pc.isPaused.Store(true)
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
