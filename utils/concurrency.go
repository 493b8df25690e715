package utils

import (
	"sync"
	"time"
)

// IDSet is a thread-safe set for tracking app ids already emitted.
type IDSet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewIDSet creates an empty IDSet.
func NewIDSet() *IDSet {
	return &IDSet{seen: make(map[string]struct{})}
}

// Add returns true if the id was newly added, false if already present.
func (s *IDSet) Add(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seen[id]; exists {
		return false
	}
	s.seen[id] = struct{}{}
	return true
}

// Contains returns true if the id has already been recorded.
func (s *IDSet) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.seen[id]
	return exists
}

// Size returns the number of unique ids tracked.
func (s *IDSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}

// Throttle enforces a minimum interval between successive remote calls.
// This is a politeness policy toward rate-sensitive third-party services,
// not a performance knob.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// NewThrottle creates a Throttle with the given minimum interval.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Wait blocks until at least the configured interval has passed since the
// previous call, then records the current time.
func (t *Throttle) Wait() {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := time.Since(t.last)
	if !t.last.IsZero() && elapsed < t.interval {
		time.Sleep(t.interval - elapsed)
	}
	t.last = time.Now()
}
