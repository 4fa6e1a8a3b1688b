package loop

import (
	"sync"
	"time"
)

// TickStats summarizes observed tick durations.
type TickStats struct {
	Samples int
	Average time.Duration
	Max     time.Duration
	Last    time.Duration
}

// Budget returns the share of period the average tick consumed.
func (s TickStats) Budget(period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	return float64(s.Average) / float64(period)
}

// TickMonitor accumulates how long simulation ticks take. A nil monitor
// ignores samples. Safe for concurrent use, so a server can read it while a
// session runs.
type TickMonitor struct {
	mu      sync.Mutex
	samples int
	total   time.Duration
	max     time.Duration
	last    time.Duration
}

// NewTickMonitor creates an empty monitor.
func NewTickMonitor() *TickMonitor {
	return &TickMonitor{}
}

// Observe records one tick.
func (m *TickMonitor) Observe(d time.Duration) {
	if m == nil || d < 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples++
	m.total += d
	m.max = max(m.max, d)
	m.last = d
}

// Stats returns a copy of the collected statistics.
func (m *TickMonitor) Stats() TickStats {
	if m == nil {
		return TickStats{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := TickStats{Samples: m.samples, Max: m.max, Last: m.last}
	if m.samples > 0 {
		s.Average = m.total / time.Duration(m.samples)
	}
	return s
}

// Reset drops all samples.
func (m *TickMonitor) Reset() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples, m.total, m.max, m.last = 0, 0, 0, 0
}
