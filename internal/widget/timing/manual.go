package timing

import (
	"sync"
	"time"
)

// ManualScheduler is a fake clock. Time only moves when Advance is called,
// and due callbacks run synchronously on the caller's goroutine in deadline
// order (ties in scheduling order).
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	s    *ManualScheduler
	at   time.Time
	seq  uint64
	f    func()
	done bool
}

// NewManualScheduler returns a fake clock starting at start. A zero start
// uses a fixed, arbitrary instant.
func NewManualScheduler(start time.Time) *ManualScheduler {
	if start.IsZero() {
		start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return &ManualScheduler{now: start}
}

func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{s: s, at: s.now.Add(d), seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.s.compactLocked()
	return true
}

// Advance moves the clock forward by d, firing every callback whose
// deadline falls inside the window. Callbacks scheduled by callbacks are
// fired too if they come due before the window closes.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDueLocked(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.at
		next.done = true
		s.compactLocked()
		s.mu.Unlock()

		next.f()
	}
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *ManualScheduler) nextDueLocked(target time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range s.pending {
		if t.done || t.at.After(target) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *ManualScheduler) compactLocked() {
	kept := s.pending[:0]
	for _, t := range s.pending {
		if !t.done {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.pending); i++ {
		s.pending[i] = nil
	}
	s.pending = kept
}
