// Package playbacktest provides a manual clock for driving playback in
// tests without sleeping.
package playbacktest

import (
	"sort"
	"sync"
	"time"

	"github.com/abhisek/viralquiz/internal/playback"
)

// Scheduler is a playback.Scheduler whose time only moves on Advance.
// Callbacks run synchronously on the goroutine calling Advance.
type Scheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*timer
}

// New returns a Scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

type timer struct {
	s    *Scheduler
	at   time.Duration
	seq  int
	f    func()
	done bool
}

func (t *timer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.s.remove(t)
	return true
}

// AfterFunc schedules f at Now()+d.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) playback.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &timer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that falls
// due in deadline order, including ones scheduled by earlier callbacks.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		next := s.earliest()
		if next == nil || next.at > target {
			break
		}
		s.now = next.at
		next.done = true
		s.remove(next)

		s.mu.Unlock()
		next.f()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// Now is the elapsed simulated time.
func (s *Scheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending is the number of callbacks not yet fired or stopped.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// NextIn is the delay until the next callback; ok is false if none.
func (s *Scheduler) NextIn() (d time.Duration, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.earliest()
	if next == nil {
		return 0, false
	}
	return next.at - s.now, true
}

func (s *Scheduler) earliest() *timer {
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		a, b := s.pending[i], s.pending[j]
		if a.at != b.at {
			return a.at < b.at
		}
		return a.seq < b.seq
	})
	return s.pending[0]
}

func (s *Scheduler) remove(t *timer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
