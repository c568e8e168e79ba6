package ticker

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs requested frames on a single goroutine, at most one per
// tick. It stands in for a display refresh callback in headless hosts.
type Scheduler struct {
	interval time.Duration

	mu      sync.Mutex
	pending func()
	wake    chan struct{}
}

func New(fps int) *Scheduler {
	if fps <= 0 {
		fps = 60
	}
	return &Scheduler{
		interval: time.Second / time.Duration(fps),
		wake:     make(chan struct{}, 1),
	}
}

func (s *Scheduler) RequestFrame(fn func()) {
	s.mu.Lock()
	s.pending = fn
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is done, running the pending frame on each tick.
func (s *Scheduler) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		s.mu.Lock()
		fn := s.pending
		s.pending = nil
		s.mu.Unlock()
		if fn == nil {
			// nothing requested; park until a frame is requested
			select {
			case <-ctx.Done():
				return
			case <-s.wake:
			}
			continue
		}
		fn()
	}
}
