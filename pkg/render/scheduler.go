package render

import (
	"context"
	"sync"
)

// Result reports the outcome of one scheduled render.
type Result struct {
	Frame  Frame
	Raster *Raster
	Err    error
}

// Scheduler runs renders off the input loop. Requests made while a render
// is in flight are coalesced: only the latest frame is rendered next.
type Scheduler struct {
	ctx      context.Context
	renderer *Renderer
	onResult func(Result)

	mu      sync.Mutex
	pending *Frame
	running bool
	idle    *sync.Cond
}

// NewScheduler creates a scheduler. onResult is called from the render
// goroutine after every pass.
func NewScheduler(ctx context.Context, r *Renderer, onResult func(Result)) *Scheduler {
	s := &Scheduler{ctx: ctx, renderer: r, onResult: onResult}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// Request queues f, replacing any frame that has not started yet.
func (s *Scheduler) Request(f Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = &f
	if !s.running {
		s.running = true
		go s.loop()
	}
}

// Busy reports whether a render is queued or in flight.
func (s *Scheduler) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Wait blocks until every requested frame has been rendered.
func (s *Scheduler) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.running {
		s.idle.Wait()
	}
}

func (s *Scheduler) loop() {
	for {
		s.mu.Lock()
		f := s.pending
		s.pending = nil
		if f == nil {
			s.running = false
			s.idle.Broadcast()
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		raster, err := s.renderer.Render(s.ctx, *f)
		if s.onResult != nil {
			s.onResult(Result{Frame: *f, Raster: raster, Err: err})
		}
	}
}
