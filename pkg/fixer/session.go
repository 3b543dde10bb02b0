package fixer

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexspark86/Fixer/pkg/dom"
	"github.com/alexspark86/Fixer/pkg/errors"
)

const (
	// scrollThrottleWindow bounds evaluation frequency: bursts of scroll
	// signals collapse to at most one pass per window, with a trailing
	// pass for signals that arrived inside it.
	scrollThrottleWindow = 16 * time.Millisecond

	// resizeDebounceWindow coalesces rapid resize signals: width
	// recalculation runs once after the signals quiesce.
	resizeDebounceWindow = 100 * time.Millisecond
)

// Session owns the listener bindings of a started Fixer. Listeners stay
// attached until Close is called; the Fixer itself remains usable for
// direct evaluation after the session ends.
type Session struct {
	id      string
	fixer   *Fixer
	clock   Clock
	handler errors.ErrorHandler

	mu           sync.Mutex
	removes      []func()
	lastEvaluate time.Time
	scrollCancel func()
	resizeCancel func()
	closed       bool
}

// Start binds scroll, resize, and load listeners through the surface and
// returns the session owning them.
func (f *Fixer) Start() *Session {
	s := &Session{
		id:      uuid.NewString(),
		fixer:   f,
		clock:   f.clock,
		handler: f.handler,
	}
	s.removes = append(s.removes,
		f.surface.AddListener(dom.EventScroll, s.handleScroll),
		f.surface.AddListener(dom.EventResize, s.handleResize),
		f.surface.AddListener(dom.EventLoad, s.handleLoad),
	)
	return s
}

// ID returns the session's unique identifier, used to tag trace and log
// output.
func (s *Session) ID() string { return s.id }

// Close detaches the session's listeners and cancels any pending
// throttle or debounce work. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.scrollCancel != nil {
		s.scrollCancel()
		s.scrollCancel = nil
	}
	if s.resizeCancel != nil {
		s.resizeCancel()
		s.resizeCancel = nil
	}
	removes := s.removes
	s.removes = nil
	s.mu.Unlock()

	for _, remove := range removes {
		remove()
	}
}

// handleScroll throttles evaluation to one pass per window. The first
// signal in a quiet period evaluates immediately; signals inside the
// window coalesce into a single trailing pass.
func (s *Session) handleScroll() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	now := s.clock.Now()
	since := now.Sub(s.lastEvaluate)
	if s.scrollCancel == nil && since >= scrollThrottleWindow {
		s.lastEvaluate = now
		s.mu.Unlock()
		s.evaluate()
		return
	}
	if s.scrollCancel == nil {
		s.scrollCancel = s.clock.AfterFunc(scrollThrottleWindow-since, s.trailingScroll)
	}
	s.mu.Unlock()
}

// trailingScroll runs the coalesced evaluation at the end of a throttle
// window.
func (s *Session) trailingScroll() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.scrollCancel = nil
	s.lastEvaluate = s.clock.Now()
	s.mu.Unlock()
	s.evaluate()
}

// handleResize restarts the debounce window; recalculation fires once
// the resize signals quiesce.
func (s *Session) handleResize() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.resizeCancel != nil {
		s.resizeCancel()
	}
	s.resizeCancel = s.clock.AfterFunc(resizeDebounceWindow, s.settleResize)
	s.mu.Unlock()
}

// settleResize runs the width correction pass once resize signals have
// quiesced, followed by a full evaluation inside RecalculateWidths.
func (s *Session) settleResize() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.resizeCancel = nil
	s.mu.Unlock()

	defer errors.Recover(s.handler, "fixer.Session.settleResize")
	s.fixer.RecalculateWidths(s.fixer.surface.ScrollPosition())
}

// handleLoad evaluates immediately once the document finishes loading,
// bypassing the scroll throttle.
func (s *Session) handleLoad() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.lastEvaluate = s.clock.Now()
	s.mu.Unlock()
	s.evaluate()
}

// evaluate runs one engine pass at the current scroll position,
// recovering panics from element callbacks into the error handler.
func (s *Session) evaluate() {
	defer errors.Recover(s.handler, "fixer.Session.evaluate")
	s.fixer.Evaluate(s.fixer.surface.ScrollPosition())
}
