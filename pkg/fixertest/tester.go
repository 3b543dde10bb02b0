package fixertest

import (
	"testing"
	"time"

	"github.com/alexspark86/Fixer/pkg/fixer"
	"github.com/alexspark86/Fixer/pkg/geometry"
)

// Tester wires a Fixer to a fake surface and fake clock and drives the
// same scroll/resize signal paths the platform would, without a real
// document or real timers.
type Tester struct {
	Surface *FakeSurface
	Clock   *FakeClock
	Fixer   *fixer.Fixer
	Session *fixer.Session
}

// NewTester creates a tester with an empty fake document. The session is
// not started; call Start, or use NewTesterWithT.
func NewTester(opts ...fixer.Option) *Tester {
	surface := NewFakeSurface()
	clock := NewFakeClock()
	combined := append([]fixer.Option{fixer.WithClock(clock)}, opts...)
	return &Tester{
		Surface: surface,
		Clock:   clock,
		Fixer:   fixer.New(surface, combined...),
	}
}

// NewTesterWithT creates a started tester that closes its session via
// t.Cleanup. This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T, opts ...fixer.Option) *Tester {
	t.Helper()
	tester := NewTester(opts...)
	tester.Start()
	t.Cleanup(tester.Close)
	return tester
}

// Start binds the session listeners.
func (t *Tester) Start() {
	if t.Session == nil {
		t.Session = t.Fixer.Start()
	}
}

// Close detaches the session listeners. Safe to call repeatedly.
func (t *Tester) Close() {
	if t.Session != nil {
		t.Session.Close()
	}
}

// ScrollTo moves the document scroll position and fires a scroll signal.
func (t *Tester) ScrollTo(top float64) {
	t.Surface.SetScroll(geometry.ScrollOffset{Top: top})
	t.Surface.FireScroll()
}

// Resize changes the viewport width and fires a resize signal.
func (t *Tester) Resize(width float64) {
	t.Surface.SetViewportWidth(width)
	t.Surface.FireResize()
}

// Settle advances the clock far enough for any pending throttle or
// debounce work to fire.
func (t *Tester) Settle() {
	t.Clock.Advance(200 * time.Millisecond)
}
