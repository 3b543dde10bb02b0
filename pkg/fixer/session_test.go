package fixer_test

import (
	"testing"
	"time"

	"github.com/alexspark86/Fixer/pkg/dom"
	"github.com/alexspark86/Fixer/pkg/errors"
	"github.com/alexspark86/Fixer/pkg/fixer"
	"github.com/alexspark86/Fixer/pkg/fixertest"
	"github.com/alexspark86/Fixer/pkg/geometry"
)

type recordingHandler struct {
	errs   []*errors.FixError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.FixError)   { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func TestStartBindsListeners(t *testing.T) {
	tester := fixertest.NewTesterWithT(t)

	for _, event := range []dom.Event{dom.EventScroll, dom.EventResize, dom.EventLoad} {
		if got := tester.Surface.ListenerCount(event); got != 1 {
			t.Errorf("%s listeners = %d, want 1", event, got)
		}
	}
	if tester.Session.ID() == "" {
		t.Error("session should carry a non-empty ID")
	}
}

func TestCloseDetachesListeners(t *testing.T) {
	tester := fixertest.NewTester()
	tester.Start()
	tester.Close()

	for _, event := range []dom.Event{dom.EventScroll, dom.EventResize, dom.EventLoad} {
		if got := tester.Surface.ListenerCount(event); got != 0 {
			t.Errorf("%s listeners after Close = %d, want 0", event, got)
		}
	}
	// Close again is a no-op.
	tester.Close()
}

func TestCloseCancelsPendingWork(t *testing.T) {
	tester := fixertest.NewTester()
	tester.Surface.AddNode("#header", fixertest.NodeConfig{
		Rect: geometry.RectFromLTWH(0, 100, 100, 20),
	})
	if _, err := tester.Fixer.AddElement("#header"); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	tester.Start()

	// Two rapid scrolls leave a trailing evaluation pending; a resize
	// leaves a debounce pending.
	tester.ScrollTo(200)
	tester.ScrollTo(0)
	tester.Resize(800)
	if tester.Clock.PendingTimers() == 0 {
		t.Fatal("expected pending throttle/debounce timers")
	}

	tester.Close()
	if got := tester.Clock.PendingTimers(); got != 0 {
		t.Errorf("pending timers after Close = %d, want 0", got)
	}
}

func TestScrollThrottleCoalesces(t *testing.T) {
	tester := fixertest.NewTesterWithT(t)
	tester.Surface.AddNode("#header", fixertest.NodeConfig{
		Rect: geometry.RectFromLTWH(0, 100, 100, 20),
	})
	element, err := tester.Fixer.AddElement("#header")
	if err != nil {
		t.Fatalf("AddElement: %v", err)
	}

	// First signal in a quiet period evaluates immediately.
	tester.ScrollTo(200)
	if !element.Fixed() {
		t.Fatal("first scroll signal should evaluate immediately")
	}

	// Signals inside the window are coalesced: the state does not change
	// until the trailing pass fires.
	tester.ScrollTo(0)
	tester.ScrollTo(0)
	if !element.Fixed() {
		t.Fatal("signals inside the throttle window must not evaluate")
	}
	if got := tester.Clock.PendingTimers(); got != 1 {
		t.Fatalf("pending trailing passes = %d, want 1", got)
	}

	tester.Clock.Advance(16 * time.Millisecond)
	if element.Fixed() {
		t.Error("trailing pass should evaluate the coalesced scroll position")
	}
}

func TestScrollAfterQuietPeriodEvaluatesImmediately(t *testing.T) {
	tester := fixertest.NewTesterWithT(t)
	tester.Surface.AddNode("#header", fixertest.NodeConfig{
		Rect: geometry.RectFromLTWH(0, 100, 100, 20),
	})
	element, err := tester.Fixer.AddElement("#header")
	if err != nil {
		t.Fatalf("AddElement: %v", err)
	}

	tester.ScrollTo(200)
	tester.Clock.Advance(50 * time.Millisecond)

	tester.ScrollTo(0)
	if element.Fixed() {
		t.Error("a signal after the window should evaluate without delay")
	}
}

func TestResizeDebounce(t *testing.T) {
	tester := fixertest.NewTesterWithT(t)
	tester.Surface.AddNode("#header", fixertest.NodeConfig{
		Rect: geometry.RectFromLTWH(0, 100, 800, 50),
	})
	if _, err := tester.Fixer.AddElement("#header"); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	node := tester.Surface.Node("#header")
	placeholder := tester.Surface.CreatedNodes()[0]

	tester.ScrollTo(200)
	placeholder.SetMeasuredWidth(600)

	tester.Resize(600)
	tester.Clock.Advance(50 * time.Millisecond)
	if got := node.StyleValue("width"); got == "600px" {
		t.Fatal("recalculation must not run before the debounce window closes")
	}

	// A second signal inside the window restarts it.
	tester.Resize(600)
	tester.Clock.Advance(60 * time.Millisecond)
	if got := node.StyleValue("width"); got == "600px" {
		t.Fatal("restarted debounce window must hold the recalculation")
	}

	tester.Clock.Advance(40 * time.Millisecond)
	if got := node.StyleValue("width"); got != "600px" {
		t.Errorf("width after debounce = %q, want 600px", got)
	}
}

func TestLoadEvaluatesImmediately(t *testing.T) {
	tester := fixertest.NewTesterWithT(t)
	tester.Surface.AddNode("#header", fixertest.NodeConfig{
		Rect: geometry.RectFromLTWH(0, 100, 100, 20),
	})
	element, err := tester.Fixer.AddElement("#header")
	if err != nil {
		t.Fatalf("AddElement: %v", err)
	}

	tester.Surface.SetScroll(geometry.ScrollOffset{Top: 300})
	tester.Surface.FireLoad()
	if !element.Fixed() {
		t.Error("load signal should evaluate without throttling")
	}
}

func TestEventsAfterCloseAreIgnored(t *testing.T) {
	tester := fixertest.NewTester()
	tester.Surface.AddNode("#header", fixertest.NodeConfig{
		Rect: geometry.RectFromLTWH(0, 100, 100, 20),
	})
	element, err := tester.Fixer.AddElement("#header")
	if err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	tester.Start()
	session := tester.Session
	tester.Close()

	// The remove functions have detached the listeners, but even a held
	// callback reference must be a no-op after Close.
	tester.Surface.SetScroll(geometry.ScrollOffset{Top: 300})
	tester.Surface.FireScroll()
	if element.Fixed() {
		t.Error("scroll after Close must not evaluate")
	}
	session.Close()
}

func TestEvaluatePanicIsRecovered(t *testing.T) {
	handler := &recordingHandler{}
	tester := fixertest.NewTesterWithT(t, fixer.WithErrorHandler(handler))
	tester.Surface.AddNode("#header", fixertest.NodeConfig{
		Rect: geometry.RectFromLTWH(0, 100, 100, 20),
	})
	if _, err := tester.Fixer.AddElement("#header"); err != nil {
		t.Fatalf("AddElement: %v", err)
	}

	tester.Surface.Node("#header").PanicOnApply = true
	tester.ScrollTo(200)

	if len(handler.panics) != 1 {
		t.Fatalf("recovered panics = %d, want 1", len(handler.panics))
	}
	if got := handler.panics[0].Op; got != "fixer.Session.evaluate" {
		t.Errorf("panic Op = %q, want fixer.Session.evaluate", got)
	}
}
