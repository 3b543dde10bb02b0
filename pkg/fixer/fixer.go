package fixer

import (
	"github.com/alexspark86/Fixer/pkg/dom"
	"github.com/alexspark86/Fixer/pkg/errors"
	"github.com/alexspark86/Fixer/pkg/geometry"
)

// Fixer owns the ordered registry of sticky elements and drives their
// fixed/unfixed transitions from scroll and resize signals. The registry
// never reorders or dedups elements; stacking order derives purely from
// each element's captured geometry, not registration order.
type Fixer struct {
	surface  dom.Surface
	clock    Clock
	handler  errors.ErrorHandler
	defaults ElementOptions
	elements []*Element
}

// New creates a Fixer bound to a document surface. Options are resolved
// once here; nothing is shared with other instances afterwards.
func New(surface dom.Surface, opts ...Option) *Fixer {
	cfg := config{
		clock:    SystemClock(),
		handler:  &errors.LogHandler{},
		defaults: DefaultElementOptions(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Fixer{
		surface:  surface,
		clock:    cfg.clock,
		handler:  cfg.handler,
		defaults: cfg.defaults,
	}
}

// AddElement registers a stickyable element and immediately runs one
// evaluation pass so its initial state is correct without waiting for
// the next scroll signal.
//
// An empty handle fails with MissingSelectorError; a handle that does
// not resolve to a real element fails with ResolutionError. Both are
// wrapped in a *errors.FixError and surfaced to the caller synchronously.
func (f *Fixer) AddElement(handle dom.Handle, opts ...ElementOption) (*Element, error) {
	if handle == nil || handle == "" {
		return nil, &errors.FixError{
			Op:        "fixer.AddElement",
			Kind:      errors.KindConfig,
			Err:       &MissingSelectorError{},
			Timestamp: f.clock.Now(),
		}
	}

	resolved := f.defaults
	for _, opt := range opts {
		opt(&resolved)
	}

	element, err := newElement(f.surface, handle, resolved)
	if err != nil {
		return nil, &errors.FixError{
			Op:        "fixer.AddElement",
			Kind:      errors.KindResolution,
			Err:       err,
			Timestamp: f.clock.Now(),
		}
	}

	f.elements = append(f.elements, element)
	f.Evaluate(f.surface.ScrollPosition())
	return element, nil
}

// MustAddElement registers an element and returns the Fixer for
// chaining. It panics on registration failure.
func (f *Fixer) MustAddElement(handle dom.Handle, opts ...ElementOption) *Fixer {
	if _, err := f.AddElement(handle, opts...); err != nil {
		panic(err)
	}
	return f
}

// Elements returns the registered elements in registration order.
func (f *Fixer) Elements() []*Element {
	out := make([]*Element, len(f.elements))
	copy(out, f.elements)
	return out
}

// StackHeight sums the height contribution of every other registered
// element that shares target's edge and is positioned ahead of it: a
// smaller top offset for top-edge elements, a larger bottom offset for
// bottom-edge elements. The result is the cumulative pixel offset the
// target must be pushed by so stacked elements do not overlap.
//
// Comparison is strict: an element with an identical offset does not
// stack against another.
func (f *Fixer) StackHeight(target *Element) float64 {
	var sum float64
	for _, other := range f.elements {
		if other == target || other.opts.Edge != target.opts.Edge {
			continue
		}
		switch target.opts.Edge {
		case EdgeTop:
			if other.geometry.Top < target.geometry.Top {
				sum += other.height
			}
		case EdgeBottom:
			if other.geometry.Bottom > target.geometry.Bottom {
				sum += other.height
			}
		}
	}
	return sum
}

// Evaluate runs one state-transition pass over every registered element
// for the given scroll position. Each element's decision is independent;
// traversal is reverse registration order, while stack-height summation
// always iterates the full list.
//
// The fix and unfix conditions are checked in sequence with symmetric
// inequalities, so an element sitting exactly at its trigger offset ends
// the pass unfixed.
func (f *Fixer) Evaluate(scroll geometry.ScrollOffset) {
	for i := len(f.elements) - 1; i >= 0; i-- {
		element := f.elements[i]
		stack := f.StackHeight(element)

		switch element.opts.Edge {
		case EdgeTop:
			trigger := scroll.Top + stack
			if element.geometry.Top <= trigger {
				offset := f.effectiveTopOffset(element, scroll, stack)
				if !element.fixed || offset != element.appliedOffset {
					element.Fix(offset)
				}
			}
			if element.geometry.Top >= trigger && element.fixed {
				element.Unfix()
			}

		case EdgeBottom:
			trigger := scroll.Top - stack + f.surface.DocumentHeight()
			if element.geometry.Bottom >= trigger && !element.fixed {
				element.Fix(stack)
			}
			if element.geometry.Bottom <= trigger && element.fixed {
				element.Unfix()
			}
		}
	}
}

// effectiveTopOffset caps a top-edge element's offset at its limiter:
// once the stacked element would overlap the limiter's top, the offset
// shrinks so the element slides off under it.
func (f *Fixer) effectiveTopOffset(element *Element, scroll geometry.ScrollOffset, stack float64) float64 {
	if !element.hasLimiter {
		return stack
	}
	if scroll.Top+stack+element.height > element.limiterTop {
		return element.limiterTop - scroll.Top - element.height
	}
	return stack
}

// RecalculateWidths re-syncs fixed elements whose measured width drifted
// from their placeholder's, which happens when the viewport width
// changes: fixed positioning removes an element from the flow that would
// otherwise resize it naturally. The corrected width is the placeholder
// width minus the element's captured horizontal padding. A full Evaluate
// pass follows.
func (f *Fixer) RecalculateWidths(scroll geometry.ScrollOffset) {
	for _, element := range f.elements {
		if !element.fixed || element.placeholder == nil {
			continue
		}
		width := element.node.MeasuredWidth()
		placeholderWidth := element.placeholder.MeasuredWidth()
		if width != placeholderWidth {
			element.setWidth(placeholderWidth - element.horizontalPadding())
		}
	}
	f.Evaluate(scroll)
}
