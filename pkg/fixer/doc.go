// Package fixer implements the sticky-element engine: an ordered registry
// of page elements that pin to the top or bottom viewport edge as the
// document scrolls, stacked by cumulative height so they never overlap,
// with placeholders reserving their original layout footprint.
//
// The engine is platform-agnostic. It reads geometry and applies style
// sets through the dom.Surface contract, so the same core runs against a
// real document bridge or the in-memory surface in pkg/fixertest.
//
// Typical use:
//
//	f := fixer.New(surface)
//	if _, err := f.AddElement("#header"); err != nil {
//		return err
//	}
//	session := f.Start()
//	defer session.Close()
//
// Start binds scroll, resize, and load listeners through the surface.
// Scroll evaluation is throttled to one pass per 16ms window; resize
// recalculation is debounced until signals quiesce for 100ms.
package fixer
