package fixer

import (
	"github.com/alexspark86/Fixer/pkg/dom"
	"github.com/alexspark86/Fixer/pkg/geometry"
)

// snapshotProperties are the layout-affecting computed styles captured
// once at registration and never recomputed automatically. They are
// assumed stable unless the host explicitly re-registers the element.
var snapshotProperties = []string{
	"position", "top", "z-index", "float", "clear", "display",
	"margin-top", "margin-right", "margin-bottom", "margin-left",
	"padding-left", "padding-right", "width", "max-width",
}

// defaultZIndex is applied while fixed when the captured z-index was
// "auto", so a fixed element stacks above unpositioned page content.
const defaultZIndex = "100"

// Element is a registered stickyable item: the node it wraps, the
// geometry and style snapshot captured at registration, its position
// intent, and its current fixed state. Elements are created by
// Fixer.AddElement and live for the page session.
type Element struct {
	node dom.Node
	opts ElementOptions

	// Registration snapshot. geometry.Left is already adjusted by the
	// captured left margin.
	style    map[string]string
	geometry geometry.Rect
	height   float64

	placeholder dom.Node
	limiterTop  float64
	hasLimiter  bool

	fixed         bool
	appliedOffset float64
}

// newElement resolves the handle, captures the element's snapshot, and
// synthesizes the placeholder when configured.
func newElement(surface dom.Surface, handle dom.Handle, opts ElementOptions) (*Element, error) {
	node, ok := surface.Resolve(handle)
	if !ok {
		return nil, &ResolutionError{Handle: handle}
	}

	style := surface.ComputedStyle(node, snapshotProperties)
	rect := surface.OffsetRect(node, style)
	rect.Left -= dom.ParsePx(style["margin-left"])

	e := &Element{
		node:     node,
		opts:     opts,
		style:    style,
		geometry: rect,
		height:   surface.Height(node),
	}

	if opts.Limiter != nil {
		limiter, ok := surface.Resolve(opts.Limiter)
		if !ok {
			return nil, &ResolutionError{Handle: opts.Limiter}
		}
		limiterStyle := surface.ComputedStyle(limiter, snapshotProperties)
		e.limiterTop = surface.OffsetRect(limiter, limiterStyle).Top
		e.hasLimiter = true
	}

	if opts.Placeholder {
		e.placeholder = synthesizePlaceholder(surface, e)
	}
	return e, nil
}

// synthesizePlaceholder creates an inert node sized to the element's
// original box and inserts it immediately after the element, hidden
// until the element fixes.
func synthesizePlaceholder(surface dom.Surface, e *Element) dom.Node {
	placeholder := surface.CreateNode()
	placeholder.ApplyStyle(dom.StyleSet{}.
		Set("width", e.style["width"]).
		Set("height", dom.Px(e.height)).
		Set("max-width", e.style["max-width"]).
		Set("margin-top", e.style["margin-top"]).
		Set("margin-right", e.style["margin-right"]).
		Set("margin-bottom", e.style["margin-bottom"]).
		Set("margin-left", e.style["margin-left"]).
		Set("float", e.style["float"]).
		Set("clear", e.style["clear"]).
		Set("display", "none"))
	placeholder.AddClass(e.opts.PlaceholderClass)
	surface.InsertAfter(e.node, placeholder)
	return placeholder
}

// Fix pins the element to its configured viewport edge at stackOffset
// pixels. The style set declares width ahead of position so the element
// keeps its flowed width when it leaves normal flow. Idempotent: fixing
// an already-fixed element reproduces the same observable state.
func (e *Element) Fix(stackOffset float64) {
	style := dom.StyleSet{}.
		Set("width", e.style["width"]).
		Set("position", "fixed").
		Set("margin-top", "0")

	if e.opts.Edge == EdgeBottom {
		style = style.Set("bottom", dom.Px(stackOffset))
	} else {
		style = style.Set("top", dom.Px(stackOffset))
	}

	z := e.style["z-index"]
	if z == "" || z == "auto" {
		z = defaultZIndex
	}
	style = style.Set("z-index", z)

	switch {
	case e.opts.Centered:
		style = style.Set("left", "0").Set("right", "0")
	case e.floated():
		// Fixed positioning drops float behavior; reapply the
		// horizontal offset explicitly.
		style = style.Set("left", dom.Px(e.geometry.Left))
	}

	e.node.ApplyStyle(style)
	e.node.AddClass(e.opts.FixedClass)
	if e.placeholder != nil {
		e.placeholder.ApplyStyle(dom.StyleSet{}.Set("display", e.style["display"]))
	}
	e.fixed = true
	e.appliedOffset = stackOffset
}

// Unfix restores the element to its captured layout state and hides the
// placeholder. Idempotent.
func (e *Element) Unfix() {
	e.node.ApplyStyle(dom.StyleSet{}.
		Set("width", "").
		Set("position", e.style["position"]).
		Set("top", e.style["top"]).
		Set("z-index", e.style["z-index"]).
		Set("margin-top", e.style["margin-top"]))
	e.node.RemoveClass(e.opts.FixedClass)
	if e.placeholder != nil {
		e.placeholder.ApplyStyle(dom.StyleSet{}.Set("display", "none"))
	}
	e.fixed = false
	e.appliedOffset = 0
}

// Hide sets the element's display to none, independent of fixed state.
func (e *Element) Hide() {
	e.node.ApplyStyle(dom.StyleSet{}.Set("display", "none"))
}

// Show restores the element's captured display value.
func (e *Element) Show() {
	e.node.ApplyStyle(dom.StyleSet{}.Set("display", e.style["display"]))
}

// Fixed reports whether the element is currently pinned.
func (e *Element) Fixed() bool { return e.fixed }

// AppliedOffset returns the edge offset applied by the most recent Fix,
// or 0 while unfixed.
func (e *Element) AppliedOffset() float64 { return e.appliedOffset }

// Edge returns the viewport edge the element sticks to.
func (e *Element) Edge() Edge { return e.opts.Edge }

// Geometry returns the document-relative offsets captured at
// registration.
func (e *Element) Geometry() geometry.Rect { return e.geometry }

// HeightContribution returns the height the element adds to the stack of
// elements behind it on the same edge.
func (e *Element) HeightContribution() float64 { return e.height }

// Node returns the wrapped element handle.
func (e *Element) Node() dom.Node { return e.node }

// Placeholder returns the synthesized placeholder node, or nil when the
// registration disabled it.
func (e *Element) Placeholder() dom.Node { return e.placeholder }

// CapturedStyle returns the computed value captured at registration for
// a snapshot property.
func (e *Element) CapturedStyle(property string) string {
	return e.style[property]
}

// setWidth applies an explicit pixel width, used by the resize pass to
// re-sync a fixed element with its placeholder's width.
func (e *Element) setWidth(width float64) {
	e.node.ApplyStyle(dom.StyleSet{}.Set("width", dom.Px(width)))
}

// horizontalPadding returns the captured left plus right padding.
func (e *Element) horizontalPadding() float64 {
	return dom.ParsePx(e.style["padding-left"]) + dom.ParsePx(e.style["padding-right"])
}

// floated reports whether the element's captured layout used float.
func (e *Element) floated() bool {
	f := e.style["float"]
	return f != "" && f != "none"
}
