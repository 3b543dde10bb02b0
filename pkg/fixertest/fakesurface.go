package fixertest

import (
	"fmt"

	"github.com/alexspark86/Fixer/pkg/dom"
	"github.com/alexspark86/Fixer/pkg/geometry"
)

// computedDefaults are the computed-style values a FakeNode reports for
// properties its config does not override.
var computedDefaults = map[string]string{
	"position":       "static",
	"top":            "auto",
	"z-index":        "auto",
	"float":          "none",
	"clear":          "none",
	"display":        "block",
	"margin-top":     "0px",
	"margin-right":   "0px",
	"margin-bottom":  "0px",
	"margin-left":    "0px",
	"padding-left":   "0px",
	"padding-right":  "0px",
	"max-width":      "none",
}

// NodeConfig describes a fake element added to the surface.
type NodeConfig struct {
	// Rect is the node's document-relative geometry.
	Rect geometry.Rect
	// Height overrides the rendered height; 0 uses Rect's height.
	Height float64
	// Width overrides the measured width; 0 uses Rect's width.
	Width float64
	// Style overrides individual computed-style properties.
	Style map[string]string
}

// FakeSurface is an in-memory document implementing dom.Surface. Nodes
// are added by selector; scroll position, document height, and events
// are driven directly by the test.
type FakeSurface struct {
	nodes          map[string]*FakeNode
	created        []*FakeNode
	scroll         geometry.ScrollOffset
	documentHeight float64
	viewportWidth  float64
	listeners      map[dom.Event]map[int]func()
	nextListenerID int
}

// NewFakeSurface creates an empty fake document, 1024 pixels wide with a
// 2000-pixel document height.
func NewFakeSurface() *FakeSurface {
	return &FakeSurface{
		nodes:          make(map[string]*FakeNode),
		documentHeight: 2000,
		viewportWidth:  1024,
		listeners:      make(map[dom.Event]map[int]func()),
	}
}

// AddNode registers a fake element under a selector.
func (s *FakeSurface) AddNode(selector string, cfg NodeConfig) *FakeNode {
	node := &FakeNode{
		ID:            selector,
		rect:          cfg.Rect,
		height:        cfg.Height,
		measuredWidth: cfg.Width,
		computed:      cfg.Style,
		classes:       make(map[string]bool),
	}
	if node.height == 0 {
		node.height = cfg.Rect.Height()
	}
	if node.measuredWidth == 0 {
		node.measuredWidth = cfg.Rect.Width()
	}
	s.nodes[selector] = node
	return node
}

// Node returns the fake element registered under a selector.
func (s *FakeSurface) Node(selector string) *FakeNode {
	return s.nodes[selector]
}

// CreatedNodes returns every node synthesized through CreateNode, in
// creation order.
func (s *FakeSurface) CreatedNodes() []*FakeNode {
	out := make([]*FakeNode, len(s.created))
	copy(out, s.created)
	return out
}

// SetScroll moves the document scroll position without firing events.
func (s *FakeSurface) SetScroll(offset geometry.ScrollOffset) {
	s.scroll = offset
}

// SetDocumentHeight sets the full document height.
func (s *FakeSurface) SetDocumentHeight(height float64) {
	s.documentHeight = height
}

// SetViewportWidth sets the viewport width without firing events.
func (s *FakeSurface) SetViewportWidth(width float64) {
	s.viewportWidth = width
}

// ViewportWidth returns the current viewport width.
func (s *FakeSurface) ViewportWidth() float64 { return s.viewportWidth }

// FireScroll delivers a scroll signal to every scroll listener.
func (s *FakeSurface) FireScroll() { s.fire(dom.EventScroll) }

// FireResize delivers a resize signal to every resize listener.
func (s *FakeSurface) FireResize() { s.fire(dom.EventResize) }

// FireLoad delivers a load signal to every load listener.
func (s *FakeSurface) FireLoad() { s.fire(dom.EventLoad) }

// ListenerCount returns the number of listeners attached for an event.
func (s *FakeSurface) ListenerCount(event dom.Event) int {
	return len(s.listeners[event])
}

func (s *FakeSurface) fire(event dom.Event) {
	for _, fn := range s.listeners[event] {
		fn()
	}
}

// Resolve implements dom.Surface. Selector strings look up registered
// nodes; node handles pass through.
func (s *FakeSurface) Resolve(handle dom.Handle) (dom.Node, bool) {
	switch h := handle.(type) {
	case string:
		node, ok := s.nodes[h]
		if !ok {
			return nil, false
		}
		return node, true
	case dom.Node:
		return h, h != nil
	default:
		return nil, false
	}
}

// CreateNode implements dom.Surface.
func (s *FakeSurface) CreateNode() dom.Node {
	node := &FakeNode{
		ID:      fmt.Sprintf("synthetic-%d", len(s.created)),
		classes: make(map[string]bool),
	}
	s.created = append(s.created, node)
	return node
}

// InsertAfter implements dom.Surface, recording the sibling link.
func (s *FakeSurface) InsertAfter(ref, inserted dom.Node) {
	if refNode, ok := ref.(*FakeNode); ok {
		refNode.nextSibling = inserted
	}
}

// ComputedStyle implements dom.Surface.
func (s *FakeSurface) ComputedStyle(n dom.Node, properties []string) map[string]string {
	node := n.(*FakeNode)
	out := make(map[string]string, len(properties))
	for _, property := range properties {
		if v, ok := node.computed[property]; ok {
			out[property] = v
			continue
		}
		if property == "width" {
			out[property] = dom.Px(node.measuredWidth)
			continue
		}
		out[property] = computedDefaults[property]
	}
	return out
}

// OffsetRect implements dom.Surface.
func (s *FakeSurface) OffsetRect(n dom.Node, _ map[string]string) geometry.Rect {
	return n.(*FakeNode).rect
}

// Height implements dom.Surface.
func (s *FakeSurface) Height(n dom.Node) float64 {
	return n.(*FakeNode).height
}

// ScrollPosition implements dom.Surface.
func (s *FakeSurface) ScrollPosition() geometry.ScrollOffset { return s.scroll }

// DocumentHeight implements dom.Surface.
func (s *FakeSurface) DocumentHeight() float64 { return s.documentHeight }

// AddListener implements dom.Surface.
func (s *FakeSurface) AddListener(event dom.Event, fn func()) func() {
	if s.listeners[event] == nil {
		s.listeners[event] = make(map[int]func())
	}
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[event][id] = fn
	return func() { delete(s.listeners[event], id) }
}

// FakeNode is an in-memory element. It records every applied style set
// so tests can diff state transitions.
type FakeNode struct {
	// ID is the selector or synthetic name the node was created under.
	ID string

	// PanicOnApply makes the next ApplyStyle panic, for exercising the
	// session's panic recovery path.
	PanicOnApply bool

	rect          geometry.Rect
	height        float64
	measuredWidth float64
	computed      map[string]string

	inline      dom.StyleSet
	classes     map[string]bool
	nextSibling dom.Node

	lastApplied dom.StyleSet
	applyCount  int
}

// ApplyStyle implements dom.Node, merging the set into the node's inline
// styles in declaration order.
func (n *FakeNode) ApplyStyle(style dom.StyleSet) {
	if n.PanicOnApply {
		panic("fakesurface: style application failed")
	}
	for _, d := range style {
		n.inline = n.inline.Set(d.Property, d.Value)
	}
	n.lastApplied = append(dom.StyleSet{}, style...)
	n.applyCount++
}

// StyleValue implements dom.Node.
func (n *FakeNode) StyleValue(property string) string {
	v, _ := n.inline.Get(property)
	return v
}

// AddClass implements dom.Node.
func (n *FakeNode) AddClass(name string) { n.classes[name] = true }

// RemoveClass implements dom.Node.
func (n *FakeNode) RemoveClass(name string) { delete(n.classes, name) }

// HasClass implements dom.Node.
func (n *FakeNode) HasClass(name string) bool { return n.classes[name] }

// MeasuredWidth implements dom.Node.
func (n *FakeNode) MeasuredWidth() float64 { return n.measuredWidth }

// SetMeasuredWidth simulates the rendered width changing, as a viewport
// resize would for an in-flow element.
func (n *FakeNode) SetMeasuredWidth(width float64) { n.measuredWidth = width }

// NextSibling returns the node inserted after this one, if any.
func (n *FakeNode) NextSibling() dom.Node { return n.nextSibling }

// LastApplied returns the most recent style set applied to the node.
func (n *FakeNode) LastApplied() dom.StyleSet {
	return append(dom.StyleSet{}, n.lastApplied...)
}

// ApplyCount returns how many style sets have been applied.
func (n *FakeNode) ApplyCount() int { return n.applyCount }

// InlineSnapshot returns a copy of the node's current inline styles.
func (n *FakeNode) InlineSnapshot() map[string]string {
	out := make(map[string]string, len(n.inline))
	for _, d := range n.inline {
		out[d.Property] = d.Value
	}
	return out
}
