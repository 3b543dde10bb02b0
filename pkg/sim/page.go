package sim

import (
	"fmt"

	"github.com/alexspark86/Fixer/pkg/dom"
	"github.com/alexspark86/Fixer/pkg/geometry"
)

// pageDefaults are the computed-style values a page node reports for
// properties its scenario does not override.
var pageDefaults = map[string]string{
	"position":      "static",
	"top":           "auto",
	"z-index":       "auto",
	"float":         "none",
	"clear":         "none",
	"display":       "block",
	"margin-top":    "0px",
	"margin-right":  "0px",
	"margin-bottom": "0px",
	"margin-left":   "0px",
	"padding-left":  "0px",
	"padding-right": "0px",
	"max-width":     "none",
}

// Page is the synthetic document a scenario runs against. It implements
// dom.Surface so the engine operates on it exactly as it would on a real
// document bridge.
type Page struct {
	scenario       *Scenario
	nodes          map[string]*pageNode
	created        []*pageNode
	scroll         geometry.ScrollOffset
	documentHeight float64
}

// NewPage materializes a scenario into a page ready for the engine.
func NewPage(scenario *Scenario) *Page {
	p := &Page{
		scenario:       scenario,
		nodes:          make(map[string]*pageNode),
		documentHeight: scenario.Document.Height,
	}
	for _, spec := range scenario.Elements {
		p.nodes[spec.Selector] = &pageNode{
			id:       spec.Selector,
			rect:     specRect(spec.Rect),
			width:    spec.Rect.Width,
			computed: spec.Style,
			classes:  make(map[string]bool),
		}
	}
	for _, spec := range scenario.Nodes {
		p.nodes[spec.Selector] = &pageNode{
			id:      spec.Selector,
			rect:    specRect(spec.Rect),
			width:   spec.Rect.Width,
			classes: make(map[string]bool),
		}
	}
	return p
}

func specRect(r RectSpec) geometry.Rect {
	return geometry.RectFromLTWH(r.Left, r.Top, r.Width, r.Height)
}

// ScrollTo moves the page scroll position.
func (p *Page) ScrollTo(top float64) {
	p.scroll = geometry.ScrollOffset{Top: top}
}

// Node returns the page node registered under a selector, or nil.
func (p *Page) Node(selector string) dom.Node {
	node, ok := p.nodes[selector]
	if !ok {
		return nil
	}
	return node
}

// Resolve implements dom.Surface.
func (p *Page) Resolve(handle dom.Handle) (dom.Node, bool) {
	switch h := handle.(type) {
	case string:
		node, ok := p.nodes[h]
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
func (p *Page) CreateNode() dom.Node {
	node := &pageNode{
		id:      fmt.Sprintf("synthetic-%d", len(p.created)),
		classes: make(map[string]bool),
	}
	p.created = append(p.created, node)
	return node
}

// InsertAfter implements dom.Surface.
func (p *Page) InsertAfter(ref, inserted dom.Node) {
	if refNode, ok := ref.(*pageNode); ok {
		refNode.nextSibling = inserted
	}
}

// ComputedStyle implements dom.Surface.
func (p *Page) ComputedStyle(n dom.Node, properties []string) map[string]string {
	node := n.(*pageNode)
	out := make(map[string]string, len(properties))
	for _, property := range properties {
		if v, ok := node.computed[property]; ok {
			out[property] = v
			continue
		}
		if property == "width" {
			out[property] = dom.Px(node.width)
			continue
		}
		out[property] = pageDefaults[property]
	}
	return out
}

// OffsetRect implements dom.Surface.
func (p *Page) OffsetRect(n dom.Node, _ map[string]string) geometry.Rect {
	return n.(*pageNode).rect
}

// Height implements dom.Surface.
func (p *Page) Height(n dom.Node) float64 {
	return n.(*pageNode).rect.Height()
}

// ScrollPosition implements dom.Surface.
func (p *Page) ScrollPosition() geometry.ScrollOffset { return p.scroll }

// DocumentHeight implements dom.Surface.
func (p *Page) DocumentHeight() float64 { return p.documentHeight }

// AddListener implements dom.Surface. The runner drives evaluation
// directly per scroll step, so page events never fire.
func (p *Page) AddListener(dom.Event, func()) func() {
	return func() {}
}

// pageNode is one element on the synthetic page.
type pageNode struct {
	id       string
	rect     geometry.Rect
	width    float64
	computed map[string]string

	inline      dom.StyleSet
	classes     map[string]bool
	nextSibling dom.Node
}

// ApplyStyle implements dom.Node.
func (n *pageNode) ApplyStyle(style dom.StyleSet) {
	for _, d := range style {
		n.inline = n.inline.Set(d.Property, d.Value)
	}
}

// StyleValue implements dom.Node.
func (n *pageNode) StyleValue(property string) string {
	v, _ := n.inline.Get(property)
	return v
}

// AddClass implements dom.Node.
func (n *pageNode) AddClass(name string) { n.classes[name] = true }

// RemoveClass implements dom.Node.
func (n *pageNode) RemoveClass(name string) { delete(n.classes, name) }

// HasClass implements dom.Node.
func (n *pageNode) HasClass(name string) bool { return n.classes[name] }

// MeasuredWidth implements dom.Node.
func (n *pageNode) MeasuredWidth() float64 { return n.width }
