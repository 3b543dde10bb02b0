// Package dom defines the contracts the fixer engine consumes from the
// host document. The engine never touches a real DOM directly: it resolves
// handles, reads computed styles and offsets, and applies style sets
// through these interfaces, so the same core runs against a browser
// bridge, a server-side renderer, or the in-memory surface used in tests.
package dom

import "github.com/alexspark86/Fixer/pkg/geometry"

// Handle identifies an element to resolve: either a selector string or an
// already-resolved Node.
type Handle any

// Node is an opaque element handle. Implementations own the backing
// element; the engine only toggles classes and applies style sets.
type Node interface {
	// ApplyStyle applies every declaration in the set as inline style, in
	// declaration order. Order is significant: the engine relies on width
	// landing before position when an element leaves normal flow.
	ApplyStyle(style StyleSet)

	// StyleValue returns the current inline value for a property, or ""
	// when the property is unset.
	StyleValue(property string) string

	// AddClass adds a class name to the element.
	AddClass(name string)

	// RemoveClass removes a class name from the element.
	RemoveClass(name string)

	// HasClass reports whether the element currently carries a class.
	HasClass(name string) bool

	// MeasuredWidth returns the element's current rendered width in
	// pixels. Unlike the registration snapshot this is a live read.
	MeasuredWidth() float64
}

// Event identifies a document-level signal the engine listens for.
type Event string

const (
	// EventScroll fires on every document scroll signal.
	EventScroll Event = "scroll"
	// EventResize fires on every viewport resize signal.
	EventResize Event = "resize"
	// EventLoad fires once the document has finished loading.
	EventLoad Event = "load"
)

// Surface is the document the engine operates on. Query methods may only
// be called once the document is ready; calling them earlier is a
// caller-ordering contract violation, not a recoverable condition.
type Surface interface {
	// Resolve turns a handle into a Node. The second return value is
	// false when the handle does not resolve to a real element.
	Resolve(handle Handle) (Node, bool)

	// CreateNode synthesizes a new detached inert node, used for
	// placeholders.
	CreateNode() Node

	// InsertAfter inserts a node as the next sibling of ref.
	InsertAfter(ref, inserted Node)

	// ComputedStyle returns the computed values of the requested
	// properties as strings.
	ComputedStyle(n Node, properties []string) map[string]string

	// OffsetRect returns the node's document-relative offsets in pixels.
	// The style snapshot previously read for the node is passed in so
	// implementations can account for margins without a second read.
	OffsetRect(n Node, style map[string]string) geometry.Rect

	// Height returns the node's rendered height in pixels.
	Height(n Node) float64

	// ScrollPosition returns the current document scroll offsets.
	ScrollPosition() geometry.ScrollOffset

	// DocumentHeight returns the full document height in pixels.
	DocumentHeight() float64

	// AddListener subscribes to a document signal and returns a remove
	// function that detaches the subscription.
	AddListener(event Event, fn func()) (remove func())
}
