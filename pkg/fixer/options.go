package fixer

import (
	"github.com/alexspark86/Fixer/pkg/dom"
	"github.com/alexspark86/Fixer/pkg/errors"
)

// Edge identifies which viewport edge an element sticks to.
type Edge int

const (
	// EdgeTop pins elements to the top viewport edge.
	EdgeTop Edge = iota
	// EdgeBottom pins elements to the bottom viewport edge.
	EdgeBottom
)

func (e Edge) String() string {
	if e == EdgeBottom {
		return "bottom"
	}
	return "top"
}

// Default class names applied to synthesized placeholders and fixed
// elements.
const (
	DefaultPlaceholderClass = "fixer-placeholder"
	DefaultFixedClass       = "_fixed"
)

// ElementOptions is the resolved per-element configuration. Each
// registration resolves its own copy from the Fixer's defaults plus the
// ElementOption values passed to AddElement; nothing is shared between
// elements or between Fixer instances afterwards.
type ElementOptions struct {
	// Edge is the viewport edge the element sticks to.
	Edge Edge
	// Placeholder controls whether an inert node reserving the element's
	// original footprint is synthesized at registration.
	Placeholder bool
	// PlaceholderClass is the class applied to the synthesized
	// placeholder node.
	PlaceholderClass string
	// FixedClass is the class applied to the element while fixed.
	FixedClass string
	// Limiter optionally names an element that caps how far a top-edge
	// element rides down the page: once the stack would overlap the
	// limiter, the element slides off under it.
	Limiter dom.Handle
	// Centered pins left and right offsets to 0 while fixed instead of
	// preserving the element's horizontal offset.
	Centered bool
}

// DefaultElementOptions returns the documented defaults: top edge,
// placeholder enabled, standard class names, no limiter.
func DefaultElementOptions() ElementOptions {
	return ElementOptions{
		Edge:             EdgeTop,
		Placeholder:      true,
		PlaceholderClass: DefaultPlaceholderClass,
		FixedClass:       DefaultFixedClass,
	}
}

// ElementOption adjusts the configuration of a single registration.
type ElementOption func(*ElementOptions)

// AtTop pins the element to the top viewport edge (the default).
func AtTop() ElementOption {
	return func(o *ElementOptions) { o.Edge = EdgeTop }
}

// AtBottom pins the element to the bottom viewport edge.
func AtBottom() ElementOption {
	return func(o *ElementOptions) { o.Edge = EdgeBottom }
}

// WithoutPlaceholder disables placeholder synthesis; surrounding layout
// collapses into the element's slot while it is fixed.
func WithoutPlaceholder() ElementOption {
	return func(o *ElementOptions) { o.Placeholder = false }
}

// WithPlaceholderClass overrides the class applied to the placeholder.
func WithPlaceholderClass(name string) ElementOption {
	return func(o *ElementOptions) { o.PlaceholderClass = name }
}

// WithFixedClass overrides the class applied while the element is fixed.
func WithFixedClass(name string) ElementOption {
	return func(o *ElementOptions) { o.FixedClass = name }
}

// WithLimiter caps the element's ride at the named element.
func WithLimiter(handle dom.Handle) ElementOption {
	return func(o *ElementOptions) { o.Limiter = handle }
}

// Centered pins left and right offsets to 0 while fixed.
func Centered() ElementOption {
	return func(o *ElementOptions) { o.Centered = true }
}

// config holds per-instance engine configuration, resolved once in New
// and immutable afterwards.
type config struct {
	clock    Clock
	handler  errors.ErrorHandler
	defaults ElementOptions
}

// Option adjusts the configuration of a Fixer instance.
type Option func(*config)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithErrorHandler replaces the handler that receives panics recovered
// inside event callbacks. The default logs to stderr.
func WithErrorHandler(h errors.ErrorHandler) Option {
	return func(cfg *config) {
		if h != nil {
			cfg.handler = h
		}
	}
}

// WithElementDefaults overrides the per-instance defaults applied to
// every registration before its own options.
func WithElementDefaults(opts ...ElementOption) Option {
	return func(cfg *config) {
		for _, opt := range opts {
			opt(&cfg.defaults)
		}
	}
}
