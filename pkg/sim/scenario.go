package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a synthetic page and the scroll script replayed
// against it.
type Scenario struct {
	Name     string        `yaml:"name"`
	Viewport Viewport      `yaml:"viewport"`
	Document Document      `yaml:"document"`
	Elements []ElementSpec `yaml:"elements"`
	Nodes    []NodeSpec    `yaml:"nodes,omitempty"`
	Scroll   []ScrollStep  `yaml:"scroll"`
}

// Viewport is the simulated viewport size.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Document carries the simulated document metrics.
type Document struct {
	Height float64 `yaml:"height"`
}

// ElementSpec describes one stickyable element on the page.
type ElementSpec struct {
	Selector string            `yaml:"selector"`
	Position string            `yaml:"position,omitempty"`
	Rect     RectSpec          `yaml:"rect"`
	Style    map[string]string `yaml:"style,omitempty"`
	// Placeholder defaults to true when omitted, matching the engine.
	Placeholder      *bool  `yaml:"placeholder,omitempty"`
	PlaceholderClass string `yaml:"placeholder_class,omitempty"`
	FixedClass       string `yaml:"fixed_class,omitempty"`
	Limiter          string `yaml:"limiter,omitempty"`
	Centered         bool   `yaml:"centered,omitempty"`
}

// NodeSpec describes a passive page node, typically a limiter target.
type NodeSpec struct {
	Selector string   `yaml:"selector"`
	Rect     RectSpec `yaml:"rect"`
}

// RectSpec is an element's document-relative box.
type RectSpec struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScrollStep moves the simulated scroll position.
type ScrollStep struct {
	To float64 `yaml:"to"`
}

// Load reads and validates a scenario yaml file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates scenario yaml.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	s.applyDefaults()
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario: name is required")
	}
	if len(s.Elements) == 0 {
		return fmt.Errorf("scenario %q: at least one element is required", s.Name)
	}
	seen := make(map[string]bool, len(s.Elements))
	for i, element := range s.Elements {
		if element.Selector == "" {
			return fmt.Errorf("scenario %q: element %d has no selector", s.Name, i)
		}
		if seen[element.Selector] {
			return fmt.Errorf("scenario %q: duplicate selector %q", s.Name, element.Selector)
		}
		seen[element.Selector] = true
		switch element.Position {
		case "", "top", "bottom":
		default:
			return fmt.Errorf("scenario %q: element %q has invalid position %q",
				s.Name, element.Selector, element.Position)
		}
		if element.Limiter != "" && !selectorInScenario(s, element.Limiter) {
			return fmt.Errorf("scenario %q: element %q names unknown limiter %q",
				s.Name, element.Selector, element.Limiter)
		}
	}
	return nil
}

func (s *Scenario) applyDefaults() {
	if s.Viewport.Width == 0 {
		s.Viewport.Width = 1024
	}
	if s.Viewport.Height == 0 {
		s.Viewport.Height = 768
	}
	if s.Document.Height == 0 {
		s.Document.Height = 2000
	}
}

func selectorInScenario(s *Scenario, selector string) bool {
	for _, element := range s.Elements {
		if element.Selector == selector {
			return true
		}
	}
	for _, node := range s.Nodes {
		if node.Selector == selector {
			return true
		}
	}
	return false
}
