package sim

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/alexspark86/Fixer/pkg/fixer"
	"github.com/alexspark86/Fixer/pkg/geometry"
)

// TransitionEvent records one element state change observed during a
// run. Seq numbers events across the whole run, starting at 1 with the
// post-registration states.
type TransitionEvent struct {
	Seq       int
	ScrollTop float64
	Selector  string
	State     string
	Offset    float64
}

// Line renders the event as one trace line.
func (e TransitionEvent) Line() string {
	return fmt.Sprintf("seq=%d scroll=%s element=%s state=%s offset=%s",
		e.Seq, formatPx(e.ScrollTop), e.Selector, e.State, formatPx(e.Offset))
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Result is the outcome of one scenario run.
type Result struct {
	RunID    string
	Scenario *Scenario
	Events   []TransitionEvent
}

// TraceLines returns one line per event.
func (r *Result) TraceLines() []string {
	lines := make([]string, len(r.Events))
	for i, event := range r.Events {
		lines[i] = event.Line()
	}
	return lines
}

// TraceText returns the full trace, one event per line with a trailing
// newline. The run ID is deliberately left out so traces are stable
// across runs.
func (r *Result) TraceText() string {
	var b strings.Builder
	for _, event := range r.Events {
		b.WriteString(event.Line())
		b.WriteByte('\n')
	}
	return b.String()
}

// Runner replays scenarios against synthetic pages and collects the
// resulting state transitions.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a runner. A nil logger discards log output.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{logger: logger}
}

// Run materializes the scenario into a page, registers every element,
// and replays the scroll script, recording each state transition. The
// engine is driven synchronously step by step; throttling never applies.
func (r *Runner) Run(scenario *Scenario) (*Result, error) {
	page := NewPage(scenario)
	engine := fixer.New(page)

	result := &Result{
		RunID:    uuid.NewString(),
		Scenario: scenario,
	}
	r.logger.Info("starting run",
		"run_id", result.RunID,
		"scenario", scenario.Name,
		"elements", len(scenario.Elements),
		"steps", len(scenario.Scroll))

	elements := make([]*fixer.Element, 0, len(scenario.Elements))
	for _, spec := range scenario.Elements {
		element, err := engine.AddElement(spec.Selector, elementOptions(spec)...)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: register %q: %w", scenario.Name, spec.Selector, err)
		}
		elements = append(elements, element)
	}

	seq := 0
	states := make([]elementState, len(elements))
	for i, element := range elements {
		states[i] = readState(element)
		seq++
		result.Events = append(result.Events, TransitionEvent{
			Seq:       seq,
			ScrollTop: 0,
			Selector:  scenario.Elements[i].Selector,
			State:     states[i].label(),
			Offset:    states[i].offset,
		})
	}

	for _, step := range scenario.Scroll {
		page.ScrollTo(step.To)
		engine.Evaluate(geometry.ScrollOffset{Top: step.To})
		for i, element := range elements {
			next := readState(element)
			if next == states[i] {
				continue
			}
			states[i] = next
			seq++
			event := TransitionEvent{
				Seq:       seq,
				ScrollTop: step.To,
				Selector:  scenario.Elements[i].Selector,
				State:     next.label(),
				Offset:    next.offset,
			}
			result.Events = append(result.Events, event)
			r.logger.Debug("transition",
				"run_id", result.RunID,
				"element", event.Selector,
				"scroll", event.ScrollTop,
				"state", event.State,
				"offset", event.Offset)
		}
	}

	r.logger.Info("run complete", "run_id", result.RunID, "events", len(result.Events))
	return result, nil
}

type elementState struct {
	fixed  bool
	offset float64
}

func (s elementState) label() string {
	if s.fixed {
		return "fixed"
	}
	return "unfixed"
}

func readState(element *fixer.Element) elementState {
	return elementState{fixed: element.Fixed(), offset: element.AppliedOffset()}
}

func elementOptions(spec ElementSpec) []fixer.ElementOption {
	var opts []fixer.ElementOption
	if spec.Position == "bottom" {
		opts = append(opts, fixer.AtBottom())
	}
	if spec.Placeholder != nil && !*spec.Placeholder {
		opts = append(opts, fixer.WithoutPlaceholder())
	}
	if spec.PlaceholderClass != "" {
		opts = append(opts, fixer.WithPlaceholderClass(spec.PlaceholderClass))
	}
	if spec.FixedClass != "" {
		opts = append(opts, fixer.WithFixedClass(spec.FixedClass))
	}
	if spec.Limiter != "" {
		opts = append(opts, fixer.WithLimiter(spec.Limiter))
	}
	if spec.Centered {
		opts = append(opts, fixer.Centered())
	}
	return opts
}
