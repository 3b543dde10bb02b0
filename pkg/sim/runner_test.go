package sim

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStackedTrace(t *testing.T) {
	scenario, err := Load("testdata/stacked.yaml")
	require.NoError(t, err)

	result, err := NewRunner(nil).Run(scenario)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "stacked", []byte(result.TraceText()))
}

func TestRunRecordsInitialStates(t *testing.T) {
	scenario, err := Parse([]byte(`
name: initial
elements:
  - selector: "#banner"
    rect: { top: 0, width: 800, height: 40 }
  - selector: "#aside"
    rect: { top: 600, width: 200, height: 300 }
`))
	require.NoError(t, err)

	result, err := NewRunner(nil).Run(scenario)
	require.NoError(t, err)

	// Every element contributes one post-registration snapshot, in
	// registration order. An element sitting exactly at the edge at
	// rest resolves unfixed.
	require.Len(t, result.Events, 2)
	assert.Equal(t, "#banner", result.Events[0].Selector)
	assert.Equal(t, "unfixed", result.Events[0].State)
	assert.Equal(t, 1, result.Events[0].Seq)
	assert.Equal(t, "#aside", result.Events[1].Selector)
	assert.Equal(t, "unfixed", result.Events[1].State)
	assert.Equal(t, 2, result.Events[1].Seq)
}

func TestRunEmitsOnlyTransitions(t *testing.T) {
	scenario, err := Parse([]byte(`
name: quiet
elements:
  - selector: "#header"
    rect: { top: 500, width: 800, height: 50 }
scroll:
  - to: 100
  - to: 200
  - to: 300
  - to: 600
  - to: 700
`))
	require.NoError(t, err)

	result, err := NewRunner(nil).Run(scenario)
	require.NoError(t, err)

	// Initial state, one fix at 600, nothing else.
	require.Len(t, result.Events, 2)
	fix := result.Events[1]
	assert.Equal(t, 2, fix.Seq)
	assert.Equal(t, 600.0, fix.ScrollTop)
	assert.Equal(t, "fixed", fix.State)
	assert.Equal(t, 0.0, fix.Offset)
}

func TestRunLimiterOffsets(t *testing.T) {
	scenario, err := Parse([]byte(`
name: limited
document:
  height: 3000
elements:
  - selector: "#header"
    rect: { top: 100, width: 800, height: 50 }
    limiter: "#stopper"
nodes:
  - selector: "#stopper"
    rect: { top: 1000, width: 800, height: 200 }
scroll:
  - to: 500
  - to: 970
  - to: 980
  - to: 400
`))
	require.NoError(t, err)

	result, err := NewRunner(nil).Run(scenario)
	require.NoError(t, err)

	require.Len(t, result.Events, 5)
	assert.Equal(t, 0.0, result.Events[1].Offset)
	assert.Equal(t, "fixed", result.Events[1].State)
	// Sliding off under the limiter shrinks the offset below zero,
	// re-fixing on each step the effective offset changes.
	assert.Equal(t, -20.0, result.Events[2].Offset)
	assert.Equal(t, 970.0, result.Events[2].ScrollTop)
	assert.Equal(t, -30.0, result.Events[3].Offset)
	assert.Equal(t, 980.0, result.Events[3].ScrollTop)
	assert.Equal(t, 0.0, result.Events[4].Offset)
	assert.Equal(t, 400.0, result.Events[4].ScrollTop)
	assert.Equal(t, "fixed", result.Events[4].State)
}

func TestRunBottomEdge(t *testing.T) {
	scenario, err := Parse([]byte(`
name: footer
document:
  height: 2000
elements:
  - selector: "#footer"
    position: bottom
    rect: { top: 1980, width: 800, height: 30 }
scroll:
  - to: 20
  - to: 5
`))
	require.NoError(t, err)

	result, err := NewRunner(nil).Run(scenario)
	require.NoError(t, err)

	// Bottom sits at 2010, past the document end: fixed at rest,
	// released once scrolling brings the document end past it.
	require.Len(t, result.Events, 3)
	assert.Equal(t, "fixed", result.Events[0].State)
	assert.Equal(t, "unfixed", result.Events[1].State)
	assert.Equal(t, 20.0, result.Events[1].ScrollTop)
	assert.Equal(t, "fixed", result.Events[2].State)
	assert.Equal(t, 5.0, result.Events[2].ScrollTop)
}

func TestTraceLineFormat(t *testing.T) {
	event := TransitionEvent{Seq: 4, ScrollTop: 500, Selector: "#toolbar", State: "fixed", Offset: 50}
	assert.Equal(t, "seq=4 scroll=500 element=#toolbar state=fixed offset=50", event.Line())

	fractional := TransitionEvent{Seq: 1, ScrollTop: 12.5, Selector: "#a", State: "unfixed", Offset: -7.25}
	assert.Equal(t, "seq=1 scroll=12.5 element=#a state=unfixed offset=-7.25", fractional.Line())
}

func TestRunIDsDiffer(t *testing.T) {
	scenario, err := Load("testdata/stacked.yaml")
	require.NoError(t, err)

	runner := NewRunner(nil)
	first, err := runner.Run(scenario)
	require.NoError(t, err)
	second, err := runner.Run(scenario)
	require.NoError(t, err)

	assert.NotEmpty(t, first.RunID)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.TraceText(), second.TraceText())
}
