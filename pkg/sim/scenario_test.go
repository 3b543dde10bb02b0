package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	s, err := Parse([]byte(`
name: basic
elements:
  - selector: "#header"
    rect: { left: 0, top: 100, width: 800, height: 60 }
scroll:
  - to: 150
  - to: 50
`))
	require.NoError(t, err)

	assert.Equal(t, "basic", s.Name)
	require.Len(t, s.Elements, 1)
	assert.Equal(t, "#header", s.Elements[0].Selector)
	assert.Equal(t, 100.0, s.Elements[0].Rect.Top)
	require.Len(t, s.Scroll, 2)
	assert.Equal(t, 150.0, s.Scroll[0].To)
}

func TestParseAppliesDefaults(t *testing.T) {
	s, err := Parse([]byte(`
name: defaults
elements:
  - selector: "#header"
    rect: { width: 800, height: 60 }
`))
	require.NoError(t, err)

	assert.Equal(t, 1024.0, s.Viewport.Width)
	assert.Equal(t, 768.0, s.Viewport.Height)
	assert.Equal(t, 2000.0, s.Document.Height)
}

func TestParseElementOptions(t *testing.T) {
	s, err := Parse([]byte(`
name: options
elements:
  - selector: "#footer"
    position: bottom
    rect: { top: 1900, width: 800, height: 40 }
    placeholder: false
    fixed_class: pinned
    centered: true
  - selector: "#header"
    rect: { top: 100, width: 800, height: 60 }
    limiter: "#stopper"
nodes:
  - selector: "#stopper"
    rect: { top: 1200, width: 800, height: 200 }
`))
	require.NoError(t, err)

	footer := s.Elements[0]
	assert.Equal(t, "bottom", footer.Position)
	require.NotNil(t, footer.Placeholder)
	assert.False(t, *footer.Placeholder)
	assert.Equal(t, "pinned", footer.FixedClass)
	assert.True(t, footer.Centered)
	assert.Equal(t, "#stopper", s.Elements[1].Limiter)
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing name",
			yaml: `
elements:
  - selector: "#a"
    rect: { width: 10, height: 10 }
`,
			want: "name is required",
		},
		{
			name: "no elements",
			yaml: `name: empty`,
			want: "at least one element",
		},
		{
			name: "missing selector",
			yaml: `
name: bad
elements:
  - rect: { width: 10, height: 10 }
`,
			want: "has no selector",
		},
		{
			name: "duplicate selector",
			yaml: `
name: bad
elements:
  - selector: "#a"
    rect: { width: 10, height: 10 }
  - selector: "#a"
    rect: { width: 10, height: 10 }
`,
			want: "duplicate selector",
		},
		{
			name: "invalid position",
			yaml: `
name: bad
elements:
  - selector: "#a"
    position: left
    rect: { width: 10, height: 10 }
`,
			want: "invalid position",
		},
		{
			name: "unknown limiter",
			yaml: `
name: bad
elements:
  - selector: "#a"
    rect: { width: 10, height: 10 }
    limiter: "#ghost"
`,
			want: "unknown limiter",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadScenarioFile(t *testing.T) {
	s, err := Load("testdata/stacked.yaml")
	require.NoError(t, err)

	assert.Equal(t, "stacked", s.Name)
	assert.Equal(t, 3000.0, s.Document.Height)
	require.Len(t, s.Elements, 2)
	require.Len(t, s.Scroll, 4)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario")
}
