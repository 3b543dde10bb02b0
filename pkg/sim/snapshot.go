package sim

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/alexspark86/Fixer/pkg/fixer"
)

// palette cycles across elements so adjacent boxes stay tellable apart.
var palette = []color.RGBA{
	{R: 0x42, G: 0x85, B: 0xf4, A: 0xff},
	{R: 0xea, G: 0x43, B: 0x35, A: 0xff},
	{R: 0xfb, G: 0xbc, B: 0x05, A: 0xff},
	{R: 0x34, G: 0xa8, B: 0x53, A: 0xff},
	{R: 0xa1, G: 0x42, B: 0xf4, A: 0xff},
}

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	labelInk   = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// Render draws one viewport-sized frame of the scenario at the given
// scroll position. Elements the engine holds fixed are drawn at their
// viewport-relative edge offset; everything else scrolls with the
// document.
func Render(scenario *Scenario, scrollTop float64) (*image.RGBA, error) {
	page := NewPage(scenario)
	engine := fixer.New(page)

	elements := make([]*fixer.Element, 0, len(scenario.Elements))
	for _, spec := range scenario.Elements {
		element, err := engine.AddElement(spec.Selector, elementOptions(spec)...)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: register %q: %w", scenario.Name, spec.Selector, err)
		}
		elements = append(elements, element)
	}
	page.ScrollTo(scrollTop)
	engine.Evaluate(page.ScrollPosition())

	width := int(scenario.Viewport.Width)
	height := int(scenario.Viewport.Height)
	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	for i, spec := range scenario.Elements {
		box := frameBox(spec, elements[i], scenario.Viewport, scrollTop)
		if box.Empty() {
			continue
		}
		fill := palette[i%len(palette)]
		draw.Draw(frame, box.Intersect(frame.Bounds()), &image.Uniform{C: fill}, image.Point{}, draw.Src)
		drawLabel(frame, box, spec.Selector)
	}
	return frame, nil
}

// frameBox places an element in viewport space for one frame.
func frameBox(spec ElementSpec, element *fixer.Element, viewport Viewport, scrollTop float64) image.Rectangle {
	left := int(spec.Rect.Left)
	w := int(spec.Rect.Width)
	h := int(spec.Rect.Height)

	var top int
	switch {
	case element.Fixed() && element.Edge() == fixer.EdgeBottom:
		top = int(viewport.Height - element.AppliedOffset() - spec.Rect.Height)
	case element.Fixed():
		top = int(element.AppliedOffset())
	default:
		top = int(spec.Rect.Top - scrollTop)
	}
	return image.Rect(left, top, left+w, top+h)
}

func drawLabel(frame *image.RGBA, box image.Rectangle, label string) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  frame,
		Src:  &image.Uniform{C: labelInk},
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(box.Min.X + 4),
			Y: fixed.I(box.Min.Y + face.Ascent + 2),
		},
	}
	drawer.DrawString(label)
}

// WritePNG renders the scenario at a scroll position and encodes the
// frame to w.
func WritePNG(w io.Writer, scenario *Scenario, scrollTop float64) error {
	frame, err := Render(scenario, scrollTop)
	if err != nil {
		return err
	}
	return png.Encode(w, frame)
}

// SavePNG renders the scenario at a scroll position into a PNG file.
func SavePNG(path string, scenario *Scenario, scrollTop float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	defer f.Close()
	if err := WritePNG(f, scenario, scrollTop); err != nil {
		return err
	}
	return f.Close()
}
