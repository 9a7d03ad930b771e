// Package trail implements a chain of circles that follows the cursor, each
// one lagging behind the one before it.
package trail

import (
	"image/color"

	"github.com/iburimskiy/cursor-effects/internal/config"
	"github.com/iburimskiy/cursor-effects/internal/render"
)

// Element is one circle of the chain.
type Element struct {
	X, Y      float64 // tracked position
	Left, Top float64 // top-left corner of the circle's box
	Scale     float64
	Color     color.RGBA
}

type Trail struct {
	elements []Element
	diameter float64
	lerp     float64
	cursorX  float64
	cursorY  float64
}

// New builds a chain of count elements coloured from palette, cycling when
// count exceeds the palette length.
func New(count int, diameter float64, palette []color.RGBA) *Trail {
	if count < 0 {
		count = 0
	}
	t := &Trail{
		elements: make([]Element, count),
		diameter: diameter,
		lerp:     config.TrailLerp,
	}
	for i := range t.elements {
		t.elements[i].Scale = 1
		if len(palette) > 0 {
			t.elements[i].Color = palette[i%len(palette)]
		}
	}
	return t
}

func (t *Trail) PointerMove(x, y float64) {
	t.cursorX = x
	t.cursorY = y
}

func (t *Trail) Cursor() (float64, float64) { return t.cursorX, t.cursorY }
func (t *Trail) Elements() []Element        { return t.elements }

// Tick places each element at the running target, then pulls the target
// toward the next element's position from the previous tick. The last
// element looks at the first one, which has already moved this tick.
func (t *Trail) Tick() {
	n := len(t.elements)
	if n == 0 {
		return
	}
	x, y := t.cursorX, t.cursorY
	half := t.diameter / 2
	for i := range t.elements {
		e := &t.elements[i]
		e.Left = x - half
		e.Top = y - half
		e.Scale = float64(n-i) / float64(n)
		e.X = x
		e.Y = y

		next := &t.elements[(i+1)%n]
		x += (next.X - x) * t.lerp
		y += (next.Y - y) * t.lerp
	}
}

// Draw paints the chain front to back so the head ends up underneath the
// smaller tail circles.
func (t *Trail) Draw(s render.Surface) {
	if s == nil {
		return
	}
	half := t.diameter / 2
	for _, e := range t.elements {
		s.FillCircle(e.X, e.Y, half*e.Scale, e.Color)
	}
}
