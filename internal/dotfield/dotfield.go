// Package dotfield implements a grid of dots that is pushed away from the
// cursor and eases back to its resting position.
package dotfield

import (
	"image/color"
	"math"

	"github.com/iburimskiy/cursor-effects/internal/config"
	"github.com/iburimskiy/cursor-effects/internal/render"
)

// Point is one dot. X0/Y0 is the rest position and never changes.
type Point struct {
	X0, Y0 float64
	X, Y   float64
}

// Cursor is an optional pointer position. OK is false when the pointer is
// outside the surface.
type Cursor struct {
	X, Y float64
	OK   bool
}

// Field owns the point grid and the surface size it wraps against.
type Field struct {
	points []Point
	width  int
	height int
	step   int
	cursor Cursor

	Radius float64
	Color  color.Color
}

// New sizes the field to width x height and fills it with points every
// config.GridStep units.
func New(width, height int) *Field {
	return NewWithStep(width, height, config.GridStep)
}

func NewWithStep(width, height, step int) *Field {
	f := &Field{
		width:  width,
		height: height,
		step:   step,
		Radius: config.EffectRadius,
		Color:  config.DotColor(),
	}
	f.populate()
	return f
}

func (f *Field) populate() {
	f.points = f.points[:0]
	if f.step <= 0 || f.width <= 0 || f.height <= 0 {
		return
	}
	for x := 0; x < f.width; x += f.step {
		for y := 0; y < f.height; y += f.step {
			f.points = append(f.points, Point{
				X0: float64(x), Y0: float64(y),
				X: float64(x), Y: float64(y),
			})
		}
	}
}

// Resize changes the surface size. The grid is left as is, so points keep
// their original rest positions.
func (f *Field) Resize(width, height int) {
	f.width = width
	f.height = height
}

func (f *Field) PointerMove(x, y float64) {
	f.cursor = Cursor{X: x, Y: y, OK: true}
}

func (f *Field) PointerLeave() {
	f.cursor = Cursor{}
}

func (f *Field) Cursor() Cursor   { return f.cursor }
func (f *Field) Size() (int, int) { return f.width, f.height }
func (f *Field) Points() []Point  { return f.points }

// UpdatePoint advances p by one tick. A point closer than radius to the
// cursor is pinned to the ring of that radius around its rest position;
// anything else eases back toward rest. Axes beyond the surface wrap to 0.
func (f *Field) UpdatePoint(p *Point, c Cursor, radius float64) {
	moved := false
	if c.OK {
		dx := p.X - c.X
		dy := p.Y - c.Y
		if math.Sqrt(dx*dx+dy*dy) < radius {
			angle := math.Atan2(dy, dx)
			p.X = p.X0 + math.Cos(angle)*radius
			p.Y = p.Y0 + math.Sin(angle)*radius
			moved = true
		}
	}
	if !moved {
		p.X += (p.X0 - p.X) * config.Easing
		p.Y += (p.Y0 - p.Y) * config.Easing
	}

	if p.X > float64(f.width) {
		p.X = 0
	}
	if p.Y > float64(f.height) {
		p.Y = 0
	}
}

// Step updates every point once.
func (f *Field) Step() {
	for i := range f.points {
		f.UpdatePoint(&f.points[i], f.cursor, f.Radius)
	}
}

// Draw clears s and paints every point.
func (f *Field) Draw(s render.Surface) {
	if s == nil {
		return
	}
	s.Clear()
	for _, p := range f.points {
		s.FillCircle(p.X, p.Y, config.DotRadius, f.Color)
	}
}
