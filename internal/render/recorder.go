package render

import "image/color"

// Op is one recorded drawing call.
type Op struct {
	Kind    string // "clear" or "circle"
	X, Y, R float64
	Color   color.Color
}

// Recorder is a Surface that records calls instead of drawing.
type Recorder struct {
	W, H int
	Ops  []Op
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: "clear"})
}

func (r *Recorder) FillCircle(x, y, rad float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: x, Y: y, R: rad, Color: c})
}

// Circles returns only the circle operations, in order.
func (r *Recorder) Circles() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == "circle" {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
