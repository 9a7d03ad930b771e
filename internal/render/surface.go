// Package render abstracts the 2D drawing surface the effects paint on.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is an immediate-mode drawing target.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillCircle(x, y, r float64, c color.Color)
}

// Screen adapts an ebiten image to Surface.
type Screen struct {
	img *ebiten.Image
}

func NewScreen(img *ebiten.Image) *Screen {
	return &Screen{img: img}
}

func (s *Screen) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Screen) Clear() {
	if s.img == nil {
		return
	}
	s.img.Clear()
}

func (s *Screen) FillCircle(x, y, r float64, c color.Color) {
	if s.img == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}
