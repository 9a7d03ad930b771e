package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-tick view of the pointer and keyboard.
type Input interface {
	CursorPosition() (x, y int)
	QuitPressed() bool
	OverlayToggled() bool
}

type ebitenInput struct{}

// NewEbitenInput reads input from the running ebiten window.
func NewEbitenInput() Input {
	return ebitenInput{}
}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenInput) QuitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func (ebitenInput) OverlayToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF1)
}
