// Package game hosts the dot field and the cursor trail in an ebiten window.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/cursor-effects/internal/config"
	"github.com/iburimskiy/cursor-effects/internal/dotfield"
	"github.com/iburimskiy/cursor-effects/internal/render"
	"github.com/iburimskiy/cursor-effects/internal/trail"
)

type Game struct {
	input Input

	field *dotfield.Field
	trail *trail.Trail

	// viewport
	width  int
	height int

	// pointer edge detection
	inside       bool
	lastX, lastY int

	overlay bool
	ticks   uint64
}

func New(in Input) *Game {
	return &Game{
		input: in,
		trail: trail.New(config.TrailCount, config.TrailDiameter, config.TrailPalette()),
	}
}

func (g *Game) Field() *dotfield.Field { return g.field }
func (g *Game) Trail() *trail.Trail    { return g.trail }

func (g *Game) Update() error {
	if g.input.QuitPressed() {
		return ebiten.Termination
	}
	if g.input.OverlayToggled() {
		g.overlay = !g.overlay
	}

	g.handlePointer()

	if g.field != nil {
		g.field.Step()
	}
	g.trail.Tick()
	g.ticks++
	return nil
}

// handlePointer turns the polled cursor position into move/leave events.
func (g *Game) handlePointer() {
	x, y := g.input.CursorPosition()
	inside := x >= 0 && y >= 0 && x < g.width && y < g.height

	switch {
	case inside && (!g.inside || x != g.lastX || y != g.lastY):
		if g.field != nil {
			g.field.PointerMove(float64(x), float64(y))
		}
		g.trail.PointerMove(float64(x), float64(y))
	case !inside && g.inside:
		if g.field != nil {
			g.field.PointerLeave()
		}
	}

	g.inside = inside
	g.lastX, g.lastY = x, y
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := render.NewScreen(screen)
	if g.field != nil {
		g.field.Draw(s)
	} else {
		s.Clear()
	}
	g.trail.Draw(s)

	if g.overlay {
		ebitenutil.DebugPrintAt(screen, g.overlayText(ebiten.ActualTPS(), ebiten.ActualFPS()), 12, 12)
	}
}

func (g *Game) overlayText(tps, fps float64) string {
	dots := 0
	if g.field != nil {
		dots = len(g.field.Points())
	}
	return fmt.Sprintf("TPS %.1f  FPS %.1f  dots %d  circles %d  %dx%d  up %s",
		tps, fps, dots, len(g.trail.Elements()), g.width, g.height,
		formatDuration(ticksToDuration(g.ticks, ebiten.TPS())))
}

// Layout keeps the logical screen equal to the window. The first non-empty
// size builds the dot field; later changes only resize it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.WindowWidth, config.WindowHeight
	}
	if outsideWidth == g.width && outsideHeight == g.height {
		return outsideWidth, outsideHeight
	}

	g.width, g.height = outsideWidth, outsideHeight
	if g.field == nil {
		g.field = dotfield.New(g.width, g.height)
		log.Printf("Dot field initialized: %dx%d, %d points", g.width, g.height, len(g.field.Points()))
	} else {
		g.field.Resize(g.width, g.height)
		log.Printf("Viewport resized to %dx%d", g.width, g.height)
	}
	return outsideWidth, outsideHeight
}
