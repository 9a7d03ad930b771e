package game

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeInput struct {
	x, y    int
	quit    bool
	overlay bool
}

func (f *fakeInput) CursorPosition() (int, int) { return f.x, f.y }
func (f *fakeInput) QuitPressed() bool          { return f.quit }
func (f *fakeInput) OverlayToggled() bool {
	v := f.overlay
	f.overlay = false
	return v
}

func newTestGame(w, h int) (*Game, *fakeInput) {
	in := &fakeInput{x: -1, y: -1}
	g := New(in)
	g.Layout(w, h)
	return g, in
}

func TestLayoutInitializesFieldOnce(t *testing.T) {
	g, _ := newTestGame(300, 300)
	if g.Field() == nil {
		t.Fatal("field not initialized")
	}
	if n := len(g.Field().Points()); n != 100 {
		t.Errorf("points = %d, want 100", n)
	}

	field := g.Field()
	w, h := g.Layout(600, 400)
	if w != 600 || h != 400 {
		t.Errorf("Layout = %d,%d, want 600,400", w, h)
	}
	if g.Field() != field {
		t.Error("resize replaced the field")
	}
	if n := len(g.Field().Points()); n != 100 {
		t.Errorf("points after resize = %d, want 100", n)
	}
	if fw, fh := g.Field().Size(); fw != 600 || fh != 400 {
		t.Errorf("field size = %d,%d, want 600,400", fw, fh)
	}
}

func TestLayoutIgnoresEmptySize(t *testing.T) {
	g := New(&fakeInput{})
	w, h := g.Layout(0, 0)
	if w <= 0 || h <= 0 {
		t.Errorf("Layout(0,0) = %d,%d, want positive size", w, h)
	}
	if g.Field() != nil {
		t.Error("field should not be built for an empty window")
	}
	if err := g.Update(); err != nil {
		t.Errorf("Update() without field = %v", err)
	}
}

func TestUpdateQuit(t *testing.T) {
	g, in := newTestGame(300, 300)
	in.quit = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
}

func TestPointerEnterMoveLeave(t *testing.T) {
	g, in := newTestGame(300, 300)

	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.Field().Cursor().OK {
		t.Fatal("cursor outside window should be undefined")
	}

	in.x, in.y = 100, 120
	g.Update()
	c := g.Field().Cursor()
	if !c.OK || c.X != 100 || c.Y != 120 {
		t.Errorf("field cursor = %+v, want (100,120)", c)
	}
	if x, y := g.Trail().Cursor(); x != 100 || y != 120 {
		t.Errorf("trail cursor = (%v,%v), want (100,120)", x, y)
	}

	in.x, in.y = 400, 120
	g.Update()
	if g.Field().Cursor().OK {
		t.Error("cursor should be cleared after leaving the window")
	}
	if x, y := g.Trail().Cursor(); x != 100 || y != 120 {
		t.Errorf("trail cursor = (%v,%v), want last inside position (100,120)", x, y)
	}
}

func TestUpdateAdvancesEffects(t *testing.T) {
	g, in := newTestGame(300, 300)
	in.x, in.y = 62, 60
	g.Update()

	for _, p := range g.Field().Points() {
		if p.X0 == 60 && p.Y0 == 60 && p.X == 60 {
			t.Error("point under the cursor was not repelled")
		}
	}
	head := g.Trail().Elements()[0]
	if head.X != 62 || head.Y != 60 {
		t.Errorf("trail head = (%v,%v), want (62,60)", head.X, head.Y)
	}
}

func TestOverlayToggle(t *testing.T) {
	g, in := newTestGame(300, 300)
	in.overlay = true
	g.Update()
	if !g.overlay {
		t.Fatal("overlay should be on")
	}
	g.Update()
	if !g.overlay {
		t.Fatal("overlay should stay on without a key press")
	}
	in.overlay = true
	g.Update()
	if g.overlay {
		t.Fatal("overlay should be off")
	}

	text := g.overlayText(60, 59.5)
	for _, want := range []string{"TPS 60.0", "FPS 59.5", "dots 100", "circles 20", "300x300"} {
		if !strings.Contains(text, want) {
			t.Errorf("overlay %q missing %q", text, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{10*time.Minute + 5*time.Second, "10:05"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTicksToDuration(t *testing.T) {
	if got := ticksToDuration(120, 60); got != 2*time.Second {
		t.Errorf("ticksToDuration(120, 60) = %v, want 2s", got)
	}
	if got := ticksToDuration(120, 0); got != 0 {
		t.Errorf("ticksToDuration(120, 0) = %v, want 0", got)
	}
}
