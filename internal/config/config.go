package config

import (
	"image/color"
	"log"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Cursor Effects - Esc/Q: Quit, F1: Debug overlay"

	// Dot field
	GridStep     = 30
	EffectRadius = 20
	Easing       = 0.05
	DotRadius    = 1.5
	DotAlpha     = 0.6

	// Cursor trail
	TrailCount    = 20
	TrailDiameter = 24
	TrailLerp     = 0.3
)

// TrailPaletteHex is the trail colour ramp, deep violet to blue.
var TrailPaletteHex = []string{
	"#1b0533",
	"#1a0637",
	"#19063b",
	"#170740",
	"#150844",
	"#140948",
	"#13094c",
	"#120a50",
	"#110a54",
	"#100a58",
	"#0f0a5c",
	"#0e0a60",
	"#0d0b64",
	"#0c0b68",
	"#0b0b6c",
	"#0a0c70",
	"#090c74",
	"#080c78",
	"#070c7c",
	"#060c80",
}

// DotColor is translucent white.
func DotColor() color.NRGBA {
	w := colornames.White
	return color.NRGBA{R: w.R, G: w.G, B: w.B, A: uint8(DotAlpha * 255)}
}

// ParsePalette converts hex colour strings to opaque RGBA values.
// Entries that fail to parse are logged and skipped.
func ParsePalette(hex []string) []color.RGBA {
	out := make([]color.RGBA, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			log.Printf("Warning: skipping palette entry %q: %v", h, err)
			continue
		}
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return out
}

// TrailPalette returns the parsed trail palette.
func TrailPalette() []color.RGBA {
	return ParsePalette(TrailPaletteHex)
}
