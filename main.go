package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/cursor-effects/internal/config"
	"github.com/iburimskiy/cursor-effects/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(game.NewEbitenInput())
	log.Printf("Starting cursor effects (%dx%d)", config.WindowWidth, config.WindowHeight)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("Fatal: %v", err)
		_ = zenity.Error(err.Error(), zenity.Title("Cursor Effects"), zenity.ErrorIcon)
		os.Exit(1)
	}
	log.Println("Stopped")
}
