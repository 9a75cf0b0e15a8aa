package main

import (
	"flag"
	"log"

	"github.com/automoto/flappy/config"
	"github.com/automoto/flappy/fonts"
	"github.com/automoto/flappy/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts Ebitengine's per-frame callbacks onto the scene manager.
type Game struct {
	manager *scenes.Manager
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return g.manager.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.Screen.Width, config.Screen.Height
}

func main() {
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "Draw avatar state and TPS on the game scene")
	flag.Parse()

	fonts.Load()

	ebiten.SetWindowTitle(config.Screen.Title)
	ebiten.SetWindowSize(config.Screen.Width, config.Screen.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetCursorMode(ebiten.CursorModeVisible)

	manager, err := scenes.NewManager()
	if err != nil {
		log.Fatalf("Failed to load title scene: %v", err)
	}

	if err := ebiten.RunGame(&Game{manager: manager}); err != nil {
		log.Fatal(err)
	}
}
