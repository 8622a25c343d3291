//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"life-ca/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctl, err := cfg.Build()
	if err != nil {
		log.Fatalf("life: %v", err)
	}

	game := app.New(ctl, cfg.Width, cfg.Height)
	n := ctl.Sim().SideLength()

	ebiten.SetWindowTitle("Game of Life " + strconv.Itoa(n) + "x" + strconv.Itoa(n))
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
