//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/Flixlef/game-of-life/internal/app"
	"github.com/Flixlef/game-of-life/pkg/core"
	"github.com/Flixlef/game-of-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sched := core.NewFixedStep()
	game := life.New(cfg.Life(), sched)
	if err := cfg.SeedBoard(game); err != nil {
		log.Fatalf("seed board: %v (patterns: %v)", err, life.PatternNames())
	}

	gui := app.New(game, sched, cfg)
	w, h := gui.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(gui); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
