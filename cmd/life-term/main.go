package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Flixlef/game-of-life/internal/app"
	"github.com/Flixlef/game-of-life/internal/term"
	"github.com/Flixlef/game-of-life/pkg/core"
	"github.com/Flixlef/game-of-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	game := life.New(cfg.Life(), core.NewTicker())
	defer game.Pause()
	if err := cfg.SeedBoard(game); err != nil {
		return fmt.Errorf("seed board: %w (patterns: %v)", err, life.PatternNames())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	return term.New(screen, game, cfg.Density).Run()
}
