package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/Flixlef/game-of-life/pkg/core"
	"github.com/Flixlef/game-of-life/pkg/sims/life"
)

func TestBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-size", "30", "-interval", "250ms", "-workers", "2", "-pattern", "glider"}); err != nil {
		t.Fatal(err)
	}
	want := life.Config{Size: 30, Interval: 250 * time.Millisecond, Workers: 2}
	if cfg.Life() != want {
		t.Fatalf("Life()=%+v, expected %+v", cfg.Life(), want)
	}
}

func TestSeedBoard(t *testing.T) {
	cfg := NewConfig()
	g := life.New(cfg.Life(), core.NewFixedStep())

	cfg.Pattern = "glider"
	if err := cfg.SeedBoard(g); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 5 {
		t.Fatalf("expected glider on the board, population %d", g.Population())
	}

	cfg.Pattern = "random"
	if err := cfg.SeedBoard(g); err != nil {
		t.Fatal(err)
	}
	if g.Population() == 0 || g.HistoryLen() != 1 {
		t.Fatal("random seeding must start a fresh populated game")
	}

	cfg.Pattern = "nope"
	if err := cfg.SeedBoard(g); !errors.Is(err, life.ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}
