package app

import (
	"flag"
	"time"

	"github.com/Flixlef/game-of-life/pkg/sims/life"
)

// Config represents the command-line parameters shared by both shells.
type Config struct {
	Size     int
	Interval time.Duration
	Workers  int
	Scale    int
	Seed     int64
	Density  float64
	Pattern  string
}

// NewConfig returns a Config populated with the game defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Size:     d.Size,
		Interval: d.Interval,
		Workers:  d.Workers,
		Scale:    20,
		Seed:     42,
		Density:  0.3,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "board side length")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "auto-play tick interval")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per transition")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for random boards")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern placed on the first board (\"random\" for a random fill)")
}

// Life returns the game settings.
func (c *Config) Life() life.Config {
	return life.Config{Size: c.Size, Interval: c.Interval, Workers: c.Workers}
}

// SeedBoard prepares the first board according to -pattern.
func (c *Config) SeedBoard(g *life.Game) error {
	switch c.Pattern {
	case "":
		return nil
	case "random":
		g.Randomize(c.Seed, c.Density)
		return nil
	}
	mid := g.Config().Size/2 - 1
	if mid < 1 {
		mid = 1
	}
	return g.Place(c.Pattern, mid, mid)
}
