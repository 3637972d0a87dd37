package life

import (
	"strconv"
	"time"
)

// Config holds the fixed settings of a game. It is read once at startup.
type Config struct {
	Size     int
	Interval time.Duration
	Workers  int // goroutines per transition
}

// DefaultConfig returns the standard 20×20 board ticking every 500ms.
func DefaultConfig() Config {
	return Config{Size: 20, Interval: 500 * time.Millisecond, Workers: 1}
}

// FromMap populates a Config from a string map. Invalid entries keep their
// defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Size <= 0 {
		c.Size = d.Size
	}
	if c.Interval <= 0 {
		c.Interval = d.Interval
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	return c
}
