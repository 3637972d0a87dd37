package life

import (
	"fmt"
	"sort"
)

// Pattern is a named set of live cells given as offsets from its top-left corner.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var patterns = map[string]Pattern{}

// RegisterPattern adds a pattern under the provided name.
func RegisterPattern(name string, cells [][2]int) {
	if name == "" || len(cells) == 0 {
		return
	}
	patterns[name] = Pattern{Name: name, Cells: cells}
}

// LookupPattern returns the named pattern.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// PatternNames lists registered patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp sets the pattern's cells alive with its corner at (x, y). Offsets
// wrap around the board edges.
func (p Pattern) Stamp(g *Grid, x, y int) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	for _, c := range p.Cells {
		g.cells[g.index(g.Wrap(x+c[0]), g.Wrap(y+c[1]))].alive = true
	}
	g.rehash()
	return nil
}

func init() {
	RegisterPattern("block", [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	RegisterPattern("blinker", [][2]int{{1, 0}, {1, 1}, {1, 2}})
	RegisterPattern("toad", [][2]int{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}})
	RegisterPattern("beacon", [][2]int{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}})
	RegisterPattern("glider", [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
	RegisterPattern("lwss", [][2]int{{1, 0}, {4, 0}, {0, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}})
	RegisterPattern("r-pentomino", [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}})
}
