package life

import (
	"strings"

	"golang.org/x/sync/errgroup"
)

// Fingerprint summarises a grid's alive/dead pattern. Two grids of the same
// size have equal fingerprints exactly when every cell matches.
type Fingerprint string

// offsets lists neighbour deltas in the order top-left, top, top-right, left,
// right, bottom-left, bottom, bottom-right.
var offsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is one generation snapshot of an N×N toroidal board. Cells are stored
// in scan order (1,1)..(1,N),(2,1)..(N,N).
type Grid struct {
	n     int
	cells []Cell
	fp    Fingerprint
}

// NewGrid allocates an all-dead grid with side n.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	g := &Grid{n: n, cells: make([]Cell, n*n)}
	for x := 1; x <= n; x++ {
		for y := 1; y <= n; y++ {
			g.cells[g.index(x, y)] = NewCell(x, y)
		}
	}
	g.rehash()
	return g
}

// Size returns the board side length.
func (g *Grid) Size() int { return g.n }

func (g *Grid) index(x, y int) int { return (x-1)*g.n + (y - 1) }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 1 && x <= g.n && y >= 1 && y <= g.n
}

func (g *Grid) checkBounds(x, y int) error {
	if !g.inBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Size: g.n}
	}
	return nil
}

// Wrap maps any integer coordinate onto 1..N toroidally.
func (g *Grid) Wrap(c int) int {
	return ((c-1)%g.n+g.n)%g.n + 1
}

// CellAt returns the cell at (x, y).
func (g *Grid) CellAt(x, y int) (Cell, error) {
	if err := g.checkBounds(x, y); err != nil {
		return Cell{}, err
	}
	return g.cells[g.index(x, y)], nil
}

// AliveAt reports whether (x, y) is alive. Out-of-range positions are dead.
func (g *Grid) AliveAt(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)].alive
}

// Neighbours returns the eight toroidally wrapped neighbours of (x, y).
func (g *Grid) Neighbours(x, y int) [8]Cell {
	var out [8]Cell
	for i, o := range offsets {
		out[i] = g.cells[g.index(g.Wrap(x+o[0]), g.Wrap(y+o[1]))]
	}
	return out
}

// CountAlive counts the live cells in cells.
func CountAlive(cells []Cell) int {
	n := 0
	for _, c := range cells {
		if c.alive {
			n++
		}
	}
	return n
}

func (g *Grid) successor(x, y int) Cell {
	nb := g.Neighbours(x, y)
	return g.cells[g.index(x, y)].ApplyRules(CountAlive(nb[:]))
}

// Transition computes the next generation. Every cell is evaluated against
// this grid only, so the receiver is left untouched.
func (g *Grid) Transition() *Grid {
	next := &Grid{n: g.n, cells: make([]Cell, len(g.cells))}
	g.fillColumns(next, 1, g.n)
	next.rehash()
	return next
}

// TransitionParallel produces the same result as Transition, splitting the
// columns into bands evaluated concurrently.
func (g *Grid) TransitionParallel(workers int) *Grid {
	if workers <= 1 || g.n < 2 {
		return g.Transition()
	}
	if workers > g.n {
		workers = g.n
	}
	next := &Grid{n: g.n, cells: make([]Cell, len(g.cells))}
	band := (g.n + workers - 1) / workers

	var eg errgroup.Group
	for start := 1; start <= g.n; start += band {
		lo, hi := start, min(start+band-1, g.n)
		eg.Go(func() error {
			g.fillColumns(next, lo, hi)
			return nil
		})
	}
	// Bands only read g and write disjoint columns of next, so no worker
	// returns an error.
	_ = eg.Wait()
	next.rehash()
	return next
}

// fillColumns writes successors for columns lo..hi into next.
func (g *Grid) fillColumns(next *Grid, lo, hi int) {
	for x := lo; x <= hi; x++ {
		for y := 1; y <= g.n; y++ {
			next.cells[g.index(x, y)] = g.successor(x, y)
		}
	}
}

// IsExtinct reports whether every cell is dead.
func (g *Grid) IsExtinct() bool {
	for _, c := range g.cells {
		if c.alive {
			return false
		}
	}
	return true
}

// Population returns the number of live cells.
func (g *Grid) Population() int { return CountAlive(g.cells) }

// Fingerprint returns the cached pattern digest.
func (g *Grid) Fingerprint() Fingerprint { return g.fp }

func (g *Grid) rehash() {
	buf := make([]byte, (len(g.cells)+7)/8)
	for i, c := range g.cells {
		if c.alive {
			buf[i/8] |= 1 << (i % 8)
		}
	}
	g.fp = Fingerprint(buf)
}

// Toggle flips the cell at (x, y) in place.
func (g *Grid) Toggle(x, y int) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	g.cells[g.index(x, y)].SwitchAlive()
	g.rehash()
	return nil
}

// Set forces the cell at (x, y) to the given state.
func (g *Grid) Set(x, y int, alive bool) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	c := &g.cells[g.index(x, y)]
	if c.alive != alive {
		c.alive = alive
		g.rehash()
	}
	return nil
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, cells: append([]Cell(nil), g.cells...), fp: g.fp}
}

// Cells writes the board into dst as 0/1 values in row-major order (row y,
// column x) and returns it. dst is reallocated when too small.
func (g *Grid) Cells(dst []uint8) []uint8 {
	total := g.n * g.n
	if cap(dst) < total {
		dst = make([]uint8, total)
	}
	dst = dst[:total]
	for x := 1; x <= g.n; x++ {
		for y := 1; y <= g.n; y++ {
			v := uint8(0)
			if g.cells[g.index(x, y)].alive {
				v = 1
			}
			dst[(y-1)*g.n+(x-1)] = v
		}
	}
	return dst
}

// String renders the board one row per line, '#' for alive and '.' for dead.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.n * (g.n + 1))
	for y := 1; y <= g.n; y++ {
		for x := 1; x <= g.n; x++ {
			if g.AliveAt(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
