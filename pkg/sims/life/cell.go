package life

// Cell is a single board position. Coordinates are 1-based and fixed at
// creation; only the alive flag changes.
type Cell struct {
	x, y  int
	alive bool
}

// NewCell returns a dead cell at (x, y).
func NewCell(x, y int) Cell { return Cell{x: x, y: y} }

// X returns the column coordinate.
func (c Cell) X() int { return c.x }

// Y returns the row coordinate.
func (c Cell) Y() int { return c.y }

// Alive reports whether the cell is alive.
func (c Cell) Alive() bool { return c.alive }

// ApplyRules returns the cell's successor given its live neighbour count.
// A live cell survives with two or three neighbours; a dead cell is born with
// exactly three.
func (c Cell) ApplyRules(aliveNeighbours int) Cell {
	next := Cell{x: c.x, y: c.y}
	if c.alive {
		next.alive = aliveNeighbours == 2 || aliveNeighbours == 3
	} else {
		next.alive = aliveNeighbours == 3
	}
	return next
}

// SwitchAlive flips the alive flag in place.
func (c *Cell) SwitchAlive() { c.alive = !c.alive }
