//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Grid lines are only drawn when a cell is at least this many pixels wide.
const minLineScale = 4

var (
	lineColor   = color.RGBA{R: 40, G: 40, B: 46, A: 255}
	cursorColor = color.RGBA{R: 70, G: 70, B: 70, A: 90}
)

// BoardPainter draws an n×n life board at a fixed scale. The board occupies
// the top-left Side()×Side() pixels of the destination.
type BoardPainter struct {
	n, scale int
	on, off  color.Color

	board  *ebiten.Image
	lines  *ebiten.Image
	cursor *ebiten.Image
	buf    []byte
}

// NewBoardPainter allocates the images for a board of side n drawn with
// scale pixels per cell.
func NewBoardPainter(n, scale int, on, off color.Color) *BoardPainter {
	n, scale = max(n, 1), max(scale, 1)
	p := &BoardPainter{
		n:      n,
		scale:  scale,
		on:     on,
		off:    off,
		board:  ebiten.NewImage(n, n),
		cursor: ebiten.NewImage(scale, scale),
		buf:    make([]byte, 4*n*n),
	}
	p.cursor.Fill(cursorColor)
	if scale >= minLineScale {
		p.lines = ebiten.NewImage(n*scale, n*scale)
		p.lines.WritePixels(gridLines(n, scale, lineColor))
	}
	return p
}

// Side returns the width and height of the drawn board in pixels.
func (p *BoardPainter) Side() int { return p.n * p.scale }

// CellAt maps a screen position onto board coordinates.
func (p *BoardPainter) CellAt(px, py int) (x, y int, ok bool) {
	return CellAt(px, py, p.scale, p.n)
}

// Draw uploads cells (as produced by life.Grid.Cells) and draws the board.
// The cell under the cursor position (cx, cy) is highlighted.
func (p *BoardPainter) Draw(dst *ebiten.Image, cells []uint8, cx, cy int) {
	if len(cells) != p.n*p.n {
		return
	}
	fillBinaryRGBA(p.buf, cells, p.on, p.off)
	p.board.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.scale), float64(p.scale))
	dst.DrawImage(p.board, op)

	if p.lines != nil {
		dst.DrawImage(p.lines, nil)
	}

	if x, y, ok := p.CellAt(cx, cy); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64((x-1)*p.scale), float64((y-1)*p.scale))
		dst.DrawImage(p.cursor, op)
	}
}
