package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a screen position onto 1-based board coordinates for a board
// of side n drawn at the given scale. ok is false outside the board.
func CellAt(px, py, scale, n int) (x, y int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale+1, py/scale+1
	if x > n || y > n {
		return 0, 0, false
	}
	return x, y, true
}

// gridLines returns RGBA pixels for a board of side n at the given scale with
// a one-pixel line along the top and left edge of every cell. All other
// pixels are transparent.
func gridLines(n, scale int, line color.Color) []byte {
	side := n * scale
	buf := make([]byte, 4*side*side)
	r, g, b, a := line.RGBA()
	for py := 0; py < side; py++ {
		for px := 0; px < side; px++ {
			if px%scale != 0 && py%scale != 0 {
				continue
			}
			i := 4 * (py*side + px)
			buf[i+0] = uint8(r >> 8)
			buf[i+1] = uint8(g >> 8)
			buf[i+2] = uint8(b >> 8)
			buf[i+3] = uint8(a >> 8)
		}
	}
	return buf
}
