package tui

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bits per micro position, indexed [ry][rx]
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[my%4][mx%2]
}

// mask returns the dot mask of cell (cx, cy), 0 when out of range.
func (b *brailleBuf) mask(cx, cy int) uint8 {
	if cx < 0 || cy < 0 || cy >= b.h || cx >= b.w {
		return 0
	}
	return b.m[cy][cx]
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawRectMicro outlines the axis-aligned rectangle with corners (x0,y0) and (x1,y1).
func (b *brailleBuf) drawRectMicro(x0, y0, x1, y1 int) {
	b.drawLineMicro(x0, y0, x1, y0)
	b.drawLineMicro(x1, y0, x1, y1)
	b.drawLineMicro(x1, y1, x0, y1)
	b.drawLineMicro(x0, y1, x0, y0)
}

func brailleRune(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}
