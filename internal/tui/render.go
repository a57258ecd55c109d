package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rectmap/internal/enclosure"
	"rectmap/internal/geom"
)

// screenXYMicro maps a loop point into a 2x4 microgrid per cell for braille
// rendering. Rows grow downward on screen, as in the input.
func (m Model) screenXYMicro(p geom.Point, w, h int) (int, int) {
	nx := norm(p.Col, m.bbox.MinCol, m.bbox.MaxCol)
	ny := norm(p.Row, m.bbox.MinRow, m.bbox.MaxRow)
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int(zy*float64(hMic-1)) + m.offsetY*4
	return sx, sy
}

// cellToPoint converts a map cell back to the nearest original coordinate.
func (m Model) cellToPoint(cx, cy, w, h int) (row, col int64, ok bool) {
	if len(m.loop) == 0 || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := float64(cy-m.offsetY) / float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	col = lerp(m.bbox.MinCol, m.bbox.MaxCol, nx)
	row = lerp(m.bbox.MinRow, m.bbox.MaxRow, ny)
	return row, col, true
}

func (m Model) renderCanvas(w, h int) string {
	// High-resolution braille buffers, one per layer
	loopBuf := newBrailleBuf(w, h)
	freeBuf := newBrailleBuf(w, h)
	enclBuf := newBrailleBuf(w, h)

	if m.showLoop && len(m.loop) > 0 {
		n := len(m.loop)
		for i := range n {
			ax, ay := m.screenXYMicro(m.loop[i], w, h)
			bx, by := m.screenXYMicro(m.loop[(i+1)%n], w, h)
			loopBuf.drawLineMicro(ax, ay, bx, by)
		}
	}
	drawCandidate := func(buf *brailleBuf, c enclosure.Candidate) {
		ax, ay := m.screenXYMicro(c.A, w, h)
		bx, by := m.screenXYMicro(c.B, w, h)
		buf.drawRectMicro(ax, ay, bx, by)
	}
	if m.report != nil && m.showFree {
		drawCandidate(freeBuf, m.report.Free)
	}
	if c, ok := m.current(); ok && m.showEnclosed {
		drawCandidate(enclBuf, c)
	}

	hoverX, hoverY := -1, -1
	if m.hovering {
		hoverX, hoverY = m.hoverMicX/2, m.hoverMicY/4
	}
	lines := make([]string, h)
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.Reset()
		for x := 0; x < w; x++ {
			base := loopBuf.mask(x, y)
			switch {
			case x == hoverX && y == hoverY:
				sb.WriteString(hoverStyle.Render("◯"))
			case enclBuf.mask(x, y) != 0:
				sb.WriteString(enclosedStyle.Render(string(brailleRune(base | enclBuf.mask(x, y)))))
			case freeBuf.mask(x, y) != 0:
				sb.WriteString(freeStyle.Render(string(brailleRune(base | freeBuf.mask(x, y)))))
			default:
				sb.WriteRune(brailleRune(base))
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// renderGrid draws the compressed classification, one character per cell.
// Cells of the highlighted candidate are drawn in the enclosed colour.
func (m Model) renderGrid(w, h int) string {
	if m.report == nil {
		return dimStyle.Render("no grid: load a valid loop first")
	}
	g := m.report.Grid
	var hl enclosure.Rect
	hasHL := false
	if c, ok := m.current(); ok && m.showEnclosed {
		if r, err := g.Rect(c.A, c.B); err == nil {
			hl, hasHL = r, true
		}
	}
	rows := min(g.Rows().Len(), h-1)
	cols := min(g.Cols().Len(), w)
	lines := make([]string, 0, rows+1)
	lines = append(lines, titleStyle.Render(fmt.Sprintf("compressed grid %dx%d", g.Rows().Len(), g.Cols().Len())))
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		sb.Reset()
		for c := 0; c < cols; c++ {
			t := g.Tag(r, c)
			glyph := string(t.Glyph())
			switch {
			case hasHL && r >= hl.R1 && r <= hl.R2 && c >= hl.C1 && c <= hl.C2:
				sb.WriteString(enclosedStyle.Render(glyph))
			case t == enclosure.Boundary:
				sb.WriteString(boundaryStyle.Render(glyph))
			case t == enclosure.Interior:
				sb.WriteString(interiorStyle.Render(glyph))
			default:
				sb.WriteString(dimStyle.Render(glyph))
			}
		}
		lines = append(lines, sb.String())
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

// nearestVertex finds the loop vertex closest to micro coords (mx, my).
func (m Model) nearestVertex(mx, my, w, h int) (idx, vx, vy int, ok bool) {
	best := math.MaxInt
	idx = -1
	for i, p := range m.loop {
		px, py := m.screenXYMicro(p, w, h)
		dx := px - mx
		dy := py - my
		d := dx*dx + dy*dy
		if d < best {
			best, idx, vx, vy = d, i, px, py
		}
	}
	return idx, vx, vy, idx >= 0
}

// inspect builds the popup describing the current loop and the vertex closest
// to the viewport center.
func (m Model) inspect(w, h int) string {
	if m.report == nil {
		return "no analysis available"
	}
	rep := m.report
	counts := rep.Grid.Counts()
	meta := []string{
		fmt.Sprintf("source: %s", m.sourceName()),
		fmt.Sprintf("vertices: %d", len(m.loop)),
		fmt.Sprintf("bounds: rows %d..%d  cols %d..%d", m.bbox.MinRow, m.bbox.MaxRow, m.bbox.MinCol, m.bbox.MaxCol),
		fmt.Sprintf("grid: %dx%d  boundary=%d interior=%d outside=%d",
			rep.Grid.Rows().Len(), rep.Grid.Cols().Len(),
			counts[enclosure.Boundary], counts[enclosure.Interior], counts[enclosure.Outside]),
		fmt.Sprintf("largest: %s  %v-%v", groupDigits(rep.Free.Area), rep.Free.A, rep.Free.B),
		fmt.Sprintf("enclosed: %s  %v-%v", groupDigits(rep.Enclosed.Area), rep.Enclosed.A, rep.Enclosed.B),
	}
	if i, _, _, ok := m.nearestVertex(w, h*2, w, h); ok {
		meta = append(meta, fmt.Sprintf("center vertex #%d: %v", i, m.loop[i]))
	}
	return strings.Join(meta, "\n")
}
