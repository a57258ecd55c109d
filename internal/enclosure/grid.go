package enclosure

import (
	"strings"

	"rectmap/internal/geom"
)

// Tag classifies one compressed cell.
type Tag uint8

const (
	Unclassified Tag = iota
	Boundary
	Outside
	Interior
)

func (t Tag) String() string {
	switch t {
	case Boundary:
		return "boundary"
	case Outside:
		return "outside"
	case Interior:
		return "interior"
	}
	return "unclassified"
}

// Glyph is the character used for t in Dump.
func (t Tag) Glyph() byte {
	switch t {
	case Boundary:
		return '#'
	case Outside:
		return '.'
	case Interior:
		return '+'
	}
	return '?'
}

// Rect is a normalized rectangle in compressed index space.
type Rect struct {
	R1, C1 int
	R2, C2 int
}

// NewRect orders the corners so that R1 <= R2 and C1 <= C2.
func NewRect(r1, c1, r2, c2 int) Rect {
	return Rect{R1: min(r1, r2), C1: min(c1, c2), R2: max(r1, r2), C2: max(c1, c2)}
}

// Grid is the classification of a rectilinear loop over its compressed axes.
// It is immutable once NewGrid returns and safe for concurrent readers.
type Grid struct {
	rows  *Axis
	cols  *Axis
	cells [][]Tag
}

type cell struct{ r, c int }

// NewGrid rasterizes the loop boundary and classifies every compressed cell as
// Boundary, Outside or Interior. The loop is closed implicitly: the last vertex
// connects back to the first.
func NewGrid(loop []geom.Point) (*Grid, error) {
	if err := CheckLoop(loop); err != nil {
		return nil, err
	}
	rv := make([]int64, len(loop))
	cv := make([]int64, len(loop))
	for i, p := range loop {
		rv[i], cv[i] = p.Row, p.Col
	}
	rows, err := NewAxis(rv)
	if err != nil {
		return nil, err
	}
	cols, err := NewAxis(cv)
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]Tag, rows.Len())
	for r := range g.cells {
		g.cells[r] = make([]Tag, cols.Len())
	}
	if err := g.markBoundary(loop); err != nil {
		return nil, err
	}
	g.markOutside(cell{0, 0})
	g.markInterior()
	return g, nil
}

// CheckLoop verifies that the implicitly closed loop has at least two vertices
// and that every edge is non-empty and horizontal or vertical.
func CheckLoop(loop []geom.Point) error {
	n := len(loop)
	if n < 2 {
		return ErrEmptyInput
	}
	for i := range n {
		a, b := loop[i], loop[(i+1)%n]
		if a == b || !a.Aligned(b) {
			return &EdgeError{Index: i, From: a, To: b}
		}
	}
	return nil
}

func (g *Grid) markBoundary(loop []geom.Point) error {
	n := len(loop)
	for i := range n {
		a, b := loop[i], loop[(i+1)%n]
		rect, err := g.Rect(a, b)
		if err != nil {
			return err
		}
		for r := rect.R1; r <= rect.R2; r++ {
			for c := rect.C1; c <= rect.C2; c++ {
				g.cells[r][c] = Boundary
			}
		}
	}
	return nil
}

// markOutside flood fills Unclassified cells 4-connected to seed. Boundary cells
// are walls.
func (g *Grid) markOutside(seed cell) {
	if g.cells[seed.r][seed.c] != Unclassified {
		return
	}
	dr := [4]int{1, -1, 0, 0}
	dc := [4]int{0, 0, 1, -1}
	h, w := g.rows.Len(), g.cols.Len()
	g.cells[seed.r][seed.c] = Outside
	q := make([]cell, 0, h+w)
	q = append(q, seed)
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		for i := range 4 {
			nr, nc := cur.r+dr[i], cur.c+dc[i]
			if nr < 0 || nc < 0 || nr >= h || nc >= w {
				continue
			}
			if g.cells[nr][nc] == Unclassified {
				g.cells[nr][nc] = Outside
				q = append(q, cell{nr, nc})
			}
		}
	}
}

// markInterior tags every cell the flood fill could not reach.
func (g *Grid) markInterior() {
	for _, row := range g.cells {
		for c, t := range row {
			if t == Unclassified {
				row[c] = Interior
			}
		}
	}
}

func (g *Grid) Rows() *Axis { return g.rows }
func (g *Grid) Cols() *Axis { return g.cols }

// Tag returns the classification of compressed cell (r, c).
func (g *Grid) Tag(r, c int) Tag { return g.cells[r][c] }

// Rect maps two original-space points to their normalized compressed rectangle.
func (g *Grid) Rect(a, b geom.Point) (Rect, error) {
	r1, err := g.rows.Index(a.Row)
	if err != nil {
		return Rect{}, err
	}
	c1, err := g.cols.Index(a.Col)
	if err != nil {
		return Rect{}, err
	}
	r2, err := g.rows.Index(b.Row)
	if err != nil {
		return Rect{}, err
	}
	c2, err := g.cols.Index(b.Col)
	if err != nil {
		return Rect{}, err
	}
	return NewRect(r1, c1, r2, c2), nil
}

// Valid reports whether no cell of rect is Outside.
func (g *Grid) Valid(rect Rect) bool {
	for r := rect.R1; r <= rect.R2; r++ {
		for _, t := range g.cells[r][rect.C1 : rect.C2+1] {
			if t == Outside {
				return false
			}
		}
	}
	return true
}

// Encloses reports whether the rectangle with opposite corners a and b lies on
// boundary or interior cells only. It satisfies Filter.
func (g *Grid) Encloses(a, b geom.Point) (bool, error) {
	rect, err := g.Rect(a, b)
	if err != nil {
		return false, err
	}
	return g.Valid(rect), nil
}

// Counts returns the number of cells per tag.
func (g *Grid) Counts() map[Tag]int {
	counts := make(map[Tag]int, 3)
	for _, row := range g.cells {
		for _, t := range row {
			counts[t]++
		}
	}
	return counts
}

// Dump renders one line per compressed row using Tag.Glyph.
func (g *Grid) Dump() []string {
	out := make([]string, len(g.cells))
	var sb strings.Builder
	for r, row := range g.cells {
		sb.Reset()
		for _, t := range row {
			sb.WriteByte(t.Glyph())
		}
		out[r] = sb.String()
	}
	return out
}
