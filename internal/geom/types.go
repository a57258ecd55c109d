package geom

import (
	"fmt"
	"math"
	"math/bits"
)

// Point is a lattice position in original (uncompressed) coordinates.
type Point struct {
	Row int64
	Col int64
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Area returns the tile count of the axis-aligned rectangle spanned by p and q,
// both corners included. It wraps when the count exceeds int64; see CheckedArea.
func (p Point) Area(q Point) int64 {
	return (absDiff(p.Row, q.Row) + 1) * (absDiff(p.Col, q.Col) + 1)
}

// CheckedArea is Area with overflow detection. ok is false when the tile count
// does not fit in an int64.
func (p Point) CheckedArea(q Point) (area int64, ok bool) {
	h, hok := span(p.Row, q.Row)
	w, wok := span(p.Col, q.Col)
	if !hok || !wok {
		return 0, false
	}
	hi, lo := bits.Mul64(h, w)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// span is |a-b|+1 computed in uint64 so the full int64 range is covered.
func span(a, b int64) (uint64, bool) {
	if a < b {
		a, b = b, a
	}
	d := uint64(a) - uint64(b)
	if d == math.MaxUint64 {
		return 0, false
	}
	return d + 1, true
}

// Aligned reports whether p and q share a row or a column.
func (p Point) Aligned(q Point) bool {
	return p.Row == q.Row || p.Col == q.Col
}

type BBox struct {
	MinRow int64
	MinCol int64
	MaxRow int64
	MaxCol int64
}

func (b BBox) Rows() int64 { return b.MaxRow - b.MinRow + 1 }
func (b BBox) Cols() int64 { return b.MaxCol - b.MinCol + 1 }

// Bounds returns the bounding box of loop. The zero BBox is returned for an empty loop.
func Bounds(loop []Point) BBox {
	var bb BBox
	for i, p := range loop {
		if i == 0 {
			bb = BBox{MinRow: p.Row, MinCol: p.Col, MaxRow: p.Row, MaxCol: p.Col}
			continue
		}
		if p.Row < bb.MinRow {
			bb.MinRow = p.Row
		}
		if p.Col < bb.MinCol {
			bb.MinCol = p.Col
		}
		if p.Row > bb.MaxRow {
			bb.MaxRow = p.Row
		}
		if p.Col > bb.MaxCol {
			bb.MaxCol = p.Col
		}
	}
	return bb
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}

// openRing drops a trailing vertex that repeats the first one. WKT, GeoJSON and KML
// rings are closed explicitly; loops here are closed implicitly.
func openRing(pts []Point) []Point {
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		return pts[:len(pts)-1]
	}
	return pts
}
