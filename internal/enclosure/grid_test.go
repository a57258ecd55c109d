package enclosure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rectmap/internal/geom"
)

const sampleInput = `7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3
`

// notchInput has a one-tile notch cut into a 4x4 square.
const notchInput = `1,1
1,2
2,2
2,3
1,3
1,4
4,4
4,1
`

func mustLoop(t *testing.T, s string) []geom.Point {
	t.Helper()
	loop, err := geom.ParseLoopString(s)
	require.NoError(t, err)
	return loop
}

func mustGrid(t *testing.T, loop []geom.Point) *Grid {
	t.Helper()
	g, err := NewGrid(loop)
	require.NoError(t, err)
	return g
}

func TestGridDump(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "sample",
			input: sampleInput,
			want: []string{
				"......",
				"..###.",
				".##+#.",
				".####.",
				"...##.",
				"......",
			},
		},
		{
			name:  "notch",
			input: notchInput,
			want: []string{
				".....",
				".###.",
				".###.",
				".###.",
				".###.",
				".....",
			},
		},
		{
			name:  "segment",
			input: "0,0\n5,0\n",
			want: []string{
				"....",
				".##.",
				"....",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, mustLoop(t, tt.input))
			assert.Equal(t, tt.want, g.Dump())
		})
	}
}

func TestGridCounts(t *testing.T) {
	g := mustGrid(t, mustLoop(t, sampleInput))
	counts := g.Counts()
	assert.Equal(t, 13, counts[Boundary])
	assert.Equal(t, 1, counts[Interior])
	assert.Equal(t, 22, counts[Outside])
	assert.Zero(t, counts[Unclassified])
}

func TestGridNoUnclassifiedCells(t *testing.T) {
	for _, input := range []string{sampleInput, notchInput, "0,0\n5,0\n", "0,0\n10,0\n10,10\n0,10\n"} {
		g := mustGrid(t, mustLoop(t, input))
		for r := 0; r < g.Rows().Len(); r++ {
			for c := 0; c < g.Cols().Len(); c++ {
				assert.NotEqual(t, Unclassified, g.Tag(r, c), "cell (%d,%d)", r, c)
			}
		}
	}
}

func TestGridSentinelFrameIsOutside(t *testing.T) {
	g := mustGrid(t, mustLoop(t, sampleInput))
	h, w := g.Rows().Len(), g.Cols().Len()
	for c := 0; c < w; c++ {
		assert.Equal(t, Outside, g.Tag(0, c))
		assert.Equal(t, Outside, g.Tag(h-1, c))
	}
	for r := 0; r < h; r++ {
		assert.Equal(t, Outside, g.Tag(r, 0))
		assert.Equal(t, Outside, g.Tag(r, w-1))
	}
}

// reclassify repeats the flood fill from another seed on a copy of g.
func reclassify(g *Grid, seed cell) *Grid {
	cp := &Grid{rows: g.rows, cols: g.cols, cells: make([][]Tag, len(g.cells))}
	for r, row := range g.cells {
		cp.cells[r] = make([]Tag, len(row))
		for c, t := range row {
			if t == Boundary {
				cp.cells[r][c] = Boundary
			}
		}
	}
	cp.markOutside(seed)
	cp.markInterior()
	return cp
}

func TestFloodFillSeedIndependent(t *testing.T) {
	for _, input := range []string{sampleInput, notchInput} {
		g := mustGrid(t, mustLoop(t, input))
		h, w := g.Rows().Len(), g.Cols().Len()
		for _, seed := range []cell{{0, 0}, {0, w - 1}, {h - 1, 0}, {h - 1, w - 1}, {0, w / 2}, {h / 2, 0}} {
			assert.Equal(t, g.Dump(), reclassify(g, seed).Dump(), "seed %v", seed)
		}
	}
}

func TestNewGridErrors(t *testing.T) {
	_, err := NewGrid(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
	_, err = NewGrid([]geom.Point{{Row: 1, Col: 1}})
	require.ErrorIs(t, err, ErrEmptyInput)

	tests := []struct {
		name  string
		loop  []geom.Point
		index int
	}{
		{
			name:  "diagonal",
			loop:  []geom.Point{{Row: 0, Col: 0}, {Row: 0, Col: 4}, {Row: 3, Col: 6}, {Row: 3, Col: 0}},
			index: 1,
		},
		{
			name:  "zero length",
			loop:  []geom.Point{{Row: 0, Col: 0}, {Row: 0, Col: 4}, {Row: 0, Col: 4}, {Row: 3, Col: 4}, {Row: 3, Col: 0}},
			index: 1,
		},
		{
			name:  "closing edge",
			loop:  []geom.Point{{Row: 0, Col: 0}, {Row: 0, Col: 5}, {Row: 3, Col: 5}},
			index: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.loop)
			require.ErrorIs(t, err, ErrMalformedEdge)
			var edgeErr *EdgeError
			require.ErrorAs(t, err, &edgeErr)
			assert.Equal(t, tt.index, edgeErr.Index)
		})
	}
}

func TestCheckLoop(t *testing.T) {
	require.NoError(t, CheckLoop(mustLoop(t, sampleInput)))
	require.ErrorIs(t, CheckLoop(nil), ErrEmptyInput)

	err := CheckLoop(mustLoop(t, "5,5\n5,5\n"))
	require.ErrorIs(t, err, ErrMalformedEdge)
	var edgeErr *EdgeError
	require.ErrorAs(t, err, &edgeErr)
	assert.Equal(t, 0, edgeErr.Index)
}

func TestNewGridCoordinateRange(t *testing.T) {
	loop := []geom.Point{{Row: 0, Col: 0}, {Row: 0, Col: math.MaxInt64}, {Row: 5, Col: math.MaxInt64}, {Row: 5, Col: 0}}
	_, err := NewGrid(loop)
	require.ErrorIs(t, err, ErrCoordinateRange)
}

func TestRectNormalizes(t *testing.T) {
	assert.Equal(t, Rect{R1: 1, C1: 2, R2: 4, C2: 5}, NewRect(4, 5, 1, 2))
	assert.Equal(t, Rect{R1: 1, C1: 2, R2: 4, C2: 5}, NewRect(1, 5, 4, 2))

	g := mustGrid(t, mustLoop(t, sampleInput))
	r, err := g.Rect(geom.Point{Row: 5, Col: 9}, geom.Point{Row: 3, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, Rect{R1: 2, C1: 1, R2: 3, C2: 3}, r)
}

func TestEnclosesLookupFailure(t *testing.T) {
	g := mustGrid(t, mustLoop(t, sampleInput))
	_, err := g.Encloses(geom.Point{Row: 1, Col: 7}, geom.Point{Row: 4, Col: 7})
	require.ErrorIs(t, err, ErrCoordinateNotFound)
}

func TestEnclosesAdjacentVertices(t *testing.T) {
	for _, input := range []string{sampleInput, notchInput} {
		loop := mustLoop(t, input)
		g := mustGrid(t, loop)
		for i := range loop {
			a, b := loop[i], loop[(i+1)%len(loop)]
			ok, err := g.Encloses(a, b)
			require.NoError(t, err)
			assert.True(t, ok, "edge %v-%v", a, b)
		}
	}
}

func TestEnclosesDegenerate(t *testing.T) {
	loop := mustLoop(t, sampleInput)
	g := mustGrid(t, loop)
	for _, p := range loop {
		ok, err := g.Encloses(p, p)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(1), p.Area(p))
	}
}

func TestEnclosesIdempotent(t *testing.T) {
	loop := mustLoop(t, sampleInput)
	g := mustGrid(t, loop)
	for _, a := range loop {
		for _, b := range loop {
			first, err := g.Encloses(a, b)
			require.NoError(t, err)
			second, err := g.Encloses(a, b)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		}
	}
}

func TestEnclosesKnownRects(t *testing.T) {
	g := mustGrid(t, mustLoop(t, sampleInput))
	tests := []struct {
		a, b geom.Point
		want bool
	}{
		{geom.Point{Row: 5, Col: 9}, geom.Point{Row: 3, Col: 2}, true},
		{geom.Point{Row: 7, Col: 9}, geom.Point{Row: 1, Col: 11}, true},
		{geom.Point{Row: 1, Col: 11}, geom.Point{Row: 5, Col: 2}, false},
		{geom.Point{Row: 3, Col: 7}, geom.Point{Row: 7, Col: 11}, false},
		{geom.Point{Row: 7, Col: 11}, geom.Point{Row: 5, Col: 2}, false},
	}
	for _, tt := range tests {
		ok, err := g.Encloses(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ok, "%v-%v", tt.a, tt.b)
	}
}

// within reports whether the rectangle c-d lies inside the rectangle a-b.
func within(c, d, a, b geom.Point) bool {
	minR, maxR := min(a.Row, b.Row), max(a.Row, b.Row)
	minC, maxC := min(a.Col, b.Col), max(a.Col, b.Col)
	for _, p := range []geom.Point{c, d} {
		if p.Row < minR || p.Row > maxR || p.Col < minC || p.Col > maxC {
			return false
		}
	}
	return true
}

func TestEnclosesMonotone(t *testing.T) {
	for _, input := range []string{sampleInput, notchInput} {
		loop := mustLoop(t, input)
		g := mustGrid(t, loop)
		for _, a := range loop {
			for _, b := range loop {
				ok, err := g.Encloses(a, b)
				require.NoError(t, err)
				if !ok {
					continue
				}
				for _, c := range loop {
					for _, d := range loop {
						if !within(c, d, a, b) {
							continue
						}
						sub, err := g.Encloses(c, d)
						require.NoError(t, err)
						assert.True(t, sub, "%v-%v inside valid %v-%v", c, d, a, b)
					}
				}
			}
		}
	}
}
