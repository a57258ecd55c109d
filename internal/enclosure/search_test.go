package enclosure

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rectmap/internal/geom"
)

func TestMaxArea(t *testing.T) {
	area, err := MaxArea(mustLoop(t, sampleInput))
	require.NoError(t, err)
	assert.Equal(t, int64(50), area)
}

func TestMaxEnclosedArea(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "sample", input: sampleInput, want: 24},
		{name: "notch", input: notchInput, want: 16},
		{name: "segment", input: "0,0\n5,0\n", want: 6},
		{name: "square", input: "0,0\n10,0\n10,10\n0,10\n", want: 121},
		{name: "scaled sample", input: "7000,1000\n11000,1000\n11000,7000\n9000,7000\n9000,5000\n2000,5000\n2000,3000\n7000,3000\n", want: 2001 * 7001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area, err := MaxEnclosedArea(mustLoop(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, area)
		})
	}
}

func TestMaxAreaRejectsMalformedLoop(t *testing.T) {
	_, err := MaxArea(mustLoop(t, "5,5\n5,5\n"))
	require.ErrorIs(t, err, ErrMalformedEdge)
	_, err = MaxArea(mustLoop(t, "0,0\n3,4\n"))
	require.ErrorIs(t, err, ErrMalformedEdge)
}

func TestAreaOverflow(t *testing.T) {
	const far = int64(1) << 40
	square := []geom.Point{{Row: 0, Col: 0}, {Row: 0, Col: far}, {Row: far, Col: far}, {Row: far, Col: 0}}
	_, err := MaxArea(square)
	require.ErrorIs(t, err, ErrAreaOverflow)
	_, err = MaxEnclosedArea(square)
	require.ErrorIs(t, err, ErrAreaOverflow)

	// Two thin arms: every overflowing pair spans the outside corner.
	ell := []geom.Point{
		{Row: 0, Col: 0}, {Row: 0, Col: far}, {Row: 1, Col: far},
		{Row: 1, Col: 1}, {Row: far, Col: 1}, {Row: far, Col: 0},
	}
	_, err = MaxArea(ell)
	require.ErrorIs(t, err, ErrAreaOverflow)
	g := mustGrid(t, ell)
	for _, workers := range []int{1, 4} {
		c, err := Search{Workers: workers}.Largest(ell, g.Encloses)
		require.NoError(t, err)
		assert.Equal(t, Candidate{A: ell[0], B: ell[2], I: 0, J: 2, Area: 2 * (far + 1)}, c)
		ranked, err := Search{Workers: workers}.Rank(ell, 2, g.Encloses)
		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, c, ranked[0])
	}
}

func TestSearchStopsAfterFailure(t *testing.T) {
	boom := errors.New("boom")
	failed := make(chan struct{})
	var (
		mu  sync.Mutex
		ran []int
	)
	err := Search{Workers: 2}.each(50, func(i int) error {
		mu.Lock()
		ran = append(ran, i)
		mu.Unlock()
		switch i {
		case 0:
			close(failed)
			return boom
		case 1:
			<-failed
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.ElementsMatch(t, []int{0, 1}, ran)
}

func TestLargestCandidates(t *testing.T) {
	loop := mustLoop(t, sampleInput)
	g := mustGrid(t, loop)

	free, err := Search{}.Largest(loop)
	require.NoError(t, err)
	// (1,11)-(5,2) and (7,11)-(3,2) tie at 50; the lower index pair wins.
	assert.Equal(t, Candidate{A: loop[1], B: loop[5], I: 1, J: 5, Area: 50}, free)

	enclosed, err := Search{}.Largest(loop, g.Encloses)
	require.NoError(t, err)
	assert.Equal(t, Candidate{A: loop[4], B: loop[6], I: 4, J: 6, Area: 24}, enclosed)
}

func TestLargestErrors(t *testing.T) {
	_, err := Search{}.Largest(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
	_, err = Search{}.Largest([]geom.Point{{Row: 1, Col: 1}})
	require.ErrorIs(t, err, ErrEmptyInput)
	_, err = MaxEnclosedArea([]geom.Point{{Row: 1, Col: 1}})
	require.ErrorIs(t, err, ErrEmptyInput)

	loop := mustLoop(t, sampleInput)
	reject := func(a, b geom.Point) (bool, error) { return false, nil }
	_, err = Search{}.Largest(loop, reject)
	require.ErrorIs(t, err, ErrNoCandidate)

	boom := errors.New("boom")
	failing := func(a, b geom.Point) (bool, error) { return false, boom }
	_, err = Search{Workers: 4}.Largest(loop, failing)
	require.ErrorIs(t, err, boom)
}

func TestFiltersCompose(t *testing.T) {
	loop := mustLoop(t, sampleInput)
	g := mustGrid(t, loop)
	notAligned := func(a, b geom.Point) (bool, error) {
		return a.Row != b.Row && a.Col != b.Col, nil
	}
	c, err := Search{}.Largest(loop, g.Encloses, notAligned)
	require.NoError(t, err)
	assert.Equal(t, int64(24), c.Area)

	smallOnly := func(a, b geom.Point) (bool, error) { return a.Area(b) < 20, nil }
	c, err = Search{}.Largest(loop, g.Encloses, smallOnly)
	require.NoError(t, err)
	assert.Less(t, c.Area, int64(20))
	ok, err := g.Encloses(c.A, c.B)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParallelMatchesSequential(t *testing.T) {
	for _, input := range []string{sampleInput, notchInput} {
		loop := mustLoop(t, input)
		g := mustGrid(t, loop)
		wantFree, err := Search{}.Largest(loop)
		require.NoError(t, err)
		wantEnclosed, err := Search{}.Largest(loop, g.Encloses)
		require.NoError(t, err)
		wantRank, err := Search{}.Rank(loop, 5, g.Encloses)
		require.NoError(t, err)
		for _, workers := range []int{2, 3, 8} {
			s := Search{Workers: workers}
			free, err := s.Largest(loop)
			require.NoError(t, err)
			assert.Equal(t, wantFree, free)
			enclosed, err := s.Largest(loop, g.Encloses)
			require.NoError(t, err)
			assert.Equal(t, wantEnclosed, enclosed)
			rank, err := s.Rank(loop, 5, g.Encloses)
			require.NoError(t, err)
			assert.Equal(t, wantRank, rank)
		}
	}
}

func TestRank(t *testing.T) {
	loop := mustLoop(t, sampleInput)
	g := mustGrid(t, loop)

	all, err := Search{}.Rank(loop, 1000)
	require.NoError(t, err)
	assert.Len(t, all, len(loop)*(len(loop)+1)/2)

	ranked, err := Search{}.Rank(loop, 3, g.Encloses)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	best, err := Search{}.Largest(loop, g.Encloses)
	require.NoError(t, err)
	assert.Equal(t, best, ranked[0])
	for i, c := range ranked {
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Area, c.Area)
		}
		ok, err := g.Encloses(c.A, c.B)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	none, err := Search{}.Rank(loop, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAnalyze(t *testing.T) {
	loop := mustLoop(t, sampleInput)
	rep, err := Analyze(loop, Options{Workers: 2, Top: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(50), rep.Free.Area)
	assert.Equal(t, int64(24), rep.Enclosed.Area)
	assert.Len(t, rep.Ranked, 4)
	assert.Equal(t, rep.Enclosed, rep.Ranked[0])
	assert.Equal(t, 6, rep.Grid.Rows().Len())

	_, err = Analyze([]geom.Point{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, Options{})
	require.ErrorIs(t, err, ErrMalformedEdge)
}
