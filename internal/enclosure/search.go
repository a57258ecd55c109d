package enclosure

import (
	"context"
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"rectmap/internal/geom"
)

// Filter is an optional stage over the candidate enumeration. A pair is kept
// only if every filter accepts it.
type Filter func(a, b geom.Point) (bool, error)

// Candidate is a vertex pair and the area of the rectangle it spans.
type Candidate struct {
	A, B geom.Point
	I, J int // vertex indices, I <= J
	Area int64
}

func (c Candidate) String() string {
	return fmt.Sprintf("%v-%v area=%d", c.A, c.B, c.Area)
}

// better orders candidates by descending area, then ascending (I, J), so the
// result does not depend on how the work was split.
func better(a, b Candidate) bool {
	if a.Area != b.Area {
		return a.Area > b.Area
	}
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}

func compareCandidates(a, b Candidate) int {
	switch {
	case better(a, b):
		return -1
	case better(b, a):
		return 1
	}
	return 0
}

// Search enumerates every unordered vertex pair, degenerate pairs included.
// Workers > 1 splits the outer loop across goroutines; filters must then be
// safe for concurrent use, which Grid.Encloses is.
type Search struct {
	Workers int
}

func (s Search) each(n int, fn func(i int) error) error {
	if s.Workers <= 1 {
		for i := range n {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(s.Workers)
	for i := range n {
		g.Go(func() error {
			// rows queued behind a failure are skipped
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	return g.Wait()
}

// newCandidate builds the candidate for vertices i and j. An area beyond int64
// is an error only if the filters accept the pair; ok is false for a rejected
// overflowing pair.
func newCandidate(loop []geom.Point, i, j int, filters []Filter) (c Candidate, ok bool, err error) {
	a, b := loop[i], loop[j]
	area, fits := a.CheckedArea(b)
	if fits {
		return Candidate{A: a, B: b, I: i, J: j, Area: area}, true, nil
	}
	accepted, err := accept(a, b, filters)
	if err != nil {
		return Candidate{}, false, err
	}
	if accepted {
		return Candidate{}, false, errors.Wrapf(ErrAreaOverflow, "vertices %d %v and %d %v", i, a, j, b)
	}
	return Candidate{}, false, nil
}

func accept(a, b geom.Point, filters []Filter) (bool, error) {
	for _, f := range filters {
		ok, err := f(a, b)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// Largest returns the maximum-area candidate accepted by all filters.
func (s Search) Largest(loop []geom.Point, filters ...Filter) (Candidate, error) {
	n := len(loop)
	if n < 2 {
		return Candidate{}, ErrEmptyInput
	}
	best := make([]Candidate, n)
	found := make([]bool, n)
	err := s.each(n, func(i int) error {
		for j := i; j < n; j++ {
			c, ok, err := newCandidate(loop, i, j, filters)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if found[i] && !better(c, best[i]) {
				continue
			}
			ok, err = accept(c.A, c.B, filters)
			if err != nil {
				return err
			}
			if ok {
				best[i], found[i] = c, true
			}
		}
		return nil
	})
	if err != nil {
		return Candidate{}, err
	}
	var (
		top Candidate
		ok  bool
	)
	for i := range n {
		if found[i] && (!ok || better(best[i], top)) {
			top, ok = best[i], true
		}
	}
	if !ok {
		return Candidate{}, ErrNoCandidate
	}
	return top, nil
}

// Rank returns up to limit accepted candidates, best first.
func (s Search) Rank(loop []geom.Point, limit int, filters ...Filter) ([]Candidate, error) {
	n := len(loop)
	if n < 2 {
		return nil, ErrEmptyInput
	}
	if limit <= 0 {
		return nil, nil
	}
	perRow := make([][]Candidate, n)
	err := s.each(n, func(i int) error {
		var row []Candidate
		for j := i; j < n; j++ {
			c, ok, err := newCandidate(loop, i, j, filters)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if len(row) == limit && !better(c, row[limit-1]) {
				continue
			}
			ok, err = accept(c.A, c.B, filters)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			at, _ := slices.BinarySearchFunc(row, c, compareCandidates)
			row = slices.Insert(row, at, c)
			if len(row) > limit {
				row = row[:limit]
			}
		}
		perRow[i] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	all := slices.Concat(perRow...)
	slices.SortFunc(all, compareCandidates)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// MaxArea is the largest rectangle over all vertex pairs, enclosure ignored.
func MaxArea(loop []geom.Point) (int64, error) {
	if err := CheckLoop(loop); err != nil {
		return 0, err
	}
	c, err := Search{}.Largest(loop)
	return c.Area, err
}

// MaxEnclosedArea is the largest rectangle lying entirely on or inside the loop.
func MaxEnclosedArea(loop []geom.Point) (int64, error) {
	g, err := NewGrid(loop)
	if err != nil {
		return 0, err
	}
	c, err := Search{}.Largest(loop, g.Encloses)
	return c.Area, err
}

// Options tunes Analyze.
type Options struct {
	Workers int
	Top     int
}

// Report bundles everything derived from one loop.
type Report struct {
	Loop     []geom.Point
	Grid     *Grid
	Free     Candidate   // largest rectangle ignoring the loop
	Enclosed Candidate   // largest rectangle inside the loop
	Ranked   []Candidate // best enclosed candidates, at most Options.Top
}

// Analyze builds the grid once and runs both searches against it.
func Analyze(loop []geom.Point, opts Options) (*Report, error) {
	g, err := NewGrid(loop)
	if err != nil {
		return nil, err
	}
	s := Search{Workers: opts.Workers}
	free, err := s.Largest(loop)
	if err != nil {
		return nil, err
	}
	enclosed, err := s.Largest(loop, g.Encloses)
	if err != nil {
		return nil, err
	}
	ranked, err := s.Rank(loop, opts.Top, g.Encloses)
	if err != nil {
		return nil, err
	}
	return &Report{Loop: loop, Grid: g, Free: free, Enclosed: enclosed, Ranked: ranked}, nil
}
