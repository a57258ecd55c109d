package enclosure

import (
	"math"
	"slices"

	"github.com/pkg/errors"
)

// Axis is a compressed coordinate axis: the distinct input coordinates in
// ascending order, bracketed by one sentinel below the minimum and one above the
// maximum. Index 0 and Len()-1 therefore always lie outside any loop built from
// the input.
type Axis struct {
	coords []int64
}

// NewAxis compresses values. The input slice is not modified. Values at the
// int64 limits are rejected since their sentinel would wrap.
func NewAxis(values []int64) (*Axis, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	coords := make([]int64, 0, len(values)+2)
	coords = append(coords, values...)
	lo, hi := slices.Min(coords), slices.Max(coords)
	if lo == math.MinInt64 {
		return nil, errors.Wrapf(ErrCoordinateRange, "value %d", lo)
	}
	if hi == math.MaxInt64 {
		return nil, errors.Wrapf(ErrCoordinateRange, "value %d", hi)
	}
	coords = append(coords, lo-1, hi+1)
	slices.Sort(coords)
	return &Axis{coords: slices.Compact(coords)}, nil
}

// Index returns the compressed index of v.
func (a *Axis) Index(v int64) (int, error) {
	i, ok := slices.BinarySearch(a.coords, v)
	if !ok {
		return 0, errors.Wrapf(ErrCoordinateNotFound, "value %d", v)
	}
	return i, nil
}

func (a *Axis) Len() int { return len(a.coords) }

// Value returns the original coordinate at compressed index i.
func (a *Axis) Value(i int) int64 { return a.coords[i] }

// Values returns a copy of the compressed coordinates.
func (a *Axis) Values() []int64 { return slices.Clone(a.coords) }
