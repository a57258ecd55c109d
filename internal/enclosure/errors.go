package enclosure

import (
	"fmt"

	"github.com/pkg/errors"

	"rectmap/internal/geom"
)

var (
	// ErrEmptyInput is returned when there are too few vertices to work with.
	ErrEmptyInput = errors.New("enclosure: not enough vertices")
	// ErrMalformedEdge is returned when two consecutive vertices are neither
	// row-aligned nor column-aligned, or coincide.
	ErrMalformedEdge = errors.New("enclosure: malformed edge")
	// ErrCoordinateNotFound means a coordinate was looked up that was never part
	// of the compressed axis. It signals a caller bug.
	ErrCoordinateNotFound = errors.New("enclosure: coordinate not on axis")
	// ErrNoCandidate is returned when no vertex pair passes the filters.
	ErrNoCandidate = errors.New("enclosure: no rectangle candidate")
	// ErrCoordinateRange is returned when a coordinate leaves no room for the
	// axis sentinels, i.e. it is math.MinInt64 or math.MaxInt64.
	ErrCoordinateRange = errors.New("enclosure: coordinate at the int64 limit")
	// ErrAreaOverflow is returned when an accepted rectangle has more tiles
	// than an int64 can hold.
	ErrAreaOverflow = errors.New("enclosure: area overflows int64")
)

// EdgeError describes the offending loop edge.
type EdgeError struct {
	Index    int // index of the edge's first vertex
	From, To geom.Point
}

func (e *EdgeError) Error() string {
	if e.From == e.To {
		return fmt.Sprintf("enclosure: edge %d: zero-length edge at %v", e.Index, e.From)
	}
	return fmt.Sprintf("enclosure: edge %d: %v -> %v is not horizontal or vertical", e.Index, e.From, e.To)
}

func (e *EdgeError) Unwrap() error { return ErrMalformedEdge }
