package geom

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseWKT parses a subset of WKT into loop vertices (x = column, y = row).
// Supported: POLYGON((x y, ...)) outer ring only, LINESTRING(x y, ...), MULTIPOINT(x y, ...)
func ParseWKT(wkt string) ([]Point, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	parseTuples := func(block string) ([]Point, error) {
		var out []Point
		for _, tup := range strings.Split(block, ",") {
			// MULTIPOINT((1 2),(3 4)) wraps every tuple
			tup = strings.Trim(strings.TrimSpace(tup), "()")
			parts := strings.Fields(tup)
			if len(parts) < 2 {
				return nil, errors.Errorf("wkt: invalid tuple %q", tup)
			}
			x, err := parseCoord(parts[0])
			if err != nil {
				return nil, errors.Wrap(err, "wkt")
			}
			y, err := parseCoord(parts[1])
			if err != nil {
				return nil, errors.Wrap(err, "wkt")
			}
			out = append(out, Point{Row: y, Col: x})
		}
		return out, nil
	}
	var (
		pts []Point
		err error
	)
	switch {
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return nil, errors.New("wkt polygon: invalid")
		}
		ring := s[i+2 : j]
		if strings.Contains(ring, ")") {
			return nil, errors.New("wkt polygon: holes are not supported")
		}
		pts, err = parseTuples(ring)
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "LINESTRING"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return nil, errors.New("wkt: invalid coordinate list")
		}
		pts, err = parseTuples(s[i+1 : j])
	default:
		return nil, errors.New("unsupported wkt type")
	}
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return openRing(pts), nil
}
