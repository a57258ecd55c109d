package geom

import (
	"bufio"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseLoop reads one "col,row" pair per line. The left value is the column and
// the right value is the row. Blank lines are skipped.
func ParseLoop(r io.Reader) ([]Point, error) {
	var loop []Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		p, err := parsePair(s)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		loop = append(loop, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read loop")
	}
	if len(loop) == 0 {
		return nil, errors.New("loop: no points parsed")
	}
	return loop, nil
}

// ParseLoopString is ParseLoop over an in-memory string.
func ParseLoopString(s string) ([]Point, error) {
	return ParseLoop(strings.NewReader(s))
}

func parsePair(s string) (Point, error) {
	left, right, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, errors.Errorf("expected \"col,row\", got %q", s)
	}
	col, err := parseCoord(left)
	if err != nil {
		return Point{}, err
	}
	row, err := parseCoord(right)
	if err != nil {
		return Point{}, err
	}
	return Point{Row: row, Col: col}, nil
}

func parseCoord(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("invalid coordinate %q", s)
	}
	return integral(f)
}

// integral accepts floats that carry an exact integer value, as produced by JSON
// decoding or by "7.0"-style text.
func integral(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, errors.Errorf("coordinate %v is not an integer", f)
	}
	return int64(f), nil
}

// Load reads a loop from path, choosing the decoder by extension.
func Load(path string) ([]Point, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return LoadCSV(path)
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		loop, err := ParseWKT(string(data))
		return loop, errors.Wrapf(err, "%s", filepath.Base(path))
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".kml":
		return LoadKML(path)
	case "", ".txt", ".loop":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		loop, err := ParseLoop(f)
		return loop, errors.Wrapf(err, "%s", filepath.Base(path))
	}
	return nil, errors.Errorf("unsupported file: %s", ext)
}

// Supported reports whether Load has a decoder for the file name's extension.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".wkt", ".geojson", ".json", ".kml", ".txt", ".loop":
		return true
	}
	return false
}
