package geom

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// LoadGeoJSON reads a GeoJSON file and returns the first loop it finds.
func LoadGeoJSON(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON extracts loop vertices from a Polygon outer ring, a LineString or a
// MultiPoint. The geometry may be bare, wrapped in a Feature, or the first usable
// one in a FeatureCollection.
func ParseGeoJSON(data []byte) ([]Point, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "geojson")
	}
	parsePoint := func(v any) (Point, error) {
		a, ok := v.([]any)
		if !ok || len(a) < 2 {
			return Point{}, errors.New("geojson: position must have two numbers")
		}
		x, xok := a[0].(float64)
		y, yok := a[1].(float64)
		if !xok || !yok {
			return Point{}, errors.New("geojson: position must have two numbers")
		}
		col, err := integral(x)
		if err != nil {
			return Point{}, errors.Wrap(err, "geojson")
		}
		row, err := integral(y)
		if err != nil {
			return Point{}, errors.Wrap(err, "geojson")
		}
		return Point{Row: row, Col: col}, nil
	}
	parseArrayPoints := func(v any) ([]Point, error) {
		arr, ok := v.([]any)
		if !ok {
			return nil, errors.New("geojson: coordinates must be an array")
		}
		pts := make([]Point, 0, len(arr))
		for _, el := range arr {
			p, err := parsePoint(el)
			if err != nil {
				return nil, err
			}
			pts = append(pts, p)
		}
		return pts, nil
	}
	walkGeom := func(g map[string]any) ([]Point, bool, error) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Polygon":
			rings, ok := g["coordinates"].([]any)
			if !ok || len(rings) == 0 {
				return nil, true, errors.New("geojson: polygon without rings")
			}
			if len(rings) > 1 {
				return nil, true, errors.New("geojson: polygon holes are not supported")
			}
			pts, err := parseArrayPoints(rings[0])
			return pts, true, err
		case "LineString", "MultiPoint":
			pts, err := parseArrayPoints(g["coordinates"])
			return pts, true, err
		}
		return nil, false, nil
	}
	var geoms []map[string]any
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			geoms = append(geoms, g)
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					if g, ok := fm["geometry"].(map[string]any); ok {
						geoms = append(geoms, g)
					}
				}
			}
		}
	case "":
		return nil, errors.New("invalid geojson: missing type")
	default:
		geoms = append(geoms, raw)
	}
	for _, g := range geoms {
		pts, used, err := walkGeom(g)
		if !used {
			continue
		}
		if err != nil {
			return nil, err
		}
		if len(pts) == 0 {
			return nil, errors.New("geojson: empty geometry")
		}
		return openRing(pts), nil
	}
	return nil, errors.New("no loop geometry found in geojson")
}
