package geom

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadKML extracts a loop from a KML file. The first Placemark carrying a Polygon
// outer boundary or a LineString wins. KML coordinates are "x,y[,alt]"; altitude
// is ignored.
func LoadKML(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return ParseKML(data)
}

func ParseKML(data []byte) ([]Point, error) {
	type kmlCoords struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPolygon struct {
		Outer kmlCoords `xml:"outerBoundaryIs>LinearRing"`
	}
	type kmlPlacemark struct {
		Polygon    *kmlPolygon `xml:"Polygon"`
		LineString *kmlCoords  `xml:"LineString"`
	}
	type kmlDoc struct {
		Placemarks   []kmlPlacemark `xml:"Placemark"`
		DocPlacemark []kmlPlacemark `xml:"Document>Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "kml")
	}
	for _, pm := range append(doc.Placemarks, doc.DocPlacemark...) {
		var coords string
		switch {
		case pm.Polygon != nil:
			coords = pm.Polygon.Outer.Coordinates
		case pm.LineString != nil:
			coords = pm.LineString.Coordinates
		default:
			continue
		}
		var pts []Point
		// tuples are separated by whitespace
		for _, tuple := range strings.Fields(coords) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				return nil, errors.Errorf("kml: invalid tuple %q", tuple)
			}
			col, err := parseCoord(vals[0])
			if err != nil {
				return nil, errors.Wrap(err, "kml")
			}
			row, err := parseCoord(vals[1])
			if err != nil {
				return nil, errors.Wrap(err, "kml")
			}
			pts = append(pts, Point{Row: row, Col: col})
		}
		if len(pts) == 0 {
			return nil, errors.New("kml: empty coordinates")
		}
		return openRing(pts), nil
	}
	return nil, errors.New("kml: no loop found")
}
