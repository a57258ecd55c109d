package geom

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadCSV reads loop vertices from a CSV file.
// Column detection: col|column|x and row|y (case-insensitive). Without a
// recognisable header every record is read as "col,row".
func LoadCSV(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "csv")
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idxCol, idxRow := 0, 1
	body := recs
	if hc, hr, ok := csvHeader(recs[0]); ok {
		idxCol, idxRow = hc, hr
		body = recs[1:]
	}
	var loop []Point
	for i, rec := range body {
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if idxCol >= len(rec) || idxRow >= len(rec) {
			return nil, errors.Errorf("csv: record %d: missing columns", i+1)
		}
		col, err := parseCoord(rec[idxCol])
		if err != nil {
			return nil, errors.Wrapf(err, "csv: record %d", i+1)
		}
		row, err := parseCoord(rec[idxRow])
		if err != nil {
			return nil, errors.Wrapf(err, "csv: record %d", i+1)
		}
		loop = append(loop, Point{Row: row, Col: col})
	}
	if len(loop) == 0 {
		return nil, errors.New("csv: no valid points parsed")
	}
	return loop, nil
}

func csvHeader(header []string) (idxCol, idxRow int, ok bool) {
	idxCol, idxRow = -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "col", "column", "x":
			if idxCol == -1 {
				idxCol = i
			}
		case "row", "y":
			if idxRow == -1 {
				idxRow = i
			}
		}
	}
	return idxCol, idxRow, idxCol != -1 && idxRow != -1
}
