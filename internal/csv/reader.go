package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zbhavyai/ytaudio/internal/model"
)

// Reader parses the input CSV into records.
type Reader struct {
	log *logrus.Logger
}

// NewReader creates a Reader that logs through the given logger.
func NewReader(log *logrus.Logger) *Reader {
	return &Reader{log: log}
}

// Read parses the CSV at path and returns the fixed header order together
// with one record per data row.
//
// The first line must be a header row containing at least the "ytLink"
// column; its absence is an error, never a record with a silently empty
// link. All other recognized columns are optional and default to the empty
// string, and the input file may arrange its columns in any order. Artist
// and composer cells are normalized through model.NormalizeNames.
func (r *Reader) Read(path string) ([]string, []model.Record, error) {
	r.log.Debugf("reading file %q", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // rows may omit trailing optional cells

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index["ytLink"]; !ok {
		return nil, nil, fmt.Errorf("csv %q: required column %q missing from header", path, "ytLink")
	}

	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []model.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row: %w", err)
		}

		rec := model.Record{
			Link:      cell(row, "ytLink"),
			Title:     cell(row, "title"),
			Artist:    model.NormalizeNames(cell(row, "artist")),
			Album:     cell(row, "album"),
			Composer:  model.NormalizeNames(cell(row, "composer")),
			Year:      cell(row, "year"),
			Genre:     cell(row, "genre"),
			StartTime: cell(row, "start_time"),
			EndTime:   cell(row, "end_time"),
		}
		r.log.Debugf("read row: %v", rec.Row())
		records = append(records, rec)
	}

	return model.Headers(), records, nil
}
