// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are tried in order when parsing the index column.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

const dateLayout = "2006-01-02"

// ReadCSV reads a table whose first row is a header and whose first
// column is the time index. Empty cells and "NaN" (in any case) are
// read as missing.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrShape)
	} else if err != nil {
		return nil, err
	}
	if len(header) < 1 {
		return nil, fmt.Errorf("%w: missing index column", ErrShape)
	}
	cr.FieldsPerRecord = len(header)

	columns := header[1:]
	values := make([][]float64, len(columns))
	var index []time.Time
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		ts, err := parseTime(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		index = append(index, ts)
		for j, cell := range rec[1:] {
			v, err := parseValue(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, columns[j], err)
			}
			values[j] = append(values[j], v)
		}
	}
	for j := range values {
		if values[j] == nil {
			values[j] = []float64{}
		}
	}
	return New(index, columns, values)
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a time", s)
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return nan, nil
	}
	return strconv.ParseFloat(s, 64)
}

// WriteCSV writes t in the format read by ReadCSV. Missing values are
// written as empty cells. Index values at midnight UTC are written as
// plain dates.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"date"}, t.Columns...)); err != nil {
		return err
	}
	dateOnly := true
	for _, ts := range t.Index {
		if !ts.Equal(ts.UTC().Truncate(24 * time.Hour)) {
			dateOnly = false
			break
		}
	}
	rec := make([]string, len(t.Columns)+1)
	for i, ts := range t.Index {
		if dateOnly {
			rec[0] = ts.UTC().Format(dateLayout)
		} else {
			rec[0] = ts.Format(time.RFC3339Nano)
		}
		for j, col := range t.Values {
			if math.IsNaN(col[i]) {
				rec[j+1] = ""
			} else {
				rec[j+1] = strconv.FormatFloat(col[i], 'g', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
