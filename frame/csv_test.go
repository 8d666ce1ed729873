// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	const in = `date,a,b
2024-01-01,1,NaN
2024-01-02,,2.5
2024-01-03,3,-4
`
	tb, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if tb.Len() != 3 || len(tb.Columns) != 2 || tb.Columns[1] != "b" {
		t.Fatalf("ReadCSV shape = %d rows, columns %v", tb.Len(), tb.Columns)
	}
	if !eq(tb.Values[0], seq(1, nan, 3)) || !eq(tb.Values[1], seq(nan, 2.5, -4)) {
		t.Errorf("ReadCSV values = %v", tb.Values)
	}
	if !tb.Index[2].Equal(days(3)[2]) {
		t.Errorf("Index[2] = %v", tb.Index[2])
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tb); err != nil {
		t.Fatal(err)
	}
	const want = `date,a,b
2024-01-01,1,
2024-01-02,,2.5
2024-01-03,3,-4
`
	if buf.String() != want {
		t.Errorf("WriteCSV =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestReadCSVErrors(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, ErrShape) {
		t.Errorf("empty input: got %v, want ErrShape", err)
	}
	if _, err := ReadCSV(strings.NewReader("date,a\nyesterday,1\n")); err == nil {
		t.Errorf("bad time parsed")
	}
	if _, err := ReadCSV(strings.NewReader("date,a\n2024-01-01,x\n")); err == nil {
		t.Errorf("bad value parsed")
	}
}

func TestReadCSVTimestamps(t *testing.T) {
	tb, err := ReadCSV(strings.NewReader("ts,a\n2024-01-01 06:30:00,1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if tb.Index[0].Hour() != 6 || math.IsNaN(tb.Values[0][0]) {
		t.Errorf("ReadCSV = %v %v", tb.Index, tb.Values)
	}
	var buf bytes.Buffer
	WriteCSV(&buf, tb)
	if want := "date,a\n2024-01-01T06:30:00Z,1\n"; buf.String() != want {
		t.Errorf("WriteCSV = %q, want %q", buf.String(), want)
	}
}
