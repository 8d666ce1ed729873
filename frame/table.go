// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame implements a small time-indexed columnar table and
// the per-column transforms used to build prediction intervals.
//
// Missing values are represented as NaN throughout.
package frame // import "github.com/aclements/go-pointprob/frame"

import (
	"errors"
	"fmt"
	"time"
)

// ErrShape is returned for tables whose index, column names, and
// values do not agree.
var ErrShape = errors.New("frame: malformed table")

// A Table is a set of named series sharing one time index.
//
// Values[j] holds the series named Columns[j] and has one entry per
// element of Index. Index is expected to be in ascending time order
// but need not be evenly spaced.
type Table struct {
	Index   []time.Time
	Columns []string
	Values  [][]float64
}

// New returns a Table over the given index, column names, and
// column-major values. The slices are not copied.
func New(index []time.Time, columns []string, values [][]float64) (*Table, error) {
	if len(columns) != len(values) {
		return nil, fmt.Errorf("%w: %d column names for %d columns", ErrShape, len(columns), len(values))
	}
	seen := make(map[string]bool, len(columns))
	for j, name := range columns {
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrShape, name)
		}
		seen[name] = true
		if len(values[j]) != len(index) {
			return nil, fmt.Errorf("%w: column %q has %d values for an index of %d", ErrShape, name, len(values[j]), len(index))
		}
	}
	return &Table{Index: index, Columns: columns, Values: values}, nil
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return len(t.Index)
}

func (t *Table) colIndex(name string) int {
	for j, c := range t.Columns {
		if c == name {
			return j
		}
	}
	return -1
}

// Column returns the values of the named column. The returned slice
// aliases t.
func (t *Table) Column(name string) ([]float64, bool) {
	j := t.colIndex(name)
	if j < 0 {
		return nil, false
	}
	return t.Values[j], true
}

// Select returns a copy of t restricted to names, in that order.
func (t *Table) Select(names []string) (*Table, error) {
	values := make([][]float64, len(names))
	for k, name := range names {
		j := t.colIndex(name)
		if j < 0 {
			return nil, fmt.Errorf("frame: no column %q", name)
		}
		values[k] = append([]float64(nil), t.Values[j]...)
	}
	return New(t.Index, append([]string(nil), names...), values)
}

// Clone returns a deep copy of t's values. The index is shared.
func (t *Table) Clone() *Table {
	values := make([][]float64, len(t.Values))
	for j, col := range t.Values {
		values[j] = append([]float64(nil), col...)
	}
	return &Table{Index: t.Index, Columns: append([]string(nil), t.Columns...), Values: values}
}

// Map returns a new Table with the same index and columns whose
// values are f applied to each column of t. f must return a slice of
// the same length as its argument and must not retain it.
func (t *Table) Map(f func(col []float64) []float64) *Table {
	values := make([][]float64, len(t.Values))
	for j, col := range t.Values {
		values[j] = f(col)
	}
	return &Table{Index: t.Index, Columns: t.Columns, Values: values}
}

// Intersect returns the column names present in both a and b, in the
// order they appear in a.
func Intersect(a, b *Table) []string {
	var names []string
	for _, name := range a.Columns {
		if b.colIndex(name) >= 0 {
			names = append(names, name)
		}
	}
	return names
}

// Missing returns the column names of t that are absent from names.
func Missing(t *Table, names []string) []string {
	keep := make(map[string]bool, len(names))
	for _, name := range names {
		keep[name] = true
	}
	var out []string
	for _, name := range t.Columns {
		if !keep[name] {
			out = append(out, name)
		}
	}
	return out
}
