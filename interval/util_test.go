// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"math"
	"testing"
	"time"

	"github.com/aclements/go-pointprob/frame"
)

func aeq(expect, got float64) bool {
	if math.IsNaN(expect) || math.IsNaN(got) {
		return math.IsNaN(expect) && math.IsNaN(got)
	}
	return math.Abs(expect-got) <= 1e-9*math.Max(1, math.Abs(expect))
}

func checkSlice(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
		return
	}
	for i := range want {
		if !aeq(want[i], got[i]) {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}

func checkColumns(t *testing.T, name string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s columns = %v, want %v", name, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s columns = %v, want %v", name, got, want)
			return
		}
	}
}

func newTable(t *testing.T, names []string, cols ...[]float64) *frame.Table {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	idx := make([]time.Time, len(cols[0]))
	for i := range idx {
		idx[i] = start.AddDate(0, 0, i)
	}
	tb, err := frame.New(idx, names, cols)
	if err != nil {
		t.Fatal(err)
	}
	return tb
}

func repeat(x float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x
	}
	return xs
}
