// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math"
	"testing"
)

func seq(xs ...float64) []float64 { return xs }

// eq compares slices treating NaNs as equal.
func eq(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.IsNaN(a[i]) && math.IsNaN(b[i]) {
			continue
		}
		if math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func TestOps(t *testing.T) {
	check := func(name string, got, want []float64) {
		t.Helper()
		if !eq(got, want) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	in := seq(nan, 1, nan, 3, nan)

	check("ReplaceZero", ReplaceZero(seq(0, 1, -0, 2)), seq(nan, 1, nan, 2))
	check("FillNaN", FillNaN(in, 0), seq(0, 1, 0, 3, 0))
	check("FillForward", FillForward(in), seq(nan, 1, 1, 3, 3))
	check("FillBackward", FillBackward(in), seq(1, 1, 3, 3, nan))
	check("Shift(1)", Shift(seq(1, 2, 3), 1), seq(nan, 1, 2))
	check("Shift(-1)", Shift(seq(1, 2, 3), -1), seq(2, 3, nan))
	check("Shift(5)", Shift(seq(1, 2, 3), 5), seq(nan, nan, nan))
	check("PctChange", PctChange(seq(1, 2, 3, 1.5)), seq(nan, 1, 0.5, -0.5))
	check("PctChange gaps", PctChange(seq(nan, 2, nan, 4)), seq(nan, nan, 0, 1))
	check("CumSum", CumSum(seq(nan, 1, 2, nan, 3)), seq(nan, 1, 3, nan, 6))
	check("CumSum empty", CumSum(nil), seq())

	if !AllNaN(seq(nan, nan)) || AllNaN(seq(nan, 0)) || !AllNaN(nil) {
		t.Errorf("AllNaN misreported")
	}
}

func TestPctChangeZeroDivision(t *testing.T) {
	got := PctChange(seq(0, 5))
	if !math.IsInf(got[1], 1) {
		t.Errorf("PctChange(0, 5)[1] = %v, want +Inf", got[1])
	}
}

func TestFillers(t *testing.T) {
	tb, _ := New(days(6), []string{"a", "b"}, [][]float64{
		{1, nan, 2, nan, 4, 8},
		{nan, 5, 6, nan, 7, nan},
	})

	c := CompactFill.Fill(tb)
	if want := seq(nan, nan, 1, 2, 4, 8); !eq(c.Values[0], want) {
		t.Errorf("CompactFill a = %v, want %v", c.Values[0], want)
	}
	if want := seq(nan, nan, nan, 5, 6, 7); !eq(c.Values[1], want) {
		t.Errorf("CompactFill b = %v, want %v", c.Values[1], want)
	}

	f := ForwardFill.Fill(tb)
	if want := seq(nan, 5, 6, 6, 7, 7); !eq(f.Values[1], want) {
		t.Errorf("ForwardFill b = %v, want %v", f.Values[1], want)
	}

	if !math.IsNaN(tb.Values[0][1]) {
		t.Errorf("Fill modified its argument")
	}
}
