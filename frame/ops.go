// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

var nan = math.NaN()

// ReplaceZero returns a copy of xs with exact zeros replaced by NaN.
func ReplaceZero(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if x == 0 {
			out[i] = nan
		} else {
			out[i] = x
		}
	}
	return out
}

// FillNaN returns a copy of xs with NaN values replaced by v.
func FillNaN(xs []float64, v float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if math.IsNaN(x) {
			out[i] = v
		} else {
			out[i] = x
		}
	}
	return out
}

// FillForward returns a copy of xs in which each NaN takes the most
// recent preceding non-NaN value. Leading NaNs are kept.
func FillForward(xs []float64) []float64 {
	out := make([]float64, len(xs))
	last := nan
	for i, x := range xs {
		if !math.IsNaN(x) {
			last = x
		}
		out[i] = last
	}
	return out
}

// FillBackward returns a copy of xs in which each NaN takes the next
// non-NaN value. Trailing NaNs are kept.
func FillBackward(xs []float64) []float64 {
	out := make([]float64, len(xs))
	next := nan
	for i := len(xs) - 1; i >= 0; i-- {
		if !math.IsNaN(xs[i]) {
			next = xs[i]
		}
		out[i] = next
	}
	return out
}

// Shift returns a copy of xs moved n positions later (or earlier, for
// negative n). Vacated positions are NaN.
func Shift(xs []float64, n int) []float64 {
	out := make([]float64, len(xs))
	for i := range out {
		j := i - n
		if j < 0 || j >= len(xs) {
			out[i] = nan
		} else {
			out[i] = xs[j]
		}
	}
	return out
}

// PctChange returns the relative change between consecutive values
// of xs, xs[i]/xs[i-1] - 1. Interior gaps are forward filled first,
// so a gap contributes a zero change. The first value, and any value
// with no preceding observation, is NaN.
func PctChange(xs []float64) []float64 {
	padded := FillForward(xs)
	out := make([]float64, len(xs))
	for i := range out {
		if i == 0 {
			out[i] = nan
			continue
		}
		out[i] = padded[i]/padded[i-1] - 1
	}
	return out
}

// CumSum returns the running sum of xs, skipping NaN values. Positions
// where xs is NaN are NaN in the result but do not interrupt the sum.
func CumSum(xs []float64) []float64 {
	out := FillNaN(xs, 0)
	floats.CumSum(out, out)
	for i, x := range xs {
		if math.IsNaN(x) {
			out[i] = nan
		}
	}
	return out
}

// AllNaN reports whether xs has no non-NaN values.
func AllNaN(xs []float64) bool {
	for _, x := range xs {
		if !math.IsNaN(x) {
			return false
		}
	}
	return true
}
