// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import "math"

// A Filler imputes missing values in a table. Implementations return
// a new Table of the same shape and must not modify their argument.
type Filler interface {
	Fill(t *Table) *Table
}

// FillerFunc adapts an ordinary function to the Filler interface.
type FillerFunc func(t *Table) *Table

// Fill returns f(t).
func (f FillerFunc) Fill(t *Table) *Table {
	return f(t)
}

// CompactFill closes interior gaps by packing each column's observed
// values, in order, against the most recent end of the index. The
// slots freed at the start stay NaN, so no value is invented at
// either edge.
//
// This treats each series as a sequence of observations rather than
// a calendar, which is what step-to-step change statistics want.
var CompactFill Filler = FillerFunc(func(t *Table) *Table {
	return t.Map(compact)
})

// ForwardFill closes interior gaps by carrying the last observation
// forward. Leading gaps stay NaN.
var ForwardFill Filler = FillerFunc(func(t *Table) *Table {
	return t.Map(FillForward)
})

func compact(xs []float64) []float64 {
	out := make([]float64, len(xs))
	k := len(xs)
	for i := len(xs) - 1; i >= 0; i-- {
		if !math.IsNaN(xs[i]) {
			k--
			out[k] = xs[i]
		}
	}
	for i := 0; i < k; i++ {
		out[i] = nan
	}
	return out
}
