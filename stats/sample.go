// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly missing data points. Missing
// points are represented as NaN and are ignored by every statistic.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order and
	// contains no NaN values.
	Sorted bool
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts the samples in place in s and returns s. NaN values are
// removed first.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted {
		return s
	}
	if floats.HasNaN(s.Xs) {
		s.Xs = DropNaN(s.Xs)
	}
	if !sort.Float64sAreSorted(s.Xs) {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// sorted returns the non-NaN values of s in ascending order, copying
// only when s is not already sorted.
func (s Sample) sorted() []float64 {
	if s.Sorted {
		return s.Xs
	}
	return s.Copy().Sort().Xs
}

// Quantile returns the sample value X at which q*weight of the sample
// is <= X. The input q should be in the range [0, 1]; values outside
// this range are clamped.
//
// Quantile linearly interpolates between the two closest order
// statistics, so the q'th quantile of n values sits at fractional
// position q*(n-1). This matches numpy's default "linear" method.
// Quantile returns NaN if s has no non-NaN values.
func (s Sample) Quantile(q float64) float64 {
	return quantileSorted(s.sorted(), q)
}

// Quantiles is like Quantile, but computes several quantiles while
// sorting s only once.
func (s Sample) Quantiles(qs ...float64) []float64 {
	xs := s.sorted()
	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = quantileSorted(xs, q)
	}
	return out
}

func quantileSorted(xs []float64, q float64) float64 {
	n := len(xs)
	switch {
	case n == 0 || math.IsNaN(q):
		return nan
	case q <= 0:
		return xs[0]
	case q >= 1:
		return xs[n-1]
	}
	pos := q * float64(n-1)
	lo := math.Floor(pos)
	i := int(lo)
	if i+1 >= n {
		return xs[n-1]
	}
	a, b := xs[i], xs[i+1]
	if a == b {
		return a
	}
	return a + (pos-lo)*(b-a)
}

// Median returns the 0.5 quantile of s. For an even number of values
// this is the mean of the two middle values.
func (s Sample) Median() float64 {
	return s.Quantile(0.5)
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample has no non-NaN values, Bounds returns NaN, NaN.
func (s Sample) Bounds() (lo float64, hi float64) {
	xs := s.Xs
	if !s.Sorted {
		xs = DropNaN(xs)
	}
	if len(xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return xs[0], xs[len(xs)-1]
	}
	return floats.Min(xs), floats.Max(xs)
}

// Mean returns the arithmetic mean of the non-NaN values of s.
func (s Sample) Mean() float64 {
	xs := DropNaN(s.Xs)
	if len(xs) == 0 {
		return nan
	}
	return stat.Mean(xs, nil)
}

// StdDev returns the sample standard deviation of the non-NaN values
// of s.
func (s Sample) StdDev() float64 {
	xs := DropNaN(s.Xs)
	if len(xs) < 2 {
		return nan
	}
	return stat.StdDev(xs, nil)
}

// Count returns the number of non-NaN values in s.
func (s Sample) Count() int {
	if s.Sorted {
		return len(s.Xs)
	}
	n := 0
	for _, x := range s.Xs {
		if !math.IsNaN(x) {
			n++
		}
	}
	return n
}

// DropNaN returns a new slice holding the values of xs that are not
// NaN, in their original order.
func DropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}
