// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
)

// PercentileKind selects how PercentileOfScore treats values in the
// reference distribution that are equal to the score.
type PercentileKind int

const (
	// KindRank averages the percentage ranks of all tied values.
	// With no ties this is the percentage of values strictly below
	// the score; with ties it adds one extra rank position.
	KindRank PercentileKind = iota

	// KindWeak is the percentage of values <= score, which is the
	// empirical CDF at score.
	KindWeak

	// KindStrict is the percentage of values < score.
	KindStrict

	// KindMean is the average of KindWeak and KindStrict.
	KindMean
)

func (k PercentileKind) String() string {
	switch k {
	case KindRank:
		return "rank"
	case KindWeak:
		return "weak"
	case KindStrict:
		return "strict"
	case KindMean:
		return "mean"
	}
	return fmt.Sprintf("PercentileKind(%d)", int(k))
}

// PercentileOfScore returns the percentile rank, in [0, 100], of x
// relative to the non-NaN values of s. x need not be a member of s.
//
// If x is below every value of s the result is 0, and if x is above
// every value the result is 100. PercentileOfScore returns NaN if x
// is NaN or s has no non-NaN values.
//
// Sort s once before scoring many values against it.
//
// KindRank and KindMean differ only when x ties a value of s.
func (s Sample) PercentileOfScore(x float64, kind PercentileKind) float64 {
	xs := s.sorted()
	n := len(xs)
	if n == 0 || math.IsNaN(x) {
		return nan
	}

	// below is the count of values < x, atOrBelow of values <= x.
	below := sort.SearchFloat64s(xs, x)
	atOrBelow := below + sort.Search(n-below, func(i int) bool {
		return xs[below+i] > x
	})

	scale := 100 / float64(n)
	switch kind {
	case KindWeak:
		return float64(atOrBelow) * scale
	case KindStrict:
		return float64(below) * scale
	case KindMean:
		return float64(below+atOrBelow) * scale / 2
	}
	ties := 0
	if atOrBelow > below {
		ties = 1
	}
	return float64(below+atOrBelow+ties) * scale / 2
}

// PercentileOfScore returns the KindRank percentile rank of x within
// the non-NaN values of a. This equals the KindMean midpoint of the
// strictly-below and at-or-below counts unless x ties a value of a.
func PercentileOfScore(a []float64, x float64) float64 {
	return Sample{Xs: a}.PercentileOfScore(x, KindRank)
}
