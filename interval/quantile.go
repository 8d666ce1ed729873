// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"github.com/aclements/go-pointprob/frame"
	"github.com/aclements/go-pointprob/stats"
)

// HistoricQuantile returns, for each column of train, the distance
// from the median down to the 1-predictionInterval quantile (lower)
// and up to the predictionInterval quantile (upper). NaN values are
// ignored.
//
// A width that comes out exactly zero, which happens when the
// quantile coincides with the median, is replaced by a quarter of
// the distance from the median to the minimum (lower) or maximum
// (upper). A column with no values gets NaN widths.
func HistoricQuantile(train *frame.Table, predictionInterval float64) (lower, upper []float64, err error) {
	if err := checkInterval(predictionInterval); err != nil {
		return nil, nil, err
	}
	lower = make([]float64, len(train.Values))
	upper = make([]float64, len(train.Values))
	for j, col := range train.Values {
		q := stats.Sample{Xs: col}.Quantiles(0, 1-predictionInterval, 0.5, predictionInterval, 1)
		bottom, lo, med, hi, top := q[0], q[1], q[2], q[3], q[4]

		upper[j] = hi - med
		if upper[j] == 0 {
			upper[j] = (top - med) / 4
		}
		lower[j] = med - lo
		if lower[j] == 0 {
			lower[j] = (med - bottom) / 4
		}
	}
	return lower, upper, nil
}
