// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aclements/go-pointprob/frame"
	"github.com/aclements/go-pointprob/stats"
)

// VariablePctChange returns the full width of the error range for
// every point of forecast, using default options. See
// Estimator.VariablePctChange.
func VariablePctChange(train, forecast *frame.Table, alpha, beta float64) (*frame.Table, error) {
	var e Estimator
	return e.VariablePctChange(train, forecast, alpha, beta)
}

// VariablePctChange returns the full width of the error range for
// every point of forecast. For step i of a series,
//
//	D[i]     = |forecast[i] - forecast[i-1]*(1+m)|
//	E[i]     = |0.5 - QTP[i]/100| * D[i]
//	width[i] = beta * (E[i] + alpha*(E[0] + ... + E[i-1]))
//
// where m is the median percent change of the training series and
// QTP[i] is the percentile rank of the forecast's own percent change
// at step i within the training percent changes. Exact zeros are
// treated as missing before percent changes are taken. Widths at the
// edges that cannot be computed are filled from their neighbors.
//
// alpha controls how quickly the range broadens over the horizon and
// beta scales its overall size; both are usually in (0, 1].
//
// The growth rate m is used as is. A training series whose percent
// changes are dominated by sign flips or near-zero denominators gives
// a meaningless extrapolation, and a series with no two consecutive
// observations gives NaN widths; screening such series is up to the
// caller. An all-NaN result column is reported through the Logger.
//
// forecast must have more than one row.
func (e *Estimator) VariablePctChange(train, forecast *frame.Table, alpha, beta float64) (*frame.Table, error) {
	if err := checkForecastLength(forecast); err != nil {
		return nil, err
	}
	train, forecast, err := e.reconcile(train, forecast)
	if err != nil {
		return nil, err
	}
	train = e.filler().Fill(train.Map(frame.ReplaceZero))

	out := make([][]float64, len(forecast.Columns))
	work := func(j int) {
		out[j] = variableWidth(train.Values[j], forecast.Values[j], alpha, beta)
	}
	if e.Parallelism > 0 {
		var g errgroup.Group
		g.SetLimit(e.Parallelism)
		for j := range out {
			j := j
			g.Go(func() error {
				work(j)
				return nil
			})
		}
		g.Wait()
	} else {
		for j := range out {
			work(j)
		}
	}

	for j, col := range out {
		if frame.AllNaN(col) {
			e.logger().Warn("error range undefined for series", zap.String("series", forecast.Columns[j]))
		}
	}
	return frame.New(forecast.Index, forecast.Columns, out)
}

// variableWidth computes the error range of one forecast series
// against its sanitized and gap-filled training series.
func variableWidth(train, forecast []float64, alpha, beta float64) []float64 {
	dist := stats.Sample{Xs: frame.PctChange(train)}
	dist.Sort()
	growth := 1 + dist.Median()

	// Deviation from the previous step extrapolated at the median
	// growth rate.
	naive := make([]float64, len(forecast))
	for i, x := range forecast {
		naive[i] = x * growth
	}
	naive = frame.Shift(frame.FillForward(naive), 1)
	dev := make([]float64, len(forecast))
	for i, x := range forecast {
		dev[i] = math.Abs(x - naive[i])
	}

	changes := frame.PctChange(frame.ReplaceZero(forecast))
	surprise := make([]float64, len(forecast))
	for i, c := range changes {
		qtp := dist.PercentileOfScore(c, stats.KindRank)
		surprise[i] = math.Abs((50-qtp)/100) * dev[i]
	}

	carry := frame.FillNaN(frame.Shift(frame.CumSum(surprise), 1), 0)
	width := make([]float64, len(forecast))
	for i := range width {
		width[i] = beta * (surprise[i] + alpha*carry[i])
	}
	return frame.FillForward(frame.FillBackward(width))
}
