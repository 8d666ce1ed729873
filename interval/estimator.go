// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/aclements/go-pointprob/frame"
)

// DefaultAlpha is the carry-over weight the variable method uses when
// Estimator.Alpha is zero.
const DefaultAlpha = 0.3

// Estimator represents options for estimating prediction intervals.
//
// The default (zero) value of Estimator is a reasonable default
// configuration: the variable percent-change method, compact gap
// filling, no logging, and a sequential per-series loop.
type Estimator struct {
	// Method selects the estimator. The empty Method means
	// MethodVariablePctChange.
	Method Method

	// Alpha weights the accumulated error of earlier steps in the
	// variable method. If this is zero, DefaultAlpha is used.
	Alpha float64

	// Filler imputes gaps in the training series before their
	// percent changes are taken. If nil, frame.CompactFill is used.
	Filler frame.Filler

	// Logger receives diagnostics such as series dropped during
	// column reconciliation. If nil, nothing is logged.
	Logger *zap.Logger

	// Parallelism bounds the number of series processed
	// concurrently by the variable method. If this is <= 0, series
	// are processed sequentially. The result does not depend on
	// this setting.
	Parallelism int
}

func (e *Estimator) method() Method {
	if e.Method == "" {
		return MethodVariablePctChange
	}
	return e.Method
}

func (e *Estimator) alpha() float64 {
	if e.Alpha == 0 {
		return DefaultAlpha
	}
	return e.Alpha
}

func (e *Estimator) filler() frame.Filler {
	if e.Filler == nil {
		return frame.CompactFill
	}
	return e.Filler
}

func (e *Estimator) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Interval returns the upper and lower bounds of the prediction
// interval at the given confidence for each series in forecast that
// also appears in train. predictionInterval must be in (0, 1).
//
// Series present in forecast but not in train are dropped with a
// warning; the returned tables hold only the common series, in the
// order they appear in train.
func (e *Estimator) Interval(train, forecast *frame.Table, predictionInterval float64) (upper, lower *frame.Table, err error) {
	if err := checkInterval(predictionInterval); err != nil {
		return nil, nil, err
	}
	switch m := e.method(); m {
	case MethodVariablePctChange:
		beta := math.Exp(predictionInterval * 10)
		ranges, err := e.VariablePctChange(train, forecast, e.alpha(), beta)
		if err != nil {
			return nil, nil, err
		}
		fc, err := forecast.Select(ranges.Columns)
		if err != nil {
			return nil, nil, err
		}
		upper, lower = fc.Clone(), fc
		for j, col := range ranges.Values {
			for i, width := range col {
				half := width / 2
				upper.Values[j][i] += half
				lower.Values[j][i] -= half
			}
		}
		return upper, lower, nil

	case MethodHistoricQuantile:
		if err := checkForecastLength(forecast); err != nil {
			return nil, nil, err
		}
		train, fc, err := e.reconcile(train, forecast)
		if err != nil {
			return nil, nil, err
		}
		lo, hi, err := HistoricQuantile(train, predictionInterval)
		if err != nil {
			return nil, nil, err
		}
		upper, lower = fc.Clone(), fc
		for j := range fc.Values {
			for i := range fc.Values[j] {
				upper.Values[j][i] += hi[j]
				lower.Values[j][i] -= lo[j]
			}
		}
		return upper, lower, nil

	default:
		return nil, nil, fmt.Errorf("%w %q", ErrUnknownMethod, m)
	}
}

// reconcile restricts train and forecast to their common columns.
// The results are copies.
func (e *Estimator) reconcile(train, forecast *frame.Table) (*frame.Table, *frame.Table, error) {
	common := frame.Intersect(train, forecast)
	if len(common) != len(forecast.Columns) {
		e.logger().Warn("forecast columns do not match train, some series may be lost",
			zap.Strings("dropped", frame.Missing(forecast, common)))
	}
	train, err := train.Select(common)
	if err != nil {
		return nil, nil, err
	}
	forecast, err = forecast.Select(common)
	if err != nil {
		return nil, nil, err
	}
	return train, forecast, nil
}

func checkForecastLength(forecast *frame.Table) error {
	if n := forecast.Len(); n <= 1 {
		return fmt.Errorf("%w, got %d", ErrInsufficientForecastLength, n)
	}
	return nil
}

// PointToProbability returns the upper and lower bounds of the
// prediction interval using the given method and otherwise default
// options. See Estimator.Interval.
func PointToProbability(train, forecast *frame.Table, predictionInterval float64, method Method) (upper, lower *frame.Table, err error) {
	e := Estimator{Method: method}
	return e.Interval(train, forecast, predictionInterval)
}
