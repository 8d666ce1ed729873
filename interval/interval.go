// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interval turns point forecasts into prediction intervals
// using only the training history and the forecast itself.
//
// Two methods are provided. The variable percent-change method widens
// each forecast step by how far it departs from a naive extrapolation
// of the historical median growth rate, weighted by how unusual the
// step's percent change is in the historical distribution, and carries
// a decayed memory of earlier error so that intervals grow over the
// horizon. The historic quantile method applies one fixed,
// possibly asymmetric, width per series derived from the spread of the
// historical values.
package interval // import "github.com/aclements/go-pointprob/interval"

import (
	"errors"
	"fmt"
)

// A Method selects the interval estimator.
type Method string

const (
	// MethodVariablePctChange is the default method.
	MethodVariablePctChange Method = "variable_pct_change"
	MethodHistoricQuantile  Method = "historic_quantile"
)

// Methods lists the recognized methods.
var Methods = []Method{MethodVariablePctChange, MethodHistoricQuantile}

// ParseMethod returns the Method named s.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMethod, s)
}

var (
	// ErrInvalidArgument is wrapped by every argument error
	// returned by this package.
	ErrInvalidArgument = errors.New("interval: invalid argument")

	ErrInsufficientForecastLength = fmt.Errorf("%w: forecast must have more than one row", ErrInvalidArgument)
	ErrInvalidInterval            = fmt.Errorf("%w: prediction interval must be in (0, 1)", ErrInvalidArgument)
	ErrUnknownMethod              = fmt.Errorf("%w: unknown method", ErrInvalidArgument)
)

func checkInterval(predictionInterval float64) error {
	// Written this way so NaN fails.
	if !(predictionInterval > 0 && predictionInterval < 1) {
		return fmt.Errorf("%w, got %v", ErrInvalidInterval, predictionInterval)
	}
	return nil
}
