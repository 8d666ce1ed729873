// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats provides the empirical distribution routines used to turn
// point forecasts into prediction intervals: NaN-ignoring quantiles
// and percentile-of-score ranking.
package stats // import "github.com/aclements/go-pointprob/stats"

import "math"

var nan = math.NaN()
