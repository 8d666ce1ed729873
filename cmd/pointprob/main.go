// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pointprob reads a training table and a point forecast table from
// CSV files and reports prediction intervals for each series.
//
// Both files must have a header row and a time index in the first
// column. With -o, the bounds are written to PREFIX_upper.csv and
// PREFIX_lower.csv; otherwise a per-series report is printed.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aclements/go-pointprob/frame"
	"github.com/aclements/go-pointprob/interval"
	"github.com/aclements/go-pointprob/stats"
)

type options struct {
	train, forecast string
	interval        float64
	method          string
	out             string
	parallel        int
	verbose         bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:          "pointprob",
		Short:        "Attach prediction intervals to a point forecast",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), &o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.train, "train", "", "training `CSV` file")
	f.StringVar(&o.forecast, "forecast", "", "point forecast `CSV` file")
	f.Float64Var(&o.interval, "interval", 0.9, "prediction interval in (0, 1)")
	f.StringVar(&o.method, "method", string(interval.MethodVariablePctChange), "variable_pct_change or historic_quantile")
	f.StringVarP(&o.out, "out", "o", "", "write bounds to `PREFIX`_upper.csv and PREFIX_lower.csv")
	f.IntVar(&o.parallel, "parallel", 0, "process up to `N` series concurrently")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "development logging")
	cmd.MarkFlagRequired("train")
	cmd.MarkFlagRequired("forecast")
	return cmd
}

func run(w io.Writer, o *options) error {
	log := newLogger(o.verbose)
	defer log.Sync()

	method, err := interval.ParseMethod(o.method)
	if err != nil {
		return err
	}
	train, err := readTable(o.train)
	if err != nil {
		return err
	}
	forecast, err := readTable(o.forecast)
	if err != nil {
		return err
	}
	log.Debug("loaded tables",
		zap.Int("trainRows", train.Len()), zap.Strings("trainSeries", train.Columns),
		zap.Int("forecastRows", forecast.Len()), zap.Strings("forecastSeries", forecast.Columns))

	e := interval.Estimator{Method: method, Logger: log, Parallelism: o.parallel}
	upper, lower, err := e.Interval(train, forecast, o.interval)
	if err != nil {
		log.Error("estimating interval", zap.Error(err))
		return err
	}

	if o.out != "" {
		if err := writeTable(o.out+"_upper.csv", upper); err != nil {
			return err
		}
		return writeTable(o.out+"_lower.csv", lower)
	}
	report(w, train, forecast, upper, lower)
	return nil
}

func report(w io.Writer, train, forecast, upper, lower *frame.Table) {
	for j, name := range upper.Columns {
		hist, _ := train.Column(name)
		point, _ := forecast.Column(name)
		s := stats.Sample{Xs: hist}
		fmt.Fprintf(w, "%s  N %d  mean %.6g  std dev %.6g  median %.6g\n", name, s.Count(), s.Mean(), s.StdDev(), s.Median())
		fmt.Fprintf(w, "%20s %12s %12s %12s\n", "time", "lower", "forecast", "upper")
		for i, ts := range upper.Index {
			fmt.Fprintf(w, "%20s %12.6g %12.6g %12.6g\n", ts.Format("2006-01-02 15:04"), lower.Values[j][i], point[i], upper.Values[j][i])
		}
		fmt.Fprintln(w)
	}
}

func readTable(path string) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := frame.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func writeTable(path string, t *frame.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := frame.WriteCSV(f, t); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
