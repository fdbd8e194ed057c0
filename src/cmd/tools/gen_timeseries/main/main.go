// Copyright (c) 2022 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// gen_timeseries prints evenly spaced epoch sequences, either from
// command line boundaries or from a YAML spec file describing several
// series at once.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pborman/getopt"
	"go.uber.org/zap"

	"github.com/hartmut/hifitime/src/cmd/tools/gen_timeseries/main/config"
	"github.com/hartmut/hifitime/src/series"
	"github.com/hartmut/hifitime/src/series/emit"
	"github.com/hartmut/hifitime/src/x/instrument"
	xtime "github.com/hartmut/hifitime/src/x/time"
)

func main() {
	var (
		optStart    = getopt.StringLong("start", 's', "", "Start epoch [RFC3339Nano, e.g. 2017-01-14T00:00:00Z]")
		optEnd      = getopt.StringLong("end", 'e', "", "End epoch [RFC3339Nano]")
		optStep     = getopt.StringLong("step", 't', "", "Step duration [e.g. 2h, 500us]")
		optIncl     = getopt.BoolLong("inclusive", 'i', "Include the end epoch itself if reachable")
		optFormat   = getopt.StringLong("format", 'f', time.RFC3339Nano, "Output layout for each epoch")
		optSpecFile = getopt.StringLong("spec-file", 'c', "", "YAML file describing multiple series (optional)")
	)
	getopt.Parse()

	rawLogger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to create logger: %+v\n", err)
		os.Exit(1)
	}
	log := rawLogger.Sugar()

	var specs []config.SeriesSpec
	switch {
	case *optSpecFile != "":
		cfg, err := config.LoadFile(*optSpecFile)
		if err != nil {
			log.Fatalf("unable to load spec file: %v", err)
		}
		specs = cfg.Series
	case *optStart != "" && *optEnd != "" && *optStep != "":
		specs = []config.SeriesSpec{{
			Start:     *optStart,
			End:       *optEnd,
			Step:      *optStep,
			Inclusive: *optIncl,
			Format:    *optFormat,
		}}
	default:
		getopt.Usage()
		os.Exit(1)
	}

	iOpts := instrument.NewOptions().SetLogger(rawLogger)
	emitter := emit.NewEmitter(emit.NewOptions().SetInstrumentOptions(iOpts))

	for _, spec := range specs {
		iter, err := newSeries(spec)
		if err != nil {
			log.Fatalf("invalid series spec: %v", err)
		}

		layout := spec.Format
		if layout == "" {
			layout = *optFormat
		}

		log.Infof("generating %s (%d epochs)", iter, iter.Len())
		if _, err := emitter.Emit(iter, emit.NewTextWriter(os.Stdout, layout)); err != nil {
			log.Fatalf("emit failed: %v", err)
		}
	}
}

func newSeries(spec config.SeriesSpec) (*series.TimeSeries, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	start, err := time.Parse(time.RFC3339Nano, spec.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start: %v", err)
	}
	step, err := time.ParseDuration(spec.Step)
	if err != nil {
		return nil, fmt.Errorf("invalid step: %v", err)
	}

	if spec.Duration != "" {
		duration, err := time.ParseDuration(spec.Duration)
		if err != nil {
			return nil, fmt.Errorf("invalid duration: %v", err)
		}
		return series.FromBounds(series.Bounds{
			Start:    xtime.ToUnixNano(start),
			Duration: duration,
			StepSize: step,
		})
	}

	end, err := time.Parse(time.RFC3339Nano, spec.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end: %v", err)
	}
	if spec.Inclusive {
		return series.NewInclusive(xtime.ToUnixNano(start), xtime.ToUnixNano(end), step)
	}
	return series.NewExclusive(xtime.ToUnixNano(start), xtime.ToUnixNano(end), step)
}
