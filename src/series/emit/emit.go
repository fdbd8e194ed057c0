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

// Package emit drains a time series iterator into a sink.
package emit

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/uber-go/tally"
	"go.uber.org/zap"

	xtime "github.com/hartmut/hifitime/src/x/time"
)

// Iterator is the pull interface drained by an Emitter, satisfied by
// *series.TimeSeries.
type Iterator interface {
	// Next advances the iterator, returning false once exhausted.
	Next() bool

	// Current returns the epoch produced by the most recent successful
	// call to Next.
	Current() xtime.UnixNano
}

// Writer receives the epochs produced by an iterator.
type Writer interface {
	// Write consumes a single produced epoch.
	Write(epoch xtime.UnixNano) error
}

// NewTextWriter returns a Writer rendering one epoch per line onto w using
// the given time layout, or RFC3339Nano when the layout is empty.
func NewTextWriter(w io.Writer, layout string) Writer {
	return &textWriter{w: w, layout: layout}
}

type textWriter struct {
	w      io.Writer
	layout string
}

func (t *textWriter) Write(epoch xtime.UnixNano) error {
	layout := t.layout
	if layout == "" {
		layout = time.RFC3339Nano
	}
	_, err := fmt.Fprintln(t.w, epoch.Format(layout))
	return err
}

// Emitter drains iterators into writers, reporting progress through the
// configured instrumentation.
type Emitter interface {
	// Emit drains iter into w, returning the number of epochs emitted.
	// A writer error aborts the drain and is returned wrapped.
	Emit(iter Iterator, w Writer) (int, error)
}

// NewEmitter creates a new emitter from the given options.
func NewEmitter(opts Options) Emitter {
	iOpts := opts.InstrumentOptions()
	scope := iOpts.MetricsScope().SubScope("emit")
	return &emitter{
		opts:        opts,
		log:         iOpts.Logger(),
		emitted:     scope.Counter("emitted"),
		emitLatency: scope.Timer("emit-latency"),
	}
}

type emitter struct {
	opts        Options
	log         *zap.Logger
	emitted     tally.Counter
	emitLatency tally.Timer
}

func (e *emitter) Emit(iter Iterator, w Writer) (int, error) {
	sw := e.emitLatency.Start()
	defer sw.Stop()

	emitted := 0
	for iter.Next() {
		epoch := iter.Current()
		if err := w.Write(epoch); err != nil {
			return emitted, errors.Wrapf(err, "emit aborted at epoch %s", epoch)
		}
		e.emitted.Inc(1)
		emitted++
	}

	e.log.Debug("emit complete", zap.Int("emitted", emitted))
	return emitted, nil
}
