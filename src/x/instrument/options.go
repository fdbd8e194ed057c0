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

// Package instrument bundles the observability dependencies handed to
// components at construction time.
package instrument

import (
	"time"

	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

const (
	defaultReportInterval = 10 * time.Second
)

// Options represents the options for instrumentation.
type Options interface {
	// SetLogger sets the zap logger.
	SetLogger(value *zap.Logger) Options

	// Logger returns the zap logger.
	Logger() *zap.Logger

	// SetMetricsScope sets the metrics scope.
	SetMetricsScope(value tally.Scope) Options

	// MetricsScope returns the metrics scope.
	MetricsScope() tally.Scope

	// SetReportInterval sets the time between reporting metrics within the system.
	SetReportInterval(value time.Duration) Options

	// ReportInterval returns the time between reporting metrics within the system.
	ReportInterval() time.Duration
}

type options struct {
	logger         *zap.Logger
	scope          tally.Scope
	reportInterval time.Duration
}

// NewOptions creates new instrument options.
func NewOptions() Options {
	return &options{
		logger:         zap.NewNop(),
		scope:          tally.NoopScope,
		reportInterval: defaultReportInterval,
	}
}

func (o *options) SetLogger(value *zap.Logger) Options {
	opts := *o
	opts.logger = value
	return &opts
}

func (o *options) Logger() *zap.Logger {
	return o.logger
}

func (o *options) SetMetricsScope(value tally.Scope) Options {
	opts := *o
	opts.scope = value
	return &opts
}

func (o *options) MetricsScope() tally.Scope {
	return o.scope
}

func (o *options) SetReportInterval(value time.Duration) Options {
	opts := *o
	opts.reportInterval = value
	return &opts
}

func (o *options) ReportInterval() time.Duration {
	return o.reportInterval
}
