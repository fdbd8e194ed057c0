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

// Package config loads the YAML series spec files accepted by
// gen_timeseries.
package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	validator "gopkg.in/validator.v2"
	yaml "gopkg.in/yaml.v2"
)

// SeriesSpec describes a single evenly spaced series to generate. The
// range is bounded either by an end epoch or by a total duration, exactly
// one of the two must be set.
type SeriesSpec struct {
	// Start is the inclusive start epoch in RFC3339Nano form.
	Start string `yaml:"start" validate:"nonzero"`

	// End is the end epoch in RFC3339Nano form.
	End string `yaml:"end"`

	// Duration bounds the range as start+duration instead of an explicit
	// end epoch, in Go duration syntax. The series is always
	// end-exclusive in this form.
	Duration string `yaml:"duration"`

	// Step is the fixed advance in Go duration syntax, e.g. "2h".
	Step string `yaml:"step" validate:"nonzero"`

	// Inclusive selects start-and-end-inclusive boundary semantics. Only
	// valid with an explicit end epoch.
	Inclusive bool `yaml:"inclusive"`

	// Format overrides the output layout for this series.
	Format string `yaml:"format"`
}

// Validate checks the constraints that cannot be expressed as field tags.
func (s SeriesSpec) Validate() error {
	if err := validator.Validate(s); err != nil {
		return err
	}
	if (s.End == "") == (s.Duration == "") {
		return errors.New("exactly one of end and duration must be set")
	}
	if s.Inclusive && s.Duration != "" {
		return errors.New("inclusive requires an explicit end epoch")
	}
	return nil
}

// Configuration is the top level spec file structure.
type Configuration struct {
	// Series lists the series to generate, in order.
	Series []SeriesSpec `yaml:"series" validate:"min=1"`
}

// LoadFile reads and validates a spec file.
func LoadFile(path string) (*Configuration, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	var cfg Configuration
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", path)
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Wrapf(err, "invalid spec file %s", path)
	}
	// The validator does not descend into slice elements, each spec is
	// checked on its own.
	for i, s := range cfg.Series {
		if err := s.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid spec file %s: series %d", path, i)
		}
	}

	return &cfg, nil
}
