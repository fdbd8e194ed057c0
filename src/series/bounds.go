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

package series

import (
	"fmt"
	"time"

	xtime "github.com/hartmut/hifitime/src/x/time"
)

// Bounds describes an index-addressable epoch grid: a start, a total
// duration and a fixed step size.
type Bounds struct {
	// Start is the start time of the bounds.
	Start xtime.UnixNano
	// Duration is the duration of the bounds.
	Duration time.Duration
	// StepSize is the fixed interval between grid points.
	StepSize time.Duration
}

// TimeForIndex returns the epoch at the given index in the grid.
func (b Bounds) TimeForIndex(idx int) (xtime.UnixNano, error) {
	if idx < 0 || idx >= b.Steps() {
		return 0, fmt.Errorf("index %d out of bounds, only %d steps", idx, b.Steps())
	}
	return b.Start.Add(time.Duration(idx) * b.StepSize), nil
}

// End returns the exclusive end of the bounds.
func (b Bounds) End() xtime.UnixNano {
	return b.Start.Add(b.Duration)
}

// Steps returns the number of whole steps the bounds hold.
func (b Bounds) Steps() int {
	if b.StepSize <= 0 {
		return 0
	}
	return int(b.Duration / b.StepSize)
}

// Contains returns whether the given epoch lies within the bounds.
func (b Bounds) Contains(t xtime.UnixNano) bool {
	return !t.Before(b.Start) && t.Before(b.End())
}

// Next returns the nth set of bounds after the current one.
func (b Bounds) Next(n int) Bounds {
	return b.nth(n, true)
}

// Previous returns the nth set of bounds before the current one.
func (b Bounds) Previous(n int) Bounds {
	return b.nth(n, false)
}

func (b Bounds) nth(n int, forward bool) Bounds {
	multiplier := time.Duration(n)
	if !forward {
		multiplier *= -1
	}
	blockDuration := multiplier * b.Duration
	return Bounds{
		Start:    b.Start.Add(blockDuration),
		Duration: b.Duration,
		StepSize: b.StepSize,
	}
}

// Equals returns whether the bounds are equal to the other bounds.
func (b Bounds) Equals(other Bounds) bool {
	return b.Start.Equal(other.Start) &&
		b.Duration == other.Duration &&
		b.StepSize == other.StepSize
}

// String representation of the bounds.
func (b Bounds) String() string {
	return fmt.Sprintf("Bounds{start=%v, duration=%v, stepSize=%v, steps=%d}",
		b.Start, b.Duration, b.StepSize, b.Steps())
}

// FromBounds returns the start-inclusive, end-exclusive series over the
// bounds grid. When Duration is an exact multiple of StepSize the series
// length equals b.Steps().
func FromBounds(b Bounds) (*TimeSeries, error) {
	return NewExclusive(b.Start, b.End(), b.StepSize)
}
