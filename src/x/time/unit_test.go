// Copyright (c) 2016 Uber Technologies, Inc.
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

package xtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitValue(t *testing.T) {
	tests := []struct {
		u        Unit
		expected time.Duration
	}{
		{Second, time.Second},
		{Millisecond, time.Millisecond},
		{Microsecond, time.Microsecond},
		{Nanosecond, time.Nanosecond},
		{Minute, time.Minute},
		{Hour, time.Hour},
		{Day, 24 * time.Hour},
	}
	for _, tt := range tests {
		v, err := tt.u.Value()
		require.NoError(t, err)
		assert.Equal(t, tt.expected, v)
	}

	_, err := None.Value()
	assert.Equal(t, errUnrecognizedTimeUnit, err)
}

func TestUnitString(t *testing.T) {
	tests := []struct {
		u        Unit
		expected string
	}{
		{Second, "s"},
		{Millisecond, "ms"},
		{Microsecond, "us"},
		{Nanosecond, "ns"},
		{Minute, "min"},
		{Hour, "h"},
		{Day, "d"},
		{None, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.u.String(), "invalid string for %v", tt.u)
	}
}

func TestUnitIsValid(t *testing.T) {
	assert.True(t, Second.IsValid())
	assert.True(t, Day.IsValid())
	assert.False(t, None.IsValid())
	assert.False(t, Unit(255).IsValid())
}

func TestUnitFromDuration(t *testing.T) {
	u, err := UnitFromDuration(time.Minute)
	require.NoError(t, err)
	assert.Equal(t, Minute, u)

	_, err = UnitFromDuration(2 * time.Minute)
	assert.Equal(t, errConvertDurationToUnit, err)
}

func TestDurationFromUnit(t *testing.T) {
	d, err := DurationFromUnit(Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, d)

	_, err = DurationFromUnit(None)
	assert.Equal(t, errConvertUnitToDuration, err)
}

func TestMaxUnitForDuration(t *testing.T) {
	tests := []struct {
		d                time.Duration
		expectedMultiple int64
		expectedUnit     Unit
	}{
		{2 * time.Hour, 2, Hour},
		{90 * time.Minute, 90, Minute},
		{500 * time.Microsecond, 500, Microsecond},
		{48 * time.Hour, 2, Day},
		{time.Nanosecond, 1, Nanosecond},
		{-2 * time.Hour, -2, Hour},
	}
	for _, tt := range tests {
		multiple, unit, err := MaxUnitForDuration(tt.d)
		require.NoError(t, err)
		assert.Equal(t, tt.expectedMultiple, multiple, "invalid multiple for %v", tt.d)
		assert.Equal(t, tt.expectedUnit, unit, "invalid unit for %v", tt.d)
	}

	_, _, err := MaxUnitForDuration(0)
	assert.Equal(t, errMaxUnitForDuration, err)
}
