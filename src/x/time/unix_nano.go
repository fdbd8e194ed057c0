// Copyright (c) 2017 Uber Technologies, Inc.
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

// Package xtime holds the epoch primitive the series iterators are built on.
package xtime

import (
	"time"
)

// UnixNano is used to indicate that an int64 stores a unix timestamp at
// nanosecond resolution.
type UnixNano int64

// ToTime returns a time.Time from a UnixNano.
func (u UnixNano) ToTime() time.Time {
	return time.Unix(0, int64(u))
}

// ToUnixNano returns a UnixNano from a time.Time.
func ToUnixNano(t time.Time) UnixNano {
	return UnixNano(t.UnixNano())
}

// Now returns the current time as a UnixNano.
func Now() UnixNano {
	return ToUnixNano(time.Now())
}

// Truncate returns the result of rounding u down to a multiple of d.
func (u UnixNano) Truncate(d time.Duration) UnixNano {
	return (u / UnixNano(d)) * UnixNano(d)
}

// Sub returns the duration u-o.
func (u UnixNano) Sub(o UnixNano) time.Duration {
	return time.Duration(u - o)
}

// Add returns the time u+d.
func (u UnixNano) Add(d time.Duration) UnixNano {
	return u + UnixNano(d)
}

// Before reports whether the time instant u is before t.
func (u UnixNano) Before(t UnixNano) bool {
	return u < t
}

// After reports whether the time instant u is after t.
func (u UnixNano) After(t UnixNano) bool {
	return u > t
}

// Equal reports whether the time instant u is equal to t.
func (u UnixNano) Equal(t UnixNano) bool {
	return u == t
}

// IsZero reports whether the time instant u is 0.
func (u UnixNano) IsZero() bool {
	return u == 0
}

// String returns the time formatted using the format string
//	"2006-01-02 15:04:05.999999999 -0700 MST"
func (u UnixNano) String() string {
	return u.ToTime().String()
}

// Format returns the string representation for the time with the given
// format, in UTC.
func (u UnixNano) Format(format string) string {
	return u.ToTime().UTC().Format(format)
}

// Seconds returns the seconds for time u, as an int64.
func (u UnixNano) Seconds() int64 {
	return int64(u) / int64(time.Second)
}
