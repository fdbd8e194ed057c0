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

package config

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpecFile(t *testing.T, contents string) string {
	f, err := ioutil.TempFile("", "gen-timeseries-spec")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(f.Name()) })

	_, err = f.WriteString(contents)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestLoadFile(t *testing.T) {
	path := writeSpecFile(t, `
series:
  - start: 2017-01-14T00:00:00Z
    end: 2017-01-14T12:00:00Z
    step: 2h
    inclusive: true
  - start: 2022-07-14T02:56:11.228271007Z
    end: 2022-07-14T02:56:11.728271007Z
    step: 500ns
    format: "15:04:05.999999999"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cfg.Series, 2)

	first := cfg.Series[0]
	assert.Equal(t, "2017-01-14T00:00:00Z", first.Start)
	assert.Equal(t, "2h", first.Step)
	assert.True(t, first.Inclusive)

	second := cfg.Series[1]
	assert.False(t, second.Inclusive)
	assert.Equal(t, "15:04:05.999999999", second.Format)
}

func TestLoadFileMissingStep(t *testing.T) {
	path := writeSpecFile(t, `
series:
  - start: 2017-01-14T00:00:00Z
    end: 2017-01-14T12:00:00Z
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid spec file")
}

// Field constraints hold inside every slice element, not just on the top
// level structure.
func TestLoadFileValidatesEachSeries(t *testing.T) {
	path := writeSpecFile(t, `
series:
  - start: 2017-01-14T00:00:00Z
    end: 2017-01-14T12:00:00Z
    step: 2h
  - start: 2017-01-15T00:00:00Z
    end: 2017-01-15T12:00:00Z
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "series 1")
}

func TestLoadFileDurationForm(t *testing.T) {
	path := writeSpecFile(t, `
series:
  - start: 2017-01-14T00:00:00Z
    duration: 12h
    step: 2h
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cfg.Series, 1)
	assert.Equal(t, "12h", cfg.Series[0].Duration)
	assert.Empty(t, cfg.Series[0].End)
}

func TestSeriesSpecValidate(t *testing.T) {
	valid := SeriesSpec{Start: "2017-01-14T00:00:00Z", End: "2017-01-14T12:00:00Z", Step: "2h"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		spec SeriesSpec
	}{
		{"missing step", SeriesSpec{Start: "2017-01-14T00:00:00Z", End: "2017-01-14T12:00:00Z"}},
		{"missing start", SeriesSpec{End: "2017-01-14T12:00:00Z", Step: "2h"}},
		{"neither end nor duration", SeriesSpec{Start: "2017-01-14T00:00:00Z", Step: "2h"}},
		{"both end and duration", SeriesSpec{
			Start: "2017-01-14T00:00:00Z", End: "2017-01-14T12:00:00Z", Duration: "12h", Step: "2h",
		}},
		{"inclusive with duration", SeriesSpec{
			Start: "2017-01-14T00:00:00Z", Duration: "12h", Step: "2h", Inclusive: true,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.spec.Validate())
		})
	}
}

func TestLoadFileEmptySeries(t *testing.T) {
	path := writeSpecFile(t, "series: []\n")

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFileUnknownField(t *testing.T) {
	path := writeSpecFile(t, `
series:
  - start: 2017-01-14T00:00:00Z
    end: 2017-01-14T12:00:00Z
    step: 2h
    cadence: fast
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/spec.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read")
}
