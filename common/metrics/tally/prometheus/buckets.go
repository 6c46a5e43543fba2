// Copyright (c) 2017-2020 Uber Technologies, Inc.
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

package prometheus

import (
	"time"

	"github.com/uber-go/tally/prometheus"
)

// tally reports timer histograms to prometheus in seconds
const secondsPerNanosecond = float64(time.Nanosecond) / float64(time.Second)

// DefaultHistogramBuckets covers client call latencies: single RPCs in the millisecond range up to
// retried calls that run for minutes. The bounds follow a 1-2-5 series from 1ms to 500s.
func DefaultHistogramBuckets() []prometheus.HistogramObjective {
	var buckets []prometheus.HistogramObjective
	for decade := time.Millisecond; decade <= 100*time.Second; decade *= 10 {
		for _, step := range []time.Duration{1, 2, 5} {
			buckets = append(buckets, prometheus.HistogramObjective{Upper: float64(step*decade) * secondsPerNanosecond})
		}
	}
	return buckets
}
