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

package metrics

import (
	"github.com/uber-go/tally"
)

type (
	// Client reports the metrics defined in MetricDefs under the scopes defined in ScopeDefs.
	// Scopes and metrics are referenced by their index constants.
	Client interface {
		IncCounter(scope int, counter int)
		// StartTimer records the elapsed time once the returned stopwatch is stopped
		StartTimer(scope int, timer int) tally.Stopwatch
		// Scope returns the metrics scope of one operation with extra tags, e.g. the domain
		Scope(scope int, tags ...Tag) Scope
	}

	// Scope reports metrics of a single operation
	Scope interface {
		IncCounter(counter int)
		StartTimer(timer int) tally.Stopwatch
		Tagged(tags ...Tag) Scope
	}
)
