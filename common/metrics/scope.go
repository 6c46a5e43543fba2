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

type metricsScope struct {
	scope tally.Scope
	defs  map[int]metricDefinition
}

func (m *metricsScope) name(id int) string {
	return m.defs[id].metricName.String()
}

func (m *metricsScope) IncCounter(id int) {
	m.scope.Counter(m.name(id)).Inc(1)
}

func (m *metricsScope) StartTimer(id int) tally.Stopwatch {
	return m.scope.Timer(m.name(id)).Start()
}

func (m *metricsScope) Tagged(tags ...Tag) Scope {
	if len(tags) == 0 {
		return m
	}
	tagMap := make(map[string]string, len(tags))
	for _, t := range tags {
		tagMap[t.Key()] = t.Value()
	}
	return &metricsScope{scope: m.scope.Tagged(tagMap), defs: m.defs}
}
