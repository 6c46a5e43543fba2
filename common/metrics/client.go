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

// ClientImpl is the tally backed Client
type ClientImpl struct {
	// one tally scope per operation, tagged with its ScopeDefs entry
	scopes map[int]tally.Scope
	defs   map[int]metricDefinition
}

var _ Client = (*ClientImpl)(nil)

// NewClient returns a Client reporting to root the scopes and metrics of serviceIdx
func NewClient(root tally.Scope, serviceIdx ServiceIdx) Client {
	defs := ScopeDefs[serviceIdx]
	c := &ClientImpl{
		scopes: make(map[int]tally.Scope, len(defs)),
		defs:   MetricDefs[serviceIdx],
	}
	for idx, def := range defs {
		tags := map[string]string{operation: def.operation}
		for k, v := range def.tags {
			tags[k] = v
		}
		c.scopes[idx] = root.Tagged(tags)
	}
	return c
}

// NewNoopClient returns a client that drops every metric
func NewNoopClient() Client {
	return NewClient(tally.NoopScope, ExternalClient)
}

func (c *ClientImpl) IncCounter(scopeIdx int, counterIdx int) {
	c.Scope(scopeIdx).IncCounter(counterIdx)
}

func (c *ClientImpl) StartTimer(scopeIdx int, timerIdx int) tally.Stopwatch {
	return c.Scope(scopeIdx).StartTimer(timerIdx)
}

func (c *ClientImpl) Scope(scopeIdx int, tags ...Tag) Scope {
	return (&metricsScope{scope: c.scopes[scopeIdx], defs: c.defs}).Tagged(tags...)
}
