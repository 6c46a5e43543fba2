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

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"

	"github.com/uber/cadence-external-client/common/log/loggerimpl"
)

func writeFile(dir, name, content string) error {
	return os.WriteFile(path(dir, name), []byte(content), fileMode)
}

func TestMetricsNoReporter(t *testing.T) {
	var nilMetrics *Metrics
	assert.Equal(t, tally.NoopScope, nilMetrics.NewScope(loggerimpl.NewNopLogger(), "client"))

	cfg := &Metrics{}
	assert.Equal(t, tally.NoopScope, cfg.NewScope(loggerimpl.NewNopLogger(), "client"))
}

func TestMetricsStatsd(t *testing.T) {
	cfg := &Metrics{
		Statsd: &Statsd{
			HostPort:      "127.0.0.1:8125",
			Prefix:        "cadence",
			FlushInterval: 100 * time.Millisecond,
			FlushBytes:    512,
		},
		Tags: map[string]string{"team": "workflows"},
	}

	scope := cfg.NewScope(loggerimpl.NewNopLogger(), "client")
	assert.NotEqual(t, tally.NoopScope, scope)
	scope.Counter("requests").Inc(1)

	options := cfg.Statsd.options()
	assert.Equal(t, "100ms", options["flushInterval"])
	assert.Equal(t, "512", options["flushBytes"])
}

func TestMetricsTagsWithService(t *testing.T) {
	cfg := &Metrics{Tags: map[string]string{"team": "workflows"}}
	tags := cfg.tagsWithService("cadence-external-client")
	assert.Equal(t, map[string]string{"team": "workflows", "service": "cadence-external-client"}, tags)
	assert.Len(t, cfg.Tags, 1, "configured tags must not be modified")
	assert.Equal(t, defaultReportingInterval, cfg.reportingInterval())
}
