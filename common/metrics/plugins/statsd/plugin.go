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

// Package statsd registers the "statsd" metric reporter plugin.
package statsd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cactus/go-statsd-client/statsd"
	"github.com/uber-go/tally"
	tallystatsdreporter "github.com/uber-go/tally/statsd"

	"github.com/uber/cadence-external-client/common/metrics/plugins"
)

const (
	// PluginName is the name of the plugin
	PluginName = "statsd"

	// HostPortKey is the required option naming the statsd endpoint
	HostPortKey = "hostPort"
	// PrefixKey is the statsd client prefix
	PrefixKey = "prefix"
	// FlushIntervalKey is the maximum interval between flushes, as a duration string
	FlushIntervalKey = "flushInterval"
	// FlushBytesKey is the size of the buffer flushed once full
	FlushBytesKey = "flushBytes"

	defaultFlushInterval = 300 * time.Millisecond
	defaultFlushBytes    = 1432
	reportInterval       = time.Second
)

type plugin struct{}

var _ plugins.MetricReporterPlugin = (*plugin)(nil)

func init() {
	plugins.RegisterPlugin(PluginName, &plugin{})
}

func (p *plugin) NewTallyScope(
	configKVs map[string]string,
	tags map[string]string,
	metricPrefix string,
) (tally.Scope, error) {
	hostPort := configKVs[HostPortKey]
	if hostPort == "" {
		return nil, fmt.Errorf("%v is missing", HostPortKey)
	}

	flushInterval := defaultFlushInterval
	if raw, ok := configKVs[FlushIntervalKey]; ok {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %v: %w", FlushIntervalKey, err)
		}
		flushInterval = parsed
	}
	flushBytes := defaultFlushBytes
	if raw, ok := configKVs[FlushBytesKey]; ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %v: %w", FlushBytesKey, err)
		}
		flushBytes = parsed
	}

	statter, err := statsd.NewBufferedClient(hostPort, configKVs[PrefixKey], flushInterval, flushBytes)
	if err != nil {
		return tally.NoopScope, fmt.Errorf("error creating statsd client %v", err)
	}

	// the tally statsd reporter drops tags, they end up in the metric name only through the prefix
	reporter := tallystatsdreporter.NewReporter(statter, tallystatsdreporter.Options{})
	scope, _ := tally.NewRootScope(tally.ScopeOptions{
		Tags:     tags,
		Reporter: reporter,
		Prefix:   metricPrefix,
	}, reportInterval)
	return scope, nil
}
