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

// Package plugins holds the metric reporters that can be selected by name from the
// metrics.reporterPlugin section of the client config.
package plugins

import (
	"fmt"
	"sort"
	"sync"

	"github.com/uber-go/tally"
)

// MetricReporterPlugin builds a root scope from free-form reporter options
type MetricReporterPlugin interface {
	NewTallyScope(configKVs map[string]string, tags map[string]string, metricPrefix string) (tally.Scope, error)
}

var registry = struct {
	sync.RWMutex
	plugins map[string]MetricReporterPlugin
}{plugins: map[string]MetricReporterPlugin{}}

// RegisterPlugin makes a reporter available under name. It is meant to be called from init
// and panics when name is taken.
func RegisterPlugin(name string, plugin MetricReporterPlugin) {
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.plugins[name]; ok {
		panic(fmt.Sprintf("metric reporter plugin %q already registered", name))
	}
	registry.plugins[name] = plugin
}

// NewThirdPartyReporter builds a root scope through the plugin registered under name
func NewThirdPartyReporter(
	name string,
	configKVs map[string]string,
	tags map[string]string,
	metricPrefix string,
) (tally.Scope, error) {
	registry.RLock()
	plugin, ok := registry.plugins[name]
	registry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("not supported plugin %v, only supported: %v", name, Registered())
	}
	return plugin.NewTallyScope(configKVs, tags, metricPrefix)
}

// Registered lists the registered plugin names in order
func Registered() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.plugins))
	for name := range registry.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
