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
	"strconv"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber-go/tally/prometheus"

	"github.com/uber/cadence-external-client/common/log"
	"github.com/uber/cadence-external-client/common/log/tag"
	"github.com/uber/cadence-external-client/common/metrics/plugins"
	"github.com/uber/cadence-external-client/common/metrics/plugins/statsd"
	prometheusbuckets "github.com/uber/cadence-external-client/common/metrics/tally/prometheus"
)

type (
	// Metrics contains the config items for metrics subsystem
	Metrics struct {
		// Statsd is the configuration for statsd reporter
		Statsd *Statsd `yaml:"statsd"`
		// Prometheus is the configuration for prometheus reporter
		Prometheus *prometheus.Configuration `yaml:"prometheus"`
		// ReporterPlugin is a reporter registered in the metrics plugins registry
		ReporterPlugin *ReporterPlugin `yaml:"reporterPlugin"`
		// Tags is the set of key-value pairs to be reported as part of every metric
		Tags map[string]string `yaml:"tags"`
		// Prefix sets the prefix to all outgoing metrics
		Prefix string `yaml:"prefix"`
		// ReportingInterval is the interval of metrics reporter
		ReportingInterval time.Duration `yaml:"reportingInterval"`
	}

	// Statsd contains the config items for statsd metrics reporter
	Statsd struct {
		// The host and port of the statsd server
		HostPort string `yaml:"hostPort" validate:"nonzero"`
		// The prefix to use in reporting to statsd
		Prefix string `yaml:"prefix" validate:"nonzero"`
		// FlushInterval is the maximum interval for sending packets.
		// If it is not specified, it defaults to 300ms.
		FlushInterval time.Duration `yaml:"flushInterval"`
		// FlushBytes specifies the maximum udp packet size you wish to send.
		// If FlushBytes is unspecified, it defaults  to 1432 bytes, which is
		// considered safe for local traffic.
		FlushBytes int `yaml:"flushBytes"`
	}

	// ReporterPlugin names a plugin from the metrics plugins registry and its options
	ReporterPlugin struct {
		Name    string            `yaml:"name"`
		Options map[string]string `yaml:"options"`
	}
)

const defaultReportingInterval = time.Second

// tally sanitizer options that satisfy Prometheus restrictions.
// This will rename metrics at the tally emission level, so metrics name we
// use maybe different from what gets emitted to Prometheus.
var (
	safeCharacters = []rune{'_'}

	sanitizeOptions = tally.SanitizeOptions{
		NameCharacters: tally.ValidCharacters{
			Ranges:     tally.AlphanumericRange,
			Characters: safeCharacters,
		},
		KeyCharacters: tally.ValidCharacters{
			Ranges:     tally.AlphanumericRange,
			Characters: safeCharacters,
		},
		ValueCharacters: tally.ValidCharacters{
			Ranges:     tally.AlphanumericRange,
			Characters: safeCharacters,
		},
		ReplacementCharacter: tally.DefaultReplacementCharacter,
	}
)

// NewScope builds a new tally scope for this metrics configuration.
// Only one reporter is used: statsd first, then prometheus, then the reporter plugin.
// Without any of them the returned scope drops every metric.
func (c *Metrics) NewScope(logger log.Logger, service string) tally.Scope {
	if c == nil {
		return tally.NoopScope
	}
	tags := c.tagsWithService(service)

	switch {
	case c.Statsd != nil:
		return c.newPluginScope(logger, statsd.PluginName, c.Statsd.options(), tags)
	case c.Prometheus != nil:
		return c.newPrometheusScope(logger, tags)
	case c.ReporterPlugin != nil:
		return c.newPluginScope(logger, c.ReporterPlugin.Name, c.ReporterPlugin.Options, tags)
	}
	return tally.NoopScope
}

func (c *Metrics) newPluginScope(logger log.Logger, name string, options map[string]string, tags map[string]string) tally.Scope {
	scope, err := plugins.NewThirdPartyReporter(name, options, tags, c.Prefix)
	if err != nil {
		logger.Fatal("error creating metrics reporter", tag.Error(err), tag.Value(name))
	}
	return scope
}

func (c *Metrics) newPrometheusScope(logger log.Logger, tags map[string]string) tally.Scope {
	if len(c.Prometheus.DefaultHistogramBuckets) == 0 {
		c.Prometheus.DefaultHistogramBuckets = prometheusbuckets.DefaultHistogramBuckets()
	}
	reporter, err := c.Prometheus.NewReporter(
		prometheus.ConfigurationOptions{
			OnError: func(err error) {
				logger.Warn("error in prometheus reporter", tag.Error(err))
			},
		},
	)
	if err != nil {
		logger.Fatal("error creating prometheus reporter", tag.Error(err))
	}
	scopeOpts := tally.ScopeOptions{
		Tags:            tags,
		CachedReporter:  reporter,
		Separator:       prometheus.DefaultSeparator,
		SanitizeOptions: &sanitizeOptions,
		Prefix:          c.Prefix,
	}
	scope, _ := tally.NewRootScope(scopeOpts, c.reportingInterval())
	return scope
}

func (c *Metrics) tagsWithService(service string) map[string]string {
	tags := make(map[string]string, len(c.Tags)+1)
	for k, v := range c.Tags {
		tags[k] = v
	}
	if service != "" {
		tags["service"] = service
	}
	return tags
}

func (c *Metrics) reportingInterval() time.Duration {
	if c.ReportingInterval > 0 {
		return c.ReportingInterval
	}
	return defaultReportingInterval
}

func (s *Statsd) options() map[string]string {
	options := map[string]string{
		statsd.HostPortKey: s.HostPort,
		statsd.PrefixKey:   s.Prefix,
	}
	if s.FlushInterval > 0 {
		options[statsd.FlushIntervalKey] = s.FlushInterval.String()
	}
	if s.FlushBytes > 0 {
		options[statsd.FlushBytesKey] = strconv.Itoa(s.FlushBytes)
	}
	return options
}
