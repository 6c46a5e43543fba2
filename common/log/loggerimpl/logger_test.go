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

package loggerimpl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/uber/cadence-external-client/common/log/tag"
)

func newObservedLogger(opts ...Option) (*observer.ObservedLogs, *loggerImpl) {
	core, obs := observer.New(zapcore.DebugLevel)
	return obs, NewLogger(zap.New(core), opts...).(*loggerImpl)
}

func TestLoggerAddsCallAt(t *testing.T) {
	obs, logger := newObservedLogger()
	logger.Info("started workflow", tag.WorkflowID("wid"), tag.WorkflowRunID("rid"))

	entries := obs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "started workflow", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "wid", fields["wf-id"])
	assert.Equal(t, "rid", fields["wf-run-id"])
	assert.Contains(t, fields[tag.LoggingCallAtKey], "logger_test.go:")
}

func TestLoggerEmptyMessage(t *testing.T) {
	obs, logger := newObservedLogger()
	logger.Warn("")
	require.Len(t, obs.All(), 1)
	assert.Equal(t, defaultMsgForEmpty, obs.All()[0].Message)
}

func TestLoggerWithTags(t *testing.T) {
	obs, logger := newObservedLogger()
	withDomain := logger.WithTags(tag.WorkflowDomainName("samples"))
	withDomain.Error("retries exhausted", tag.Error(errors.New("boom")), tag.Attempt(3))

	entries := obs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "samples", fields["wf-domain-name"])
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, int64(3), fields["attempt"])
}

func TestLoggerDebugLevelFiltered(t *testing.T) {
	core, obs := observer.New(zapcore.InfoLevel)
	logger := NewLogger(zap.New(core))
	logger.Debug("retrying")
	assert.Equal(t, 0, obs.Len())
}

func TestSampleInfo(t *testing.T) {
	obs, logger := newObservedLogger(WithSampleFunc(func(int) bool { return false }))
	logger.SampleInfo("sampled out", 10)
	assert.Equal(t, 0, obs.Len())
	logger.SampleInfo("always logged", 1)
	assert.Equal(t, 1, obs.Len())

	obs, logger = newObservedLogger(WithSampleFunc(func(int) bool { return true }))
	logger.SampleInfo("sampled in", 10)
	assert.Equal(t, 1, obs.Len())
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("nothing")
	logger.WithTags(tag.Operation("op")).Debug("nothing")
}
