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

// Package testlogger builds loggers for unit tests that write through testing.T.
package testlogger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/uber/cadence-external-client/common/log"
	"github.com/uber/cadence-external-client/common/log/loggerimpl"
)

// TestingT is the subset of testing.T used by the loggers of this package
type TestingT interface {
	zaptest.TestingT
	Cleanup(func())
}

// New returns a logger writing to t, with sampling disabled
func New(t TestingT) log.Logger {
	return loggerimpl.NewLogger(NewZap(t), loggerimpl.WithSampleFunc(func(int) bool { return true }))
}

// NewZap returns a zap logger writing to t while the test runs.
//
// An async attempt can complete and log after its test returned. Writing to t then fails the test,
// so after cleanup entries go to stderr instead, flagged as late and with a stack attached.
func NewZap(t TestingT) *zap.Logger {
	stderr, err := zap.NewDevelopment()
	require.NoError(t, err, "could not build a fallback zap logger")
	core := &lateSafeCore{
		name:   t.Name(),
		inTest: zaptest.NewLogger(t).Core(),
		late:   stderr.Core(),
		ended:  atomic.NewBool(false),
	}
	t.Cleanup(func() { core.ended.Store(true) })
	return zap.New(core)
}

// NewObserved returns a logger writing to t together with the entries it logged, for assertions
func NewObserved(t TestingT) (log.Logger, *observer.ObservedLogs) {
	obsCore, obs := observer.New(zapcore.DebugLevel)
	z := NewZap(t).WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, obsCore)
	}))
	return loggerimpl.NewLogger(z, loggerimpl.WithSampleFunc(func(int) bool { return true })), obs
}

type lateSafeCore struct {
	name   string
	inTest zapcore.Core
	late   zapcore.Core
	// shared by every core derived through With
	ended *atomic.Bool
}

var _ zapcore.Core = (*lateSafeCore)(nil)

func (c *lateSafeCore) current() zapcore.Core {
	if c.ended.Load() {
		return c.late
	}
	return c.inTest
}

func (c *lateSafeCore) Enabled(level zapcore.Level) bool {
	return c.current().Enabled(level)
}

func (c *lateSafeCore) With(fields []zapcore.Field) zapcore.Core {
	return &lateSafeCore{
		name:   c.name,
		inTest: c.inTest.With(fields),
		late:   c.late.With(fields),
		ended:  c.ended,
	}
}

func (c *lateSafeCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	// the target core is picked in Write, the test may end in between
	if c.late.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *lateSafeCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if !c.ended.Load() {
		return c.inTest.Write(entry, fields)
	}
	entry.Message = fmt.Sprintf("COULD FAIL TEST %q, logged too late: %v", c.name, entry.Message)
	if !slices.ContainsFunc(fields, isStackField) {
		fields = append(fields, zap.Stack("log_stack"))
	}
	return c.late.Write(entry, fields)
}

func (c *lateSafeCore) Sync() error {
	return c.current().Sync()
}

func isStackField(f zapcore.Field) bool {
	return strings.Contains(strings.ToLower(f.Key), "stack")
}
