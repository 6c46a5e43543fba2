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
	"fmt"
	"math/rand"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/uber/cadence-external-client/common/log"
	"github.com/uber/cadence-external-client/common/log/tag"
)

type loggerImpl struct {
	zapLogger *zap.Logger
	sampleFn  func(int) bool
}

// Option customizes a logger built by NewLogger
type Option func(impl *loggerImpl)

// WithSampleFunc overrides the sampling decision of SampleInfo, mainly for tests
func WithSampleFunc(fn func(int) bool) Option {
	return func(impl *loggerImpl) {
		impl.sampleFn = fn
	}
}

const (
	// frames between runtime.Caller in write and the caller of a level method
	callerSkip = 3
	// empty messages are replaced so every entry stays searchable
	defaultMsgForEmpty = "none"
)

var _ log.Logger = (*loggerImpl)(nil)

// NewNopLogger returns a logger dropping every entry
func NewNopLogger() log.Logger {
	return NewLogger(zap.NewNop())
}

// NewLogger returns a logger writing to zapLogger. Every entry carries the file and line it was logged at.
func NewLogger(zapLogger *zap.Logger, opts ...Option) log.Logger {
	impl := &loggerImpl{
		zapLogger: zapLogger,
		sampleFn:  func(rate int) bool { return rand.Intn(rate) == 0 },
	}
	for _, opt := range opts {
		opt(impl)
	}
	return impl
}

func (lg *loggerImpl) Debug(msg string, tags ...tag.Tag) {
	lg.write(zapcore.DebugLevel, msg, tags)
}

func (lg *loggerImpl) Info(msg string, tags ...tag.Tag) {
	lg.write(zapcore.InfoLevel, msg, tags)
}

func (lg *loggerImpl) Warn(msg string, tags ...tag.Tag) {
	lg.write(zapcore.WarnLevel, msg, tags)
}

func (lg *loggerImpl) Error(msg string, tags ...tag.Tag) {
	lg.write(zapcore.ErrorLevel, msg, tags)
}

func (lg *loggerImpl) Fatal(msg string, tags ...tag.Tag) {
	lg.write(zapcore.FatalLevel, msg, tags)
}

func (lg *loggerImpl) SampleInfo(msg string, sampleRate int, tags ...tag.Tag) {
	if sampleRate > 1 && !lg.sampleFn(sampleRate) {
		return
	}
	lg.write(zapcore.InfoLevel, msg, tags)
}

func (lg *loggerImpl) WithTags(tags ...tag.Tag) log.Logger {
	return &loggerImpl{
		zapLogger: lg.zapLogger.With(buildFields(tags)...),
		sampleFn:  lg.sampleFn,
	}
}

// write builds the fields only when the level is enabled, retry loops log at debug on every attempt
func (lg *loggerImpl) write(level zapcore.Level, msg string, tags []tag.Tag) {
	if msg == "" {
		msg = defaultMsgForEmpty
	}
	ce := lg.zapLogger.Check(level, msg)
	if ce == nil {
		return
	}
	fields := append(buildFields(tags), zap.String(tag.LoggingCallAtKey, caller(callerSkip)))
	ce.Write(fields...)
}

func buildFields(tags []tag.Tag) []zap.Field {
	fs := make([]zap.Field, 0, len(tags)+1)
	for _, t := range tags {
		f := t.Field()
		if f.Key == "" {
			continue
		}
		fs = append(fs, f)

		if obj, ok := f.Interface.(zapcore.ObjectMarshaler); ok && f.Type == zapcore.ErrorType {
			fs = append(fs, zap.Object(f.Key+"-details", obj))
		}
	}
	return fs
}

func caller(skip int) string {
	_, path, lineno, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v:%v", filepath.Base(path), lineno)
}
