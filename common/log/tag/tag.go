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

// Package tag defines the structured fields attached to log entries. Messages stay static,
// everything that varies goes into a tag.
package tag

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// LoggingCallAtKey is reserved for the file:line the logger adds to each entry
const LoggingCallAtKey = "logging-call-at"

// Tag is a typed log field, built through the constructors of this package
type Tag struct {
	field zap.Field
}

// Field returns the zap field of the tag
func (t *Tag) Field() zap.Field {
	return t.field
}

func newStringTag(key string, value string) Tag { return Tag{field: zap.String(key, value)} }

func newInt(key string, value int) Tag { return Tag{field: zap.Int(key, value)} }

func newBoolTag(key string, value bool) Tag { return Tag{field: zap.Bool(key, value)} }

func newFloat64Tag(key string, value float64) Tag { return Tag{field: zap.Float64(key, value)} }

func newDurationTag(key string, value time.Duration) Tag { return Tag{field: zap.Duration(key, value)} }

// zap always names the field of zap.Error "error"
func newErrorTag(value error) Tag { return Tag{field: zap.Error(value)} }

func newObjectTag(key string, value interface{}) Tag {
	return Tag{field: zap.String(key, fmt.Sprintf("%v", value))}
}
