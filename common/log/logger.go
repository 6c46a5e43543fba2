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

package log

import (
	"github.com/uber/cadence-external-client/common/log/tag"
)

// Logger is our abstraction for logging
// Usage examples:
//
//	import "github.com/uber/cadence-external-client/common/log/tag"
//	1) logger = logger.WithTags(
//	       tag.WorkflowID(workflowID),
//	       tag.WorkflowDomainName(domain))
//	2) logger.Info("Started workflow",
//	       tag.WorkflowRunID(runID))
//	3) logger.Warn("Retries exhausted",
//	       tag.Error(err))
//
// Messages are static strings, everything that varies goes into tags.
type Logger interface {
	Debug(msg string, tags ...tag.Tag)
	Info(msg string, tags ...tag.Tag)
	Warn(msg string, tags ...tag.Tag)
	Error(msg string, tags ...tag.Tag)
	Fatal(msg string, tags ...tag.Tag)
	// SampleInfo logs at info level for roughly one call out of sampleRate
	SampleInfo(msg string, sampleRate int, tags ...tag.Tag)
	WithTags(tags ...tag.Tag) Logger
}
