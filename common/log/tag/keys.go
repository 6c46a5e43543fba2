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

package tag

import (
	"time"

	"go.uber.org/zap"
)

///////////////////  Common tags defined here ///////////////////

// Error returns tag for Error
func Error(err error) Tag {
	return newErrorTag(err)
}

// Value returns tag for Value
func Value(value interface{}) Tag {
	return newObjectTag("value", value)
}

///////////////////  Workflow tags defined here: ( wf is short for workflow) ///////////////////

// WorkflowID returns tag for WorkflowID
func WorkflowID(workflowID string) Tag {
	return newStringTag("wf-id", workflowID)
}

// WorkflowType returns tag for WorkflowType
func WorkflowType(wfType string) Tag {
	return newStringTag("wf-type", wfType)
}

// WorkflowRunID returns tag for WorkflowRunID
func WorkflowRunID(runID string) Tag {
	return newStringTag("wf-run-id", runID)
}

// WorkflowDomainName returns tag for WorkflowDomainName
func WorkflowDomainName(domainName string) Tag {
	return newStringTag("wf-domain-name", domainName)
}

// WorkflowTaskListName returns tag for WorkflowTaskListName
func WorkflowTaskListName(taskListName string) Tag {
	return newStringTag("wf-task-list-name", taskListName)
}

// WorkflowSignalName returns tag for WorkflowSignalName
func WorkflowSignalName(signalName string) Tag {
	return newStringTag("wf-signal-name", signalName)
}

// WorkflowQueryType returns tag for WorkflowQueryType
func WorkflowQueryType(queryType string) Tag {
	return newStringTag("wf-query-type", queryType)
}

// WorkflowTerminateReason returns tag for WorkflowTerminateReason
func WorkflowTerminateReason(reason string) Tag {
	return newStringTag("wf-terminate-reason", reason)
}

// RequestID returns tag for the idempotency token of a request
func RequestID(requestID string) Tag {
	return newStringTag("request-id", requestID)
}

///////////////////  System tags defined here  ///////////////////

// Service returns tag for Service
func Service(sv string) Tag {
	return newStringTag("service", sv)
}

// Operation returns tag for Operation
func Operation(operation string) Tag {
	return newStringTag("operation", operation)
}

// Transport returns tag for the wire protocol of a client
func Transport(transport string) Tag {
	return newStringTag("transport", transport)
}

// Attempt returns tag for the 1-based number of an attempt
func Attempt(attempt int) Tag {
	return newInt("attempt", attempt)
}

// Backoff returns tag for the delay before the next attempt
func Backoff(backoff time.Duration) Tag {
	return newDurationTag("backoff", backoff)
}

// Timeout returns tag for Timeout
func Timeout(timeout time.Duration) Tag {
	return newDurationTag("timeout", timeout)
}

// Async returns tag for whether a call goes through the non-blocking path
func Async(async bool) Tag {
	return newBoolTag("async", async)
}

// Bool returns tag for Bool
func Bool(b bool) Tag {
	return newBoolTag("bool", b)
}

// ClientError returns tag for the error returned by a forwarded client call
func ClientError(err error) Tag {
	return Tag{field: zap.NamedError("client-error", err)}
}

// ErrorRate returns tag for a fault injection rate
func ErrorRate(rate float64) Tag {
	return newFloat64Tag("error-rate", rate)
}

