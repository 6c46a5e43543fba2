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

package external

import (
	"context"
	"errors"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/uber-go/tally"

	"github.com/uber/cadence-external-client/common"
	"github.com/uber/cadence-external-client/common/backoff"
	"github.com/uber/cadence-external-client/common/future"
	"github.com/uber/cadence-external-client/common/log"
	"github.com/uber/cadence-external-client/common/log/tag"
	"github.com/uber/cadence-external-client/common/metrics"
)

// call is the bookkeeping of one logical operation across all of its attempts
type call struct {
	ctx       context.Context
	client    *clientImpl
	operation string
	scope     metrics.Scope
	logger    log.Logger
	span      opentracing.Span
	sw        tally.Stopwatch
}

var operationNames = map[int]string{
	metrics.ExternalClientStartWorkflowScope:                  "StartWorkflow",
	metrics.ExternalClientEnqueueStartWorkflowScope:           "EnqueueStartWorkflow",
	metrics.ExternalClientSignalWorkflowScope:                 "SignalWorkflowExecution",
	metrics.ExternalClientSignalWithStartWorkflowScope:        "SignalWithStartWorkflowExecution",
	metrics.ExternalClientEnqueueSignalWithStartWorkflowScope: "EnqueueSignalWithStartWorkflowExecution",
	metrics.ExternalClientQueryWorkflowScope:                  "QueryWorkflow",
	metrics.ExternalClientRequestCancelWorkflowScope:          "RequestCancelWorkflowExecution",
	metrics.ExternalClientTerminateWorkflowScope:              "TerminateWorkflowExecution",
}

func (c *clientImpl) newCall(ctx context.Context, scope int, tags ...tag.Tag) (context.Context, *call) {
	operation := operationNames[scope]
	span, ctx := opentracing.StartSpanFromContextWithTracer(ctx, c.tracer, operation)
	span.SetTag("cadence.domain", c.domain)

	cl := &call{
		ctx:       ctx,
		client:    c,
		operation: operation,
		scope:     c.metricsClient.Scope(scope, metrics.DomainTag(c.domain)),
		logger:    c.logger.WithTags(append(tags, tag.Operation(operation))...),
		span:      span,
	}
	cl.scope.IncCounter(metrics.CadenceRequests)
	cl.sw = cl.scope.StartTimer(metrics.CadenceLatency)
	return ctx, cl
}

func (cl *call) retrier(policy backoff.RetryPolicy) *backoff.Retrier {
	return backoff.NewRetrier(
		backoff.WithRetryPolicy(policy),
		backoff.WithRetryableError(common.FrontendRetry),
		backoff.WithTimeSource(cl.client.timeSource),
		backoff.WithOnRetry(cl.onRetry),
		backoff.WithErrorMapper(cl.mapError),
		backoff.WithOnFinish(cl.finish),
	)
}

func (cl *call) onRetry(attempt int, err error, delay time.Duration) {
	cl.scope.IncCounter(metrics.CadenceRetries)
	cl.logger.Debug("Retrying frontend call", tag.Attempt(attempt), tag.Backoff(delay), tag.Error(err))
}

// mapError decides what the caller observes once the call cannot make progress
func (cl *call) mapError(err error) error {
	switch {
	case errors.Is(err, backoff.ErrDeadlineExceeded):
		cl.scope.IncCounter(metrics.CadenceErrDeadlineExceededCounter)
		cl.logger.Warn("Frontend call ran out of time for retries", tag.Error(err))
		return err
	case errors.Is(err, future.ErrCanceled), cl.callerDone(err):
		return err
	case common.IsServiceTerminalError(err):
		cl.scope.IncCounter(metrics.CadenceErrTerminalCounter)
		cl.logger.Info("Frontend call failed with terminal error", tag.Error(err))
		return err
	}

	switch {
	case common.IsContextTimeoutError(err):
		cl.logger.Warn("Frontend call timed out on every attempt", tag.Error(err))
	case common.IsServiceTransientError(err):
		cl.logger.Warn("Frontend call failed after retries", tag.Error(err))
	default:
		cl.logger.Error("Frontend call failed with unexpected error", tag.Error(err))
	}
	return &ServiceError{Operation: cl.operation, Cause: err}
}

// callerDone reports whether err is the end of the caller's own context. A transport
// timeout looks the same but leaves the caller's context alive.
func (cl *call) callerDone(err error) bool {
	if cl.ctx.Err() == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (cl *call) finish(err error) {
	cl.sw.Stop()
	if err != nil {
		if !errors.Is(err, future.ErrCanceled) {
			cl.scope.IncCounter(metrics.CadenceFailures)
		}
		ext.Error.Set(cl.span, true)
		cl.span.LogKV("event", "error", "message", err.Error())
	}
	cl.span.Finish()
}
