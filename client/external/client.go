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
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"

	"github.com/uber/cadence-external-client/client/frontend"
	"github.com/uber/cadence-external-client/common"
	"github.com/uber/cadence-external-client/common/backoff"
	"github.com/uber/cadence-external-client/common/clock"
	"github.com/uber/cadence-external-client/common/future"
	"github.com/uber/cadence-external-client/common/log"
	"github.com/uber/cadence-external-client/common/log/loggerimpl"
	"github.com/uber/cadence-external-client/common/log/tag"
	"github.com/uber/cadence-external-client/common/metrics"
	"github.com/uber/cadence-external-client/common/types"
)

var _ Client = (*clientImpl)(nil)

type (
	// Option configures the client returned by NewClient
	Option func(*clientImpl)

	clientImpl struct {
		service       frontend.Client
		asyncService  frontend.AsyncClient
		domain        string
		identity      string
		rpcPolicy     *backoff.ExponentialRetryPolicy
		metricsClient metrics.Client
		logger        log.Logger
		timeSource    clock.TimeSource
		tracer        opentracing.Tracer
		idGenerator   func() string
	}
)

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return func(c *clientImpl) {
		c.logger = logger
	}
}

// WithMetricsClient sets the metrics client
func WithMetricsClient(metricsClient metrics.Client) Option {
	return func(c *clientImpl) {
		c.metricsClient = metricsClient
	}
}

// WithTimeSource sets the clock used for retry delays and deadlines
func WithTimeSource(timeSource clock.TimeSource) Option {
	return func(c *clientImpl) {
		c.timeSource = timeSource
	}
}

// WithIdentity sets the identity sent with mutating requests
func WithIdentity(identity string) Option {
	return func(c *clientImpl) {
		c.identity = identity
	}
}

// WithTracer sets the tracer starting one span per operation
func WithTracer(tracer opentracing.Tracer) Option {
	return func(c *clientImpl) {
		c.tracer = tracer
	}
}

// WithRetryPolicy replaces the default retry policy of frontend calls
func WithRetryPolicy(policy *backoff.ExponentialRetryPolicy) Option {
	return func(c *clientImpl) {
		c.rpcPolicy = policy
	}
}

// WithIDGenerator replaces the generator of request and workflow ids
func WithIDGenerator(fn func() string) Option {
	return func(c *clientImpl) {
		c.idGenerator = fn
	}
}

// WithAsyncClient sets the transport used by the non blocking operations.
// It defaults to frontend.NewAsyncClient over the blocking transport.
func WithAsyncClient(asyncService frontend.AsyncClient) Option {
	return func(c *clientImpl) {
		c.asyncService = asyncService
	}
}

// NewClient creates a Client sending every request of domain through service
func NewClient(service frontend.Client, domain string, opts ...Option) Client {
	c := &clientImpl{
		service:       service,
		domain:        domain,
		rpcPolicy:     common.CreateFrontendServiceRetryPolicy(),
		metricsClient: metrics.NewNoopClient(),
		logger:        loggerimpl.NewNopLogger(),
		timeSource:    clock.NewRealTimeSource(),
		tracer:        opentracing.GlobalTracer(),
		idGenerator:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.asyncService == nil {
		c.asyncService = frontend.NewAsyncClient(service)
	}
	c.identity = common.ClientIdentity(c.identity)
	c.logger = c.logger.WithTags(tag.WorkflowDomainName(domain))
	return c
}

func (c *clientImpl) Domain() string {
	return c.domain
}

func (c *clientImpl) GenerateUniqueID() string {
	return c.idGenerator()
}

// policyWithTimeout derives the default policy with an absolute deadline when timeout is
// strictly positive and finite, otherwise it returns the default policy
func (c *clientImpl) policyWithTimeout(timeout time.Duration) backoff.RetryPolicy {
	if !isFiniteTimeout(timeout) {
		return c.rpcPolicy
	}
	return c.rpcPolicy.WithExpiration(c.timeSource.Now().Add(timeout))
}

func isFiniteTimeout(timeout time.Duration) bool {
	return timeout > 0 && timeout < time.Duration(math.MaxInt64)
}

// attemptTimeout bounds each async attempt the same way the whole call is bounded
func attemptTimeout(timeout time.Duration) time.Duration {
	if !isFiniteTimeout(timeout) {
		return 0
	}
	return timeout
}

// emitStartCounter increments counter once per logical start, tagged by workflow type and task list
func (c *clientImpl) emitStartCounter(scope int, counter int, p *StartWorkflowParameters) {
	var workflowType, taskList string
	if p != nil {
		workflowType, taskList = p.WorkflowType, p.TaskList
	}
	c.metricsClient.Scope(scope,
		metrics.DomainTag(c.domain),
		metrics.WorkflowTypeTag(workflowType),
		metrics.TaskListTag(taskList),
	).IncCounter(counter)
}

func startTags(request *types.StartWorkflowExecutionRequest) []tag.Tag {
	return []tag.Tag{
		tag.WorkflowID(request.WorkflowID),
		tag.WorkflowType(request.WorkflowType.GetName()),
		tag.WorkflowTaskListName(request.TaskList.GetName()),
		tag.RequestID(request.RequestID),
	}
}

func (c *clientImpl) StartWorkflow(ctx context.Context, params *StartWorkflowParameters) (*types.WorkflowExecution, error) {
	defer c.emitStartCounter(metrics.ExternalClientStartWorkflowScope, metrics.WorkflowStartCounter, params)

	request, err := c.newStartRequest(params)
	if err != nil {
		return nil, err
	}

	ctx, call := c.newCall(ctx, metrics.ExternalClientStartWorkflowScope, startTags(request)...)
	var response *types.StartWorkflowExecutionResponse
	err = call.retrier(c.rpcPolicy).Do(ctx, func(ctx context.Context) error {
		var err error
		response, err = c.service.StartWorkflowExecution(ctx, request)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.WorkflowExecution{
		WorkflowID: request.WorkflowID,
		RunID:      response.GetRunID(),
	}, nil
}

func (c *clientImpl) StartWorkflowAsync(ctx context.Context, params *StartWorkflowParameters, timeout time.Duration) future.Future {
	c.emitStartCounter(metrics.ExternalClientStartWorkflowScope, metrics.WorkflowStartCounter, params)

	request, err := c.newStartRequest(params)
	if err != nil {
		return failedFuture(err)
	}

	ctx, call := c.newCall(ctx, metrics.ExternalClientStartWorkflowScope, append(startTags(request), tag.Async(true), tag.Timeout(timeout))...)
	return call.retrier(c.policyWithTimeout(timeout)).DoAsync(ctx, func(ctx context.Context, onComplete func(interface{}, error)) {
		c.asyncService.StartWorkflowExecutionWithTimeout(ctx, request, attemptTimeout(timeout),
			func(response *types.StartWorkflowExecutionResponse) {
				onComplete(&types.WorkflowExecution{
					WorkflowID: request.WorkflowID,
					RunID:      response.GetRunID(),
				}, nil)
			},
			func(err error) {
				onComplete(nil, err)
			},
		)
	})
}

func (c *clientImpl) EnqueueStartWorkflow(ctx context.Context, params *StartWorkflowParameters) (*types.WorkflowExecution, error) {
	defer c.emitStartCounter(metrics.ExternalClientEnqueueStartWorkflowScope, metrics.WorkflowStartAsyncCounter, params)

	start, err := c.newStartRequest(params)
	if err != nil {
		return nil, err
	}
	request := &types.StartWorkflowExecutionAsyncRequest{StartWorkflowExecutionRequest: start}

	ctx, call := c.newCall(ctx, metrics.ExternalClientEnqueueStartWorkflowScope, startTags(start)...)
	err = call.retrier(c.rpcPolicy).Do(ctx, func(ctx context.Context) error {
		_, err := c.service.StartWorkflowExecutionAsync(ctx, request)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.WorkflowExecution{WorkflowID: start.WorkflowID}, nil
}

func (c *clientImpl) EnqueueStartWorkflowAsync(ctx context.Context, params *StartWorkflowParameters, timeout time.Duration) future.Future {
	c.emitStartCounter(metrics.ExternalClientEnqueueStartWorkflowScope, metrics.WorkflowStartAsyncCounter, params)

	start, err := c.newStartRequest(params)
	if err != nil {
		return failedFuture(err)
	}
	request := &types.StartWorkflowExecutionAsyncRequest{StartWorkflowExecutionRequest: start}

	ctx, call := c.newCall(ctx, metrics.ExternalClientEnqueueStartWorkflowScope, append(startTags(start), tag.Async(true), tag.Timeout(timeout))...)
	return call.retrier(c.policyWithTimeout(timeout)).DoAsync(ctx, func(ctx context.Context, onComplete func(interface{}, error)) {
		c.asyncService.StartWorkflowExecutionAsyncWithTimeout(ctx, request, attemptTimeout(timeout),
			func(*types.StartWorkflowExecutionAsyncResponse) {
				onComplete(&types.WorkflowExecution{WorkflowID: start.WorkflowID}, nil)
			},
			func(err error) {
				onComplete(nil, err)
			},
		)
	})
}

func (c *clientImpl) SignalWorkflowExecution(ctx context.Context, params *SignalWorkflowParameters) error {
	request, err := c.newSignalRequest(params)
	if err != nil {
		return err
	}

	ctx, call := c.newCall(ctx, metrics.ExternalClientSignalWorkflowScope, signalTags(request)...)
	return call.retrier(c.rpcPolicy).Do(ctx, func(ctx context.Context) error {
		return c.service.SignalWorkflowExecution(ctx, request)
	})
}

func (c *clientImpl) SignalWorkflowExecutionAsync(ctx context.Context, params *SignalWorkflowParameters, timeout time.Duration) future.Future {
	request, err := c.newSignalRequest(params)
	if err != nil {
		return failedFuture(err)
	}

	ctx, call := c.newCall(ctx, metrics.ExternalClientSignalWorkflowScope, append(signalTags(request), tag.Async(true), tag.Timeout(timeout))...)
	return call.retrier(c.policyWithTimeout(timeout)).DoAsync(ctx, func(ctx context.Context, onComplete func(interface{}, error)) {
		c.asyncService.SignalWorkflowExecutionWithTimeout(ctx, request, attemptTimeout(timeout),
			func() {
				onComplete(nil, nil)
			},
			func(err error) {
				onComplete(nil, err)
			},
		)
	})
}

func signalTags(request *types.SignalWorkflowExecutionRequest) []tag.Tag {
	return []tag.Tag{
		tag.WorkflowID(request.WorkflowExecution.GetWorkflowID()),
		tag.WorkflowRunID(request.WorkflowExecution.GetRunID()),
		tag.WorkflowSignalName(request.SignalName),
		tag.RequestID(request.RequestID),
	}
}

func (c *clientImpl) SignalWithStartWorkflowExecution(ctx context.Context, params *SignalWithStartWorkflowParameters) (*types.WorkflowExecution, error) {
	defer c.emitStartCounter(metrics.ExternalClientSignalWithStartWorkflowScope, metrics.WorkflowSignalWithStartCounter, startParameters(params))

	request, err := c.newSignalWithStartRequest(params)
	if err != nil {
		return nil, err
	}

	ctx, call := c.newCall(ctx, metrics.ExternalClientSignalWithStartWorkflowScope, signalWithStartTags(request)...)
	var response *types.StartWorkflowExecutionResponse
	err = call.retrier(c.rpcPolicy).Do(ctx, func(ctx context.Context) error {
		var err error
		response, err = c.service.SignalWithStartWorkflowExecution(ctx, request)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.WorkflowExecution{
		WorkflowID: request.WorkflowID,
		RunID:      response.GetRunID(),
	}, nil
}

func (c *clientImpl) EnqueueSignalWithStartWorkflowExecution(ctx context.Context, params *SignalWithStartWorkflowParameters) (*types.WorkflowExecution, error) {
	defer c.emitStartCounter(metrics.ExternalClientEnqueueSignalWithStartWorkflowScope, metrics.WorkflowSignalWithStartAsyncCounter, startParameters(params))

	signalWithStart, err := c.newSignalWithStartRequest(params)
	if err != nil {
		return nil, err
	}
	request := &types.SignalWithStartWorkflowExecutionAsyncRequest{SignalWithStartWorkflowExecutionRequest: signalWithStart}

	ctx, call := c.newCall(ctx, metrics.ExternalClientEnqueueSignalWithStartWorkflowScope, signalWithStartTags(signalWithStart)...)
	err = call.retrier(c.rpcPolicy).Do(ctx, func(ctx context.Context) error {
		_, err := c.service.SignalWithStartWorkflowExecutionAsync(ctx, request)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.WorkflowExecution{WorkflowID: signalWithStart.WorkflowID}, nil
}

func startParameters(p *SignalWithStartWorkflowParameters) *StartWorkflowParameters {
	if p == nil {
		return nil
	}
	return &p.Start
}

func signalWithStartTags(request *types.SignalWithStartWorkflowExecutionRequest) []tag.Tag {
	return []tag.Tag{
		tag.WorkflowID(request.WorkflowID),
		tag.WorkflowType(request.WorkflowType.GetName()),
		tag.WorkflowTaskListName(request.TaskList.GetName()),
		tag.WorkflowSignalName(request.SignalName),
		tag.RequestID(request.RequestID),
	}
}

func (c *clientImpl) QueryWorkflow(ctx context.Context, params *QueryWorkflowParameters) (*types.QueryWorkflowResponse, error) {
	request, err := c.newQueryRequest(params)
	if err != nil {
		return nil, err
	}

	ctx, call := c.newCall(ctx, metrics.ExternalClientQueryWorkflowScope,
		tag.WorkflowID(request.Execution.GetWorkflowID()),
		tag.WorkflowRunID(request.Execution.GetRunID()),
		tag.WorkflowQueryType(request.Query.QueryType),
	)
	var response *types.QueryWorkflowResponse
	err = call.retrier(c.rpcPolicy).Do(ctx, func(ctx context.Context) error {
		var err error
		response, err = c.service.QueryWorkflow(ctx, request)
		return err
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *clientImpl) RequestCancelWorkflowExecution(ctx context.Context, params *CancelWorkflowParameters) error {
	request, err := c.newCancelRequest(params)
	if err != nil {
		return err
	}

	ctx, call := c.newCall(ctx, metrics.ExternalClientRequestCancelWorkflowScope,
		tag.WorkflowID(request.WorkflowExecution.GetWorkflowID()),
		tag.WorkflowRunID(request.WorkflowExecution.GetRunID()),
		tag.RequestID(request.RequestID),
	)
	return call.retrier(c.rpcPolicy).Do(ctx, func(ctx context.Context) error {
		return c.service.RequestCancelWorkflowExecution(ctx, request)
	})
}

func (c *clientImpl) TerminateWorkflowExecution(ctx context.Context, params *TerminateWorkflowParameters) error {
	request, err := c.newTerminateRequest(params)
	if err != nil {
		return err
	}

	ctx, call := c.newCall(ctx, metrics.ExternalClientTerminateWorkflowScope,
		tag.WorkflowID(request.WorkflowExecution.GetWorkflowID()),
		tag.WorkflowRunID(request.WorkflowExecution.GetRunID()),
		tag.WorkflowTerminateReason(request.Reason),
		tag.RequestID(request.RequestID),
	)
	return call.retrier(c.rpcPolicy).Do(ctx, func(ctx context.Context) error {
		return c.service.TerminateWorkflowExecution(ctx, request)
	})
}

func failedFuture(err error) future.Future {
	f, settable := future.NewFuture()
	settable.Set(nil, err)
	return f
}
