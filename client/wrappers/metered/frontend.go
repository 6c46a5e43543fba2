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

package metered

import (
	"context"

	"go.uber.org/yarpc"

	"github.com/uber/cadence-external-client/client/frontend"
	"github.com/uber/cadence-external-client/common/metrics"
	"github.com/uber/cadence-external-client/common/types"
)

// frontendClient implements frontend.Client interface instrumented with metrics
type frontendClient struct {
	client        frontend.Client
	metricsClient metrics.Client
}

// NewFrontendClient creates a new instance of frontendClient with retry policy
func NewFrontendClient(client frontend.Client, metricsClient metrics.Client) frontend.Client {
	return &frontendClient{
		client:        client,
		metricsClient: metricsClient,
	}
}

// emit records one request and its latency in scope, plus a failure when the call errs
func (c *frontendClient) emit(scope int, call func() error) error {
	c.metricsClient.IncCounter(scope, metrics.CadenceClientRequests)
	sw := c.metricsClient.StartTimer(scope, metrics.CadenceClientLatency)
	err := call()
	sw.Stop()
	if err != nil {
		c.metricsClient.IncCounter(scope, metrics.CadenceClientFailures)
	}
	return err
}

func (c *frontendClient) StartWorkflowExecution(ctx context.Context, sp1 *types.StartWorkflowExecutionRequest, p1 ...yarpc.CallOption) (sp2 *types.StartWorkflowExecutionResponse, err error) {
	err = c.emit(metrics.FrontendClientStartWorkflowExecutionScope, func() (err error) {
		sp2, err = c.client.StartWorkflowExecution(ctx, sp1, p1...)
		return err
	})
	return sp2, err
}

func (c *frontendClient) StartWorkflowExecutionAsync(ctx context.Context, sp1 *types.StartWorkflowExecutionAsyncRequest, p1 ...yarpc.CallOption) (sp2 *types.StartWorkflowExecutionAsyncResponse, err error) {
	err = c.emit(metrics.FrontendClientStartWorkflowExecutionAsyncScope, func() (err error) {
		sp2, err = c.client.StartWorkflowExecutionAsync(ctx, sp1, p1...)
		return err
	})
	return sp2, err
}

func (c *frontendClient) SignalWorkflowExecution(ctx context.Context, sp1 *types.SignalWorkflowExecutionRequest, p1 ...yarpc.CallOption) error {
	return c.emit(metrics.FrontendClientSignalWorkflowExecutionScope, func() error {
		return c.client.SignalWorkflowExecution(ctx, sp1, p1...)
	})
}

func (c *frontendClient) SignalWithStartWorkflowExecution(ctx context.Context, sp1 *types.SignalWithStartWorkflowExecutionRequest, p1 ...yarpc.CallOption) (sp2 *types.StartWorkflowExecutionResponse, err error) {
	err = c.emit(metrics.FrontendClientSignalWithStartWorkflowExecutionScope, func() (err error) {
		sp2, err = c.client.SignalWithStartWorkflowExecution(ctx, sp1, p1...)
		return err
	})
	return sp2, err
}

func (c *frontendClient) SignalWithStartWorkflowExecutionAsync(ctx context.Context, sp1 *types.SignalWithStartWorkflowExecutionAsyncRequest, p1 ...yarpc.CallOption) (sp2 *types.SignalWithStartWorkflowExecutionAsyncResponse, err error) {
	err = c.emit(metrics.FrontendClientSignalWithStartWorkflowExecutionAsyncScope, func() (err error) {
		sp2, err = c.client.SignalWithStartWorkflowExecutionAsync(ctx, sp1, p1...)
		return err
	})
	return sp2, err
}

func (c *frontendClient) QueryWorkflow(ctx context.Context, qp1 *types.QueryWorkflowRequest, p1 ...yarpc.CallOption) (qp2 *types.QueryWorkflowResponse, err error) {
	err = c.emit(metrics.FrontendClientQueryWorkflowScope, func() (err error) {
		qp2, err = c.client.QueryWorkflow(ctx, qp1, p1...)
		return err
	})
	return qp2, err
}

func (c *frontendClient) RequestCancelWorkflowExecution(ctx context.Context, rp1 *types.RequestCancelWorkflowExecutionRequest, p1 ...yarpc.CallOption) error {
	return c.emit(metrics.FrontendClientRequestCancelWorkflowExecutionScope, func() error {
		return c.client.RequestCancelWorkflowExecution(ctx, rp1, p1...)
	})
}

func (c *frontendClient) TerminateWorkflowExecution(ctx context.Context, tp1 *types.TerminateWorkflowExecutionRequest, p1 ...yarpc.CallOption) error {
	return c.emit(metrics.FrontendClientTerminateWorkflowExecutionScope, func() error {
		return c.client.TerminateWorkflowExecution(ctx, tp1, p1...)
	})
}
