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

package timeout

import (
	"context"
	"time"

	"go.uber.org/yarpc"

	"github.com/uber/cadence-external-client/client/frontend"
	"github.com/uber/cadence-external-client/common/types"
)

const (
	// FrontendDefaultTimeout bounds a single frontend call
	FrontendDefaultTimeout = 10 * time.Second
	// FrontendDefaultQueryTimeout bounds queries, which wait on a workflow worker to answer
	FrontendDefaultQueryTimeout = 30 * time.Second
)

var _ frontend.Client = (*frontendClient)(nil)

type frontendClient struct {
	client       frontend.Client
	timeout      time.Duration
	queryTimeout time.Duration
}

// NewFrontendClient bounds every call made through client by timeout, and
// queries by queryTimeout
func NewFrontendClient(
	client frontend.Client,
	timeout time.Duration,
	queryTimeout time.Duration,
) frontend.Client {
	return &frontendClient{
		client:       client,
		timeout:      timeout,
		queryTimeout: queryTimeout,
	}
}

func (c *frontendClient) StartWorkflowExecution(ctx context.Context, request *types.StartWorkflowExecutionRequest, opts ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.StartWorkflowExecution(ctx, request, opts...)
}

func (c *frontendClient) StartWorkflowExecutionAsync(ctx context.Context, request *types.StartWorkflowExecutionAsyncRequest, opts ...yarpc.CallOption) (*types.StartWorkflowExecutionAsyncResponse, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.StartWorkflowExecutionAsync(ctx, request, opts...)
}

func (c *frontendClient) SignalWorkflowExecution(ctx context.Context, request *types.SignalWorkflowExecutionRequest, opts ...yarpc.CallOption) error {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.SignalWorkflowExecution(ctx, request, opts...)
}

func (c *frontendClient) SignalWithStartWorkflowExecution(ctx context.Context, request *types.SignalWithStartWorkflowExecutionRequest, opts ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.SignalWithStartWorkflowExecution(ctx, request, opts...)
}

func (c *frontendClient) SignalWithStartWorkflowExecutionAsync(ctx context.Context, request *types.SignalWithStartWorkflowExecutionAsyncRequest, opts ...yarpc.CallOption) (*types.SignalWithStartWorkflowExecutionAsyncResponse, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.SignalWithStartWorkflowExecutionAsync(ctx, request, opts...)
}

func (c *frontendClient) QueryWorkflow(ctx context.Context, request *types.QueryWorkflowRequest, opts ...yarpc.CallOption) (*types.QueryWorkflowResponse, error) {
	ctx, cancel := withTimeout(ctx, c.queryTimeout)
	defer cancel()
	return c.client.QueryWorkflow(ctx, request, opts...)
}

func (c *frontendClient) RequestCancelWorkflowExecution(ctx context.Context, request *types.RequestCancelWorkflowExecutionRequest, opts ...yarpc.CallOption) error {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.RequestCancelWorkflowExecution(ctx, request, opts...)
}

func (c *frontendClient) TerminateWorkflowExecution(ctx context.Context, request *types.TerminateWorkflowExecutionRequest, opts ...yarpc.CallOption) error {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.TerminateWorkflowExecution(ctx, request, opts...)
}

// withTimeout never extends a parent deadline that is already earlier
func withTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
