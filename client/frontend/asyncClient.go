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

package frontend

import (
	"context"
	"time"

	"go.uber.org/yarpc"

	"github.com/uber/cadence-external-client/common/types"
)

var _ AsyncClient = (*asyncClient)(nil)

type asyncClient struct {
	client Client
	opts   []yarpc.CallOption
}

// NewAsyncClient creates an AsyncClient that dispatches every call to client on
// its own goroutine
func NewAsyncClient(client Client, opts ...yarpc.CallOption) AsyncClient {
	return &asyncClient{
		client: client,
		opts:   opts,
	}
}

func (c *asyncClient) StartWorkflowExecution(
	ctx context.Context,
	request *types.StartWorkflowExecutionRequest,
	onComplete func(*types.StartWorkflowExecutionResponse),
	onError func(error),
) {
	c.StartWorkflowExecutionWithTimeout(ctx, request, 0, onComplete, onError)
}

func (c *asyncClient) StartWorkflowExecutionWithTimeout(
	ctx context.Context,
	request *types.StartWorkflowExecutionRequest,
	timeout time.Duration,
	onComplete func(*types.StartWorkflowExecutionResponse),
	onError func(error),
) {
	go func() {
		ctx, cancel := createContext(ctx, timeout)
		defer cancel()
		resp, err := c.client.StartWorkflowExecution(ctx, request, c.opts...)
		if err != nil {
			onError(err)
			return
		}
		onComplete(resp)
	}()
}

func (c *asyncClient) StartWorkflowExecutionAsync(
	ctx context.Context,
	request *types.StartWorkflowExecutionAsyncRequest,
	onComplete func(*types.StartWorkflowExecutionAsyncResponse),
	onError func(error),
) {
	c.StartWorkflowExecutionAsyncWithTimeout(ctx, request, 0, onComplete, onError)
}

func (c *asyncClient) StartWorkflowExecutionAsyncWithTimeout(
	ctx context.Context,
	request *types.StartWorkflowExecutionAsyncRequest,
	timeout time.Duration,
	onComplete func(*types.StartWorkflowExecutionAsyncResponse),
	onError func(error),
) {
	go func() {
		ctx, cancel := createContext(ctx, timeout)
		defer cancel()
		resp, err := c.client.StartWorkflowExecutionAsync(ctx, request, c.opts...)
		if err != nil {
			onError(err)
			return
		}
		onComplete(resp)
	}()
}

func (c *asyncClient) SignalWorkflowExecution(
	ctx context.Context,
	request *types.SignalWorkflowExecutionRequest,
	onComplete func(),
	onError func(error),
) {
	c.SignalWorkflowExecutionWithTimeout(ctx, request, 0, onComplete, onError)
}

func (c *asyncClient) SignalWorkflowExecutionWithTimeout(
	ctx context.Context,
	request *types.SignalWorkflowExecutionRequest,
	timeout time.Duration,
	onComplete func(),
	onError func(error),
) {
	go func() {
		ctx, cancel := createContext(ctx, timeout)
		defer cancel()
		if err := c.client.SignalWorkflowExecution(ctx, request, c.opts...); err != nil {
			onError(err)
			return
		}
		onComplete()
	}()
}

// createContext bounds a single call by timeout when it is positive
func createContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout > 0 {
		return context.WithTimeout(parent, timeout)
	}
	return context.WithCancel(parent)
}
