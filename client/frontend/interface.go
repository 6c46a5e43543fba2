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

//go:generate mockgen -package $GOPACKAGE -source $GOFILE -destination interface_mock.go -self_package github.com/uber/cadence-external-client/client/frontend

package frontend

import (
	"context"
	"time"

	"go.uber.org/yarpc"

	"github.com/uber/cadence-external-client/common/types"
)

type (
	// Client is the interface exposed by the frontend service for workflow lifecycle calls
	Client interface {
		StartWorkflowExecution(context.Context, *types.StartWorkflowExecutionRequest, ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error)
		StartWorkflowExecutionAsync(context.Context, *types.StartWorkflowExecutionAsyncRequest, ...yarpc.CallOption) (*types.StartWorkflowExecutionAsyncResponse, error)
		SignalWorkflowExecution(context.Context, *types.SignalWorkflowExecutionRequest, ...yarpc.CallOption) error
		SignalWithStartWorkflowExecution(context.Context, *types.SignalWithStartWorkflowExecutionRequest, ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error)
		SignalWithStartWorkflowExecutionAsync(context.Context, *types.SignalWithStartWorkflowExecutionAsyncRequest, ...yarpc.CallOption) (*types.SignalWithStartWorkflowExecutionAsyncResponse, error)
		QueryWorkflow(context.Context, *types.QueryWorkflowRequest, ...yarpc.CallOption) (*types.QueryWorkflowResponse, error)
		RequestCancelWorkflowExecution(context.Context, *types.RequestCancelWorkflowExecutionRequest, ...yarpc.CallOption) error
		TerminateWorkflowExecution(context.Context, *types.TerminateWorkflowExecutionRequest, ...yarpc.CallOption) error
	}

	// AsyncClient issues frontend calls without blocking the caller. Exactly one of
	// the callbacks is invoked per call, on a goroutine owned by the client.
	AsyncClient interface {
		StartWorkflowExecution(
			ctx context.Context,
			request *types.StartWorkflowExecutionRequest,
			onComplete func(*types.StartWorkflowExecutionResponse),
			onError func(error),
		)
		StartWorkflowExecutionWithTimeout(
			ctx context.Context,
			request *types.StartWorkflowExecutionRequest,
			timeout time.Duration,
			onComplete func(*types.StartWorkflowExecutionResponse),
			onError func(error),
		)
		StartWorkflowExecutionAsync(
			ctx context.Context,
			request *types.StartWorkflowExecutionAsyncRequest,
			onComplete func(*types.StartWorkflowExecutionAsyncResponse),
			onError func(error),
		)
		StartWorkflowExecutionAsyncWithTimeout(
			ctx context.Context,
			request *types.StartWorkflowExecutionAsyncRequest,
			timeout time.Duration,
			onComplete func(*types.StartWorkflowExecutionAsyncResponse),
			onError func(error),
		)
		SignalWorkflowExecution(
			ctx context.Context,
			request *types.SignalWorkflowExecutionRequest,
			onComplete func(),
			onError func(error),
		)
		SignalWorkflowExecutionWithTimeout(
			ctx context.Context,
			request *types.SignalWorkflowExecutionRequest,
			timeout time.Duration,
			onComplete func(),
			onError func(error),
		)
	}
)
