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

package thrift

import (
	"context"

	"go.uber.org/yarpc"

	"github.com/uber/cadence-external-client/common/types"
	"github.com/uber/cadence-external-client/common/types/mapper/thrift"
)

// errAsyncNotSupported is returned for the enqueue calls, which the thrift
// WorkflowService does not expose
var errAsyncNotSupported = &types.BadRequestError{Message: "async workflow APIs are not supported over thrift, use the grpc transport"}

func (g frontendClient) StartWorkflowExecution(ctx context.Context, request *types.StartWorkflowExecutionRequest, opts ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error) {
	response, err := g.c.StartWorkflowExecution(ctx, thrift.FromStartWorkflowExecutionRequest(request), opts...)
	return thrift.ToStartWorkflowExecutionResponse(response), thrift.ToError(err)
}

func (g frontendClient) StartWorkflowExecutionAsync(ctx context.Context, request *types.StartWorkflowExecutionAsyncRequest, opts ...yarpc.CallOption) (*types.StartWorkflowExecutionAsyncResponse, error) {
	return nil, errAsyncNotSupported
}

func (g frontendClient) SignalWorkflowExecution(ctx context.Context, request *types.SignalWorkflowExecutionRequest, opts ...yarpc.CallOption) error {
	err := g.c.SignalWorkflowExecution(ctx, thrift.FromSignalWorkflowExecutionRequest(request), opts...)
	return thrift.ToError(err)
}

func (g frontendClient) SignalWithStartWorkflowExecution(ctx context.Context, request *types.SignalWithStartWorkflowExecutionRequest, opts ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error) {
	response, err := g.c.SignalWithStartWorkflowExecution(ctx, thrift.FromSignalWithStartWorkflowExecutionRequest(request), opts...)
	return thrift.ToStartWorkflowExecutionResponse(response), thrift.ToError(err)
}

func (g frontendClient) SignalWithStartWorkflowExecutionAsync(ctx context.Context, request *types.SignalWithStartWorkflowExecutionAsyncRequest, opts ...yarpc.CallOption) (*types.SignalWithStartWorkflowExecutionAsyncResponse, error) {
	return nil, errAsyncNotSupported
}

func (g frontendClient) QueryWorkflow(ctx context.Context, request *types.QueryWorkflowRequest, opts ...yarpc.CallOption) (*types.QueryWorkflowResponse, error) {
	response, err := g.c.QueryWorkflow(ctx, thrift.FromQueryWorkflowRequest(request), opts...)
	return thrift.ToQueryWorkflowResponse(response), thrift.ToError(err)
}

func (g frontendClient) RequestCancelWorkflowExecution(ctx context.Context, request *types.RequestCancelWorkflowExecutionRequest, opts ...yarpc.CallOption) error {
	err := g.c.RequestCancelWorkflowExecution(ctx, thrift.FromRequestCancelWorkflowExecutionRequest(request), opts...)
	return thrift.ToError(err)
}

func (g frontendClient) TerminateWorkflowExecution(ctx context.Context, request *types.TerminateWorkflowExecutionRequest, opts ...yarpc.CallOption) error {
	err := g.c.TerminateWorkflowExecution(ctx, thrift.FromTerminateWorkflowExecutionRequest(request), opts...)
	return thrift.ToError(err)
}
