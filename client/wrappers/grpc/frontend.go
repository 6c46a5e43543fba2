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

package grpc

import (
	"context"

	"go.uber.org/yarpc"

	"github.com/uber/cadence-external-client/common/types"
	"github.com/uber/cadence-external-client/common/types/mapper/proto"
)

func (g frontendClient) StartWorkflowExecution(ctx context.Context, request *types.StartWorkflowExecutionRequest, opts ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error) {
	response, err := g.c.StartWorkflowExecution(ctx, proto.FromStartWorkflowExecutionRequest(request), opts...)
	return proto.ToStartWorkflowExecutionResponse(response), proto.ToError(err)
}

func (g frontendClient) StartWorkflowExecutionAsync(ctx context.Context, request *types.StartWorkflowExecutionAsyncRequest, opts ...yarpc.CallOption) (*types.StartWorkflowExecutionAsyncResponse, error) {
	response, err := g.c.StartWorkflowExecutionAsync(ctx, proto.FromStartWorkflowExecutionAsyncRequest(request), opts...)
	return proto.ToStartWorkflowExecutionAsyncResponse(response), proto.ToError(err)
}

func (g frontendClient) SignalWorkflowExecution(ctx context.Context, request *types.SignalWorkflowExecutionRequest, opts ...yarpc.CallOption) error {
	_, err := g.c.SignalWorkflowExecution(ctx, proto.FromSignalWorkflowExecutionRequest(request), opts...)
	return proto.ToError(err)
}

func (g frontendClient) SignalWithStartWorkflowExecution(ctx context.Context, request *types.SignalWithStartWorkflowExecutionRequest, opts ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error) {
	response, err := g.c.SignalWithStartWorkflowExecution(ctx, proto.FromSignalWithStartWorkflowExecutionRequest(request), opts...)
	return proto.ToSignalWithStartWorkflowExecutionResponse(response), proto.ToError(err)
}

func (g frontendClient) SignalWithStartWorkflowExecutionAsync(ctx context.Context, request *types.SignalWithStartWorkflowExecutionAsyncRequest, opts ...yarpc.CallOption) (*types.SignalWithStartWorkflowExecutionAsyncResponse, error) {
	response, err := g.c.SignalWithStartWorkflowExecutionAsync(ctx, proto.FromSignalWithStartWorkflowExecutionAsyncRequest(request), opts...)
	return proto.ToSignalWithStartWorkflowExecutionAsyncResponse(response), proto.ToError(err)
}

func (g frontendClient) QueryWorkflow(ctx context.Context, request *types.QueryWorkflowRequest, opts ...yarpc.CallOption) (*types.QueryWorkflowResponse, error) {
	response, err := g.c.QueryWorkflow(ctx, proto.FromQueryWorkflowRequest(request), opts...)
	return proto.ToQueryWorkflowResponse(response), proto.ToError(err)
}

func (g frontendClient) RequestCancelWorkflowExecution(ctx context.Context, request *types.RequestCancelWorkflowExecutionRequest, opts ...yarpc.CallOption) error {
	_, err := g.c.RequestCancelWorkflowExecution(ctx, proto.FromRequestCancelWorkflowExecutionRequest(request), opts...)
	return proto.ToError(err)
}

func (g frontendClient) TerminateWorkflowExecution(ctx context.Context, request *types.TerminateWorkflowExecutionRequest, opts ...yarpc.CallOption) error {
	_, err := g.c.TerminateWorkflowExecution(ctx, proto.FromTerminateWorkflowExecutionRequest(request), opts...)
	return proto.ToError(err)
}
