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

	"go.uber.org/yarpc"

	"github.com/uber/cadence-external-client/common/errors"
	"github.com/uber/cadence-external-client/common/log"
	"github.com/uber/cadence-external-client/common/log/tag"
	"github.com/uber/cadence-external-client/common/types"
)

var _ Client = (*errorInjectionClient)(nil)

const (
	msgInjectedFakeErr = "Injected fake frontend client error"
)

type errorInjectionClient struct {
	client   Client
	injector *errors.FaultInjector
	logger   log.Logger
}

// NewErrorInjectionClient creates a new instance of Client that injects fake error
func NewErrorInjectionClient(
	client Client,
	injector *errors.FaultInjector,
	logger log.Logger,
) Client {
	return &errorInjectionClient{
		client:   client,
		injector: injector,
		logger:   logger,
	}
}

// inject runs call unless a fake error suppresses it and reports which error the
// caller should observe
func (c *errorInjectionClient) inject(operation string, call func() error) error {
	fakeErr := c.injector.GenerateFakeError()

	var clientErr error
	var forwardCall bool
	if forwardCall = c.injector.ShouldForwardCall(fakeErr); forwardCall {
		clientErr = call()
	}

	if fakeErr != nil {
		c.logger.Error(msgInjectedFakeErr,
			tag.Operation(operation),
			tag.Error(fakeErr),
			tag.Bool(forwardCall),
			tag.ClientError(clientErr),
		)
		return fakeErr
	}
	return clientErr
}

func (c *errorInjectionClient) StartWorkflowExecution(
	ctx context.Context,
	request *types.StartWorkflowExecutionRequest,
	opts ...yarpc.CallOption,
) (*types.StartWorkflowExecutionResponse, error) {
	var resp *types.StartWorkflowExecutionResponse
	err := c.inject("StartWorkflowExecution", func() (err error) {
		resp, err = c.client.StartWorkflowExecution(ctx, request, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *errorInjectionClient) StartWorkflowExecutionAsync(
	ctx context.Context,
	request *types.StartWorkflowExecutionAsyncRequest,
	opts ...yarpc.CallOption,
) (*types.StartWorkflowExecutionAsyncResponse, error) {
	var resp *types.StartWorkflowExecutionAsyncResponse
	err := c.inject("StartWorkflowExecutionAsync", func() (err error) {
		resp, err = c.client.StartWorkflowExecutionAsync(ctx, request, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *errorInjectionClient) SignalWorkflowExecution(
	ctx context.Context,
	request *types.SignalWorkflowExecutionRequest,
	opts ...yarpc.CallOption,
) error {
	return c.inject("SignalWorkflowExecution", func() error {
		return c.client.SignalWorkflowExecution(ctx, request, opts...)
	})
}

func (c *errorInjectionClient) SignalWithStartWorkflowExecution(
	ctx context.Context,
	request *types.SignalWithStartWorkflowExecutionRequest,
	opts ...yarpc.CallOption,
) (*types.StartWorkflowExecutionResponse, error) {
	var resp *types.StartWorkflowExecutionResponse
	err := c.inject("SignalWithStartWorkflowExecution", func() (err error) {
		resp, err = c.client.SignalWithStartWorkflowExecution(ctx, request, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *errorInjectionClient) SignalWithStartWorkflowExecutionAsync(
	ctx context.Context,
	request *types.SignalWithStartWorkflowExecutionAsyncRequest,
	opts ...yarpc.CallOption,
) (*types.SignalWithStartWorkflowExecutionAsyncResponse, error) {
	var resp *types.SignalWithStartWorkflowExecutionAsyncResponse
	err := c.inject("SignalWithStartWorkflowExecutionAsync", func() (err error) {
		resp, err = c.client.SignalWithStartWorkflowExecutionAsync(ctx, request, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *errorInjectionClient) QueryWorkflow(
	ctx context.Context,
	request *types.QueryWorkflowRequest,
	opts ...yarpc.CallOption,
) (*types.QueryWorkflowResponse, error) {
	var resp *types.QueryWorkflowResponse
	err := c.inject("QueryWorkflow", func() (err error) {
		resp, err = c.client.QueryWorkflow(ctx, request, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *errorInjectionClient) RequestCancelWorkflowExecution(
	ctx context.Context,
	request *types.RequestCancelWorkflowExecutionRequest,
	opts ...yarpc.CallOption,
) error {
	return c.inject("RequestCancelWorkflowExecution", func() error {
		return c.client.RequestCancelWorkflowExecution(ctx, request, opts...)
	})
}

func (c *errorInjectionClient) TerminateWorkflowExecution(
	ctx context.Context,
	request *types.TerminateWorkflowExecutionRequest,
	opts ...yarpc.CallOption,
) error {
	return c.inject("TerminateWorkflowExecution", func() error {
		return c.client.TerminateWorkflowExecution(ctx, request, opts...)
	})
}
