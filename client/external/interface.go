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

//go:generate mockgen -package $GOPACKAGE -source $GOFILE -destination interface_mock.go -self_package github.com/uber/cadence-external-client/client/external

package external

import (
	"context"
	"time"

	"github.com/uber/cadence-external-client/common/future"
	"github.com/uber/cadence-external-client/common/types"
)

type (
	// Client drives workflow executions of one domain through the frontend service.
	// Every mutating call carries one request id for all of its attempts.
	Client interface {
		// StartWorkflow starts a workflow execution and returns its handle
		StartWorkflow(ctx context.Context, params *StartWorkflowParameters) (*types.WorkflowExecution, error)
		// StartWorkflowAsync is StartWorkflow without blocking. The future resolves to a
		// *types.WorkflowExecution. A positive timeout bounds the whole call including retries.
		StartWorkflowAsync(ctx context.Context, params *StartWorkflowParameters, timeout time.Duration) future.Future
		// EnqueueStartWorkflow queues the start of a workflow execution. The returned handle has no run id.
		EnqueueStartWorkflow(ctx context.Context, params *StartWorkflowParameters) (*types.WorkflowExecution, error)
		// EnqueueStartWorkflowAsync is EnqueueStartWorkflow without blocking
		EnqueueStartWorkflowAsync(ctx context.Context, params *StartWorkflowParameters, timeout time.Duration) future.Future

		SignalWorkflowExecution(ctx context.Context, params *SignalWorkflowParameters) error
		// SignalWorkflowExecutionAsync resolves to nil once the signal is delivered
		SignalWorkflowExecutionAsync(ctx context.Context, params *SignalWorkflowParameters, timeout time.Duration) future.Future

		SignalWithStartWorkflowExecution(ctx context.Context, params *SignalWithStartWorkflowParameters) (*types.WorkflowExecution, error)
		EnqueueSignalWithStartWorkflowExecution(ctx context.Context, params *SignalWithStartWorkflowParameters) (*types.WorkflowExecution, error)

		QueryWorkflow(ctx context.Context, params *QueryWorkflowParameters) (*types.QueryWorkflowResponse, error)
		RequestCancelWorkflowExecution(ctx context.Context, params *CancelWorkflowParameters) error
		TerminateWorkflowExecution(ctx context.Context, params *TerminateWorkflowParameters) error

		// GenerateUniqueID returns a new id from the id generator of the client
		GenerateUniqueID() string
		// Domain returns the domain all requests are sent to
		Domain() string
	}
)
