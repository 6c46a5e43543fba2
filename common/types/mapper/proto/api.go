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

package proto

import (
	apiv1 "github.com/uber/cadence-idl/go/proto/api/v1"

	"github.com/uber/cadence-external-client/common/types"
)

// Requests only travel from this client to the frontend, so only the From
// direction is mapped for them and only the To direction for responses.

func FromStartWorkflowExecutionRequest(t *types.StartWorkflowExecutionRequest) *apiv1.StartWorkflowExecutionRequest {
	if t == nil {
		return nil
	}
	return &apiv1.StartWorkflowExecutionRequest{
		Domain:                       t.Domain,
		WorkflowId:                   t.WorkflowID,
		WorkflowType:                 FromWorkflowType(t.WorkflowType),
		TaskList:                     FromTaskList(t.TaskList),
		Input:                        FromPayload(t.Input),
		ExecutionStartToCloseTimeout: secondsToDuration(t.ExecutionStartToCloseTimeoutSeconds),
		TaskStartToCloseTimeout:      secondsToDuration(t.TaskStartToCloseTimeoutSeconds),
		Identity:                     t.Identity,
		RequestId:                    t.RequestID,
		WorkflowIdReusePolicy:        FromWorkflowIDReusePolicy(t.WorkflowIDReusePolicy),
		RetryPolicy:                  FromRetryPolicy(t.RetryPolicy),
		CronSchedule:                 t.CronSchedule,
		Memo:                         FromMemo(t.Memo),
		SearchAttributes:             FromSearchAttributes(t.SearchAttributes),
		Header:                       FromHeader(t.Header),
		DelayStart:                   secondsToDuration(t.DelayStartSeconds),
		JitterStart:                  secondsToDuration(t.JitterStartSeconds),
	}
}

func ToStartWorkflowExecutionResponse(t *apiv1.StartWorkflowExecutionResponse) *types.StartWorkflowExecutionResponse {
	if t == nil {
		return nil
	}
	return &types.StartWorkflowExecutionResponse{
		RunID: t.RunId,
	}
}

func FromStartWorkflowExecutionAsyncRequest(t *types.StartWorkflowExecutionAsyncRequest) *apiv1.StartWorkflowExecutionAsyncRequest {
	if t == nil {
		return nil
	}
	return &apiv1.StartWorkflowExecutionAsyncRequest{
		Request: FromStartWorkflowExecutionRequest(t.StartWorkflowExecutionRequest),
	}
}

func ToStartWorkflowExecutionAsyncResponse(t *apiv1.StartWorkflowExecutionAsyncResponse) *types.StartWorkflowExecutionAsyncResponse {
	if t == nil {
		return nil
	}
	return &types.StartWorkflowExecutionAsyncResponse{}
}

func FromSignalWorkflowExecutionRequest(t *types.SignalWorkflowExecutionRequest) *apiv1.SignalWorkflowExecutionRequest {
	if t == nil {
		return nil
	}
	return &apiv1.SignalWorkflowExecutionRequest{
		Domain:            t.Domain,
		WorkflowExecution: FromWorkflowExecution(t.WorkflowExecution),
		SignalName:        t.SignalName,
		SignalInput:       FromPayload(t.Input),
		Identity:          t.Identity,
		RequestId:         t.RequestID,
		Control:           t.Control,
	}
}

// FromSignalWithStartWorkflowExecutionRequest nests the start portion of the
// flat request into the StartRequest envelope the API expects.
func FromSignalWithStartWorkflowExecutionRequest(t *types.SignalWithStartWorkflowExecutionRequest) *apiv1.SignalWithStartWorkflowExecutionRequest {
	if t == nil {
		return nil
	}
	return &apiv1.SignalWithStartWorkflowExecutionRequest{
		StartRequest: FromStartWorkflowExecutionRequest(&types.StartWorkflowExecutionRequest{
			Domain:                              t.Domain,
			WorkflowID:                          t.WorkflowID,
			WorkflowType:                        t.WorkflowType,
			TaskList:                            t.TaskList,
			Input:                               t.Input,
			ExecutionStartToCloseTimeoutSeconds: t.ExecutionStartToCloseTimeoutSeconds,
			TaskStartToCloseTimeoutSeconds:      t.TaskStartToCloseTimeoutSeconds,
			Identity:                            t.Identity,
			RequestID:                           t.RequestID,
			WorkflowIDReusePolicy:               t.WorkflowIDReusePolicy,
			RetryPolicy:                         t.RetryPolicy,
			CronSchedule:                        t.CronSchedule,
			Memo:                                t.Memo,
			SearchAttributes:                    t.SearchAttributes,
			Header:                              t.Header,
			DelayStartSeconds:                   t.DelayStartSeconds,
			JitterStartSeconds:                  t.JitterStartSeconds,
		}),
		SignalName:  t.SignalName,
		SignalInput: FromPayload(t.SignalInput),
		Control:     t.Control,
	}
}

func ToSignalWithStartWorkflowExecutionResponse(t *apiv1.SignalWithStartWorkflowExecutionResponse) *types.StartWorkflowExecutionResponse {
	if t == nil {
		return nil
	}
	return &types.StartWorkflowExecutionResponse{
		RunID: t.RunId,
	}
}

func FromSignalWithStartWorkflowExecutionAsyncRequest(t *types.SignalWithStartWorkflowExecutionAsyncRequest) *apiv1.SignalWithStartWorkflowExecutionAsyncRequest {
	if t == nil {
		return nil
	}
	return &apiv1.SignalWithStartWorkflowExecutionAsyncRequest{
		Request: FromSignalWithStartWorkflowExecutionRequest(t.SignalWithStartWorkflowExecutionRequest),
	}
}

func ToSignalWithStartWorkflowExecutionAsyncResponse(t *apiv1.SignalWithStartWorkflowExecutionAsyncResponse) *types.SignalWithStartWorkflowExecutionAsyncResponse {
	if t == nil {
		return nil
	}
	return &types.SignalWithStartWorkflowExecutionAsyncResponse{}
}

func FromQueryWorkflowRequest(t *types.QueryWorkflowRequest) *apiv1.QueryWorkflowRequest {
	if t == nil {
		return nil
	}
	return &apiv1.QueryWorkflowRequest{
		Domain:                t.Domain,
		WorkflowExecution:     FromWorkflowExecution(t.Execution),
		Query:                 FromWorkflowQuery(t.Query),
		QueryRejectCondition:  FromQueryRejectCondition(t.QueryRejectCondition),
		QueryConsistencyLevel: FromQueryConsistencyLevel(t.QueryConsistencyLevel),
	}
}

func ToQueryWorkflowResponse(t *apiv1.QueryWorkflowResponse) *types.QueryWorkflowResponse {
	if t == nil {
		return nil
	}
	return &types.QueryWorkflowResponse{
		QueryResult:   ToPayload(t.QueryResult),
		QueryRejected: ToQueryRejected(t.QueryRejected),
	}
}

func FromRequestCancelWorkflowExecutionRequest(t *types.RequestCancelWorkflowExecutionRequest) *apiv1.RequestCancelWorkflowExecutionRequest {
	if t == nil {
		return nil
	}
	return &apiv1.RequestCancelWorkflowExecutionRequest{
		Domain:              t.Domain,
		WorkflowExecution:   FromWorkflowExecution(t.WorkflowExecution),
		Identity:            t.Identity,
		RequestId:           t.RequestID,
		Cause:               t.Cause,
		FirstExecutionRunId: t.FirstExecutionRunID,
	}
}

func FromTerminateWorkflowExecutionRequest(t *types.TerminateWorkflowExecutionRequest) *apiv1.TerminateWorkflowExecutionRequest {
	if t == nil {
		return nil
	}
	return &apiv1.TerminateWorkflowExecutionRequest{
		Domain:              t.Domain,
		WorkflowExecution:   FromWorkflowExecution(t.WorkflowExecution),
		Reason:              t.Reason,
		Details:             FromPayload(t.Details),
		Identity:            t.Identity,
		FirstExecutionRunId: t.FirstExecutionRunID,
	}
}
