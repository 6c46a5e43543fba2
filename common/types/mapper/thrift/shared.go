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
	"go.uber.org/cadence/.gen/go/shared"
	"go.uber.org/thriftrw/ptr"

	"github.com/uber/cadence-external-client/common/types"
)

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.String(s)
}

func optionalInt32(v int32) *int32 {
	if v == 0 {
		return nil
	}
	return ptr.Int32(v)
}

// FromWorkflowType converts internal WorkflowType type to thrift
func FromWorkflowType(t *types.WorkflowType) *shared.WorkflowType {
	if t == nil {
		return nil
	}
	return &shared.WorkflowType{
		Name: ptr.String(t.Name),
	}
}

// FromTaskList converts internal TaskList type to thrift
func FromTaskList(t *types.TaskList) *shared.TaskList {
	if t == nil {
		return nil
	}
	return &shared.TaskList{
		Name: ptr.String(t.Name),
		Kind: FromTaskListKind(t.Kind),
	}
}

// FromTaskListKind converts internal TaskListKind type to thrift
func FromTaskListKind(t *types.TaskListKind) *shared.TaskListKind {
	if t == nil {
		return nil
	}
	switch *t {
	case types.TaskListKindNormal:
		v := shared.TaskListKindNormal
		return &v
	case types.TaskListKindSticky:
		v := shared.TaskListKindSticky
		return &v
	}
	panic("unexpected enum value")
}

// FromWorkflowExecution converts internal WorkflowExecution type to thrift
func FromWorkflowExecution(t *types.WorkflowExecution) *shared.WorkflowExecution {
	if t == nil {
		return nil
	}
	return &shared.WorkflowExecution{
		WorkflowId: ptr.String(t.WorkflowID),
		RunId:      optionalString(t.RunID),
	}
}

// FromRetryPolicy converts internal RetryPolicy type to thrift
func FromRetryPolicy(t *types.RetryPolicy) *shared.RetryPolicy {
	if t == nil {
		return nil
	}
	return &shared.RetryPolicy{
		InitialIntervalInSeconds:    ptr.Int32(t.InitialIntervalInSeconds),
		BackoffCoefficient:          ptr.Float64(t.BackoffCoefficient),
		MaximumIntervalInSeconds:    optionalInt32(t.MaximumIntervalInSeconds),
		MaximumAttempts:             optionalInt32(t.MaximumAttempts),
		NonRetriableErrorReasons:    t.NonRetriableErrorReasons,
		ExpirationIntervalInSeconds: optionalInt32(t.ExpirationIntervalInSeconds),
	}
}

// FromMemo converts internal Memo type to thrift
func FromMemo(t *types.Memo) *shared.Memo {
	if t == nil {
		return nil
	}
	return &shared.Memo{
		Fields: t.Fields,
	}
}

// FromSearchAttributes converts internal SearchAttributes type to thrift
func FromSearchAttributes(t *types.SearchAttributes) *shared.SearchAttributes {
	if t == nil {
		return nil
	}
	return &shared.SearchAttributes{
		IndexedFields: t.IndexedFields,
	}
}

// FromHeader converts internal Header type to thrift
func FromHeader(t *types.Header) *shared.Header {
	if t == nil {
		return nil
	}
	return &shared.Header{
		Fields: t.Fields,
	}
}

// FromWorkflowIDReusePolicy converts internal WorkflowIDReusePolicy type to thrift
func FromWorkflowIDReusePolicy(t *types.WorkflowIDReusePolicy) *shared.WorkflowIdReusePolicy {
	if t == nil {
		return nil
	}
	var v shared.WorkflowIdReusePolicy
	switch *t {
	case types.WorkflowIDReusePolicyAllowDuplicateFailedOnly:
		v = shared.WorkflowIdReusePolicyAllowDuplicateFailedOnly
	case types.WorkflowIDReusePolicyAllowDuplicate:
		v = shared.WorkflowIdReusePolicyAllowDuplicate
	case types.WorkflowIDReusePolicyRejectDuplicate:
		v = shared.WorkflowIdReusePolicyRejectDuplicate
	case types.WorkflowIDReusePolicyTerminateIfRunning:
		v = shared.WorkflowIdReusePolicyTerminateIfRunning
	default:
		panic("unexpected enum value")
	}
	return &v
}

// FromQueryRejectCondition converts internal QueryRejectCondition type to thrift
func FromQueryRejectCondition(t *types.QueryRejectCondition) *shared.QueryRejectCondition {
	if t == nil {
		return nil
	}
	var v shared.QueryRejectCondition
	switch *t {
	case types.QueryRejectConditionNotOpen:
		v = shared.QueryRejectConditionNotOpen
	case types.QueryRejectConditionNotCompletedCleanly:
		v = shared.QueryRejectConditionNotCompletedCleanly
	default:
		panic("unexpected enum value")
	}
	return &v
}

// FromQueryConsistencyLevel converts internal QueryConsistencyLevel type to thrift
func FromQueryConsistencyLevel(t *types.QueryConsistencyLevel) *shared.QueryConsistencyLevel {
	if t == nil {
		return nil
	}
	var v shared.QueryConsistencyLevel
	switch *t {
	case types.QueryConsistencyLevelEventual:
		v = shared.QueryConsistencyLevelEventual
	case types.QueryConsistencyLevelStrong:
		v = shared.QueryConsistencyLevelStrong
	default:
		panic("unexpected enum value")
	}
	return &v
}

// ToWorkflowExecutionCloseStatus converts thrift WorkflowExecutionCloseStatus type to internal
func ToWorkflowExecutionCloseStatus(t *shared.WorkflowExecutionCloseStatus) *types.WorkflowExecutionCloseStatus {
	if t == nil {
		return nil
	}
	switch *t {
	case shared.WorkflowExecutionCloseStatusCompleted:
		return types.WorkflowExecutionCloseStatusCompleted.Ptr()
	case shared.WorkflowExecutionCloseStatusFailed:
		return types.WorkflowExecutionCloseStatusFailed.Ptr()
	case shared.WorkflowExecutionCloseStatusCanceled:
		return types.WorkflowExecutionCloseStatusCanceled.Ptr()
	case shared.WorkflowExecutionCloseStatusTerminated:
		return types.WorkflowExecutionCloseStatusTerminated.Ptr()
	case shared.WorkflowExecutionCloseStatusContinuedAsNew:
		return types.WorkflowExecutionCloseStatusContinuedAsNew.Ptr()
	case shared.WorkflowExecutionCloseStatusTimedOut:
		return types.WorkflowExecutionCloseStatusTimedOut.Ptr()
	}
	panic("unexpected enum value")
}

// FromStartWorkflowExecutionRequest converts internal StartWorkflowExecutionRequest type to thrift
func FromStartWorkflowExecutionRequest(t *types.StartWorkflowExecutionRequest) *shared.StartWorkflowExecutionRequest {
	if t == nil {
		return nil
	}
	return &shared.StartWorkflowExecutionRequest{
		Domain:                              ptr.String(t.Domain),
		WorkflowId:                          ptr.String(t.WorkflowID),
		WorkflowType:                        FromWorkflowType(t.WorkflowType),
		TaskList:                            FromTaskList(t.TaskList),
		Input:                               t.Input,
		ExecutionStartToCloseTimeoutSeconds: t.ExecutionStartToCloseTimeoutSeconds,
		TaskStartToCloseTimeoutSeconds:      t.TaskStartToCloseTimeoutSeconds,
		Identity:                            ptr.String(t.Identity),
		RequestId:                           ptr.String(t.RequestID),
		WorkflowIdReusePolicy:               FromWorkflowIDReusePolicy(t.WorkflowIDReusePolicy),
		RetryPolicy:                         FromRetryPolicy(t.RetryPolicy),
		CronSchedule:                        optionalString(t.CronSchedule),
		Memo:                                FromMemo(t.Memo),
		SearchAttributes:                    FromSearchAttributes(t.SearchAttributes),
		Header:                              FromHeader(t.Header),
		DelayStartSeconds:                   t.DelayStartSeconds,
		JitterStartSeconds:                  t.JitterStartSeconds,
	}
}

// ToStartWorkflowExecutionResponse converts thrift StartWorkflowExecutionResponse type to internal
func ToStartWorkflowExecutionResponse(t *shared.StartWorkflowExecutionResponse) *types.StartWorkflowExecutionResponse {
	if t == nil {
		return nil
	}
	return &types.StartWorkflowExecutionResponse{
		RunID: t.GetRunId(),
	}
}

// FromSignalWorkflowExecutionRequest converts internal SignalWorkflowExecutionRequest type to thrift
func FromSignalWorkflowExecutionRequest(t *types.SignalWorkflowExecutionRequest) *shared.SignalWorkflowExecutionRequest {
	if t == nil {
		return nil
	}
	return &shared.SignalWorkflowExecutionRequest{
		Domain:            ptr.String(t.Domain),
		WorkflowExecution: FromWorkflowExecution(t.WorkflowExecution),
		SignalName:        ptr.String(t.SignalName),
		Input:             t.Input,
		Identity:          ptr.String(t.Identity),
		RequestId:         ptr.String(t.RequestID),
		Control:           t.Control,
	}
}

// FromSignalWithStartWorkflowExecutionRequest converts internal SignalWithStartWorkflowExecutionRequest type to thrift
func FromSignalWithStartWorkflowExecutionRequest(t *types.SignalWithStartWorkflowExecutionRequest) *shared.SignalWithStartWorkflowExecutionRequest {
	if t == nil {
		return nil
	}
	return &shared.SignalWithStartWorkflowExecutionRequest{
		Domain:                              ptr.String(t.Domain),
		WorkflowId:                          ptr.String(t.WorkflowID),
		WorkflowType:                        FromWorkflowType(t.WorkflowType),
		TaskList:                            FromTaskList(t.TaskList),
		Input:                               t.Input,
		ExecutionStartToCloseTimeoutSeconds: t.ExecutionStartToCloseTimeoutSeconds,
		TaskStartToCloseTimeoutSeconds:      t.TaskStartToCloseTimeoutSeconds,
		Identity:                            ptr.String(t.Identity),
		RequestId:                           ptr.String(t.RequestID),
		WorkflowIdReusePolicy:               FromWorkflowIDReusePolicy(t.WorkflowIDReusePolicy),
		SignalName:                          ptr.String(t.SignalName),
		SignalInput:                         t.SignalInput,
		Control:                             t.Control,
		RetryPolicy:                         FromRetryPolicy(t.RetryPolicy),
		CronSchedule:                        optionalString(t.CronSchedule),
		Memo:                                FromMemo(t.Memo),
		SearchAttributes:                    FromSearchAttributes(t.SearchAttributes),
		Header:                              FromHeader(t.Header),
		DelayStartSeconds:                   t.DelayStartSeconds,
		JitterStartSeconds:                  t.JitterStartSeconds,
	}
}

// FromQueryWorkflowRequest converts internal QueryWorkflowRequest type to thrift
func FromQueryWorkflowRequest(t *types.QueryWorkflowRequest) *shared.QueryWorkflowRequest {
	if t == nil {
		return nil
	}
	var query *shared.WorkflowQuery
	if t.Query != nil {
		query = &shared.WorkflowQuery{
			QueryType: ptr.String(t.Query.QueryType),
			QueryArgs: t.Query.QueryArgs,
		}
	}
	return &shared.QueryWorkflowRequest{
		Domain:                ptr.String(t.Domain),
		Execution:             FromWorkflowExecution(t.Execution),
		Query:                 query,
		QueryRejectCondition:  FromQueryRejectCondition(t.QueryRejectCondition),
		QueryConsistencyLevel: FromQueryConsistencyLevel(t.QueryConsistencyLevel),
	}
}

// ToQueryWorkflowResponse converts thrift QueryWorkflowResponse type to internal
func ToQueryWorkflowResponse(t *shared.QueryWorkflowResponse) *types.QueryWorkflowResponse {
	if t == nil {
		return nil
	}
	var rejected *types.QueryRejected
	if t.QueryRejected != nil {
		rejected = &types.QueryRejected{
			CloseStatus: ToWorkflowExecutionCloseStatus(t.QueryRejected.CloseStatus),
		}
	}
	return &types.QueryWorkflowResponse{
		QueryResult:   t.QueryResult,
		QueryRejected: rejected,
	}
}

// FromRequestCancelWorkflowExecutionRequest converts internal RequestCancelWorkflowExecutionRequest type to thrift
func FromRequestCancelWorkflowExecutionRequest(t *types.RequestCancelWorkflowExecutionRequest) *shared.RequestCancelWorkflowExecutionRequest {
	if t == nil {
		return nil
	}
	return &shared.RequestCancelWorkflowExecutionRequest{
		Domain:              ptr.String(t.Domain),
		WorkflowExecution:   FromWorkflowExecution(t.WorkflowExecution),
		Identity:            ptr.String(t.Identity),
		RequestId:           ptr.String(t.RequestID),
		Cause:               optionalString(t.Cause),
		FirstExecutionRunID: optionalString(t.FirstExecutionRunID),
	}
}

// FromTerminateWorkflowExecutionRequest converts internal TerminateWorkflowExecutionRequest type to thrift
func FromTerminateWorkflowExecutionRequest(t *types.TerminateWorkflowExecutionRequest) *shared.TerminateWorkflowExecutionRequest {
	if t == nil {
		return nil
	}
	return &shared.TerminateWorkflowExecutionRequest{
		Domain:              ptr.String(t.Domain),
		WorkflowExecution:   FromWorkflowExecution(t.WorkflowExecution),
		Reason:              optionalString(t.Reason),
		Details:             t.Details,
		Identity:            ptr.String(t.Identity),
		FirstExecutionRunID: optionalString(t.FirstExecutionRunID),
	}
}
