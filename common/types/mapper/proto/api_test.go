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
	"testing"
	"time"

	gogo "github.com/gogo/protobuf/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apiv1 "github.com/uber/cadence-idl/go/proto/api/v1"

	"github.com/uber/cadence-external-client/common"
	"github.com/uber/cadence-external-client/common/types"
)

func testStartRequest() *types.StartWorkflowExecutionRequest {
	return &types.StartWorkflowExecutionRequest{
		Domain:                              "domain",
		WorkflowID:                          "wid",
		WorkflowType:                        &types.WorkflowType{Name: "wtype"},
		TaskList:                            &types.TaskList{Name: "tl", Kind: types.TaskListKindNormal.Ptr()},
		Input:                               []byte("input"),
		ExecutionStartToCloseTimeoutSeconds: common.Int32Ptr(60),
		TaskStartToCloseTimeoutSeconds:      common.Int32Ptr(10),
		Identity:                            "identity",
		RequestID:                           "request-id",
		WorkflowIDReusePolicy:               types.WorkflowIDReusePolicyRejectDuplicate.Ptr(),
		RetryPolicy: &types.RetryPolicy{
			InitialIntervalInSeconds: 1,
			BackoffCoefficient:       2,
			MaximumAttempts:          3,
			NonRetriableErrorReasons: []string{"bad"},
		},
		CronSchedule:       "* * * * *",
		Memo:               &types.Memo{Fields: map[string][]byte{"m": []byte("v")}},
		SearchAttributes:   &types.SearchAttributes{IndexedFields: map[string][]byte{"s": []byte("v")}},
		Header:             &types.Header{Fields: map[string][]byte{"h": []byte("v")}},
		DelayStartSeconds:  common.Int32Ptr(5),
		JitterStartSeconds: common.Int32Ptr(2),
	}
}

func TestFromStartWorkflowExecutionRequest(t *testing.T) {
	assert.Nil(t, FromStartWorkflowExecutionRequest(nil))

	req := FromStartWorkflowExecutionRequest(testStartRequest())
	require.NotNil(t, req)
	assert.Equal(t, "domain", req.Domain)
	assert.Equal(t, "wid", req.WorkflowId)
	assert.Equal(t, "wtype", req.WorkflowType.Name)
	assert.Equal(t, "tl", req.TaskList.Name)
	assert.Equal(t, apiv1.TaskListKind_TASK_LIST_KIND_NORMAL, req.TaskList.Kind)
	assert.Equal(t, []byte("input"), req.Input.Data)
	assert.Equal(t, gogo.DurationProto(time.Minute), req.ExecutionStartToCloseTimeout)
	assert.Equal(t, gogo.DurationProto(10*time.Second), req.TaskStartToCloseTimeout)
	assert.Equal(t, "request-id", req.RequestId)
	assert.Equal(t, apiv1.WorkflowIdReusePolicy_WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE, req.WorkflowIdReusePolicy)
	assert.Equal(t, gogo.DurationProto(time.Second), req.RetryPolicy.InitialInterval)
	assert.Nil(t, req.RetryPolicy.MaximumInterval)
	assert.Equal(t, int32(3), req.RetryPolicy.MaximumAttempts)
	assert.Equal(t, []string{"bad"}, req.RetryPolicy.NonRetryableErrorReasons)
	assert.Equal(t, "* * * * *", req.CronSchedule)
	assert.Equal(t, []byte("v"), req.Memo.Fields["m"].Data)
	assert.Equal(t, []byte("v"), req.SearchAttributes.IndexedFields["s"].Data)
	assert.Equal(t, []byte("v"), req.Header.Fields["h"].Data)
	assert.Equal(t, gogo.DurationProto(5*time.Second), req.DelayStart)
	assert.Equal(t, gogo.DurationProto(2*time.Second), req.JitterStart)
}

func TestFromStartWorkflowExecutionRequest_OptionalFieldsAbsent(t *testing.T) {
	req := FromStartWorkflowExecutionRequest(&types.StartWorkflowExecutionRequest{
		Domain:     "domain",
		WorkflowID: "wid",
	})
	assert.Nil(t, req.Input)
	assert.Nil(t, req.ExecutionStartToCloseTimeout)
	assert.Nil(t, req.RetryPolicy)
	assert.Nil(t, req.Memo)
	assert.Nil(t, req.DelayStart)
	assert.Equal(t, apiv1.WorkflowIdReusePolicy_WORKFLOW_ID_REUSE_POLICY_INVALID, req.WorkflowIdReusePolicy)
}

func TestFromSignalWithStartWorkflowExecutionRequest(t *testing.T) {
	start := testStartRequest()
	req := FromSignalWithStartWorkflowExecutionRequest(&types.SignalWithStartWorkflowExecutionRequest{
		Domain:                              start.Domain,
		WorkflowID:                          start.WorkflowID,
		WorkflowType:                        start.WorkflowType,
		TaskList:                            start.TaskList,
		Input:                               start.Input,
		ExecutionStartToCloseTimeoutSeconds: start.ExecutionStartToCloseTimeoutSeconds,
		TaskStartToCloseTimeoutSeconds:      start.TaskStartToCloseTimeoutSeconds,
		Identity:                            start.Identity,
		RequestID:                           start.RequestID,
		WorkflowIDReusePolicy:               start.WorkflowIDReusePolicy,
		SignalName:                          "signal",
		SignalInput:                         []byte("signal-input"),
		Control:                             []byte("control"),
		RetryPolicy:                         start.RetryPolicy,
		CronSchedule:                        start.CronSchedule,
		Memo:                                start.Memo,
		SearchAttributes:                    start.SearchAttributes,
		Header:                              start.Header,
		DelayStartSeconds:                   start.DelayStartSeconds,
		JitterStartSeconds:                  start.JitterStartSeconds,
	})
	require.NotNil(t, req)
	assert.Equal(t, FromStartWorkflowExecutionRequest(start), req.StartRequest)
	assert.Equal(t, "signal", req.SignalName)
	assert.Equal(t, []byte("signal-input"), req.SignalInput.Data)
	assert.Equal(t, []byte("control"), req.Control)

	async := FromSignalWithStartWorkflowExecutionAsyncRequest(&types.SignalWithStartWorkflowExecutionAsyncRequest{
		SignalWithStartWorkflowExecutionRequest: &types.SignalWithStartWorkflowExecutionRequest{Domain: "domain", SignalName: "signal"},
	})
	assert.Equal(t, "domain", async.Request.StartRequest.Domain)
	assert.Equal(t, "signal", async.Request.SignalName)
}

func TestFromStartWorkflowExecutionAsyncRequest(t *testing.T) {
	assert.Nil(t, FromStartWorkflowExecutionAsyncRequest(nil))
	req := FromStartWorkflowExecutionAsyncRequest(&types.StartWorkflowExecutionAsyncRequest{
		StartWorkflowExecutionRequest: testStartRequest(),
	})
	assert.Equal(t, FromStartWorkflowExecutionRequest(testStartRequest()), req.Request)
	assert.NotNil(t, ToStartWorkflowExecutionAsyncResponse(&apiv1.StartWorkflowExecutionAsyncResponse{}))
	assert.NotNil(t, ToSignalWithStartWorkflowExecutionAsyncResponse(&apiv1.SignalWithStartWorkflowExecutionAsyncResponse{}))
}

func TestResponses(t *testing.T) {
	assert.Nil(t, ToStartWorkflowExecutionResponse(nil))
	assert.Equal(t, "run", ToStartWorkflowExecutionResponse(&apiv1.StartWorkflowExecutionResponse{RunId: "run"}).RunID)
	assert.Equal(t, "run", ToSignalWithStartWorkflowExecutionResponse(&apiv1.SignalWithStartWorkflowExecutionResponse{RunId: "run"}).RunID)

	resp := ToQueryWorkflowResponse(&apiv1.QueryWorkflowResponse{
		QueryResult: &apiv1.Payload{Data: []byte("result")},
		QueryRejected: &apiv1.QueryRejected{
			CloseStatus: apiv1.WorkflowExecutionCloseStatus_WORKFLOW_EXECUTION_CLOSE_STATUS_FAILED,
		},
	})
	assert.Equal(t, []byte("result"), resp.QueryResult)
	assert.Equal(t, types.WorkflowExecutionCloseStatusFailed, *resp.QueryRejected.CloseStatus)

	empty := ToQueryWorkflowResponse(&apiv1.QueryWorkflowResponse{QueryResult: &apiv1.Payload{}})
	assert.Equal(t, []byte{}, empty.QueryResult)
	assert.Nil(t, empty.QueryRejected)
}

func TestFromSignalQueryCancelTerminate(t *testing.T) {
	exec := &types.WorkflowExecution{WorkflowID: "wid", RunID: "rid"}

	signal := FromSignalWorkflowExecutionRequest(&types.SignalWorkflowExecutionRequest{
		Domain:            "domain",
		WorkflowExecution: exec,
		SignalName:        "signal",
		Input:             []byte("in"),
		Identity:          "id",
		RequestID:         "req",
		Control:           []byte("ctl"),
	})
	assert.Equal(t, &apiv1.WorkflowExecution{WorkflowId: "wid", RunId: "rid"}, signal.WorkflowExecution)
	assert.Equal(t, []byte("in"), signal.SignalInput.Data)
	assert.Equal(t, "req", signal.RequestId)
	assert.Equal(t, []byte("ctl"), signal.Control)

	query := FromQueryWorkflowRequest(&types.QueryWorkflowRequest{
		Domain:                "domain",
		Execution:             exec,
		Query:                 &types.WorkflowQuery{QueryType: "state", QueryArgs: []byte("args")},
		QueryRejectCondition:  types.QueryRejectConditionNotCompletedCleanly.Ptr(),
		QueryConsistencyLevel: types.QueryConsistencyLevelStrong.Ptr(),
	})
	assert.Equal(t, "state", query.Query.QueryType)
	assert.Equal(t, []byte("args"), query.Query.QueryArgs.Data)
	assert.Equal(t, apiv1.QueryRejectCondition_QUERY_REJECT_CONDITION_NOT_COMPLETED_CLEANLY, query.QueryRejectCondition)
	assert.Equal(t, apiv1.QueryConsistencyLevel_QUERY_CONSISTENCY_LEVEL_STRONG, query.QueryConsistencyLevel)

	cancel := FromRequestCancelWorkflowExecutionRequest(&types.RequestCancelWorkflowExecutionRequest{
		Domain:              "domain",
		WorkflowExecution:   exec,
		RequestID:           "req",
		Cause:               "cause",
		FirstExecutionRunID: "first",
	})
	assert.Equal(t, "cause", cancel.Cause)
	assert.Equal(t, "first", cancel.FirstExecutionRunId)
	assert.Equal(t, "req", cancel.RequestId)

	terminate := FromTerminateWorkflowExecutionRequest(&types.TerminateWorkflowExecutionRequest{
		Domain:            "domain",
		WorkflowExecution: exec,
		Reason:            "reason",
		Details:           []byte("details"),
	})
	assert.Equal(t, "reason", terminate.Reason)
	assert.Equal(t, []byte("details"), terminate.Details.Data)
	assert.Equal(t, "", terminate.FirstExecutionRunId)
}

func TestEnums(t *testing.T) {
	for _, v := range []types.WorkflowIDReusePolicy{
		types.WorkflowIDReusePolicyAllowDuplicateFailedOnly,
		types.WorkflowIDReusePolicyAllowDuplicate,
		types.WorkflowIDReusePolicyRejectDuplicate,
		types.WorkflowIDReusePolicyTerminateIfRunning,
	} {
		assert.Equal(t, v, *ToWorkflowIDReusePolicy(FromWorkflowIDReusePolicy(v.Ptr())))
	}
	assert.Nil(t, ToWorkflowIDReusePolicy(FromWorkflowIDReusePolicy(nil)))
	assert.Panics(t, func() { FromWorkflowIDReusePolicy(types.WorkflowIDReusePolicy(42).Ptr()) })

	for _, v := range []types.WorkflowExecutionCloseStatus{
		types.WorkflowExecutionCloseStatusCompleted,
		types.WorkflowExecutionCloseStatusFailed,
		types.WorkflowExecutionCloseStatusCanceled,
		types.WorkflowExecutionCloseStatusTerminated,
		types.WorkflowExecutionCloseStatusContinuedAsNew,
		types.WorkflowExecutionCloseStatusTimedOut,
	} {
		assert.Equal(t, v, *ToWorkflowExecutionCloseStatus(FromWorkflowExecutionCloseStatus(v.Ptr())))
	}
	assert.Panics(t, func() { ToWorkflowExecutionCloseStatus(apiv1.WorkflowExecutionCloseStatus(42)) })

	assert.Equal(t, types.TaskListKindSticky, *ToTaskListKind(FromTaskListKind(types.TaskListKindSticky.Ptr())))
	assert.Equal(t, types.QueryRejectConditionNotOpen, *ToQueryRejectCondition(FromQueryRejectCondition(types.QueryRejectConditionNotOpen.Ptr())))
	assert.Equal(t, types.QueryConsistencyLevelEventual, *ToQueryConsistencyLevel(FromQueryConsistencyLevel(types.QueryConsistencyLevelEventual.Ptr())))
}
