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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/cadence/.gen/go/shared"

	"github.com/uber/cadence-external-client/common"
	"github.com/uber/cadence-external-client/common/types"
)

func TestFromStartWorkflowExecutionRequest(t *testing.T) {
	assert.Nil(t, FromStartWorkflowExecutionRequest(nil))

	req := FromStartWorkflowExecutionRequest(&types.StartWorkflowExecutionRequest{
		Domain:                              "domain",
		WorkflowID:                          "wid",
		WorkflowType:                        &types.WorkflowType{Name: "wtype"},
		TaskList:                            &types.TaskList{Name: "tl"},
		Input:                               []byte("input"),
		ExecutionStartToCloseTimeoutSeconds: common.Int32Ptr(60),
		RequestID:                           "req",
		WorkflowIDReusePolicy:               types.WorkflowIDReusePolicyTerminateIfRunning.Ptr(),
		RetryPolicy:                         &types.RetryPolicy{InitialIntervalInSeconds: 1, BackoffCoefficient: 2},
		JitterStartSeconds:                  common.Int32Ptr(3),
	})
	require.NotNil(t, req)
	assert.Equal(t, "domain", req.GetDomain())
	assert.Equal(t, "wid", req.GetWorkflowId())
	assert.Equal(t, "wtype", req.GetWorkflowType().GetName())
	assert.Equal(t, "tl", req.GetTaskList().GetName())
	assert.Nil(t, req.GetTaskList().Kind)
	assert.Equal(t, []byte("input"), req.Input)
	assert.Equal(t, int32(60), req.GetExecutionStartToCloseTimeoutSeconds())
	assert.Nil(t, req.TaskStartToCloseTimeoutSeconds)
	assert.Equal(t, "req", req.GetRequestId())
	assert.Equal(t, shared.WorkflowIdReusePolicyTerminateIfRunning, req.GetWorkflowIdReusePolicy())
	assert.Equal(t, int32(1), req.GetRetryPolicy().GetInitialIntervalInSeconds())
	assert.Nil(t, req.GetRetryPolicy().MaximumAttempts)
	assert.Nil(t, req.CronSchedule)
	assert.Equal(t, int32(3), req.GetJitterStartSeconds())
}

func TestFromSignalWithStartWorkflowExecutionRequest(t *testing.T) {
	req := FromSignalWithStartWorkflowExecutionRequest(&types.SignalWithStartWorkflowExecutionRequest{
		Domain:      "domain",
		WorkflowID:  "wid",
		SignalName:  "signal",
		SignalInput: []byte("payload"),
		Control:     []byte("control"),
	})
	assert.Equal(t, "signal", req.GetSignalName())
	assert.Equal(t, []byte("payload"), req.SignalInput)
	assert.Equal(t, []byte("control"), req.Control)
	assert.Nil(t, req.WorkflowIdReusePolicy)
}

func TestFromQueryWorkflowRequest(t *testing.T) {
	req := FromQueryWorkflowRequest(&types.QueryWorkflowRequest{
		Domain:                "domain",
		Execution:             &types.WorkflowExecution{WorkflowID: "wid"},
		Query:                 &types.WorkflowQuery{QueryType: "state"},
		QueryRejectCondition:  types.QueryRejectConditionNotOpen.Ptr(),
		QueryConsistencyLevel: types.QueryConsistencyLevelStrong.Ptr(),
	})
	assert.Equal(t, "wid", req.GetExecution().GetWorkflowId())
	assert.Nil(t, req.GetExecution().RunId)
	assert.Equal(t, "state", req.GetQuery().GetQueryType())
	assert.Equal(t, shared.QueryRejectConditionNotOpen, req.GetQueryRejectCondition())
	assert.Equal(t, shared.QueryConsistencyLevelStrong, req.GetQueryConsistencyLevel())

	closeStatus := shared.WorkflowExecutionCloseStatusCanceled
	resp := ToQueryWorkflowResponse(&shared.QueryWorkflowResponse{
		QueryRejected: &shared.QueryRejected{CloseStatus: &closeStatus},
	})
	assert.Nil(t, resp.QueryResult)
	assert.Equal(t, types.WorkflowExecutionCloseStatusCanceled, *resp.QueryRejected.CloseStatus)
}

func TestFromCancelAndTerminate(t *testing.T) {
	cancel := FromRequestCancelWorkflowExecutionRequest(&types.RequestCancelWorkflowExecutionRequest{
		Domain:              "domain",
		WorkflowExecution:   &types.WorkflowExecution{WorkflowID: "wid", RunID: "rid"},
		RequestID:           "req",
		Cause:               "cause",
		FirstExecutionRunID: "first",
	})
	assert.Equal(t, "rid", cancel.GetWorkflowExecution().GetRunId())
	assert.Equal(t, "cause", cancel.GetCause())
	assert.Equal(t, "first", cancel.GetFirstExecutionRunID())

	terminate := FromTerminateWorkflowExecutionRequest(&types.TerminateWorkflowExecutionRequest{
		Domain:            "domain",
		WorkflowExecution: &types.WorkflowExecution{WorkflowID: "wid"},
		Reason:            "reason",
	})
	assert.Equal(t, "reason", terminate.GetReason())
	assert.Nil(t, terminate.FirstExecutionRunID)
}

func TestErrors(t *testing.T) {
	for _, err := range []error{
		&types.AccessDeniedError{Message: "access"},
		&types.BadRequestError{Message: "bad"},
		&types.CancellationAlreadyRequestedError{Message: "cancel"},
		&types.ClientVersionNotSupportedError{FeatureVersion: "1", ClientImpl: "go", SupportedVersions: ">2"},
		&types.FeatureNotEnabledError{FeatureFlag: "flag"},
		&types.DomainNotActiveError{Message: "passive", DomainName: "d", CurrentCluster: "a", ActiveCluster: "b"},
		&types.EntityNotExistsError{Message: "missing", CurrentCluster: "a"},
		&types.WorkflowExecutionAlreadyCompletedError{Message: "done"},
		&types.InternalServiceError{Message: "internal"},
		&types.LimitExceededError{Message: "limit"},
		&types.QueryFailedError{Message: "query"},
		&types.ServiceBusyError{Message: "busy"},
		&types.WorkflowExecutionAlreadyStartedError{Message: "started", StartRequestID: "req", RunID: "run"},
	} {
		t.Run(err.Error(), func(t *testing.T) {
			assert.Equal(t, err, ToError(FromError(err)))
		})
	}
	assert.Nil(t, FromError(nil))
	assert.Nil(t, ToError(nil))
	assert.Equal(t, assert.AnError, ToError(FromError(assert.AnError)))
}
