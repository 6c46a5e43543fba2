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

package types

import (
	"fmt"
)

// WorkflowIDReusePolicy is an internal type (TBD...)
type WorkflowIDReusePolicy int32

// Ptr is a helper function for getting pointer value
func (e WorkflowIDReusePolicy) Ptr() *WorkflowIDReusePolicy {
	return &e
}

// String returns a readable string representation of WorkflowIDReusePolicy.
func (e WorkflowIDReusePolicy) String() string {
	w := int32(e)
	switch w {
	case 0:
		return "AllowDuplicateFailedOnly"
	case 1:
		return "AllowDuplicate"
	case 2:
		return "RejectDuplicate"
	case 3:
		return "TerminateIfRunning"
	}
	return fmt.Sprintf("WorkflowIDReusePolicy(%d)", w)
}

const (
	// WorkflowIDReusePolicyAllowDuplicateFailedOnly is an option for WorkflowIDReusePolicy
	WorkflowIDReusePolicyAllowDuplicateFailedOnly WorkflowIDReusePolicy = iota
	// WorkflowIDReusePolicyAllowDuplicate is an option for WorkflowIDReusePolicy
	WorkflowIDReusePolicyAllowDuplicate
	// WorkflowIDReusePolicyRejectDuplicate is an option for WorkflowIDReusePolicy
	WorkflowIDReusePolicyRejectDuplicate
	// WorkflowIDReusePolicyTerminateIfRunning is an option for WorkflowIDReusePolicy
	WorkflowIDReusePolicyTerminateIfRunning
)

// QueryRejectCondition is an internal type (TBD...)
type QueryRejectCondition int32

// Ptr is a helper function for getting pointer value
func (e QueryRejectCondition) Ptr() *QueryRejectCondition {
	return &e
}

// String returns a readable string representation of QueryRejectCondition.
func (e QueryRejectCondition) String() string {
	w := int32(e)
	switch w {
	case 0:
		return "NOT_OPEN"
	case 1:
		return "NOT_COMPLETED_CLEANLY"
	}
	return fmt.Sprintf("QueryRejectCondition(%d)", w)
}

const (
	// QueryRejectConditionNotOpen is an option for QueryRejectCondition
	QueryRejectConditionNotOpen QueryRejectCondition = iota
	// QueryRejectConditionNotCompletedCleanly is an option for QueryRejectCondition
	QueryRejectConditionNotCompletedCleanly
)

// QueryConsistencyLevel is an internal type (TBD...)
type QueryConsistencyLevel int32

// Ptr is a helper function for getting pointer value
func (e QueryConsistencyLevel) Ptr() *QueryConsistencyLevel {
	return &e
}

// String returns a readable string representation of QueryConsistencyLevel.
func (e QueryConsistencyLevel) String() string {
	w := int32(e)
	switch w {
	case 0:
		return "EVENTUAL"
	case 1:
		return "STRONG"
	}
	return fmt.Sprintf("QueryConsistencyLevel(%d)", w)
}

const (
	// QueryConsistencyLevelEventual is an option for QueryConsistencyLevel
	QueryConsistencyLevelEventual QueryConsistencyLevel = iota
	// QueryConsistencyLevelStrong is an option for QueryConsistencyLevel
	QueryConsistencyLevelStrong
)

// TaskListKind is an internal type (TBD...)
type TaskListKind int32

// Ptr is a helper function for getting pointer value
func (e TaskListKind) Ptr() *TaskListKind {
	return &e
}

// String returns a readable string representation of TaskListKind.
func (e TaskListKind) String() string {
	w := int32(e)
	switch w {
	case 0:
		return "NORMAL"
	case 1:
		return "STICKY"
	}
	return fmt.Sprintf("TaskListKind(%d)", w)
}

const (
	// TaskListKindNormal is an option for TaskListKind
	TaskListKindNormal TaskListKind = iota
	// TaskListKindSticky is an option for TaskListKind
	TaskListKindSticky
)

// WorkflowExecutionCloseStatus is an internal type (TBD...)
type WorkflowExecutionCloseStatus int32

// Ptr is a helper function for getting pointer value
func (e WorkflowExecutionCloseStatus) Ptr() *WorkflowExecutionCloseStatus {
	return &e
}

// String returns a readable string representation of WorkflowExecutionCloseStatus.
func (e WorkflowExecutionCloseStatus) String() string {
	w := int32(e)
	switch w {
	case 0:
		return "COMPLETED"
	case 1:
		return "FAILED"
	case 2:
		return "CANCELED"
	case 3:
		return "TERMINATED"
	case 4:
		return "CONTINUED_AS_NEW"
	case 5:
		return "TIMED_OUT"
	}
	return fmt.Sprintf("WorkflowExecutionCloseStatus(%d)", w)
}

const (
	// WorkflowExecutionCloseStatusCompleted is an option for WorkflowExecutionCloseStatus
	WorkflowExecutionCloseStatusCompleted WorkflowExecutionCloseStatus = iota
	// WorkflowExecutionCloseStatusFailed is an option for WorkflowExecutionCloseStatus
	WorkflowExecutionCloseStatusFailed
	// WorkflowExecutionCloseStatusCanceled is an option for WorkflowExecutionCloseStatus
	WorkflowExecutionCloseStatusCanceled
	// WorkflowExecutionCloseStatusTerminated is an option for WorkflowExecutionCloseStatus
	WorkflowExecutionCloseStatusTerminated
	// WorkflowExecutionCloseStatusContinuedAsNew is an option for WorkflowExecutionCloseStatus
	WorkflowExecutionCloseStatusContinuedAsNew
	// WorkflowExecutionCloseStatusTimedOut is an option for WorkflowExecutionCloseStatus
	WorkflowExecutionCloseStatusTimedOut
)

// WorkflowType is an internal type (TBD...)
type WorkflowType struct {
	Name string `json:"name,omitempty"`
}

// GetName is an internal getter (TBD...)
func (v *WorkflowType) GetName() (o string) {
	if v != nil {
		return v.Name
	}
	return
}

// TaskList is an internal type (TBD...)
type TaskList struct {
	Name string        `json:"name,omitempty"`
	Kind *TaskListKind `json:"kind,omitempty"`
}

// GetName is an internal getter (TBD...)
func (v *TaskList) GetName() (o string) {
	if v != nil {
		return v.Name
	}
	return
}

// WorkflowExecution is an internal type (TBD...)
type WorkflowExecution struct {
	WorkflowID string `json:"workflowId,omitempty"`
	RunID      string `json:"runId,omitempty"`
}

// GetWorkflowID is an internal getter (TBD...)
func (v *WorkflowExecution) GetWorkflowID() (o string) {
	if v != nil {
		return v.WorkflowID
	}
	return
}

// GetRunID is an internal getter (TBD...)
func (v *WorkflowExecution) GetRunID() (o string) {
	if v != nil {
		return v.RunID
	}
	return
}

// RetryPolicy is the retry policy of a workflow or activity as carried on the wire
type RetryPolicy struct {
	InitialIntervalInSeconds    int32    `json:"initialIntervalInSeconds,omitempty"`
	BackoffCoefficient          float64  `json:"backoffCoefficient,omitempty"`
	MaximumIntervalInSeconds    int32    `json:"maximumIntervalInSeconds,omitempty"`
	MaximumAttempts             int32    `json:"maximumAttempts,omitempty"`
	NonRetriableErrorReasons    []string `json:"nonRetriableErrorReasons,omitempty"`
	ExpirationIntervalInSeconds int32    `json:"expirationIntervalInSeconds,omitempty"`
}

// Memo is an internal type (TBD...)
type Memo struct {
	Fields map[string][]byte `json:"fields,omitempty"`
}

// GetFields is an internal getter (TBD...)
func (v *Memo) GetFields() (o map[string][]byte) {
	if v != nil && v.Fields != nil {
		return v.Fields
	}
	return
}

// SearchAttributes is an internal type (TBD...)
type SearchAttributes struct {
	IndexedFields map[string][]byte `json:"indexedFields,omitempty"`
}

// GetIndexedFields is an internal getter (TBD...)
func (v *SearchAttributes) GetIndexedFields() (o map[string][]byte) {
	if v != nil && v.IndexedFields != nil {
		return v.IndexedFields
	}
	return
}

// Header is an internal type (TBD...)
type Header struct {
	Fields map[string][]byte `json:"fields,omitempty"`
}

// GetFields is an internal getter (TBD...)
func (v *Header) GetFields() (o map[string][]byte) {
	if v != nil && v.Fields != nil {
		return v.Fields
	}
	return
}

// StartWorkflowExecutionRequest is an internal type (TBD...)
type StartWorkflowExecutionRequest struct {
	Domain                              string                 `json:"domain,omitempty"`
	WorkflowID                          string                 `json:"workflowId,omitempty"`
	WorkflowType                        *WorkflowType          `json:"workflowType,omitempty"`
	TaskList                            *TaskList              `json:"taskList,omitempty"`
	Input                               []byte                 `json:"-"`
	ExecutionStartToCloseTimeoutSeconds *int32                 `json:"executionStartToCloseTimeoutSeconds,omitempty"`
	TaskStartToCloseTimeoutSeconds      *int32                 `json:"taskStartToCloseTimeoutSeconds,omitempty"`
	Identity                            string                 `json:"identity,omitempty"`
	RequestID                           string                 `json:"requestId,omitempty"`
	WorkflowIDReusePolicy               *WorkflowIDReusePolicy `json:"workflowIdReusePolicy,omitempty"`
	RetryPolicy                         *RetryPolicy           `json:"retryPolicy,omitempty"`
	CronSchedule                        string                 `json:"cronSchedule,omitempty"`
	Memo                                *Memo                  `json:"-"`
	SearchAttributes                    *SearchAttributes      `json:"-"`
	Header                              *Header                `json:"-"`
	DelayStartSeconds                   *int32                 `json:"delayStartSeconds,omitempty"`
	JitterStartSeconds                  *int32                 `json:"jitterStartSeconds,omitempty"`
}

// GetDomain is an internal getter (TBD...)
func (v *StartWorkflowExecutionRequest) GetDomain() (o string) {
	if v != nil {
		return v.Domain
	}
	return
}

// GetWorkflowID is an internal getter (TBD...)
func (v *StartWorkflowExecutionRequest) GetWorkflowID() (o string) {
	if v != nil {
		return v.WorkflowID
	}
	return
}

// GetWorkflowType is an internal getter (TBD...)
func (v *StartWorkflowExecutionRequest) GetWorkflowType() (o *WorkflowType) {
	if v != nil && v.WorkflowType != nil {
		return v.WorkflowType
	}
	return
}

// GetTaskList is an internal getter (TBD...)
func (v *StartWorkflowExecutionRequest) GetTaskList() (o *TaskList) {
	if v != nil && v.TaskList != nil {
		return v.TaskList
	}
	return
}

// GetRequestID is an internal getter (TBD...)
func (v *StartWorkflowExecutionRequest) GetRequestID() (o string) {
	if v != nil {
		return v.RequestID
	}
	return
}

// StartWorkflowExecutionResponse is an internal type (TBD...)
type StartWorkflowExecutionResponse struct {
	RunID string `json:"runId,omitempty"`
}

// GetRunID is an internal getter (TBD...)
func (v *StartWorkflowExecutionResponse) GetRunID() (o string) {
	if v != nil {
		return v.RunID
	}
	return
}

// StartWorkflowExecutionAsyncRequest is an internal type (TBD...)
type StartWorkflowExecutionAsyncRequest struct {
	*StartWorkflowExecutionRequest
}

// StartWorkflowExecutionAsyncResponse is an internal type (TBD...)
type StartWorkflowExecutionAsyncResponse struct {
}

// SignalWorkflowExecutionRequest is an internal type (TBD...)
type SignalWorkflowExecutionRequest struct {
	Domain            string             `json:"domain,omitempty"`
	WorkflowExecution *WorkflowExecution `json:"workflowExecution,omitempty"`
	SignalName        string             `json:"signalName,omitempty"`
	Input             []byte             `json:"-"`
	Identity          string             `json:"identity,omitempty"`
	RequestID         string             `json:"requestId,omitempty"`
	Control           []byte             `json:"-"`
}

// GetRequestID is an internal getter (TBD...)
func (v *SignalWorkflowExecutionRequest) GetRequestID() (o string) {
	if v != nil {
		return v.RequestID
	}
	return
}

// SignalWithStartWorkflowExecutionRequest is an internal type (TBD...)
type SignalWithStartWorkflowExecutionRequest struct {
	Domain                              string                 `json:"domain,omitempty"`
	WorkflowID                          string                 `json:"workflowId,omitempty"`
	WorkflowType                        *WorkflowType          `json:"workflowType,omitempty"`
	TaskList                            *TaskList              `json:"taskList,omitempty"`
	Input                               []byte                 `json:"-"`
	ExecutionStartToCloseTimeoutSeconds *int32                 `json:"executionStartToCloseTimeoutSeconds,omitempty"`
	TaskStartToCloseTimeoutSeconds      *int32                 `json:"taskStartToCloseTimeoutSeconds,omitempty"`
	Identity                            string                 `json:"identity,omitempty"`
	RequestID                           string                 `json:"requestId,omitempty"`
	WorkflowIDReusePolicy               *WorkflowIDReusePolicy `json:"workflowIdReusePolicy,omitempty"`
	SignalName                          string                 `json:"signalName,omitempty"`
	SignalInput                         []byte                 `json:"-"`
	Control                             []byte                 `json:"-"`
	RetryPolicy                         *RetryPolicy           `json:"retryPolicy,omitempty"`
	CronSchedule                        string                 `json:"cronSchedule,omitempty"`
	Memo                                *Memo                  `json:"-"`
	SearchAttributes                    *SearchAttributes      `json:"-"`
	Header                              *Header                `json:"-"`
	DelayStartSeconds                   *int32                 `json:"delayStartSeconds,omitempty"`
	JitterStartSeconds                  *int32                 `json:"jitterStartSeconds,omitempty"`
}

// GetWorkflowType is an internal getter (TBD...)
func (v *SignalWithStartWorkflowExecutionRequest) GetWorkflowType() (o *WorkflowType) {
	if v != nil && v.WorkflowType != nil {
		return v.WorkflowType
	}
	return
}

// GetTaskList is an internal getter (TBD...)
func (v *SignalWithStartWorkflowExecutionRequest) GetTaskList() (o *TaskList) {
	if v != nil && v.TaskList != nil {
		return v.TaskList
	}
	return
}

// GetRequestID is an internal getter (TBD...)
func (v *SignalWithStartWorkflowExecutionRequest) GetRequestID() (o string) {
	if v != nil {
		return v.RequestID
	}
	return
}

// SignalWithStartWorkflowExecutionAsyncRequest is an internal type (TBD...)
type SignalWithStartWorkflowExecutionAsyncRequest struct {
	*SignalWithStartWorkflowExecutionRequest
}

// SignalWithStartWorkflowExecutionAsyncResponse is an internal type (TBD...)
type SignalWithStartWorkflowExecutionAsyncResponse struct {
}

// WorkflowQuery is an internal type (TBD...)
type WorkflowQuery struct {
	QueryType string `json:"queryType,omitempty"`
	QueryArgs []byte `json:"-"`
}

// QueryWorkflowRequest is an internal type (TBD...)
type QueryWorkflowRequest struct {
	Domain                string                 `json:"domain,omitempty"`
	Execution             *WorkflowExecution     `json:"execution,omitempty"`
	Query                 *WorkflowQuery         `json:"query,omitempty"`
	QueryRejectCondition  *QueryRejectCondition  `json:"queryRejectCondition,omitempty"`
	QueryConsistencyLevel *QueryConsistencyLevel `json:"queryConsistencyLevel,omitempty"`
}

// QueryRejected is an internal type (TBD...)
type QueryRejected struct {
	CloseStatus *WorkflowExecutionCloseStatus `json:"closeStatus,omitempty"`
}

// QueryWorkflowResponse is an internal type (TBD...)
type QueryWorkflowResponse struct {
	QueryResult   []byte         `json:"-"`
	QueryRejected *QueryRejected `json:"queryRejected,omitempty"`
}

// GetQueryResult is an internal getter (TBD...)
func (v *QueryWorkflowResponse) GetQueryResult() (o []byte) {
	if v != nil && v.QueryResult != nil {
		return v.QueryResult
	}
	return
}

// GetQueryRejected is an internal getter (TBD...)
func (v *QueryWorkflowResponse) GetQueryRejected() (o *QueryRejected) {
	if v != nil && v.QueryRejected != nil {
		return v.QueryRejected
	}
	return
}

// RequestCancelWorkflowExecutionRequest is an internal type (TBD...)
type RequestCancelWorkflowExecutionRequest struct {
	Domain              string             `json:"domain,omitempty"`
	WorkflowExecution   *WorkflowExecution `json:"workflowExecution,omitempty"`
	Identity            string             `json:"identity,omitempty"`
	RequestID           string             `json:"requestId,omitempty"`
	Cause               string             `json:"cause,omitempty"`
	FirstExecutionRunID string             `json:"first_execution_run_id,omitempty"`
}

// GetRequestID is an internal getter (TBD...)
func (v *RequestCancelWorkflowExecutionRequest) GetRequestID() (o string) {
	if v != nil {
		return v.RequestID
	}
	return
}

// TerminateWorkflowExecutionRequest is an internal type (TBD...)
type TerminateWorkflowExecutionRequest struct {
	Domain              string             `json:"domain,omitempty"`
	WorkflowExecution   *WorkflowExecution `json:"workflowExecution,omitempty"`
	Reason              string             `json:"reason,omitempty"`
	Details             []byte             `json:"-"`
	Identity            string             `json:"identity,omitempty"`
	FirstExecutionRunID string             `json:"first_execution_run_id,omitempty"`
	// RequestID is not carried by either wire protocol, it only correlates the attempts of one call
	RequestID string `json:"-"`
}

// GetRequestID is an internal getter (TBD...)
func (v *TerminateWorkflowExecutionRequest) GetRequestID() (o string) {
	if v != nil {
		return v.RequestID
	}
	return
}
