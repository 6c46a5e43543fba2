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

package external

import (
	"fmt"

	"github.com/uber/cadence-external-client/common"
	"github.com/uber/cadence-external-client/common/backoff"
	"github.com/uber/cadence-external-client/common/types"
)

// startRequestField is an optional field of a start request. apply runs only when present reports true.
type startRequestField struct {
	name    string
	present func(p *StartWorkflowParameters) bool
	apply   func(r *types.StartWorkflowExecutionRequest, p *StartWorkflowParameters) error
}

var startRequestFields = []startRequestField{
	{
		name:    "taskList",
		present: func(p *StartWorkflowParameters) bool { return p.TaskList != "" },
		apply: func(r *types.StartWorkflowExecutionRequest, p *StartWorkflowParameters) error {
			r.TaskList = &types.TaskList{Name: p.TaskList}
			return nil
		},
	},
	{
		name:    "workflowIDReusePolicy",
		present: func(p *StartWorkflowParameters) bool { return p.WorkflowIDReusePolicy != nil },
		apply: func(r *types.StartWorkflowExecutionRequest, p *StartWorkflowParameters) error {
			r.WorkflowIDReusePolicy = p.WorkflowIDReusePolicy.Ptr()
			return nil
		},
	},
	{
		name:    "retryPolicy",
		present: func(p *StartWorkflowParameters) bool { return p.RetryParameters != nil },
		apply: func(r *types.StartWorkflowExecutionRequest, p *StartWorkflowParameters) error {
			r.RetryPolicy = toRetryPolicy(p.RetryParameters)
			return nil
		},
	},
	{
		name:    "cronSchedule",
		present: func(p *StartWorkflowParameters) bool { return p.CronSchedule != "" },
		apply: func(r *types.StartWorkflowExecutionRequest, p *StartWorkflowParameters) error {
			if _, err := backoff.ParseCronSchedule(p.CronSchedule); err != nil {
				return err
			}
			r.CronSchedule = p.CronSchedule
			return nil
		},
	},
	{
		name:    "memo",
		present: func(p *StartWorkflowParameters) bool { return len(p.Memo) > 0 },
		apply: func(r *types.StartWorkflowExecutionRequest, p *StartWorkflowParameters) error {
			r.Memo = &types.Memo{Fields: p.Memo}
			return nil
		},
	},
	{
		name:    "searchAttributes",
		present: func(p *StartWorkflowParameters) bool { return len(p.SearchAttributes) > 0 },
		apply: func(r *types.StartWorkflowExecutionRequest, p *StartWorkflowParameters) error {
			r.SearchAttributes = &types.SearchAttributes{IndexedFields: p.SearchAttributes}
			return nil
		},
	},
	{
		name:    "header",
		present: func(p *StartWorkflowParameters) bool { return len(p.Header) > 0 },
		apply: func(r *types.StartWorkflowExecutionRequest, p *StartWorkflowParameters) error {
			r.Header = &types.Header{Fields: p.Header}
			return nil
		},
	},
	{
		name:    "delayStart",
		present: func(p *StartWorkflowParameters) bool { return p.DelayStart > 0 },
		apply: func(r *types.StartWorkflowExecutionRequest, p *StartWorkflowParameters) error {
			r.DelayStartSeconds = common.SecondsPtrInt32(p.DelayStart)
			return nil
		},
	},
	{
		name:    "jitterStart",
		present: func(p *StartWorkflowParameters) bool { return p.JitterStart > 0 },
		apply: func(r *types.StartWorkflowExecutionRequest, p *StartWorkflowParameters) error {
			r.JitterStartSeconds = common.SecondsPtrInt32(p.JitterStart)
			return nil
		},
	},
}

// newStartRequest builds the start request shared by start, enqueue and signal-with-start.
// The request id is generated here, once per logical call.
func (c *clientImpl) newStartRequest(p *StartWorkflowParameters) (*types.StartWorkflowExecutionRequest, error) {
	if p == nil {
		return nil, &types.BadRequestError{Message: "start parameters are not set"}
	}

	workflowID := p.WorkflowID
	if workflowID == "" {
		workflowID = c.idGenerator()
	}
	request := &types.StartWorkflowExecutionRequest{
		Domain:                              c.domain,
		WorkflowID:                          workflowID,
		WorkflowType:                        &types.WorkflowType{Name: p.WorkflowType},
		Input:                               p.Input,
		ExecutionStartToCloseTimeoutSeconds: common.Int32Ptr(int32(common.DurationToSeconds(p.ExecutionStartToCloseTimeout))),
		TaskStartToCloseTimeoutSeconds:      common.Int32Ptr(int32(common.DurationToSeconds(p.TaskStartToCloseTimeout))),
		Identity:                            c.identity,
		RequestID:                           c.idGenerator(),
	}
	for _, field := range startRequestFields {
		if !field.present(p) {
			continue
		}
		if err := field.apply(request, p); err != nil {
			return nil, &types.BadRequestError{Message: fmt.Sprintf("invalid %s: %v", field.name, err)}
		}
	}
	return request, nil
}

func (c *clientImpl) newSignalWithStartRequest(p *SignalWithStartWorkflowParameters) (*types.SignalWithStartWorkflowExecutionRequest, error) {
	if p == nil {
		return nil, &types.BadRequestError{Message: "signal with start parameters are not set"}
	}
	start, err := c.newStartRequest(&p.Start)
	if err != nil {
		return nil, err
	}
	return &types.SignalWithStartWorkflowExecutionRequest{
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
		SignalName:                          p.SignalName,
		SignalInput:                         p.SignalInput,
		Control:                             p.Control,
		RetryPolicy:                         start.RetryPolicy,
		CronSchedule:                        start.CronSchedule,
		Memo:                                start.Memo,
		SearchAttributes:                    start.SearchAttributes,
		Header:                              start.Header,
		DelayStartSeconds:                   start.DelayStartSeconds,
		JitterStartSeconds:                  start.JitterStartSeconds,
	}, nil
}

func (c *clientImpl) newSignalRequest(p *SignalWorkflowParameters) (*types.SignalWorkflowExecutionRequest, error) {
	if p == nil {
		return nil, &types.BadRequestError{Message: "signal parameters are not set"}
	}
	return &types.SignalWorkflowExecutionRequest{
		Domain: c.domain,
		WorkflowExecution: &types.WorkflowExecution{
			WorkflowID: p.WorkflowID,
			RunID:      p.RunID,
		},
		SignalName: p.SignalName,
		Input:      p.Input,
		Identity:   c.identity,
		RequestID:  c.idGenerator(),
		Control:    p.Control,
	}, nil
}

func (c *clientImpl) newQueryRequest(p *QueryWorkflowParameters) (*types.QueryWorkflowRequest, error) {
	if p == nil {
		return nil, &types.BadRequestError{Message: "query parameters are not set"}
	}
	return &types.QueryWorkflowRequest{
		Domain: c.domain,
		Execution: &types.WorkflowExecution{
			WorkflowID: p.WorkflowID,
			RunID:      p.RunID,
		},
		Query: &types.WorkflowQuery{
			QueryType: p.QueryType,
			QueryArgs: p.Input,
		},
		QueryRejectCondition:  p.QueryRejectCondition,
		QueryConsistencyLevel: p.QueryConsistencyLevel,
	}, nil
}

func (c *clientImpl) newCancelRequest(p *CancelWorkflowParameters) (*types.RequestCancelWorkflowExecutionRequest, error) {
	if p == nil {
		return nil, &types.BadRequestError{Message: "cancel parameters are not set"}
	}
	return &types.RequestCancelWorkflowExecutionRequest{
		Domain: c.domain,
		WorkflowExecution: &types.WorkflowExecution{
			WorkflowID: p.WorkflowID,
			RunID:      p.RunID,
		},
		Identity:            c.identity,
		RequestID:           c.idGenerator(),
		Cause:               p.Cause,
		FirstExecutionRunID: p.FirstExecutionRunID,
	}, nil
}

func (c *clientImpl) newTerminateRequest(p *TerminateWorkflowParameters) (*types.TerminateWorkflowExecutionRequest, error) {
	if p == nil {
		return nil, &types.BadRequestError{Message: "terminate parameters are not set"}
	}
	return &types.TerminateWorkflowExecutionRequest{
		Domain: c.domain,
		WorkflowExecution: &types.WorkflowExecution{
			WorkflowID: p.WorkflowID,
			RunID:      p.RunID,
		},
		Reason:              p.Reason,
		Details:             p.Details,
		Identity:            c.identity,
		FirstExecutionRunID: p.FirstExecutionRunID,
		RequestID:           c.idGenerator(),
	}, nil
}

func toRetryPolicy(p *RetryParameters) *types.RetryPolicy {
	return &types.RetryPolicy{
		InitialIntervalInSeconds:    int32(common.DurationToSeconds(p.InitialInterval)),
		BackoffCoefficient:          p.BackoffCoefficient,
		MaximumIntervalInSeconds:    int32(common.DurationToSeconds(p.MaximumInterval)),
		MaximumAttempts:             p.MaximumAttempts,
		NonRetriableErrorReasons:    p.NonRetriableErrorReasons,
		ExpirationIntervalInSeconds: int32(common.DurationToSeconds(p.ExpirationInterval)),
	}
}
