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
	"time"

	"github.com/uber/cadence-external-client/common/types"
)

type (
	// RetryParameters is the retry policy of the started workflow, not of the requests sending it
	RetryParameters struct {
		InitialInterval          time.Duration
		BackoffCoefficient       float64
		MaximumInterval          time.Duration
		ExpirationInterval       time.Duration
		MaximumAttempts          int32
		NonRetriableErrorReasons []string
	}

	// StartWorkflowParameters describes the workflow execution to start
	StartWorkflowParameters struct {
		// WorkflowID defaults to a generated id when empty
		WorkflowID                   string
		WorkflowType                 string
		TaskList                     string
		Input                        []byte
		ExecutionStartToCloseTimeout time.Duration
		TaskStartToCloseTimeout      time.Duration
		WorkflowIDReusePolicy        *types.WorkflowIDReusePolicy
		RetryParameters              *RetryParameters
		CronSchedule                 string
		Memo                         map[string][]byte
		SearchAttributes             map[string][]byte
		Header                       map[string][]byte
		// DelayStart and JitterStart are sent in whole seconds
		DelayStart  time.Duration
		JitterStart time.Duration
	}

	// SignalWorkflowParameters describes a signal to a running workflow
	SignalWorkflowParameters struct {
		WorkflowID string
		RunID      string
		SignalName string
		Input      []byte
		Control    []byte
	}

	// SignalWithStartWorkflowParameters signals a workflow, starting it first when it is not running
	SignalWithStartWorkflowParameters struct {
		Start       StartWorkflowParameters
		SignalName  string
		SignalInput []byte
		Control     []byte
	}

	// QueryWorkflowParameters describes a query of a workflow
	QueryWorkflowParameters struct {
		WorkflowID            string
		RunID                 string
		QueryType             string
		Input                 []byte
		QueryRejectCondition  *types.QueryRejectCondition
		QueryConsistencyLevel *types.QueryConsistencyLevel
	}

	// CancelWorkflowParameters describes a cancellation request
	CancelWorkflowParameters struct {
		WorkflowID          string
		RunID               string
		Cause               string
		FirstExecutionRunID string
	}

	// TerminateWorkflowParameters describes a termination
	TerminateWorkflowParameters struct {
		WorkflowID          string
		RunID               string
		Reason              string
		Details             []byte
		FirstExecutionRunID string
	}
)
