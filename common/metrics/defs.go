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

package metrics

// types used/defined by the package
type (
	// MetricName is the name of the metric
	MetricName string

	// MetricType is the type of the metric
	MetricType int

	// metricDefinition contains the definition for a metric
	metricDefinition struct {
		metricType MetricType
		metricName MetricName
	}

	// scopeDefinition holds the tag definitions for a scope
	scopeDefinition struct {
		operation string            // 'operation' tag for scope
		tags      map[string]string // additional tags for scope
	}

	// ServiceIdx is an index that uniquely identifies the service
	ServiceIdx int
)

// MetricTypes which are supported
const (
	Counter MetricType = iota
	Timer
)

// Service names for all services that emit metrics.
const (
	ExternalClient ServiceIdx = iota
	NumServices
)

// Scopes of the workflow client façade, one per logical operation
const (
	// ExternalClientStartWorkflowScope tracks StartWorkflow calls
	ExternalClientStartWorkflowScope = iota
	// ExternalClientEnqueueStartWorkflowScope tracks EnqueueStartWorkflow calls
	ExternalClientEnqueueStartWorkflowScope
	// ExternalClientSignalWorkflowScope tracks SignalWorkflowExecution calls
	ExternalClientSignalWorkflowScope
	// ExternalClientSignalWithStartWorkflowScope tracks SignalWithStartWorkflowExecution calls
	ExternalClientSignalWithStartWorkflowScope
	// ExternalClientEnqueueSignalWithStartWorkflowScope tracks EnqueueSignalWithStartWorkflowExecution calls
	ExternalClientEnqueueSignalWithStartWorkflowScope
	// ExternalClientQueryWorkflowScope tracks QueryWorkflow calls
	ExternalClientQueryWorkflowScope
	// ExternalClientRequestCancelWorkflowScope tracks RequestCancelWorkflowExecution calls
	ExternalClientRequestCancelWorkflowScope
	// ExternalClientTerminateWorkflowScope tracks TerminateWorkflowExecution calls
	ExternalClientTerminateWorkflowScope

	// FrontendClientStartWorkflowExecutionScope tracks RPC calls to frontend service
	FrontendClientStartWorkflowExecutionScope
	// FrontendClientStartWorkflowExecutionAsyncScope tracks RPC calls to frontend service
	FrontendClientStartWorkflowExecutionAsyncScope
	// FrontendClientSignalWorkflowExecutionScope tracks RPC calls to frontend service
	FrontendClientSignalWorkflowExecutionScope
	// FrontendClientSignalWithStartWorkflowExecutionScope tracks RPC calls to frontend service
	FrontendClientSignalWithStartWorkflowExecutionScope
	// FrontendClientSignalWithStartWorkflowExecutionAsyncScope tracks RPC calls to frontend service
	FrontendClientSignalWithStartWorkflowExecutionAsyncScope
	// FrontendClientQueryWorkflowScope tracks RPC calls to frontend service
	FrontendClientQueryWorkflowScope
	// FrontendClientRequestCancelWorkflowExecutionScope tracks RPC calls to frontend service
	FrontendClientRequestCancelWorkflowExecutionScope
	// FrontendClientTerminateWorkflowExecutionScope tracks RPC calls to frontend service
	FrontendClientTerminateWorkflowExecutionScope

	NumScopes
)

// ScopeDefs record the scopes for all services
var ScopeDefs = map[ServiceIdx]map[int]scopeDefinition{
	ExternalClient: {
		ExternalClientStartWorkflowScope:                  {operation: "StartWorkflow"},
		ExternalClientEnqueueStartWorkflowScope:           {operation: "EnqueueStartWorkflow"},
		ExternalClientSignalWorkflowScope:                 {operation: "SignalWorkflowExecution"},
		ExternalClientSignalWithStartWorkflowScope:        {operation: "SignalWithStartWorkflowExecution"},
		ExternalClientEnqueueSignalWithStartWorkflowScope: {operation: "EnqueueSignalWithStartWorkflowExecution"},
		ExternalClientQueryWorkflowScope:                  {operation: "QueryWorkflow"},
		ExternalClientRequestCancelWorkflowScope:          {operation: "RequestCancelWorkflowExecution"},
		ExternalClientTerminateWorkflowScope:              {operation: "TerminateWorkflowExecution"},

		FrontendClientStartWorkflowExecutionScope:                {operation: "FrontendClientStartWorkflowExecution", tags: map[string]string{CadenceRoleTagName: FrontendRoleTagValue}},
		FrontendClientStartWorkflowExecutionAsyncScope:           {operation: "FrontendClientStartWorkflowExecutionAsync", tags: map[string]string{CadenceRoleTagName: FrontendRoleTagValue}},
		FrontendClientSignalWorkflowExecutionScope:               {operation: "FrontendClientSignalWorkflowExecution", tags: map[string]string{CadenceRoleTagName: FrontendRoleTagValue}},
		FrontendClientSignalWithStartWorkflowExecutionScope:      {operation: "FrontendClientSignalWithStartWorkflowExecution", tags: map[string]string{CadenceRoleTagName: FrontendRoleTagValue}},
		FrontendClientSignalWithStartWorkflowExecutionAsyncScope: {operation: "FrontendClientSignalWithStartWorkflowExecutionAsync", tags: map[string]string{CadenceRoleTagName: FrontendRoleTagValue}},
		FrontendClientQueryWorkflowScope:                         {operation: "FrontendClientQueryWorkflow", tags: map[string]string{CadenceRoleTagName: FrontendRoleTagValue}},
		FrontendClientRequestCancelWorkflowExecutionScope:        {operation: "FrontendClientRequestCancelWorkflowExecution", tags: map[string]string{CadenceRoleTagName: FrontendRoleTagValue}},
		FrontendClientTerminateWorkflowExecutionScope:            {operation: "FrontendClientTerminateWorkflowExecution", tags: map[string]string{CadenceRoleTagName: FrontendRoleTagValue}},
	},
}

// Metrics emitted by the client
const (
	CadenceClientRequests = iota
	CadenceClientFailures
	CadenceClientLatency

	WorkflowStartCounter
	WorkflowStartAsyncCounter
	WorkflowSignalWithStartCounter
	WorkflowSignalWithStartAsyncCounter

	CadenceRequests
	CadenceFailures
	CadenceLatency
	CadenceErrTerminalCounter
	CadenceErrDeadlineExceededCounter
	CadenceRetries

	NumMetrics
)

// MetricDefs record the metrics for all services
var MetricDefs = map[ServiceIdx]map[int]metricDefinition{
	ExternalClient: {
		CadenceClientRequests: {metricName: "cadence_client_requests", metricType: Counter},
		CadenceClientFailures: {metricName: "cadence_client_errors", metricType: Counter},
		CadenceClientLatency:  {metricName: "cadence_client_latency", metricType: Timer},

		WorkflowStartCounter:                {metricName: "workflow_start", metricType: Counter},
		WorkflowStartAsyncCounter:           {metricName: "workflow_start_async", metricType: Counter},
		WorkflowSignalWithStartCounter:      {metricName: "workflow_signal_with_start", metricType: Counter},
		WorkflowSignalWithStartAsyncCounter: {metricName: "workflow_signal_with_start_async", metricType: Counter},

		CadenceRequests:                   {metricName: "cadence_requests", metricType: Counter},
		CadenceFailures:                   {metricName: "cadence_errors", metricType: Counter},
		CadenceLatency:                    {metricName: "cadence_latency", metricType: Timer},
		CadenceErrTerminalCounter:         {metricName: "cadence_errors_terminal", metricType: Counter},
		CadenceErrDeadlineExceededCounter: {metricName: "cadence_errors_deadline_exceeded", metricType: Counter},
		CadenceRetries:                    {metricName: "cadence_retries", metricType: Counter},
	},
}

// String returns string representation of this metric name
func (n MetricName) String() string {
	return string(n)
}
