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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
)

func TestClientCounters(t *testing.T) {
	testScope := tally.NewTestScope("", nil)
	client := NewClient(testScope, ExternalClient)

	client.IncCounter(FrontendClientStartWorkflowExecutionScope, CadenceClientRequests)
	client.IncCounter(FrontendClientStartWorkflowExecutionScope, CadenceClientRequests)

	counters := testScope.Snapshot().Counters()
	require.Len(t, counters, 1)
	for _, c := range counters {
		assert.Equal(t, "cadence_client_requests", c.Name())
		assert.Equal(t, int64(2), c.Value())
		assert.Equal(t, "FrontendClientStartWorkflowExecution", c.Tags()["operation"])
		assert.Equal(t, FrontendRoleTagValue, c.Tags()[CadenceRoleTagName])
	}
}

func TestClientTimers(t *testing.T) {
	testScope := tally.NewTestScope("", nil)
	client := NewClient(testScope, ExternalClient)

	client.StartTimer(FrontendClientQueryWorkflowScope, CadenceClientLatency).Stop()
	client.Scope(FrontendClientQueryWorkflowScope).StartTimer(CadenceClientLatency).Stop()

	timers := testScope.Snapshot().Timers()
	require.Len(t, timers, 1)
	for _, tm := range timers {
		assert.Equal(t, "cadence_client_latency", tm.Name())
		assert.Len(t, tm.Values(), 2)
	}
}

func TestScopeTagged(t *testing.T) {
	testScope := tally.NewTestScope("", nil)
	client := NewClient(testScope, ExternalClient)

	scope := client.Scope(ExternalClientStartWorkflowScope,
		DomainTag("samples"),
		WorkflowTypeTag("greeting"),
	).Tagged(TaskListTag("greeting-tl"))
	scope.IncCounter(WorkflowStartCounter)
	assert.Same(t, scope, scope.Tagged())

	counters := testScope.Snapshot().Counters()
	require.Len(t, counters, 1)
	for _, c := range counters {
		assert.Equal(t, "workflow_start", c.Name())
		assert.Equal(t, map[string]string{
			"operation":    "StartWorkflow",
			"domain":       "samples",
			"workflowType": "greeting",
			"tasklist":     "greeting-tl",
		}, c.Tags())
	}
}

func TestNoopClient(t *testing.T) {
	client := NewNoopClient()
	client.IncCounter(ExternalClientQueryWorkflowScope, CadenceRequests)
	client.Scope(ExternalClientQueryWorkflowScope, DomainTag("d")).StartTimer(CadenceLatency).Stop()
}
