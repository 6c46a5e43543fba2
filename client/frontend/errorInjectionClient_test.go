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

package frontend

import (
	"context"
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/uber/cadence-external-client/common/errors"
	"github.com/uber/cadence-external-client/common/log/testlogger"
	"github.com/uber/cadence-external-client/common/types"
)

func TestErrorInjectionClient_ZeroRateForwards(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockClient(ctrl)
	client.EXPECT().QueryWorkflow(gomock.Any(), gomock.Any()).
		Return(&types.QueryWorkflowResponse{QueryResult: []byte("ok")}, nil)
	client.EXPECT().TerminateWorkflowExecution(gomock.Any(), gomock.Any()).Return(nil)

	c := NewErrorInjectionClient(client, errors.NewFaultInjectorWithSource(0, rand.NewSource(1)), testlogger.New(t))
	resp, err := c.QueryWorkflow(context.Background(), &types.QueryWorkflowRequest{})
	assert.NoError(t, err)
	assert.Equal(t, []byte("ok"), resp.QueryResult)
	assert.NoError(t, c.TerminateWorkflowExecution(context.Background(), &types.TerminateWorkflowExecutionRequest{}))
}

func TestErrorInjectionClient_FullRateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockClient(ctrl)
	client.EXPECT().StartWorkflowExecution(gomock.Any(), gomock.Any()).
		Return(&types.StartWorkflowExecutionResponse{RunID: "rid"}, nil).AnyTimes()

	logger, logs := testlogger.NewObserved(t)
	c := NewErrorInjectionClient(client, errors.NewFaultInjectorWithSource(1, rand.NewSource(1)), logger)
	for i := 0; i < 10; i++ {
		resp, err := c.StartWorkflowExecution(context.Background(), &types.StartWorkflowExecutionRequest{})
		assert.Error(t, err)
		assert.Nil(t, resp)
	}
	assert.Equal(t, 10, logs.FilterMessage(msgInjectedFakeErr).Len())
}
