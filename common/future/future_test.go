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

package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/uber/cadence-external-client/common/types"
)

type futureSuite struct {
	suite.Suite
	*require.Assertions
}

func TestFutureSuite(t *testing.T) {
	suite.Run(t, new(futureSuite))
}

func (s *futureSuite) SetupTest() {
	s.Assertions = require.New(s.T())
}

func (s *futureSuite) TestGet_AssignsValue() {
	execution := &types.WorkflowExecution{WorkflowID: "wid", RunID: "rid"}
	f, settable := NewFuture()
	settable.Set(execution, nil)

	var got *types.WorkflowExecution
	s.NoError(f.Get(context.Background(), &got))
	s.Same(execution, got)

	// a nil pointer skips the assignment
	s.NoError(f.Get(context.Background(), nil))
}

func (s *futureSuite) TestGet_NilValueZeroesTarget() {
	f, settable := NewFuture()
	settable.Set(nil, nil)

	got := &types.WorkflowExecution{WorkflowID: "stale"}
	s.NoError(f.Get(context.Background(), &got))
	s.Nil(got)
}

func (s *futureSuite) TestGet_BadTarget() {
	f, settable := NewFuture()
	settable.Set(&types.WorkflowExecution{}, nil)

	var wrongType *types.QueryWorkflowResponse
	s.ErrorContains(f.Get(context.Background(), &wrongType), "cannot assign future value")

	var notPointer types.WorkflowExecution
	s.ErrorContains(f.Get(context.Background(), notPointer), "not a pointer")
}

func (s *futureSuite) TestGet_Error() {
	callErr := &types.ServiceBusyError{Message: "busy"}
	f, settable := NewFuture()
	settable.Set(&types.WorkflowExecution{}, callErr)

	var got *types.WorkflowExecution
	s.Same(callErr, f.Get(context.Background(), &got))
	s.Nil(got)
}

func (s *futureSuite) TestFutureGet_ContextErr() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*100)
	defer cancel()

	future, _ := NewFuture()
	s.ErrorIs(future.Get(ctx, nil), context.DeadlineExceeded)
}

func (s *futureSuite) TestFutureGet_ResolvedWinsOverDoneContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	future, settable := NewFuture()
	execution := &types.WorkflowExecution{WorkflowID: "wid", RunID: "rid"}
	settable.Set(execution, nil)

	var got *types.WorkflowExecution
	s.NoError(future.Get(ctx, &got))
	s.Same(execution, got)

	failed, failedSettable := NewFuture()
	failedSettable.Set(nil, errors.New("boom"))
	s.EqualError(failed.Get(ctx, nil), "boom")
}

func (s *futureSuite) TestFutureIsReady() {
	future, settable := NewFuture()
	s.False(future.IsReady())

	settable.Set(nil, errors.New("some random error"))
	s.True(future.IsReady())
}

func (s *futureSuite) TestFutureDoubleSet() {
	_, settable := NewFuture()
	settable.Set("some random value", nil)

	s.Panics(func() {
		settable.Set(nil, errors.New("some random error"))
	})
}

func (s *futureSuite) TestFutureTrySet() {
	future, settable := NewFuture()
	s.True(settable.TrySet("first", nil))
	s.False(settable.TrySet("second", nil))

	var value string
	s.NoError(future.Get(context.Background(), &value))
	s.Equal("first", value)
	s.False(future.IsCanceled())
}

func (s *futureSuite) TestFutureCancel() {
	future, settable := NewFuture()

	hookCalls := 0
	settable.OnCancel(func() { hookCalls++ })

	s.True(future.Cancel())
	s.True(future.IsReady())
	s.True(future.IsCanceled())
	s.Equal(1, hookCalls)

	err := future.Get(context.Background(), nil)
	s.ErrorIs(err, ErrCanceled)

	// a result arriving after cancellation is discarded
	s.False(settable.TrySet("late", nil))
	s.False(future.Cancel())
	s.Equal(1, hookCalls)

	// hooks registered after cancellation run immediately
	settable.OnCancel(func() { hookCalls++ })
	s.Equal(2, hookCalls)
}

func (s *futureSuite) TestFutureCancelAfterSet() {
	future, settable := NewFuture()

	hookCalled := false
	settable.OnCancel(func() { hookCalled = true })
	settable.Set(nil, errors.New("some random error"))

	s.False(future.Cancel())
	s.False(future.IsCanceled())
	s.False(hookCalled)

	settable.OnCancel(func() { hookCalled = true })
	s.False(hookCalled)
}

func (s *futureSuite) TestFutureDone() {
	future, settable := NewFuture()
	select {
	case <-future.Done():
		s.Fail("future should not be done")
	default:
	}

	go settable.Set(1, nil)
	select {
	case <-future.Done():
	case <-time.After(time.Second):
		s.Fail("future should be done")
	}
}

