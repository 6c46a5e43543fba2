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
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/uber-go/tally"
	"go.uber.org/atomic"
	"go.uber.org/yarpc"

	"github.com/uber/cadence-external-client/client/frontend"
	"github.com/uber/cadence-external-client/common/backoff"
	"github.com/uber/cadence-external-client/common/clock"
	"github.com/uber/cadence-external-client/common/future"
	"github.com/uber/cadence-external-client/common/log/testlogger"
	"github.com/uber/cadence-external-client/common/metrics"
	"github.com/uber/cadence-external-client/common/types"
)

const (
	testDomain   = "test-domain"
	testIdentity = "test-identity"
)

type (
	clientSuite struct {
		suite.Suite
		*require.Assertions

		controller   *gomock.Controller
		service      *frontend.MockClient
		asyncService *frontend.MockAsyncClient
		timeSource   clock.MockedTimeSource
		testScope    tally.TestScope
		tracer       *mocktracer.MockTracer
		ids          *atomic.Int32

		client Client
	}
)

var errServiceBusy = &types.ServiceBusyError{Message: "busy"}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) SetupTest() {
	s.Assertions = require.New(s.T())
	s.controller = gomock.NewController(s.T())
	s.service = frontend.NewMockClient(s.controller)
	s.asyncService = frontend.NewMockAsyncClient(s.controller)
	s.timeSource = clock.NewMockedTimeSource()
	s.testScope = tally.NewTestScope("", nil)
	s.tracer = mocktracer.New()
	s.ids = atomic.NewInt32(0)

	s.client = s.newClient()
}

func (s *clientSuite) newClient(opts ...Option) Client {
	return NewClient(s.service, testDomain, append([]Option{
		WithAsyncClient(s.asyncService),
		WithTimeSource(s.timeSource),
		WithMetricsClient(metrics.NewClient(s.testScope, metrics.ExternalClient)),
		WithLogger(testlogger.New(s.T())),
		WithTracer(s.tracer),
		WithIdentity(testIdentity),
		WithIDGenerator(func() string { return fmt.Sprintf("id-%d", s.ids.Inc()) }),
	}, opts...)...)
}

func (s *clientSuite) startParams() *StartWorkflowParameters {
	return &StartWorkflowParameters{
		WorkflowID:                   "wid",
		WorkflowType:                 "wf-type",
		TaskList:                     "tl",
		Input:                        []byte("input"),
		ExecutionStartToCloseTimeout: time.Minute,
		TaskStartToCloseTimeout:      10 * time.Second,
	}
}

// runBlocking runs call in the background and advances the mocked clock by each delay
// once the retrier waits on it
func (s *clientSuite) runBlocking(call func() error, delays ...time.Duration) error {
	done := make(chan error, 1)
	go func() {
		done <- call()
	}()
	for _, d := range delays {
		s.timeSource.BlockUntil(1)
		s.timeSource.Advance(d)
	}
	return <-done
}

func (s *clientSuite) counter(name string) int64 {
	var total int64
	for _, c := range s.testScope.Snapshot().Counters() {
		if c.Name() == name {
			total += c.Value()
		}
	}
	return total
}

func (s *clientSuite) TestStartWorkflow_Success() {
	s.service.EXPECT().StartWorkflowExecution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *types.StartWorkflowExecutionRequest, _ ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error) {
			s.Equal(testDomain, request.Domain)
			s.Equal("wid", request.WorkflowID)
			s.Equal("id-1", request.RequestID)
			s.Equal(testIdentity, request.Identity)
			return &types.StartWorkflowExecutionResponse{RunID: "rid"}, nil
		})

	execution, err := s.client.StartWorkflow(context.Background(), s.startParams())
	s.NoError(err)
	s.Equal(&types.WorkflowExecution{WorkflowID: "wid", RunID: "rid"}, execution)
	s.Equal(int64(1), s.counter("workflow_start"))
	s.Equal(int64(1), s.counter("cadence_requests"))
	s.Equal(int64(0), s.counter("cadence_errors"))

	spans := s.tracer.FinishedSpans()
	s.Len(spans, 1)
	s.Equal("StartWorkflow", spans[0].OperationName)
	s.Equal(testDomain, spans[0].Tag("cadence.domain"))
}

func (s *clientSuite) TestStartWorkflow_GeneratesWorkflowID() {
	params := s.startParams()
	params.WorkflowID = ""
	s.service.EXPECT().StartWorkflowExecution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *types.StartWorkflowExecutionRequest, _ ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error) {
			s.Equal("id-1", request.WorkflowID)
			s.Equal("id-2", request.RequestID)
			return &types.StartWorkflowExecutionResponse{RunID: "rid"}, nil
		})

	execution, err := s.client.StartWorkflow(context.Background(), params)
	s.NoError(err)
	s.Equal("id-1", execution.WorkflowID)
}

func (s *clientSuite) TestStartWorkflow_SameRequestIDAcrossAttempts() {
	var requestIDs []string
	attempts := 0
	s.service.EXPECT().StartWorkflowExecution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *types.StartWorkflowExecutionRequest, _ ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error) {
			attempts++
			requestIDs = append(requestIDs, request.RequestID)
			if attempts < 3 {
				return nil, errServiceBusy
			}
			return &types.StartWorkflowExecutionResponse{RunID: "rid"}, nil
		}).Times(3)

	err := s.runBlocking(func() error {
		_, err := s.client.StartWorkflow(context.Background(), s.startParams())
		return err
	}, 200*time.Millisecond, 400*time.Millisecond)
	s.NoError(err)
	s.Equal([]string{"id-1", "id-1", "id-1"}, requestIDs)
	s.Equal(int64(2), s.counter("cadence_retries"))
}

func (s *clientSuite) TestStartWorkflow_DelaySequence() {
	var attemptTimes []time.Time
	start := s.timeSource.Now()
	s.service.EXPECT().StartWorkflowExecution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *types.StartWorkflowExecutionRequest, ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error) {
			attemptTimes = append(attemptTimes, s.timeSource.Now())
			if len(attemptTimes) < 4 {
				return nil, errServiceBusy
			}
			return &types.StartWorkflowExecutionResponse{RunID: "rid"}, nil
		}).Times(4)

	err := s.runBlocking(func() error {
		_, err := s.client.StartWorkflow(context.Background(), s.startParams())
		return err
	}, 200*time.Millisecond, 400*time.Millisecond, 800*time.Millisecond)
	s.NoError(err)
	s.Equal([]time.Time{
		start,
		start.Add(200 * time.Millisecond),
		start.Add(600 * time.Millisecond),
		start.Add(1400 * time.Millisecond),
	}, attemptTimes)
}

func (s *clientSuite) TestStartWorkflow_ExhaustsAttempts() {
	policy := backoff.NewExponentialRetryPolicy(time.Second)
	policy.SetMaximumAttempts(3)
	client := s.newClient(WithRetryPolicy(policy))

	s.service.EXPECT().StartWorkflowExecution(gomock.Any(), gomock.Any()).Return(nil, errServiceBusy).Times(3)

	err := s.runBlocking(func() error {
		_, err := client.StartWorkflow(context.Background(), s.startParams())
		return err
	}, time.Second, 2*time.Second)

	var serviceErr *ServiceError
	s.True(errors.As(err, &serviceErr))
	s.Equal("StartWorkflow", serviceErr.Operation)
	s.Same(errServiceBusy, errors.Unwrap(err))
	s.Equal(int64(1), s.counter("workflow_start"))
	s.Equal(int64(1), s.counter("cadence_errors"))
}

func (s *clientSuite) TestStartWorkflow_TransportTimeoutIsWrapped() {
	policy := backoff.NewExponentialRetryPolicy(time.Second)
	policy.SetMaximumAttempts(2)
	client := s.newClient(WithRetryPolicy(policy))

	s.service.EXPECT().StartWorkflowExecution(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded).Times(2)

	err := s.runBlocking(func() error {
		_, err := client.StartWorkflow(context.Background(), s.startParams())
		return err
	}, time.Second)

	var serviceErr *ServiceError
	s.True(errors.As(err, &serviceErr))
	s.Equal(context.DeadlineExceeded, serviceErr.Cause)
	s.Equal(int64(0), s.counter("cadence_errors_deadline_exceeded"))
	s.Equal(int64(1), s.counter("cadence_errors"))
}

func (s *clientSuite) TestStartWorkflow_AlreadyStartedIsNotRetried() {
	alreadyStarted := &types.WorkflowExecutionAlreadyStartedError{Message: "started", RunID: "rid"}
	s.service.EXPECT().StartWorkflowExecution(gomock.Any(), gomock.Any()).Return(nil, alreadyStarted).Times(1)

	execution, err := s.client.StartWorkflow(context.Background(), s.startParams())
	s.Nil(execution)
	s.Same(alreadyStarted, err)
	s.Equal(int64(1), s.counter("workflow_start"))
	s.Equal(int64(1), s.counter("cadence_errors_terminal"))
}

func (s *clientSuite) TestStartWorkflow_BadRequestIsNotRetried() {
	badRequest := &types.BadRequestError{Message: "bad"}
	s.service.EXPECT().StartWorkflowExecution(gomock.Any(), gomock.Any()).Return(nil, badRequest).Times(1)

	_, err := s.client.StartWorkflow(context.Background(), s.startParams())
	s.Same(badRequest, err)
}

func (s *clientSuite) TestStartWorkflow_InvalidParametersCountedOnce() {
	params := s.startParams()
	params.CronSchedule = "not a schedule"

	_, err := s.client.StartWorkflow(context.Background(), params)
	var badRequest *types.BadRequestError
	s.True(errors.As(err, &badRequest))
	s.Equal(int64(1), s.counter("workflow_start"))
	s.Equal(int64(0), s.counter("cadence_requests"))
}

func (s *clientSuite) TestStartWorkflow_ContextCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.client.StartWorkflow(ctx, s.startParams())
	s.Equal(context.Canceled, err)
}

func (s *clientSuite) TestStartWorkflowAsync_Success() {
	s.asyncService.EXPECT().StartWorkflowExecutionWithTimeout(gomock.Any(), gomock.Any(), time.Duration(0), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, request *types.StartWorkflowExecutionRequest, _ time.Duration, onComplete func(*types.StartWorkflowExecutionResponse), _ func(error)) {
			s.Equal("id-1", request.RequestID)
			go onComplete(&types.StartWorkflowExecutionResponse{RunID: "rid"})
		})

	f := s.client.StartWorkflowAsync(context.Background(), s.startParams(), 0)
	var execution *types.WorkflowExecution
	s.NoError(f.Get(context.Background(), &execution))
	s.Equal(&types.WorkflowExecution{WorkflowID: "wid", RunID: "rid"}, execution)
	s.Equal(int64(1), s.counter("workflow_start"))
}

func (s *clientSuite) TestStartWorkflowAsync_TimeoutResolvesDeadlineExceeded() {
	attempts := atomic.NewInt32(0)
	s.asyncService.EXPECT().StartWorkflowExecutionWithTimeout(gomock.Any(), gomock.Any(), time.Second, gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ *types.StartWorkflowExecutionRequest, _ time.Duration, _ func(*types.StartWorkflowExecutionResponse), onError func(error)) {
			attempts.Inc()
			onError(errServiceBusy)
		}).Times(3)

	f := s.client.StartWorkflowAsync(context.Background(), s.startParams(), time.Second)
	s.timeSource.BlockUntil(1)
	s.timeSource.Advance(200 * time.Millisecond)
	s.timeSource.BlockUntil(1)
	s.timeSource.Advance(400 * time.Millisecond)

	err := f.Get(context.Background(), nil)
	s.True(errors.Is(err, backoff.ErrDeadlineExceeded))
	s.Equal(int32(3), attempts.Load())
	s.Equal(int64(1), s.counter("cadence_errors_deadline_exceeded"))
}

func (s *clientSuite) TestStartWorkflowAsync_CancelStopsAttempts() {
	attempts := atomic.NewInt32(0)
	s.asyncService.EXPECT().StartWorkflowExecutionWithTimeout(gomock.Any(), gomock.Any(), time.Duration(0), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ *types.StartWorkflowExecutionRequest, _ time.Duration, _ func(*types.StartWorkflowExecutionResponse), onError func(error)) {
			attempts.Inc()
			onError(errServiceBusy)
		}).Times(1)

	f := s.client.StartWorkflowAsync(context.Background(), s.startParams(), 0)
	s.timeSource.BlockUntil(1)
	s.True(f.Cancel())
	s.timeSource.Advance(time.Minute)

	s.Equal(future.ErrCanceled, f.Get(context.Background(), nil))
	s.Never(func() bool { return attempts.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
	s.Len(s.tracer.FinishedSpans(), 1)
}

func (s *clientSuite) TestPolicyWithTimeout() {
	c := s.client.(*clientImpl)
	for _, timeout := range []time.Duration{0, -time.Second, time.Duration(math.MaxInt64)} {
		s.Same(c.rpcPolicy, c.policyWithTimeout(timeout), timeout.String())
	}

	derived := c.policyWithTimeout(time.Minute)
	s.NotSame(c.rpcPolicy, derived)
	s.Equal(s.timeSource.Now().Add(time.Minute), derived.Deadline(s.timeSource.Now()))
	s.True(c.rpcPolicy.Deadline(s.timeSource.Now()).IsZero())
}

func (s *clientSuite) TestEnqueueStartWorkflow() {
	s.service.EXPECT().StartWorkflowExecutionAsync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *types.StartWorkflowExecutionAsyncRequest, _ ...yarpc.CallOption) (*types.StartWorkflowExecutionAsyncResponse, error) {
			s.Equal("wid", request.WorkflowID)
			s.Equal("id-1", request.RequestID)
			return &types.StartWorkflowExecutionAsyncResponse{}, nil
		})

	execution, err := s.client.EnqueueStartWorkflow(context.Background(), s.startParams())
	s.NoError(err)
	s.Equal(&types.WorkflowExecution{WorkflowID: "wid"}, execution)
	s.Equal(int64(1), s.counter("workflow_start_async"))
	s.Equal(int64(0), s.counter("workflow_start"))
}

func (s *clientSuite) TestEnqueueStartWorkflowAsync() {
	s.asyncService.EXPECT().StartWorkflowExecutionAsyncWithTimeout(gomock.Any(), gomock.Any(), 5*time.Second, gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ *types.StartWorkflowExecutionAsyncRequest, _ time.Duration, onComplete func(*types.StartWorkflowExecutionAsyncResponse), _ func(error)) {
			go onComplete(&types.StartWorkflowExecutionAsyncResponse{})
		})

	f := s.client.EnqueueStartWorkflowAsync(context.Background(), s.startParams(), 5*time.Second)
	var execution *types.WorkflowExecution
	s.NoError(f.Get(context.Background(), &execution))
	s.Equal("wid", execution.WorkflowID)
	s.Empty(execution.RunID)
	s.Equal(int64(1), s.counter("workflow_start_async"))
}

func (s *clientSuite) TestSignalWorkflowExecution() {
	s.service.EXPECT().SignalWorkflowExecution(gomock.Any(), &types.SignalWorkflowExecutionRequest{
		Domain:            testDomain,
		WorkflowExecution: &types.WorkflowExecution{WorkflowID: "wid", RunID: "rid"},
		SignalName:        "signal",
		Input:             []byte("input"),
		Identity:          testIdentity,
		RequestID:         "id-1",
		Control:           []byte("control"),
	}).Return(nil)

	s.NoError(s.client.SignalWorkflowExecution(context.Background(), &SignalWorkflowParameters{
		WorkflowID: "wid",
		RunID:      "rid",
		SignalName: "signal",
		Input:      []byte("input"),
		Control:    []byte("control"),
	}))
}

func (s *clientSuite) TestSignalWorkflowExecution_EntityNotExists() {
	notExists := &types.EntityNotExistsError{Message: "gone"}
	s.service.EXPECT().SignalWorkflowExecution(gomock.Any(), gomock.Any()).Return(notExists).Times(1)

	err := s.client.SignalWorkflowExecution(context.Background(), &SignalWorkflowParameters{WorkflowID: "wid"})
	s.Same(notExists, err)
}

func (s *clientSuite) TestSignalWorkflowExecutionAsync() {
	var requestIDs []string
	s.asyncService.EXPECT().SignalWorkflowExecutionWithTimeout(gomock.Any(), gomock.Any(), time.Duration(0), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, request *types.SignalWorkflowExecutionRequest, _ time.Duration, onComplete func(), onError func(error)) {
			requestIDs = append(requestIDs, request.RequestID)
			if len(requestIDs) == 1 {
				onError(errServiceBusy)
				return
			}
			go onComplete()
		}).Times(2)

	f := s.client.SignalWorkflowExecutionAsync(context.Background(), &SignalWorkflowParameters{WorkflowID: "wid", SignalName: "signal"}, -time.Second)
	s.timeSource.BlockUntil(1)
	s.timeSource.Advance(200 * time.Millisecond)

	s.NoError(f.Get(context.Background(), nil))
	s.Equal([]string{"id-1", "id-1"}, requestIDs)
}

func (s *clientSuite) TestSignalWithStartWorkflowExecution() {
	params := &SignalWithStartWorkflowParameters{
		Start:       *s.startParams(),
		SignalName:  "signal",
		SignalInput: []byte("signal-input"),
	}
	s.service.EXPECT().SignalWithStartWorkflowExecution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *types.SignalWithStartWorkflowExecutionRequest, _ ...yarpc.CallOption) (*types.StartWorkflowExecutionResponse, error) {
			s.Equal("wid", request.WorkflowID)
			s.Equal("signal", request.SignalName)
			s.Equal([]byte("signal-input"), request.SignalInput)
			s.Equal([]byte("input"), request.Input)
			s.Equal("tl", request.TaskList.GetName())
			s.Equal("id-1", request.RequestID)
			return &types.StartWorkflowExecutionResponse{RunID: "rid"}, nil
		})

	execution, err := s.client.SignalWithStartWorkflowExecution(context.Background(), params)
	s.NoError(err)
	s.Equal(&types.WorkflowExecution{WorkflowID: "wid", RunID: "rid"}, execution)
	s.Equal(int64(1), s.counter("workflow_signal_with_start"))
}

func (s *clientSuite) TestSignalWithStartWorkflowExecution_CountedOnFailure() {
	s.service.EXPECT().SignalWithStartWorkflowExecution(gomock.Any(), gomock.Any()).
		Return(nil, &types.BadRequestError{Message: "bad"})

	_, err := s.client.SignalWithStartWorkflowExecution(context.Background(), &SignalWithStartWorkflowParameters{Start: *s.startParams()})
	s.Error(err)
	s.Equal(int64(1), s.counter("workflow_signal_with_start"))
}

func (s *clientSuite) TestEnqueueSignalWithStartWorkflowExecution() {
	s.service.EXPECT().SignalWithStartWorkflowExecutionAsync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *types.SignalWithStartWorkflowExecutionAsyncRequest, _ ...yarpc.CallOption) (*types.SignalWithStartWorkflowExecutionAsyncResponse, error) {
			s.Equal("signal", request.SignalName)
			return &types.SignalWithStartWorkflowExecutionAsyncResponse{}, nil
		})

	execution, err := s.client.EnqueueSignalWithStartWorkflowExecution(context.Background(), &SignalWithStartWorkflowParameters{
		Start:      *s.startParams(),
		SignalName: "signal",
	})
	s.NoError(err)
	s.Equal(&types.WorkflowExecution{WorkflowID: "wid"}, execution)
	s.Equal(int64(1), s.counter("workflow_signal_with_start_async"))
	s.Equal(int64(0), s.counter("workflow_signal_with_start"))
}

func (s *clientSuite) TestQueryWorkflow() {
	response := &types.QueryWorkflowResponse{QueryResult: []byte("result")}
	s.service.EXPECT().QueryWorkflow(gomock.Any(), &types.QueryWorkflowRequest{
		Domain:                testDomain,
		Execution:             &types.WorkflowExecution{WorkflowID: "wid", RunID: "rid"},
		Query:                 &types.WorkflowQuery{QueryType: "state", QueryArgs: []byte("args")},
		QueryRejectCondition:  types.QueryRejectConditionNotOpen.Ptr(),
		QueryConsistencyLevel: types.QueryConsistencyLevelStrong.Ptr(),
	}).Return(response, nil)

	result, err := s.client.QueryWorkflow(context.Background(), &QueryWorkflowParameters{
		WorkflowID:            "wid",
		RunID:                 "rid",
		QueryType:             "state",
		Input:                 []byte("args"),
		QueryRejectCondition:  types.QueryRejectConditionNotOpen.Ptr(),
		QueryConsistencyLevel: types.QueryConsistencyLevelStrong.Ptr(),
	})
	s.NoError(err)
	s.Same(response, result)
	// queries are read only and take no request id
	s.Equal(int32(0), s.ids.Load())
}

func (s *clientSuite) TestRequestCancelWorkflowExecution() {
	attempts := 0
	s.service.EXPECT().RequestCancelWorkflowExecution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *types.RequestCancelWorkflowExecutionRequest, _ ...yarpc.CallOption) error {
			attempts++
			s.Equal("id-1", request.RequestID)
			s.Equal("cause", request.Cause)
			s.Equal("first-rid", request.FirstExecutionRunID)
			if attempts == 1 {
				return errServiceBusy
			}
			return nil
		}).Times(2)

	err := s.runBlocking(func() error {
		return s.client.RequestCancelWorkflowExecution(context.Background(), &CancelWorkflowParameters{
			WorkflowID:          "wid",
			Cause:               "cause",
			FirstExecutionRunID: "first-rid",
		})
	}, 200*time.Millisecond)
	s.NoError(err)
}

func (s *clientSuite) TestTerminateWorkflowExecution() {
	s.service.EXPECT().TerminateWorkflowExecution(gomock.Any(), &types.TerminateWorkflowExecutionRequest{
		Domain:            testDomain,
		WorkflowExecution: &types.WorkflowExecution{WorkflowID: "wid", RunID: "rid"},
		Reason:            "reason",
		Details:           []byte("details"),
		Identity:          testIdentity,
		RequestID:         "id-1",
	}).Return(nil)

	s.NoError(s.client.TerminateWorkflowExecution(context.Background(), &TerminateWorkflowParameters{
		WorkflowID: "wid",
		RunID:      "rid",
		Reason:     "reason",
		Details:    []byte("details"),
	}))
}

func (s *clientSuite) TestDomainAndUniqueID() {
	s.Equal(testDomain, s.client.Domain())
	s.Equal("id-1", s.client.GenerateUniqueID())
	s.Equal("id-2", s.client.GenerateUniqueID())
}

func (s *clientSuite) TestNilParameters() {
	var badRequest *types.BadRequestError
	_, err := s.client.StartWorkflow(context.Background(), nil)
	s.True(errors.As(err, &badRequest))
	s.True(errors.As(s.client.SignalWorkflowExecution(context.Background(), nil), &badRequest))
	s.True(errors.As(s.client.StartWorkflowAsync(context.Background(), nil, 0).Get(context.Background(), nil), &badRequest))
	s.Equal(int64(2), s.counter("workflow_start"))
}
