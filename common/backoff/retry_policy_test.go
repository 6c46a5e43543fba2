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

package backoff

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/uber/cadence-external-client/common/types"
)

func TestExponentialBackoff(t *testing.T) {
	policy := NewExponentialRetryPolicy(200 * time.Millisecond)
	policy.SetMaximumInterval(5 * time.Second)

	expected := []time.Duration{
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		1600 * time.Millisecond,
		3200 * time.Millisecond,
		5 * time.Second,
		5 * time.Second,
	}
	for i, want := range expected {
		assert.Equal(t, want, policy.Backoff(i+1), "attempt %d", i+1)
	}
}

func TestBackoffCoefficient(t *testing.T) {
	policy := NewExponentialRetryPolicy(time.Second)
	policy.SetBackoffCoefficient(3)
	policy.SetMaximumInterval(0)
	assert.Equal(t, time.Second, policy.Backoff(1))
	assert.Equal(t, 3*time.Second, policy.Backoff(2))
	assert.Equal(t, 9*time.Second, policy.Backoff(3))

	policy.SetBackoffCoefficient(0.5)
	assert.Equal(t, 1.0, policy.BackoffCoefficient())
	assert.Equal(t, time.Second, policy.Backoff(5))
}

func TestBackoffOverflow(t *testing.T) {
	policy := NewExponentialRetryPolicy(time.Hour)
	policy.SetMaximumInterval(0)
	assert.Equal(t, time.Duration(math.MaxInt64), policy.Backoff(1000))
}

func TestDeadline(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	policy := NewExponentialRetryPolicy(time.Second)
	assert.True(t, policy.Deadline(start).IsZero())

	policy.SetExpirationInterval(time.Minute)
	assert.Equal(t, start.Add(time.Minute), policy.Deadline(start))

	absolute := start.Add(10 * time.Second)
	derived := policy.WithExpiration(absolute)
	assert.Equal(t, absolute, derived.Deadline(start))
	assert.Equal(t, start.Add(time.Minute), policy.Deadline(start), "original policy must not change")
}

func TestWithExpirationKeepsSettings(t *testing.T) {
	policy := NewExponentialRetryPolicy(200 * time.Millisecond)
	policy.SetMaximumInterval(5 * time.Second)
	policy.SetMaximumAttempts(10)
	policy.SetNonRetriableErrorReasons("BadRequestError")

	derived := policy.WithExpiration(time.Now().Add(time.Second))
	assert.Equal(t, 200*time.Millisecond, derived.InitialInterval())
	assert.Equal(t, 5*time.Second, derived.MaximumInterval())
	assert.Equal(t, 10, derived.MaximumAttempts())
	assert.True(t, derived.IsNonRetriable("BadRequestError"))
	assert.False(t, derived.IsNonRetriable(""))
	assert.False(t, derived.IsNonRetriable("ServiceBusyError"))
}

type reasonedError struct{}

func (reasonedError) Error() string  { return "reasoned" }
func (reasonedError) Reason() string { return "custom-reason" }

func TestErrorReason(t *testing.T) {
	assert.Equal(t, "", ErrorReason(nil))
	assert.Equal(t, "BadRequestError", ErrorReason(&types.BadRequestError{}))
	assert.Equal(t, "ServiceBusyError", ErrorReason(types.ServiceBusyError{}))
	assert.Equal(t, "custom-reason", ErrorReason(reasonedError{}))
	assert.Equal(t, "errorString", ErrorReason(errors.New("plain")))
}

func TestDeadlineExceededError(t *testing.T) {
	cause := &types.InternalServiceError{Message: "boom"}
	var err error = &DeadlineExceededError{Attempts: 2, LastErr: cause}

	assert.True(t, errors.Is(err, ErrDeadlineExceeded))
	var internal *types.InternalServiceError
	assert.False(t, errors.As(err, &internal))
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Contains(t, err.Error(), "boom")
}

func TestClassify(t *testing.T) {
	policy := NewExponentialRetryPolicy(time.Second)
	policy.SetNonRetriableErrorReasons("BadRequestError")

	assert.Equal(t, OutcomeSuccess, Classify(nil, policy, nil).Kind)
	assert.Equal(t, OutcomeTerminal, Classify(&types.BadRequestError{}, policy, nil).Kind)
	assert.Equal(t, OutcomeRetryable, Classify(&types.ServiceBusyError{}, policy, nil).Kind)

	never := func(error) bool { return false }
	outcome := Classify(&types.ServiceBusyError{}, policy, never)
	assert.Equal(t, OutcomeTerminal, outcome.Kind)
	assert.Equal(t, "terminal", outcome.Kind.String())
}
