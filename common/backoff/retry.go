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
	"context"
	"time"

	"github.com/uber/cadence-external-client/common/clock"
)

const defaultInitialInterval = 100 * time.Millisecond

type (
	// Operation is the blocking form of an operation to be retried
	Operation func(ctx context.Context) error

	// IsRetryable handler can be used to exclude certain errors during retry
	IsRetryable func(error) bool

	// AsyncOperation starts one attempt and reports its result through onComplete,
	// which must be called exactly once, from any goroutine.
	AsyncOperation func(ctx context.Context, onComplete func(value interface{}, err error))

	// RetryOption configures a Retrier
	RetryOption func(*Retrier)

	// Retrier runs operations under a retry policy. It holds no per-call state and is
	// safe for concurrent use.
	Retrier struct {
		policy      RetryPolicy
		isRetryable IsRetryable
		timeSource  clock.TimeSource
		onRetry     func(attempt int, err error, delay time.Duration)
		mapError    func(error) error
		onFinish    func(error)
	}
)

// WithRetryPolicy sets the policy consulted between attempts
func WithRetryPolicy(policy RetryPolicy) RetryOption {
	return func(r *Retrier) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// WithRetryableError sets the classifier rejecting errors that must not be retried
func WithRetryableError(isRetryable IsRetryable) RetryOption {
	return func(r *Retrier) {
		r.isRetryable = isRetryable
	}
}

// WithTimeSource sets the clock used for delays and deadlines
func WithTimeSource(timeSource clock.TimeSource) RetryOption {
	return func(r *Retrier) {
		if timeSource != nil {
			r.timeSource = timeSource
		}
	}
}

// WithOnRetry registers a hook called after a failed attempt, before waiting for the next one
func WithOnRetry(fn func(attempt int, err error, delay time.Duration)) RetryOption {
	return func(r *Retrier) {
		if fn != nil {
			r.onRetry = fn
		}
	}
}

// WithErrorMapper sets a function applied once to the final error of a call before it is returned.
// It is not applied to future.ErrCanceled of a canceled DoAsync.
func WithErrorMapper(fn func(error) error) RetryOption {
	return func(r *Retrier) {
		if fn != nil {
			r.mapError = fn
		}
	}
}

// WithOnFinish registers a hook called exactly once per call with its final error, nil on success.
// A canceled DoAsync reports future.ErrCanceled.
func WithOnFinish(fn func(err error)) RetryOption {
	return func(r *Retrier) {
		if fn != nil {
			r.onFinish = fn
		}
	}
}

// NewRetrier returns a Retrier. Without WithRetryPolicy it uses an unbounded exponential policy.
func NewRetrier(opts ...RetryOption) *Retrier {
	r := &Retrier{
		policy:     NewExponentialRetryPolicy(defaultInitialInterval),
		timeSource: clock.NewRealTimeSource(),
		onRetry:    func(int, error, time.Duration) {},
		mapError:   func(err error) error { return err },
		onFinish:   func(error) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retry function can be used to wrap any call with retry logic using the passed in policy
func Retry(ctx context.Context, operation Operation, policy RetryPolicy, isRetryable IsRetryable) error {
	return NewRetrier(WithRetryPolicy(policy), WithRetryableError(isRetryable)).Do(ctx, operation)
}

// Do calls operation until it succeeds, fails with a terminal error, runs out of attempts or
// budget, or ctx is done. The calling goroutine is blocked for the whole call, delays included.
func (r *Retrier) Do(ctx context.Context, operation Operation) error {
	err := r.do(ctx, operation)
	if err != nil {
		err = r.mapError(err)
	}
	r.onFinish(err)
	return err
}

func (r *Retrier) do(ctx context.Context, operation Operation) error {
	deadline := r.policy.Deadline(r.timeSource.Now())

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := operation(ctx)
		outcome := Classify(err, r.policy, r.isRetryable)
		switch outcome.Kind {
		case OutcomeSuccess:
			return nil
		case OutcomeTerminal:
			return outcome.Err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		delay, stopErr := r.nextDelay(attempt, err, deadline)
		if stopErr != nil {
			return stopErr
		}
		r.onRetry(attempt, err, delay)

		timer := r.timeSource.NewTimer(delay)
		select {
		case <-timer.Chan():
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

// nextDelay returns the wait before the attempt following the given one, or the error ending the call.
func (r *Retrier) nextDelay(attempt int, lastErr error, deadline time.Time) (time.Duration, error) {
	if maxAttempts := r.policy.MaximumAttempts(); maxAttempts != NoMaximumAttempts && attempt >= maxAttempts {
		return 0, lastErr
	}

	delay := r.policy.Backoff(attempt)
	if !deadline.IsZero() {
		remaining := deadline.Sub(r.timeSource.Now())
		if remaining <= 0 || delay > remaining {
			return 0, &DeadlineExceededError{Attempts: attempt, LastErr: lastErr}
		}
	}
	return delay, nil
}
