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
	"sync"
	"time"

	"github.com/uber/cadence-external-client/common/clock"
	"github.com/uber/cadence-external-client/common/future"
)

type asyncRetry struct {
	retrier   *Retrier
	ctx       context.Context
	operation AsyncOperation
	future    future.Future
	settable  future.Settable
	deadline  time.Time

	mu      sync.Mutex
	stopped bool
	timer   clock.Timer
	stopCtx func() bool
	lastErr error
}

// DoAsync runs operation under the retry policy without blocking the caller.
// Delays between attempts are timers of the time source. The returned future resolves exactly once:
// with the value of the first successful attempt, the terminal or last error, a
// DeadlineExceededError, ctx.Err() once ctx is done, or future.ErrCanceled when canceled.
// Canceling the future stops the pending timer. An attempt already in flight is not aborted
// and its result is discarded.
func (r *Retrier) DoAsync(ctx context.Context, operation AsyncOperation) future.Future {
	f, settable := future.NewFuture()
	if err := ctx.Err(); err != nil {
		err = r.mapError(err)
		r.onFinish(err)
		settable.Set(nil, err)
		return f
	}

	ar := &asyncRetry{
		retrier:   r,
		ctx:       ctx,
		operation: operation,
		future:    f,
		settable:  settable,
		deadline:  r.policy.Deadline(r.timeSource.Now()),
	}
	settable.OnCancel(func() {
		if ar.release() {
			r.onFinish(future.ErrCanceled)
		}
	})

	stopCtx := context.AfterFunc(ctx, func() {
		ar.finish(nil, ctx.Err())
	})
	ar.mu.Lock()
	if ar.stopped {
		ar.mu.Unlock()
		stopCtx()
		return f
	}
	ar.stopCtx = stopCtx
	ar.mu.Unlock()

	ar.attempt(1)
	return f
}

func (ar *asyncRetry) attempt(n int) {
	if ar.isStopped() {
		return
	}
	ar.operation(ar.ctx, func(value interface{}, err error) {
		ar.onResult(n, value, err)
	})
}

func (ar *asyncRetry) onResult(n int, value interface{}, err error) {
	if ar.future.IsReady() {
		return
	}

	outcome := Classify(err, ar.retrier.policy, ar.retrier.isRetryable)
	switch outcome.Kind {
	case OutcomeSuccess:
		ar.finish(value, nil)
		return
	case OutcomeTerminal:
		ar.finish(nil, outcome.Err)
		return
	}

	delay, stopErr := ar.retrier.nextDelay(n, err, ar.deadline)
	if stopErr != nil {
		ar.finish(nil, stopErr)
		return
	}
	ar.retrier.onRetry(n, err, delay)

	ar.mu.Lock()
	defer ar.mu.Unlock()
	if ar.stopped {
		return
	}
	ar.lastErr = err
	ar.timer = ar.retrier.timeSource.AfterFunc(delay, func() {
		ar.fire(n + 1)
	})
}

func (ar *asyncRetry) fire(n int) {
	ar.mu.Lock()
	ar.timer = nil
	lastErr := ar.lastErr
	ar.mu.Unlock()

	if !ar.deadline.IsZero() && ar.retrier.timeSource.Now().After(ar.deadline) {
		ar.finish(nil, &DeadlineExceededError{Attempts: n - 1, LastErr: lastErr})
		return
	}
	ar.attempt(n)
}

func (ar *asyncRetry) finish(value interface{}, err error) {
	if !ar.release() {
		return
	}
	if err != nil {
		err = ar.retrier.mapError(err)
	}
	ar.retrier.onFinish(err)
	ar.settable.TrySet(value, err)
}

// release stops the pending timer and detaches from the context, no attempt starts afterwards.
// Only the first call returns true.
func (ar *asyncRetry) release() bool {
	ar.mu.Lock()
	if ar.stopped {
		ar.mu.Unlock()
		return false
	}
	ar.stopped = true
	timer, stopCtx := ar.timer, ar.stopCtx
	ar.timer, ar.stopCtx = nil, nil
	ar.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	if stopCtx != nil {
		stopCtx()
	}
	return true
}

func (ar *asyncRetry) isStopped() bool {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	return ar.stopped
}
