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
	"math"
	"time"
)

const (
	// NoMaximumAttempts represents the maximum attempts value for an unbounded policy
	NoMaximumAttempts = 0

	defaultBackoffCoefficient = 2.0
	defaultMaximumInterval    = 10 * time.Second
)

type (
	// RetryPolicy is the policy consulted by the retry engine between attempts
	RetryPolicy interface {
		// Backoff returns the delay after the failed attempt with the given 1-based number.
		Backoff(attempt int) time.Duration
		// MaximumAttempts returns the attempt cap, NoMaximumAttempts when unbounded.
		MaximumAttempts() int
		// Deadline returns the instant after which no attempt may start for a call
		// that began at start, the zero time when there is none.
		Deadline(start time.Time) time.Time
		// IsNonRetriable reports whether failures with the given reason must not be retried.
		IsNonRetriable(reason string) bool
	}

	// ExponentialRetryPolicy provides the implementation for retry policy using a coefficient to compute the next delay.
	// Formula used to compute the next delay is: min(initialInterval * pow(backoffCoefficient, attempt-1), maximumInterval)
	//
	// Setters are for construction only. A built policy is shared by concurrent calls and
	// must not be mutated, WithExpiration derives a copy instead.
	ExponentialRetryPolicy struct {
		initialInterval     time.Duration
		backoffCoefficient  float64
		maximumInterval     time.Duration
		expirationInterval  time.Duration
		expirationTime      time.Time
		maximumAttempts     int
		nonRetriableReasons map[string]struct{}
	}
)

var _ RetryPolicy = (*ExponentialRetryPolicy)(nil)

// NewExponentialRetryPolicy returns an instance of ExponentialRetryPolicy using the provided initialInterval
func NewExponentialRetryPolicy(initialInterval time.Duration) *ExponentialRetryPolicy {
	p := &ExponentialRetryPolicy{
		initialInterval:    initialInterval,
		backoffCoefficient: defaultBackoffCoefficient,
		maximumInterval:    defaultMaximumInterval,
		maximumAttempts:    NoMaximumAttempts,
	}

	return p
}

// SetInitialInterval sets the initial interval used by ExponentialRetryPolicy for the very first retry
// All later retries are computed using the following formula:
// initialInterval * math.pow(backoffCoefficient, currentAttempt)
func (p *ExponentialRetryPolicy) SetInitialInterval(initialInterval time.Duration) {
	p.initialInterval = initialInterval
}

// SetBackoffCoefficient sets the coefficient used by ExponentialRetryPolicy to compute next delay for each retry
// All retries are computed using the following formula:
// initialInterval * math.pow(backoffCoefficient, currentAttempt)
func (p *ExponentialRetryPolicy) SetBackoffCoefficient(backoffCoefficient float64) {
	p.backoffCoefficient = math.Max(1, backoffCoefficient)
}

// SetMaximumInterval sets the maximum interval for each retry, 0 disables the cap
func (p *ExponentialRetryPolicy) SetMaximumInterval(maximumInterval time.Duration) {
	p.maximumInterval = maximumInterval
}

// SetExpirationInterval sets the relative budget of a call, measured from its first attempt
func (p *ExponentialRetryPolicy) SetExpirationInterval(expirationInterval time.Duration) {
	p.expirationInterval = expirationInterval
}

// SetMaximumAttempts sets the maximum number of attempts, including the first one
func (p *ExponentialRetryPolicy) SetMaximumAttempts(maximumAttempts int) {
	p.maximumAttempts = maximumAttempts
}

// SetNonRetriableErrorReasons sets the error reasons that abort retries immediately
func (p *ExponentialRetryPolicy) SetNonRetriableErrorReasons(reasons ...string) {
	p.nonRetriableReasons = make(map[string]struct{}, len(reasons))
	for _, reason := range reasons {
		p.nonRetriableReasons[reason] = struct{}{}
	}
}

// WithExpiration returns a copy of the policy whose absolute deadline is the given time.
// The receiver is left untouched.
func (p *ExponentialRetryPolicy) WithExpiration(deadline time.Time) *ExponentialRetryPolicy {
	derived := *p
	derived.expirationTime = deadline
	return &derived
}

// InitialInterval returns the delay after the first failed attempt
func (p *ExponentialRetryPolicy) InitialInterval() time.Duration {
	return p.initialInterval
}

// BackoffCoefficient returns the growth factor between delays
func (p *ExponentialRetryPolicy) BackoffCoefficient() float64 {
	return p.backoffCoefficient
}

// MaximumInterval returns the cap on a single delay
func (p *ExponentialRetryPolicy) MaximumInterval() time.Duration {
	return p.maximumInterval
}

// ExpirationInterval returns the relative budget of a call
func (p *ExponentialRetryPolicy) ExpirationInterval() time.Duration {
	return p.expirationInterval
}

// MaximumAttempts returns the maximum number of attempts
func (p *ExponentialRetryPolicy) MaximumAttempts() int {
	return p.maximumAttempts
}

// Backoff returns the delay after the failed attempt with the given 1-based number
func (p *ExponentialRetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	nextInterval := float64(p.initialInterval) * math.Pow(p.backoffCoefficient, float64(attempt-1))
	if p.maximumInterval > 0 && nextInterval > float64(p.maximumInterval) {
		return p.maximumInterval
	}
	if nextInterval >= math.MaxInt64 || math.IsInf(nextInterval, 0) || math.IsNaN(nextInterval) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(nextInterval)
}

// Deadline returns the absolute deadline when one is set, otherwise start plus the
// expiration interval, otherwise the zero time
func (p *ExponentialRetryPolicy) Deadline(start time.Time) time.Time {
	if !p.expirationTime.IsZero() {
		return p.expirationTime
	}
	if p.expirationInterval > 0 {
		return start.Add(p.expirationInterval)
	}
	return time.Time{}
}

// IsNonRetriable reports whether failures with the given reason must not be retried
func (p *ExponentialRetryPolicy) IsNonRetriable(reason string) bool {
	if reason == "" {
		return false
	}
	_, ok := p.nonRetriableReasons[reason]
	return ok
}
