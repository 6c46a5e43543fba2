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

package errors

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/uber/cadence-external-client/common/types"
)

var (
	// ErrFakeServiceBusy is a fake service busy error.
	ErrFakeServiceBusy = &types.ServiceBusyError{Message: "Fake Service Busy Error."}
	// ErrFakeInternalService is a fake internal service error.
	ErrFakeInternalService = &types.InternalServiceError{Message: "Fake Internal Service Error."}
	// ErrFakeTimeout is a fake timeout error.
	ErrFakeTimeout = context.DeadlineExceeded
	// ErrFakeUnhandled is a fake unhandled error.
	ErrFakeUnhandled = errors.New("fake unhandled error")
)

var fakeErrors = []error{
	ErrFakeServiceBusy,
	ErrFakeInternalService,
	ErrFakeTimeout,
	ErrFakeUnhandled,
}

// FaultInjector decides, per call, whether a fake error replaces the real
// outcome and whether the real call is still forwarded
type FaultInjector struct {
	errorRate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewFaultInjector creates a FaultInjector failing roughly errorRate of all calls
func NewFaultInjector(errorRate float64) *FaultInjector {
	return NewFaultInjectorWithSource(errorRate, rand.NewSource(time.Now().UnixNano()))
}

// NewFaultInjectorWithSource is NewFaultInjector with a deterministic random source
func NewFaultInjectorWithSource(errorRate float64, source rand.Source) *FaultInjector {
	return &FaultInjector{
		errorRate: errorRate,
		rnd:       rand.New(source),
	}
}

// GenerateFakeError returns a random fake error, or nil when the call should
// proceed untouched
func (f *FaultInjector) GenerateFakeError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rnd.Float64() < f.errorRate {
		return fakeErrors[f.rnd.Intn(len(fakeErrors))]
	}
	return nil
}

// ShouldForwardCall determines if the call should be forward to the underlying
// client given the fake error generated
func (f *FaultInjector) ShouldForwardCall(err error) bool {
	if err == nil {
		return true
	}

	if err == ErrFakeTimeout || err == ErrFakeUnhandled {
		// forward the call with 50% chance
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.rnd.Intn(2) == 0
	}

	return false
}
