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
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/atomic"
)

// ErrCanceled is returned by Get on a future that was canceled before it was resolved
var ErrCanceled = errors.New("future canceled")

type (
	// Future represents a value that will be available in the future
	Future interface {
		// Get blocks until the future is ready or ctx is done. When valuePtr is not nil
		// the resolved value is copied into it.
		Get(ctx context.Context, valuePtr interface{}) error
		// IsReady reports whether the future is resolved, failed or canceled.
		IsReady() bool
		// Done is closed once the future is ready.
		Done() <-chan struct{}
		// Cancel resolves a pending future to ErrCanceled and runs the registered
		// cancellation hooks. It returns false if the future was already ready.
		Cancel() bool
		// IsCanceled reports whether the future was resolved by Cancel.
		IsCanceled() bool
	}

	// Settable is for resolving a Future
	Settable interface {
		// Set resolves the future, it panics if the future is already ready.
		Set(value interface{}, err error)
		// TrySet resolves the future unless it is already ready, reporting whether it did.
		TrySet(value interface{}, err error) bool
		// OnCancel registers a hook run when the future is canceled. It runs immediately
		// if the future has already been canceled and is dropped once the future
		// is resolved any other way.
		OnCancel(fn func())
	}

	futureImpl struct {
		value   interface{}
		err     error
		state   atomic.Int32
		readyCh chan struct{}

		mu          sync.Mutex
		cancelHooks []func()
	}
)

const (
	statePending int32 = iota
	stateResolving
	stateSucceeded
	stateFailed
	stateCanceled
)

// NewFuture creates a new future as well as the settable for resolving it
func NewFuture() (Future, Settable) {
	f := &futureImpl{
		readyCh: make(chan struct{}),
	}
	return f, f
}

func (f *futureImpl) Get(
	ctx context.Context,
	valuePtr interface{},
) error {
	// a resolved future is returned even when ctx is already done
	if !f.IsReady() {
		select {
		case <-f.readyCh:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if f.err != nil {
		return f.err
	}
	if valuePtr == nil {
		return nil
	}

	rv := reflect.ValueOf(valuePtr)
	if rv.Type().Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("valuePtr parameter is not a pointer")
	}
	if f.value == nil {
		rv.Elem().Set(reflect.Zero(rv.Elem().Type()))
		return nil
	}

	fv := reflect.ValueOf(f.value)
	if !fv.Type().AssignableTo(rv.Elem().Type()) {
		return fmt.Errorf("cannot assign future value of type %v to %v", fv.Type(), rv.Elem().Type())
	}
	rv.Elem().Set(fv)
	return nil
}

func (f *futureImpl) IsReady() bool {
	return f.state.Load() > stateResolving
}

func (f *futureImpl) IsCanceled() bool {
	return f.state.Load() == stateCanceled
}

func (f *futureImpl) Done() <-chan struct{} {
	return f.readyCh
}

func (f *futureImpl) Set(
	value interface{},
	err error,
) {
	if !f.TrySet(value, err) {
		panic("future has already been set")
	}
}

func (f *futureImpl) TrySet(
	value interface{},
	err error,
) bool {
	target := stateSucceeded
	if err != nil {
		target = stateFailed
	}
	if !f.resolve(target, value, err) {
		return false
	}

	f.mu.Lock()
	f.cancelHooks = nil
	f.mu.Unlock()
	return true
}

func (f *futureImpl) Cancel() bool {
	if !f.resolve(stateCanceled, nil, ErrCanceled) {
		return false
	}

	f.mu.Lock()
	hooks := f.cancelHooks
	f.cancelHooks = nil
	f.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
	return true
}

func (f *futureImpl) OnCancel(fn func()) {
	f.mu.Lock()
	if f.state.Load() == statePending {
		f.cancelHooks = append(f.cancelHooks, fn)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()

	<-f.readyCh
	if f.IsCanceled() {
		fn()
	}
}

// resolve moves the future out of the pending state exactly once
func (f *futureImpl) resolve(
	target int32,
	value interface{},
	err error,
) bool {
	if !f.state.CompareAndSwap(statePending, stateResolving) {
		return false
	}
	f.value = value
	f.err = err
	f.state.Store(target)
	close(f.readyCh)
	return true
}
