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
	"fmt"
	"reflect"
)

// ErrDeadlineExceeded is matched by errors.Is on every DeadlineExceededError
var ErrDeadlineExceeded = errors.New("retry deadline exceeded")

// DeadlineExceededError is returned when the remaining budget of a call cannot fit the next attempt.
// LastErr is the error of the last attempt, kept for diagnostics. It is not unwrapped.
type DeadlineExceededError struct {
	Attempts int
	LastErr  error
}

func (e *DeadlineExceededError) Error() string {
	if e.LastErr == nil {
		return fmt.Sprintf("retry deadline exceeded after %d attempts", e.Attempts)
	}
	return fmt.Sprintf("retry deadline exceeded after %d attempts, last error: %v", e.Attempts, e.LastErr)
}

// Is reports whether target is ErrDeadlineExceeded
func (e *DeadlineExceededError) Is(target error) bool {
	return target == ErrDeadlineExceeded
}

type reasoner interface {
	Reason() string
}

// ErrorReason returns the reason of an error, compared against the non-retriable reasons of a policy.
// Errors exposing Reason() provide it themselves, otherwise the name of the error type is used.
func ErrorReason(err error) string {
	if err == nil {
		return ""
	}
	var r reasoner
	if errors.As(err, &r) {
		return r.Reason()
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
