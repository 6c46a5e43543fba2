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

package common

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/yarpc/yarpcerrors"

	"github.com/uber/cadence-external-client/common/types"
)

func TestCreateFrontendServiceRetryPolicy(t *testing.T) {
	policy := CreateFrontendServiceRetryPolicy()
	assert.Equal(t, 200*time.Millisecond, policy.Backoff(1))
	assert.Equal(t, 5*time.Second, policy.Backoff(10))
	assert.Equal(t, 10, policy.MaximumAttempts())
	assert.True(t, policy.Deadline(time.Now()).IsZero())
	assert.True(t, policy.IsNonRetriable("BadRequestError"))
	assert.True(t, policy.IsNonRetriable("WorkflowExecutionAlreadyStartedError"))
	assert.False(t, policy.IsNonRetriable("ServiceBusyError"))
}

func TestIsServiceTransientError(t *testing.T) {
	tests := map[string]struct {
		err  error
		want bool
	}{
		"internal":          {err: &types.InternalServiceError{}, want: true},
		"busy":              {err: &types.ServiceBusyError{}, want: true},
		"wrapped busy":      {err: fmt.Errorf("call: %w", &types.ServiceBusyError{}), want: true},
		"yarpc unavailable": {err: yarpcerrors.UnavailableErrorf("down"), want: true},
		"yarpc timeout":     {err: yarpcerrors.DeadlineExceededErrorf("slow"), want: true},
		"yarpc invalid":     {err: yarpcerrors.InvalidArgumentErrorf("bad"), want: false},
		"bad request":       {err: &types.BadRequestError{}, want: false},
		"plain":             {err: errors.New("plain"), want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsServiceTransientError(tt.err))
		})
	}
}

func TestFrontendRetry(t *testing.T) {
	assert.False(t, FrontendRetry(nil))
	assert.False(t, FrontendRetry(context.Canceled))
	assert.False(t, FrontendRetry(&types.WorkflowExecutionAlreadyStartedError{}))
	assert.False(t, FrontendRetry(&types.EntityNotExistsError{}))
	assert.False(t, FrontendRetry(&types.QueryFailedError{}))
	assert.True(t, FrontendRetry(&types.InternalServiceError{}))
	assert.True(t, FrontendRetry(yarpcerrors.UnavailableErrorf("down")))
	assert.True(t, FrontendRetry(errors.New("connection reset")))
}

func TestIsContextTimeoutError(t *testing.T) {
	assert.True(t, IsContextTimeoutError(context.DeadlineExceeded))
	assert.True(t, IsContextTimeoutError(&types.InternalServiceError{Message: context.DeadlineExceeded.Error()}))
	assert.True(t, IsContextTimeoutError(yarpcerrors.DeadlineExceededErrorf("slow")))
	assert.False(t, IsContextTimeoutError(&types.InternalServiceError{Message: "boom"}))
}

func TestClientIdentity(t *testing.T) {
	assert.Equal(t, "worker-1", ClientIdentity("worker-1"))
	assert.True(t, strings.HasPrefix(ClientIdentity(""), fmt.Sprintf("%d@", os.Getpid())))
}
