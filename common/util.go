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

	"go.uber.org/yarpc/yarpcerrors"

	"github.com/uber/cadence-external-client/common/backoff"
	"github.com/uber/cadence-external-client/common/types"
)

// CreateFrontendServiceRetryPolicy creates a retry policy for calls to frontend service.
// The policy has no expiration, callers that need a deadline derive one with WithExpiration.
func CreateFrontendServiceRetryPolicy() *backoff.ExponentialRetryPolicy {
	policy := backoff.NewExponentialRetryPolicy(frontendServiceOperationInitialInterval)
	policy.SetMaximumInterval(frontendServiceOperationMaxInterval)
	policy.SetMaximumAttempts(frontendServiceOperationMaxAttempts)
	policy.SetNonRetriableErrorReasons(FrontendServiceNonRetriableReasons...)

	return policy
}

// IsServiceTransientError checks if the error is a transient error.
func IsServiceTransientError(err error) bool {

	var (
		typesInternalServiceError *types.InternalServiceError
		typesServiceBusyError     *types.ServiceBusyError
		yarpcErrorsStatus         *yarpcerrors.Status
	)

	switch {
	case errors.As(err, &typesInternalServiceError):
		return true
	case errors.As(err, &typesServiceBusyError):
		return true
	case errors.As(err, &yarpcErrorsStatus):
		// We only selectively retry the following yarpc errors client can safe retry with a backoff
		if yarpcerrors.IsUnavailable(err) ||
			yarpcerrors.IsUnknown(err) ||
			yarpcerrors.IsInternal(err) ||
			yarpcerrors.IsDeadlineExceeded(err) {
			return true
		}
		return false
	}

	return false
}

// IsServiceTerminalError checks if the error is a business error returned by the
// frontend that cannot change on retry.
func IsServiceTerminalError(err error) bool {
	switch err.(type) {
	case *types.WorkflowExecutionAlreadyStartedError,
		*types.EntityNotExistsError,
		*types.BadRequestError,
		*types.QueryFailedError,
		*types.DomainNotActiveError,
		*types.CancellationAlreadyRequestedError,
		*types.WorkflowExecutionAlreadyCompletedError,
		*types.LimitExceededError,
		*types.AccessDeniedError,
		*types.ClientVersionNotSupportedError,
		*types.FeatureNotEnabledError:
		return true
	}
	return false
}

// FrontendRetry checks if an error returned by the frontend should be retried.
// Everything that is not a terminal business error, nor a cancellation of the
// caller's own context, is retried.
func FrontendRetry(err error) bool {
	if err == nil || IsServiceTerminalError(err) {
		return false
	}
	return !errors.Is(err, context.Canceled)
}

// IsContextTimeoutError checks if the error is context timeout error
func IsContextTimeoutError(err error) bool {
	switch err := err.(type) {
	case *types.InternalServiceError:
		return err.Message == context.DeadlineExceeded.Error()
	}
	return err == context.DeadlineExceeded || yarpcerrors.IsDeadlineExceeded(err)
}

// ClientIdentity returns identity when set, otherwise pid@hostname of the current process
func ClientIdentity(identity string) string {
	if identity != "" {
		return identity
	}
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return fmt.Sprintf("%d@%s", os.Getpid(), hostname)
}
