// Copyright (c) 2020 Uber Technologies Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package thrift

import (
	"go.uber.org/cadence/.gen/go/shared"
	"go.uber.org/thriftrw/ptr"

	"github.com/uber/cadence-external-client/common/types"
)

// FromError convert error to Thrift type if it comes as its internal equivalent
func FromError(err error) error {
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case *types.AccessDeniedError:
		return &shared.AccessDeniedError{Message: e.Message}
	case *types.BadRequestError:
		return &shared.BadRequestError{Message: e.Message}
	case *types.CancellationAlreadyRequestedError:
		return &shared.CancellationAlreadyRequestedError{Message: e.Message}
	case *types.ClientVersionNotSupportedError:
		return &shared.ClientVersionNotSupportedError{
			FeatureVersion:    e.FeatureVersion,
			ClientImpl:        e.ClientImpl,
			SupportedVersions: e.SupportedVersions,
		}
	case *types.FeatureNotEnabledError:
		return &shared.FeatureNotEnabledError{FeatureFlag: e.FeatureFlag}
	case *types.DomainNotActiveError:
		return &shared.DomainNotActiveError{
			Message:        e.Message,
			DomainName:     e.DomainName,
			CurrentCluster: e.CurrentCluster,
			ActiveCluster:  e.ActiveCluster,
		}
	case *types.EntityNotExistsError:
		return &shared.EntityNotExistsError{
			Message:        e.Message,
			CurrentCluster: optionalString(e.CurrentCluster),
			ActiveCluster:  optionalString(e.ActiveCluster),
		}
	case *types.WorkflowExecutionAlreadyCompletedError:
		return &shared.WorkflowExecutionAlreadyCompletedError{Message: e.Message}
	case *types.InternalServiceError:
		return &shared.InternalServiceError{Message: e.Message}
	case *types.LimitExceededError:
		return &shared.LimitExceededError{Message: e.Message}
	case *types.QueryFailedError:
		return &shared.QueryFailedError{Message: e.Message}
	case *types.ServiceBusyError:
		return &shared.ServiceBusyError{Message: e.Message}
	case *types.WorkflowExecutionAlreadyStartedError:
		return &shared.WorkflowExecutionAlreadyStartedError{
			Message:        ptr.String(e.Message),
			StartRequestId: ptr.String(e.StartRequestID),
			RunId:          ptr.String(e.RunID),
		}
	default:
		return err
	}
}

// ToError convert error to internal type if it comes as its thrift equivalent
func ToError(err error) error {
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case *shared.AccessDeniedError:
		return &types.AccessDeniedError{Message: e.Message}
	case *shared.BadRequestError:
		return &types.BadRequestError{Message: e.Message}
	case *shared.CancellationAlreadyRequestedError:
		return &types.CancellationAlreadyRequestedError{Message: e.Message}
	case *shared.ClientVersionNotSupportedError:
		return &types.ClientVersionNotSupportedError{
			FeatureVersion:    e.FeatureVersion,
			ClientImpl:        e.ClientImpl,
			SupportedVersions: e.SupportedVersions,
		}
	case *shared.FeatureNotEnabledError:
		return &types.FeatureNotEnabledError{FeatureFlag: e.FeatureFlag}
	case *shared.DomainNotActiveError:
		return &types.DomainNotActiveError{
			Message:        e.Message,
			DomainName:     e.DomainName,
			CurrentCluster: e.CurrentCluster,
			ActiveCluster:  e.ActiveCluster,
		}
	case *shared.EntityNotExistsError:
		return &types.EntityNotExistsError{
			Message:        e.Message,
			CurrentCluster: e.GetCurrentCluster(),
			ActiveCluster:  e.GetActiveCluster(),
		}
	case *shared.WorkflowExecutionAlreadyCompletedError:
		return &types.WorkflowExecutionAlreadyCompletedError{Message: e.Message}
	case *shared.InternalServiceError:
		return &types.InternalServiceError{Message: e.Message}
	case *shared.LimitExceededError:
		return &types.LimitExceededError{Message: e.Message}
	case *shared.QueryFailedError:
		return &types.QueryFailedError{Message: e.Message}
	case *shared.ServiceBusyError:
		return &types.ServiceBusyError{Message: e.Message}
	case *shared.WorkflowExecutionAlreadyStartedError:
		return &types.WorkflowExecutionAlreadyStartedError{
			Message:        e.GetMessage(),
			StartRequestID: e.GetStartRequestId(),
			RunID:          e.GetRunId(),
		}
	default:
		return err
	}
}
