// Copyright (c) 2021 Uber Technologies Inc.
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

package proto

import (
	"errors"

	"go.uber.org/yarpc/encoding/protobuf"
	"go.uber.org/yarpc/yarpcerrors"

	apiv1 "github.com/uber/cadence-idl/go/proto/api/v1"

	"github.com/uber/cadence-external-client/common/types"
)

// FromError encodes err the way the frontend does, it is the inverse of ToError
func FromError(err error) error {
	if err == nil {
		return protobuf.NewError(yarpcerrors.CodeOK, "")
	}

	switch e := err.(type) {
	case *types.AccessDeniedError:
		return protobuf.NewError(yarpcerrors.CodePermissionDenied, e.Message)
	case *types.InternalServiceError:
		return protobuf.NewError(yarpcerrors.CodeInternal, e.Message)
	case *types.EntityNotExistsError:
		return protobuf.NewError(yarpcerrors.CodeNotFound, e.Message, protobuf.WithErrorDetails(&apiv1.EntityNotExistsError{
			CurrentCluster: e.CurrentCluster,
			ActiveCluster:  e.ActiveCluster,
		}))
	case *types.WorkflowExecutionAlreadyCompletedError:
		return protobuf.NewError(yarpcerrors.CodeNotFound, e.Message, protobuf.WithErrorDetails(&apiv1.WorkflowExecutionAlreadyCompletedError{}))
	case *types.BadRequestError:
		return protobuf.NewError(yarpcerrors.CodeInvalidArgument, e.Message)
	case *types.QueryFailedError:
		return protobuf.NewError(yarpcerrors.CodeInvalidArgument, e.Message, protobuf.WithErrorDetails(&apiv1.QueryFailedError{}))
	case *types.CancellationAlreadyRequestedError:
		return protobuf.NewError(yarpcerrors.CodeAlreadyExists, e.Message, protobuf.WithErrorDetails(&apiv1.CancellationAlreadyRequestedError{}))
	case *types.WorkflowExecutionAlreadyStartedError:
		return protobuf.NewError(yarpcerrors.CodeAlreadyExists, e.Message, protobuf.WithErrorDetails(&apiv1.WorkflowExecutionAlreadyStartedError{
			StartRequestId: e.StartRequestID,
			RunId:          e.RunID,
		}))
	case *types.ClientVersionNotSupportedError:
		return protobuf.NewError(yarpcerrors.CodeFailedPrecondition, "Client version not supported", protobuf.WithErrorDetails(&apiv1.ClientVersionNotSupportedError{
			FeatureVersion:    e.FeatureVersion,
			ClientImpl:        e.ClientImpl,
			SupportedVersions: e.SupportedVersions,
		}))
	case *types.FeatureNotEnabledError:
		return protobuf.NewError(yarpcerrors.CodeFailedPrecondition, "Feature flag not enabled", protobuf.WithErrorDetails(&apiv1.FeatureNotEnabledError{
			FeatureFlag: e.FeatureFlag,
		}))
	case *types.DomainNotActiveError:
		return protobuf.NewError(yarpcerrors.CodeFailedPrecondition, e.Message, protobuf.WithErrorDetails(&apiv1.DomainNotActiveError{
			Domain:         e.DomainName,
			CurrentCluster: e.CurrentCluster,
			ActiveCluster:  e.ActiveCluster,
		}))
	case *types.LimitExceededError:
		return protobuf.NewError(yarpcerrors.CodeResourceExhausted, e.Message, protobuf.WithErrorDetails(&apiv1.LimitExceededError{}))
	case *types.ServiceBusyError:
		return protobuf.NewError(yarpcerrors.CodeResourceExhausted, e.Message, protobuf.WithErrorDetails(&apiv1.ServiceBusyError{}))
	}

	return protobuf.NewError(yarpcerrors.CodeUnknown, err.Error())
}

// ToError maps a yarpc status returned by the frontend to the matching types error. The error
// details identify the type, the status code alone only for the errors sent without details.
func ToError(err error) error {
	status := yarpcerrors.FromError(err)
	if status == nil || status.Code() == yarpcerrors.CodeOK {
		return nil
	}
	msg := status.Message()

	switch d := errorDetails(err).(type) {
	case *apiv1.EntityNotExistsError:
		return &types.EntityNotExistsError{Message: msg, CurrentCluster: d.CurrentCluster, ActiveCluster: d.ActiveCluster}
	case *apiv1.WorkflowExecutionAlreadyCompletedError:
		return &types.WorkflowExecutionAlreadyCompletedError{Message: msg}
	case *apiv1.QueryFailedError:
		return &types.QueryFailedError{Message: msg}
	case *apiv1.CancellationAlreadyRequestedError:
		return &types.CancellationAlreadyRequestedError{Message: msg}
	case *apiv1.WorkflowExecutionAlreadyStartedError:
		return &types.WorkflowExecutionAlreadyStartedError{Message: msg, StartRequestID: d.StartRequestId, RunID: d.RunId}
	case *apiv1.ClientVersionNotSupportedError:
		return &types.ClientVersionNotSupportedError{
			FeatureVersion:    d.FeatureVersion,
			ClientImpl:        d.ClientImpl,
			SupportedVersions: d.SupportedVersions,
		}
	case *apiv1.FeatureNotEnabledError:
		return &types.FeatureNotEnabledError{FeatureFlag: d.FeatureFlag}
	case *apiv1.DomainNotActiveError:
		return &types.DomainNotActiveError{
			Message:        msg,
			DomainName:     d.Domain,
			CurrentCluster: d.CurrentCluster,
			ActiveCluster:  d.ActiveCluster,
		}
	case *apiv1.LimitExceededError:
		return &types.LimitExceededError{Message: msg}
	case *apiv1.ServiceBusyError:
		return &types.ServiceBusyError{Message: msg}
	case nil:
		switch status.Code() {
		case yarpcerrors.CodePermissionDenied:
			return &types.AccessDeniedError{Message: msg}
		case yarpcerrors.CodeInternal:
			return &types.InternalServiceError{Message: msg}
		case yarpcerrors.CodeInvalidArgument:
			return &types.BadRequestError{Message: msg}
		case yarpcerrors.CodeUnknown:
			return errors.New(msg)
		}
	}

	// the raw status keeps codes such as DeadlineExceeded and Unavailable inspectable
	return status
}

func errorDetails(err error) interface{} {
	if details := protobuf.GetErrorDetails(err); len(details) > 0 {
		return details[0]
	}
	return nil
}
