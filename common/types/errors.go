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

package types

import (
	"strings"
)

// Errors returned by the frontend service. The mappers in types/mapper translate them from the
// wire representation of each transport.
type (
	AccessDeniedError struct {
		Message string `json:"message,required"`
	}

	BadRequestError struct {
		Message string `json:"message,required"`
	}

	CancellationAlreadyRequestedError struct {
		Message string `json:"message,required"`
	}

	// ClientVersionNotSupportedError is returned when the frontend rejects the feature version advertised in request headers
	ClientVersionNotSupportedError struct {
		FeatureVersion    string `json:"featureVersion,required"`
		ClientImpl        string `json:"clientImpl,required"`
		SupportedVersions string `json:"supportedVersions,required"`
	}

	FeatureNotEnabledError struct {
		FeatureFlag string `json:"featureFlag,required"`
	}

	// DomainNotActiveError is returned by a cluster that is passive for the domain
	DomainNotActiveError struct {
		Message        string `json:"message,required"`
		DomainName     string `json:"domainName,required"`
		CurrentCluster string `json:"currentCluster,required"`
		ActiveCluster  string `json:"activeCluster,required"`
	}

	EntityNotExistsError struct {
		Message        string `json:"message,required"`
		CurrentCluster string `json:"currentCluster,omitempty"`
		ActiveCluster  string `json:"activeCluster,omitempty"`
	}

	WorkflowExecutionAlreadyCompletedError struct {
		Message string `json:"message,required"`
	}

	InternalServiceError struct {
		Message string `json:"message,required"`
	}

	LimitExceededError struct {
		Message string `json:"message,required"`
	}

	QueryFailedError struct {
		Message string `json:"message,required"`
	}

	// ServiceBusyError signals throttling, Reason names the limit that was hit
	ServiceBusyError struct {
		Message string `json:"message,required"`
		Reason  string `json:"reason,omitempty"`
	}

	// WorkflowExecutionAlreadyStartedError carries the request id and run of the execution that already holds the workflow id
	WorkflowExecutionAlreadyStartedError struct {
		Message        string `json:"message,omitempty"`
		StartRequestID string `json:"startRequestId,omitempty"`
		RunID          string `json:"runId,omitempty"`
	}
)

func (err AccessDeniedError) Error() string {
	return describe("AccessDeniedError", always("Message", err.Message))
}

func (err BadRequestError) Error() string {
	return describe("BadRequestError", always("Message", err.Message))
}

func (err CancellationAlreadyRequestedError) Error() string {
	return describe("CancellationAlreadyRequestedError", always("Message", err.Message))
}

func (err ClientVersionNotSupportedError) Error() string {
	return describe("ClientVersionNotSupportedError",
		always("FeatureVersion", err.FeatureVersion),
		always("ClientImpl", err.ClientImpl),
		always("SupportedVersions", err.SupportedVersions),
	)
}

func (err FeatureNotEnabledError) Error() string {
	return describe("FeatureNotEnabledError", always("FeatureFlag", err.FeatureFlag))
}

func (err DomainNotActiveError) Error() string {
	return describe("DomainNotActiveError",
		always("Message", err.Message),
		always("DomainName", err.DomainName),
		always("CurrentCluster", err.CurrentCluster),
		always("ActiveCluster", err.ActiveCluster),
	)
}

func (err EntityNotExistsError) Error() string {
	return describe("EntityNotExistsError",
		always("Message", err.Message),
		ifSet("CurrentCluster", err.CurrentCluster),
		ifSet("ActiveCluster", err.ActiveCluster),
	)
}

func (err WorkflowExecutionAlreadyCompletedError) Error() string {
	return describe("WorkflowExecutionAlreadyCompletedError", always("Message", err.Message))
}

func (err InternalServiceError) Error() string {
	return describe("InternalServiceError", always("Message", err.Message))
}

func (err LimitExceededError) Error() string {
	return describe("LimitExceededError", always("Message", err.Message))
}

func (err QueryFailedError) Error() string {
	return describe("QueryFailedError", always("Message", err.Message))
}

func (err ServiceBusyError) Error() string {
	return describe("ServiceBusyError", always("Message", err.Message), ifSet("Reason", err.Reason))
}

func (err WorkflowExecutionAlreadyStartedError) Error() string {
	return describe("WorkflowExecutionAlreadyStartedError",
		always("Message", err.Message),
		always("StartRequestID", err.StartRequestID),
		always("RunID", err.RunID),
	)
}

type errField struct {
	name, value string
	skip        bool
}

func always(name, value string) errField { return errField{name: name, value: value} }

func ifSet(name, value string) errField { return errField{name: name, value: value, skip: value == ""} }

// describe renders Name{Field: value, ...}
func describe(name string, fields ...errField) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('{')
	first := true
	for _, f := range fields {
		if f.skip {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(f.name)
		sb.WriteString(": ")
		sb.WriteString(f.value)
	}
	sb.WriteByte('}')
	return sb.String()
}
