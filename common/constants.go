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

import "time"

const (
	// FrontendServiceName is the default yarpc service name of the cadence frontend
	FrontendServiceName = "cadence-frontend"
	// ClientServiceName is the yarpc caller name used by this client
	ClientServiceName = "cadence-external-client"
)

// Headers attached to every outbound call of the client
const (
	// ClientImplHeaderName is the header carrying the client implementation name
	ClientImplHeaderName = "cadence-client-name"
	// FeatureVersionHeaderName is the header carrying the client feature version
	FeatureVersionHeaderName = "cadence-client-feature-version"
	// ClientIdentityHeaderName is the header carrying the identity of the caller
	ClientIdentityHeaderName = "cadence-client-identity"

	// ClientImpl identifies this client to the frontend
	ClientImpl = "uber-go"
	// FeatureVersion is the feature version reported to the frontend
	FeatureVersion = "1.7.0"
)

const (
	frontendServiceOperationInitialInterval = 200 * time.Millisecond
	frontendServiceOperationMaxInterval     = 5 * time.Second
	frontendServiceOperationMaxAttempts     = 10
)

// FrontendServiceNonRetriableReasons are the reasons that are never retried by the
// default frontend retry policy regardless of the caller's classification
var FrontendServiceNonRetriableReasons = []string{
	"BadRequestError",
	"WorkflowExecutionAlreadyStartedError",
}
