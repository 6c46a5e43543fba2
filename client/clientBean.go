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

package client

import (
	"fmt"
	"time"

	apiv1 "github.com/uber/cadence-idl/go/proto/api/v1"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"

	"github.com/uber/cadence-external-client/client/frontend"
	"github.com/uber/cadence-external-client/client/wrappers/grpc"
	"github.com/uber/cadence-external-client/client/wrappers/metered"
	"github.com/uber/cadence-external-client/client/wrappers/thrift"
	"github.com/uber/cadence-external-client/client/wrappers/timeout"
	"github.com/uber/cadence-external-client/common/config"
	"github.com/uber/cadence-external-client/common/errors"
	"github.com/uber/cadence-external-client/common/log"
	"github.com/uber/cadence-external-client/common/log/tag"
	"github.com/uber/cadence-external-client/common/metrics"
	"github.com/uber/cadence-external-client/common/rpc"
)

type (
	// Bean is the collection of frontend clients built over one dispatcher
	Bean interface {
		GetFrontendClient() frontend.Client
		GetAsyncFrontendClient() frontend.AsyncClient
	}

	clientBeanImpl struct {
		frontendClient      frontend.Client
		asyncFrontendClient frontend.AsyncClient
	}
)

// NewClientBean creates the frontend clients of cfg on the dispatcher of factory.
// Every call goes through the per-call timeout, optional fault injection and metrics wrappers.
func NewClientBean(
	factory *rpc.Factory,
	cfg *config.ClientConfig,
	metricsClient metrics.Client,
	logger log.Logger,
) (Bean, error) {
	clientConfig := factory.GetDispatcher().ClientConfig(cfg.ServiceName())

	var client frontend.Client
	switch factory.Transport() {
	case config.TransportGRPC:
		client = grpc.NewFrontendClient(apiv1.NewWorkflowAPIYARPCClient(clientConfig))
	case config.TransportThrift:
		client = thrift.NewFrontendClient(workflowserviceclient.New(clientConfig))
	default:
		return nil, fmt.Errorf("unknown transport %q", factory.Transport())
	}

	return newClientBean(client, cfg.RPCTimeout, cfg.ErrorInjectionRate, metricsClient, logger), nil
}

func newClientBean(
	client frontend.Client,
	rpcTimeout time.Duration,
	errorInjectionRate float64,
	metricsClient metrics.Client,
	logger log.Logger,
) *clientBeanImpl {
	callTimeout := timeout.FrontendDefaultTimeout
	queryTimeout := timeout.FrontendDefaultQueryTimeout
	if rpcTimeout > 0 {
		callTimeout = rpcTimeout
		if rpcTimeout > queryTimeout {
			queryTimeout = rpcTimeout
		}
	}
	client = timeout.NewFrontendClient(client, callTimeout, queryTimeout)

	if errorInjectionRate > 0 {
		logger.Warn("Frontend client error injection is enabled", tag.ErrorRate(errorInjectionRate))
		client = frontend.NewErrorInjectionClient(client, errors.NewFaultInjector(errorInjectionRate), logger)
	}
	client = metered.NewFrontendClient(client, metricsClient)

	return &clientBeanImpl{
		frontendClient:      client,
		asyncFrontendClient: frontend.NewAsyncClient(client),
	}
}

func (h *clientBeanImpl) GetFrontendClient() frontend.Client {
	return h.frontendClient
}

func (h *clientBeanImpl) GetAsyncFrontendClient() frontend.AsyncClient {
	return h.asyncFrontendClient
}
