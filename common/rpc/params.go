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

package rpc

import (
	"crypto/tls"
	"fmt"

	"go.uber.org/yarpc"

	"github.com/uber/cadence-external-client/common"
	"github.com/uber/cadence-external-client/common/config"
)

// Params allows to configure rpc.Factory
type Params struct {
	// ServiceName is the caller name of the dispatcher
	ServiceName string
	// Transport is one of config.TransportGRPC or config.TransportThrift
	Transport string

	OutboundMiddleware yarpc.OutboundMiddleware
	OutboundsBuilder   OutboundsBuilder
}

// NewParams creates parameters for rpc.Factory from the given client config
func NewParams(cfg *config.ClientConfig) (Params, error) {
	var outboundTLS *tls.Config
	if cfg.Transport() == config.TransportGRPC {
		var err error
		outboundTLS, err = cfg.TLS.ToTLSConfig()
		if err != nil {
			return Params{}, fmt.Errorf("outbound TLS config: %v", err)
		}
	}

	return Params{
		ServiceName: common.ClientServiceName,
		Transport:   cfg.Transport(),
		OutboundMiddleware: yarpc.OutboundMiddleware{
			Unary: &clientHeadersMiddleware{identity: common.ClientIdentity(cfg.Identity)},
		},
		OutboundsBuilder: newFrontendOutbound(cfg.ServiceName(), cfg.Transport(), cfg.HostNameAndPort(), outboundTLS),
	}, nil
}
