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

//go:generate mockgen -package $GOPACKAGE -source $GOFILE -destination outbounds_mock.go -self_package github.com/uber/cadence-external-client/common/rpc

package rpc

import (
	"crypto/tls"
	"fmt"

	"go.uber.org/yarpc"
	"go.uber.org/yarpc/api/transport"
	"go.uber.org/yarpc/peer"
	"go.uber.org/yarpc/peer/hostport"
	"go.uber.org/yarpc/transport/grpc"
	"go.uber.org/yarpc/transport/tchannel"
	"google.golang.org/grpc/credentials"

	"github.com/uber/cadence-external-client/common/config"
)

// OutboundsBuilder allows defining outbounds for the dispatcher.
// tchannel is nil unless the factory runs the thrift transport.
type OutboundsBuilder interface {
	Build(*grpc.Transport, *tchannel.ChannelTransport) (yarpc.Outbounds, error)
}

// frontendOutbound is a single peer outbound to the frontend endpoint of the client config
type frontendOutbound struct {
	serviceName string
	transport   string
	address     string
	tlsConfig   *tls.Config
}

func newFrontendOutbound(serviceName, transport, address string, tlsConfig *tls.Config) frontendOutbound {
	return frontendOutbound{
		serviceName: serviceName,
		transport:   transport,
		address:     address,
		tlsConfig:   tlsConfig,
	}
}

func (b frontendOutbound) Build(grpcTransport *grpc.Transport, tchannelTransport *tchannel.ChannelTransport) (yarpc.Outbounds, error) {
	if b.address == "" {
		return nil, fmt.Errorf("need to provide an endpoint for %s", b.serviceName)
	}

	var outbound transport.UnaryOutbound
	switch b.transport {
	case config.TransportGRPC:
		if b.tlsConfig != nil {
			chooser := peer.NewSingle(
				hostport.Identify(b.address),
				grpcTransport.NewDialer(grpc.DialerCredentials(credentials.NewTLS(b.tlsConfig))),
			)
			outbound = grpcTransport.NewOutbound(chooser)
		} else {
			outbound = grpcTransport.NewSingleOutbound(b.address)
		}
	case config.TransportThrift:
		if tchannelTransport == nil {
			return nil, fmt.Errorf("tchannel transport is required for outbound %s", b.serviceName)
		}
		outbound = tchannelTransport.NewSingleOutbound(b.address)
	default:
		return nil, fmt.Errorf("unknown transport %q for outbound %s", b.transport, b.serviceName)
	}

	return yarpc.Outbounds{
		b.serviceName: {
			ServiceName: b.serviceName,
			Unary:       outbound,
		},
	}, nil
}
