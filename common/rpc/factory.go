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
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/yarpc"
	"go.uber.org/yarpc/transport/grpc"
	"go.uber.org/yarpc/transport/tchannel"

	"github.com/uber/cadence-external-client/common/config"
	"github.com/uber/cadence-external-client/common/log"
	"github.com/uber/cadence-external-client/common/log/tag"
)

const (
	// tchannel needs a listening address even for outbound only use
	tchannelListenAddr = "127.0.0.1:0"
)

// Factory owns the yarpc dispatcher of the client and its outbounds
type Factory struct {
	dispatcher *yarpc.Dispatcher
	logger     log.Logger
	params     Params

	startOnce sync.Once
	startErr  error
}

// NewFactory builds the transports and the dispatcher described by p. The dispatcher is not started.
func NewFactory(logger log.Logger, p Params) (*Factory, error) {
	logger = logger.WithTags(tag.Service(p.ServiceName), tag.Transport(p.Transport))

	grpcTransport := grpc.NewTransport()
	var tchannelTransport *tchannel.ChannelTransport
	if p.Transport == config.TransportThrift {
		var err error
		tchannelTransport, err = tchannel.NewChannelTransport(
			tchannel.ServiceName(p.ServiceName),
			tchannel.ListenAddr(tchannelListenAddr),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create tchannel transport: %v", err)
		}
	}

	outbounds := yarpc.Outbounds{}
	if p.OutboundsBuilder != nil {
		var err error
		outbounds, err = p.OutboundsBuilder.Build(grpcTransport, tchannelTransport)
		if err != nil {
			return nil, fmt.Errorf("failed to create outbounds: %w", err)
		}
	}

	dispatcher := yarpc.NewDispatcher(yarpc.Config{
		Name:               p.ServiceName,
		Outbounds:          outbounds,
		OutboundMiddleware: p.OutboundMiddleware,
	})

	return &Factory{
		dispatcher: dispatcher,
		logger:     logger,
		params:     p,
	}, nil
}

// NewFactoryFromConfig is NewParams followed by NewFactory
func NewFactoryFromConfig(logger log.Logger, cfg *config.ClientConfig) (*Factory, error) {
	p, err := NewParams(cfg)
	if err != nil {
		return nil, err
	}
	return NewFactory(logger, p)
}

// GetDispatcher returns the dispatcher
func (f *Factory) GetDispatcher() *yarpc.Dispatcher {
	return f.dispatcher
}

// Transport returns the wire protocol of the outbounds
func (f *Factory) Transport() string {
	return f.params.Transport
}

// Start starts the dispatcher once. A dispatcher that fails to start is stopped again.
func (f *Factory) Start() error {
	f.startOnce.Do(func() {
		if err := f.dispatcher.Start(); err != nil {
			if stopErr := f.dispatcher.Stop(); stopErr != nil {
				err = multierr.Append(err, stopErr)
			}
			f.startErr = fmt.Errorf("failed to start dispatcher: %w", err)
			return
		}
		f.logger.Info("Started RPC dispatcher")
	})
	return f.startErr
}

// Stop stops the dispatcher
func (f *Factory) Stop() error {
	if err := f.dispatcher.Stop(); err != nil {
		f.logger.Warn("Failed to stop RPC dispatcher", tag.Error(err))
		return err
	}
	f.logger.Info("Stopped RPC dispatcher")
	return nil
}
