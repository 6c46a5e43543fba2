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

package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/validator.v2"

	"github.com/uber/cadence-external-client/common"
	"github.com/uber/cadence-external-client/common/backoff"
)

const (
	// TransportGRPC selects the proto API over YARPC gRPC
	TransportGRPC = "grpc"
	// TransportThrift selects the thrift API over TChannel
	TransportThrift = "thrift"
)

type (
	// ClientConfig is the configuration of a workflow client bound to one domain
	ClientConfig struct {
		// Domain every request of the client is sent to
		Domain string `yaml:"domain" validate:"nonzero"`
		// Service is the name of the frontend service the outbound is registered under
		Service string `yaml:"service"`
		// GRPCHostNameAndPort is the gRPC endpoint of the frontend, exclusive with ThriftHostNameAndPort
		GRPCHostNameAndPort string `yaml:"grpcHostNameAndPort"`
		// ThriftHostNameAndPort is the TChannel endpoint of the frontend
		ThriftHostNameAndPort string `yaml:"thriftHostNameAndPort"`
		// TLS applies to the gRPC outbound only
		TLS TLS `yaml:"tls"`
		// Identity is sent with every mutating request, defaults to pid@hostname
		Identity string `yaml:"identity"`
		// RPCTimeout bounds a single attempt, 0 keeps the client default
		RPCTimeout time.Duration `yaml:"rpcTimeout"`
		// RetryPolicy overrides fields of the default retry policy of frontend calls
		RetryPolicy *RetryPolicy `yaml:"retryPolicy"`
		// ErrorInjectionRate is the fraction of frontend calls failed with a fake error, for testing only
		ErrorInjectionRate float64 `yaml:"errorInjectionRate"`
		// Log is the logging config
		Log Logger `yaml:"log"`
		// Metrics is the metrics subsystem config
		Metrics Metrics `yaml:"metrics"`
	}

	// RetryPolicy holds the overrides of the retry policy, zero values keep the default
	RetryPolicy struct {
		InitialInterval          time.Duration `yaml:"initialInterval"`
		BackoffCoefficient       float64       `yaml:"backoffCoefficient"`
		MaximumInterval          time.Duration `yaml:"maximumInterval"`
		MaximumAttempts          int           `yaml:"maximumAttempts"`
		ExpirationInterval       time.Duration `yaml:"expirationInterval"`
		NonRetriableErrorReasons []string      `yaml:"nonRetriableErrorReasons"`
	}
)

// Validate validates the client config
func (c *ClientConfig) Validate() error {
	var err error
	if vErr := validator.Validate(c); vErr != nil {
		err = multierr.Append(err, vErr)
	}

	switch {
	case c.GRPCHostNameAndPort == "" && c.ThriftHostNameAndPort == "":
		err = multierr.Append(err, errors.New("one of grpcHostNameAndPort or thriftHostNameAndPort must be set"))
	case c.GRPCHostNameAndPort != "" && c.ThriftHostNameAndPort != "":
		err = multierr.Append(err, errors.New("only one of grpcHostNameAndPort or thriftHostNameAndPort can be set"))
	}
	if c.TLS.Enabled && c.GRPCHostNameAndPort == "" {
		err = multierr.Append(err, errors.New("tls is only supported with grpcHostNameAndPort"))
	}
	err = multierr.Append(err, c.TLS.validate())
	if c.RPCTimeout < 0 {
		err = multierr.Append(err, fmt.Errorf("rpcTimeout cannot be negative: %v", c.RPCTimeout))
	}
	if c.ErrorInjectionRate < 0 || c.ErrorInjectionRate > 1 {
		err = multierr.Append(err, fmt.Errorf("errorInjectionRate must be within [0, 1]: %v", c.ErrorInjectionRate))
	}
	if c.RetryPolicy != nil {
		err = multierr.Append(err, c.RetryPolicy.validate())
	}
	return err
}

// ServiceName returns the frontend service name, defaulting to cadence-frontend
func (c *ClientConfig) ServiceName() string {
	if c.Service != "" {
		return c.Service
	}
	return common.FrontendServiceName
}

// Transport returns the wire protocol selected by the configured endpoint
func (c *ClientConfig) Transport() string {
	if c.GRPCHostNameAndPort != "" {
		return TransportGRPC
	}
	return TransportThrift
}

// HostNameAndPort returns the endpoint of the selected transport
func (c *ClientConfig) HostNameAndPort() string {
	if c.GRPCHostNameAndPort != "" {
		return c.GRPCHostNameAndPort
	}
	return c.ThriftHostNameAndPort
}

// RPCRetryPolicy returns the default retry policy of frontend calls with the configured overrides applied
func (c *ClientConfig) RPCRetryPolicy() *backoff.ExponentialRetryPolicy {
	policy := common.CreateFrontendServiceRetryPolicy()
	override := c.RetryPolicy
	if override == nil {
		return policy
	}

	if override.InitialInterval > 0 {
		policy.SetInitialInterval(override.InitialInterval)
	}
	if override.BackoffCoefficient > 0 {
		policy.SetBackoffCoefficient(override.BackoffCoefficient)
	}
	if override.MaximumInterval > 0 {
		policy.SetMaximumInterval(override.MaximumInterval)
	}
	if override.MaximumAttempts > 0 {
		policy.SetMaximumAttempts(override.MaximumAttempts)
	}
	if override.ExpirationInterval > 0 {
		policy.SetExpirationInterval(override.ExpirationInterval)
	}
	if len(override.NonRetriableErrorReasons) > 0 {
		policy.SetNonRetriableErrorReasons(override.NonRetriableErrorReasons...)
	}
	return policy
}

func (p *RetryPolicy) validate() error {
	var err error
	if p.InitialInterval < 0 {
		err = multierr.Append(err, errors.New("retryPolicy.initialInterval cannot be negative"))
	}
	if p.BackoffCoefficient != 0 && p.BackoffCoefficient < 1 {
		err = multierr.Append(err, errors.New("retryPolicy.backoffCoefficient cannot be less than 1"))
	}
	if p.MaximumInterval < 0 {
		err = multierr.Append(err, errors.New("retryPolicy.maximumInterval cannot be negative"))
	}
	if p.MaximumInterval > 0 && p.InitialInterval > p.MaximumInterval {
		err = multierr.Append(err, errors.New("retryPolicy.maximumInterval cannot be less than retryPolicy.initialInterval"))
	}
	if p.MaximumAttempts < 0 {
		err = multierr.Append(err, errors.New("retryPolicy.maximumAttempts cannot be negative"))
	}
	if p.ExpirationInterval < 0 {
		err = multierr.Append(err, errors.New("retryPolicy.expirationInterval cannot be negative"))
	}
	return err
}
