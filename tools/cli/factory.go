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

//go:generate mockgen -package $GOPACKAGE -source $GOFILE -destination factory_mock.go -self_package github.com/uber/cadence-external-client/tools/cli

package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/uber/cadence-external-client/client"
	"github.com/uber/cadence-external-client/client/external"
	"github.com/uber/cadence-external-client/common"
	"github.com/uber/cadence-external-client/common/config"
	"github.com/uber/cadence-external-client/common/log"
	"github.com/uber/cadence-external-client/common/log/loggerimpl"
	"github.com/uber/cadence-external-client/common/metrics"
	"github.com/uber/cadence-external-client/common/rpc"
	"github.com/uber/cadence-external-client/tools/common/commoncli"
)

// ClientFactory is used to construct the workflow client of a command
type ClientFactory interface {
	WorkflowClient(c *cli.Context) (external.Client, error)
	// Close stops the dispatcher started by WorkflowClient, if any
	Close() error
}

type clientFactory struct {
	rpcFactory *rpc.Factory // lazy, via WorkflowClient
}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() ClientFactory {
	return &clientFactory{}
}

// ClientConfig loads the client config selected by the global flags, the domain flag wins over the file
func ClientConfig(c *cli.Context) (*config.ClientConfig, error) {
	env := strings.TrimSpace(c.String(FlagEnv))
	zone := strings.TrimSpace(c.String(FlagZone))
	configDir := path.Join(c.String(FlagRoot), c.String(FlagConfigDir))

	var cfg config.ClientConfig
	if err := config.Load(env, configDir, zone, &cfg); err != nil {
		return nil, commoncli.Problem(
			fmt.Sprintf(
				"failed to load config (for --%v %q --%v %q --%v %q)",
				FlagEnv, env, FlagZone, zone, FlagConfigDir, configDir,
			),
			err,
		)
	}
	if c.IsSet(FlagDomain) {
		cfg.Domain = c.String(FlagDomain)
	}
	if err := cfg.Validate(); err != nil {
		return nil, commoncli.Problem("invalid config", err)
	}
	return &cfg, nil
}

// WorkflowClient builds the workflow client of the configured domain over a started dispatcher
func (b *clientFactory) WorkflowClient(c *cli.Context) (external.Client, error) {
	cfg, err := ClientConfig(c)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, commoncli.Problem("failed to create logger", err)
	}
	metricsClient := metrics.NewClient(cfg.Metrics.NewScope(logger, common.ClientServiceName), metrics.ExternalClient)

	b.rpcFactory, err = rpc.NewFactoryFromConfig(logger, cfg)
	if err != nil {
		return nil, commoncli.Problem("failed to create dispatcher", err)
	}
	if err := b.rpcFactory.Start(); err != nil {
		return nil, commoncli.Problem("failed to start dispatcher", err)
	}

	bean, err := client.NewClientBean(b.rpcFactory, cfg, metricsClient, logger)
	if err != nil {
		return nil, commoncli.Problem("failed to create frontend client", err)
	}
	return external.NewClient(
		bean.GetFrontendClient(),
		cfg.Domain,
		external.WithAsyncClient(bean.GetAsyncFrontendClient()),
		external.WithIdentity(cfg.Identity),
		external.WithRetryPolicy(cfg.RPCRetryPolicy()),
		external.WithMetricsClient(metricsClient),
		external.WithLogger(logger),
	), nil
}

func (b *clientFactory) Close() error {
	if b.rpcFactory == nil {
		return nil
	}
	return b.rpcFactory.Stop()
}

func newLogger(cfg *config.ClientConfig) (log.Logger, error) {
	if cfg.Log.Level == "" && cfg.Log.OutputFile == "" && !cfg.Log.Stdout {
		return loggerimpl.NewNopLogger(), nil
	}
	zapLogger, err := cfg.Log.NewZapLogger()
	if err != nil {
		return nil, err
	}
	return loggerimpl.NewLogger(zapLogger), nil
}
