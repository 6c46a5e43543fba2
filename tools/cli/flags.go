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

package cli

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/uber/cadence-external-client/common/config"
)

// Flags used to specify cli command line arguments
const (
	FlagRoot           = "root"
	FlagConfigDir      = "config"
	FlagEnv            = "env"
	FlagZone           = "zone"
	FlagDomain         = "domain"
	FlagContextTimeout = "context_timeout"

	FlagWorkflowID            = "workflow_id"
	FlagRunID                 = "run_id"
	FlagFirstExecutionRunID   = "first_execution_run_id"
	FlagWorkflowType          = "workflow_type"
	FlagTaskList              = "tasklist"
	FlagExecutionTimeout      = "execution_timeout"
	FlagDecisionTimeout       = "decision_timeout"
	FlagWorkflowIDReusePolicy = "workflowidreusepolicy"
	FlagCronSchedule          = "cron"
	FlagDelayStart            = "delay_start"
	FlagJitterStart           = "jitter_start"
	FlagInput                 = "input"
	FlagInputFile             = "input_file"
	FlagMemoKey               = "memo_key"
	FlagMemo                  = "memo"
	FlagSearchAttributesKey   = "search_attr_key"
	FlagSearchAttributesVal   = "search_attr_value"
	FlagHeaderKey             = "header_key"
	FlagHeaderValue           = "header_value"

	FlagRetryInterval    = "retry_interval"
	FlagRetryBackoff     = "retry_backoff"
	FlagRetryMaxInterval = "retry_max_interval"
	FlagRetryAttempts    = "retry_attempts"
	FlagRetryExpiration  = "retry_expiration"

	FlagName        = "name"
	FlagSignalInput = "signal_input"
	FlagControl     = "control"
	FlagRPS         = "rps"
	FlagConcurrency = "concurrency"
	FlagTimeout     = "timeout"

	FlagQueryType             = "query_type"
	FlagQueryRejectCondition  = "query_reject_condition"
	FlagQueryConsistencyLevel = "query_consistency_level"
	FlagOutput                = "output"

	FlagCause   = "cause"
	FlagReason  = "reason"
	FlagDetails = "details"
)

const (
	// keys and values of memo, search attributes and headers are separated by spaces
	keysSeparator = " "

	defaultConfigDir       = "config/workflowclient"
	defaultContextTimeout  = 30 * time.Second
	defaultDecisionTimeout = 10 * time.Second
	defaultConcurrency     = 10

	outputJSON  = "json"
	outputTable = "table"
)

func getGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagRoot,
			Aliases: []string{"r"},
			Value:   ".",
			Usage:   "root directory of execution environment",
			EnvVars: []string{config.EnvKeyRoot},
		},
		&cli.StringFlag{
			Name:    FlagConfigDir,
			Aliases: []string{"c"},
			Value:   defaultConfigDir,
			Usage:   "config dir path relative to root",
			EnvVars: []string{config.EnvKeyConfigDir},
		},
		&cli.StringFlag{
			Name:    FlagEnv,
			Aliases: []string{"e"},
			Value:   "development",
			Usage:   "runtime environment",
			EnvVars: []string{config.EnvKeyEnvironment},
		},
		&cli.StringFlag{
			Name:    FlagZone,
			Aliases: []string{"az"},
			Usage:   "availability zone",
			EnvVars: []string{config.EnvKeyAvailabilityZone},
		},
		&cli.StringFlag{
			Name:    FlagDomain,
			Aliases: []string{"do"},
			Usage:   "workflow domain, overrides the domain of the config file",
			EnvVars: []string{"CADENCE_CLI_DOMAIN"},
		},
		&cli.DurationFlag{
			Name:    FlagContextTimeout,
			Aliases: []string{"ct"},
			Value:   defaultContextTimeout,
			Usage:   "timeout of a blocking command, retries included",
			EnvVars: []string{"CADENCE_CONTEXT_TIMEOUT"},
		},
	}
}

func getWorkflowExecutionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     FlagWorkflowID,
			Aliases:  []string{"w", "wid"},
			Usage:    "WorkflowID",
			Required: true,
		},
		&cli.StringFlag{
			Name:    FlagRunID,
			Aliases: []string{"rid"},
			Usage:   "RunID, the current run when empty",
		},
	}
}

func getInputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagInput,
			Aliases: []string{"i"},
			Usage:   "Optional input in JSON format, multiple JSON values are separated by spaces",
		},
		&cli.StringFlag{
			Name:    FlagInputFile,
			Aliases: []string{"if"},
			Usage:   "Optional file holding the input in JSON format, ignored when --input is set",
		},
	}
}

func getAsyncFlags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:  FlagTimeout,
			Usage: "send the request without blocking a goroutine between retries, bounding the whole call including retries",
		},
	}
}

func getStartFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    FlagWorkflowID,
			Aliases: []string{"w", "wid"},
			Usage:   "WorkflowID, generated when empty",
		},
		&cli.StringFlag{
			Name:     FlagWorkflowType,
			Aliases:  []string{"wt"},
			Usage:    "WorkflowTypeName",
			Required: true,
		},
		&cli.StringFlag{
			Name:     FlagTaskList,
			Aliases:  []string{"tl"},
			Usage:    "TaskList",
			Required: true,
		},
		&cli.DurationFlag{
			Name:     FlagExecutionTimeout,
			Aliases:  []string{"et"},
			Usage:    "Execution start to close timeout",
			Required: true,
		},
		&cli.DurationFlag{
			Name:    FlagDecisionTimeout,
			Aliases: []string{"dt"},
			Value:   defaultDecisionTimeout,
			Usage:   "Decision task start to close timeout",
		},
		&cli.StringFlag{
			Name:    FlagWorkflowIDReusePolicy,
			Aliases: []string{"wrp"},
			Usage: fmt.Sprintf("Optional policy to reuse workflow id, one of %v",
				enumNames(workflowIDReusePolicies)),
		},
		&cli.StringFlag{
			Name:  FlagCronSchedule,
			Usage: "Optional cron schedule for the workflow, in the standard five field format",
		},
		&cli.DurationFlag{
			Name:  FlagDelayStart,
			Usage: "Optional delay of the first decision task",
		},
		&cli.DurationFlag{
			Name:  FlagJitterStart,
			Usage: "Optional random delay added to the first decision task",
		},
		&cli.DurationFlag{
			Name:  FlagRetryInterval,
			Value: 10 * time.Second,
			Usage: "Optional retry interval of the workflow, used with --retry_attempts or --retry_expiration",
		},
		&cli.Float64Flag{
			Name:  FlagRetryBackoff,
			Value: 1.0,
			Usage: "Optional backoff coefficient of the workflow retry policy",
		},
		&cli.DurationFlag{
			Name:  FlagRetryMaxInterval,
			Usage: "Optional maximum interval between workflow retries",
		},
		&cli.IntFlag{
			Name:  FlagRetryAttempts,
			Usage: "Optional maximum attempts of the workflow, enables the retry policy",
		},
		&cli.DurationFlag{
			Name:  FlagRetryExpiration,
			Usage: "Optional expiration of the workflow retries, enables the retry policy",
		},
		&cli.StringFlag{
			Name:  FlagMemoKey,
			Usage: "Optional keys of the memo, separated by spaces",
		},
		&cli.StringFlag{
			Name:  FlagMemo,
			Usage: "Optional JSON values of the memo, one per key, separated by spaces",
		},
		&cli.StringFlag{
			Name:  FlagSearchAttributesKey,
			Usage: "Optional keys of the search attributes, separated by spaces",
		},
		&cli.StringFlag{
			Name:  FlagSearchAttributesVal,
			Usage: "Optional JSON values of the search attributes, one per key, separated by spaces",
		},
		&cli.StringFlag{
			Name:  FlagHeaderKey,
			Usage: "Optional keys of the header, separated by spaces",
		},
		&cli.StringFlag{
			Name:  FlagHeaderValue,
			Usage: "Optional JSON values of the header, one per key, separated by spaces",
		},
	}
	return append(flags, getInputFlags()...)
}

func getSignalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     FlagName,
			Aliases:  []string{"n"},
			Usage:    "SignalName",
			Required: true,
		},
		&cli.StringFlag{
			Name:  FlagControl,
			Usage: "Optional opaque control bytes delivered with the signal",
		},
	}
}
