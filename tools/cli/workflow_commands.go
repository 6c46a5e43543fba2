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
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"github.com/valyala/fastjson"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/uber/cadence-external-client/client/external"
	"github.com/uber/cadence-external-client/common/backoff"
	"github.com/uber/cadence-external-client/common/future"
	"github.com/uber/cadence-external-client/common/types"
	"github.com/uber/cadence-external-client/tools/common/commoncli"
)

type workflowCommands struct {
	cf ClientFactory
}

func newWorkflowCommands(cf ClientFactory) []*cli.Command {
	w := &workflowCommands{cf: cf}
	return []*cli.Command{
		{
			Name:   "start",
			Usage:  "start a new workflow execution",
			Flags:  append(getStartFlags(), getAsyncFlags()...),
			Action: w.start,
		},
		{
			Name:   "enqueue-start",
			Usage:  "queue the start of a new workflow execution, the run id is not known to the caller",
			Flags:  append(getStartFlags(), getAsyncFlags()...),
			Action: w.enqueueStart,
		},
		{
			Name:  "signal",
			Usage: "signal one or more workflow executions",
			Flags: append(append([]cli.Flag{
				&cli.StringSliceFlag{
					Name:     FlagWorkflowID,
					Aliases:  []string{"w", "wid"},
					Usage:    "WorkflowID, repeat the flag to signal several workflows",
					Required: true,
				},
				&cli.StringFlag{
					Name:    FlagRunID,
					Aliases: []string{"rid"},
					Usage:   "RunID, only valid with a single workflow id",
				},
				&cli.Float64Flag{
					Name:  FlagRPS,
					Usage: "maximum signals per second when signaling several workflows, 0 is unlimited",
				},
				&cli.IntFlag{
					Name:  FlagConcurrency,
					Value: defaultConcurrency,
					Usage: "maximum signals in flight when signaling several workflows",
				},
			}, getSignalFlags()...), append(getInputFlags(), getAsyncFlags()...)...),
			Action: w.signal,
		},
		{
			Name:  "signal-with-start",
			Usage: "signal the current workflow execution, starting it when it is not running",
			Flags: append(append(getStartFlags(), getSignalFlags()...),
				&cli.StringFlag{
					Name:    FlagSignalInput,
					Aliases: []string{"si"},
					Usage:   "Optional input of the signal in JSON format",
				},
				&cli.BoolFlag{
					Name:  "enqueue",
					Usage: "queue the request, the run id is not known to the caller",
				},
			),
			Action: w.signalWithStart,
		},
		{
			Name:  "query",
			Usage: "query the state of a workflow execution",
			Flags: append(append(getWorkflowExecutionFlags(),
				&cli.StringFlag{
					Name:     FlagQueryType,
					Aliases:  []string{"qt"},
					Usage:    "The query type you want to run",
					Required: true,
				},
				&cli.StringFlag{
					Name:  FlagQueryRejectCondition,
					Usage: fmt.Sprintf("Optional flag to reject queries based on workflow state, one of %v", enumNames(queryRejectConditions)),
				},
				&cli.StringFlag{
					Name:  FlagQueryConsistencyLevel,
					Usage: fmt.Sprintf("Optional flag to set query consistency level, one of %v", enumNames(queryConsistencyLevels)),
				},
				&cli.StringFlag{
					Name:  FlagOutput,
					Value: outputJSON,
					Usage: fmt.Sprintf("%s prints the raw result, %s prints the fields of a JSON object result", outputJSON, outputTable),
				},
			), getInputFlags()...),
			Action: w.query,
		},
		{
			Name:  "cancel",
			Usage: "request cancellation of a workflow execution",
			Flags: append(getWorkflowExecutionFlags(),
				&cli.StringFlag{
					Name:  FlagCause,
					Usage: "Optional cause of the cancellation",
				},
				&cli.StringFlag{
					Name:  FlagFirstExecutionRunID,
					Usage: "Optional run id of the first execution of the chain the request is restricted to",
				},
			),
			Action: w.cancel,
		},
		{
			Name:  "terminate",
			Usage: "terminate a workflow execution",
			Flags: append(getWorkflowExecutionFlags(),
				&cli.StringFlag{
					Name:  FlagReason,
					Usage: "The reason you want to terminate the workflow",
				},
				&cli.StringFlag{
					Name:  FlagDetails,
					Usage: "Optional details of the termination",
				},
				&cli.StringFlag{
					Name:  FlagFirstExecutionRunID,
					Usage: "Optional run id of the first execution of the chain the request is restricted to",
				},
			),
			Action: w.terminate,
		},
	}
}

func newContext(c *cli.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context, c.Duration(FlagContextTimeout))
}

// getFuture waits for a future bounded by --timeout rather than --context_timeout
func getFuture(c *cli.Context, f future.Future, valuePtr interface{}) error {
	return f.Get(c.Context, valuePtr)
}

func startParameters(c *cli.Context) (*external.StartWorkflowParameters, error) {
	params := &external.StartWorkflowParameters{
		WorkflowID:                   c.String(FlagWorkflowID),
		WorkflowType:                 c.String(FlagWorkflowType),
		TaskList:                     c.String(FlagTaskList),
		ExecutionStartToCloseTimeout: c.Duration(FlagExecutionTimeout),
		TaskStartToCloseTimeout:      c.Duration(FlagDecisionTimeout),
		CronSchedule:                 c.String(FlagCronSchedule),
		DelayStart:                   c.Duration(FlagDelayStart),
		JitterStart:                  c.Duration(FlagJitterStart),
	}
	if params.ExecutionStartToCloseTimeout <= 0 {
		return nil, fmt.Errorf("--%s must be positive", FlagExecutionTimeout)
	}

	var err error
	if params.WorkflowIDReusePolicy, err = parseEnum(c, FlagWorkflowIDReusePolicy, workflowIDReusePolicies); err != nil {
		return nil, err
	}
	if params.Input, err = processJSONInput(c, FlagInput, FlagInputFile); err != nil {
		return nil, err
	}
	if params.Memo, err = mapFromKeysValues(c, FlagMemoKey, FlagMemo); err != nil {
		return nil, err
	}
	if params.SearchAttributes, err = mapFromKeysValues(c, FlagSearchAttributesKey, FlagSearchAttributesVal); err != nil {
		return nil, err
	}
	if params.Header, err = mapFromKeysValues(c, FlagHeaderKey, FlagHeaderValue); err != nil {
		return nil, err
	}

	if c.IsSet(FlagRetryAttempts) || c.IsSet(FlagRetryExpiration) {
		params.RetryParameters = &external.RetryParameters{
			InitialInterval:    c.Duration(FlagRetryInterval),
			BackoffCoefficient: c.Float64(FlagRetryBackoff),
			MaximumInterval:    c.Duration(FlagRetryMaxInterval),
			MaximumAttempts:    int32(c.Int(FlagRetryAttempts)),
			ExpirationInterval: c.Duration(FlagRetryExpiration),
		}
	}
	return params, nil
}

func (w *workflowCommands) start(c *cli.Context) error {
	params, err := startParameters(c)
	if err != nil {
		return commoncli.Problem("Invalid start flags", err)
	}
	wc, err := w.cf.WorkflowClient(c)
	if err != nil {
		return err
	}

	var execution *types.WorkflowExecution
	if c.IsSet(FlagTimeout) {
		err = getFuture(c, wc.StartWorkflowAsync(c.Context, params, c.Duration(FlagTimeout)), &execution)
	} else {
		ctx, cancel := newContext(c)
		defer cancel()
		execution, err = wc.StartWorkflow(ctx, params)
	}
	if err != nil {
		return commoncli.Problem("Failed to start workflow", err)
	}
	renderExecution(c, "Started workflow", wc.Domain(), execution)
	renderCronDelay(c, params.CronSchedule)
	return nil
}

func (w *workflowCommands) enqueueStart(c *cli.Context) error {
	params, err := startParameters(c)
	if err != nil {
		return commoncli.Problem("Invalid start flags", err)
	}
	wc, err := w.cf.WorkflowClient(c)
	if err != nil {
		return err
	}

	var execution *types.WorkflowExecution
	if c.IsSet(FlagTimeout) {
		err = getFuture(c, wc.EnqueueStartWorkflowAsync(c.Context, params, c.Duration(FlagTimeout)), &execution)
	} else {
		ctx, cancel := newContext(c)
		defer cancel()
		execution, err = wc.EnqueueStartWorkflow(ctx, params)
	}
	if err != nil {
		return commoncli.Problem("Failed to enqueue workflow start", err)
	}
	renderExecution(c, "Enqueued workflow", wc.Domain(), execution)
	renderCronDelay(c, params.CronSchedule)
	return nil
}

func (w *workflowCommands) signal(c *cli.Context) error {
	workflowIDs := c.StringSlice(FlagWorkflowID)
	if len(workflowIDs) > 1 && c.IsSet(FlagRunID) {
		return commoncli.Problem(fmt.Sprintf("--%s cannot be used with several workflow ids", FlagRunID), nil)
	}
	concurrency := c.Int(FlagConcurrency)
	if concurrency < 1 {
		return commoncli.Problem(fmt.Sprintf("--%s must be at least 1, got %d", FlagConcurrency, concurrency), nil)
	}
	input, err := processJSONInput(c, FlagInput, FlagInputFile)
	if err != nil {
		return commoncli.Problem("Invalid signal input", err)
	}
	wc, err := w.cf.WorkflowClient(c)
	if err != nil {
		return err
	}

	limit := rate.Inf
	if rps := c.Float64(FlagRPS); rps > 0 {
		limit = rate.Limit(rps)
	}
	limiter := rate.NewLimiter(limit, 1)

	ctx, cancel := newContext(c)
	defer cancel()
	if c.IsSet(FlagTimeout) {
		ctx = c.Context
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs error
	)
	g.SetLimit(concurrency)
	for _, workflowID := range workflowIDs {
		params := &external.SignalWorkflowParameters{
			WorkflowID: workflowID,
			RunID:      c.String(FlagRunID),
			SignalName: c.String(FlagName),
			Input:      input,
			Control:    []byte(c.String(FlagControl)),
		}
		g.Go(func() error {
			err := limiter.Wait(ctx)
			if err == nil {
				if c.IsSet(FlagTimeout) {
					err = getFuture(c, wc.SignalWorkflowExecutionAsync(ctx, params, c.Duration(FlagTimeout)), nil)
				} else {
					err = wc.SignalWorkflowExecution(ctx, params)
				}
			}
			if err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("workflow %s: %w", params.WorkflowID, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := len(multierr.Errors(errs))
	if failed > 0 {
		return commoncli.Problem(fmt.Sprintf("Failed to signal %d of %d workflows", failed, len(workflowIDs)), errs)
	}
	fmt.Fprintf(c.App.Writer, "Signaled %d workflows\n", len(workflowIDs))
	return nil
}

func (w *workflowCommands) signalWithStart(c *cli.Context) error {
	start, err := startParameters(c)
	if err != nil {
		return commoncli.Problem("Invalid start flags", err)
	}
	signalInput, err := processJSONInput(c, FlagSignalInput, "")
	if err != nil {
		return commoncli.Problem("Invalid signal input", err)
	}
	params := &external.SignalWithStartWorkflowParameters{
		Start:       *start,
		SignalName:  c.String(FlagName),
		SignalInput: signalInput,
		Control:     []byte(c.String(FlagControl)),
	}
	wc, err := w.cf.WorkflowClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := newContext(c)
	defer cancel()
	var execution *types.WorkflowExecution
	if c.Bool("enqueue") {
		execution, err = wc.EnqueueSignalWithStartWorkflowExecution(ctx, params)
	} else {
		execution, err = wc.SignalWithStartWorkflowExecution(ctx, params)
	}
	if err != nil {
		return commoncli.Problem("SignalWithStart workflow failed", err)
	}
	renderExecution(c, "SignalWithStart workflow succeeded", wc.Domain(), execution)
	return nil
}

func (w *workflowCommands) query(c *cli.Context) error {
	params := &external.QueryWorkflowParameters{
		WorkflowID: c.String(FlagWorkflowID),
		RunID:      c.String(FlagRunID),
		QueryType:  c.String(FlagQueryType),
	}
	var err error
	if params.Input, err = processJSONInput(c, FlagInput, FlagInputFile); err != nil {
		return commoncli.Problem("Invalid query input", err)
	}
	if params.QueryRejectCondition, err = parseEnum(c, FlagQueryRejectCondition, queryRejectConditions); err != nil {
		return commoncli.Problem("Invalid query flags", err)
	}
	if params.QueryConsistencyLevel, err = parseEnum(c, FlagQueryConsistencyLevel, queryConsistencyLevels); err != nil {
		return commoncli.Problem("Invalid query flags", err)
	}
	output := c.String(FlagOutput)
	if output != outputJSON && output != outputTable {
		return commoncli.Problem(fmt.Sprintf("Invalid --%s %q", FlagOutput, output), nil)
	}
	wc, err := w.cf.WorkflowClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := newContext(c)
	defer cancel()
	response, err := wc.QueryWorkflow(ctx, params)
	if err != nil {
		return commoncli.Problem("Query workflow failed", err)
	}

	if rejected := response.GetQueryRejected(); rejected != nil {
		status := "unknown"
		if rejected.CloseStatus != nil {
			status = rejected.CloseStatus.String()
		}
		fmt.Fprintf(c.App.Writer, "Query was rejected, workflow is in state: %v\n", status)
		return nil
	}
	return renderQueryResult(c, output, response.GetQueryResult())
}

func (w *workflowCommands) cancel(c *cli.Context) error {
	wc, err := w.cf.WorkflowClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := newContext(c)
	defer cancel()
	err = wc.RequestCancelWorkflowExecution(ctx, &external.CancelWorkflowParameters{
		WorkflowID:          c.String(FlagWorkflowID),
		RunID:               c.String(FlagRunID),
		Cause:               c.String(FlagCause),
		FirstExecutionRunID: c.String(FlagFirstExecutionRunID),
	})
	if err != nil {
		return commoncli.Problem("Cancel workflow failed", err)
	}
	fmt.Fprintln(c.App.Writer, "Cancel workflow succeeded.")
	return nil
}

func (w *workflowCommands) terminate(c *cli.Context) error {
	wc, err := w.cf.WorkflowClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := newContext(c)
	defer cancel()
	err = wc.TerminateWorkflowExecution(ctx, &external.TerminateWorkflowParameters{
		WorkflowID:          c.String(FlagWorkflowID),
		RunID:               c.String(FlagRunID),
		Reason:              c.String(FlagReason),
		Details:             []byte(c.String(FlagDetails)),
		FirstExecutionRunID: c.String(FlagFirstExecutionRunID),
	})
	if err != nil {
		return commoncli.Problem("Terminate workflow failed", err)
	}
	fmt.Fprintln(c.App.Writer, "Terminate workflow succeeded.")
	return nil
}

func renderExecution(c *cli.Context, title string, domain string, execution *types.WorkflowExecution) {
	fmt.Fprintln(c.App.Writer, colorMagenta(title+":"))
	runID := execution.GetRunID()
	if runID == "" {
		runID = "-"
	}
	table := tablewriter.NewWriter(c.App.Writer)
	table.SetBorder(false)
	table.SetColumnSeparator(":")
	table.AppendBulk([][]string{
		{"Workflow Id", execution.GetWorkflowID()},
		{"Run Id", runID},
		{"Domain", domain},
	})
	table.Render()
}

func renderCronDelay(c *cli.Context, spec string) {
	if spec == "" {
		return
	}
	// the schedule was validated by the client, an error here is not worth failing the command
	if delay, err := backoff.NextCronRun(spec, time.Now()); err == nil {
		fmt.Fprintf(c.App.Writer, "First run in %v\n", delay)
	}
}

// renderQueryResult prints the result as is, or the fields of a JSON object result as a table
func renderQueryResult(c *cli.Context, output string, result []byte) error {
	if output == outputJSON {
		fmt.Fprintln(c.App.Writer, string(result))
		return nil
	}

	value, err := fastjson.ParseBytes(result)
	if err != nil {
		return commoncli.Problem("Query result is not JSON", err)
	}
	object, err := value.Object()
	if err != nil {
		return commoncli.Problem("Query result is not a JSON object", err)
	}
	table := tablewriter.NewWriter(c.App.Writer)
	table.SetBorder(false)
	table.SetHeader([]string{"Field", "Value"})
	object.Visit(func(key []byte, v *fastjson.Value) {
		field := v.String()
		if v.Type() == fastjson.TypeString {
			field = string(v.GetStringBytes())
		}
		table.Append([]string{string(key), field})
	})
	table.Render()
	return nil
}
