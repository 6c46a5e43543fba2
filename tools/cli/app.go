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
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/uber/cadence-external-client/common"
)

var colorMagenta = color.New(color.FgMagenta).SprintFunc()

// NewCliApp instantiates a new instance of the CLI application
func NewCliApp(cf ClientFactory) *cli.App {
	app := cli.NewApp()
	app.Name = "workflowclient"
	app.Usage = "A command-line tool driving workflow executions through the Cadence frontend"
	app.Version = common.FeatureVersion
	app.Flags = getGlobalFlags()
	app.Commands = newWorkflowCommands(cf)
	app.After = func(*cli.Context) error {
		return cf.Close()
	}
	return app
}
