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

package commoncli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/uber/cadence-external-client/common"
	"github.com/uber/cadence-external-client/common/backoff"
)

// Exit codes of a failed command
const (
	// ExitCodeFailure is returned for failures that may succeed when run again
	ExitCodeFailure = 1
	// ExitCodeRejected is returned when the service rejected the request, running it again fails the same way
	ExitCodeRejected = 2
	// ExitCodeTimeout is returned when the command ran out of time, retries included
	ExitCodeTimeout = 3
)

var (
	colorRed     = color.New(color.FgRed).SprintFunc()
	colorMagenta = color.New(color.FgMagenta).SprintFunc()
)

// ExitHandler prints err to stderr and exits with the code of ExitCode.
// It never returns, a nil error exits with 0.
//
// Use it instead of an ExitErrHandler of the app, which leaves the error of
// *cli.App.Run() to deal with anyway.
func ExitHandler(err error) {
	if err == nil {
		os.Exit(0)
	}
	// nothing better to do with a failed write to stderr
	_ = printErr(err, os.Stderr)
	os.Exit(ExitCode(err))
}

// ExitCode classifies err for the exit status of the process
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, backoff.ErrDeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return ExitCodeTimeout
	}
	for current := err; current != nil; current = errors.Unwrap(current) {
		if common.IsServiceTerminalError(current) {
			return ExitCodeRejected
		}
	}
	return ExitCodeFailure
}

// printErr writes the chain of err, one wrapped error per line.
// The message of a Problem is printed first whatever its depth, and the text a
// wrapper repeats from its cause is trimmed.
func printErr(err error, to io.Writer) (writeErr error) {
	write := func(format string, a ...any) {
		if writeErr == nil {
			_, writeErr = fmt.Fprintf(to, format, a...)
		}
	}

	var top *printableErr
	_ = errors.As(err, &top)

	chain := []error{err}
	for i := 0; i < 1000; i++ { // a deeper chain is a cycle
		next := errors.Unwrap(chain[len(chain)-1])
		if next == nil {
			break
		}
		chain = append(chain, next)
	}

	msgs := make([]string, len(chain))
	for i, e := range chain {
		if p, ok := e.(*printableErr); ok {
			prefix := "Error: "
			if i > 0 && p == top {
				prefix = "Error (above): "
			}
			msgs[i] = prefix + p.display
		} else {
			msgs[i] = e.Error()
		}
		if i > 0 {
			msgs[i-1] = trimCause(msgs[i-1], e.Error())
		}
	}

	if top != nil {
		write("%s %s\n", colorRed("Error:"), top.display)
		if chain[0] == top {
			msgs = msgs[1:]
		}
	} else {
		write("%s %s\n", colorRed("Error:"), msgs[0])
		msgs = msgs[1:]
	}
	if len(msgs) == 0 {
		return
	}

	indent := "  "
	write("%s\n", colorMagenta("Error details:"))
	nested := false
	for i, msg := range msgs {
		if nested {
			write("%sError details:\n", indent)
			indent += "  "
			nested = false
		}
		for _, line := range strings.Split(msg, "\n") {
			write("%s%s\n", indent, line)
		}
		_, nested = chain[len(chain)-len(msgs)+i].(*printableErr)
	}
	return
}

// trimCause removes the text of cause repeated at the end of msg, and the ":" joining them
func trimCause(msg, cause string) string {
	msg = strings.TrimSuffix(strings.TrimSpace(msg), strings.TrimSpace(cause))
	return strings.TrimSuffix(strings.TrimSpace(msg), ":")
}

// Problem returns an error reported "nicely" when it exits the CLI app. msg is printed as
// the top-level "Error: ..." wherever the problem is in the chain, and the wrapped errors
// are printed line by line beneath it. Nested problems nest their details:
//
//	Error: msg
//	Error details:
//	  some error
//	  Error: nested msg
//	  Error details:
//	    more nested errors
func Problem(msg string, err error) error {
	return &printableErr{msg, err}
}

type printableErr struct {
	display string
	cause   error
}

func (p *printableErr) Error() string {
	if p.cause == nil {
		return p.display
	}
	return p.display + ": " + p.cause.Error()
}

func (p *printableErr) Unwrap() error {
	return p.cause
}
