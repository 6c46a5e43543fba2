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
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uber/cadence-external-client/common/backoff"
	"github.com/uber/cadence-external-client/common/types"
)

func TestPrintErr(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "Error: boom\n",
		},
		{
			name: "problem without cause",
			err:  Problem("Invalid flags", nil),
			want: "Error: Invalid flags\n",
		},
		{
			name: "problem with wrapped cause",
			err:  Problem("Failed to start workflow", fmt.Errorf("attempt 3: %w", errors.New("busy"))),
			want: "Error: Failed to start workflow\n" +
				"Error details:\n" +
				"  attempt 3\n" +
				"  busy\n",
		},
		{
			name: "problem below a wrapper",
			err:  fmt.Errorf("command start: %w", Problem("Failed to start workflow", errors.New("busy"))),
			want: "Error: Failed to start workflow\n" +
				"Error details:\n" +
				"  command start\n" +
				"  Error (above): Failed to start workflow\n" +
				"  Error details:\n" +
				"    busy\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printErr(tt.err, &buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, ExitCodeFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitCodeFailure, ExitCode(Problem("failed", &types.ServiceBusyError{Message: "busy"})))
	assert.Equal(t, ExitCodeRejected, ExitCode(Problem("failed", &types.WorkflowExecutionAlreadyStartedError{})))
	assert.Equal(t, ExitCodeRejected, ExitCode(fmt.Errorf("wrapped: %w", &types.BadRequestError{Message: "bad"})))
	assert.Equal(t, ExitCodeTimeout, ExitCode(Problem("failed", &backoff.DeadlineExceededError{Attempts: 3})))
	assert.Equal(t, ExitCodeTimeout, ExitCode(Problem("failed", context.DeadlineExceeded)))
}

func TestProblemError(t *testing.T) {
	cause := errors.New("cause")
	err := Problem("display", cause)
	assert.Equal(t, "display: cause", err.Error())
	assert.Same(t, cause, errors.Unwrap(err))
	assert.Equal(t, "display", Problem("display", nil).Error())
}
