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

package backoff

// OutcomeKind tells the retry engine what to do after an attempt
type OutcomeKind int

const (
	// OutcomeSuccess stops retrying and returns the result
	OutcomeSuccess OutcomeKind = iota
	// OutcomeRetryable schedules another attempt if the policy allows it
	OutcomeRetryable
	// OutcomeTerminal stops retrying and surfaces the error unchanged
	OutcomeTerminal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetryable:
		return "retryable"
	case OutcomeTerminal:
		return "terminal"
	}
	return "unknown"
}

// Outcome is the classified result of one attempt
type Outcome struct {
	Kind OutcomeKind
	Err  error
}

// Classify tags the result of an attempt. A nil error is a success; an error whose reason is
// non-retriable for the policy, or that isRetryable rejects, is terminal.
func Classify(err error, policy RetryPolicy, isRetryable IsRetryable) Outcome {
	if err == nil {
		return Outcome{Kind: OutcomeSuccess}
	}
	if policy != nil && policy.IsNonRetriable(ErrorReason(err)) {
		return Outcome{Kind: OutcomeTerminal, Err: err}
	}
	if isRetryable != nil && !isRetryable(err) {
		return Outcome{Kind: OutcomeTerminal, Err: err}
	}
	return Outcome{Kind: OutcomeRetryable, Err: err}
}
