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

package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

type (
	// TimeSource is an interface to make it easier to test code that depends on time.
	// Delays in retry loops go through it so tests can drive them deterministically.
	TimeSource interface {
		Now() time.Time
		Since(t time.Time) time.Duration
		After(d time.Duration) <-chan time.Time
		NewTimer(d time.Duration) Timer
		AfterFunc(d time.Duration, f func()) Timer
	}

	// MockedTimeSource is a TimeSource that only moves when told to
	MockedTimeSource interface {
		TimeSource
		// Advance moves the clock forward, firing every timer that expires on the way.
		Advance(d time.Duration)
		// BlockUntil blocks until the given number of timers or sleepers are waiting on the clock.
		BlockUntil(waiters int)
	}

	// Timer is a stoppable timer created by a TimeSource
	Timer = clockwork.Timer
)

// NewRealTimeSource returns a time source backed by the system clock
func NewRealTimeSource() TimeSource {
	return clockwork.NewRealClock()
}

// NewMockedTimeSource returns a mocked time source starting at an arbitrary fixed time
func NewMockedTimeSource() MockedTimeSource {
	return clockwork.NewFakeClock()
}

// NewMockedTimeSourceAt returns a mocked time source starting at the given time
func NewMockedTimeSourceAt(t time.Time) MockedTimeSource {
	return clockwork.NewFakeClockAt(t)
}
