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

import (
	"fmt"
	"time"

	"github.com/robfig/cron"

	"github.com/uber/cadence-external-client/common/types"
)

// ParseCronSchedule parses a standard five field cron spec (or a descriptor like @every 5h) the way the
// server does. Specs that parse but can never fire, such as Feb 30, are rejected too.
func ParseCronSchedule(spec string) (cron.Schedule, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, invalidCron(spec, fmt.Sprintf("failed to parse: %v", err))
	}
	if schedule.Next(time.Now()).IsZero() {
		return nil, invalidCron(spec, "no next firing time found, maybe impossible date")
	}
	return schedule, nil
}

// NextCronRun returns the delay between now and the first run of a cron workflow, rounded up to the second
func NextCronRun(spec string, now time.Time) (time.Duration, error) {
	schedule, err := ParseCronSchedule(spec)
	if err != nil {
		return 0, err
	}
	now = now.UTC()
	next := schedule.Next(now)
	if next.IsZero() {
		return 0, invalidCron(spec, "no next firing time found")
	}
	delay := next.Sub(now)
	if rounded := delay.Truncate(time.Second); rounded != delay {
		delay = rounded + time.Second
	}
	return delay, nil
}

func invalidCron(spec, reason string) error {
	return &types.BadRequestError{Message: fmt.Sprintf("Invalid CronSchedule %q: %v", spec, reason)}
}
