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

package proto

import (
	gogo "github.com/gogo/protobuf/types"

	"github.com/uber/cadence-external-client/common"
)

func secondsToDuration(d *int32) *gogo.Duration {
	if d == nil {
		return nil
	}
	return gogo.DurationProto(common.SecondsToDuration(int64(*d)))
}

func durationToSeconds(d *gogo.Duration) *int32 {
	if d == nil {
		return nil
	}
	duration, err := gogo.DurationFromProto(d)
	if err != nil {
		panic(err)
	}
	return common.Int32Ptr(int32(common.DurationToSeconds(duration)))
}

func secondsValueToDuration(d int32) *gogo.Duration {
	if d == 0 {
		return nil
	}
	return secondsToDuration(&d)
}

func durationToSecondsValue(d *gogo.Duration) int32 {
	if s := durationToSeconds(d); s != nil {
		return *s
	}
	return 0
}
