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

package rpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/yarpc/api/transport"

	"github.com/uber/cadence-external-client/common"
)

func TestClientHeadersMiddleware(t *testing.T) {
	tests := map[string]struct {
		identity     string
		callErr      error
		wantIdentity bool
	}{
		"with identity":    {identity: "worker@host", wantIdentity: true},
		"without identity": {},
		"outbound error":   {identity: "worker@host", callErr: errors.New("unavailable"), wantIdentity: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := &recordingOutbound{err: tt.callErr}
			m := &clientHeadersMiddleware{identity: tt.identity}

			_, err := m.Call(context.Background(), &transport.Request{}, out)
			assert.Equal(t, tt.callErr, err)
			require.NotNil(t, out.last)

			headers := out.last.Headers
			impl, _ := headers.Get(common.ClientImplHeaderName)
			assert.Equal(t, common.ClientImpl, impl)
			version, _ := headers.Get(common.FeatureVersionHeaderName)
			assert.Equal(t, common.FeatureVersion, version)
			identity, ok := headers.Get(common.ClientIdentityHeaderName)
			assert.Equal(t, tt.wantIdentity, ok)
			assert.Equal(t, tt.identity, identity)
		})
	}
}

// recordingOutbound keeps the last request it was handed
type recordingOutbound struct {
	transport.UnaryOutbound
	last *transport.Request
	err  error
}

func (o *recordingOutbound) Call(_ context.Context, request *transport.Request) (*transport.Response, error) {
	o.last = request
	if o.err != nil {
		return nil, o.err
	}
	return &transport.Response{}, nil
}
