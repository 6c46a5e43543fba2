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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/uber/cadence-external-client/common/types"
)

func runWithStartFlags(t *testing.T, args []string, fn func(c *cli.Context)) {
	app := cli.NewApp()
	app.Flags = append(getStartFlags(), getAsyncFlags()...)
	app.Action = func(c *cli.Context) error {
		fn(c)
		return nil
	}
	require.NoError(t, app.Run(append([]string{"test", "--wt", "t", "--tl", "tl", "--et", "1m"}, args...)))
}

func TestProcessJSONInput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(file, []byte("{\"a\": [1, 2]}\n\"second\""), 0o600))

	tests := []struct {
		name    string
		args    []string
		want    []byte
		wantErr bool
	}{
		{name: "unset"},
		{name: "raw", args: []string{"--input", `"x" 1`}, want: []byte(`"x" 1`)},
		{name: "file", args: []string{"--input_file", file}, want: []byte("{\"a\": [1, 2]}\n\"second\"")},
		{name: "raw wins over file", args: []string{"--input", "true", "--input_file", file}, want: []byte("true")},
		{name: "invalid", args: []string{"--input", "{"}, wantErr: true},
		{name: "missing file", args: []string{"--input_file", file + ".missing"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runWithStartFlags(t, tt.args, func(c *cli.Context) {
				input, err := processJSONInput(c, FlagInput, FlagInputFile)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, tt.want, input)
			})
		})
	}
}

func TestMapFromKeysValues(t *testing.T) {
	runWithStartFlags(t, []string{"--header_key", " a  b ", "--header_value", `{"x":1} [2]`}, func(c *cli.Context) {
		fields, err := mapFromKeysValues(c, FlagHeaderKey, FlagHeaderValue)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{"a": []byte(`{"x":1}`), "b": []byte("[2]")}, fields)

		fields, err = mapFromKeysValues(c, FlagMemoKey, FlagMemo)
		assert.NoError(t, err)
		assert.Nil(t, fields)
	})
}

func TestParseEnum(t *testing.T) {
	runWithStartFlags(t, []string{"--workflowidreusepolicy", "TerminateIfRunning"}, func(c *cli.Context) {
		policy, err := parseEnum(c, FlagWorkflowIDReusePolicy, workflowIDReusePolicies)
		require.NoError(t, err)
		assert.Equal(t, types.WorkflowIDReusePolicyTerminateIfRunning, *policy)

		unset, err := parseEnum(c, FlagCronSchedule, workflowIDReusePolicies)
		assert.NoError(t, err)
		assert.Nil(t, unset)
	})
	runWithStartFlags(t, []string{"--workflowidreusepolicy", "never"}, func(c *cli.Context) {
		_, err := parseEnum(c, FlagWorkflowIDReusePolicy, workflowIDReusePolicies)
		assert.ErrorContains(t, err, "allowduplicate")
	})
}
