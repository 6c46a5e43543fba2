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
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/valyala/fastjson"

	"github.com/uber/cadence-external-client/common/types"
)

var (
	workflowIDReusePolicies = enumValues(
		types.WorkflowIDReusePolicyAllowDuplicateFailedOnly,
		types.WorkflowIDReusePolicyAllowDuplicate,
		types.WorkflowIDReusePolicyRejectDuplicate,
		types.WorkflowIDReusePolicyTerminateIfRunning,
	)
	queryRejectConditions = enumValues(
		types.QueryRejectConditionNotOpen,
		types.QueryRejectConditionNotCompletedCleanly,
	)
	queryConsistencyLevels = enumValues(
		types.QueryConsistencyLevelEventual,
		types.QueryConsistencyLevelStrong,
	)
)

func enumValues[T fmt.Stringer](values ...T) map[string]T {
	m := make(map[string]T, len(values))
	for _, v := range values {
		m[strings.ToLower(v.String())] = v
	}
	return m
}

func enumNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseEnum returns nil when the flag is not set. Names match case-insensitively.
func parseEnum[T any](c *cli.Context, flag string, values map[string]T) (*T, error) {
	if !c.IsSet(flag) {
		return nil, nil
	}
	raw := c.String(flag)
	v, ok := values[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return nil, fmt.Errorf("invalid value %q of --%s, valid values are %v", raw, flag, enumNames(values))
	}
	return &v, nil
}

// processJSONInput reads the input from rawFlag, or from the file named by fileFlag.
// The input must be a JSON value or JSON values separated by spaces or newlines.
func processJSONInput(c *cli.Context, rawFlag, fileFlag string) ([]byte, error) {
	var input string
	switch {
	case c.IsSet(rawFlag):
		input = c.String(rawFlag)
	case fileFlag != "" && c.IsSet(fileFlag):
		// #nosec
		data, err := os.ReadFile(c.String(fileFlag))
		if err != nil {
			return nil, fmt.Errorf("failed to read --%s: %w", fileFlag, err)
		}
		input = string(data)
	}
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	if _, err := processMultipleJSONValues(input); err != nil {
		return nil, fmt.Errorf("--%s is not valid JSON, or JSONs concatenated with spaces/newlines: %w", rawFlag, err)
	}
	return []byte(input), nil
}

func processMultipleKeys(rawKey string) []string {
	var keys []string
	for _, key := range strings.Split(rawKey, keysSeparator) {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func processMultipleJSONValues(rawValue string) ([]string, error) {
	var values []string
	var sc fastjson.Scanner
	sc.Init(rawValue)
	for sc.Next() {
		values = append(values, sc.Value().String())
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return values, nil
}

// mapFromKeysValues pairs the keys of keyFlag with the JSON values of valueFlag, nil when no key is set
func mapFromKeysValues(c *cli.Context, keyFlag, valueFlag string) (map[string][]byte, error) {
	keys := processMultipleKeys(c.String(keyFlag))
	if len(keys) == 0 {
		return nil, nil
	}
	values, err := processMultipleJSONValues(c.String(valueFlag))
	if err != nil {
		return nil, fmt.Errorf("failed to parse --%s: %w", valueFlag, err)
	}
	if len(keys) != len(values) {
		return nil, fmt.Errorf("number of --%s (%d) and --%s (%d) do not match", keyFlag, len(keys), valueFlag, len(values))
	}

	fields := make(map[string][]byte, len(keys))
	for i, key := range keys {
		fields[key] = []byte(values[i])
	}
	return fields, nil
}
