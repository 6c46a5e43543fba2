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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseZapLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseZapLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseZapLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseZapLevel("error"))
	assert.Equal(t, zapcore.FatalLevel, parseZapLevel("fatal"))
	assert.Equal(t, zapcore.InfoLevel, parseZapLevel("unknown"))
}

func TestNewZapLoggerToFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "client.log")
	cfg := Logger{
		Level:      "debug",
		OutputFile: outFile,
		LevelKey:   "severity",
	}

	logger, err := cfg.NewZapLogger()
	require.NoError(t, err)
	logger.Debug("hello")
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"severity":"debug"`)
	assert.Contains(t, string(content), `"msg":"hello"`)
}

func TestNewZapLoggerConsole(t *testing.T) {
	cfg := Logger{Stdout: true, Encoding: "console"}
	logger, err := cfg.NewZapLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
