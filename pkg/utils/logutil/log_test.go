// Copyright 2026 TiKV Project Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"testing"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestStringToZapLogLevel(t *testing.T) {
	re := require.New(t)
	re.Equal(zapcore.FatalLevel, StringToZapLogLevel("fatal"))
	re.Equal(zapcore.ErrorLevel, StringToZapLogLevel("ERROR"))
	re.Equal(zapcore.WarnLevel, StringToZapLogLevel("warn"))
	re.Equal(zapcore.WarnLevel, StringToZapLogLevel("warning"))
	re.Equal(zapcore.DebugLevel, StringToZapLogLevel("debug"))
	re.Equal(zapcore.InfoLevel, StringToZapLogLevel("info"))
	re.Equal(zapcore.InfoLevel, StringToZapLogLevel("whatever"))
}

func TestIsLevelLegal(t *testing.T) {
	re := require.New(t)
	for _, level := range []string{"fatal", "ERROR", "warn", "Warning", "debug", "info"} {
		re.True(IsLevelLegal(level), level)
	}
	re.False(IsLevelLegal("trace"))
	re.False(IsLevelLegal(""))
}

func TestSetupLogger(t *testing.T) {
	re := require.New(t)
	prev := log.L()

	lg, restore, err := SetupLogger(&log.Config{Level: "debug", Format: "text"})
	re.NoError(err)
	re.NotNil(lg)
	re.Same(lg, log.L())
	re.True(lg.Core().Enabled(zapcore.DebugLevel))
	restore()
	re.Same(prev, log.L())

	_, restore, err = SetupLogger(&log.Config{Level: "nonsense"})
	re.Error(err)
	re.Nil(restore)
	re.Same(prev, log.L())
}

func TestCapturePanic(t *testing.T) {
	re := require.New(t)
	run := func(f func()) (err error) {
		defer CapturePanic(&err, zap.String("case", t.Name()))
		f()
		return nil
	}

	re.NoError(run(func() {}))

	err := run(func() { panic("boom") })
	re.Error(err)
	re.Equal("boom", err.Error())

	cause := errors.New("typed")
	err = run(func() { panic(cause) })
	re.Error(err)
	re.Equal(cause, errors.Cause(err))
}

func TestCondString(t *testing.T) {
	re := require.New(t)
	re.Equal(zap.Skip(), CondString("name", ""))
	re.Equal(zap.String("name", "updater"), CondString("name", "updater"))
}
