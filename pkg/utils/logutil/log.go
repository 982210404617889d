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
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tikv/coarsetime/pkg/errs"
)

// StringToZapLogLevel translates log level string to log level.
func StringToZapLogLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "fatal":
		return zapcore.FatalLevel
	case "error":
		return zapcore.ErrorLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	}
	return zapcore.InfoLevel
}

// IsLevelLegal checks whether the level is legal.
func IsLevelLegal(level string) bool {
	switch strings.ToLower(level) {
	case "fatal", "error", "warn", "warning", "debug", "info":
		return true
	default:
		return false
	}
}

// SetupLogger initializes a logger from the config and installs it as the
// global pingcap/log logger. The returned function restores the previous
// global logger.
func SetupLogger(logConfig *log.Config) (*zap.Logger, func(), error) {
	lg, p, err := log.InitLogger(logConfig, zap.AddStacktrace(zapcore.FatalLevel))
	if err != nil {
		return nil, nil, errs.ErrInitLogger.Wrap(err).GenWithStackByCause()
	}
	return lg, log.ReplaceGlobals(lg, p), nil
}

// LogPanic logs the panic reason and stack, then exit the process.
// Commonly used with a `defer`.
func LogPanic() {
	if e := recover(); e != nil {
		log.Fatal("panic", zap.Reflect("recover", e))
	}
}

// CapturePanic recovers a panic of the current goroutine, logs it and
// stores it into err instead of crashing the process.
// It must be called directly with a `defer`.
func CapturePanic(err *error, fields ...zap.Field) {
	e := recover()
	if e == nil {
		return
	}
	stack := debug.Stack()
	log.Error("recovered from panic",
		append(fields, zap.Reflect("recover", e), zap.ByteString("stack", stack))...)
	if recovered, ok := e.(error); ok {
		*err = errors.WithStack(recovered)
		return
	}
	*err = errors.New(fmt.Sprint(e))
}

// CondString constructs a string field only when the value is not empty.
func CondString(key, val string) zap.Field {
	if len(val) == 0 {
		return zap.Skip()
	}
	return zap.String(key, val)
}
