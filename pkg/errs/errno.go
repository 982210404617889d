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

package errs

import "github.com/pingcap/errors"

// clock errors
var (
	ErrIncorrectSystemTime = errors.Normalize("incorrect system time", errors.RFCCodeText("coarsetime:clock:ErrIncorrectSystemTime"))
)

// updater errors
var (
	ErrUpdaterStarted       = errors.Normalize("updater is %s, it can only be started once", errors.RFCCodeText("coarsetime:updater:ErrUpdaterStarted"))
	ErrUpdaterInvalidPeriod = errors.Normalize("invalid updater period %v", errors.RFCCodeText("coarsetime:updater:ErrUpdaterInvalidPeriod"))
	ErrUpdaterStop          = errors.Normalize("failed to properly stop the updater", errors.RFCCodeText("coarsetime:updater:ErrUpdaterStop"))
)

// config errors
var (
	ErrLoadConfig = errors.Normalize("load config from %s failed", errors.RFCCodeText("coarsetime:config:ErrLoadConfig"))
)

// logutil errors
var (
	ErrInitLogger = errors.Normalize("init logger error", errors.RFCCodeText("coarsetime:logutil:ErrInitLogger"))
)
