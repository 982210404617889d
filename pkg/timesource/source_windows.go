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

//go:build windows

package timesource

import (
	"golang.org/x/sys/windows"

	"github.com/tikv/coarsetime/pkg/utils/tickutil"
)

const monotonicName = "GetTickCount64"

func monotonic() uint64 {
	return tickutil.MillisToTicks(windows.GetTickCount64())
}
