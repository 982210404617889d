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

//go:build freebsd

package timesource

import (
	"golang.org/x/sys/unix"

	"github.com/tikv/coarsetime/pkg/utils/tickutil"
)

const (
	monotonicName = "CLOCK_MONOTONIC_FAST"

	clockMonotonicFast = 12
)

func monotonic() uint64 {
	var ts unix.Timespec
	_ = unix.ClockGettime(clockMonotonicFast, &ts)
	sec, nsec := ts.Unix()
	return tickutil.TimespecToTicks(uint64(sec), uint32(nsec))
}
