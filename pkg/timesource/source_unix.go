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

//go:build unix && !linux && !darwin && !freebsd

package timesource

import (
	"golang.org/x/sys/unix"

	"github.com/tikv/coarsetime/pkg/utils/tickutil"
)

// Remaining unix targets have no coarse monotonic clock we can rely on, so
// fall back to gettimeofday, which is cheap but follows wall clock steps.
const monotonicName = "gettimeofday"

func monotonic() uint64 {
	var tv unix.Timeval
	_ = unix.Gettimeofday(&tv)
	sec, nsec := tv.Unix()
	return tickutil.TimevalToTicks(uint64(sec), uint32(nsec/1_000))
}
