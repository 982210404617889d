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

//go:build !unix && !windows

package timesource

import (
	"time"

	"github.com/tikv/coarsetime/pkg/utils/tickutil"
)

const monotonicName = "runtime"

var base = time.Now()

// monotonic uses the runtime monotonic clock relative to process start.
// Readings start one second in so that they are never zero.
func monotonic() uint64 {
	return tickutil.TicksPerSecond + tickutil.NanosToTicks(uint64(time.Since(base)))
}
