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

// Package coarsetime provides cheap, approximate time measurement for code
// that samples the time very often.
//
// Instant readings come from a coarse monotonic clock and are published to a
// process-wide cache. Now pays for a clock read; Recent only loads the cache.
// Keep the cache warm with Update, from an event loop or an updater.Updater,
// and hot paths can measure elapsed time without any syscall.
//
// Both Instant and Duration use a 64-bit fixed-point encoding with 32
// fractional bits, so one tick is 1/2^32 of a second.
package coarsetime
