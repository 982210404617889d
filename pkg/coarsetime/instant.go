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

package coarsetime

import (
	"strconv"

	"github.com/tikv/coarsetime/pkg/timesource"
	"github.com/tikv/coarsetime/pkg/utils/tickutil"
)

// Instant is a reading of a coarse monotonic clock. It is opaque: it can
// only be compared with, or subtracted from, other Instants taken by the same
// process. Readings are not affected by wall clock adjustments.
type Instant uint64

// Now reads the clock, publishes the reading to the recent cache and
// returns it. It is the only accessor guaranteed to reflect the current time.
func Now() Instant {
	return Instant(recent.refresh())
}

// NowWithoutCacheUpdate reads the clock without publishing the reading,
// so Recent keeps returning the previous value.
func NowWithoutCacheUpdate() Instant {
	return Instant(timesource.Monotonic())
}

// Recent returns the last published reading without touching the clock.
// The first call in a process falls back to Now.
func Recent() Instant {
	return Instant(recent.get())
}

// Update reads the clock and publishes the reading. It is meant to be
// called frequently by an event loop or by an updater.Updater.
func Update() {
	recent.refresh()
}

// InstantFromTicks rebuilds an Instant from AsTicks, for example after
// keeping it in an atomic.Uint64.
func InstantFromTicks(ticks uint64) Instant {
	return Instant(ticks)
}

// Elapsed returns the time since i. It reads the clock and updates the
// recent cache.
func (i Instant) Elapsed() Duration {
	return Now().Sub(i)
}

// ElapsedSinceRecent returns the time between i and the last published
// reading.
func (i Instant) ElapsedSinceRecent() Duration {
	return Recent().Sub(i)
}

// DurationSince returns the time elapsed from earlier to i.
func (i Instant) DurationSince(earlier Instant) Duration {
	return i.Sub(earlier)
}

// Sub returns i-u. Coarse clocks may appear to step back slightly across
// cores, so the result saturates at zero instead of wrapping.
func (i Instant) Sub(u Instant) Duration {
	if u >= i {
		return 0
	}
	return Duration(i - u)
}

// Add shifts i forward by d.
func (i Instant) Add(d Duration) Instant {
	return i + Instant(d)
}

// SubDuration shifts i backward by d.
func (i Instant) SubDuration(d Duration) Instant {
	return i - Instant(d)
}

// AsTicks returns the raw encoding. Neither the length of a tick nor the
// meaning of zero ticks is stable across platforms or versions.
func (i Instant) AsTicks() uint64 {
	return uint64(i)
}

// String prints the reading as seconds since the clock's origin.
func (i Instant) String() string {
	return strconv.FormatFloat(float64(i)/float64(tickutil.TicksPerSecond), 'f', 6, 64) + "s"
}
