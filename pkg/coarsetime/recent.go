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
	"sync/atomic"

	"github.com/tikv/coarsetime/pkg/timesource"
)

// recentCache holds the last published monotonic reading of the process.
// Zero means nothing has been published yet.
//
// Stores and loads are independent atomic operations, concurrent writers
// race and the last one wins. Readers only need an approximate value, so no
// ordering with other memory is required.
type recentCache struct {
	ticks atomic.Uint64
}

var recent recentCache

func (c *recentCache) load() uint64 {
	return c.ticks.Load()
}

func (c *recentCache) store(ticks uint64) {
	c.ticks.Store(ticks)
}

// refresh reads the platform clock and publishes the reading.
func (c *recentCache) refresh() uint64 {
	now := timesource.Monotonic()
	c.store(now)
	return now
}

// get returns the published reading, seeding the cache on first use.
// Concurrent first callers may all refresh, which is harmless.
func (c *recentCache) get() uint64 {
	if ticks := c.load(); ticks != 0 {
		return ticks
	}
	return c.refresh()
}

// SetRecent overrides the cached reading returned by Recent.
// It is intended for deterministic tests only.
func SetRecent(i Instant) {
	recent.store(uint64(i))
}

// resetRecent puts the cache back to its never-initialized state.
// It is only used for testing.
func resetRecent() {
	recent.store(0)
}
