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

// Package clock interprets the coarse monotonic cache as wall-clock time.
//
// The distance between the wall clock and the monotonic clock is measured
// once, on first use, and added to every later reading. Steps of the wall
// clock after that point are not followed.
package clock

import (
	"sync"
	"time"

	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/tikv/coarsetime/pkg/coarsetime"
	"github.com/tikv/coarsetime/pkg/errs"
	"github.com/tikv/coarsetime/pkg/timesource"
)

// UnixTimeStamp is a duration since the Unix epoch.
type UnixTimeStamp = coarsetime.Duration

var (
	offsetOnce sync.Once
	offset     uint64
	source     = timesource.Default()
)

// epochOffset returns wall-minus-monotonic, computed on the first call.
func epochOffset() uint64 {
	offsetOnce.Do(func() {
		mono := source.Monotonic()
		wall, err := source.Wall()
		if err != nil {
			log.Fatal("failed to read the wall clock", errs.ZapError(err))
		}
		offset = wall - mono
		log.Info("computed the epoch offset",
			zap.String("source", source.Name()),
			zap.Uint64("offset-ticks", offset))
	})
	return offset
}

func sinceEpoch(i coarsetime.Instant) UnixTimeStamp {
	return UnixTimeStamp(i.AsTicks() + epochOffset())
}

// NowSinceEpoch refreshes the cache and returns the current time since the epoch.
func NowSinceEpoch() UnixTimeStamp {
	return sinceEpoch(coarsetime.Now())
}

// RecentSinceEpoch returns the cached time since the epoch.
func RecentSinceEpoch() UnixTimeStamp {
	return sinceEpoch(coarsetime.Recent())
}

// Update refreshes the shared cache.
func Update() {
	coarsetime.Update()
}

// SetRecentSinceEpoch makes RecentSinceEpoch return ts until the next refresh.
// Any ts round trips exactly, with one exception: the ts that maps to the
// zero Instant, which the cache reserves for "never read", is stored one
// tick later. It is only used for testing.
func SetRecentSinceEpoch(ts UnixTimeStamp) {
	// Wrapping subtraction, undone by the wrapping addition in sinceEpoch.
	ticks := ts.AsTicks() - epochOffset()
	if ticks == 0 {
		ticks = 1
	}
	coarsetime.SetRecent(coarsetime.InstantFromTicks(ticks))
}

// Now returns NowSinceEpoch as a time.Time.
func Now() time.Time {
	return toTime(NowSinceEpoch())
}

// Recent returns RecentSinceEpoch as a time.Time.
func Recent() time.Time {
	return toTime(RecentSinceEpoch())
}

func toTime(ts UnixTimeStamp) time.Time {
	return time.Unix(int64(ts.AsSecs()), int64(ts.SubsecNanos()))
}
