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

// Package timesource reads the raw host clocks used by the coarse time cache.
//
// Exactly one monotonic strategy is compiled in for each target, chosen by
// file build constraints. All readings are fixed-point ticks, see tickutil.
package timesource

import (
	"time"

	"github.com/pingcap/errors"

	"github.com/tikv/coarsetime/pkg/errs"
	"github.com/tikv/coarsetime/pkg/utils/tickutil"
)

// Source is a host clock capability.
type Source interface {
	// Monotonic returns a coarse, best-effort non-decreasing reading.
	// It is never zero.
	Monotonic() uint64
	// Wall returns the time elapsed since the Unix epoch.
	Wall() (uint64, error)
	// Name describes the underlying clock.
	Name() string
}

type platformSource struct{}

func (platformSource) Monotonic() uint64     { return Monotonic() }
func (platformSource) Wall() (uint64, error) { return Wall() }
func (platformSource) Name() string          { return Name() }

// Default returns the source selected for the current target.
func Default() Source {
	return platformSource{}
}

// Monotonic reads the platform's coarse monotonic clock.
func Monotonic() uint64 {
	if ticks := monotonic(); ticks != 0 {
		return ticks
	}
	// Zero is reserved for "never read" by the cache.
	return 1
}

// Name describes the monotonic clock compiled in for this target.
func Name() string {
	return monotonicName
}

// Wall reads the wall clock. It fails when the host reports a time before
// the Unix epoch, which means the clock is not set.
func Wall() (uint64, error) {
	now := time.Now()
	nanos := now.UnixNano()
	if nanos < 0 {
		return 0, errs.ErrIncorrectSystemTime.Wrap(
			errors.Errorf("wall clock %s is before the unix epoch", now)).GenWithStackByCause()
	}
	return tickutil.NanosToTicks(uint64(nanos)), nil
}
