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

package clock

import (
	"context"
	"time"

	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/tikv/coarsetime/pkg/coarsetime"
)

// DriftMonitor compares the derived wall time with the system wall clock.
// It only reports drift, the epoch offset is never recomputed.
type DriftMonitor struct {
	// Interval between two checks.
	Interval time.Duration
	// Threshold is the largest drift in either direction that is not reported.
	Threshold time.Duration
	// Now reads the system wall clock. Defaults to time.Now.
	Now func() time.Time
	// OnDrift is called with the system time minus the derived time.
	OnDrift func(drift time.Duration)
}

// Drift returns the system wall time minus the derived wall time, reading
// the monotonic clock without publishing it.
func Drift(now func() time.Time) time.Duration {
	derived := toTime(sinceEpoch(coarsetime.NowWithoutCacheUpdate()))
	return now().Sub(derived)
}

// Run checks for drift until ctx is done.
func (m *DriftMonitor) Run(ctx context.Context) {
	now := m.Now
	if now == nil {
		now = time.Now
	}
	log.Info("start clock drift monitor",
		zap.Duration("interval", m.Interval), zap.Duration("threshold", m.Threshold))
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			drift := Drift(now)
			if drift <= m.Threshold && drift >= -m.Threshold {
				continue
			}
			log.Warn("system wall clock drifted from the coarse clock",
				zap.Duration("drift", drift), zap.Duration("threshold", m.Threshold))
			if m.OnDrift != nil {
				m.OnDrift(drift)
			}
		case <-ctx.Done():
			log.Info("clock drift monitor is stopped")
			return
		}
	}
}
