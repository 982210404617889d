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
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tikv/coarsetime/pkg/utils/testutil"
)

func TestDrift(t *testing.T) {
	re := require.New(t)
	re.Less(Drift(time.Now).Abs(), 2*time.Second)
	re.Greater(Drift(func() time.Time { return time.Now().Add(time.Hour) }), 59*time.Minute)
}

func TestDriftMonitor(t *testing.T) {
	re := require.New(t)
	var (
		stepped atomic.Bool
		drifts  atomic.Int32
		wg      sync.WaitGroup
	)
	m := &DriftMonitor{
		Interval:  10 * time.Millisecond,
		Threshold: 5 * time.Second,
		Now: func() time.Time {
			if stepped.Load() {
				return time.Now().Add(-time.Minute)
			}
			return time.Now()
		},
		OnDrift: func(drift time.Duration) {
			if drift < -50*time.Second {
				drifts.Add(1)
			}
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	re.Zero(drifts.Load())
	stepped.Store(true)
	testutil.Eventually(re, func() bool {
		return drifts.Load() > 0
	})
	cancel()
	wg.Wait()
}
