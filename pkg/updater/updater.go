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

// Package updater keeps the coarse time cache warm from a background goroutine.
package updater

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pingcap/failpoint"
	"github.com/pingcap/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/tikv/coarsetime/pkg/coarsetime"
	"github.com/tikv/coarsetime/pkg/errs"
	"github.com/tikv/coarsetime/pkg/utils/logutil"
	"github.com/tikv/coarsetime/pkg/utils/syncutil"
)

const (
	maxPeriodMillis = uint64(math.MaxInt64 / int64(time.Millisecond))

	lagFactor      = 4
	lagLogInterval = time.Minute
)

type state int

const (
	stateIdle state = iota
	stateRunning
	stateStopped
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	case stateStopped:
		return "stopped"
	}
	return "unknown"
}

// Updater refreshes the coarse time cache at a fixed period.
// An Updater can be started and stopped only once.
type Updater struct {
	name   string
	period time.Duration
	// periodErr is set when the requested period does not fit a time.Duration.
	periodErr error
	// update is replaced in tests.
	update  func()
	counter prometheus.Counter

	running atomic.Bool
	wg      sync.WaitGroup
	// workerErr is written by the worker before wg.Done.
	workerErr error

	mu struct {
		syncutil.Mutex
		state  state
		cancel context.CancelFunc
	}
}

// New creates an Updater refreshing the cache every periodMillis milliseconds.
// A period too long for time.Duration makes Start fail.
func New(periodMillis uint64) *Updater {
	if periodMillis > maxPeriodMillis {
		u := newUpdater(defaultName, 0)
		u.periodErr = errs.ErrUpdaterInvalidPeriod.FastGenByArgs(fmt.Sprintf("%dms", periodMillis))
		return u
	}
	return newUpdater(defaultName, time.Duration(periodMillis)*time.Millisecond)
}

// NewWithConfig creates an Updater from an adjusted Config.
func NewWithConfig(cfg *Config) (*Updater, error) {
	if cfg.Period.Duration <= 0 {
		return nil, errs.ErrUpdaterInvalidPeriod.FastGenByArgs(cfg.Period.Duration)
	}
	return newUpdater(cfg.Name, cfg.Period.Duration), nil
}

func newUpdater(name string, period time.Duration) *Updater {
	return &Updater{
		name:   name,
		period: period,
		update:  coarsetime.Update,
		counter: refreshCounter.WithLabelValues(name),
	}
}

// Period returns the refresh period.
func (u *Updater) Period() time.Duration {
	return u.period
}

// IsRunning returns whether the worker is still refreshing the cache.
func (u *Updater) IsRunning() bool {
	return u.running.Load()
}

// Start refreshes the cache once and then spawns the worker.
// The worker exits when Stop is called or ctx is done.
func (u *Updater) Start(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.mu.state != stateIdle {
		return errs.ErrUpdaterStarted.FastGenByArgs(u.mu.state)
	}
	if u.periodErr != nil {
		return u.periodErr
	}
	period := u.period
	failpoint.Inject("fastRefreshPeriod", func() {
		period = time.Millisecond
	})
	if period <= 0 {
		return errs.ErrUpdaterInvalidPeriod.FastGenByArgs(period)
	}

	u.refresh()
	ctx, cancel := context.WithCancel(ctx)
	u.mu.cancel = cancel
	u.mu.state = stateRunning
	u.running.Store(true)
	u.wg.Add(1)
	go u.updateLoop(ctx, period)
	return nil
}

func (u *Updater) updateLoop(ctx context.Context, period time.Duration) {
	defer u.wg.Done()
	defer logutil.CapturePanic(&u.workerErr, zap.String("name", u.name))
	defer u.running.Store(false)
	runningGauge.Inc()
	defer runningGauge.Dec()

	log.Info("coarse time updater is started",
		zap.String("name", u.name), zap.Duration("period", period))
	lagLog := rate.Sometimes{First: 1, Interval: lagLogInterval}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			if !u.running.Load() {
				return
			}
			// The ticker drops ticks for a slow receiver, so a long gap means
			// the cache was stale for that long.
			if gap := now.Sub(last); gap > lagFactor*period {
				lagLog.Do(func() {
					log.Warn("coarse time updater is lagging",
						zap.String("name", u.name),
						zap.Duration("period", period),
						zap.Duration("gap", gap))
				})
			}
			last = now
			u.refresh()
		case <-ctx.Done():
			log.Info("exit coarse time updater", zap.String("name", u.name))
			return
		}
	}
}

func (u *Updater) refresh() {
	u.update()
	u.counter.Inc()
}

// Stop cancels the worker and waits for it to exit. It returns an error if
// the worker panicked. Stopping an Updater that was never started, or was
// already stopped, panics.
func (u *Updater) Stop() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.mu.state != stateRunning {
		panic(fmt.Sprintf("stop coarse time updater %q which is %s", u.name, u.mu.state))
	}
	u.running.Store(false)
	u.mu.cancel()
	u.wg.Wait()
	u.mu.state = stateStopped
	if u.workerErr != nil {
		err := errs.ErrUpdaterStop.Wrap(u.workerErr).GenWithStackByCause()
		log.Error("coarse time updater exited abnormally", zap.String("name", u.name), errs.ZapError(err))
		return err
	}
	log.Info("coarse time updater is stopped", zap.String("name", u.name))
	return nil
}
