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

package command

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tikv/coarsetime/pkg/clock"
	"github.com/tikv/coarsetime/pkg/coarsetime"
	"github.com/tikv/coarsetime/pkg/updater"
	"github.com/tikv/coarsetime/pkg/utils/logutil"
)

const driftThreshold = time.Second

// NewWatchCommand returns a command running an updater and logging the cache.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "run an updater and periodically log the cached time",
		Args:  cobra.NoArgs,
		RunE:  watchCommandF,
	}
	cmd.Flags().String("config", "", "config file")
	cmd.Flags().String("name", "", "updater name")
	cmd.Flags().Duration("period", 10*time.Millisecond, "refresh period of the updater")
	cmd.Flags().Duration("interval", defaultInterval, "interval between two log lines")
	cmd.Flags().Duration("duration", 0, "stop after this long, 0 means until interrupted")
	cmd.Flags().String("metrics-addr", "", "serve prometheus metrics on this address")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn, error, fatal")
	return cmd
}

func watchCommandF(cmd *cobra.Command, _ []string) (err error) {
	cfg := newWatchConfig()
	if err := cfg.Parse(cmd.Flags()); err != nil {
		return err
	}
	_, restoreLogger, err := logutil.SetupLogger(&cfg.Log)
	if err != nil {
		return err
	}
	defer restoreLogger()
	defer log.Sync()
	for _, msg := range cfg.WarningMsgs {
		log.Warn(msg)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if cfg.Duration.Duration > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, cfg.Duration.Duration)
		defer timeoutCancel()
	}

	u, err := updater.NewWithConfig(&cfg.Updater)
	if err != nil {
		return err
	}
	if cfg.MetricsAddr != "" {
		srv, _, serveErr := runMetricsServer(cfg.MetricsAddr)
		if serveErr != nil {
			return serveErr
		}
		defer func() {
			err = multierr.Append(err, srv.Shutdown(context.Background()))
		}()
	}
	if err := u.Start(ctx); err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, u.Stop())
	}()

	var wg sync.WaitGroup
	defer wg.Wait()
	monitor := &clock.DriftMonitor{
		Interval:  cfg.Interval.Duration,
		Threshold: driftThreshold,
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		monitor.Run(ctx)
	}()

	watch(ctx, cfg.Interval.Duration)
	log.Info("stop watching", zap.NamedError("cause", context.Cause(ctx)))
	return nil
}

func watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			recent := coarsetime.Recent()
			log.Info("coarse time",
				zap.Stringer("recent", recent),
				zap.Time("wall", clock.Recent()),
				zap.Duration("staleness", coarsetime.NowWithoutCacheUpdate().Sub(recent).Std()))
		case <-ctx.Done():
			return
		}
	}
}

