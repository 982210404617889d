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
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pingcap/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tikv/coarsetime/pkg/clock"
	"github.com/tikv/coarsetime/pkg/errs"
)

var registerClockMetrics sync.Once

// runMetricsServer serves the default prometheus registry on addr in the background.
func runMetricsServer(addr string) (*http.Server, net.Addr, error) {
	registerClockMetrics.Do(func() {
		if err := clock.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
			log.Warn("failed to register clock metrics", errs.ZapError(err))
		}
	})

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 3 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server exited", errs.ZapError(err))
		}
	}()
	log.Info("serving metrics", zap.Stringer("addr", ln.Addr()))
	return srv, ln.Addr(), nil
}
