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
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tikv/coarsetime/pkg/coarsetime"
)

const (
	namespace = "coarsetime"
	subsystem = "clock"
)

type collector struct {
	recentSeconds    *prometheus.Desc
	stalenessSeconds *prometheus.Desc
	offsetSeconds    *prometheus.Desc
	driftSeconds     *prometheus.Desc
}

func newCollector() *collector {
	return &collector{
		recentSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "recent_unix_seconds"),
			"Cached wall time in seconds since the Unix epoch.",
			nil, nil),
		stalenessSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "staleness_seconds"),
			"How far the cached time lags behind the monotonic clock.",
			nil, nil),
		offsetSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "epoch_offset_seconds"),
			"Distance between the wall clock and the monotonic clock when it was measured.",
			nil, nil),
		driftSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "wall_drift_seconds"),
			"System wall time minus the derived wall time.",
			nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.recentSeconds
	ch <- c.stalenessSeconds
	ch <- c.offsetSeconds
	ch <- c.driftSeconds
}

// Collect implements prometheus.Collector.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	recent := coarsetime.Recent()
	// Scraping must not refresh the cache it observes.
	staleness := coarsetime.NowWithoutCacheUpdate().Sub(recent)
	ch <- prometheus.MustNewConstMetric(c.recentSeconds, prometheus.GaugeValue, sinceEpoch(recent).AsSeconds())
	ch <- prometheus.MustNewConstMetric(c.stalenessSeconds, prometheus.GaugeValue, staleness.AsSeconds())
	ch <- prometheus.MustNewConstMetric(c.offsetSeconds, prometheus.GaugeValue, coarsetime.FromTicks(epochOffset()).AsSeconds())
	ch <- prometheus.MustNewConstMetric(c.driftSeconds, prometheus.GaugeValue, Drift(time.Now).Seconds())
}

// RegisterMetrics registers the clock collector with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(newCollector())
}
