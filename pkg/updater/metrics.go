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

package updater

import "github.com/prometheus/client_golang/prometheus"

const nameLabel = "name"

var (
	refreshCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coarsetime",
			Subsystem: "updater",
			Name:      "refresh_total",
			Help:      "Counter of coarse time cache refreshes made by updaters.",
		}, []string{nameLabel})

	runningGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "coarsetime",
			Subsystem: "updater",
			Name:      "running",
			Help:      "Number of running updater workers.",
		})
)

func init() {
	prometheus.MustRegister(refreshCounter)
	prometheus.MustRegister(runningGauge)
}
