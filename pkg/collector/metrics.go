// Copyright (c) 2025, the nodescope authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nodescope_collection_duration_seconds",
			Help:    "Time taken to collect a complete node report",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	collectionTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nodescope_collection_total",
			Help: "Total number of report collections",
		},
	)

	probeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nodescope_probe_duration_seconds",
			Help:    "Time taken by individual section probes",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"probe"}, // hardware, os, network, nix, cluster, health, processes, security
	)

	probeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nodescope_probe_failures_total",
			Help: "Probe failures that degraded a report section to defaults",
		},
		[]string{"probe"},
	)
)
