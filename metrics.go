// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rope

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds optional Prometheus instrumentation for a Rope. Every
// method has a nil receiver guard, so a Rope constructed without
// WithMetrics pays no cost beyond the nil check.
type Metrics struct {
	leafSplits   prometheus.Counter
	bucketSplits prometheus.Counter
	rootGrowths  prometheus.Counter
	insertedRuns prometheus.Counter
	insertedSyms prometheus.Counter
	taskQueueLen prometheus.Gauge
}

// NewMetrics registers the rope's counters with reg and returns a Metrics
// ready to pass to WithMetrics. reg may be a *prometheus.Registry or
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		leafSplits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rope_leaf_splits_total",
			Help: "Number of RLE leaf splits performed.",
		}),
		bucketSplits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rope_bucket_splits_total",
			Help: "Number of interior bucket splits performed.",
		}),
		rootGrowths: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rope_root_growths_total",
			Help: "Number of times the root grew a new bucket level.",
		}),
		insertedRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rope_inserted_runs_total",
			Help: "Number of InsertRun calls.",
		}),
		insertedSyms: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rope_inserted_symbols_total",
			Help: "Number of symbols inserted across all runs.",
		}),
		taskQueueLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rope_bulk_insert_task_queue_length",
			Help: "Current depth of the multi-string bulk insert task heap.",
		}),
	}
	reg.MustRegister(
		m.leafSplits, m.bucketSplits, m.rootGrowths,
		m.insertedRuns, m.insertedSyms, m.taskQueueLen,
	)
	return m
}

func (m *Metrics) incLeafSplit() {
	if m != nil {
		m.leafSplits.Inc()
	}
}

func (m *Metrics) incBucketSplit() {
	if m != nil {
		m.bucketSplits.Inc()
	}
}

func (m *Metrics) incRootGrowth() {
	if m != nil {
		m.rootGrowths.Inc()
	}
}

func (m *Metrics) observeInsert(runLen uint64) {
	if m != nil {
		m.insertedRuns.Inc()
		m.insertedSyms.Add(float64(runLen))
	}
}

func (m *Metrics) setTaskQueueLen(n int) {
	if m != nil {
		m.taskQueueLen.Set(float64(n))
	}
}
