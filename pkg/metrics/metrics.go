// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package metrics

import (
	"io"

	"github.com/consensys/go-diophant/pkg/dioph"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Namespace prefixes every metric exported by this package.
const Namespace = "diophant"

// Source provides solver statistics on demand.
type Source interface {
	Statistics() dioph.Statistics
}

// Collector exports the statistics of a solver as prometheus metrics.  Values
// are read from the solver whenever metrics are collected.
type Collector struct {
	source Source
	// Counters
	calls          *prometheus.Desc
	outcomes       *prometheus.Desc
	solves         *prometheus.Desc
	implied        *prometheus.Desc
	decompositions *prometheus.Desc
	deferrals      *prometheus.Desc
	// Time spent in drivers
	seconds *prometheus.Desc
}

// NewCollector constructs a collector for a given source, where every metric
// carries a given set of constant labels.
func NewCollector(source Source, labels prometheus.Labels) *Collector {
	desc := func(name string, help string, variable ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(Namespace, "solver", name), help, variable, labels)
	}
	//
	return &Collector{
		source:         source,
		calls:          desc("calls_total", "Number of driver calls.", "driver"),
		outcomes:       desc("outcomes_total", "Number of conflicts or cuts found.", "driver"),
		solves:         desc("solves_total", "Number of variables eliminated by unit coefficient."),
		implied:        desc("implied_total", "Number of unit coefficients found by implied gcd search."),
		decompositions: desc("decompositions_total", "Number of equations decomposed."),
		deferrals:      desc("deferrals_total", "Number of equations deferred for exceeding the coefficient bound."),
		seconds:        desc("driver_seconds_total", "Time spent in each driver.", "driver"),
	}
}

// Describe implementation for prometheus.Collector interface.
func (p *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- p.calls
	ch <- p.outcomes
	ch <- p.solves
	ch <- p.implied
	ch <- p.decompositions
	ch <- p.deferrals
	ch <- p.seconds
}

// Collect implementation for prometheus.Collector interface.
func (p *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := p.source.Statistics()
	counter := func(desc *prometheus.Desc, value float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, value, labels...)
	}
	//
	counter(p.calls, float64(stats.ConflictCalls), "conflict")
	counter(p.calls, float64(stats.CutCalls), "cut")
	counter(p.outcomes, float64(stats.Conflicts), "conflict")
	counter(p.outcomes, float64(stats.Cuts), "cut")
	counter(p.solves, float64(stats.Solves))
	counter(p.implied, float64(stats.Implied))
	counter(p.decompositions, float64(stats.Decompositions))
	counter(p.deferrals, float64(stats.Deferrals))
	counter(p.seconds, stats.ConflictTime.Seconds(), "conflict")
	counter(p.seconds, stats.CutTime.Seconds(), "cut")
}

// WriteText writes a set of metric families in the prometheus text exposition
// format.
func WriteText(w io.Writer, families []*dto.MetricFamily) error {
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}
	//
	return nil
}

// Dump gathers every metric from a given registry and writes them in the
// prometheus text exposition format.
func Dump(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	//
	if err != nil {
		return err
	}
	//
	return WriteText(w, families)
}
