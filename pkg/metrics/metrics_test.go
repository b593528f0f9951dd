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
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/consensys/go-diophant/pkg/dioph"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func Test_Metrics_01(t *testing.T) {
	registry := gather(t, dioph.Statistics{ConflictCalls: 3, Conflicts: 1, Decompositions: 2})
	families, err := registry.Gather()
	//
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	//
	checkCounter(t, families, "diophant_solver_calls_total", "conflict", 3)
	checkCounter(t, families, "diophant_solver_calls_total", "cut", 0)
	checkCounter(t, families, "diophant_solver_outcomes_total", "conflict", 1)
	checkCounter(t, families, "diophant_solver_decompositions_total", "", 2)
}

func Test_Metrics_02(t *testing.T) {
	var buf bytes.Buffer
	//
	registry := gather(t, dioph.Statistics{Solves: 7, CutTime: 2 * time.Second})
	//
	if err := Dump(&buf, registry); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	//
	text := buf.String()
	//
	for _, line := range []string{
		`diophant_solver_solves_total{script="test"} 7`,
		`diophant_solver_driver_seconds_total{driver="cut",script="test"} 2`,
		"# TYPE diophant_solver_deferrals_total counter",
	} {
		if !strings.Contains(text, line) {
			t.Errorf("missing %q in:\n%s", line, text)
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

type fixedSource dioph.Statistics

func (p fixedSource) Statistics() dioph.Statistics {
	return dioph.Statistics(p)
}

func gather(t *testing.T, stats dioph.Statistics) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	//
	if err := registry.Register(NewCollector(fixedSource(stats), prometheus.Labels{"script": "test"})); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	//
	return registry
}

func checkCounter(t *testing.T, families []*dto.MetricFamily, name string, driver string, expected float64) {
	t.Helper()
	//
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		//
		for _, metric := range family.GetMetric() {
			if label(metric, "driver") == driver {
				if actual := metric.GetCounter().GetValue(); actual != expected {
					t.Errorf("expected %s=%v, got %v", name, expected, actual)
				}
				//
				return
			}
		}
	}
	//
	t.Errorf("missing metric %s{driver=%q}", name, driver)
}

func label(metric *dto.Metric, name string) string {
	for _, pair := range metric.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}
	//
	return ""
}
