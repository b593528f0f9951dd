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
package script

import (
	"testing"

	"github.com/consensys/go-diophant/pkg/dioph"
	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util/source"
	"github.com/google/go-cmp/cmp"
)

func Test_Script_01(t *testing.T) {
	checkRun(t, dioph.DefaultConfig(), `
(assert e1 (= (- x y) 0))
(assert e2 (= (+ x y) 6))
(check sat)
(solutions)`, "sat", "solutions [x = y, y = 3]")
}

func Test_Script_02(t *testing.T) {
	checkRun(t, dioph.DefaultConfig(), `
(assert e1 (= x y))
(push)
(assert e2 (= (+ x y) 5))
(check unsat)
(pop)
(check sat)
(solutions)`, "unsat (and e1 e2)", "sat", "solutions [x = y]")
}

func Test_Script_03(t *testing.T) {
	checkRun(t, dioph.DefaultConfig(), `
; 3 <= x - y <= 3
(bounds b (- x y) 3 3)
(assert e1 (= (+ x y) 4))
(check unsat)`, "unsat (and b.lo b.hi e1)")
}

func Test_Script_04(t *testing.T) {
	checkRun(t, dioph.DefaultConfig(), `
(assert e1 (= (+ (* 3 x) (* 5 y)) 7))
(cut none)
(check sat)
(push)
(assert e2 (= (+ (* 2 x) (* 4 y)) 3))
(cut some)`, "no cut", "sat", "cut 2*x + 4*y - 3 = 0")
}

func Test_Script_05(t *testing.T) {
	checkRun(t, dioph.Config{GrowthAllowance: 0, Decompose: true}, `
(assert e1 (= x (* 7 y)))
(assert e2 (= (+ (* 7 x) z) 0))
(check sat)
(solutions)
(depth 3)
(check sat)
(solutions)`, "sat", "solutions [x = 7*y]", "sat", "solutions [z = -49*y]")
}

func Test_Script_06(t *testing.T) {
	checkInvalid(t, "(assert e1 (= x 1)) (check unsat)")
	checkInvalid(t, "(assert e1 (= (* 2 x) 1)) (check sat)")
	checkInvalid(t, "(assert e1 (= (* 2 x) 1)) (cut none)")
	checkInvalid(t, "(pop)")
	checkInvalid(t, "(depth 2) (depth 1)")
	checkInvalid(t, "(bounds b x 1 2) (check)")
}

func Test_Script_07(t *testing.T) {
	checkSyntaxError(t, "(frobnicate)")
	checkSyntaxError(t, "(assert e1 (< x 1))")
	checkSyntaxError(t, "(assert e1 (= (* x y) 1))")
	checkSyntaxError(t, "(assert e1 (= %1 1))")
	checkSyntaxError(t, "(assert (= x 1))")
	checkSyntaxError(t, "(bounds b x 1 z)")
	checkSyntaxError(t, "(check maybe)")
	checkSyntaxError(t, "(depth -1)")
	checkSyntaxError(t, "(push 1)")
	checkSyntaxError(t, "(check")
	checkSyntaxError(t, "x")
}

func Test_Script_08(t *testing.T) {
	env := symbol.NewTable()
	script := parse(t, env, "(assert e1 (= x 1))\n\n(check sat)\n")
	outcomes, errs := NewRunner(env, dioph.DefaultConfig(), 0, 1).Run(script)
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Error())
	} else if len(outcomes) != 1 || outcomes[0].Line != 3 {
		t.Errorf("unexpected outcomes %v", outcomes)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkRun(t *testing.T, config dioph.Config, input string, expected ...string) {
	t.Helper()
	//
	env := symbol.NewTable()
	script := parse(t, env, input)
	outcomes, errs := NewRunner(env, config, 0, 2).Run(script)
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Error())
	}
	//
	actual := make([]string, len(outcomes))
	//
	for i, o := range outcomes {
		actual[i] = o.String(env.Name)
	}
	//
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("unexpected outcomes (-want +got):\n%s", diff)
	}
}

func checkInvalid(t *testing.T, input string) {
	t.Helper()
	//
	env := symbol.NewTable()
	script := parse(t, env, input)
	//
	if _, errs := NewRunner(env, dioph.DefaultConfig(), 0, 0).Run(script); len(errs) == 0 {
		t.Errorf("expected failure running %s", input)
	}
}

func checkSyntaxError(t *testing.T, input string) {
	t.Helper()
	//
	srcfile := source.NewSourceFile("test", []byte(input))
	//
	if _, errs := Parse(srcfile, symbol.NewTable()); len(errs) == 0 {
		t.Errorf("expected syntax error for %s", input)
	}
}

func parse(t *testing.T, env *symbol.Table, input string) *Script {
	t.Helper()
	//
	srcfile := source.NewSourceFile("test", []byte(input))
	script, errs := Parse(srcfile, env)
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected syntax error: %s", errs[0].Error())
	}
	//
	return script
}
