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
package fact

import (
	"math/big"
	"testing"

	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util/poly"
	"github.com/google/go-cmp/cmp"
)

func Test_Fact_01(t *testing.T) {
	env := symbol.NewTable()
	x, y := env.Intern("x"), env.Intern("y")
	// x + y = 3
	eq := NewEquality("e1", sum(x, y), constant(3))
	//
	checkNormalise(t, env, eq, "x + y - 3")
}

func Test_Fact_02(t *testing.T) {
	env := symbol.NewTable()
	x, y := env.Intern("x"), env.Intern("y")
	// 3 <= x - y <= 3
	lower := NewLowerBound("l", diff(x, y), big.NewInt(3))
	upper := NewUpperBound("u", diff(x, y), big.NewInt(3))
	//
	checkNormalise(t, env, NewBoundPair(lower, upper), "x - y - 3")
}

func Test_Fact_03(t *testing.T) {
	env := symbol.NewTable()
	x, y := env.Intern("x"), env.Intern("y")
	lower := NewLowerBound("l", diff(x, y), big.NewInt(2))
	upper := NewUpperBound("u", diff(x, y), big.NewInt(3))
	other := NewUpperBound("v", sum(x, y), big.NewInt(2))
	//
	checkNotEquality(t, NewBoundPair(lower, upper))
	checkNotEquality(t, NewBoundPair(lower, other))
	checkNotEquality(t, lower)
	checkNotEquality(t, And(lower, upper))
	checkNotEquality(t, nil)
}

func Test_Fact_04(t *testing.T) {
	env := symbol.NewTable()
	x, y := env.Intern("x"), env.Intern("y")
	e1 := NewEquality("e1", sum(x, y), constant(3))
	e2 := NewEquality("e2", diff(x, y), constant(1))
	lower := NewLowerBound("l", diff(x, y), big.NewInt(3))
	upper := NewUpperBound("u", diff(x, y), big.NewInt(3))
	// Nested conjunctions and bound pairs are flattened
	conj := And(e1, And(e2, NewBoundPair(lower, upper)))
	//
	labels := make([]string, len(conj.Facts))
	for i, f := range conj.Facts {
		labels[i] = f.Label()
	}
	//
	if d := cmp.Diff([]string{"e1", "e2", "l", "u"}, labels); d != "" {
		t.Errorf("unexpected flattening (-want +got):\n%s", d)
	}
	//
	if conj.Label() != "(and e1 e2 l u)" {
		t.Errorf("unexpected label %s", conj.Label())
	}
}

func Test_Fact_05(t *testing.T) {
	env := symbol.NewTable()
	x, y := env.Intern("x"), env.Intern("y")
	lower := NewLowerBound("l", diff(x, y), big.NewInt(-1))
	upper := NewUpperBound("u", diff(x, y), big.NewInt(-1))
	actual := NewBoundPair(lower, upper).Lisp(env.Name).String(false)
	//
	if expected := "(and (>= (+ x (* -1 y)) -1) (<= (+ x (* -1 y)) -1))"; actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkNormalise(t *testing.T, env *symbol.Table, f Fact, expected string) {
	t.Helper()
	//
	eq, err := Normalise(f)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	} else if actual := eq.String(env.Name); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

func checkNotEquality(t *testing.T, f Fact) {
	t.Helper()
	//
	if _, err := Normalise(f); err == nil {
		t.Errorf("expected error normalising %v", f)
	}
}

func constant(c int64) poly.Affine[symbol.Symbol] {
	return poly.Constant[symbol.Symbol](big.NewInt(c))
}

func sum(x, y symbol.Symbol) poly.Affine[symbol.Symbol] {
	return poly.NewAffine(poly.Var(x).Add(poly.Var(y)), big.NewInt(0))
}

func diff(x, y symbol.Symbol) poly.Affine[symbol.Symbol] {
	return poly.NewAffine(poly.Var(x).Sub(poly.Var(y)), big.NewInt(0))
}
