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
package symbol

import (
	"strings"
	"testing"
)

func Test_Table_01(t *testing.T) {
	table := NewTable()
	x := table.Intern("x")
	y := table.Intern("y")
	//
	if x == y || table.Intern("x") != x {
		t.Errorf("interning is not stable")
	}
	//
	if table.Name(y) != "y" || x.Cmp(y) >= 0 || y.Cmp(x) <= 0 || x.Cmp(x) != 0 {
		t.Errorf("unexpected symbol ordering or naming")
	}
}

func Test_Table_02(t *testing.T) {
	var (
		table = NewTable()
		seen  = make(map[Symbol]bool)
	)
	//
	table.Intern("x")
	//
	for range 10 {
		s := table.NewIntegerSymbol()
		//
		if seen[s] {
			t.Fatalf("symbol %s allocated twice", s.String())
		} else if !strings.HasPrefix(table.Name(s), FreshPrefix) {
			t.Errorf("fresh symbol has unexpected name %s", table.Name(s))
		}
		//
		seen[s] = true
	}
	//
	if table.Len() != 11 {
		t.Errorf("expected 11 symbols, got %d", table.Len())
	}
}

func Test_Table_03(t *testing.T) {
	table := NewTable()
	//
	if _, ok := table.Lookup("x"); ok {
		t.Errorf("unexpected symbol found")
	}
	//
	x := table.Intern("x")
	//
	if s, ok := table.Lookup("x"); !ok || s != x {
		t.Errorf("expected symbol not found")
	}
}
