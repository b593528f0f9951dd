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
package iter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_ArrayIterator_01(t *testing.T) {
	it := NewArrayIterator([]uint{1, 2, 3})
	//
	if it.Count() != 3 {
		t.Errorf("expected 3 items, got %d", it.Count())
	}
	//
	if it.Next() != 1 {
		t.Errorf("unexpected first item")
	}
	// Clone shares nothing with the original cursor
	clone := it.Clone()
	//
	if diff := cmp.Diff([]uint{2, 3}, it.Collect()); diff != "" {
		t.Errorf("unexpected items (-want +got):\n%s", diff)
	}
	//
	if it.HasNext() || clone.Count() != 2 {
		t.Errorf("collect should drain only the original iterator")
	}
}

func Test_ArrayIterator_02(t *testing.T) {
	it := NewArrayIterator([]uint{4, 5, 6})
	//
	if i, ok := it.Find(func(n uint) bool { return n == 5 }); !ok || i != 1 {
		t.Errorf("expected match at 1, got %d (%t)", i, ok)
	}
	//
	if _, ok := it.Find(func(n uint) bool { return n == 4 }); ok {
		t.Errorf("unexpected match")
	}
}
