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
package stack

import "testing"

func Test_Stack_01(t *testing.T) {
	s := NewStack[uint]()
	//
	if !s.IsEmpty() {
		t.Errorf("new stack not empty")
	}
	//
	s.Push(1)
	s.Push(2)
	//
	if s.Len() != 2 || s.Peek(0) != 2 || s.Peek(1) != 1 {
		t.Errorf("unexpected stack contents")
	}
	//
	if s.Pop() != 2 || s.Pop() != 1 || !s.IsEmpty() {
		t.Errorf("unexpected pop order")
	}
}

func Test_Stack_02(t *testing.T) {
	s := NewStack[uint]()
	//
	for i := range uint(5) {
		s.Push(i)
	}
	// Pop everything above 1
	last, ok := s.PopWhile(func(n uint) bool { return n > 1 })
	//
	if !ok || last != 2 || s.Len() != 2 {
		t.Errorf("unexpected PopWhile result: %d, %t (len %d)", last, ok, s.Len())
	}
	// Predicate false at top
	if _, ok := s.PopWhile(func(n uint) bool { return n > 1 }); ok {
		t.Errorf("expected nothing to be popped")
	}
}
