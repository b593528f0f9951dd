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

import "fmt"

// Symbol identifies an integer-valued variable.  Symbols are small handles
// into a Table, which holds their names.  The zero value is a valid symbol
// only for tables which have allocated at least one symbol.
type Symbol struct {
	index uint
}

// Index returns the position of this symbol within its table.
func (s Symbol) Index() uint {
	return s.index
}

// Cmp implementation for the Comparable interface.  Symbols are ordered by
// allocation.
func (s Symbol) Cmp(other Symbol) int {
	switch {
	case s.index < other.index:
		return -1
	case s.index > other.index:
		return 1
	default:
		return 0
	}
}

func (s Symbol) String() string {
	return fmt.Sprintf("#%d", s.index)
}

// Allocator provides fresh integer symbols.  Each call must return a symbol
// distinct from every symbol ever returned before (or used elsewhere), and
// allocation is never undone by backtracking.
type Allocator interface {
	NewIntegerSymbol() Symbol
}
