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

// FreshPrefix is the prefix given to the names of allocated symbols.  It
// cannot begin a name in a problem script, hence fresh names never collide
// with user-supplied ones.
const FreshPrefix = "%"

// Table interns symbol names and allocates fresh symbols.
type Table struct {
	names []string
	index map[string]Symbol
}

// NewTable constructs an empty symbol table.
func NewTable() *Table {
	return &Table{nil, make(map[string]Symbol)}
}

// Intern returns the symbol with a given name, creating it if necessary.
func (p *Table) Intern(name string) Symbol {
	if s, ok := p.index[name]; ok {
		return s
	}
	//
	return p.add(name)
}

// Lookup returns the symbol with a given name, if it exists.
func (p *Table) Lookup(name string) (Symbol, bool) {
	s, ok := p.index[name]
	//
	return s, ok
}

// NewIntegerSymbol allocates a fresh symbol with a generated name.
func (p *Table) NewIntegerSymbol() Symbol {
	return p.add(fmt.Sprintf("%s%d", FreshPrefix, len(p.names)))
}

// Name returns the name of a given symbol.
func (p *Table) Name(s Symbol) string {
	if s.index >= uint(len(p.names)) {
		panic(fmt.Sprintf("unknown symbol %s", s.String()))
	}
	//
	return p.names[s.index]
}

// Len returns the number of symbols in this table.
func (p *Table) Len() uint {
	return uint(len(p.names))
}

func (p *Table) add(name string) Symbol {
	s := Symbol{uint(len(p.names))}
	p.names = append(p.names, name)
	p.index[name] = s
	//
	return s
}
