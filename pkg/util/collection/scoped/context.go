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
package scoped

import "fmt"

// Context manages a stack of checkpoints shared by a set of scoped containers.
// Every container constructed against a context reverts automatically to its
// exact prior state when a checkpoint taken before a mutation is rolled back.
// Containers never need to implement undo logic beyond this.
//
// Levels count the number of checkpoints currently held.  Level zero is the
// base level, which can never be rolled back.
type Context struct {
	level   uint
	members []member
}

// member is implemented by every scoped container registered with a context.
type member interface {
	// restore this container to the state it held when the context was last at
	// the given level.
	restore(level uint)
}

// NewContext constructs a context at the base level.
func NewContext() *Context {
	return &Context{}
}

// Level returns the number of checkpoints currently held.
func (p *Context) Level() uint {
	return p.level
}

// Push takes a new checkpoint, returning the level reached.
func (p *Context) Push() uint {
	p.level++
	//
	return p.level
}

// Pop rolls back the most recent checkpoint.
func (p *Context) Pop() {
	if p.level == 0 {
		panic("cannot pop base level of context")
	}
	//
	p.PopTo(p.level - 1)
}

// PopTo rolls back every checkpoint above a given level.
func (p *Context) PopTo(level uint) {
	if level > p.level {
		panic(fmt.Sprintf("cannot pop to level %d from level %d", level, p.level))
	}
	//
	for _, m := range p.members {
		m.restore(level)
	}
	//
	p.level = level
}

func (p *Context) register(m member) {
	p.members = append(p.members, m)
}
