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

import "github.com/consensys/go-diophant/pkg/util/collection/stack"

// Value is a single cell whose contents are scoped by a context.  Rolling back
// a checkpoint restores the value held when that checkpoint was taken.
type Value[T any] struct {
	ctx   *Context
	value T
	saves *stack.Stack[valueSave[T]]
}

type valueSave[T any] struct {
	level uint
	value T
}

// NewValue constructs a scoped value with a given initial contents.
func NewValue[T any](ctx *Context, init T) *Value[T] {
	p := &Value[T]{ctx, init, stack.NewStack[valueSave[T]]()}
	ctx.register(p)
	//
	return p
}

// Get returns the current contents.
func (p *Value[T]) Get() T {
	return p.value
}

// Set the current contents.
func (p *Value[T]) Set(value T) {
	var level = p.ctx.level
	//
	if level > 0 && (p.saves.IsEmpty() || p.saves.Peek(0).level < level) {
		p.saves.Push(valueSave[T]{level, p.value})
	}
	//
	p.value = value
}

func (p *Value[T]) restore(level uint) {
	save, ok := p.saves.PopWhile(func(s valueSave[T]) bool { return s.level > level })
	//
	if ok {
		p.value = save.value
	}
}
