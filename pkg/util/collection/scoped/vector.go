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

import (
	"slices"

	"github.com/consensys/go-diophant/pkg/util/collection/stack"
)

// Vector is an append-only arena whose length is scoped by a context.  When a
// checkpoint is rolled back, the vector is truncated to the length it had when
// that checkpoint was taken.  Elements are never modified once appended.
type Vector[T any] struct {
	ctx   *Context
	items []T
	// Lengths to restore, recorded lazily on the first append made under a
	// given level.
	saves *stack.Stack[lengthSave]
	// Optional finalizer invoked for each truncated element.
	finalizer func(uint, T)
}

type lengthSave struct {
	level  uint
	length uint
}

// NewVector constructs an empty vector scoped by a given context.
func NewVector[T any](ctx *Context) *Vector[T] {
	p := &Vector[T]{ctx: ctx, saves: stack.NewStack[lengthSave]()}
	ctx.register(p)
	//
	return p
}

// OnTruncate registers a finalizer which is invoked for every element removed
// by a rollback, visiting elements from last to first.  This is how side
// tables keyed on the contents of a vector are kept consistent with it.
func (p *Vector[T]) OnTruncate(finalizer func(index uint, item T)) {
	p.finalizer = finalizer
}

// Len returns the number of elements in this vector.
func (p *Vector[T]) Len() uint {
	return uint(len(p.items))
}

// Get returns the element at a given index.
func (p *Vector[T]) Get(index uint) T {
	return p.items[index]
}

// Append an element, returning its index.
func (p *Vector[T]) Append(item T) uint {
	var level = p.ctx.level
	// Record length at this level (if not already done)
	if level > 0 && (p.saves.IsEmpty() || p.saves.Peek(0).level < level) {
		p.saves.Push(lengthSave{level, uint(len(p.items))})
	}
	//
	p.items = append(p.items, item)
	//
	return uint(len(p.items) - 1)
}

// Items returns a copy of the elements in this vector.
func (p *Vector[T]) Items() []T {
	return slices.Clone(p.items)
}

func (p *Vector[T]) restore(level uint) {
	save, ok := p.saves.PopWhile(func(s lengthSave) bool { return s.level > level })
	//
	if ok {
		p.truncate(save.length)
	}
}

func (p *Vector[T]) truncate(length uint) {
	var empty T
	//
	for i := len(p.items) - 1; i >= int(length); i-- {
		if p.finalizer != nil {
			p.finalizer(uint(i), p.items[i])
		}
		// Release reference
		p.items[i] = empty
	}
	//
	p.items = p.items[:length]
}
