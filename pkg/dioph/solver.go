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
package dioph

import (
	"github.com/consensys/go-diophant/pkg/fact"
	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/collection/scoped"
	log "github.com/sirupsen/logrus"
)

// Solver is an incremental solver for systems of linear integer equalities.
// Equalities are asserted one at a time, and each driver call processes those
// asserted since the last call.  Every piece of state (except for statistics)
// is scoped by the checkpoint context the solver was constructed with, such
// that rolling back a checkpoint undoes everything asserted or derived since.
// Driver calls must not overlap with rollbacks.
type Solver struct {
	allocator symbol.Allocator
	bound     BoundParameter
	config    Config
	// Derived (and asserted) constraints
	trail *scoped.Vector[Constraint]
	// Asserted equalities
	inputs *scoped.Vector[input]
	// Eliminated variables
	subs *scoped.Vector[Substitution]
	// Trail positions whose coefficients exceeded the bound
	deferred *scoped.Vector[uint]
	// Definitions introduced by decomposition
	lemmas *scoped.Vector[uint]
	// Cursors
	nextInput    *scoped.Value[uint]
	nextDeferred *scoped.Value[uint]
	nextSolution *scoped.Value[uint]
	nextLemma    *scoped.Value[uint]
	// Largest coefficient bit length of any input
	maxInputBitLen *scoped.Value[uint]
	// Trail position of the conflict (if found)
	conflict *scoped.Value[util.Option[uint]]
	// Circumstances under which pending deferrals were parked
	settled *scoped.Value[util.Option[deferral]]
	// Maps proof symbols to their inputs
	proofs map[symbol.Symbol]uint
	// Maps eliminated variables to their substitutions
	eliminated map[symbol.Symbol]uint
	// Working queue for the current driver call
	queue []uint
	// Number of substitutions when the current driver call first deferred
	parkedAt util.Option[uint]
	stats    Statistics
}

// deferral identifies the bound, number of substitutions and decomposition
// mode under which the pending deferred equations were last parked.
type deferral struct {
	bound         uint
	substitutions uint
	decompose     bool
}

// NewSolver constructs an empty solver scoped by a given context.  The
// allocator is used to mint both proof symbols and the fresh variables
// introduced by decomposition, and the bound parameter controls how far
// coefficients may grow.
func NewSolver(ctx *scoped.Context, allocator symbol.Allocator, bound BoundParameter, config Config) *Solver {
	p := &Solver{
		allocator:      allocator,
		bound:          bound,
		config:         config,
		trail:          scoped.NewVector[Constraint](ctx),
		inputs:         scoped.NewVector[input](ctx),
		subs:           scoped.NewVector[Substitution](ctx),
		deferred:       scoped.NewVector[uint](ctx),
		lemmas:         scoped.NewVector[uint](ctx),
		nextInput:      scoped.NewValue[uint](ctx, 0),
		nextDeferred:   scoped.NewValue[uint](ctx, 0),
		nextSolution:   scoped.NewValue[uint](ctx, 0),
		nextLemma:      scoped.NewValue[uint](ctx, 0),
		maxInputBitLen: scoped.NewValue[uint](ctx, 0),
		conflict:       scoped.NewValue(ctx, util.None[uint]()),
		settled:        scoped.NewValue(ctx, util.None[deferral]()),
		proofs:         make(map[symbol.Symbol]uint),
		eliminated:     make(map[symbol.Symbol]uint),
	}
	// Keep side tables consistent with rollback
	p.inputs.OnTruncate(func(_ uint, item input) {
		delete(p.proofs, item.proof)
	})
	p.subs.OnTruncate(func(_ uint, item Substitution) {
		delete(p.eliminated, item.Variable)
	})
	//
	return p
}

// PushInputConstraint asserts a given equality, justified by a given fact.
// The justification is never interpreted, but is returned as part of any
// conflict explanation the equality contributes to.
func (p *Solver) PushInputConstraint(equation Equation, justification fact.Fact) {
	if justification == nil {
		panic("missing justification for input constraint")
	}
	//
	proof := p.allocator.NewIntegerSymbol()
	position := p.trail.Append(Constraint{equation, inputProof(proof)})
	index := p.inputs.Append(input{justification, position, proof})
	p.proofs[proof] = index
	//
	if n := equation.MaxBitLen(); n > p.maxInputBitLen.Get() {
		p.maxInputBitLen.Set(n)
	}
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("input %s at #%d: %s = 0", justification.Label(), position, equation.String(symbolName))
	}
}

// PushFact normalises a given fact into an equality, and then asserts it
// justified by that fact.  An error is returned for facts which do not assert
// an equality.
func (p *Solver) PushFact(f fact.Fact) error {
	equation, err := fact.Normalise(f)
	//
	if err == nil {
		p.PushInputConstraint(equation, f)
	}
	//
	return err
}

// Statistics returns the statistics accumulated by this solver.
func (p *Solver) Statistics() Statistics {
	return p.stats
}

// Size returns a snapshot of the sizes of the containers owned by this solver.
func (p *Solver) Size() Size {
	return Size{p.trail.Len(), p.inputs.Len(), p.subs.Len(), p.deferred.Len()}
}

// Constraint returns the constraint at a given trail position.
func (p *Solver) Constraint(position uint) Constraint {
	return p.trail.Get(position)
}

// coefficientBound returns the largest bit length permitted for any
// coefficient of an equation being processed.
func (p *Solver) coefficientBound() uint {
	return p.maxInputBitLen.Get() + p.config.GrowthAllowance + p.bound.Depth()
}

// exceedsBound checks whether the equation at a given position must be
// deferred.  Equations with fewer than two terms never exceed the bound.
func (p *Solver) exceedsBound(position uint, bound uint) bool {
	equation := p.trail.Get(position).Equation
	//
	return equation.Len() >= 2 && equation.MaxBitLen() > bound
}
