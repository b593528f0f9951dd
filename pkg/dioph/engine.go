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
	"fmt"
	"math/big"

	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/math"
	"github.com/consensys/go-diophant/pkg/util/poly"
	log "github.com/sirupsen/logrus"
)

// processEquations runs the reduction loop, returning the position of a
// conflict (if one exists).  Previously deferred equations are re-offered
// first, followed by any inputs asserted since the last call.  The loop
// repeatedly selects the queued equation with the smallest coefficient and
// eliminates that coefficient's variable, either directly (for a unit
// coefficient), via an implied unit coefficient or by decomposition.  When
// none of these apply, the remaining queue is deferred.
func (p *Solver) processEquations(decompose bool) util.Option[uint] {
	if p.conflict.Get().HasValue() {
		return p.conflict.Get()
	}
	// Working queue does not survive the call
	defer func() {
		p.queue = nil
		p.parkedAt = util.None[uint]()
	}()
	//
	bound := p.coefficientBound()
	//
	if p.isSettled(bound, decompose) {
		// Pending deferrals are unchanged since last parked
		p.parkedAt = util.Some(p.subs.Len())
	} else if !p.enqueueDeferred(bound) {
		return p.conflict.Get()
	}
	//
	if !p.enqueueInputs(bound) {
		return p.conflict.Get()
	}
	//
	for len(p.queue) > 0 {
		var (
			sub uint
			ok  = true
		)
		//
		p.selectMinimum()
		//
		front := p.queue[0]
		term, _ := p.trail.Get(front).Equation.Linear().AbsMinimum()
		//
		if math.IsUnit(term.Coefficient()) {
			p.queue = p.queue[1:]
			sub = p.solveFor(front, term.Variable())
		} else if position, variable, found := p.impliedGcdOfOne(bound); found {
			sub = p.solveFor(position, variable)
		} else if decompose {
			p.queue = p.queue[1:]
			sub, ok = p.decompose(front, term.Variable(), bound)
		} else {
			p.park(p.queue...)
			p.queue = nil
			//
			break
		}
		//
		if !ok || !p.propagate(sub, bound) {
			return p.conflict.Get()
		}
	}
	//
	p.settle(bound, decompose)
	//
	return p.conflict.Get()
}

// isSettled determines whether re-offering the pending deferred equations
// could achieve anything.  This is not the case when neither the bound nor the
// substitutions have changed since they were parked, unless decomposition has
// since been enabled.
func (p *Solver) isSettled(bound uint, decompose bool) bool {
	if settled := p.settled.Get(); settled.HasValue() {
		s := settled.Unwrap()
		//
		return s.bound == bound && s.substitutions == p.subs.Len() && (s.decompose || !decompose)
	}
	//
	return false
}

// settle records the circumstances under which the pending deferred equations
// were parked.  Equations parked before a later substitution are stale, in
// which case nothing is recorded and they are re-offered on the next call.
func (p *Solver) settle(bound uint, decompose bool) {
	if p.parkedAt.IsEmpty() || p.parkedAt.Unwrap() == p.subs.Len() {
		p.settled.Set(util.Some(deferral{bound, p.subs.Len(), decompose}))
	} else {
		p.settled.Set(util.None[deferral]())
	}
}

// enqueueDeferred re-offers every equation deferred since the last call.
// Substitutions derived since it was deferred are applied first.
func (p *Solver) enqueueDeferred(bound uint) bool {
	end := p.deferred.Len()
	//
	for i := p.nextDeferred.Get(); i < end; i++ {
		// Entries deferred again are re-offered on the next call
		p.nextDeferred.Set(i + 1)
		//
		if !p.admit(p.applyAllSubstitutions(p.deferred.Get(i)), bound) {
			return false
		}
	}
	//
	return true
}

// enqueueInputs offers every input asserted since the last call, in order.
func (p *Solver) enqueueInputs(bound uint) bool {
	for i := p.nextInput.Get(); i < p.inputs.Len(); i++ {
		p.nextInput.Set(i + 1)
		//
		if !p.admit(p.applyAllSubstitutions(p.inputs.Get(i).position), bound) {
			return false
		}
	}
	//
	return true
}

// admit offers the equation at a given position to the working queue.
// Trivially satisfied equations are dropped, whilst trivially unsatisfied
// equations (or those failing the gcd test) raise a conflict.  Otherwise, the
// equation is reduced by its gcd and then either queued or, if its
// coefficients exceed the bound, deferred.  This returns false if a conflict
// was raised.
func (p *Solver) admit(position uint, bound uint) bool {
	var (
		equation = p.trail.Get(position).Equation
		ok       bool
	)
	//
	switch {
	case equation.IsZero():
		return true
	case equation.IsConstant():
		p.raiseConflict(position)
		return false
	}
	//
	if position, ok = p.reduceByGCD(position); !ok {
		return false
	} else if p.exceedsBound(position, bound) {
		p.park(position)
	} else {
		p.queue = append(p.queue, position)
	}
	//
	return true
}

func (p *Solver) park(positions ...uint) {
	if p.parkedAt.IsEmpty() && len(positions) > 0 {
		p.parkedAt = util.Some(p.subs.Len())
	}
	//
	for _, position := range positions {
		p.deferred.Append(position)
		p.stats.Deferrals++
		//
		if log.IsLevelEnabled(log.DebugLevel) {
			log.Debugf("deferred #%d: %s = 0", position, p.trail.Get(position).Equation.String(symbolName))
		}
	}
}

// selectMinimum moves to the front of the queue the first equation whose
// smallest coefficient (in absolute value) is strictly smaller than that of
// every equation before it.  The remaining queue order is otherwise preserved,
// except for the equation it swaps places with.
func (p *Solver) selectMinimum() {
	var (
		best    int
		minimum *big.Int
	)
	//
	for i, position := range p.queue {
		term, _ := p.trail.Get(position).Equation.Linear().AbsMinimum()
		coefficient := term.Coefficient()
		//
		if minimum == nil || coefficient.CmpAbs(minimum) < 0 {
			best, minimum = i, coefficient
		}
		// Cannot do better than a unit
		if math.IsUnit(minimum) {
			break
		}
	}
	//
	p.queue[0], p.queue[best] = p.queue[best], p.queue[0]
}

// solveFor records a substitution eliminating a given variable, using the
// equation at a given position.  That variable must have a unit coefficient,
// which is normalised to -1.
func (p *Solver) solveFor(position uint, variable symbol.Symbol) uint {
	if _, ok := p.eliminated[variable]; ok {
		panic(fmt.Sprintf("variable %s already eliminated", variable.String()))
	}
	//
	coefficient := p.trail.Get(position).Equation.Coefficient(variable)
	//
	if !math.IsUnit(coefficient) {
		panic(fmt.Sprintf("cannot solve for %s with coefficient %s", variable.String(), coefficient.String()))
	} else if coefficient.Sign() > 0 {
		position = p.scale(position, minusOne)
	}
	//
	index := p.subs.Append(Substitution{variable, position, util.None[symbol.Symbol]()})
	p.eliminated[variable] = index
	p.stats.Solves++
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("solved %s using #%d: %s = 0", variable.String(), position,
			p.trail.Get(position).Equation.String(symbolName))
	}
	//
	return index
}

// decompose eliminates a given variable from the equation at a given position
// by introducing a fresh variable.  Let a*v + e = 0 be the equation where a > 1
// (after negation if necessary), and let q and r be the quotient and remainder
// of the equation divided by a.  Then v is eliminated using the definition
// f - q = 0 for a fresh variable f, leaving the equation r + a*f = 0.  Since
// every coefficient of r lies in [0,a), repeated decomposition shrinks the
// coefficients involved.  The remaining equation keeps the original proof,
// which is sound modulo the definition of f.  This returns false if admitting
// the remaining equation raised a conflict.
func (p *Solver) decompose(position uint, variable symbol.Symbol, bound uint) (uint, bool) {
	var zero big.Int
	//
	if _, ok := p.eliminated[variable]; ok {
		panic(fmt.Sprintf("variable %s already eliminated", variable.String()))
	}
	//
	a := p.trail.Get(position).Equation.Coefficient(variable)
	//
	if math.IsUnit(a) {
		panic(fmt.Sprintf("cannot decompose unit coefficient of %s", variable.String()))
	} else if a.Sign() < 0 {
		position = p.scale(position, minusOne)
		a.Neg(a)
	}
	//
	var (
		c       = p.trail.Get(position)
		q, r    = c.Equation.DivRem(a)
		fresh   = p.allocator.NewIntegerSymbol()
		freshEq = poly.NewAffine(poly.Var(fresh), &zero)
	)
	// f - q = 0
	definition := p.trail.Append(Constraint{freshEq.Sub(q), emptyProof()})
	// r + a*f = 0
	remainder := p.trail.Append(Constraint{r.Add(freshEq.Scale(a)), c.Proof})
	//
	index := p.subs.Append(Substitution{variable, definition, util.Some(fresh)})
	p.eliminated[variable] = index
	p.lemmas.Append(definition)
	p.stats.Decompositions++
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("decomposed #%d on %s: %s = 0 and %s = 0", position, variable.String(),
			p.trail.Get(definition).Equation.String(symbolName), p.trail.Get(remainder).Equation.String(symbolName))
	}
	//
	return index, p.admit(remainder, bound)
}

// propagate applies a given substitution to every equation in the working
// queue.  Equations which change are re-admitted, meaning they can be dropped,
// raise a conflict or be deferred.  This returns false if a conflict was
// raised.
func (p *Solver) propagate(index uint, bound uint) bool {
	var (
		sub   = p.subs.Get(index)
		queue = p.queue
	)
	//
	p.queue = make([]uint, 0, len(queue))
	//
	for _, position := range queue {
		if next := p.applySubstitution(position, sub); next == position {
			p.queue = append(p.queue, position)
		} else if !p.admit(next, bound) {
			return false
		}
	}
	//
	return true
}

func symbolName(s symbol.Symbol) string {
	return s.String()
}
