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
	"math/big"

	"github.com/consensys/go-diophant/pkg/fact"
	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/collection/iter"
	"github.com/consensys/go-diophant/pkg/util/poly"
	log "github.com/sirupsen/logrus"
)

// SolveForConflict processes every equality asserted so far, looking for a
// subset which has no integer solution.  If one is found, this returns the
// conjunction of the justifications of those equalities.  Once a conflict is
// found, every subsequent driver call returns it again until it is rolled
// back.
func (p *Solver) SolveForConflict() util.Option[fact.Fact] {
	var (
		stats    = util.NewPerfStats()
		conflict = p.processEquations(p.config.Decompose)
	)
	//
	p.stats.ConflictCalls++
	p.stats.ConflictTime += stats.Elapsed()
	stats.Log("Solving for conflict")
	//
	if conflict.IsEmpty() {
		return util.None[fact.Fact]()
	}
	//
	p.stats.Conflicts++
	//
	return util.Some[fact.Fact](p.explain(conflict.Unwrap()))
}

// SolveForCut processes every equality asserted so far without decomposition,
// looking for an equality which has no integer solution.  If one is found,
// this returns that equality (expressed only over asserted variables), which
// is implied by the asserted equalities over the rationals.  Equations which
// would require decomposition are deferred until the next call.
func (p *Solver) SolveForCut() util.Option[Equation] {
	var (
		stats    = util.NewPerfStats()
		conflict = p.processEquations(false)
	)
	//
	p.stats.CutCalls++
	p.stats.CutTime += stats.Elapsed()
	stats.Log("Solving for cut")
	//
	if conflict.IsEmpty() {
		return util.None[Equation]()
	}
	//
	p.stats.Cuts++
	//
	return util.Some(p.purify(conflict.Unwrap()))
}

// DrainSubstitutions returns the solutions for every variable eliminated since
// this was last called.
func (p *Solver) DrainSubstitutions() iter.Iterator[Solution] {
	from := p.nextSolution.Get()
	p.nextSolution.Set(p.subs.Len())
	//
	return p.Substitutions(from)
}

// Substitutions returns the solutions for every variable eliminated after a
// given number of eliminations.  The resulting iterator is unaffected by
// subsequent changes to the solver.
func (p *Solver) Substitutions(from uint) iter.Iterator[Solution] {
	var solutions []Solution
	//
	for i := from; i < p.subs.Len(); i++ {
		sub := p.subs.Get(i)
		// -v + e = 0 means v = e
		definition := p.trail.Get(sub.Position).Equation
		value := definition.Add(poly.NewAffine(poly.Var(sub.Variable), big.NewInt(0)))
		solutions = append(solutions, Solution{sub.Variable, value})
	}
	//
	return iter.NewArrayIterator(solutions)
}

// HasDecompositionLemmas checks whether any decomposition has introduced a
// fresh variable whose definition has not yet been returned.
func (p *Solver) HasDecompositionLemmas() bool {
	return p.nextLemma.Get() < p.lemmas.Len()
}

// NextDecompositionLemma returns the next definition "f - q = 0" introduced by
// decomposition for some fresh variable f.  Such definitions hold in every
// integer solution, once extended to the fresh variables.
func (p *Solver) NextDecompositionLemma() Equation {
	next := p.nextLemma.Get()
	p.nextLemma.Set(next + 1)
	//
	return p.trail.Get(p.lemmas.Get(next)).Equation
}

// explain reconstructs the justification for the equation at a given position,
// by conjoining the justifications of every input it was derived from.
func (p *Solver) explain(position uint) *fact.Conjunction {
	var (
		combination = p.trail.Get(position).Proof.Combination()
		facts       = make([]fact.Fact, combination.Len())
	)
	//
	for i := uint(0); i < combination.Len(); i++ {
		index := p.proofs[combination.Term(i).Variable()]
		facts[i] = p.inputs.Get(index).justification
	}
	//
	conjunction := fact.And(facts...)
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("conflict explained by %s", conjunction.Label())
	}
	//
	return conjunction
}

// purify eliminates every fresh variable from the equation at a given
// position, by substituting back their definitions in reverse order.  Since
// each definition only mentions variables which existed before its fresh
// variable was introduced, the result mentions no fresh variables.  An
// equation without integer solutions remains so after purification.
func (p *Solver) purify(position uint) Equation {
	var equation = p.trail.Get(position).Equation
	//
	for i := p.subs.Len(); i > 0; i-- {
		sub := p.subs.Get(i - 1)
		//
		if sub.Fresh.IsEmpty() {
			continue
		} else if a := equation.Coefficient(sub.Fresh.Unwrap()); a.Sign() != 0 {
			// Definition has coefficient +1 on the fresh variable
			definition := p.trail.Get(sub.Position).Equation
			equation = equation.Combine(one, definition, a.Neg(a))
		}
	}
	//
	return equation
}
