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

	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

var (
	one      = big.NewInt(1)
	minusOne = big.NewInt(-1)
)

// scale divides the constraint at a given position through by a divisor,
// which must exactly divide every coefficient and the constant.  The result is
// placed at a new trail position.
func (p *Solver) scale(position uint, divisor *big.Int) uint {
	c := p.trail.Get(position)
	//
	return p.trail.Append(Constraint{c.Equation.Div(divisor), c.Proof.div(divisor)})
}

// combine places q*ci + r*cj onto the trail, where ci and cj are the
// constraints at positions i and j.
func (p *Solver) combine(i uint, q *big.Int, j uint, r *big.Int) uint {
	ci, cj := p.trail.Get(i), p.trail.Get(j)
	//
	return p.trail.Append(Constraint{
		ci.Equation.Combine(q, cj.Equation, r),
		ci.Proof.combine(q, cj.Proof, r),
	})
}

// reduceByGCD divides the equation at a given position by the gcd of its
// coefficients.  If the gcd does not divide the constant, then the equation
// has no integer solutions and a conflict is raised at that position instead.
func (p *Solver) reduceByGCD(position uint) (uint, bool) {
	var (
		equation = p.trail.Get(position).Equation
		g        = equation.Gcd()
	)
	//
	if !math.Divides(g, equation.Constant()) {
		p.raiseConflict(position)
		return position, false
	} else if g.Cmp(one) > 0 {
		return p.scale(position, g), true
	}
	//
	return position, true
}

// applySubstitution eliminates the substituted variable from the equation at
// a given position, returning the position of the result.  The position is
// unchanged when the variable does not occur.
func (p *Solver) applySubstitution(position uint, sub Substitution) uint {
	c := p.trail.Get(position).Equation.Coefficient(sub.Variable)
	//
	if c.Sign() == 0 {
		return position
	}
	// Defining equation has coefficient -1 on the variable
	return p.combine(position, one, sub.Position, c)
}

// applyAllSubstitutions eliminates every variable solved so far from the
// equation at a given position, in the order they were solved.
func (p *Solver) applyAllSubstitutions(position uint) uint {
	for i := uint(0); i < p.subs.Len(); i++ {
		position = p.applySubstitution(position, p.subs.Get(i))
	}
	//
	return position
}

func (p *Solver) raiseConflict(position uint) {
	p.conflict.Set(util.Some(position))
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("conflict at #%d: %s = 0", position, p.trail.Get(position).Equation.String(symbolName))
	}
}
