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

	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

// impliedGcdOfOne searches the working queue for a variable whose column of
// coefficients has gcd 1, even though no single coefficient is a unit.  If
// found, equations mentioning that variable are combined (using Bezout
// coefficients) into a new equation where its coefficient is exactly 1.  This
// returns the position of that equation and the variable, or false if no such
// variable exists or the combined equation exceeds a given bound.  Nothing is
// placed on the trail when no such variable exists.
func (p *Solver) impliedGcdOfOne(bound uint) (uint, symbol.Symbol, bool) {
	variable, ok := p.findUnitColumn()
	//
	if !ok {
		return 0, variable, false
	}
	//
	var (
		representative uint
		coefficient    *big.Int
	)
	// Maintain a representative whose coefficient is the running column gcd.
	for _, position := range p.queue {
		b := p.trail.Get(position).Equation.Coefficient(variable)
		//
		if b.Sign() == 0 {
			continue
		} else if coefficient == nil {
			representative, coefficient = position, b
			continue
		}
		//
		if g, s, t := math.ExtendedGcd(coefficient, b); g.CmpAbs(coefficient) < 0 {
			representative = p.combine(representative, s, position, t)
			coefficient = g
		}
		//
		if math.IsUnit(coefficient) {
			break
		}
	}
	// Bezout coefficients can inflate the other coefficients
	if p.exceedsBound(representative, bound) {
		if log.IsLevelEnabled(log.DebugLevel) {
			log.Debugf("implied unit coefficient for %s exceeds bound at #%d", variable.String(), representative)
		}
		//
		return 0, variable, false
	}
	//
	p.stats.Implied++
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("implied unit coefficient for %s at #%d: %s = 0", variable.String(), representative,
			p.trail.Get(representative).Equation.String(symbolName))
	}
	//
	return representative, variable, true
}

// findUnitColumn identifies the first variable whose running column gcd,
// taken over the working queue in order, reaches 1.
func (p *Solver) findUnitColumn() (symbol.Symbol, bool) {
	var gcds = make(map[symbol.Symbol]*big.Int)
	//
	for _, position := range p.queue {
		equation := p.trail.Get(position).Equation
		//
		for i := uint(0); i < equation.Len(); i++ {
			term := equation.Term(i)
			coefficient := term.Coefficient()
			//
			if g, ok := gcds[term.Variable()]; !ok {
				gcds[term.Variable()] = coefficient.Abs(coefficient)
			} else if g = math.Gcd(g, coefficient); math.IsUnit(g) {
				return term.Variable(), true
			} else {
				gcds[term.Variable()] = g
			}
		}
	}
	//
	var empty symbol.Symbol
	//
	return empty, false
}
