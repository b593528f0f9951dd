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
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-diophant/pkg/fact"
	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/math"
	"github.com/consensys/go-diophant/pkg/util/poly"
)

// Contribution identifies the multiple of an input equation used to derive a
// conflict.
type Contribution struct {
	Coefficient   *big.Int
	Equation      Equation
	Justification fact.Fact
}

// Certificate is a self-contained witness that a set of inputs has no integer
// solution.  Specifically, Denominator * Conflict equals the sum of the
// contributions and Conflict has no integer solution.
type Certificate struct {
	Conflict    Equation
	Denominator *big.Int
	Inputs      []Contribution
}

// Certificate returns a certificate for the conflict found by the solver, if
// there is one.
func (p *Solver) Certificate() util.Option[*Certificate] {
	var conflict = p.conflict.Get()
	//
	if conflict.IsEmpty() {
		return util.None[*Certificate]()
	}
	//
	var (
		proof       = p.trail.Get(conflict.Unwrap()).Proof
		combination = proof.Combination()
		inputs      = make([]Contribution, combination.Len())
	)
	//
	for i := uint(0); i < combination.Len(); i++ {
		term := combination.Term(i)
		in := p.inputs.Get(p.proofs[term.Variable()])
		eq := p.trail.Get(in.position).Equation
		inputs[i] = Contribution{term.Coefficient(), eq, in.justification}
	}
	//
	return util.Some(&Certificate{p.purify(conflict.Unwrap()), proof.Denominator(), inputs})
}

// Combination returns the sum of the contributions.
func (p *Certificate) Combination() Equation {
	var sum Equation
	//
	for _, c := range p.Inputs {
		sum = sum.Combine(one, c.Equation, c.Coefficient)
	}
	//
	return sum
}

// Verify checks this certificate exactly.
func (p *Certificate) Verify() error {
	if p.Denominator.Sign() <= 0 {
		return fmt.Errorf("invalid denominator %s", p.Denominator.String())
	} else if lhs, rhs := p.Conflict.Scale(p.Denominator), p.Combination(); !lhs.Equal(rhs) {
		return fmt.Errorf("conflict %s does not match combination %s",
			lhs.String(symbolName), rhs.String(symbolName))
	} else if !Infeasible(p.Conflict) {
		return fmt.Errorf("conflict %s = 0 has integer solutions", p.Conflict.String(symbolName))
	}
	//
	return nil
}

// Infeasible checks whether a single equation has no integer solutions.  This
// holds when its coefficients are all zero but its constant is not, or more
// generally when the gcd of its coefficients does not divide its constant.
func Infeasible(equation Equation) bool {
	return !math.Divides(equation.Gcd(), equation.Constant())
}

// Branch splits the integer line around a cut.  Let p + c = 0 be the cut, and g
// the gcd of p's coefficients, which does not divide c.  Then p/g = -c/g has no
// integer solution, so every integer solution satisfies one of p/g <= k or
// p/g >= k+1 where k is the floor of -c/g.  This returns those two bounds,
// respectively.  An error is returned for a cut which is not infeasible or
// which has no variables.
func Branch(name string, cut Equation) (*fact.Bound, *fact.Bound, error) {
	var (
		g    = cut.Gcd()
		negc big.Int
		next big.Int
	)
	//
	if cut.IsConstant() {
		return nil, nil, errors.New("cannot branch on constant equation")
	} else if !Infeasible(cut) {
		return nil, nil, fmt.Errorf("cannot branch on %s = 0", cut.String(symbolName))
	}
	//
	expr := poly.NewAffine(cut.Linear().Div(g), big.NewInt(0))
	k, _ := math.FloorDivMod(negc.Neg(cut.Constant()), g)
	next.Add(k, one)
	//
	return fact.NewUpperBound(name+"<=", expr, k), fact.NewLowerBound(name+">=", expr, &next), nil
}

// String returns a human-readable representation of this certificate, using a
// given environment to name symbols.
func (p *Certificate) String(env func(symbol.Symbol) string) string {
	return fmt.Sprintf("%s*(%s) = %s", p.Denominator.String(), p.Conflict.String(env), p.Combination().String(env))
}
