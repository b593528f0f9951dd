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

	"github.com/consensys/go-diophant/pkg/fact"
	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/poly"
)

// Equation represents the integer equality "poly + constant = 0".
type Equation = poly.Affine[symbol.Symbol]

// Proof records how a derived equation follows from the asserted inputs, as a
// linear combination over proof symbols.  Specifically, a proof with
// combination P and denominator d for an equation e states that d*e = P, where
// each proof symbol in P stands for the input equation it was minted for.
// Denominators arise from dividing equations through by the gcd of their
// coefficients and are always positive.
type Proof struct {
	combination poly.Linear[symbol.Symbol]
	denominator big.Int
}

func inputProof(proof symbol.Symbol) Proof {
	return newProof(poly.Var(proof), big.NewInt(1))
}

func emptyProof() Proof {
	return newProof(poly.Linear[symbol.Symbol]{}, big.NewInt(1))
}

// newProof constructs a proof in normal form, where the denominator is positive
// and shares no common factor with the combination.
func newProof(combination poly.Linear[symbol.Symbol], denominator *big.Int) Proof {
	var d big.Int
	//
	if denominator.Sign() == 0 {
		panic("zero proof denominator")
	} else if d.Set(denominator); d.Sign() < 0 {
		combination = combination.Neg()
		d.Neg(&d)
	}
	//
	g := combination.Gcd()
	g.GCD(nil, nil, g, &d)
	//
	if g.Cmp(big.NewInt(1)) != 0 {
		combination = combination.Div(g)
		d.Quo(&d, g)
	}
	//
	return Proof{combination, d}
}

// Combination returns the linear combination of proof symbols.
func (p Proof) Combination() poly.Linear[symbol.Symbol] {
	return p.combination
}

// Denominator returns (a copy of) the denominator of this proof.
func (p Proof) Denominator() *big.Int {
	var d big.Int
	//
	return d.Set(&p.denominator)
}

// IsEmpty checks whether this proof mentions no inputs.  Definitions
// introduced by decomposition have empty proofs.
func (p Proof) IsEmpty() bool {
	return p.combination.IsZero()
}

// div returns the proof of an equation divided through by a given (non-zero)
// divisor.
func (p Proof) div(divisor *big.Int) Proof {
	var d big.Int
	//
	d.Mul(&p.denominator, divisor)
	//
	return newProof(p.combination, &d)
}

// combine returns the proof of q*e + r*o, where p proves e and other proves o.
func (p Proof) combine(q *big.Int, other Proof, r *big.Int) Proof {
	var lcm, g, lq, rq big.Int
	// Bring both proofs over a common denominator
	g.GCD(nil, nil, &p.denominator, &other.denominator)
	lcm.Quo(&p.denominator, &g)
	lcm.Mul(&lcm, &other.denominator)
	//
	lq.Quo(&lcm, &p.denominator)
	lq.Mul(&lq, q)
	rq.Quo(&lcm, &other.denominator)
	rq.Mul(&rq, r)
	//
	return newProof(p.combination.Combine(&lq, other.combination, &rq), &lcm)
}

// String returns a human-readable representation of this proof, using a given
// environment to name proof symbols.
func (p Proof) String(env func(symbol.Symbol) string) string {
	if p.denominator.Cmp(big.NewInt(1)) == 0 {
		return p.combination.String(env)
	}
	//
	return fmt.Sprintf("(%s)/%s", p.combination.String(env), p.denominator.String())
}

// Constraint is a single entry on the trail, pairing an equation with its
// proof.  Constraints are never modified once placed on the trail.
type Constraint struct {
	Equation Equation
	Proof    Proof
}

// Substitution records the elimination of a variable using the equation at a
// given trail position, whose coefficient on that variable is -1.  A
// substitution arising from decomposition also records the fresh symbol it
// introduced, whose coefficient in the defining equation is +1.
type Substitution struct {
	Variable symbol.Symbol
	Position uint
	Fresh    util.Option[symbol.Symbol]
}

// Solution reads "Variable = Value", and is derived from a substitution.
type Solution struct {
	Variable symbol.Symbol
	Value    Equation
}

// String returns a human-readable representation of this solution.
func (p Solution) String(env func(symbol.Symbol) string) string {
	return fmt.Sprintf("%s = %s", env(p.Variable), p.Value.String(env))
}

// input records an asserted equality.
type input struct {
	justification fact.Fact
	// trail position at which the input was pushed
	position uint
	// proof symbol minted for this input
	proof symbol.Symbol
}
