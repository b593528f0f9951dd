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
package poly

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/math"
	"github.com/consensys/go-diophant/pkg/util/source/sexp"
)

// Affine represents a linear form plus an integer constant, such as
// "2*x + 4*y - 3".  Affine forms are immutable values and, since the linear
// part is held canonically, two affine forms are equivalent iff they are
// structurally equal.
type Affine[S util.Comparable[S]] struct {
	linear   Linear[S]
	constant big.Int
}

// NewAffine constructs an affine form from a given linear form and constant.
func NewAffine[S util.Comparable[S]](linear Linear[S], constant *big.Int) Affine[S] {
	var c big.Int
	//
	c.Set(constant)
	//
	return Affine[S]{linear, c}
}

// Constant constructs an affine form which has no variables.
func Constant[S util.Comparable[S]](constant *big.Int) Affine[S] {
	return NewAffine(Linear[S]{}, constant)
}

// Linear returns the linear part of this affine form.
func (p Affine[S]) Linear() Linear[S] {
	return p.linear
}

// Constant returns (a copy of) the constant part of this affine form.
func (p Affine[S]) Constant() *big.Int {
	var c big.Int
	//
	return c.Set(&p.constant)
}

// Len returns the number of (non-constant) terms in this affine form.
func (p Affine[S]) Len() uint {
	return p.linear.Len()
}

// Term returns the ith non-constant term.
func (p Affine[S]) Term(ith uint) Term[S] {
	return p.linear.Term(ith)
}

// Coefficient returns the coefficient of a given variable.
func (p Affine[S]) Coefficient(variable S) *big.Int {
	return p.linear.Coefficient(variable)
}

// IsConstant checks whether this affine form has no variables.
func (p Affine[S]) IsConstant() bool {
	return p.linear.IsZero()
}

// IsZero checks whether this affine form is identically zero.
func (p Affine[S]) IsZero() bool {
	return p.linear.IsZero() && p.constant.Sign() == 0
}

// Combine returns the affine form q*p + r*other.
func (p Affine[S]) Combine(q *big.Int, other Affine[S], r *big.Int) Affine[S] {
	var c, d big.Int
	//
	c.Mul(q, &p.constant)
	d.Mul(r, &other.constant)
	c.Add(&c, &d)
	//
	return Affine[S]{p.linear.Combine(q, other.linear, r), c}
}

// Add another affine form onto this one.
func (p Affine[S]) Add(other Affine[S]) Affine[S] {
	return p.Combine(big.NewInt(1), other, big.NewInt(1))
}

// Sub another affine form from this one.
func (p Affine[S]) Sub(other Affine[S]) Affine[S] {
	return p.Combine(big.NewInt(1), other, big.NewInt(-1))
}

// Scale multiplies this affine form by a given factor.
func (p Affine[S]) Scale(factor *big.Int) Affine[S] {
	var c big.Int
	//
	c.Mul(&p.constant, factor)
	//
	return Affine[S]{p.linear.Scale(factor), c}
}

// Neg negates this affine form.
func (p Affine[S]) Neg() Affine[S] {
	return p.Scale(big.NewInt(-1))
}

// Div divides this affine form by a given divisor, which must exactly divide
// every coefficient and the constant.
func (p Affine[S]) Div(divisor *big.Int) Affine[S] {
	var c, r big.Int
	//
	if c.QuoRem(&p.constant, divisor, &r); r.Sign() != 0 {
		panic(fmt.Sprintf("inexact division of %s by %s", p.constant.String(), divisor.String()))
	}
	//
	return Affine[S]{p.linear.Div(divisor), c}
}

// DivRem divides this affine form by a strictly positive divisor, returning q
// and r such that p = divisor*q + r where every coefficient of r (including
// its constant) lies in [0,divisor).
func (p Affine[S]) DivRem(divisor *big.Int) (Affine[S], Affine[S]) {
	lq, lr := p.linear.DivRem(divisor)
	cq, cr := math.FloorDivMod(&p.constant, divisor)
	//
	return Affine[S]{lq, *cq}, Affine[S]{lr, *cr}
}

// Gcd returns the greatest common divisor of the non-constant coefficients.
func (p Affine[S]) Gcd() *big.Int {
	return p.linear.Gcd()
}

// MaxBitLen returns the largest bit length of any coefficient, including the
// constant.
func (p Affine[S]) MaxBitLen() uint {
	return max(p.linear.MaxBitLen(), math.BitLen(&p.constant))
}

// Equal checks whether two affine forms are identical.
func (p Affine[S]) Equal(other Affine[S]) bool {
	return p.constant.Cmp(&other.constant) == 0 && p.linear.Equal(other.linear)
}

// Eval evaluates this affine form with a given environment.
func (p Affine[S]) Eval(env func(S) *big.Int) *big.Int {
	val := p.linear.Eval(env)
	//
	return val.Add(val, &p.constant)
}

// String constructs a suitable string representation for a given affine form
// assuming an environment which maps variables to strings.
func (p Affine[S]) String(env func(S) string) string {
	var (
		abs big.Int
		sgn = p.constant.Sign()
	)
	//
	switch {
	case p.linear.IsZero():
		return p.constant.String()
	case sgn == 0:
		return p.linear.String(env)
	case sgn < 0:
		return fmt.Sprintf("%s - %s", p.linear.String(env), abs.Abs(&p.constant).String())
	default:
		return fmt.Sprintf("%s + %s", p.linear.String(env), p.constant.String())
	}
}

// Lisp constructs an S-Expression for this affine form, assuming an
// environment which maps variables to strings.  The result can be read back
// by a Parser.
func (p Affine[S]) Lisp(env func(S) string) sexp.SExp {
	var terms []sexp.SExp
	//
	for _, t := range p.linear.terms {
		name := sexp.NewSymbol(env(t.variable))
		//
		if t.coefficient.IsInt64() && t.coefficient.Int64() == 1 {
			terms = append(terms, name)
		} else {
			terms = append(terms, sexp.NewList([]sexp.SExp{
				sexp.NewSymbol("*"), sexp.NewSymbol(t.coefficient.String()), name}))
		}
	}
	//
	if p.constant.Sign() != 0 || len(terms) == 0 {
		terms = append(terms, sexp.NewSymbol(p.constant.String()))
	}
	//
	if len(terms) == 1 {
		return terms[0]
	}
	//
	return sexp.NewList(append([]sexp.SExp{sexp.NewSymbol("+")}, terms...))
}
