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
	"slices"
	"strings"

	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/math"
)

// Linear represents a linear combination of variables with integer
// coefficients.  This is held in a canonical form where terms are sorted by
// variable, no variable occurs twice and no coefficient is zero.  Thus, two
// linear forms are equivalent iff they are structurally equal.  Observe that an
// uninitialised Linear corresponds with zero.
type Linear[S util.Comparable[S]] struct {
	terms []Term[S]
}

// NewLinear constructs a linear form from zero or more terms, which may be
// given in any order and may mention the same variable more than once.
func NewLinear[S util.Comparable[S]](terms ...Term[S]) Linear[S] {
	var (
		sorted = slices.Clone(terms)
		res    []Term[S]
	)
	//
	slices.SortStableFunc(sorted, func(l, r Term[S]) int {
		return l.variable.Cmp(r.variable)
	})
	// Merge adjacent terms over the same variable
	for _, t := range sorted {
		if n := len(res); n > 0 && res[n-1].variable.Cmp(t.variable) == 0 {
			var c big.Int
			//
			c.Add(&res[n-1].coefficient, &t.coefficient)
			res[n-1] = Term[S]{c, t.variable}
		} else {
			res = append(res, NewTerm(&t.coefficient, t.variable))
		}
	}
	// Drop any terms which cancelled out
	res = slices.DeleteFunc(res, func(t Term[S]) bool {
		return t.coefficient.Sign() == 0
	})
	//
	return Linear[S]{res}
}

// Var constructs the linear form consisting of a single variable.
func Var[S util.Comparable[S]](variable S) Linear[S] {
	return NewLinear(NewTerm(big.NewInt(1), variable))
}

// Len returns the number of terms in this linear form.
func (p Linear[S]) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term in this linear form.
func (p Linear[S]) Term(ith uint) Term[S] {
	return p.terms[ith]
}

// IsZero checks whether this linear form has no terms.
func (p Linear[S]) IsZero() bool {
	return len(p.terms) == 0
}

// Variables returns the variables of this linear form, in order.
func (p Linear[S]) Variables() []S {
	vars := make([]S, len(p.terms))
	//
	for i, t := range p.terms {
		vars[i] = t.variable
	}
	//
	return vars
}

// Coefficient returns the coefficient of a given variable, which is zero when
// the variable does not occur.
func (p Linear[S]) Coefficient(variable S) *big.Int {
	if i, ok := p.find(variable); ok {
		return p.terms[i].Coefficient()
	}
	//
	return big.NewInt(0)
}

// Contains checks whether a given variable occurs in this linear form.
func (p Linear[S]) Contains(variable S) bool {
	_, ok := p.find(variable)
	//
	return ok
}

// Combine returns the linear form q*p + r*other.
func (p Linear[S]) Combine(q *big.Int, other Linear[S], r *big.Int) Linear[S] {
	var (
		terms = make([]Term[S], 0, len(p.terms)+len(other.terms))
		i, j  int
	)
	//
	for i < len(p.terms) || j < len(other.terms) {
		var (
			c big.Int
			v S
		)
		// Standard sorted merge
		switch {
		case j == len(other.terms) || (i < len(p.terms) && p.terms[i].variable.Cmp(other.terms[j].variable) < 0):
			c.Mul(q, &p.terms[i].coefficient)
			v = p.terms[i].variable
			i++
		case i == len(p.terms) || p.terms[i].variable.Cmp(other.terms[j].variable) > 0:
			c.Mul(r, &other.terms[j].coefficient)
			v = other.terms[j].variable
			j++
		default:
			var d big.Int
			//
			c.Mul(q, &p.terms[i].coefficient)
			d.Mul(r, &other.terms[j].coefficient)
			c.Add(&c, &d)
			v = p.terms[i].variable
			i++
			j++
		}
		//
		if c.Sign() != 0 {
			terms = append(terms, Term[S]{c, v})
		}
	}
	//
	return Linear[S]{terms}
}

// Add another linear form onto this one.
func (p Linear[S]) Add(other Linear[S]) Linear[S] {
	return p.Combine(big.NewInt(1), other, big.NewInt(1))
}

// Sub another linear form from this one.
func (p Linear[S]) Sub(other Linear[S]) Linear[S] {
	return p.Combine(big.NewInt(1), other, big.NewInt(-1))
}

// Scale multiplies every coefficient by a given factor.
func (p Linear[S]) Scale(factor *big.Int) Linear[S] {
	if factor.Sign() == 0 {
		return Linear[S]{}
	}
	//
	terms := make([]Term[S], len(p.terms))
	//
	for i, t := range p.terms {
		var c big.Int
		//
		c.Mul(&t.coefficient, factor)
		terms[i] = Term[S]{c, t.variable}
	}
	//
	return Linear[S]{terms}
}

// Neg negates every coefficient.
func (p Linear[S]) Neg() Linear[S] {
	return p.Scale(big.NewInt(-1))
}

// Div divides every coefficient by a given divisor, which must divide each of
// them exactly.
func (p Linear[S]) Div(divisor *big.Int) Linear[S] {
	terms := make([]Term[S], len(p.terms))
	//
	for i, t := range p.terms {
		var c, r big.Int
		//
		if c.QuoRem(&t.coefficient, divisor, &r); r.Sign() != 0 {
			panic(fmt.Sprintf("inexact division of %s by %s", t.coefficient.String(), divisor.String()))
		}
		//
		terms[i] = Term[S]{c, t.variable}
	}
	//
	return Linear[S]{terms}
}

// DivRem divides this linear form by a strictly positive divisor, coefficient
// by coefficient, returning the quotient q and remainder r such that
// p = divisor*q + r.  Quotient coefficients are rounded towards negative
// infinity, hence every remainder coefficient lies in [0,divisor).
func (p Linear[S]) DivRem(divisor *big.Int) (Linear[S], Linear[S]) {
	var qs, rs []Term[S]
	//
	for _, t := range p.terms {
		q, r := math.FloorDivMod(&t.coefficient, divisor)
		//
		if q.Sign() != 0 {
			qs = append(qs, Term[S]{*q, t.variable})
		}
		//
		if r.Sign() != 0 {
			rs = append(rs, Term[S]{*r, t.variable})
		}
	}
	//
	return Linear[S]{qs}, Linear[S]{rs}
}

// Gcd returns the greatest common divisor of all coefficients, which is zero
// for the zero form.
func (p Linear[S]) Gcd() *big.Int {
	var g big.Int
	//
	for _, t := range p.terms {
		g.GCD(nil, nil, &g, &t.coefficient)
		// Cannot get any smaller
		if g.IsInt64() && g.Int64() == 1 {
			break
		}
	}
	//
	return &g
}

// AbsMinimum returns the first term (in variable order) whose coefficient has
// the smallest absolute value, or false for the zero form.
func (p Linear[S]) AbsMinimum() (Term[S], bool) {
	var (
		index = -1
		empty Term[S]
	)
	//
	for i := range p.terms {
		if index < 0 || p.terms[i].coefficient.CmpAbs(&p.terms[index].coefficient) < 0 {
			index = i
		}
	}
	//
	if index < 0 {
		return empty, false
	}
	//
	return p.terms[index], true
}

// MaxBitLen returns the largest bit length of any coefficient.
func (p Linear[S]) MaxBitLen() uint {
	var length uint
	//
	for _, t := range p.terms {
		length = max(length, math.BitLen(&t.coefficient))
	}
	//
	return length
}

// Equal checks whether two linear forms are identical.
func (p Linear[S]) Equal(other Linear[S]) bool {
	return slices.EqualFunc(p.terms, other.terms, func(l, r Term[S]) bool {
		return l.variable.Cmp(r.variable) == 0 && l.coefficient.Cmp(&r.coefficient) == 0
	})
}

// Eval evaluates this linear form with a given environment (i.e. mapping of
// variables to values).
func (p Linear[S]) Eval(env func(S) *big.Int) *big.Int {
	var val big.Int
	//
	for _, t := range p.terms {
		var ith big.Int
		//
		ith.Mul(&t.coefficient, env(t.variable))
		val.Add(&val, &ith)
	}
	//
	return &val
}

// String constructs a suitable string representation for a given linear form
// assuming an environment which maps variables to strings.
func (p Linear[S]) String(env func(S) string) string {
	var builder strings.Builder
	//
	if len(p.terms) == 0 {
		return "0"
	}
	//
	for i, t := range p.terms {
		switch {
		case i == 0:
			builder.WriteString(t.String(env))
		case t.IsNegative():
			builder.WriteString(" - ")
			builder.WriteString(NewTerm(new(big.Int).Neg(&t.coefficient), t.variable).String(env))
		default:
			builder.WriteString(" + ")
			builder.WriteString(t.String(env))
		}
	}
	//
	return builder.String()
}

func (p Linear[S]) find(variable S) (int, bool) {
	return slices.BinarySearchFunc(p.terms, variable, func(t Term[S], v S) int {
		return t.variable.Cmp(v)
	})
}
