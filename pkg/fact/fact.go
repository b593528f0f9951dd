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
package fact

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util/poly"
	"github.com/consensys/go-diophant/pkg/util/source/sexp"
)

// Fact is the justification attached to an asserted equality.  Facts are
// opaque to the solver: they are stored when asserted and handed back when
// explaining a conflict.  The only interpretation made of a fact is by
// Normalise, which extracts the equality it asserts.
type Fact interface {
	// Label identifies this fact to the user.
	Label() string
	// Lisp returns an S-expression describing this fact, using a given
	// environment to name symbols.
	Lisp(env func(symbol.Symbol) string) sexp.SExp
}

// ===================================================================
// Equality
// ===================================================================

// Equality asserts that an affine form equals zero.
type Equality struct {
	Name     string
	Equation poly.Affine[symbol.Symbol]
}

// NewEquality constructs an equality fact asserting lhs = rhs.
func NewEquality(name string, lhs, rhs poly.Affine[symbol.Symbol]) *Equality {
	return &Equality{name, lhs.Sub(rhs)}
}

// Label implementation for Fact interface.
func (p *Equality) Label() string {
	return p.Name
}

// Lisp implementation for Fact interface.
func (p *Equality) Lisp(env func(symbol.Symbol) string) sexp.SExp {
	return sexp.NewList([]sexp.SExp{
		sexp.NewSymbol("="), p.Equation.Lisp(env), sexp.NewSymbol("0")})
}

// ===================================================================
// Bound
// ===================================================================

// Bound asserts that an affine form is either bounded above (i.e. expr <= value)
// or below (i.e. expr >= value) by a constant.
type Bound struct {
	Name  string
	Expr  poly.Affine[symbol.Symbol]
	Upper bool
	Value *big.Int
}

// NewUpperBound constructs a fact asserting expr <= value.
func NewUpperBound(name string, expr poly.Affine[symbol.Symbol], value *big.Int) *Bound {
	return &Bound{name, expr, true, value}
}

// NewLowerBound constructs a fact asserting expr >= value.
func NewLowerBound(name string, expr poly.Affine[symbol.Symbol], value *big.Int) *Bound {
	return &Bound{name, expr, false, value}
}

// Label implementation for Fact interface.
func (p *Bound) Label() string {
	return p.Name
}

// Lisp implementation for Fact interface.
func (p *Bound) Lisp(env func(symbol.Symbol) string) sexp.SExp {
	op := ">="
	//
	if p.Upper {
		op = "<="
	}
	//
	return sexp.NewList([]sexp.SExp{
		sexp.NewSymbol(op), p.Expr.Lisp(env), sexp.NewSymbol(p.Value.String())})
}

// ===================================================================
// BoundPair
// ===================================================================

// BoundPair is the conjunction of a lower and an upper bound.  When both
// bounds constrain the same expression to the same value, the pair asserts an
// equality.
type BoundPair struct {
	Lower *Bound
	Upper *Bound
}

// NewBoundPair constructs a pair from a lower and upper bound.
func NewBoundPair(lower, upper *Bound) *BoundPair {
	if lower.Upper || !upper.Upper {
		panic("malformed bound pair")
	}
	//
	return &BoundPair{lower, upper}
}

// Label implementation for Fact interface.
func (p *BoundPair) Label() string {
	return fmt.Sprintf("%s+%s", p.Lower.Name, p.Upper.Name)
}

// Lisp implementation for Fact interface.
func (p *BoundPair) Lisp(env func(symbol.Symbol) string) sexp.SExp {
	return sexp.NewList([]sexp.SExp{
		sexp.NewSymbol("and"), p.Lower.Lisp(env), p.Upper.Lisp(env)})
}

// ===================================================================
// Conjunction
// ===================================================================

// Conjunction is a set of facts which jointly hold.
type Conjunction struct {
	Facts []Fact
}

// And constructs the conjunction of zero or more facts.  Nested conjunctions
// are flattened, as are bound pairs.
func And(facts ...Fact) *Conjunction {
	return &Conjunction{Flatten(facts...)}
}

// Label implementation for Fact interface.
func (p *Conjunction) Label() string {
	var labels = make([]string, len(p.Facts))
	//
	for i, f := range p.Facts {
		labels[i] = f.Label()
	}
	//
	return fmt.Sprintf("(and %s)", strings.Join(labels, " "))
}

// Lisp implementation for Fact interface.
func (p *Conjunction) Lisp(env func(symbol.Symbol) string) sexp.SExp {
	var elements = []sexp.SExp{sexp.NewSymbol("and")}
	//
	for _, f := range p.Facts {
		elements = append(elements, f.Lisp(env))
	}
	//
	return sexp.NewList(elements)
}

// ===================================================================
// Helpers
// ===================================================================

// Flatten a given set of facts into their atomic constituents, such that
// conjunctions are replaced by their contents and a bound pair contributes
// both of its bounds.
func Flatten(facts ...Fact) []Fact {
	var atoms []Fact
	//
	for _, f := range facts {
		switch f := f.(type) {
		case *Conjunction:
			atoms = append(atoms, Flatten(f.Facts...)...)
		case *BoundPair:
			atoms = append(atoms, f.Lower, f.Upper)
		default:
			atoms = append(atoms, f)
		}
	}
	//
	return atoms
}

// Normalise extracts the equality asserted by a given fact, in the canonical
// form "expr = 0".  This fails for facts which do not assert an equality, such
// as a single bound or a bound pair whose bounds differ.
func Normalise(f Fact) (poly.Affine[symbol.Symbol], error) {
	var empty poly.Affine[symbol.Symbol]
	//
	switch f := f.(type) {
	case *Equality:
		return f.Equation, nil
	case *BoundPair:
		if !f.Lower.Expr.Equal(f.Upper.Expr) {
			return empty, fmt.Errorf("bounds %s and %s constrain different expressions", f.Lower.Name, f.Upper.Name)
		} else if f.Lower.Value.Cmp(f.Upper.Value) != 0 {
			return empty, fmt.Errorf("bounds %s and %s do not coincide (%s vs %s)", f.Lower.Name, f.Upper.Name,
				f.Lower.Value.String(), f.Upper.Value.String())
		}
		//
		return f.Lower.Expr.Sub(poly.Constant[symbol.Symbol](f.Lower.Value)), nil
	case nil:
		return empty, fmt.Errorf("missing fact")
	default:
		return empty, fmt.Errorf("fact %s is not an equality", f.Label())
	}
}
