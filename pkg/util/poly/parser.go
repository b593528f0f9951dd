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
	"math/big"

	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/source"
	"github.com/consensys/go-diophant/pkg/util/source/sexp"
)

// Parser is responsible for parsing S-expressions into affine forms.
type Parser[S util.Comparable[S]] struct {
	// Maps S-Expressions to their spans in the original source file.  This is
	// used for reporting syntax errors.
	srcmap *source.Map[sexp.SExp]
	// Function for resolving variable names
	resolver func(string) (S, error)
}

// NewParser constructs a new parser for a given source map.
func NewParser[S util.Comparable[S]](srcmap *source.Map[sexp.SExp], resolver func(string) (S, error)) *Parser[S] {
	return &Parser[S]{srcmap, resolver}
}

// Parse a given S-expression into an affine form, or produce one or more
// syntax errors.  Expressions are built from integer literals, variables and
// the operators "+", "-" and "*", where every product must have at most one
// non-constant operand.
func (p *Parser[S]) Parse(expr sexp.SExp) (Affine[S], []source.SyntaxError) {
	var empty Affine[S]
	//
	switch e := expr.(type) {
	case *sexp.Symbol:
		return p.parseSymbol(e)
	case *sexp.List:
		return p.parseList(e)
	default:
		return empty, p.srcmap.SyntaxErrors(expr, "unknown term")
	}
}

func (p *Parser[S]) parseSymbol(symbol *sexp.Symbol) (Affine[S], []source.SyntaxError) {
	var (
		empty Affine[S]
		val   big.Int
	)
	// Integer literal?
	if _, ok := val.SetString(symbol.Value, 10); ok {
		return Constant[S](&val), nil
	}
	//
	variable, err := p.resolver(symbol.Value)
	if err != nil {
		return empty, p.srcmap.SyntaxErrors(symbol, err.Error())
	}
	//
	return NewAffine(Var(variable), big.NewInt(0)), nil
}

func (p *Parser[S]) parseList(list *sexp.List) (Affine[S], []source.SyntaxError) {
	var empty Affine[S]
	//
	if list.Len() <= 1 {
		return empty, p.srcmap.SyntaxErrors(list, "malformed expression")
	} else if list.Get(0).AsSymbol() == nil {
		return empty, p.srcmap.SyntaxErrors(list.Get(0), "expected operator")
	}
	//
	switch list.Head() {
	case "+":
		return p.foldList(list.Elements[1:], func(l, r Affine[S]) (Affine[S], bool) {
			return l.Add(r), true
		})
	case "-":
		if list.Len() == 2 {
			arg, errs := p.Parse(list.Get(1))
			return arg.Neg(), errs
		}
		//
		return p.foldList(list.Elements[1:], func(l, r Affine[S]) (Affine[S], bool) {
			return l.Sub(r), true
		})
	case "*":
		return p.foldList(list.Elements[1:], mul[S])
	default:
		return empty, p.srcmap.SyntaxErrors(list.Get(0), "unknown operator")
	}
}

func (p *Parser[S]) foldList(elements []sexp.SExp, op func(Affine[S], Affine[S]) (Affine[S], bool),
) (Affine[S], []source.SyntaxError) {
	var res Affine[S]
	// Fold over each element
	for i := 0; i < len(elements); i++ {
		if term, errs := p.Parse(elements[i]); len(errs) > 0 {
			return res, errs
		} else if i == 0 {
			res = term
		} else if next, ok := op(res, term); ok {
			res = next
		} else {
			return res, p.srcmap.SyntaxErrors(elements[i], "nonlinear product")
		}
	}
	//
	return res, nil
}

// mul multiplies two affine forms, provided at least one of them is constant.
func mul[S util.Comparable[S]](l, r Affine[S]) (Affine[S], bool) {
	switch {
	case l.IsConstant():
		return r.Scale(&l.constant), true
	case r.IsConstant():
		return l.Scale(&r.constant), true
	default:
		return l, false
	}
}
