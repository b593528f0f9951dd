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
package script

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/consensys/go-diophant/pkg/fact"
	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/poly"
	"github.com/consensys/go-diophant/pkg/util/source"
	"github.com/consensys/go-diophant/pkg/util/source/sexp"
)

// Parse a given source file into a script, using a given symbol table to
// resolve variable names.
func Parse(srcfile *source.File, env *symbol.Table) (*Script, []source.SyntaxError) {
	terms, srcmap, err := sexp.ParseAll(srcfile)
	//
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	var (
		parser   = &parser{srcmap, poly.NewParser(srcmap, resolver(env))}
		commands []Command
		errors   []source.SyntaxError
	)
	//
	for _, term := range terms {
		if cmd, errs := parser.parseCommand(term); len(errs) > 0 {
			errors = append(errors, errs...)
		} else {
			commands = append(commands, cmd)
		}
	}
	//
	return &Script{commands, srcmap}, errors
}

// resolver interns variable names, except those reserved for fresh symbols.
func resolver(env *symbol.Table) func(string) (symbol.Symbol, error) {
	return func(name string) (symbol.Symbol, error) {
		if strings.HasPrefix(name, symbol.FreshPrefix) {
			var empty symbol.Symbol
			return empty, fmt.Errorf("reserved variable name %s", name)
		}
		//
		return env.Intern(name), nil
	}
}

type parser struct {
	srcmap *source.Map[sexp.SExp]
	exprs  *poly.Parser[symbol.Symbol]
}

func (p *parser) parseCommand(term sexp.SExp) (Command, []source.SyntaxError) {
	var (
		list = term.AsList()
		cmd  = command{term}
	)
	//
	if list == nil || list.Len() == 0 {
		return nil, p.srcmap.SyntaxErrors(term, "expected command")
	}
	//
	switch list.Head() {
	case "assert":
		return p.parseAssert(cmd, list)
	case "bounds":
		return p.parseBounds(cmd, list)
	case "push":
		return Push{cmd}, p.checkArity(list, 0)
	case "pop":
		return Pop{cmd}, p.checkArity(list, 0)
	case "depth":
		return p.parseDepth(cmd, list)
	case "check":
		expect, errs := p.parseExpectation(list, "sat", "unsat")
		return Check{cmd, expect}, errs
	case "cut":
		expect, errs := p.parseExpectation(list, "some", "none")
		return Cut{cmd, expect}, errs
	case "solutions":
		return Solutions{cmd}, p.checkArity(list, 0)
	default:
		return nil, p.srcmap.SyntaxErrors(term, "unknown command")
	}
}

// (assert label (= lhs rhs))
func (p *parser) parseAssert(cmd command, list *sexp.List) (Command, []source.SyntaxError) {
	if errs := p.checkArity(list, 2); len(errs) > 0 {
		return nil, errs
	}
	//
	label, errs := p.parseLabel(list.Get(1))
	if len(errs) > 0 {
		return nil, errs
	}
	//
	eq := list.Get(2).AsList()
	if eq == nil || eq.Len() != 3 || eq.Head() != "=" {
		return nil, p.srcmap.SyntaxErrors(list.Get(2), "expected equality")
	}
	//
	lhs, errs := p.exprs.Parse(eq.Get(1))
	if len(errs) > 0 {
		return nil, errs
	}
	//
	rhs, errs := p.exprs.Parse(eq.Get(2))
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return Assert{cmd, fact.NewEquality(label, lhs, rhs)}, nil
}

// (bounds label expr lower upper)
func (p *parser) parseBounds(cmd command, list *sexp.List) (Command, []source.SyntaxError) {
	if errs := p.checkArity(list, 4); len(errs) > 0 {
		return nil, errs
	}
	//
	label, errs := p.parseLabel(list.Get(1))
	if len(errs) > 0 {
		return nil, errs
	}
	//
	expr, errs := p.exprs.Parse(list.Get(2))
	if len(errs) > 0 {
		return nil, errs
	}
	//
	lower, errs := p.parseInteger(list.Get(3))
	if len(errs) > 0 {
		return nil, errs
	}
	//
	upper, errs := p.parseInteger(list.Get(4))
	if len(errs) > 0 {
		return nil, errs
	}
	//
	pair := fact.NewBoundPair(
		fact.NewLowerBound(label+".lo", expr, lower),
		fact.NewUpperBound(label+".hi", expr, upper))
	//
	return Assert{cmd, pair}, nil
}

// (depth n)
func (p *parser) parseDepth(cmd command, list *sexp.List) (Command, []source.SyntaxError) {
	if errs := p.checkArity(list, 1); len(errs) > 0 {
		return nil, errs
	} else if s := list.Get(1).AsSymbol(); s == nil {
		return nil, p.srcmap.SyntaxErrors(list.Get(1), "expected depth")
	} else if n, err := strconv.ParseUint(s.Value, 10, 32); err != nil {
		return nil, p.srcmap.SyntaxErrors(s, "invalid depth")
	} else {
		return Depth{cmd, uint(n)}, nil
	}
}

// parseExpectation parses an optional expectation, where the positive keyword
// yields true and the negative keyword false.
func (p *parser) parseExpectation(list *sexp.List, positive, negative string) (util.Option[bool],
	[]source.SyntaxError) {
	if list.Len() == 1 {
		return util.None[bool](), nil
	} else if list.Len() != 2 || list.Get(1).AsSymbol() == nil {
		return util.None[bool](), p.srcmap.SyntaxErrors(list, "malformed expectation")
	}
	//
	switch list.Get(1).AsSymbol().Value {
	case positive:
		return util.Some(true), nil
	case negative:
		return util.Some(false), nil
	default:
		msg := fmt.Sprintf("expected %s or %s", positive, negative)
		return util.None[bool](), p.srcmap.SyntaxErrors(list.Get(1), msg)
	}
}

func (p *parser) parseLabel(term sexp.SExp) (string, []source.SyntaxError) {
	if s := term.AsSymbol(); s != nil {
		return s.Value, nil
	}
	//
	return "", p.srcmap.SyntaxErrors(term, "expected label")
}

func (p *parser) parseInteger(term sexp.SExp) (*big.Int, []source.SyntaxError) {
	var val big.Int
	//
	if s := term.AsSymbol(); s != nil {
		if _, ok := val.SetString(s.Value, 10); ok {
			return &val, nil
		}
	}
	//
	return nil, p.srcmap.SyntaxErrors(term, "expected integer")
}

func (p *parser) checkArity(list *sexp.List, n int) []source.SyntaxError {
	if list.Len() != n+1 {
		return p.srcmap.SyntaxErrors(list, fmt.Sprintf("expected %d arguments", n))
	}
	//
	return nil
}
