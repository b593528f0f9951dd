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
	"github.com/consensys/go-diophant/pkg/fact"
	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/source"
	"github.com/consensys/go-diophant/pkg/util/source/sexp"
)

// Script is a parsed problem script, consisting of a sequence of commands
// which drive a solver.
type Script struct {
	Commands []Command
	// Maps commands back to the source file
	srcmap *source.Map[sexp.SExp]
}

// Source returns the source file from which this script was parsed.
func (p *Script) Source() *source.File {
	return p.srcmap.Source()
}

// Line returns the line number on which a given command begins.
func (p *Script) Line(cmd Command) int {
	span := p.srcmap.Get(cmd.Node())
	//
	return p.Source().FindFirstEnclosingLine(span).Number()
}

// Error constructs a syntax error for a given command.
func (p *Script) Error(cmd Command, msg string) source.SyntaxError {
	return *p.srcmap.SyntaxError(cmd.Node(), msg)
}

// Command is a single step of a script.
type Command interface {
	// Node returns the S-expression this command was parsed from.
	Node() sexp.SExp
}

type command struct {
	node sexp.SExp
}

// Node implementation for Command interface.
func (p command) Node() sexp.SExp {
	return p.node
}

// Assert asserts a fact, which must normalise to an equality.
type Assert struct {
	command
	Fact fact.Fact
}

// Push takes a checkpoint.
type Push struct{ command }

// Pop rolls back the most recent checkpoint.
type Pop struct{ command }

// Depth sets the search depth used to loosen the coefficient bound.
type Depth struct {
	command
	Value uint
}

// Check solves for a conflict, optionally expecting a given outcome where true
// indicates no conflict (i.e. sat).
type Check struct {
	command
	Expect util.Option[bool]
}

// Cut solves for a cut, optionally expecting a given outcome where true
// indicates some cut is found.
type Cut struct {
	command
	Expect util.Option[bool]
}

// Solutions drains the solutions derived since they were last drained.
type Solutions struct{ command }
