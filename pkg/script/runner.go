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
	"strings"

	"github.com/consensys/go-diophant/pkg/certify"
	"github.com/consensys/go-diophant/pkg/dioph"
	"github.com/consensys/go-diophant/pkg/fact"
	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util"
	"github.com/consensys/go-diophant/pkg/util/collection/scoped"
	"github.com/consensys/go-diophant/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Outcome records the result of a check, cut or solutions command.
type Outcome struct {
	Command Command
	// Line on which the command begins
	Line int
	// Set for check commands which found a conflict
	Conflict util.Option[fact.Fact]
	// Set for cut commands which found a cut
	Cut util.Option[dioph.Equation]
	// Set for solutions commands
	Solutions []dioph.Solution
}

// String returns a human-readable summary of this outcome, using a given
// environment to name symbols.
func (p Outcome) String(env func(symbol.Symbol) string) string {
	switch p.Command.(type) {
	case Check:
		if p.Conflict.HasValue() {
			return fmt.Sprintf("unsat %s", p.Conflict.Unwrap().Label())
		}
		//
		return "sat"
	case Cut:
		if p.Cut.HasValue() {
			return fmt.Sprintf("cut %s = 0", p.Cut.Unwrap().String(env))
		}
		//
		return "no cut"
	default:
		var solutions = make([]string, len(p.Solutions))
		//
		for i, s := range p.Solutions {
			solutions[i] = s.String(env)
		}
		//
		return fmt.Sprintf("solutions [%s]", strings.Join(solutions, ", "))
	}
}

// Runner executes scripts against a fresh solver.
type Runner struct {
	ctx    *scoped.Context
	env    *symbol.Table
	solver *dioph.Solver
	depth  uint
	// Number of rounds for certifying conflicts (zero disables)
	rounds uint
}

// NewRunner constructs a runner with a given solver configuration and initial
// depth.  Conflicts are certified using a given number of rounds, where zero
// disables certification.
func NewRunner(env *symbol.Table, config dioph.Config, depth uint, rounds uint) *Runner {
	var (
		ctx = scoped.NewContext()
		p   = &Runner{ctx: ctx, env: env, depth: depth, rounds: rounds}
	)
	//
	p.solver = dioph.NewSolver(ctx, env, dioph.DepthFunc(func() uint { return p.depth }), config)
	//
	return p
}

// Solver returns the solver being driven by this runner.
func (p *Runner) Solver() *dioph.Solver {
	return p.solver
}

// Run executes every command of a given script in order, returning the outcome
// of each check, cut or solutions command.  Execution stops at the first
// failure, such as an unmet expectation.
func (p *Runner) Run(script *Script) ([]Outcome, []source.SyntaxError) {
	var outcomes []Outcome
	//
	for _, cmd := range script.Commands {
		outcome := Outcome{Command: cmd, Line: script.Line(cmd)}
		//
		switch c := cmd.(type) {
		case Assert:
			if err := p.solver.PushFact(c.Fact); err != nil {
				return outcomes, []source.SyntaxError{script.Error(cmd, err.Error())}
			}
			//
			continue
		case Push:
			p.ctx.Push()
			continue
		case Pop:
			if p.ctx.Level() == 0 {
				return outcomes, []source.SyntaxError{script.Error(cmd, "no checkpoint to pop")}
			}
			//
			p.ctx.Pop()
			//
			continue
		case Depth:
			if c.Value < p.depth {
				return outcomes, []source.SyntaxError{script.Error(cmd, "depth cannot decrease")}
			}
			//
			p.depth = c.Value
			//
			continue
		case Check:
			outcome.Conflict = p.solver.SolveForConflict()
			//
			if err := p.checkConflict(script, c, outcome.Conflict); err != nil {
				return outcomes, []source.SyntaxError{*err}
			}
		case Cut:
			outcome.Cut = p.solver.SolveForCut()
			//
			if c.Expect.HasValue() && c.Expect.Unwrap() != outcome.Cut.HasValue() {
				return outcomes, []source.SyntaxError{script.Error(cmd, "unexpected "+outcome.String(p.env.Name))}
			}
		case Solutions:
			outcome.Solutions = p.solver.DrainSubstitutions().Collect()
		}
		//
		log.Debugf("line %d: %s", outcome.Line, outcome.String(p.env.Name))
		//
		outcomes = append(outcomes, outcome)
	}
	//
	return outcomes, nil
}

func (p *Runner) checkConflict(script *Script, cmd Check, conflict util.Option[fact.Fact]) *source.SyntaxError {
	if cmd.Expect.HasValue() && cmd.Expect.Unwrap() == conflict.HasValue() {
		msg := "expected unsat"
		//
		if cmd.Expect.Unwrap() {
			msg = fmt.Sprintf("expected sat, got unsat %s", conflict.Unwrap().Label())
		}
		//
		err := script.Error(cmd, msg)
		//
		return &err
	} else if conflict.IsEmpty() || p.rounds == 0 {
		return nil
	}
	// Re-check conflict independently
	cert := p.solver.Certificate().Unwrap()
	//
	if err := cert.Verify(); err != nil {
		e := script.Error(cmd, fmt.Sprintf("invalid certificate: %s", err))
		return &e
	} else if err := certify.Check(cert, p.rounds); err != nil {
		e := script.Error(cmd, fmt.Sprintf("invalid certificate: %s", err))
		return &e
	}
	//
	return nil
}
