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
	"strings"

	"github.com/consensys/go-diophant/pkg/util"
)

// Term represents a single variable scaled by a non-zero integer coefficient.
// Terms are immutable once constructed.
type Term[S util.Comparable[S]] struct {
	coefficient big.Int
	variable    S
}

// NewTerm constructs a new term with a given coefficient and variable.
func NewTerm[S util.Comparable[S]](coefficient *big.Int, variable S) Term[S] {
	var c big.Int
	//
	c.Set(coefficient)
	//
	return Term[S]{c, variable}
}

// Coefficient returns (a copy of) the coefficient of this term.
func (p Term[S]) Coefficient() *big.Int {
	var c big.Int
	//
	return c.Set(&p.coefficient)
}

// Variable returns the variable of this term.
func (p Term[S]) Variable() S {
	return p.variable
}

// IsNegative checks whether or not the coefficient for this term is negative.
func (p Term[S]) IsNegative() bool {
	return p.coefficient.Sign() < 0
}

// String constructs a suitable string representation for a given term
// assuming an environment which maps variables to strings.
func (p Term[S]) String(env func(S) string) string {
	var builder strings.Builder
	//
	switch {
	case p.coefficient.IsInt64() && p.coefficient.Int64() == 1:
	case p.coefficient.IsInt64() && p.coefficient.Int64() == -1:
		builder.WriteString("-")
	default:
		builder.WriteString(p.coefficient.String())
		builder.WriteString("*")
	}
	//
	builder.WriteString(env(p.variable))
	//
	return builder.String()
}
