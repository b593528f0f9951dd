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
package certify

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-diophant/pkg/dioph"
	"github.com/consensys/go-diophant/pkg/symbol"
	log "github.com/sirupsen/logrus"
)

// DefaultRounds is the default number of random evaluations made by Check.
const DefaultRounds = 4

// Check re-checks a conflict certificate probabilistically.  Both sides of the
// identity "d * conflict = sum of contributions" are evaluated at a random
// point of the BLS12-377 scalar field, for a given number of rounds.  Distinct
// affine forms agree at a random point with probability at most 1/r (for the
// field modulus r), hence passing even a single round is strong evidence the
// certificate is valid.  Finally, the conflict is checked for having no integer
// solutions.
func Check(cert *dioph.Certificate, rounds uint) error {
	for i := uint(0); i < rounds; i++ {
		if err := checkRound(cert); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
	}
	//
	return Infeasible(cert)
}

// Infeasible checks that the conflict of a given certificate has no integer
// solutions.
func Infeasible(cert *dioph.Certificate) error {
	if !dioph.Infeasible(cert.Conflict) {
		return fmt.Errorf("conflict has integer solutions (gcd %s divides %s)", cert.Conflict.Gcd(),
			cert.Conflict.Constant())
	}
	//
	return nil
}

func checkRound(cert *dioph.Certificate) error {
	var (
		point = newPoint()
		lhs   fr.Element
		rhs   fr.Element
		d     fr.Element
	)
	//
	d.SetBigInt(cert.Denominator)
	lhs.Mul(&d, point.eval(cert.Conflict))
	//
	for _, c := range cert.Inputs {
		var ith fr.Element
		//
		ith.SetBigInt(c.Coefficient)
		ith.Mul(&ith, point.eval(c.Equation))
		rhs.Add(&rhs, &ith)
	}
	//
	if !lhs.Equal(&rhs) {
		return fmt.Errorf("fingerprint mismatch (%s vs %s)", lhs.String(), rhs.String())
	}
	//
	log.Debugf("certificate fingerprint %s", lhs.String())
	//
	return nil
}

// point assigns random field elements to symbols, on demand.
type point struct {
	values map[symbol.Symbol]*fr.Element
}

func newPoint() *point {
	return &point{make(map[symbol.Symbol]*fr.Element)}
}

func (p *point) value(s symbol.Symbol) *fr.Element {
	if v, ok := p.values[s]; ok {
		return v
	}
	//
	var v fr.Element
	//
	if _, err := v.SetRandom(); err != nil {
		panic(fmt.Sprintf("failed generating random field element: %s", err))
	}
	//
	p.values[s] = &v
	//
	return &v
}

// eval evaluates an equation at this point.
func (p *point) eval(equation dioph.Equation) *fr.Element {
	var val fr.Element
	//
	val.SetBigInt(equation.Constant())
	//
	for i := uint(0); i < equation.Len(); i++ {
		var (
			term = equation.Term(i)
			ith  fr.Element
		)
		//
		ith.SetBigInt(term.Coefficient())
		ith.Mul(&ith, p.value(term.Variable()))
		val.Add(&val, &ith)
	}
	//
	return &val
}
