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
package math

import (
	"fmt"
	"math/big"
)

// Gcd returns the (non-negative) greatest common divisor of two integers.  By
// convention, the gcd of zero and zero is zero.
func Gcd(a, b *big.Int) *big.Int {
	var g big.Int
	//
	return g.GCD(nil, nil, a, b)
}

// ExtendedGcd returns the (non-negative) greatest common divisor g of two
// integers, along with Bezout coefficients s and t such that g = s*a + t*b.
// Either integer may be negative.
func ExtendedGcd(a, b *big.Int) (g, s, t *big.Int) {
	g, s, t = new(big.Int), new(big.Int), new(big.Int)
	g.GCD(s, t, a, b)
	//
	return g, s, t
}

// FloorDivMod divides n by a strictly positive divisor d, returning quotient q
// and remainder r such that n = q*d + r and 0 <= r < d.  Thus, the quotient is
// rounded towards negative infinity.
func FloorDivMod(n, d *big.Int) (q, r *big.Int) {
	if d.Sign() <= 0 {
		panic(fmt.Sprintf("non-positive divisor %s", d.String()))
	}
	// Euclidean division coincides with floor division for positive divisors.
	q, r = new(big.Int), new(big.Int)
	q.DivMod(n, d, r)
	//
	return q, r
}

// Divides checks whether d divides n.  Zero divides only zero.
func Divides(d, n *big.Int) bool {
	if d.Sign() == 0 {
		return n.Sign() == 0
	}
	//
	var r big.Int
	//
	return r.Rem(n, d).Sign() == 0
}

// IsUnit checks whether a given integer is either 1 or -1.
func IsUnit(n *big.Int) bool {
	return n.IsInt64() && (n.Int64() == 1 || n.Int64() == -1)
}

// CmpAbs compares the absolute values of two integers.
func CmpAbs(a, b *big.Int) int {
	return a.CmpAbs(b)
}

// BitLen returns the number of bits required to represent the absolute value
// of a given integer.
func BitLen(n *big.Int) uint {
	return uint(n.BitLen())
}
