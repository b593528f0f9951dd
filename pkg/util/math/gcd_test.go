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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Gcd_01(t *testing.T) {
	checkGcd(t, 12, 18, 6)
	checkGcd(t, -12, 18, 6)
	checkGcd(t, 12, -18, 6)
	checkGcd(t, 0, 7, 7)
	checkGcd(t, 0, 0, 0)
	checkGcd(t, 17, 5, 1)
}

func Test_ExtendedGcd_01(t *testing.T) {
	for a := int64(-20); a <= 20; a++ {
		for b := int64(-20); b <= 20; b++ {
			checkExtendedGcd(t, a, b)
		}
	}
}

func Test_FloorDivMod_01(t *testing.T) {
	checkFloorDivMod(t, 7, 3, 2, 1)
	checkFloorDivMod(t, -7, 3, -3, 2)
	checkFloorDivMod(t, 6, 3, 2, 0)
	checkFloorDivMod(t, -6, 3, -2, 0)
	checkFloorDivMod(t, 0, 5, 0, 0)
}

func Test_FloorDivMod_02(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for negative divisor")
		}
	}()
	//
	FloorDivMod(big.NewInt(3), big.NewInt(-2))
}

func Test_Divides_01(t *testing.T) {
	require.True(t, Divides(big.NewInt(3), big.NewInt(-9)))
	require.False(t, Divides(big.NewInt(2), big.NewInt(3)))
	// Zero divides only zero
	require.True(t, Divides(big.NewInt(0), big.NewInt(0)))
	require.False(t, Divides(big.NewInt(0), big.NewInt(1)))
}

func Test_IsUnit_01(t *testing.T) {
	require.True(t, IsUnit(big.NewInt(1)))
	require.True(t, IsUnit(big.NewInt(-1)))
	require.False(t, IsUnit(big.NewInt(2)))
	require.False(t, IsUnit(big.NewInt(0)))
}

func Test_CmpAbs_01(t *testing.T) {
	require.Equal(t, 0, CmpAbs(big.NewInt(-3), big.NewInt(3)))
	require.Equal(t, -1, CmpAbs(big.NewInt(2), big.NewInt(-3)))
	require.Equal(t, 1, CmpAbs(big.NewInt(-4), big.NewInt(3)))
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkGcd(t *testing.T, a, b, expected int64) {
	t.Helper()
	//
	require.Equal(t, expected, Gcd(big.NewInt(a), big.NewInt(b)).Int64(), "gcd(%d,%d)", a, b)
}

func checkExtendedGcd(t *testing.T, a, b int64) {
	t.Helper()
	//
	var (
		x, y    = big.NewInt(a), big.NewInt(b)
		g, s, u = ExtendedGcd(x, y)
		lhs     big.Int
		rhs     big.Int
	)
	//
	lhs.Mul(s, x)
	rhs.Mul(u, y)
	lhs.Add(&lhs, &rhs)
	//
	if lhs.Cmp(g) != 0 {
		t.Errorf("%s*%d + %s*%d != %s", s.String(), a, u.String(), b, g.String())
	} else if g.Cmp(Gcd(x, y)) != 0 {
		t.Errorf("extended gcd(%d,%d) disagrees with gcd", a, b)
	}
}

func checkFloorDivMod(t *testing.T, n, d, eq, er int64) {
	t.Helper()
	//
	q, r := FloorDivMod(big.NewInt(n), big.NewInt(d))
	//
	require.Equal(t, eq, q.Int64(), "quotient of %d / %d", n, d)
	require.Equal(t, er, r.Int64(), "remainder of %d / %d", n, d)
}
