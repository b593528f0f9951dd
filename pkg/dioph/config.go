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
package dioph

// DefaultGrowthAllowance is the number of bits by which derived coefficients
// may exceed the largest coefficient of any input, before any allowance is
// made for search depth.
const DefaultGrowthAllowance = 3

// Config determines how a solver behaves.
type Config struct {
	// Bits by which derived coefficients may outgrow the inputs.
	GrowthAllowance uint
	// Determines whether the conflict driver may decompose equations.  Without
	// decomposition, equations lacking a unit (or implied unit) coefficient
	// are deferred.
	Decompose bool
}

// DefaultConfig returns the default solver configuration.
func DefaultConfig() Config {
	return Config{DefaultGrowthAllowance, true}
}

// BoundParameter supplies the externally controlled search depth which
// loosens the coefficient bound.  This is read once at the start of each
// driver call.
type BoundParameter interface {
	Depth() uint
}

// FixedDepth is a bound parameter which never changes.
type FixedDepth uint

// Depth implementation for BoundParameter interface.
func (p FixedDepth) Depth() uint {
	return uint(p)
}

// DepthFunc adapts a function to the BoundParameter interface.
type DepthFunc func() uint

// Depth implementation for BoundParameter interface.
func (p DepthFunc) Depth() uint {
	return p()
}
