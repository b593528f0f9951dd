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

import "time"

// Statistics summarises the work done by a solver over its lifetime.  Unlike
// the solver's state, statistics are not rolled back.
type Statistics struct {
	// Number of calls made to each driver
	ConflictCalls uint64
	CutCalls      uint64
	// Number of conflicts and cuts returned
	Conflicts uint64
	Cuts      uint64
	// Number of variables eliminated directly (including via implied gcd)
	Solves uint64
	// Number of successful implied-gcd searches
	Implied uint64
	// Number of decompositions performed
	Decompositions uint64
	// Number of equations parked for exceeding the coefficient bound
	Deferrals uint64
	// Time spent in each driver
	ConflictTime time.Duration
	CutTime      time.Duration
}

// Size is a snapshot of the containers owned by a solver.
type Size struct {
	Trail         uint
	Inputs        uint
	Substitutions uint
	Deferred      uint
}
