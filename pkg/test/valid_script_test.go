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
package test

import "testing"

func Test_Valid_Basic_01(t *testing.T) {
	CheckValid(t, "basic_01")
}

func Test_Valid_Basic_02(t *testing.T) {
	CheckValid(t, "basic_02")
}

func Test_Valid_Basic_03(t *testing.T) {
	CheckValid(t, "basic_03")
}

func Test_Valid_Basic_04(t *testing.T) {
	CheckValid(t, "basic_04")
}

func Test_Valid_Basic_05(t *testing.T) {
	CheckValid(t, "basic_05")
}

func Test_Valid_Basic_06(t *testing.T) {
	CheckValid(t, "basic_06")
}

func Test_Valid_Basic_07(t *testing.T) {
	CheckValid(t, "basic_07")
}

func Test_Valid_Bounds_01(t *testing.T) {
	CheckValid(t, "bounds_01")
}

func Test_Valid_Bounds_02(t *testing.T) {
	CheckValid(t, "bounds_02")
}

func Test_Valid_Cut_01(t *testing.T) {
	CheckValid(t, "cut_01")
}

func Test_Valid_Decomp_01(t *testing.T) {
	CheckValid(t, "decomp_01")
}

func Test_Valid_Decomp_02(t *testing.T) {
	CheckValid(t, "decomp_02")
}

func Test_Valid_Decomp_03(t *testing.T) {
	CheckValid(t, "decomp_03")
}

func Test_Valid_Depth_01(t *testing.T) {
	CheckValid(t, "depth_01")
}

func Test_Valid_Depth_02(t *testing.T) {
	CheckValid(t, "depth_02")
}

func Test_Valid_Scope_01(t *testing.T) {
	CheckValid(t, "scope_01")
}

func Test_Valid_Scope_02(t *testing.T) {
	CheckValid(t, "scope_02")
}

func Test_Valid_Scope_03(t *testing.T) {
	CheckValid(t, "scope_03")
}
