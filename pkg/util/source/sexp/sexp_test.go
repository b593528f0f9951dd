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
package sexp

import (
	"testing"

	"github.com/consensys/go-diophant/pkg/util/source"
)

func Test_SExp_01(t *testing.T) {
	checkRoundTrip(t, "x", "x")
	checkRoundTrip(t, "()", "()")
	checkRoundTrip(t, "(+ x 1)", "(+ x 1)")
	checkRoundTrip(t, "  (+   (* 2 x)\n  y) ", "(+ (* 2 x) y)")
	checkRoundTrip(t, "(assert a ; comment\n (= x 1))", "(assert a (= x 1))")
}

func Test_SExp_02(t *testing.T) {
	checkInvalid(t, "(")
	checkInvalid(t, ")")
	checkInvalid(t, "(+ x 1))")
	checkInvalid(t, "x y")
}

func Test_SExp_03(t *testing.T) {
	srcfile := source.NewSourceFile("test", []byte("(push) (check sat)\n; done\n(pop)"))
	terms, srcmap, err := ParseAll(srcfile)
	//
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Message())
	} else if len(terms) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(terms))
	}
	//
	if head := terms[1].AsList().Head(); head != "check" {
		t.Errorf("expected check, got %s", head)
	}
	//
	span := srcmap.Get(terms[2])
	line := srcfile.FindFirstEnclosingLine(span)
	//
	if line.Number() != 3 {
		t.Errorf("expected line 3, got %d", line.Number())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkRoundTrip(t *testing.T, input string, expected string) {
	t.Helper()
	//
	term, _, err := Parse(source.NewSourceFile("test", []byte(input)))
	//
	if err != nil {
		t.Errorf("unexpected error parsing \"%s\": %s", input, err.Message())
	} else if actual := term.String(true); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

func checkInvalid(t *testing.T, input string) {
	t.Helper()
	//
	if _, _, err := Parse(source.NewSourceFile("test", []byte(input))); err == nil {
		t.Errorf("expected error parsing \"%s\"", input)
	}
}
