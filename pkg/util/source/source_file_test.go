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
package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_SourceFile_01(t *testing.T) {
	srcfile := NewSourceFile("test.lisp", []byte("(push)\n(assert e1 (= x 1))\n\n(pop)"))
	//
	require.Equal(t, 4, srcfile.Lines())
	checkLine(t, srcfile, 0, 1, "(push)")
	checkLine(t, srcfile, 6, 1, "(push)")
	checkLine(t, srcfile, 7, 2, "(assert e1 (= x 1))")
	checkLine(t, srcfile, 15, 2, "(assert e1 (= x 1))")
	checkLine(t, srcfile, 27, 3, "")
	checkLine(t, srcfile, 28, 4, "(pop)")
	// Beyond the end maps to the last line
	checkLine(t, srcfile, 100, 4, "(pop)")
}

func Test_SourceFile_02(t *testing.T) {
	srcfile := NewSourceFile("test.lisp", []byte("(check)\n"))
	//
	require.Equal(t, 2, srcfile.Lines())
	checkLine(t, srcfile, 3, 1, "(check)")
	checkLine(t, srcfile, 8, 2, "")
}

func Test_SourceFile_03(t *testing.T) {
	srcfile := NewSourceFile("test.lisp", []byte("(push)\n(frobnicate)"))
	err := srcfile.SyntaxError(NewSpan(7, 19), "unknown command")
	line := err.FirstEnclosingLine()
	//
	require.Equal(t, "test.lisp:2: unknown command", err.Error())
	require.Equal(t, 7, line.Start())
	require.Equal(t, 12, line.Length())
	// Lines are usable without binding them first
	require.Equal(t, 2, err.FirstEnclosingLine().Number())
	require.Equal(t, "(frobnicate)", srcfile.FindFirstEnclosingLine(err.Span()).String())
	require.Equal(t, 12, err.Span().Length())
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkLine(t *testing.T, srcfile *File, index int, number int, text string) {
	t.Helper()
	//
	line := srcfile.FindFirstEnclosingLine(NewSpan(index, index))
	//
	require.Equal(t, number, line.Number(), "line number of index %d", index)
	require.Equal(t, text, line.String(), "line text of index %d", index)
}
