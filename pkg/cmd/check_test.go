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
package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-diophant/pkg/config"
	"github.com/consensys/go-diophant/pkg/util/termio"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func Test_Check_01(t *testing.T) {
	filename := writeScript(t, "sat.lisp", `(assert e1 (= (- x y) 0))
(assert e2 (= (+ x y) 6))
(check sat)
(solutions)
`)
	output := checkOk(t, config.Default(), false, filename)
	//
	require.Equal(t, fmt.Sprintf("%s:3: sat\n%s:4: solutions [x = y, y = 3]\n", filename, filename), output)
}

func Test_Check_02(t *testing.T) {
	filename := writeScript(t, "unsat.lisp", `(assert e1 (= x y))
(assert e2 (= (+ x y) 5))
(check unsat)
(cut some)
`)
	output := checkOk(t, config.Default(), false, filename)
	//
	require.Contains(t, output, filename+":3: unsat (and e1 e2)")
	require.Contains(t, output, filename+":4: cut ")
}

func Test_Check_03(t *testing.T) {
	filename := writeScript(t, "fail.lisp", "(assert e1 (= x 1))\n(check unsat)\n")
	output := checkFail(t, config.Default(), filename)
	//
	require.Contains(t, output, "expected unsat")
}

func Test_Check_04(t *testing.T) {
	filename := writeScript(t, "syntax.lisp", "(frobnicate)\n")
	output := checkFail(t, config.Default(), filename)
	//
	require.True(t, strings.HasPrefix(output, filename+":1:"))
	require.Contains(t, output, "(frobnicate)\n")
	require.Contains(t, output, "^")
}

func Test_Check_05(t *testing.T) {
	var buffer bytes.Buffer
	//
	_, err := checkFiles(&buffer, config.Default(), []string{filepath.Join(t.TempDir(), "missing.lisp")},
		termio.NewHighlighter(false), false)
	//
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading scripts")
}

func Test_Check_06(t *testing.T) {
	first := writeScript(t, "first.lisp", "(assert e1 (= (* 2 x) 1))\n(check unsat)\n")
	second := writeScript(t, "second.lisp", "(assert e1 (= x 1))\n(check sat)\n")
	output := checkOk(t, config.Default(), true, first, second)
	//
	require.Contains(t, output, "# TYPE diophant_solver_calls_total counter")
	require.Contains(t, output, fmt.Sprintf("diophant_solver_calls_total{driver=\"conflict\",script=%q} 1", first))
	require.Contains(t, output, fmt.Sprintf("diophant_solver_outcomes_total{driver=\"conflict\",script=%q} 1", first))
	require.Contains(t, output, fmt.Sprintf("diophant_solver_outcomes_total{driver=\"conflict\",script=%q} 0", second))
}

func Test_Check_07(t *testing.T) {
	var (
		buffer   bytes.Buffer
		filename = writeScript(t, "colour.lisp", "(assert e1 (= x 1))\n(check sat)\n")
	)
	//
	ok, err := checkFiles(&buffer, config.Default(), []string{filename}, termio.NewHighlighter(true), false)
	//
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, buffer.String(), "\033[1;32msat\033[0m")
}

func Test_Check_08(t *testing.T) {
	settings := parseSettings(t, "--depth=3", "--no-decompose")
	//
	require.Equal(t, uint(3), settings.Solver.Depth)
	require.False(t, settings.Solver.Decompose)
	require.Equal(t, config.Default().Solver.GrowthAllowance, settings.Solver.GrowthAllowance)
	require.Equal(t, config.Default().Certify, settings.Certify)
}

func Test_Check_09(t *testing.T) {
	filename := writeScript(t, "config.yaml", "solver:\n  growth_allowance: 5\n  depth: 2\ncertify:\n  rounds: 7\n")
	settings := parseSettings(t, "--config", filename, "--growth", "1")
	// Flags override the configuration file
	require.Equal(t, uint(1), settings.Solver.GrowthAllowance)
	require.Equal(t, uint(2), settings.Solver.Depth)
	require.Equal(t, uint(7), settings.Certify.Rounds)
	require.True(t, settings.Solver.Decompose)
}

// ===================================================================
// Test Helpers
// ===================================================================

func writeScript(t *testing.T, name string, contents string) string {
	t.Helper()
	//
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0600))
	//
	return filename
}

func checkOk(t *testing.T, settings config.Config, withMetrics bool, filenames ...string) string {
	t.Helper()
	//
	var buffer bytes.Buffer
	//
	ok, err := checkFiles(&buffer, settings, filenames, termio.NewHighlighter(false), withMetrics)
	//
	require.NoError(t, err)
	require.True(t, ok, buffer.String())
	//
	return buffer.String()
}

func checkFail(t *testing.T, settings config.Config, filenames ...string) string {
	t.Helper()
	//
	var buffer bytes.Buffer
	//
	ok, err := checkFiles(&buffer, settings, filenames, termio.NewHighlighter(false), false)
	//
	require.NoError(t, err)
	require.False(t, ok, buffer.String())
	//
	return buffer.String()
}

func parseSettings(t *testing.T, args ...string) config.Config {
	t.Helper()
	//
	cmd := &cobra.Command{Use: "check"}
	addCheckFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	//
	return checkSettings(cmd)
}
