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

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/consensys/go-diophant/pkg/certify"
	"github.com/consensys/go-diophant/pkg/dioph"
	"github.com/consensys/go-diophant/pkg/script"
	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the valid and invalid solver scripts are found.
const TestDir = "../../testdata"

// ErrorPrefix identifies comment lines in an invalid script which describe an
// expected error.  These have the form ";;error:LINE:MESSAGE".
const ErrorPrefix = ";;error:"

// CheckValid checks that a given script in the valid directory runs to
// completion, meeting every expectation it states.  Conflicts are certified
// along the way.
func CheckValid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/valid/%s.lisp", TestDir, test)
		srcfile  = readSourceFile(t, filename)
	)
	// Enable testing each script in parallel
	t.Parallel()
	//
	outcomes, errs := runScript(srcfile)
	//
	for _, err := range errs {
		t.Errorf("%s:%d: %s", filename, err.FirstEnclosingLine().Number(), err.Message())
	}
	// Sanity check script actually checked something
	if len(errs) == 0 && len(outcomes) == 0 {
		t.Fatalf("%s has no outcomes", filename)
	}
}

// CheckInvalid checks that a given script in the invalid directory is rejected
// with exactly the errors it describes.
func CheckInvalid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/invalid/%s.lisp", TestDir, test)
		srcfile  = readSourceFile(t, filename)
		expected = extractExpectedErrors(t, srcfile)
	)
	// Enable testing each script in parallel
	t.Parallel()
	//
	_, errs := runScript(srcfile)
	//
	if len(errs) == 0 {
		t.Fatalf("%s should not have succeeded", filename)
	}
	// Construct actual errors for comparison
	actual := make([]expectedError, len(errs))
	//
	for i, err := range errs {
		actual[i] = expectedError{err.FirstEnclosingLine().Number(), err.Message()}
	}
	//
	failed := false
	msg := fmt.Sprintf("Error %s\n", filename)
	//
	for i := 0; i < max(len(actual), len(expected)); i++ {
		if i < len(actual) && i < len(expected) && actual[i] == expected[i] {
			continue
		}
		//
		failed = true
		//
		if i < len(actual) {
			msg = fmt.Sprintf("%s unexpected error %d:%s\n", msg, actual[i].line, actual[i].msg)
		}
		//
		if i < len(expected) {
			msg = fmt.Sprintf("%s   expected error %d:%s\n", msg, expected[i].line, expected[i].msg)
		}
	}
	//
	if failed {
		t.Fatal(msg)
	}
}

// Parse and then run a given script, returning the outcomes and any errors
// arising.
func runScript(srcfile *source.File) ([]script.Outcome, []source.SyntaxError) {
	var env = symbol.NewTable()
	//
	program, errs := script.Parse(srcfile, env)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	runner := script.NewRunner(env, dioph.DefaultConfig(), 0, certify.DefaultRounds)
	//
	return runner.Run(program)
}

type expectedError struct {
	line int
	msg  string
}

func extractExpectedErrors(t *testing.T, srcfile *source.File) []expectedError {
	var (
		errs  []expectedError
		lines = strings.Split(string(srcfile.Contents()), "\n")
	)
	//
	for _, line := range lines {
		if !strings.HasPrefix(line, ErrorPrefix) {
			continue
		}
		//
		split := strings.SplitN(strings.TrimPrefix(line, ErrorPrefix), ":", 2)
		//
		if len(split) != 2 {
			t.Fatalf("malformed error annotation %q", line)
		}
		//
		number, err := strconv.Atoi(split[0])
		//
		if err != nil {
			t.Fatalf("malformed error annotation %q", line)
		}
		//
		// Errors are never reported against comments
		if number < 1 || number > len(lines) || strings.HasPrefix(lines[number-1], ";") {
			t.Fatalf("error annotation %q does not identify a command line", line)
		}
		//
		errs = append(errs, expectedError{number, strings.TrimRight(split[1], "\r")})
	}
	//
	return errs
}

func readSourceFile(t *testing.T, filename string) *source.File {
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	//
	return source.NewSourceFile(filename, bytes)
}
