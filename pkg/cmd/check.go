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
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-diophant/pkg/config"
	"github.com/consensys/go-diophant/pkg/metrics"
	"github.com/consensys/go-diophant/pkg/script"
	"github.com/consensys/go-diophant/pkg/symbol"
	"github.com/consensys/go-diophant/pkg/util/source"
	"github.com/consensys/go-diophant/pkg/util/termio"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file1.lisp file2.lisp ...",
	Short: "check one or more solver scripts.",
	Long: `Run each solver script against a fresh solver, reporting the outcome of
every check, cut and solutions command.  Scripts which fail an expectation (or
contain syntax errors) are reported and cause a non-zero exit code.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		settings := checkSettings(cmd)
		// Configure log level
		log.SetLevel(settings.LogLevel())
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		ok, err := checkFiles(os.Stdout, settings, args, termio.StdoutHighlighter(), GetFlag(cmd, "metrics"))
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		} else if !ok {
			os.Exit(4)
		}
	},
}

// Determine the settings for a check, starting from the configuration file (if
// given) and then applying any flags explicitly set.
func checkSettings(cmd *cobra.Command) config.Config {
	var (
		settings = config.Default()
		flags    = cmd.Flags()
		err      error
	)
	//
	if filename := GetString(cmd, "config"); filename != "" {
		if settings, err = config.Load(filename); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	if flags.Changed("depth") {
		settings.Solver.Depth = GetUint(cmd, "depth")
	}
	//
	if flags.Changed("growth") {
		settings.Solver.GrowthAllowance = GetUint(cmd, "growth")
	}
	//
	if GetFlag(cmd, "no-decompose") {
		settings.Solver.Decompose = false
	}
	//
	if flags.Changed("certify") {
		settings.Certify.Rounds = GetUint(cmd, "certify")
	}
	//
	return settings
}

// Check a given set of script files, writing outcomes and errors to a given
// writer.  This returns false if any script failed, or an error if the scripts
// could not be read or the metrics written.
func checkFiles(w io.Writer, settings config.Config, filenames []string, hl termio.Highlighter,
	withMetrics bool) (bool, error) {
	//
	var (
		registry = prometheus.NewRegistry()
		ok       = true
	)
	//
	srcfiles, err := source.ReadFiles(filenames...)
	//
	if err != nil {
		return false, errors.Wrap(err, "reading scripts")
	}
	//
	for i := range srcfiles {
		srcfile := &srcfiles[i]
		runner, passed := checkFile(w, settings, srcfile, hl)
		ok = ok && passed
		//
		if withMetrics && runner != nil {
			collector := metrics.NewCollector(runner.Solver(), prometheus.Labels{"script": srcfile.Filename()})
			//
			if err := registry.Register(collector); err != nil {
				return ok, errors.Wrapf(err, "registering metrics for %s", srcfile.Filename())
			}
		}
	}
	//
	if withMetrics {
		if err := metrics.Dump(w, registry); err != nil {
			return ok, errors.Wrap(err, "writing metrics")
		}
	}
	//
	return ok, nil
}

// Check a single script file, returning the runner used (if the script parsed)
// and whether or not it passed.
func checkFile(w io.Writer, settings config.Config, srcfile *source.File, hl termio.Highlighter) (*script.Runner,
	bool) {
	var env = symbol.NewTable()
	//
	log.Debugf("checking script %s", srcfile.Filename())
	//
	program, errs := script.Parse(srcfile, env)
	//
	if len(errs) > 0 {
		printSyntaxErrors(w, errs, hl)
		return nil, false
	}
	//
	runner := script.NewRunner(env, settings.SolverConfig(), settings.Solver.Depth, settings.Certify.Rounds)
	outcomes, errs := runner.Run(program)
	//
	for _, outcome := range outcomes {
		fmt.Fprintf(w, "%s:%d: %s\n", srcfile.Filename(), outcome.Line, colourOutcome(outcome, env, hl))
	}
	//
	printSyntaxErrors(w, errs, hl)
	//
	return runner, len(errs) == 0
}

func colourOutcome(outcome script.Outcome, env *symbol.Table, hl termio.Highlighter) string {
	var (
		text   = outcome.String(env.Name)
		colour = termio.CYAN
	)
	//
	switch outcome.Command.(type) {
	case script.Check:
		colour = termio.GREEN
		//
		if outcome.Conflict.HasValue() {
			colour = termio.RED
		}
	case script.Cut:
		colour = termio.GREEN
		//
		if outcome.Cut.HasValue() {
			colour = termio.YELLOW
		}
	}
	//
	return hl.Colour(colour, text)
}

func printSyntaxErrors(w io.Writer, errs []source.SyntaxError, hl termio.Highlighter) {
	for i := range errs {
		printSyntaxError(w, &errs[i], hl)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addCheckFlags(checkCmd)
}

func addCheckFlags(cmd *cobra.Command) {
	defaults := config.Default()
	//
	cmd.Flags().String("config", "", "read settings from a YAML configuration file")
	cmd.Flags().Uint("depth", defaults.Solver.Depth, "initial depth of the coefficient bound")
	cmd.Flags().Uint("growth", defaults.Solver.GrowthAllowance, "growth allowance of the coefficient bound")
	cmd.Flags().Bool("no-decompose", false, "disable decomposition when solving for conflicts")
	cmd.Flags().Uint("certify", defaults.Certify.Rounds, "rounds for certifying conflicts (0 disables)")
	cmd.Flags().Bool("metrics", false, "write solver metrics after checking")
}
