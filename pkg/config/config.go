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
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/consensys/go-diophant/pkg/certify"
	"github.com/consensys/go-diophant/pkg/dioph"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the contents of a configuration file.
type Config struct {
	Solver  Solver  `yaml:"solver"`
	Certify Certify `yaml:"certify"`
	Log     Log     `yaml:"log"`
}

// Solver configures each solver constructed.
type Solver struct {
	GrowthAllowance uint `yaml:"growth_allowance"`
	Depth           uint `yaml:"depth"`
	Decompose       bool `yaml:"decompose"`
}

// Certify configures the re-checking of conflicts.
type Certify struct {
	Rounds uint `yaml:"rounds"`
}

// Log configures logging.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Solver:  Solver{dioph.DefaultGrowthAllowance, 0, true},
		Certify: Certify{certify.DefaultRounds},
		Log:     Log{log.InfoLevel.String()},
	}
}

// Parse decodes a configuration from YAML.  Fields missing from the input
// take their default values, whilst unknown fields are an error.
func Parse(data []byte) (Config, error) {
	var (
		config  = Default()
		decoder = yaml.NewDecoder(bytes.NewReader(data))
	)
	//
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, errors.Wrap(err, "invalid configuration")
	} else if _, err := log.ParseLevel(config.Log.Level); err != nil {
		return config, errors.Wrap(err, "invalid configuration")
	}
	//
	return config, nil
}

// Load reads a configuration from a given file.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	//
	if err != nil {
		return Default(), errors.Wrapf(err, "reading configuration %s", filename)
	}
	//
	config, err := Parse(data)
	//
	return config, errors.WithMessage(err, filename)
}

// SolverConfig returns the solver configuration.
func (p Config) SolverConfig() dioph.Config {
	return dioph.Config{GrowthAllowance: p.Solver.GrowthAllowance, Decompose: p.Solver.Decompose}
}

// LogLevel returns the configured log level.
func (p Config) LogLevel() log.Level {
	level, err := log.ParseLevel(p.Log.Level)
	//
	if err != nil {
		return log.InfoLevel
	}
	//
	return level
}
