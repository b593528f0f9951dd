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
package termio

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Colour identifies one of the eight standard terminal colours.
type Colour uint

// Standard terminal colours.
const (
	BLACK Colour = iota
	RED
	GREEN
	YELLOW
	BLUE
	MAGENTA
	CYAN
	WHITE
)

// AnsiEscape is an ANSI escape sequence for formatting text in a terminal,
// built from zero or more SGR parameters.
type AnsiEscape struct {
	params []string
}

// ResetAnsiEscape constructs an escape which clears all formatting.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"0"}}
}

// BoldAnsiEscape constructs an escape for bold text.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"1"}}
}

// FgColour adds a foreground colour to this escape.
func (p AnsiEscape) FgColour(col Colour) AnsiEscape {
	return p.with(fmt.Sprintf("%d", 30+col))
}

// BgColour adds a background colour to this escape.
func (p AnsiEscape) BgColour(col Colour) AnsiEscape {
	return p.with(fmt.Sprintf("%d", 40+col))
}

// Build constructs the final escape sequence.
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("\033[%sm", strings.Join(p.params, ";"))
}

func (p AnsiEscape) with(param string) AnsiEscape {
	params := make([]string, len(p.params), len(p.params)+1)
	copy(params, p.params)
	//
	return AnsiEscape{append(params, param)}
}

// Highlighter wraps text in escapes, or leaves it untouched when disabled.
type Highlighter struct {
	enabled bool
}

// NewHighlighter constructs a highlighter which is enabled or not.
func NewHighlighter(enabled bool) Highlighter {
	return Highlighter{enabled}
}

// StdoutHighlighter constructs a highlighter which is enabled only when
// standard output is a terminal.
func StdoutHighlighter() Highlighter {
	return Highlighter{term.IsTerminal(int(os.Stdout.Fd()))}
}

// Enabled determines whether this highlighter emits escapes.
func (p Highlighter) Enabled() bool {
	return p.enabled
}

// Apply formats a given piece of text with a given escape.
func (p Highlighter) Apply(escape AnsiEscape, text string) string {
	if !p.enabled {
		return text
	}
	//
	return escape.Build() + text + ResetAnsiEscape().Build()
}

// Colour formats a given piece of text in bold with a given foreground colour.
func (p Highlighter) Colour(col Colour, text string) string {
	return p.Apply(BoldAnsiEscape().FgColour(col), text)
}
