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
	"fmt"
	"os"
	"slices"

	"github.com/pkg/errors"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		//
		files[i] = *NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// Line is a single physical line of a source file, identified by its number
// (counting from 1) and its span within the file.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line, excluding its terminator.
func (p Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a file
// has line number 1.
func (p Line) Number() int {
	return p.number
}

// Start returns the index of the first character of this line in the file.
func (p Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p Line) Length() int {
	return p.span.Length()
}

// File is a named source text, such as a script read from disk.  The start of
// every line is indexed on construction so that positions can be mapped to
// lines without rescanning the text.
type File struct {
	filename string
	contents []rune
	// Index of the first character of each line
	starts []int
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	var (
		contents = []rune(string(bytes))
		starts   = []int{0}
	)
	//
	for i, c := range contents {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	//
	return &File{filename, contents, starts}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Lines returns the number of physical lines in this file.
func (s *File) Lines() int {
	return len(s.starts)
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine returns the line containing the start of a given
// span.  A span starting beyond the end of the file maps to the last line.
// The line need not enclose the whole span.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	index := min(span.start, len(s.contents))
	// Find last line starting at or before index
	n, found := slices.BinarySearch(s.starts, index)
	//
	if !found {
		n--
	}
	//
	end := len(s.contents)
	//
	if n+1 < len(s.starts) {
		// Exclude newline
		end = s.starts[n+1] - 1
	}
	//
	return Line{s.contents, Span{s.starts[n], end}, n + 1}
}

// SyntaxError is a structured error which retains the span of the original
// text where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	line := p.FirstEnclosingLine()
	//
	return fmt.Sprintf("%s:%d: %s", p.srcfile.filename, line.Number(), p.msg)
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
