// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

// Package plainterm implements the Terminal interface for the gopher64
// monitor. It's as simple as simple can be and offers no special features.
// Useful when input is being piped from a script.
package plainterm

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopher64/monitor/terminal"
)

// PlainTerminal is the most basic terminal interface. It keeps the terminal
// in whatever mode it started in, probably cooked mode. As such, it offers
// only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input  io.Reader
	output io.Writer
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return false
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(input []byte, prompt string) (int, error) {
	fmt.Fprint(pt.output, prompt)

	n, err := pt.input.Read(input)
	if err != nil {
		return n, err
	}
	return n, nil
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	}

	fmt.Fprint(pt.output, s)

	if !style.IsPrompt() && style != terminal.StyleInput {
		fmt.Fprintln(pt.output)
	}
}
