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

package terminal

// Style is used to identify the category of text being sent to the
// Output.TermPrintLine() function. the terminal implementation can interpret
// this how it sees fit - the most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back
	StyleInput Style = iota

	// the prompt. printed without a trailing newline
	StylePrompt

	// the result of a cpu step. ie. a disassembled instruction and the
	// machine state that results from it
	StyleCPUStep

	// information about the machine being emulated
	StyleMachineInfo

	// information from the monitor itself rather than the emulated machine
	StyleFeedback

	// help text
	StyleHelp

	// error messages
	StyleError
)

// IsPrompt returns true if the style should be printed without a trailing
// newline.
func (sty Style) IsPrompt() bool {
	return sty == StylePrompt
}
