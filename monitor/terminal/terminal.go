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

// Package terminal defines the operations required by the monitor's command
// line interface. Implementations can be found in the plainterm and colorterm
// sub-packages.
package terminal

// UserInterrupt is returned by TermRead() when the user has interrupted input,
// with ctrl-c for example.
const UserInterrupt = "user interrupt"

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the number of characters read into the buffer, or an
	// error, when completed. the count includes the line terminator.
	TermRead(buffer []byte, prompt string) (int, error)

	// IsInteractive should return true for implementations that expect a
	// human at the other end.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations will need to do
	// anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// making sure the terminal is returned to canonical mode.
	CleanUp()
}
