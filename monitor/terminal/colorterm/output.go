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

package colorterm

import (
	"github.com/jetsetilly/gopher64/monitor/terminal"
	"github.com/jetsetilly/gopher64/monitor/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if style != terminal.StyleInput {
		ct.TermPrint("\r")
	}

	switch style {
	case terminal.StylePrompt:
		ct.TermPrint(ansi.PenStyles["bold"])
	case terminal.StyleCPUStep:
		ct.TermPrint(ansi.PenColor["yellow"])
	case terminal.StyleMachineInfo:
		ct.TermPrint(ansi.PenColor["cyan"])
	case terminal.StyleFeedback:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleHelp:
		ct.TermPrint(ansi.DimPens["white"])
		ct.TermPrint("  ")
	case terminal.StyleError:
		ct.TermPrint(ansi.PenColor["red"])
		ct.TermPrint("* ")
	}

	ct.TermPrint(s)
	ct.TermPrint(ansi.NormalPen)

	// add a newline if print style is anything other than prompt or input
	if !style.IsPrompt() && style != terminal.StyleInput {
		ct.TermPrint("\n")
	}
}
