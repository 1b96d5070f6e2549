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

// Package monitor implements a machine-code monitor for the emulated
// machine. Inspect and alter registers and memory, disassemble, single-step,
// manage breakpoints, and load and save PRG files, all from the terminal.
package monitor

import (
	"fmt"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/disassembly"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/monitor/terminal"
)

// Monitor is the central monitor type. Create an instance with NewMonitor()
// and start it with the Run() function.
type Monitor struct {
	c64  *hardware.C64
	term terminal.Terminal

	// set to false to cause the input loop to finish on the next iteration
	running bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The terminal is initialised here and cleaned up when Run() returns.
func NewMonitor(c64 *hardware.C64, term terminal.Terminal) (*Monitor, error) {
	mon := &Monitor{
		c64:  c64,
		term: term,
	}

	err := mon.term.Initialise()
	if err != nil {
		return nil, curated.Errorf("monitor: %v", err)
	}

	return mon, nil
}

// Run is the monitor's input loop. It returns when the user quits the
// monitor or when input is exhausted.
func (mon *Monitor) Run() error {
	defer mon.term.CleanUp()

	mon.print(terminal.StyleFeedback, "gopher64 monitor. type HELP for commands")
	mon.print(terminal.StyleMachineInfo, "%s", mon.c64.CPU.String())

	input := make([]byte, 255)
	mon.running = true

	for mon.running {
		prompt := fmt.Sprintf("[ $%04x ] > ", mon.c64.CPU.PC.Address())

		n, err := mon.term.TermRead(input, prompt)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			// input exhausted. not an error for non-interactive terminals
			if !mon.term.IsInteractive() {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		// the returned count includes the line terminator
		if err := mon.parseCommand(string(input[:n-1])); err != nil {
			mon.print(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// print formats the string and sends it to the terminal in the given style.
func (mon *Monitor) print(sty terminal.Style, s string, a ...interface{}) {
	mon.term.TermPrintLine(sty, fmt.Sprintf(s, a...))
}

// printLastStep prints the most recently executed instruction and the
// resulting machine state.
func (mon *Monitor) printLastStep() {
	res := mon.c64.CPU.LastResult
	if res.Defn != nil {
		e := disassembly.Entry{
			Address: res.Address,
			Defn:    res.Defn,
			Operand: res.InstructionData,
		}
		for i := 0; i < res.ByteCount; i++ {
			v, err := mon.c64.Mem.Peek(res.Address + uint16(i))
			if err != nil {
				break
			}
			e.Bytes = append(e.Bytes, v)
		}
		mon.print(terminal.StyleCPUStep, "%s", e.String())
	}
	mon.print(terminal.StyleMachineInfo, "%s", mon.c64.CPU.String())
}
