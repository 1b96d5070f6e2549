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

package hardware

import (
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
)

// StopReason explains why a burst ended.
type StopReason int

// List of valid StopReason values.
const (
	// the cycle budget was spent. the normal way for a burst to end
	StopBudget StopReason = iota

	// the program counter reached a registered breakpoint
	StopBreakpoint

	// the opcode at the program counter is not part of the documented
	// instruction set. the error returned alongside carries the byte and
	// its address
	StopIllegalOpcode

	// an interrupt or reset request was raised during the burst. the
	// request is serviced at the start of the next burst
	StopInterrupt
)

func (r StopReason) String() string {
	switch r {
	case StopBudget:
		return "cycle budget spent"
	case StopBreakpoint:
		return "breakpoint"
	case StopIllegalOpcode:
		return "illegal opcode"
	case StopInterrupt:
		return "interrupt pending"
	}

	return "unknown stop reason"
}

// serviceable returns true when a pending request will actually be acted
// on at the next boundary. a masked IRQ is pending but not serviceable and
// must not stop the burst, or the machine would never move again.
func (c64 *C64) serviceable() bool {
	if c64.pendingReset || c64.pendingNMI {
		return true
	}
	return c64.pendingIRQ && !c64.CPU.Status.InterruptDisable
}

// service the pending requests, in priority order: reset beats everything,
// NMI beats IRQ. a losing IRQ stays pending for a later boundary.
func (c64 *C64) service(cycle func() error) error {
	if c64.pendingReset {
		return c64.Reset(false)
	}

	if c64.pendingNMI {
		c64.pendingNMI = false
		return c64.CPU.ServiceInterrupt(cpubus.NMI, cycle)
	}

	if c64.pendingIRQ && !c64.CPU.Status.InterruptDisable {
		c64.pendingIRQ = false
		return c64.CPU.ServiceInterrupt(cpubus.IRQ, cycle)
	}

	return nil
}

// RunBurst executes instructions until the cycle budget is spent or
// something stops it first: a breakpoint, an illegal opcode, or an
// interrupt request raised mid-burst. The number of cycles actually
// executed is returned in every case.
//
// Pending interrupt requests are serviced once, at the start of the burst.
// A request raised during the burst (by a write hook, for instance) stops
// the burst instead; the suspension point between bursts is where external
// stimulus belongs.
//
// The burst only ever ends on an instruction boundary. On return the VIC's
// raster position has been brought up to date with the cycle count.
func (c64 *C64) RunBurst(maxCycles int) (int, StopReason, error) {
	cycles := 0
	cycle := func() error {
		cycles++
		c64.Cycles++
		return nil
	}

	defer func() {
		c64.VIC.UpdateRaster(c64.Cycles)
	}()

	if err := c64.service(cycle); err != nil {
		return cycles, StopInterrupt, err
	}

	first := true
	for cycles < maxCycles {
		if c64.serviceable() {
			return cycles, StopInterrupt, nil
		}

		// the trap table is consulted at the same point as breakpoints,
		// before the fetch. a trap consumes no cycles
		handled, err := c64.Kernal.Service(c64.CPU.PC.Address())
		if err != nil {
			return cycles, StopInterrupt, err
		}
		if handled {
			continue
		}

		// the breakpoint check is skipped for the first instruction so
		// that a burst resumed from a breakpoint can leave it behind
		if !first && c64.breakpoints[c64.CPU.PC.Address()] {
			return cycles, StopBreakpoint, nil
		}
		first = false

		if err := c64.CPU.ExecuteInstruction(cycle); err != nil {
			if curated.Has(err, cpu.IllegalOpcode) {
				return cycles, StopIllegalOpcode, err
			}
			return cycles, StopInterrupt, err
		}
	}

	return cycles, StopBudget, nil
}

// Step executes a single instruction, servicing any pending interrupt
// request and running any trap first. For the monitor's benefit; burst
// callers use RunBurst.
func (c64 *C64) Step() error {
	cycle := func() error {
		c64.Cycles++
		return nil
	}

	defer func() {
		c64.VIC.UpdateRaster(c64.Cycles)
	}()

	if err := c64.service(cycle); err != nil {
		return err
	}

	handled, err := c64.Kernal.Service(c64.CPU.PC.Address())
	if err != nil || handled {
		return err
	}

	return c64.CPU.ExecuteInstruction(cycle)
}

// Run loops bursts until the continue check says stop. The check runs
// between bursts and receives the reason the last burst ended; errors from
// the burst are returned as is, including the illegal opcode error.
func (c64 *C64) Run(continueCheck func(StopReason) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(StopReason) (bool, error) { return true, nil }
	}

	// a sensible burst length for an uninstrumented run: enough to keep
	// the loop overhead invisible, short enough that the check stays
	// responsive
	const burstCycles = 20000

	for {
		_, reason, err := c64.RunBurst(burstCycles)
		if err != nil {
			return err
		}

		cont, err := continueCheck(reason)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
