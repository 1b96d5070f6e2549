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
	"fmt"

	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/iec"
	"github.com/jetsetilly/gopher64/hardware/kernal"
	"github.com/jetsetilly/gopher64/hardware/keyboard"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/hardware/vic"
	"github.com/jetsetilly/gopher64/prg"
)

// C64 is the main container for the emulated components of the machine.
type C64 struct {
	CPU      *cpu.CPU
	Mem      *memory.Memory
	VIC      *vic.VIC
	Keyboard *keyboard.Keyboard

	// the serial bus and the trap layer that redirects the KERNAL's file
	// API onto it
	Bus    *iec.Bus
	Kernal *kernal.Kernal

	// number of cycles the machine has executed since power on
	Cycles int64

	// addresses the driver stops at before fetching
	breakpoints map[uint16]bool

	// interrupt requests raised by external stimulus, serviced at the
	// next instruction boundary
	pendingIRQ   bool
	pendingNMI   bool
	pendingReset bool
}

// NewC64 creates a new C64 and everything associated with the hardware. It
// is used for all aspects of the emulation: the monitor, the terminal
// front-end and the performance modes.
func NewC64() (*C64, error) {
	c64 := &C64{
		breakpoints: make(map[uint16]bool),
	}

	c64.Mem = memory.NewMemory()
	c64.CPU = cpu.NewCPU(c64.Mem)
	c64.VIC = vic.NewVIC(c64.Mem)
	c64.Keyboard = keyboard.NewKeyboard(c64.Mem)
	c64.Bus = iec.NewBus()
	c64.Kernal = kernal.NewKernal(c64.Mem, c64.CPU, c64.Bus)

	return c64, nil
}

// Reset the machine. A cold reset is the power-on state; a warm reset is
// the reset button. Either way the program counter is loaded from the
// reset vector, which means a ROM must be mapped over the vector for the
// machine to go anywhere useful.
func (c64 *C64) Reset(cold bool) error {
	c64.Mem.Reset(cold)
	c64.VIC.Reset()
	c64.Keyboard.Reset()
	c64.Bus.Reset()
	c64.Kernal.Reset()

	c64.CPU.Reset()
	if err := c64.CPU.LoadPCIndirect(cpubus.Reset); err != nil {
		return err
	}

	c64.pendingIRQ = false
	c64.pendingNMI = false
	c64.pendingReset = false

	if cold {
		c64.Cycles = 0
	}

	return nil
}

func (c64 *C64) String() string {
	return fmt.Sprintf("%s  cycles=%d", c64.CPU, c64.Cycles)
}

// RaiseIRQ requests a maskable interrupt. The request is a level: it stays
// pending until serviced, and servicing waits for the interrupt disable
// flag to clear.
func (c64 *C64) RaiseIRQ() {
	c64.pendingIRQ = true
}

// RaiseNMI requests a non-maskable interrupt. Serviced at the next
// instruction boundary regardless of the interrupt disable flag.
func (c64 *C64) RaiseNMI() {
	c64.pendingNMI = true
}

// RaiseReset requests a warm reset. Takes effect at the next instruction
// boundary.
func (c64 *C64) RaiseReset() {
	c64.pendingReset = true
}

// SetBreakpoint registers an address the driver will stop at before
// fetching.
func (c64 *C64) SetBreakpoint(address uint16) {
	c64.breakpoints[address] = true
}

// ClearBreakpoint removes a breakpoint. Clearing an address that isn't a
// breakpoint does nothing.
func (c64 *C64) ClearBreakpoint(address uint16) {
	delete(c64.breakpoints, address)
}

// Breakpoints returns the registered breakpoint addresses in no particular
// order.
func (c64 *C64) Breakpoints() []uint16 {
	list := make([]uint16, 0, len(c64.breakpoints))
	for a := range c64.breakpoints {
		list = append(list, a)
	}
	return list
}

// LoadPRG writes a program into memory through the bus, hooks observed.
// Programs loading at the BASIC start address also get the BASIC program
// pointers set, so a subsequent RUN finds them.
func (c64 *C64) LoadPRG(p *prg.PRG) error {
	for i, b := range p.Data {
		if err := c64.Mem.Write(p.Origin+uint16(i), b); err != nil {
			return err
		}
	}

	if p.IsBasic() {
		end := p.Memtop()

		// TXTTAB stays at the BASIC start; VARTAB, ARYTAB and STREND all
		// point past the program
		if err := c64.Mem.Write(0x2b, uint8(p.Origin)); err != nil {
			return err
		}
		if err := c64.Mem.Write(0x2c, uint8(p.Origin>>8)); err != nil {
			return err
		}
		for _, a := range []uint16{0x2d, 0x2f, 0x31} {
			if err := c64.Mem.Write(a, uint8(end)); err != nil {
				return err
			}
			if err := c64.Mem.Write(a+1, uint8(end>>8)); err != nil {
				return err
			}
		}
	}

	return nil
}
