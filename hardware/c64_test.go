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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/prg"
	"github.com/jetsetilly/gopher64/test"
)

func equateReason(t *testing.T, reason hardware.StopReason, expected hardware.StopReason) {
	t.Helper()
	if reason != expected {
		t.Errorf("burst stopped with %q - wanted %q", reason, expected)
	}
}

func newMachine(t *testing.T) *hardware.C64 {
	t.Helper()

	c64, err := hardware.NewC64()
	test.ExpectedSuccess(t, err)
	err = c64.Reset(true)
	test.ExpectedSuccess(t, err)

	return c64
}

// poke a program into memory and point the program counter at it.
func program(t *testing.T, c64 *hardware.C64, origin uint16, bytes ...uint8) {
	t.Helper()

	for i, b := range bytes {
		test.ExpectedSuccess(t, c64.Mem.Poke(origin+uint16(i), b))
	}
	test.ExpectedSuccess(t, c64.CPU.LoadPC(origin))
}

func TestBurstBudget(t *testing.T) {
	c64 := newMachine(t)

	// JMP to itself. the tightest of infinite loops
	program(t, c64, 0x1000, 0x4c, 0x00, 0x10)

	cycles, reason, err := c64.RunBurst(300)
	test.ExpectedSuccess(t, err)
	equateReason(t, reason, hardware.StopBudget)

	// the budget only ever overruns by part of an instruction
	if cycles < 300 || cycles > 302 {
		t.Errorf("expected 300-302 cycles, got %d", cycles)
	}
	test.Equate(t, c64.Cycles, int64(cycles))
}

func TestBurstBreakpoint(t *testing.T) {
	c64 := newMachine(t)

	// a row of NOPs
	program(t, c64, 0x1000, 0xea, 0xea, 0xea, 0xea)
	c64.SetBreakpoint(0x1002)

	cycles, reason, err := c64.RunBurst(1000)
	test.ExpectedSuccess(t, err)
	equateReason(t, reason, hardware.StopBreakpoint)
	test.Equate(t, c64.CPU.PC.Address(), 0x1002)
	test.Equate(t, cycles, 4)

	// resuming from the breakpoint executes the instruction under it
	// rather than stopping again
	cycles, reason, err = c64.RunBurst(2)
	test.ExpectedSuccess(t, err)
	equateReason(t, reason, hardware.StopBudget)
	test.Equate(t, cycles, 2)
	test.Equate(t, c64.CPU.PC.Address(), 0x1003)
}

func TestBurstIllegalOpcode(t *testing.T) {
	c64 := newMachine(t)

	// 0xff is not a documented opcode
	program(t, c64, 0x1000, 0xff)

	a := c64.CPU.A.Value()
	x := c64.CPU.X.Value()
	y := c64.CPU.Y.Value()
	sp := c64.CPU.SP.Value()

	_, reason, err := c64.RunBurst(1000)
	test.ExpectedFailure(t, err)
	equateReason(t, reason, hardware.StopIllegalOpcode)

	// nothing mutated beyond the program counter advance needed to report
	// the faulting address
	test.Equate(t, c64.CPU.A.Value(), a)
	test.Equate(t, c64.CPU.X.Value(), x)
	test.Equate(t, c64.CPU.Y.Value(), y)
	test.Equate(t, c64.CPU.SP.Value(), sp)
	test.Equate(t, c64.CPU.PC.Address(), 0x1001)
}

func TestIRQ(t *testing.T) {
	c64 := newMachine(t)

	// handler address in the IRQ vector
	test.ExpectedSuccess(t, c64.Mem.Poke(0xfffe, 0x00))
	test.ExpectedSuccess(t, c64.Mem.Poke(0xffff, 0x20))

	program(t, c64, 0x1000, 0xea, 0xea)
	c64.CPU.Status.InterruptDisable = false

	c64.RaiseIRQ()

	sp := c64.CPU.SP.Value()
	cycles, _, err := c64.RunBurst(7)
	test.ExpectedSuccess(t, err)

	// the interrupt sequence pushed the program counter and the flags and
	// jumped through the vector
	test.Equate(t, c64.CPU.PC.Address(), 0x2000)
	test.Equate(t, c64.CPU.SP.Value(), sp-3)
	test.Equate(t, c64.CPU.Status.InterruptDisable, true)
	test.Equate(t, cycles, 7)
}

func TestIRQMasked(t *testing.T) {
	c64 := newMachine(t)

	program(t, c64, 0x1000, 0xea, 0xea)
	c64.CPU.Status.InterruptDisable = true

	c64.RaiseIRQ()

	// the masked IRQ neither services nor stops the burst
	_, reason, err := c64.RunBurst(4)
	test.ExpectedSuccess(t, err)
	equateReason(t, reason, hardware.StopBudget)
	test.Equate(t, c64.CPU.PC.Address(), 0x1002)
}

func TestIRQUnmaskedMidBurst(t *testing.T) {
	c64 := newMachine(t)

	test.ExpectedSuccess(t, c64.Mem.Poke(0xfffe, 0x00))
	test.ExpectedSuccess(t, c64.Mem.Poke(0xffff, 0x20))

	// CLI then NOPs. the pending IRQ becomes serviceable after the CLI
	// and stops the burst at the next boundary
	program(t, c64, 0x1000, 0x58, 0xea, 0xea)
	c64.CPU.Status.InterruptDisable = true

	c64.RaiseIRQ()

	_, reason, err := c64.RunBurst(1000)
	test.ExpectedSuccess(t, err)
	equateReason(t, reason, hardware.StopInterrupt)
	test.Equate(t, c64.CPU.PC.Address(), 0x1001)

	// the next burst services it
	_, _, err = c64.RunBurst(7)
	test.ExpectedSuccess(t, err)
	test.Equate(t, c64.CPU.PC.Address(), 0x2000)
}

func TestNMIBeatsIRQ(t *testing.T) {
	c64 := newMachine(t)

	test.ExpectedSuccess(t, c64.Mem.Poke(0xfffa, 0x00))
	test.ExpectedSuccess(t, c64.Mem.Poke(0xfffb, 0x30))
	test.ExpectedSuccess(t, c64.Mem.Poke(0xfffe, 0x00))
	test.ExpectedSuccess(t, c64.Mem.Poke(0xffff, 0x20))

	program(t, c64, 0x1000, 0xea)
	c64.CPU.Status.InterruptDisable = false

	c64.RaiseIRQ()
	c64.RaiseNMI()

	// NMI wins. servicing sets the interrupt disable flag, so the IRQ
	// stays pending and masked
	_, _, err := c64.RunBurst(7)
	test.ExpectedSuccess(t, err)
	test.Equate(t, c64.CPU.PC.Address(), 0x3000)
	test.Equate(t, c64.CPU.Status.InterruptDisable, true)

	// an RTI equivalent: clear the mask and the IRQ is serviced in turn
	c64.CPU.Status.InterruptDisable = false
	_, _, err = c64.RunBurst(7)
	test.ExpectedSuccess(t, err)
	test.Equate(t, c64.CPU.PC.Address(), 0x2000)
}

func TestRaiseReset(t *testing.T) {
	c64 := newMachine(t)

	// reset vector
	test.ExpectedSuccess(t, c64.Mem.Poke(0xfffc, 0x00))
	test.ExpectedSuccess(t, c64.Mem.Poke(0xfffd, 0x40))

	program(t, c64, 0x1000, 0xea, 0xea)
	c64.RaiseReset()

	_, _, err := c64.RunBurst(10)
	test.ExpectedSuccess(t, err)
	test.Equate(t, c64.CPU.PC.Address(), 0x4000)
}

func TestLoadPRG(t *testing.T) {
	c64 := newMachine(t)

	p := &prg.PRG{Origin: prg.BasicOrigin, Data: []uint8{0x0b, 0x08, 0x0a, 0x00, 0x99, 0x00, 0x00, 0x00}}
	err := c64.LoadPRG(p)
	test.ExpectedSuccess(t, err)

	b, _ := c64.Mem.Peek(0x0801)
	test.Equate(t, b, 0x0b)

	// the BASIC variable pointers sit past the program
	end := p.Memtop()
	lo, _ := c64.Mem.Peek(0x2d)
	hi, _ := c64.Mem.Peek(0x2e)
	test.Equate(t, uint16(lo)|uint16(hi)<<8, end)
}

func TestRunContinueCheck(t *testing.T) {
	c64 := newMachine(t)

	program(t, c64, 0x1000, 0x4c, 0x00, 0x10)

	bursts := 0
	err := c64.Run(func(reason hardware.StopReason) (bool, error) {
		equateReason(t, reason, hardware.StopBudget)
		bursts++
		return bursts < 3, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, bursts, 3)
}
