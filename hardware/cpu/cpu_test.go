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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	rtest "github.com/jetsetilly/gopher64/hardware/cpu/registers/test"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/test"
)

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// SEC; Set Carry Flag
	origin = mem.putInstructions(origin, 0x38)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZC")

	// CLC; Clear Carry Flag
	origin = mem.putInstructions(origin, 0x18)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZc")

	// SED; Set Decimal Flag
	origin = mem.putInstructions(origin, 0xf8)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bDIZc")

	// CLD; Clear Decimal Flag
	origin = mem.putInstructions(origin, 0xd8)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZc")

	// CLI; Clear Interrupt Disable
	origin = mem.putInstructions(origin, 0x58)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdiZc")

	// SEI; Set Interrupt Disable
	origin = mem.putInstructions(origin, 0x78)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZc")

	// CLV; Clear Overflow Flag (already clear)
	origin = mem.putInstructions(origin, 0xb8)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZc")

	// PHP; Push Processor Status
	origin = mem.putInstructions(origin, 0x08)
	step(t, mc)
	rtest.EquateRegisters(t, mc.SP, 252)
	mem.assert(t, 0x01fd, 0x26)

	// PLP; Pull Processor Status
	origin = mem.putInstructions(origin, 0x28)
	step(t, mc)
	rtest.EquateRegisters(t, mc.SP, 253)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZc")
}

func testRegisterArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// CLC; LDA #$10; ADC #$01
	origin = mem.putInstructions(origin, 0x18, 0xa9, 0x10, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x11)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIzc")

	// SEC; SBC #$08
	origin = mem.putInstructions(origin, 0x38, 0xe9, 0x08)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x09)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIzC")

	// CLC; LDA #$7F; ADC #$01; overflow into the sign bit
	origin = mem.putInstructions(origin, 0x18, 0xa9, 0x7f, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x80)
	rtest.EquateRegisters(t, mc.Status, "SV-bdIzc")

	// CLV; LDX #$FE; INX; INX; increment through zero
	origin = mem.putInstructions(origin, 0xb8, 0xa2, 0xfe, 0xe8, 0xe8)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.X, 255)
	step(t, mc)
	rtest.EquateRegisters(t, mc.X, 0)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZc")

	// LDY #$01; DEY; DEY; decrement through zero
	origin = mem.putInstructions(origin, 0xa0, 0x01, 0x88, 0x88)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Y, 0)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZc")
	step(t, mc)
	rtest.EquateRegisters(t, mc.Y, 255)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdIzc")

	// DEX; X wraps around
	origin = mem.putInstructions(origin, 0xca)
	step(t, mc)
	rtest.EquateRegisters(t, mc.X, 255)

	// INY; Y wraps around
	origin = mem.putInstructions(origin, 0xc8)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Y, 0)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZc")
}

func testDecimalMode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// SED; CLC; LDA #$19; ADC #$28; BCD addition 19 + 28 = 47
	//
	// note that the overflow flag is set. the flag has no useful meaning in
	// decimal mode but the value it takes is well defined
	origin = mem.putInstructions(origin, 0xf8, 0x18, 0xa9, 0x19, 0x69, 0x28)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x47)
	rtest.EquateRegisters(t, mc.Status, "sV-bDIzc")

	// SEC; LDA #$46; SBC #$12; BCD subtraction 46 - 12 = 34
	origin = mem.putInstructions(origin, 0x38, 0xa9, 0x46, 0xe9, 0x12)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x34)
	rtest.EquateRegisters(t, mc.Status, "sv-bDIzC")

	// LDA #$12; SBC #$21; BCD subtraction with borrow 12 - 21 = 91
	origin = mem.putInstructions(origin, 0xa9, 0x12, 0xe9, 0x21)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x91)
	rtest.EquateRegisters(t, mc.Status, "Sv-bDIzc")

	// CLD
	origin = mem.putInstructions(origin, 0xd8)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdIzc")
}

func testRegisterBitwiseInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDA #$0F; AND #$06
	origin = mem.putInstructions(origin, 0xa9, 0x0f, 0x29, 0x06)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x06)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIzc")

	// ORA #$10
	origin = mem.putInstructions(origin, 0x09, 0x10)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x16)

	// EOR #$FF
	origin = mem.putInstructions(origin, 0x49, 0xff)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0xe9)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdIzc")

	// ASL; bit 7 moves into carry
	origin = mem.putInstructions(origin, 0x0a)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0xd2)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdIzC")

	// LSR
	origin = mem.putInstructions(origin, 0x4a)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x69)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIzc")

	// ROL; carry is clear
	origin = mem.putInstructions(origin, 0x2a)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0xd2)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdIzc")

	// ROR; carry is clear
	origin = mem.putInstructions(origin, 0x6a)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x69)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIzc")

	// BIT $60; bits 7 and 6 of the tested value move into sign and overflow
	origin = mem.putInstructions(origin, 0x24, 0x60)
	mem.putInstructions(0x0060, 0xc0)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "SV-bdIzc")

	// BIT $61; zero result
	origin = mem.putInstructions(origin, 0x24, 0x61)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZc")

	// ASL $62; read-modify-write form leaves the accumulator alone
	origin = mem.putInstructions(origin, 0x06, 0x62)
	mem.putInstructions(0x0062, 0x81)
	step(t, mc)
	mem.assert(t, 0x0062, 0x02)
	rtest.EquateRegisters(t, mc.A, 0x69)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIzC")
	test.Equate(t, mc.LastResult.Cycles, 5)
}

func testImmediateImplied(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// NOP
	origin = mem.putInstructions(origin, 0xea)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZc")
	test.Equate(t, mc.LastResult.Cycles, 2)

	// LDX #$05; TXA
	origin = mem.putInstructions(origin, 0xa2, 0x05, 0x8a)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 5)

	// TAY
	origin = mem.putInstructions(origin, 0xa8)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Y, 5)

	// TSX; stack pointer is $FD after reset
	origin = mem.putInstructions(origin, 0xba)
	step(t, mc)
	rtest.EquateRegisters(t, mc.X, 253)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdIzc")

	// LDX #$FF; TXS; TXS does not affect the status register
	origin = mem.putInstructions(origin, 0xa2, 0xff, 0x9a)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.SP, 255)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdIzc")

	// LDA #$42; PHA; LDA #$00; PLA
	origin = mem.putInstructions(origin, 0xa9, 0x42, 0x48, 0xa9, 0x00, 0x68)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x01ff, 0x42)
	rtest.EquateRegisters(t, mc.SP, 254)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZc")
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x42)
	rtest.EquateRegisters(t, mc.SP, 255)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIzc")

	// TYA
	origin = mem.putInstructions(origin, 0x98)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 5)
}

func testOtherAddressingModes(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDX #$01
	origin = mem.putInstructions(origin, 0xa2, 0x01)
	step(t, mc)

	// LDA $1000; absolute
	origin = mem.putInstructions(origin, 0xad, 0x00, 0x10)
	mem.putInstructions(0x1000, 0xbe)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0xbe)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// LDA $1000,X; absolute indexed, same page
	origin = mem.putInstructions(origin, 0xbd, 0x00, 0x10)
	mem.putInstructions(0x1001, 0x22)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x22)
	test.Equate(t, mc.LastResult.PageFault, false)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// LDA $10FF,X; absolute indexed, page crossed
	origin = mem.putInstructions(origin, 0xbd, 0xff, 0x10)
	mem.putInstructions(0x1100, 0x0a)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x0a)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// LDY #$02; LDA $10F0,Y
	origin = mem.putInstructions(origin, 0xa0, 0x02, 0xb9, 0xf0, 0x10)
	mem.putInstructions(0x10f2, 0x37)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x37)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// LDA $42; zero page
	origin = mem.putInstructions(origin, 0xa5, 0x42)
	mem.putInstructions(0x0042, 0x0f)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x0f)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// LDA $42,X; zero page indexed
	origin = mem.putInstructions(origin, 0xb5, 0x42)
	mem.putInstructions(0x0043, 0x60)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x60)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// LDX $42,Y; zero page indexed with Y register
	origin = mem.putInstructions(origin, 0xb6, 0x42)
	mem.putInstructions(0x0044, 0x99)
	step(t, mc)
	rtest.EquateRegisters(t, mc.X, 0x99)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// LDX #$FF; LDA $80,X; zero page index wraps within the page
	origin = mem.putInstructions(origin, 0xa2, 0xff, 0xb5, 0x80)
	mem.putInstructions(0x007f, 0x11)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x11)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// LDX #$04; LDA ($50,X); pre-indexed indirect
	origin = mem.putInstructions(origin, 0xa2, 0x04, 0xa1, 0x50)
	mem.putInstructions(0x0054, 0x00, 0x20)
	mem.putInstructions(0x2000, 0x55)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x55)
	test.Equate(t, mc.LastResult.Cycles, 6)

	// LDX #$FF; LDA ($57,X); pointer wraps within the zero page
	origin = mem.putInstructions(origin, 0xa2, 0xff, 0xa1, 0x57)
	mem.putInstructions(0x0056, 0x00, 0x21)
	mem.putInstructions(0x2100, 0x66)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x66)
	test.Equate(t, mc.LastResult.Cycles, 6)

	// LDY #$03; LDA ($58),Y; post-indexed indirect, same page
	origin = mem.putInstructions(origin, 0xa0, 0x03, 0xb1, 0x58)
	mem.putInstructions(0x0058, 0x00, 0x22)
	mem.putInstructions(0x2203, 0x77)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x77)
	test.Equate(t, mc.LastResult.PageFault, false)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// LDY #$FF; LDA ($5A),Y; post-indexed indirect, page crossed
	origin = mem.putInstructions(origin, 0xa0, 0xff, 0xb1, 0x5a)
	mem.putInstructions(0x005a, 0xc0, 0x22)
	mem.putInstructions(0x23bf, 0x88)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x88)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.LastResult.Cycles, 6)
}

func testStorageInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDA #$54; STA $40
	origin = mem.putInstructions(origin, 0xa9, 0x54, 0x85, 0x40)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0040, 0x54)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// LDX #$63; STX $41
	origin = mem.putInstructions(origin, 0xa2, 0x63, 0x86, 0x41)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0041, 0x63)

	// LDY #$72; STY $42
	origin = mem.putInstructions(origin, 0xa0, 0x72, 0x84, 0x42)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0042, 0x72)

	// STA $1000; absolute
	origin = mem.putInstructions(origin, 0x8d, 0x00, 0x10)
	step(t, mc)
	mem.assert(t, 0x1000, 0x54)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// STA $1080,X; write instructions never take the page fault shortcut
	origin = mem.putInstructions(origin, 0x9d, 0x80, 0x10)
	step(t, mc)
	mem.assert(t, 0x10e3, 0x54)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// STA ($50),Y
	origin = mem.putInstructions(origin, 0x91, 0x50)
	mem.putInstructions(0x0050, 0x00, 0x20)
	step(t, mc)
	mem.assert(t, 0x2072, 0x54)
	test.Equate(t, mc.LastResult.Cycles, 6)

	// INC $40
	origin = mem.putInstructions(origin, 0xe6, 0x40)
	step(t, mc)
	mem.assert(t, 0x0040, 0x55)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// DEC $40
	origin = mem.putInstructions(origin, 0xc6, 0x40)
	step(t, mc)
	mem.assert(t, 0x0040, 0x54)

	// INC $1000; absolute
	origin = mem.putInstructions(origin, 0xee, 0x00, 0x10)
	step(t, mc)
	mem.assert(t, 0x1000, 0x55)
	test.Equate(t, mc.LastResult.Cycles, 6)
}

func testBranching(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	// LDA #$01; BNE +2; skipping over a dummy instruction
	mem.putInstructions(0x0000, 0xa9, 0x01, 0xd0, 0x02, 0xa9, 0xff, 0xa9, 0x02)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	test.Equate(t, mc.LastResult.Cycles, 3)
	rtest.EquateRegisters(t, mc.PC, 0x0006)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x02)

	// BEQ +16; not taken
	mem.putInstructions(0x0008, 0xf0, 0x10)
	step(t, mc)
	test.Equate(t, mc.LastResult.BranchSuccess, false)
	test.Equate(t, mc.LastResult.Cycles, 2)
	rtest.EquateRegisters(t, mc.PC, 0x000a)

	// JMP $0300; LDA #$00; BEQ -10; backward branch crossing the page
	mem.putInstructions(0x000a, 0x4c, 0x00, 0x03)
	step(t, mc)
	mem.putInstructions(0x0300, 0xa9, 0x00, 0xf0, 0xf6)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.LastResult.PageFault, true)
	rtest.EquateRegisters(t, mc.PC, 0x02fa)

	// BEQ +8; forward branch crossing the page
	mem.putInstructions(0x02fa, 0xf0, 0x08)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.LastResult.PageFault, true)
	rtest.EquateRegisters(t, mc.PC, 0x0304)

	// SEC; BCS +1; LDA #$21
	mem.putInstructions(0x0304, 0x38, 0xb0, 0x01, 0xff, 0xa9, 0x21)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x0308)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x21)

	// BCC (not taken); BMI (not taken); BPL (taken); BVC (taken); BVS (not taken)
	mem.putInstructions(0x030a, 0x90, 0x02, 0x30, 0x02, 0x10, 0x00, 0x50, 0x00, 0x70, 0x02)
	step(t, mc)
	test.Equate(t, mc.LastResult.BranchSuccess, false)
	step(t, mc)
	test.Equate(t, mc.LastResult.BranchSuccess, false)
	step(t, mc)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	rtest.EquateRegisters(t, mc.PC, 0x0310)
	step(t, mc)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	rtest.EquateRegisters(t, mc.PC, 0x0312)
	step(t, mc)
	test.Equate(t, mc.LastResult.BranchSuccess, false)
	rtest.EquateRegisters(t, mc.PC, 0x0314)
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// JMP $0400
	origin = mem.putInstructions(origin, 0x4c, 0x00, 0x04)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x0400)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// JMP ($0500)
	mem.putInstructions(0x0400, 0x6c, 0x00, 0x05)
	mem.putInstructions(0x0500, 0x00, 0x06)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x0600)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// JMP ($07FF); the infamous JMP bug. the MSB of the target address is
	// read from $0700 and not $0800
	mem.putInstructions(0x0600, 0x6c, 0xff, 0x07)
	mem.putInstructions(0x07ff, 0x34)
	mem.putInstructions(0x0700, 0x12)
	mem.putInstructions(0x0800, 0xff)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x1234)
	test.Equate(t, mc.LastResult.CPUBug, "indirect addressing bug (JMP bug)")
}

func testComparisonInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDA #$40; CMP #$40; equality leaves the accumulator alone
	origin = mem.putInstructions(origin, 0xa9, 0x40, 0xc9, 0x40)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x40)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZC")

	// CMP #$41; accumulator less than operand
	origin = mem.putInstructions(origin, 0xc9, 0x41)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdIzc")

	// CMP #$3F; accumulator greater than operand
	origin = mem.putInstructions(origin, 0xc9, 0x3f)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIzC")

	// LDX #$10; CPX #$10
	origin = mem.putInstructions(origin, 0xa2, 0x10, 0xe0, 0x10)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZC")

	// LDY #$10; CPY #$20
	origin = mem.putInstructions(origin, 0xa0, 0x10, 0xc0, 0x20)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdIzc")

	// CMP $40; zero page
	origin = mem.putInstructions(origin, 0xc5, 0x40)
	mem.putInstructions(0x0040, 0x40)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIZC")
}

func testSubroutineInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// JSR $1000; the stacked return address points at the final byte of the
	// JSR instruction
	origin = mem.putInstructions(origin, 0x20, 0x00, 0x10)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x1000)
	test.Equate(t, mc.LastResult.Cycles, 6)
	rtest.EquateRegisters(t, mc.SP, 251)
	mem.assert(t, 0x01fd, 0x00)
	mem.assert(t, 0x01fc, 0x02)

	// RTS prediction from the stacked address
	addr, ok := mc.PredictRTS()
	test.Equate(t, ok, true)
	test.Equate(t, addr, 0x0003)

	// LDA #$07; RTS
	mem.putInstructions(0x1000, 0xa9, 0x07, 0x60)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x0003)
	test.Equate(t, mc.LastResult.Cycles, 6)
	rtest.EquateRegisters(t, mc.SP, 253)
	rtest.EquateRegisters(t, mc.A, 7)

	// LDA #$09; execution continues after the JSR instruction
	mem.putInstructions(0x0003, 0xa9, 0x09)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 9)
}

func TestCPU(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	testStatusInstructions(t, mc, mem)
	testRegisterArithmetic(t, mc, mem)
	testDecimalMode(t, mc, mem)
	testRegisterBitwiseInstructions(t, mc, mem)
	testImmediateImplied(t, mc, mem)
	testOtherAddressingModes(t, mc, mem)
	testStorageInstructions(t, mc, mem)
	testBranching(t, mc, mem)
	testJumps(t, mc, mem)
	testComparisonInstructions(t, mc, mem)
	testSubroutineInstructions(t, mc, mem)
}

func TestInterrupts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// interrupt vectors
	mem.putInstructions(cpubus.IRQ, 0x00, 0x40)
	mem.putInstructions(cpubus.NMI, 0x00, 0x50)

	// BRK; the stacked status value has the break flag set and the stacked
	// return address points past the padding byte
	mem.putInstructions(0x0000, 0x00, 0xff)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x4000)
	test.Equate(t, mc.LastResult.Cycles, 7)
	rtest.EquateRegisters(t, mc.SP, 250)
	mem.assert(t, 0x01fd, 0x00)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x36)

	// RTI
	mem.putInstructions(0x4000, 0x40)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x0002)
	test.Equate(t, mc.LastResult.Cycles, 6)
	rtest.EquateRegisters(t, mc.SP, 253)
	rtest.EquateRegisters(t, mc.Status, "sv-BdIZc")

	// servicing the IRQ line. the stacked status value has the break flag
	// clear, which is how the KERNAL handler tells the two apart
	err := mc.ServiceInterrupt(cpubus.IRQ, cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	rtest.EquateRegisters(t, mc.PC, 0x4000)
	test.Equate(t, mc.LastResult.Cycles, 7)
	rtest.EquateRegisters(t, mc.SP, 250)
	mem.assert(t, 0x01fd, 0x00)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x26)

	// servicing the NMI line
	err = mc.ServiceInterrupt(cpubus.NMI, cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	rtest.EquateRegisters(t, mc.PC, 0x5000)
	test.Equate(t, mc.LastResult.Cycles, 7)

	// servicing an interrupt mid-instruction is not allowed
	mem.putInstructions(0x5000, 0xea)
	err = mc.ExecuteInstruction(func() error {
		return mc.ServiceInterrupt(cpubus.IRQ, cpu.NilCycleCallback)
	})
	test.ExpectedFailure(t, err)
}

func TestIllegalOpcode(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// $02 is not part of the documented instruction set
	mem.putInstructions(0x0000, 0x02)
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, cpu.IllegalOpcode) {
		t.Errorf("expected illegal opcode error (%v)", err)
	}

	// the result is still usable
	test.Equate(t, mc.LastResult.ByteCount, 1)
	test.Equate(t, mc.LastResult.Final, true)
}

func TestAddressError(t *testing.T) {
	mem := errMem{newMockMem()}
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA $FF10; reads from the faulting region are not fatal. the error is
	// recorded in the result and execution carries on
	mem.putInstructions(0x0000, 0xad, 0x10, 0xff)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0)
	if mc.LastResult.Error == "" {
		t.Errorf("expected address error to be recorded in the execution result")
	}

	// the next instruction proceeds as normal
	mem.putInstructions(0x0003, 0xa9, 0x01)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 1)
	test.Equate(t, mc.LastResult.Error, "")
}

func TestCycleCallback(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDX #$01; LDA $10FF,X; the indexed load crosses a page boundary
	mem.putInstructions(0x0000, 0xa2, 0x01, 0xbd, 0xff, 0x10)

	cycles := 0
	callback := func() error {
		cycles++
		return nil
	}

	err := mc.ExecuteInstruction(callback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, cycles, 2)

	cycles = 0
	err = mc.ExecuteInstruction(callback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, cycles, 5)
	test.Equate(t, mc.LastResult.Cycles, 5)
}
