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

// Package cpu emulates the 6510 microprocessor found in the Commodore 64.
// Like all 8-bit processors of the era, the 6510 executes instructions
// according to the single byte value read from an address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table. The instruction definition for that opcode is then used
// to move execution of the program forward.
//
// From the point of view of the instruction set the 6510 is identical to the
// 6502. The additional IO port of the 6510 lives in the memory map at
// addresses 0x0000 and 0x0001 and is the responsibility of the memory
// package, not this one.
//
// The instance of the CPU type requires an instance of a cpubus.Memory
// implementation as the sole argument. The Memory interface defines the
// memory operations required by the CPU. See the cpubus package for details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle
// boundary of the instruction.
//
// Let's assume mem is an instance of the Memory interface loaded with 6510
// instructions.
//
//	mc := cpu.NewCPU(mem)
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		mc.ExecuteInstruction(func() error {
//			numCycles ++
//		})
//		numInstructions ++
//	}
//
// The above program does nothing interesting except to show how
// ExecuteInstruction() can be used to pump information to a callback
// function. The C64 emulation uses this to run the other chips in the
// machine for every CPU cycle - everything in the C64 is clocked from the
// same crystal and the VIC in particular must stay in lockstep with the CPU.
//
// Hardware interrupts are not instructions and are serviced with the
// ServiceInterrupt() function. The sequence is the same for the IRQ and NMI
// lines, only the vector differs. Deciding when an interrupt should be
// serviced, and whether it is currently masked, is the job of the hardware
// package.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed, or about the current instruction being executed if accessed from
// ExecuteInstruction()'s callback function. See the execution package for
// more information. Very useful for monitors and disassemblers.
package cpu
