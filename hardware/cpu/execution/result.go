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

package execution

import (
	"github.com/jetsetilly/gopher64/hardware/cpu/instructions"
)

// Result records the execution details of the most recently executed
// instruction. It is used by the disassembly and monitor packages to produce
// output for the user.
type Result struct {
	// a reference to the instruction definition. this will be nil if the
	// opcode at the address could not be decoded
	Defn *instructions.Definition

	// the address at which the instruction began
	Address uint16

	// the data used by the instruction. the meaning of this value depends on
	// the addressing mode of the instruction. for branch instructions it is
	// the 8 bit offset value, for immediate instructions it is the operand
	// itself and for everything else it is an address
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of page faults and taken branches the
	// value will be higher
	Cycles int

	// the number of bytes read during instruction decode. should be the same
	// as Defn.Bytes by the time the instruction has completed
	ByteCount int

	// whether the branch test passed (ie. the branch was taken). only
	// meaningful for branch instructions
	BranchSuccess bool

	// whether a page fault occurred during execution. will only ever be true
	// if Defn.PageSensitive is true
	PageFault bool

	// a short description of any CPU bug encountered during execution
	CPUBug string

	// errors that are non-critical to the emulation, for example address
	// errors from the memory bus, are recorded here rather than interrupting
	// the instruction
	Error string

	// whether this instruction has completed. some fields in this struct are
	// undefined if Final is false
	Final bool
}

// Reset nullifies all fields of the Result instance.
func (r *Result) Reset() {
	r.Defn = nil
	r.Address = 0
	r.InstructionData = 0
	r.Cycles = 0
	r.ByteCount = 0
	r.BranchSuccess = false
	r.PageFault = false
	r.CPUBug = ""
	r.Error = ""
	r.Final = false
}
