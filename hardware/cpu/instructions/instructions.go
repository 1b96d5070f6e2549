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

package instructions

import "fmt"

// EffectCategory categorises an instruction by the effect it has on the
// flow of the program and on memory.
type EffectCategory int

// List of valid EffectCategory values. Read is the default category and
// is the zero value.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following three effects have implications on program flow

	Flow
	Subroutine
	Interrupt
)

// AddressingMode describes the method data for the instruction is received.
type AddressingMode int

// List of valid AddressingMode values.
const (
	Implied AddressingMode = iota
	Immediate
	Relative
	Absolute
	ZeroPage
	Indirect
	IndexedIndirect // preindexed, x register
	IndirectIndexed // postindexed, y register
	AbsoluteIndexedX
	AbsoluteIndexedY
	ZeroPageIndexedX
	ZeroPageIndexedY
)

func (mode AddressingMode) String() string {
	switch mode {
	case Implied:
		return "implied"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case ZeroPage:
		return "zero page"
	case Indirect:
		return "indirect"
	case IndexedIndirect:
		return "indexed indirect"
	case IndirectIndexed:
		return "indirect indexed"
	case AbsoluteIndexedX:
		return "absolute indexed (x)"
	case AbsoluteIndexedY:
		return "absolute indexed (y)"
	case ZeroPageIndexedX:
		return "zero page indexed (x)"
	case ZeroPageIndexedY:
		return "zero page indexed (y)"
	}

	return "unknown addressing mode"
}

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbs=%d", defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	// to be a branch instruction, the instruction must be relative addressing
	// and must be a flow instruction
	return defn.AddressingMode == Relative && defn.Effect == Flow
}
