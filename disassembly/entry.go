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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/hardware/cpu/instructions"
)

// Entry is one decoded instruction, or one undecodable byte.
type Entry struct {
	Address uint16
	Bytes   []uint8

	// nil when the byte at Address is not a documented opcode
	Defn *instructions.Definition

	// the operand bytes assembled into a value. zero for implied
	// addressing
	Operand uint16
}

// Mnemonic returns the operator name, or a data directive for an
// undecodable byte.
func (e Entry) Mnemonic() string {
	if e.Defn == nil {
		return ".byte"
	}
	return e.Defn.Operator.String()
}

// OperandString returns the operand formatted in the conventional notation
// for the addressing mode.
func (e Entry) OperandString() string {
	if e.Defn == nil {
		return fmt.Sprintf("$%02x", e.Bytes[0])
	}

	switch e.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", e.Operand)
	case instructions.Relative:
		// branch targets are more useful as absolute addresses
		offset := int8(e.Operand)
		return fmt.Sprintf("$%04x", uint16(int(e.Address)+2+int(offset)))
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", e.Operand)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", e.Operand)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", e.Operand)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", e.Operand)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", e.Operand)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", e.Operand)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", e.Operand)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", e.Operand)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", e.Operand)
	}

	return ""
}

// String returns the entry in listing format: address, instruction bytes,
// mnemonic and operand in fixed columns.
func (e Entry) String() string {
	b := strings.Builder{}
	for _, x := range e.Bytes {
		b.WriteString(fmt.Sprintf("%02x ", x))
	}

	return strings.TrimRight(fmt.Sprintf("$%04x  %-9s %s %s", e.Address, b.String(), e.Mnemonic(), e.OperandString()), " ")
}
