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

// Package instructions defines the instruction set of the 6510. The
// Definition type gives all the information the CPU needs to decode and
// execute an opcode: the operator, the addressing mode, the effect category
// and the nominal cycle and byte counts.
//
// The table returned by GetDefinitions() is indexed by opcode. Only the
// documented instruction set is defined; table entries for undocumented
// opcodes are nil and it is up to the CPU to decide what to do when one is
// encountered.
package instructions
