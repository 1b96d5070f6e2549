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

// Package memorymap records the celebrated layout of the C64 address space.
// The memory package implements the address space as a single flat array;
// the constants and the AreaOf() function in this package describe which
// part of the machine a given address belongs to.
//
//	area := memorymap.AreaOf(address)
//
// The areas are purely descriptive. They are used for labelling (by the
// monitor and the disassembler) and by the hardware packages when deciding
// which address ranges to register read and write hooks over. Nothing in
// the memory package itself dispatches on Area.
package memorymap
