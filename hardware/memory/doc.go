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

// Package memory implements the C64 memory model: a single flat array
// covering the whole sixteen bit address space, allocated once at power on
// and never reallocated. Every address the CPU can put on the bus reaches a
// real location, so reads and writes never fail.
//
// What makes C64 memory interesting is that large parts of the machine are
// memory mapped. Storing a byte can change the border color or move a
// sprite; reading an address can return a value the hardware computes on
// the spot. Rather than wiring knowledge of the VIC or the keyboard into
// the memory implementation, those packages register hooks over the
// address ranges they care about:
//
//	                          MEMORY
//	                             |
//	    CPU ---- cpu bus --------*-------- write hooks ---- VIC
//	                             |                     \
//	                             |                      \-- keyboard
//	                             |
//	                        debugger bus
//	                             |
//	                          MONITOR
//
// A write hook runs after the store; a read hook computes the value a read
// delivers. Hooks registered over overlapping ranges run in registration
// order. The debugger bus in the diagram is the Peek/Poke pair, which
// bypass the hooks (and ROM write protection) so that tooling can inspect
// and amend memory without disturbing the machine.
//
// ROM images are copied into the array with MapROM(), which also marks the
// span read-only. A bus write to a ROM mapped page is silently ignored,
// which is what the write line does on the real machine when ROM is banked
// in.
package memory
