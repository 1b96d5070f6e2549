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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The Memory type in the memory package implements this interface and
// routes the read/write address to RAM, ROM or a chip register as
// appropriate - meaning that CPU access need not care which part of memory
// it is writing to.
//
// Read and Write are honest accesses with all the side effects the mapped
// hardware implies. Functions that inspect memory without disturbing it
// (monitors, disassemblers) should use the Peek/Poke functions of the
// memory package instead.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}
