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

package memory

import (
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/logger"
)

// sentinal errors returned by the MapROM function.
const (
	ROMEmpty    = "memory: %s ROM image is empty"
	ROMTooLarge = "memory: %s ROM image runs past the top of memory (origin %#04x, %d bytes)"
)

type romSpan struct {
	label  string
	origin uint16
	memtop uint16
}

// MapROM copies a ROM image into memory at the origin address and marks the
// span read-only. Subsequent bus writes inside the span are silently
// ignored; Poke is not affected.
func (mem *Memory) MapROM(label string, origin uint16, data []uint8) error {
	if len(data) == 0 {
		return curated.Errorf(ROMEmpty, label)
	}
	if int(origin)+len(data) > int(memorymap.Memtop)+1 {
		return curated.Errorf(ROMTooLarge, label, origin, len(data))
	}

	memtop := origin + uint16(len(data)) - 1
	copy(mem.ram[origin:int(origin)+len(data)], data)
	mem.roms = append(mem.roms, romSpan{
		label:  label,
		origin: origin,
		memtop: memtop,
	})

	logger.Logf("memory", "%s ROM mapped at %#04x to %#04x", label, origin, memtop)

	return nil
}

func (mem Memory) inROM(address uint16) bool {
	for _, r := range mem.roms {
		if address >= r.origin && address <= r.memtop {
			return true
		}
	}
	return false
}
