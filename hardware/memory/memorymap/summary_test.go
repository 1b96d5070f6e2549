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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

const validMemMap = `0000 -> 03ff	RAM
0400 -> 07ff	Screen
0800 -> 9fff	RAM
a000 -> bfff	BASIC ROM
c000 -> cfff	RAM
d000 -> d3ff	VIC
d400 -> d7ff	SID
d800 -> dbff	Color RAM
dc00 -> dcff	CIA 1
dd00 -> ddff	CIA 2
de00 -> dfff	Expansion
e000 -> ffff	KERNAL ROM
`

func TestMemoryMap(t *testing.T) {
	if memorymap.Summary() != validMemMap {
		t.Fatalf("memory map is invalid")
	}
}
