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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Screen:
		return "Screen"
	case BasicROM:
		return "BASIC ROM"
	case VIC:
		return "VIC"
	case SID:
		return "SID"
	case ColorRAM:
		return "Color RAM"
	case CIA1:
		return "CIA 1"
	case CIA2:
		return "CIA 2"
	case Expansion:
		return "Expansion"
	case KernalROM:
		return "KERNAL ROM"
	}

	return "undefined"
}

// The different memory areas in the C64.
const (
	Undefined Area = iota
	RAM
	Screen
	BasicROM
	VIC
	SID
	ColorRAM
	CIA1
	CIA2
	Expansion
	KernalROM
)

// The origin and memory top for each area of memory. Unlike some other
// machines of the era, every address put out by the CPU reaches a distinct
// location, so there is no mirror translation. The address used by the CPU
// is the primary address.
//
// The 6510 port at address one can in principle bank the ROM areas in and
// out. The emulated machine keeps the power-on banking arrangement, which
// is the arrangement BASIC and the KERNAL expect.
const (
	OriginZeroPage  = uint16(0x0000)
	MemtopZeroPage  = uint16(0x00ff)
	OriginStack     = uint16(0x0100)
	MemtopStack     = uint16(0x01ff)
	OriginWorkspace = uint16(0x0200)
	MemtopWorkspace = uint16(0x03ff)
	OriginScreen    = uint16(0x0400)
	MemtopScreen    = uint16(0x07ff)
	OriginBasicROM  = uint16(0xa000)
	MemtopBasicROM  = uint16(0xbfff)
	OriginVIC       = uint16(0xd000)
	MemtopVIC       = uint16(0xd3ff)
	OriginSID       = uint16(0xd400)
	MemtopSID       = uint16(0xd7ff)
	OriginColorRAM  = uint16(0xd800)
	MemtopColorRAM  = uint16(0xdbff)
	OriginCIA1      = uint16(0xdc00)
	MemtopCIA1      = uint16(0xdcff)
	OriginCIA2      = uint16(0xdd00)
	MemtopCIA2      = uint16(0xddff)
	OriginExpansion = uint16(0xde00)
	MemtopExpansion = uint16(0xdfff)
	OriginKernalROM = uint16(0xe000)
	MemtopKernalROM = uint16(0xffff)
)

// Memtop is the top most address of memory in the C64.
const Memtop = uint16(0xffff)

// The visible screen is 40 columns by 25 rows. Only the first Cells bytes
// of the screen and color RAM areas are ever displayed.
const (
	Columns = 40
	Rows    = 25
	Cells   = Columns * Rows
)

// AreaOf returns the memory area an address falls within.
func AreaOf(address uint16) Area {
	// note that the order of these filters is important

	if address >= OriginKernalROM {
		return KernalROM
	}

	if address >= OriginVIC {
		switch {
		case address <= MemtopVIC:
			return VIC
		case address <= MemtopSID:
			return SID
		case address <= MemtopColorRAM:
			return ColorRAM
		case address <= MemtopCIA1:
			return CIA1
		case address <= MemtopCIA2:
			return CIA2
		default:
			return Expansion
		}
	}

	if address >= OriginBasicROM && address <= MemtopBasicROM {
		return BasicROM
	}

	if address >= OriginScreen && address <= MemtopScreen {
		return Screen
	}

	return RAM
}
