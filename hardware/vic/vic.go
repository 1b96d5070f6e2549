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

package vic

import (
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// PAL timing. The crystal steps the CPU at ClockPAL cycles per second and
// the VIC paints LinesPerFrame raster lines of CyclesPerLine cycles each.
const (
	ClockPAL      = 985248
	CyclesPerLine = 63
	LinesPerFrame = 312
)

// VIC observes the video state of the machine. It registers hooks over the
// memory mapped registers it cares about and keeps the live state on this
// side, which is how programs can read back a register and see the value
// the hardware is really using.
//
// The VIC owns no pixels. Rasterizing is the front-end's job; the VIC
// tells it what has changed.
type VIC struct {
	mem *memory.Memory

	// live state shadowing the memory mapped registers
	border     uint8
	background uint8
	text       uint8
	shifted    bool

	// the current raster line, derived from the cycle total published by
	// the driver
	raster int

	// cells marked by the write hooks since the last Dirty() call
	dirty       []bool
	fullRepaint bool

	// cell contents at the time they were last reported, so that a write
	// of an identical value is not reported again
	prevChars  []uint8
	prevColors []uint8
}

// NewVIC is the preferred method of initialisation for the VIC type. The
// returned VIC has registered its hooks with the memory instance; there is
// no way to unregister them.
func NewVIC(mem *memory.Memory) *VIC {
	vic := &VIC{
		mem:        mem,
		dirty:      make([]bool, memorymap.Cells),
		prevChars:  make([]uint8, memorymap.Cells),
		prevColors: make([]uint8, memorymap.Cells),
	}
	vic.Reset()

	borderAddr := cpubus.Address[cpubus.EXTCOL]
	backgroundAddr := cpubus.Address[cpubus.BGCOL0]
	textAddr := cpubus.Address[cpubus.COLOR]
	charsetAddr := cpubus.Address[cpubus.VMCSB]
	rasterAddr := cpubus.Address[cpubus.RASTER]
	controlAddr := cpubus.Address[cpubus.SCROLY]

	mem.RegisterWriteHook(borderAddr, borderAddr, func(_ uint16, data uint8) {
		vic.border = data
	})
	mem.RegisterReadHook(borderAddr, borderAddr, func(_ uint16, _ uint8) uint8 {
		return vic.border
	})

	mem.RegisterWriteHook(backgroundAddr, backgroundAddr, func(_ uint16, data uint8) {
		if data != vic.background {
			vic.background = data
			vic.fullRepaint = true
		}
	})
	mem.RegisterReadHook(backgroundAddr, backgroundAddr, func(_ uint16, _ uint8) uint8 {
		return vic.background
	})

	mem.RegisterWriteHook(textAddr, textAddr, func(_ uint16, data uint8) {
		vic.text = data
	})
	mem.RegisterReadHook(textAddr, textAddr, func(_ uint16, _ uint8) uint8 {
		return vic.text
	})

	// bit one of the charset register selects the shifted glyph set. the
	// register reads back as one of the two canonical KERNAL values
	mem.RegisterWriteHook(charsetAddr, charsetAddr, func(_ uint16, data uint8) {
		shifted := data&0x02 == 0x02
		if shifted != vic.shifted {
			vic.shifted = shifted
			vic.fullRepaint = true
		}
	})
	mem.RegisterReadHook(charsetAddr, charsetAddr, func(_ uint16, _ uint8) uint8 {
		if vic.shifted {
			return 23
		}
		return 21
	})

	// reading the raster register returns the current line; the stored
	// byte is the line the program wants an interrupt raised on, which is
	// of no interest here. the control register carries the ninth bit of
	// the line in its top bit
	mem.RegisterReadHook(rasterAddr, rasterAddr, func(_ uint16, _ uint8) uint8 {
		return uint8(vic.raster & 0xff)
	})
	mem.RegisterReadHook(controlAddr, controlAddr, func(_ uint16, data uint8) uint8 {
		data &= 0x7f
		if vic.raster > 0xff {
			data |= 0x80
		}
		return data
	})

	mem.RegisterWriteHook(memorymap.OriginScreen, memorymap.OriginScreen+memorymap.Cells-1,
		func(address uint16, _ uint8) {
			vic.dirty[address-memorymap.OriginScreen] = true
		})
	mem.RegisterWriteHook(memorymap.OriginColorRAM, memorymap.OriginColorRAM+memorymap.Cells-1,
		func(address uint16, _ uint8) {
			vic.dirty[address-memorymap.OriginColorRAM] = true
		})

	return vic
}

// Reset recovers the live state from the bytes in memory. Call after the
// memory reset, which is what puts the power-on values there.
func (vic *VIC) Reset() {
	vic.border, _ = vic.mem.Peek(cpubus.Address[cpubus.EXTCOL])
	vic.background, _ = vic.mem.Peek(cpubus.Address[cpubus.BGCOL0])
	vic.text, _ = vic.mem.Peek(cpubus.Address[cpubus.COLOR])

	charset, _ := vic.mem.Peek(cpubus.Address[cpubus.VMCSB])
	vic.shifted = charset&0x02 == 0x02

	vic.raster = 0
	vic.fullRepaint = true
	for i := range vic.dirty {
		vic.dirty[i] = false
		vic.prevChars[i] = 0
		vic.prevColors[i] = 0
	}
}

// UpdateRaster derives the current raster line from the machine cycle
// total. The driver calls this at burst boundaries; nothing in the
// emulation races the beam any finer than that.
func (vic *VIC) UpdateRaster(cycles int64) {
	vic.raster = int((cycles / CyclesPerLine) % LinesPerFrame)
}

// Border returns the current border color.
func (vic *VIC) Border() uint8 {
	return vic.border
}

// Background returns the current background color.
func (vic *VIC) Background() uint8 {
	return vic.background
}

// Shifted returns true if the shifted glyph set is selected.
func (vic *VIC) Shifted() bool {
	return vic.shifted
}

// Snapshot is a stable copy of the visible state of the machine.
type Snapshot struct {
	Chars      []uint8
	Colors     []uint8
	Border     uint8
	Background uint8
	Text       uint8
	Shifted    bool
}

// Snapshot copies the visible state of the machine. The copy is stable; it
// does not change as the machine runs on.
func (vic *VIC) Snapshot() Snapshot {
	snp := Snapshot{
		Chars:      make([]uint8, memorymap.Cells),
		Colors:     make([]uint8, memorymap.Cells),
		Border:     vic.border,
		Background: vic.background,
		Text:       vic.text,
		Shifted:    vic.shifted,
	}
	for i := 0; i < memorymap.Cells; i++ {
		snp.Chars[i], _ = vic.mem.Peek(memorymap.OriginScreen + uint16(i))
		snp.Colors[i], _ = vic.mem.Peek(memorymap.OriginColorRAM + uint16(i))
	}
	return snp
}

// Cell couples a screen cell index with its current contents.
type Cell struct {
	Index int
	Char  uint8
	Color uint8
}

// Dirty returns the screen cells that have changed since the last call and
// clears the record. A change that invalidates the whole display, a new
// background color for instance, returns every cell.
//
// A write that stores the value a cell already shows is not reported.
func (vic *VIC) Dirty() []Cell {
	result := []Cell{}

	if vic.fullRepaint {
		vic.fullRepaint = false
		for i := 0; i < memorymap.Cells; i++ {
			vic.dirty[i] = false
			ch, _ := vic.mem.Peek(memorymap.OriginScreen + uint16(i))
			col, _ := vic.mem.Peek(memorymap.OriginColorRAM + uint16(i))
			vic.prevChars[i] = ch
			vic.prevColors[i] = col
			result = append(result, Cell{Index: i, Char: ch, Color: col})
		}
		return result
	}

	for i := range vic.dirty {
		if !vic.dirty[i] {
			continue
		}
		vic.dirty[i] = false

		ch, _ := vic.mem.Peek(memorymap.OriginScreen + uint16(i))
		col, _ := vic.mem.Peek(memorymap.OriginColorRAM + uint16(i))
		if ch != vic.prevChars[i] || col != vic.prevColors[i] {
			vic.prevChars[i] = ch
			vic.prevColors[i] = col
			result = append(result, Cell{Index: i, Char: ch, Color: col})
		}
	}

	return result
}
