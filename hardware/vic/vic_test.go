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

package vic_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/vic"
	"github.com/jetsetilly/gopher64/test"
)

func write(t *testing.T, mem *memory.Memory, address uint16, data uint8) {
	t.Helper()
	test.ExpectedSuccess(t, mem.Write(address, data))
}

func read(t *testing.T, mem *memory.Memory, address uint16, expected uint8) {
	t.Helper()
	d, err := mem.Read(address)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, expected)
}

func TestReadComputedColors(t *testing.T) {
	mem := memory.NewMemory()
	v := vic.NewVIC(mem)

	// power-on colors
	read(t, mem, 0xd020, 14)
	read(t, mem, 0xd021, 6)
	read(t, mem, 0x0286, 14)

	// the read hooks serve the live state, not the stored byte
	test.ExpectedSuccess(t, mem.Poke(0xd020, 0x63))
	read(t, mem, 0xd020, 14)

	write(t, mem, 0xd020, 0)
	read(t, mem, 0xd020, 0)
	test.Equate(t, v.Border(), 0)

	write(t, mem, 0xd021, 11)
	read(t, mem, 0xd021, 11)
	test.Equate(t, v.Background(), 11)

	write(t, mem, 0x0286, 1)
	read(t, mem, 0x0286, 1)
	test.Equate(t, v.Snapshot().Text, 1)
}

func TestCharsetToggle(t *testing.T) {
	mem := memory.NewMemory()
	v := vic.NewVIC(mem)

	// the reset state asks for a full repaint
	test.Equate(t, len(v.Dirty()), 1000)

	// the unshifted set at power on
	read(t, mem, 0xd018, 21)
	test.Equate(t, v.Shifted(), false)

	write(t, mem, 0xd018, 23)
	read(t, mem, 0xd018, 23)
	test.Equate(t, v.Shifted(), true)
	test.Equate(t, len(v.Dirty()), 1000)

	// selecting the set already in effect changes nothing
	write(t, mem, 0xd018, 23)
	test.Equate(t, v.Shifted(), true)
	test.Equate(t, len(v.Dirty()), 0)

	write(t, mem, 0xd018, 21)
	read(t, mem, 0xd018, 21)
	test.Equate(t, v.Shifted(), false)
	test.Equate(t, len(v.Dirty()), 1000)
}

func TestDirtyCells(t *testing.T) {
	mem := memory.NewMemory()
	v := vic.NewVIC(mem)

	// drain the reset repaint
	v.Dirty()

	write(t, mem, 0x0400+41, 0x01)
	cells := v.Dirty()
	test.Equate(t, len(cells), 1)
	test.Equate(t, cells[0].Index, 41)
	test.Equate(t, cells[0].Char, 0x01)
	test.Equate(t, cells[0].Color, 14)

	// storing the value a cell already shows is not a change
	write(t, mem, 0x0400+41, 0x01)
	test.Equate(t, len(v.Dirty()), 0)

	// color RAM participates in the same record
	write(t, mem, 0xd800+41, 3)
	cells = v.Dirty()
	test.Equate(t, len(cells), 1)
	test.Equate(t, cells[0].Index, 41)
	test.Equate(t, cells[0].Char, 0x01)
	test.Equate(t, cells[0].Color, 3)

	// the very last visible cell is tracked, the byte after it is not
	write(t, mem, 0x07e7, 0x02)
	write(t, mem, 0x07e8, 0x02)
	cells = v.Dirty()
	test.Equate(t, len(cells), 1)
	test.Equate(t, cells[0].Index, 999)
}

func TestBackgroundRepaint(t *testing.T) {
	mem := memory.NewMemory()
	v := vic.NewVIC(mem)
	v.Dirty()

	write(t, mem, 0xd021, 0)
	test.Equate(t, len(v.Dirty()), 1000)

	// same color again is not a repaint
	write(t, mem, 0xd021, 0)
	test.Equate(t, len(v.Dirty()), 0)
}

func TestSprites(t *testing.T) {
	mem := memory.NewMemory()
	v := vic.NewVIC(mem)

	// power-on sprite colors
	sprites := v.Sprites()
	test.Equate(t, sprites[0].Color, 1)
	test.Equate(t, sprites[7].Color, 12)

	write(t, mem, 0xd000, 100)
	write(t, mem, 0xd001, 50)
	write(t, mem, 0xd006, 20)

	// the ninth X bit applies per sprite
	write(t, mem, 0xd010, 0x09)

	sprites = v.Sprites()
	test.Equate(t, sprites[0].X, 356)
	test.Equate(t, sprites[0].Y, 50)
	test.Equate(t, sprites[1].X, 0)
	test.Equate(t, sprites[3].X, 276)
	test.Equate(t, sprites[4].X, 0)

	write(t, mem, 0xd015, 0x81)
	write(t, mem, 0xd017, 0x02)
	write(t, mem, 0xd01d, 0x01)

	sprites = v.Sprites()
	test.Equate(t, sprites[0].Enabled, true)
	test.Equate(t, sprites[7].Enabled, true)
	test.Equate(t, sprites[1].Enabled, false)
	test.Equate(t, sprites[1].ExpandY, true)
	test.Equate(t, sprites[0].ExpandY, false)
	test.Equate(t, sprites[0].ExpandX, true)
}

func TestRaster(t *testing.T) {
	mem := memory.NewMemory()
	v := vic.NewVIC(mem)

	read(t, mem, 0xd012, 0)

	v.UpdateRaster(100 * vic.CyclesPerLine)
	read(t, mem, 0xd012, 100)

	// mid-line cycle counts round down
	v.UpdateRaster(100*vic.CyclesPerLine + 62)
	read(t, mem, 0xd012, 100)

	// lines beyond 255 overflow into the top bit of the control register
	write(t, mem, 0xd011, 0x1b)
	read(t, mem, 0xd011, 0x1b)
	v.UpdateRaster(300 * vic.CyclesPerLine)
	read(t, mem, 0xd012, 44)
	read(t, mem, 0xd011, 0x9b)

	// a full frame wraps back to line zero
	v.UpdateRaster(vic.LinesPerFrame * vic.CyclesPerLine)
	read(t, mem, 0xd012, 0)
	read(t, mem, 0xd011, 0x1b)
}

func TestSnapshotIsStable(t *testing.T) {
	mem := memory.NewMemory()
	v := vic.NewVIC(mem)

	write(t, mem, 0x0400, 0x08)
	snp := v.Snapshot()
	test.Equate(t, snp.Chars[0], 0x08)
	test.Equate(t, snp.Colors[0], 14)
	test.Equate(t, snp.Border, 14)
	test.Equate(t, snp.Background, 6)

	write(t, mem, 0x0400, 0x09)
	write(t, mem, 0xd020, 0)
	test.Equate(t, snp.Chars[0], 0x08)
	test.Equate(t, snp.Border, 14)
}
