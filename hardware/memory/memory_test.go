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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/test"
)

func read(t *testing.T, mem *memory.Memory, address uint16, expected uint8) {
	t.Helper()
	v, err := mem.Read(address)
	if err != nil {
		t.Fatalf("unexpected error (%s)", err)
	}
	if v != expected {
		t.Errorf("expecting %#02x at %#04x, received %#02x", expected, address, v)
	}
}

func peek(t *testing.T, mem *memory.Memory, address uint16, expected uint8) {
	t.Helper()
	v, err := mem.Peek(address)
	if err != nil {
		t.Fatalf("unexpected error (%s)", err)
	}
	if v != expected {
		t.Errorf("expecting %#02x at %#04x, received %#02x", expected, address, v)
	}
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	// any address in the sixteen bit range can be written and read back
	test.ExpectedSuccess(t, mem.Write(0x0002, 0xfe))
	read(t, mem, 0x0002, 0xfe)
	test.ExpectedSuccess(t, mem.Write(0x8123, 0x01))
	read(t, mem, 0x8123, 0x01)
	test.ExpectedSuccess(t, mem.Write(0xffff, 0xaa))
	read(t, mem, 0xffff, 0xaa)
}

func TestROM(t *testing.T) {
	mem := memory.NewMemory()

	rom := make([]uint8, 0x2000)
	for i := range rom {
		rom[i] = uint8(i)
	}

	err := mem.MapROM("kernal", memorymap.OriginKernalROM, rom)
	test.ExpectedSuccess(t, err)

	// image has been copied in
	read(t, mem, 0xe000, 0x00)
	read(t, mem, 0xe456, rom[0x0456])
	read(t, mem, 0xffff, rom[0x1fff])

	// bus writes to the ROM span are silently ignored
	test.ExpectedSuccess(t, mem.Write(0xe456, 0xff))
	read(t, mem, 0xe456, rom[0x0456])

	// addresses outside the span are unaffected
	test.ExpectedSuccess(t, mem.Write(0xdfff, 0xff))
	read(t, mem, 0xdfff, 0xff)

	// poke pays no attention to write protection
	test.ExpectedSuccess(t, mem.Poke(0xe456, 0xff))
	read(t, mem, 0xe456, 0xff)
}

func TestROMMappingErrors(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.MapROM("empty", 0x1000, []uint8{})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.ROMEmpty))

	err = mem.MapROM("large", 0xfff0, make([]uint8, 0x11))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.ROMTooLarge))

	// an image that runs exactly to the top of memory is fine
	err = mem.MapROM("snug", 0xfff0, make([]uint8, 0x10))
	test.ExpectedSuccess(t, err)
}

func TestWriteHooks(t *testing.T) {
	mem := memory.NewMemory()

	var hookAddress uint16
	var hookData uint8
	var stored uint8
	count := 0

	mem.RegisterWriteHook(0xd020, 0xd021, func(address uint16, data uint8) {
		hookAddress = address
		hookData = data
		stored, _ = mem.Peek(address)
		count++
	})

	// the hook runs after the store so the peeked value matches the data
	test.ExpectedSuccess(t, mem.Write(0xd020, 0x07))
	test.Equate(t, count, 1)
	test.Equate(t, hookAddress, 0xd020)
	test.Equate(t, hookData, 0x07)
	test.Equate(t, stored, 0x07)

	test.ExpectedSuccess(t, mem.Write(0xd021, 0x0e))
	test.Equate(t, count, 2)
	test.Equate(t, hookAddress, 0xd021)

	// writes either side of the range do not trigger the hook
	test.ExpectedSuccess(t, mem.Write(0xd01f, 0x00))
	test.ExpectedSuccess(t, mem.Write(0xd022, 0x00))
	test.Equate(t, count, 2)
}

func TestHookOrder(t *testing.T) {
	mem := memory.NewMemory()

	order := []string{}
	mem.RegisterWriteHook(0xd000, 0xd3ff, func(_ uint16, _ uint8) {
		order = append(order, "wide")
	})
	mem.RegisterWriteHook(0xd010, 0xd010, func(_ uint16, _ uint8) {
		order = append(order, "narrow")
	})

	test.ExpectedSuccess(t, mem.Write(0xd010, 0x01))
	test.Equate(t, len(order), 2)
	test.Equate(t, order[0], "wide")
	test.Equate(t, order[1], "narrow")
}

func TestReadHooks(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectedSuccess(t, mem.Poke(0x00c6, 0x03))

	// hooks chain in registration order, each receiving the value computed
	// by the last
	mem.RegisterReadHook(0x00c6, 0x00c6, func(_ uint16, data uint8) uint8 {
		return data + 1
	})
	mem.RegisterReadHook(0x00c0, 0x00cf, func(_ uint16, data uint8) uint8 {
		return data * 2
	})

	read(t, mem, 0x00c6, 0x08)

	// the stored byte is untouched by the read. peek does not run hooks
	peek(t, mem, 0x00c6, 0x03)

	// an address covered by only the second hook
	test.ExpectedSuccess(t, mem.Poke(0x00c0, 0x05))
	read(t, mem, 0x00c0, 0x0a)

	// an address covered by neither
	test.ExpectedSuccess(t, mem.Poke(0x00d0, 0x05))
	read(t, mem, 0x00d0, 0x05)
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory()

	// power-on colors
	peek(t, mem, cpubus.Address[cpubus.EXTCOL], 14)
	peek(t, mem, cpubus.Address[cpubus.BGCOL0], 6)
	peek(t, mem, cpubus.Address[cpubus.COLOR], 14)
	peek(t, mem, cpubus.Address[cpubus.VMCSB], 21)
	peek(t, mem, cpubus.Address[cpubus.XMAX], 10)

	// initial sprite colors
	for i, c := range []uint8{1, 2, 3, 4, 5, 6, 7, 12} {
		peek(t, mem, cpubus.Address[cpubus.SP0COL]+uint16(i), c)
	}

	// screen is filled with spaces over the power-on text color
	peek(t, mem, memorymap.OriginScreen, 0x20)
	peek(t, mem, memorymap.OriginScreen+memorymap.Cells-1, 0x20)
	peek(t, mem, memorymap.OriginColorRAM, 14)
	peek(t, mem, memorymap.OriginColorRAM+memorymap.Cells-1, 14)

	// a warm reset touches the zero page, the stack and the workspace but
	// leaves user RAM alone
	test.ExpectedSuccess(t, mem.Write(0x00fb, 0x01))
	test.ExpectedSuccess(t, mem.Write(0x0140, 0x02))
	test.ExpectedSuccess(t, mem.Write(0x0334, 0x03))
	test.ExpectedSuccess(t, mem.Write(0x0801, 0x04))
	mem.Reset(false)
	peek(t, mem, 0x00fb, 0x00)
	peek(t, mem, 0x0140, 0x00)
	peek(t, mem, 0x0334, 0x00)
	peek(t, mem, 0x0801, 0x04)

	// a cold reset wipes user RAM too, but not mapped ROM
	rom := make([]uint8, 0x2000)
	rom[0] = 0xa9
	test.ExpectedSuccess(t, mem.MapROM("basic", memorymap.OriginBasicROM, rom))
	mem.Reset(true)
	peek(t, mem, 0x0801, 0x00)
	peek(t, mem, memorymap.OriginBasicROM, 0xa9)
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory()

	for i := uint16(0); i < 4; i++ {
		test.ExpectedSuccess(t, mem.Poke(0x0400+i, uint8(i+1)))
	}

	expected := "0400 |  01 02 03 04 20 20 20 20 20 20 20 20 20 20 20 20"
	test.Equate(t, mem.Dump(0x0400, 0x040f), expected)
}
