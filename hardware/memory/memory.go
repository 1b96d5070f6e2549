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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// The colors the KERNAL sets up at power on. Light blue text inside a light
// blue border, over a blue background.
const (
	resetBorderColor     = 14
	resetBackgroundColor = 6
	resetTextColor       = 14
)

// the KERNAL allows up to ten pending keystrokes
const resetKeyboardBufferSize = 10

// Memory is the monolithic representation of C64 memory. The CPU only ever
// accesses memory through an instance of this structure.
//
// The underlying array is allocated once and covers the full sixteen bit
// address space, so a read or write can never fail. Side effects of memory
// access are implemented by the other hardware packages, which register
// read and write hooks over the address ranges they care about.
type Memory struct {
	ram []uint8

	roms       []romSpan
	readHooks  []readHookEntry
	writeHooks []writeHookEntry
}

// NewMemory is the preferred method of initialisation for Memory.
func NewMemory() *Memory {
	mem := &Memory{
		ram: make([]uint8, int(memorymap.Memtop)+1),
	}
	mem.Reset(true)
	return mem
}

// Reset contents of memory. A cold reset is the power-on state and touches
// everything outside of any mapped ROM. A warm reset reinitialises only the
// areas the KERNAL reset routine would: the zero page, the stack, the
// system workspace and the VIC registers.
//
// Reset pokes memory directly. No hooks run; packages that shadow memory
// state are expected to reset themselves to the same power-on values.
func (mem *Memory) Reset(cold bool) {
	if cold {
		for i := range mem.ram {
			if !mem.inROM(uint16(i)) {
				mem.ram[i] = 0
			}
		}
	} else {
		for a := int(memorymap.OriginZeroPage); a <= int(memorymap.MemtopWorkspace); a++ {
			mem.ram[a] = 0
		}
	}

	// screen filled with spaces over the power-on colors
	for i := 0; i < memorymap.Cells; i++ {
		mem.ram[memorymap.OriginScreen+uint16(i)] = 0x20
		mem.ram[memorymap.OriginColorRAM+uint16(i)] = resetTextColor
	}

	// wipe the VIC registers
	for a := cpubus.Address[cpubus.SP0X]; a <= cpubus.Address[cpubus.SP7COL]; a++ {
		mem.ram[a] = 0
	}

	mem.ram[cpubus.Address[cpubus.EXTCOL]] = resetBorderColor
	mem.ram[cpubus.Address[cpubus.BGCOL0]] = resetBackgroundColor

	// the unshifted character set
	mem.ram[cpubus.Address[cpubus.VMCSB]] = 21

	// initial sprite colors
	for i, c := range []uint8{1, 2, 3, 4, 5, 6, 7, 12} {
		mem.ram[cpubus.Address[cpubus.SP0COL]+uint16(i)] = c
	}

	mem.ram[cpubus.Address[cpubus.COLOR]] = resetTextColor
	mem.ram[cpubus.Address[cpubus.XMAX]] = resetKeyboardBufferSize
}

// Read is an implementation of cpubus.Memory. It never fails; a sixteen bit
// address is always valid.
//
// The value returned is the stored byte unless a read hook is registered
// over the address, in which case the hook computes the value. The stored
// byte is left untouched either way.
func (mem Memory) Read(address uint16) (uint8, error) {
	data := mem.ram[address]
	for _, e := range mem.readHooks {
		if address >= e.origin && address <= e.memtop {
			data = e.hook(address, data)
		}
	}
	return data, nil
}

// Write is an implementation of cpubus.Memory. It never fails.
//
// Writes to an address inside a mapped ROM are silently ignored, matching
// bus behaviour for ROM mapped pages, and never reach any hook. Otherwise
// the byte is stored and any write hooks registered over the address run
// after the store.
func (mem *Memory) Write(address uint16, data uint8) error {
	if mem.inROM(address) {
		return nil
	}

	mem.ram[address] = data

	for _, e := range mem.writeHooks {
		if address >= e.origin && address <= e.memtop {
			e.hook(address, data)
		}
	}

	return nil
}

// Peek returns the stored byte without running any read hooks. For use by
// tooling that must not disturb the machine.
func (mem Memory) Peek(address uint16) (uint8, error) {
	return mem.ram[address], nil
}

// Poke stores a byte without running any write hooks and without regard to
// ROM write protection. For use by tooling.
func (mem *Memory) Poke(address uint16, data uint8) error {
	mem.ram[address] = data
	return nil
}

// Dump returns the contents of the address range as a string, sixteen
// bytes to a row.
func (mem Memory) Dump(origin uint16, memtop uint16) string {
	s := strings.Builder{}
	for base := int(origin) &^ 0x000f; base <= int(memtop); base += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", base))
		for i := base; i < base+16; i++ {
			if i < int(origin) || i > int(memtop) {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", mem.ram[i]))
			}
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}
