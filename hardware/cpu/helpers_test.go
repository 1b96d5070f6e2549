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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
)

// mockMem is a simple implementation of the cpubus.Memory interface. the
// entire 64k address space is available with no mapping or mirroring.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := &mockMem{}
	mem.internal = make([]uint8, 0x10000)
	return mem
}

// Clear sets all memory locations to zero.
func (mem *mockMem) Clear() {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = 0
	}
}

// putInstructions is a generalised function to help prepare memory. can be
// used for data as well as instructions.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

// Peek satisfies the adhoc interface used by the PredictRTS() function.
func (mem mockMem) Peek(address uint16) (uint8, error) {
	return mem.Read(address)
}

// assert is used to test the value of a memory address.
func (mem mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, _ := mem.Read(address)
	if d != value {
		t.Errorf("assert mockMem failed (%#02x  - expected %#02x at address %#04x)", d, value, address)
	}
}

// errMem wraps mockMem such that reads of the last page of the address space
// return an address error.
type errMem struct {
	*mockMem
}

func (mem errMem) Read(address uint16) (uint8, error) {
	if address >= 0xff00 {
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	return mem.mockMem.Read(address)
}

// step executes one instruction and checks the result against the
// instruction definition.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()

	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}
