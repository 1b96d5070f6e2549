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

package keyboard_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/keyboard"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/test"
)

func read(t *testing.T, mem *memory.Memory, address uint16, expected uint8) {
	t.Helper()
	d, err := mem.Read(address)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, expected)
}

func peek(t *testing.T, mem *memory.Memory, address uint16, expected uint8) {
	t.Helper()
	d, err := mem.Peek(address)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, expected)
}

func TestInject(t *testing.T) {
	mem := memory.NewMemory()
	kbd := keyboard.NewKeyboard(mem)

	read(t, mem, 0x00c6, 0)

	n := kbd.Inject(65, 66, 67)
	test.Equate(t, n, 3)
	test.Equate(t, kbd.Pending(), 3)

	// count is computed, window and stored count are mirrored
	read(t, mem, 0x00c6, 3)
	peek(t, mem, 0x00c6, 3)
	peek(t, mem, 0x0277, 65)
	peek(t, mem, 0x0278, 66)
	peek(t, mem, 0x0279, 67)
}

func TestInjectLimit(t *testing.T) {
	mem := memory.NewMemory()
	kbd := keyboard.NewKeyboard(mem)

	// the power-on XMAX byte allows ten pending keystrokes
	n := kbd.Inject(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	test.Equate(t, n, 10)
	read(t, mem, 0x00c6, 10)

	// a program can shrink the advertised limit
	kbd.Reset()
	test.ExpectedSuccess(t, mem.Write(0x00c6, 0))
	test.ExpectedSuccess(t, mem.Write(0x0289, 2))
	n = kbd.Inject(1, 2, 3)
	test.Equate(t, n, 2)
}

func TestKernalConsume(t *testing.T) {
	mem := memory.NewMemory()
	kbd := keyboard.NewKeyboard(mem)

	kbd.Inject(65, 66, 67)

	// the KERNAL copies the buffer down and stores the reduced count
	test.ExpectedSuccess(t, mem.Write(0x0277, 66))
	test.ExpectedSuccess(t, mem.Write(0x0278, 67))
	test.ExpectedSuccess(t, mem.Write(0x00c6, 2))

	read(t, mem, 0x00c6, 2)
	test.Equate(t, kbd.Pending(), 2)

	// the queue carries on from the surviving bytes
	kbd.Inject(68)
	read(t, mem, 0x00c6, 3)
	peek(t, mem, 0x0277, 66)
	peek(t, mem, 0x0278, 67)
	peek(t, mem, 0x0279, 68)

	test.ExpectedSuccess(t, mem.Write(0x00c6, 0))
	test.Equate(t, kbd.Pending(), 0)
}

func TestPokedKeystroke(t *testing.T) {
	mem := memory.NewMemory()
	kbd := keyboard.NewKeyboard(mem)

	// the old POKE 631,65 : POKE 198,1 trick
	test.ExpectedSuccess(t, mem.Write(0x0277, 65))
	test.ExpectedSuccess(t, mem.Write(0x00c6, 1))

	test.Equate(t, kbd.Pending(), 1)
	read(t, mem, 0x00c6, 1)
}

func TestMatrixIsSilent(t *testing.T) {
	mem := memory.NewMemory()
	keyboard.NewKeyboard(mem)

	// power-on stores are zero but the ports must say no key is down
	read(t, mem, 0xdc00, 0xff)
	read(t, mem, 0xdc01, 0xff)
}
