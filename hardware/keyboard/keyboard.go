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

package keyboard

import (
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
)

// the KERNAL buffer window at KEYD is ten bytes long whatever the
// XMAX byte claims
const bufferSize = 10

// Keyboard feeds keystrokes to the KERNAL through its buffer. The pending
// queue on this side is the authority; the count byte at NDX is computed
// from it and the buffer window at KEYD mirrors it.
//
// There is no key matrix. The CIA 1 ports read back as though no key is
// ever held down, which keeps the ROM's interrupt-driven scan quiet, and
// keystrokes enter through Inject() instead.
type Keyboard struct {
	mem     *memory.Memory
	pending []uint8
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. The returned Keyboard has registered its hooks with the memory
// instance.
func NewKeyboard(mem *memory.Memory) *Keyboard {
	kbd := &Keyboard{
		mem:     mem,
		pending: make([]uint8, 0, bufferSize),
	}

	countAddr := cpubus.Address[cpubus.NDX]
	windowAddr := cpubus.Address[cpubus.KEYD]

	mem.RegisterReadHook(countAddr, countAddr, func(_ uint16, _ uint8) uint8 {
		return uint8(len(kbd.pending))
	})

	// the KERNAL consumes a keystroke by copying the buffer down and then
	// storing the reduced count. by the time the count lands the window
	// holds the surviving bytes in order, so the queue is rebuilt from
	// there. the same rule lets a program poke bytes into the window and
	// claim them by poking the count
	mem.RegisterWriteHook(countAddr, countAddr, func(_ uint16, data uint8) {
		n := int(data)
		if n > bufferSize {
			n = bufferSize
		}
		kbd.pending = kbd.pending[:0]
		for i := 0; i < n; i++ {
			b, _ := kbd.mem.Peek(windowAddr + uint16(i))
			kbd.pending = append(kbd.pending, b)
		}
	})

	// no key is ever down as far as the CIA 1 ports are concerned. the
	// matrix lines are active low
	mem.RegisterReadHook(cpubus.Address[cpubus.CIAPRA], cpubus.Address[cpubus.CIAPRB],
		func(_ uint16, _ uint8) uint8 {
			return 0xff
		})

	return kbd
}

// Reset empties the pending queue. Call after the memory reset.
func (kbd *Keyboard) Reset() {
	kbd.pending = kbd.pending[:0]
}

// Pending returns the number of keystrokes waiting to be consumed.
func (kbd *Keyboard) Pending() int {
	return len(kbd.pending)
}

// Inject appends keystrokes to the pending queue, stopping at the buffer
// limit the XMAX byte advertises. The number of keystrokes accepted is
// returned; a front-end can hold the remainder for a later frame.
func (kbd *Keyboard) Inject(petscii ...uint8) int {
	limit, _ := kbd.mem.Peek(cpubus.Address[cpubus.XMAX])
	if limit > bufferSize {
		limit = bufferSize
	}

	accepted := 0
	for _, b := range petscii {
		if len(kbd.pending) >= int(limit) {
			break
		}
		kbd.pending = append(kbd.pending, b)
		accepted++
	}

	// mirror the queue into the window. poked rather than written; the
	// count hook rebuilds from the window and has nothing to add here
	windowAddr := cpubus.Address[cpubus.KEYD]
	for i, b := range kbd.pending {
		_ = kbd.mem.Poke(windowAddr+uint16(i), b)
	}
	_ = kbd.mem.Poke(cpubus.Address[cpubus.NDX], uint8(len(kbd.pending)))

	return accepted
}
