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

// ReadHook computes the value delivered by a read of a watched address.
// It receives the byte stored at the address and returns the byte the bus
// will deliver. A hook that has nothing to say returns data unchanged.
type ReadHook func(address uint16, data uint8) uint8

// WriteHook observes a write to a watched address. It runs after the store
// has happened.
type WriteHook func(address uint16, data uint8)

type readHookEntry struct {
	origin uint16
	memtop uint16
	hook   ReadHook
}

type writeHookEntry struct {
	origin uint16
	memtop uint16
	hook   WriteHook
}

// RegisterReadHook attaches a ReadHook to the addresses between origin and
// memtop inclusive. When more than one hook covers an address they run in
// registration order, each receiving the value computed by the last.
func (mem *Memory) RegisterReadHook(origin uint16, memtop uint16, hook ReadHook) {
	mem.readHooks = append(mem.readHooks, readHookEntry{
		origin: origin,
		memtop: memtop,
		hook:   hook,
	})
}

// RegisterWriteHook attaches a WriteHook to the addresses between origin
// and memtop inclusive. When more than one hook covers an address they run
// in registration order.
func (mem *Memory) RegisterWriteHook(origin uint16, memtop uint16, hook WriteHook) {
	mem.writeHooks = append(mem.writeHooks, writeHookEntry{
		origin: origin,
		memtop: memtop,
		hook:   hook,
	})
}
