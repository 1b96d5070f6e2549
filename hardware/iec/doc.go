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

// Package iec is the machine's window onto its peripherals. The name is a
// courtesy to the serial bus it replaces; no protocol is emulated. Instead
// the package deals in the same currency as the KERNAL channel API: a
// logical file number, a device number, a secondary address and a name.
//
// The kernal package intercepts the ROM's channel calls and routes them
// here. A Device backend answers for each attached device number; the two
// that ship are a host directory masquerading as a disk drive (package
// drive) and an HTTP fetcher (package httpdev).
//
// Channels buffer their whole payload when they open. Backends that need
// to block, the HTTP fetch for one, block inside Open. After that the
// emulation pulls one byte per CHRIN without ever waiting on anything.
//
// Writes go the other way on the same terms: they pile up on the channel
// and the backend receives them all at once when the channel closes.
package iec
