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

// Package hardware is the base package for the C64 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The C64 type is the root of the emulation and holds references to every
// sub-system. The machine runs in bursts: RunBurst() executes instructions
// until a cycle budget is spent or something more interesting happens, and
// the caller interleaves whatever it likes (rendering, input polling)
// between bursts. That boundary is the only concurrency seam; nothing in
// here starts a goroutine.
package hardware
