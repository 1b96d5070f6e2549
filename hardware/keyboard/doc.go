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

// Package keyboard delivers keystrokes to the running machine. There is no
// key matrix emulation; instead keystrokes are injected straight into the
// KERNAL keyboard buffer, which is where the ROM's own scanning routine
// would have put them. The KERNAL consumes them in the usual way, through
// the count byte at $C6, and never knows the difference.
//
// A consequence of the missing matrix is that the CIA 1 ports must read as
// though no key is held down, or the ROM scan decodes phantom keypresses
// from the power-on zeroes. The package registers read hooks to that
// effect.
//
// The package also carries the PETSCII translation tables. Front-ends use
// Encode to turn typed characters into PETSCII and ScreenRune to turn
// screen memory back into something a terminal can show.
package keyboard
