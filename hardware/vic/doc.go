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

// Package vic observes the video side of the emulated machine. It is not a
// VIC-II in any electrical sense. There is no fetch pipeline, no bad lines
// and no pixel output. Instead the package watches the screen and color
// areas and the color and charset registers through memory hooks, and
// answers the one question a character based front-end needs answered:
// what has changed since the last frame?
//
// The Dirty() function is the heart of the package and supports efficient
// incremental redraw. Snapshot() gives a stable copy of everything visible
// for front-ends that would rather not track deltas.
//
// The raster counter is an approximation derived from the CPU cycle total,
// updated at burst boundaries by the driver. It is good enough for the
// common polling loops found in BASIC and KERNAL code but it cannot
// support cycle-exact raster effects.
//
// Sprites are decoded from their registers on demand. Whether and how they
// are displayed is the front-end's business.
package vic
