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

package vic

import (
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
)

// Sprite is the decoded state of one of the eight hardware sprites.
type Sprite struct {
	// the X coordinate has nine bits of range. the ninth bit of every
	// sprite lives in the shared MSIGX register
	X int
	Y uint8

	Enabled bool
	ExpandX bool
	ExpandY bool

	Color uint8
}

// Sprites decodes the sprite registers. The decode happens on demand; the
// VIC keeps no sprite state of its own, so a program that pokes the
// registers directly is always seen.
func (vic *VIC) Sprites() [8]Sprite {
	var sprites [8]Sprite

	position := cpubus.Address[cpubus.SP0X]
	color := cpubus.Address[cpubus.SP0COL]
	msb, _ := vic.mem.Peek(cpubus.Address[cpubus.MSIGX])
	enabled, _ := vic.mem.Peek(cpubus.Address[cpubus.SPENA])
	expandX, _ := vic.mem.Peek(cpubus.Address[cpubus.XXPAND])
	expandY, _ := vic.mem.Peek(cpubus.Address[cpubus.YXPAND])

	for i := 0; i < 8; i++ {
		x, _ := vic.mem.Peek(position + uint16(i*2))
		y, _ := vic.mem.Peek(position + uint16(i*2) + 1)
		col, _ := vic.mem.Peek(color + uint16(i))

		sprites[i] = Sprite{
			X:       int(x),
			Y:       y,
			Enabled: enabled&(1<<i) != 0,
			ExpandX: expandX&(1<<i) != 0,
			ExpandY: expandY&(1<<i) != 0,
			Color:   col,
		}
		if msb&(1<<i) != 0 {
			sprites[i].X += 256
		}
	}

	return sprites
}
