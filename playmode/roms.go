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

package playmode

import (
	"os"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/paths"
)

// sentinal error returned when a ROM image cannot be read.
const MissingROM = "playmode: cannot read %s ROM (looked in %s)"

// the directory under the resource path where ROM images live.
const romDir = "roms"

// the system ROM images. the KERNAL occupies the top of memory and BASIC
// sits below the VIC window. there is no chargen image; glyphs come from
// the host terminal's font.
var romImages = []struct {
	label  string
	file   string
	origin uint16
}{
	{label: "kernal", file: "kernal", origin: memorymap.OriginKernalROM},
	{label: "basic", file: "basic", origin: memorymap.OriginBasicROM},
}

// mapROMs reads the system ROM images from the resource path and maps them
// into memory.
func mapROMs(c64 *hardware.C64) error {
	for _, rom := range romImages {
		p, err := paths.ResourcePath(romDir, rom.file)
		if err != nil {
			return curated.Errorf(MissingROM, rom.label, p)
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return curated.Errorf(MissingROM, rom.label, p)
		}

		if err := c64.Mem.MapROM(rom.label, rom.origin, data); err != nil {
			return err
		}
	}

	return nil
}
