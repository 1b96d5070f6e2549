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

// Package drive serves a host directory as a disk drive on the IEC bus.
// Files in the directory appear as PRG files on the simulated disk; the "$"
// name loads a directory listing in the usual tokenized BASIC form.
//
// The drive does not emulate the 1541's processor or the disk's track
// layout.
// Whole files move across the bus in one piece, which is all the KERNAL
// trap layer asks of it.
package drive

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/prg"
)

// sentinal errors returned by the Drive.
const (
	NotADirectory = "drive: %s is not a directory"
	FileNotFound  = "drive: file not found: %s"
	NotSaveable   = "drive: %v"
)

// the secondary address conventionally used for writing
const writeChannel = 1

// Drive is an iec.Device backed by a host directory.
type Drive struct {
	path string
}

// NewDrive is the preferred method of initialisation for the Drive type.
// The directory must exist.
func NewDrive(path string) (*Drive, error) {
	nfo, err := os.Stat(path)
	if err != nil || !nfo.IsDir() {
		return nil, curated.Errorf(NotADirectory, path)
	}

	return &Drive{path: path}, nil
}

// ID implements the iec.Device interface.
func (drv *Drive) ID() string {
	return "disk drive: " + drv.path
}

// Open implements the iec.Device interface. The entire file is read before
// Open returns. Write channels return an empty payload; the bytes written
// to the channel arrive later through Flush().
func (drv *Drive) Open(secondary uint8, name string) ([]uint8, error) {
	if secondary == writeChannel {
		return nil, nil
	}

	if name == "$" {
		return drv.listing()
	}

	fn, err := drv.resolve(name)
	if err != nil {
		return nil, err
	}

	return os.ReadFile(fn)
}

// Flush implements the iec.Device interface. The accumulated channel bytes
// are written to the directory as a file.
func (drv *Drive) Flush(secondary uint8, name string, data []uint8) error {
	// the "@:" prefix is the save-with-replace convention. files on a host
	// directory always replace, so the prefix is simply dropped
	name = strings.TrimPrefix(name, "@:")
	name = strings.TrimPrefix(name, "@0:")

	fn := filepath.Join(drv.path, hostName(name))
	if err := os.WriteFile(fn, data, 0644); err != nil {
		return curated.Errorf(NotSaveable, err)
	}

	return nil
}

// resolve maps a name on the bus to a file in the directory. The literal
// name is tried first, then the lower-cased name, then both with the .prg
// extension the host convention adds.
func (drv *Drive) resolve(name string) (string, error) {
	for _, n := range []string{
		name,
		strings.ToLower(name),
		name + ".prg",
		strings.ToLower(name) + ".prg",
	} {
		fn := filepath.Join(drv.path, n)
		if nfo, err := os.Stat(fn); err == nil && !nfo.IsDir() {
			return fn, nil
		}
	}

	return "", curated.Errorf(FileNotFound, name)
}

// hostName converts a name on the bus to the filename used on the host.
func hostName(name string) string {
	name = strings.ToLower(name)
	if filepath.Ext(name) == "" {
		name += ".prg"
	}
	return name
}

// listing builds the directory listing as a tokenized BASIC program, the
// form a real drive sends in response to the "$" name. Each directory
// entry is a BASIC line whose line number is the file's block count.
func (drv *Drive) listing() ([]uint8, error) {
	entries, err := os.ReadDir(drv.path)
	if err != nil {
		return nil, curated.Errorf(NotADirectory, drv.path)
	}

	names := []string{}
	sizes := map[string]int64{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		nfo, err := e.Info()
		if err != nil {
			continue
		}
		names = append(names, e.Name())
		sizes[e.Name()] = nfo.Size()
	}
	sort.Strings(names)

	p := &prg.PRG{Origin: prg.BasicOrigin}
	addr := p.Origin

	line := func(number uint16, text string) {
		// link address, line number, text, terminating zero
		next := addr + uint16(len(text)) + 5
		p.Data = append(p.Data, uint8(next), uint8(next>>8))
		p.Data = append(p.Data, uint8(number), uint8(number>>8))
		p.Data = append(p.Data, []uint8(text)...)
		p.Data = append(p.Data, 0x00)
		addr = next
	}

	// the header line is displayed in reverse video on a real machine
	header := strings.ToUpper(filepath.Base(drv.path))
	if len(header) > 16 {
		header = header[:16]
	}
	line(0, "\x12\""+header+strings.Repeat(" ", 16-len(header))+"\" G64 2A")

	blocksFree := int64(664)
	for _, n := range names {
		// a 1541 block holds 254 bytes of file data
		blocks := (sizes[n] + 253) / 254
		if blocks > 0xffff {
			blocks = 0xffff
		}
		blocksFree -= blocks
		busName := strings.ToUpper(strings.TrimSuffix(n, filepath.Ext(n)))
		if len(busName) > 16 {
			busName = busName[:16]
		}
		quoted := "\"" + busName + "\""
		line(uint16(blocks), quoted+strings.Repeat(" ", 19-len(quoted))+"PRG")
	}

	if blocksFree < 0 {
		blocksFree = 0
	}
	line(uint16(blocksFree), "BLOCKS FREE.")

	// end of program marker
	p.Data = append(p.Data, 0x00, 0x00)

	return p.Encode(), nil
}
