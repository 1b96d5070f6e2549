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

// Package prg handles the .prg program container: a sixteen bit
// little-endian load address followed by the program payload. The format
// carries no length field and no checksum; the payload runs to the end of
// the file.
package prg

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/jetsetilly/gopher64/curated"
)

// sentinal errors returned by the prg package.
const (
	// a PRG file must be at least as long as its load address header
	InvalidHeader = "prg: %s: too short to contain a load address"

	// returned when the payload would run past the top of memory
	TooLarge = "prg: program runs past the top of memory (origin %#04x, %d bytes)"

	NotLoadable = "prg: %v"
)

// BasicOrigin is the conventional load address of a BASIC program.
const BasicOrigin = uint16(0x0801)

// PRG is a program freshly read from, or about to be written to, its
// container format.
type PRG struct {
	Origin uint16
	Data   []uint8
}

// Read decodes a PRG from the reader. The entire payload is consumed.
func Read(r io.Reader) (*PRG, error) {
	var origin uint16
	if err := binary.Read(r, binary.LittleEndian, &origin); err != nil {
		return nil, curated.Errorf(InvalidHeader, "stream")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(NotLoadable, err)
	}

	if int(origin)+len(data) > 0x10000 {
		return nil, curated.Errorf(TooLarge, origin, len(data))
	}

	return &PRG{Origin: origin, Data: data}, nil
}

// Decode is the counterpart of Encode: a PRG from a byte slice in
// container format.
func Decode(data []uint8) (*PRG, error) {
	return Read(bytes.NewReader(data))
}

// Load reads a PRG from a file.
func Load(filename string) (*PRG, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(NotLoadable, err)
	}
	defer f.Close()

	p, err := Read(f)
	if err != nil {
		if curated.Has(err, InvalidHeader) {
			return nil, curated.Errorf(InvalidHeader, filename)
		}
		return nil, err
	}

	return p, nil
}

// Write encodes the PRG to the writer in container format.
func (p *PRG) Write(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, p.Origin); err != nil {
		return curated.Errorf(NotLoadable, err)
	}
	if _, err := w.Write(p.Data); err != nil {
		return curated.Errorf(NotLoadable, err)
	}
	return nil
}

// Save writes the PRG to a file, replacing any existing file.
func (p *PRG) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(NotLoadable, err)
	}
	defer f.Close()

	return p.Write(f)
}

// Encode returns the PRG in container format as a byte slice.
func (p *PRG) Encode() []uint8 {
	b := &bytes.Buffer{}
	_ = p.Write(b)
	return b.Bytes()
}

// Memtop returns the address of the first byte after the program. This is
// the value the KERNAL leaves in the end-of-load pointer.
func (p *PRG) Memtop() uint16 {
	return p.Origin + uint16(len(p.Data))
}

// IsBasic returns true if the program loads at the BASIC start address.
func (p *PRG) IsBasic() bool {
	return p.Origin == BasicOrigin
}
