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

// Package disassembly turns memory back into assembly language. The
// decoder is linear and single pass: it starts at an address and takes
// every byte to be the start of an instruction until the span runs out.
// Bytes that decode to nothing are shown as data and the decoder moves on
// by one, which is the honest thing to do without flow analysis.
package disassembly

import (
	"io"

	"github.com/jetsetilly/gopher64/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher64/prg"
)

// Disassembly is the result of disassembling a span of memory.
type Disassembly struct {
	Entries []Entry
}

// memory as the disassembler sees it. the memory package's Peek function
// satisfies this; honest Read functions with their side effects must not
// be used for disassembly.
type peeker interface {
	Peek(address uint16) (uint8, error)
}

// FromMemory disassembles the span between origin and memtop inclusive.
func FromMemory(mem peeker, origin uint16, memtop uint16) (*Disassembly, error) {
	dsm := &Disassembly{}
	table := instructions.GetDefinitions()

	address := int(origin)
	for address <= int(memtop) {
		opcode, err := mem.Peek(uint16(address))
		if err != nil {
			return nil, err
		}

		e := Entry{
			Address: uint16(address),
			Bytes:   []uint8{opcode},
			Defn:    table[opcode],
		}

		if e.Defn == nil {
			// not a documented opcode. show the byte and move on
			dsm.Entries = append(dsm.Entries, e)
			address++
			continue
		}

		// gather operand bytes. a definition that runs past the top of the
		// span is decoded with the missing bytes read as zero
		for i := 1; i < e.Defn.Bytes; i++ {
			var b uint8
			if address+i <= int(memtop) {
				b, err = mem.Peek(uint16(address + i))
				if err != nil {
					return nil, err
				}
			}
			e.Bytes = append(e.Bytes, b)
		}

		switch len(e.Bytes) {
		case 2:
			e.Operand = uint16(e.Bytes[1])
		case 3:
			e.Operand = uint16(e.Bytes[1]) | uint16(e.Bytes[2])<<8
		}

		dsm.Entries = append(dsm.Entries, e)
		address += e.Defn.Bytes
	}

	return dsm, nil
}

// FromPRG disassembles the payload of a program file.
func FromPRG(p *prg.PRG) (*Disassembly, error) {
	return FromMemory(prgPeeker{p: p}, p.Origin, p.Origin+uint16(len(p.Data))-1)
}

type prgPeeker struct {
	p *prg.PRG
}

func (m prgPeeker) Peek(address uint16) (uint8, error) {
	return m.p.Data[address-m.p.Origin], nil
}

// Write the disassembly in listing format, one entry per line.
func (dsm *Disassembly) Write(w io.Writer) error {
	for i := range dsm.Entries {
		if _, err := io.WriteString(w, dsm.Entries[i].String()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
