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

package prg_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher64/prg"
	"github.com/jetsetilly/gopher64/test"
)

func TestRead(t *testing.T) {
	p, err := prg.Read(bytes.NewReader([]uint8{0x01, 0x08, 0xde, 0xad, 0xbe, 0xef}))
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Origin, prg.BasicOrigin)
	test.Equate(t, len(p.Data), 4)
	test.Equate(t, p.Memtop(), 0x0805)
	test.Equate(t, p.IsBasic(), true)
}

func TestReadTruncated(t *testing.T) {
	_, err := prg.Read(bytes.NewReader([]uint8{0x01}))
	test.ExpectedFailure(t, err)
}

func TestReadOverflowingPayload(t *testing.T) {
	data := make([]uint8, 0x104)
	data[0] = 0x00
	data[1] = 0xff
	_, err := prg.Read(bytes.NewReader(data))
	test.ExpectedFailure(t, err)
}

func TestRoundTrip(t *testing.T) {
	p := &prg.PRG{Origin: 0xc000, Data: []uint8{0xa9, 0x00, 0x60}}

	b := &bytes.Buffer{}
	err := p.Write(b)
	test.ExpectedSuccess(t, err)
	test.Equate(t, b.Len(), 5)

	q, err := prg.Read(b)
	test.ExpectedSuccess(t, err)
	test.Equate(t, q.Origin, p.Origin)
	test.Equate(t, bytes.Equal(q.Data, p.Data), true)
	test.Equate(t, q.IsBasic(), false)
}

func TestEncode(t *testing.T) {
	p := &prg.PRG{Origin: 0x0801, Data: []uint8{0x00}}
	test.Equate(t, bytes.Equal(p.Encode(), []uint8{0x01, 0x08, 0x00}), true)
}
