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

package drive_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher64/hardware/iec/drive"
	"github.com/jetsetilly/gopher64/prg"
	"github.com/jetsetilly/gopher64/test"
)

func TestMissingDirectory(t *testing.T) {
	_, err := drive.NewDrive(filepath.Join(t.TempDir(), "no-such-dir"))
	test.ExpectedFailure(t, err)
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	content := []uint8{0x01, 0x08, 0xa9, 0x00, 0x60}
	err := os.WriteFile(filepath.Join(dir, "demo.prg"), content, 0644)
	test.ExpectedSuccess(t, err)

	drv, err := drive.NewDrive(dir)
	test.ExpectedSuccess(t, err)

	// the extension is supplied by the drive when the name on the bus
	// doesn't carry one
	payload, err := drv.Open(0, "DEMO")
	test.ExpectedSuccess(t, err)
	test.Equate(t, bytes.Equal(payload, content), true)
}

func TestOpenMissingFile(t *testing.T) {
	drv, err := drive.NewDrive(t.TempDir())
	test.ExpectedSuccess(t, err)

	_, err = drv.Open(0, "NOPE")
	test.ExpectedFailure(t, err)
}

func TestFlush(t *testing.T) {
	dir := t.TempDir()
	drv, err := drive.NewDrive(dir)
	test.ExpectedSuccess(t, err)

	content := []uint8{0x01, 0x08, 0x60}
	err = drv.Flush(1, "@:SAVED", content)
	test.ExpectedSuccess(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "saved.prg"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, bytes.Equal(b, content), true)
}

func TestListing(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "demo.prg"), make([]uint8, 300), 0644)
	test.ExpectedSuccess(t, err)

	drv, err := drive.NewDrive(dir)
	test.ExpectedSuccess(t, err)

	payload, err := drv.Open(0, "$")
	test.ExpectedSuccess(t, err)

	p, err := prg.Read(bytes.NewReader(payload))
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.IsBasic(), true)

	// walk the line links. the listing should contain the header line, one
	// entry and the blocks-free footer
	lines := 0
	names := []string{}
	addr := p.Origin
	for {
		o := int(addr - p.Origin)
		link := uint16(p.Data[o]) | uint16(p.Data[o+1])<<8
		if link == 0 {
			break
		}
		lines++
		names = append(names, string(p.Data[o+4:int(link-p.Origin)-1]))
		addr = link
	}
	test.Equate(t, lines, 3)

	if !bytes.Contains([]byte(names[1]), []byte("\"DEMO\"")) {
		t.Errorf("directory entry does not name the file: %q", names[1])
	}
}

func TestListingBlockCount(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "demo.prg"), make([]uint8, 300), 0644)
	test.ExpectedSuccess(t, err)

	drv, err := drive.NewDrive(dir)
	test.ExpectedSuccess(t, err)

	payload, err := drv.Open(0, "$")
	test.ExpectedSuccess(t, err)

	p, err := prg.Read(bytes.NewReader(payload))
	test.ExpectedSuccess(t, err)

	// skip the header line to reach the file entry. its line number is the
	// block count: 300 bytes is two 254-byte blocks
	link := uint16(p.Data[0]) | uint16(p.Data[1])<<8
	o := int(link - p.Origin)
	blocks := uint16(p.Data[o+2]) | uint16(p.Data[o+3])<<8
	test.Equate(t, blocks, 2)
}
