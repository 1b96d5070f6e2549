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
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/gopher64/hardware/keyboard"
	"github.com/jetsetilly/gopher64/test"
)

func TestEncodeKey(t *testing.T) {
	// a typed letter passes through the PETSCII case swap
	v, ok := encodeKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	test.Equate(t, ok, true)
	test.Equate(t, v, 0x41)

	v, ok = encodeKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	test.Equate(t, ok, true)
	test.Equate(t, v, keyboard.Return)

	v, ok = encodeKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	test.Equate(t, ok, true)
	test.Equate(t, v, keyboard.CursorUp)

	v, ok = encodeKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	test.Equate(t, ok, true)
	test.Equate(t, v, keyboard.Delete)

	// function keys have no mapping
	_, ok = encodeKey(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone))
	test.Equate(t, ok, false)
}
