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
	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/gopher64/hardware/keyboard"
)

// handleEvent reacts to one tcell event. the return value is true when the
// user has asked to quit.
func (pl *playmode) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		pl.scr.repaint(pl.c64.VIC)

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape {
			return true
		}
		if petscii, ok := encodeKey(ev); ok {
			pl.c64.Keyboard.Inject(petscii)
		}
	}

	return false
}

// encodeKey converts a tcell key event to its PETSCII code.
func encodeKey(ev *tcell.EventKey) (uint8, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return keyboard.Encode(ev.Rune())
	case tcell.KeyEnter:
		return keyboard.Return, true
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return keyboard.Delete, true
	case tcell.KeyUp:
		return keyboard.CursorUp, true
	case tcell.KeyDown:
		return keyboard.CursorDown, true
	case tcell.KeyLeft:
		return keyboard.CursorLeft, true
	case tcell.KeyRight:
		return keyboard.CursorRight, true
	case tcell.KeyHome:
		return keyboard.Home, true
	case tcell.KeyInsert:
		return keyboard.Insert, true
	case tcell.KeyCtrlL:
		return keyboard.Clear, true
	}

	return 0, false
}
