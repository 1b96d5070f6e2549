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

package keyboard_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/keyboard"
	"github.com/jetsetilly/gopher64/test"
)

func encode(t *testing.T, c rune, expected uint8) {
	t.Helper()
	d, ok := keyboard.Encode(c)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, d, expected)
}

func TestEncode(t *testing.T) {
	// letter case swaps between ASCII and PETSCII
	encode(t, 'a', 65)
	encode(t, 'z', 90)
	encode(t, 'A', 97)
	encode(t, 'Z', 122)

	// digits, space and common punctuation pass through
	encode(t, '3', 51)
	encode(t, ' ', 32)
	encode(t, '"', 34)
	encode(t, '?', 63)
	encode(t, '@', 64)

	encode(t, '{', 179)
	encode(t, '£', 92)
	encode(t, '\n', keyboard.Return)

	_, ok := keyboard.Encode('é')
	test.ExpectedFailure(t, ok)
	_, ok = keyboard.Encode('\t')
	test.ExpectedFailure(t, ok)
}

func TestScreenCodes(t *testing.T) {
	// PETSCII 65 is the letter A, screen code 1
	test.Equate(t, keyboard.ToScreen(65, false), 1)
	test.Equate(t, keyboard.ToScreen(65, true), 0x81)

	// the shifted letter range folds down to the graphics codes
	test.Equate(t, keyboard.ToScreen(97, false), 65)

	// space and punctuation are their own screen codes
	test.Equate(t, keyboard.ToScreen(0x20, false), 0x20)

	// the quasi-PETSCII code 255 is pi
	test.Equate(t, keyboard.ToScreen(0xff, false), 94)

	test.Equate(t, keyboard.FromScreen(1), 65)
	test.Equate(t, keyboard.FromScreen(0x81), 65)
	test.Equate(t, keyboard.FromScreen(0x20), 0x20)
	test.Equate(t, keyboard.FromScreen(0x41), 97)
}

func TestScreenRune(t *testing.T) {
	test.Equate(t, string(keyboard.ScreenRune(1, false)), "A")
	test.Equate(t, string(keyboard.ScreenRune(1, true)), "a")

	// reverse video does not change the glyph
	test.Equate(t, string(keyboard.ScreenRune(0x81, false)), "A")

	// code 0x41 is a card suit unshifted and a letter shifted
	test.Equate(t, string(keyboard.ScreenRune(0x41, false)), "♠")
	test.Equate(t, string(keyboard.ScreenRune(0x41, true)), "A")

	test.Equate(t, string(keyboard.ScreenRune(0x20, false)), " ")
	test.Equate(t, string(keyboard.ScreenRune(0x3f, false)), "?")
}
