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

package keyboard

// PETSCII control codes useful to a front-end key mapping.
const (
	Return      = 13
	CursorDown  = 17
	Home        = 19
	Delete      = 20
	CursorRight = 29
	CursorUp    = 145
	Clear       = 147
	Insert      = 148
	CursorLeft  = 157
)

// Encode converts a typed character to its PETSCII code. The boolean
// return is false for characters with no PETSCII equivalent.
//
// ASCII and PETSCII disagree about letter case. The codes ASCII calls
// lower case display as upper case glyphs on the unshifted machine, so
// letters swap case here and typed text comes out the way the machine
// expects.
func Encode(c rune) (uint8, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint8(c) - 0x20, true
	case c >= 'A' && c <= 'Z':
		return uint8(c) + 0x20, true
	case c >= ' ' && c <= '?':
		return uint8(c), true
	case c == '@' || c == '[' || c == ']':
		return uint8(c), true
	}

	switch c {
	case '\n':
		return Return, true
	case '\r':
		return CursorDown, true
	case '\f':
		return Clear, true
	case '£':
		return 92, true
	case '^', '↑':
		return 94, true
	case '←':
		return 95, true
	case '~', 'π':
		return 126, true
	case '|':
		return 221, true
	case '_':
		return 164, true
	case '`':
		return 39, true
	case '{':
		return 179, true
	case '}':
		return 235, true
	case '♠':
		return 97, true
	case '●':
		return 113, true
	case '♥':
		return 115, true
	case '○':
		return 119, true
	case '♣':
		return 120, true
	case '♦':
		return 122, true
	}

	return 0, false
}

// ToScreen converts a PETSCII code to the screen code the VIC displays.
// Inverse selects reverse video, which lives in the top bit of the code.
func ToScreen(petscii uint8, inverse bool) uint8 {
	var code uint8

	switch {
	case petscii <= 0x0f:
		code = petscii + 128
	case petscii <= 0x3f:
		code = petscii
	case petscii <= 0x5f:
		code = petscii - 64
	case petscii <= 0x7f:
		code = petscii - 32
	case petscii <= 0x9f:
		code = petscii + 64
	case petscii <= 0xbf:
		code = petscii - 64
	case petscii <= 0xfe:
		code = petscii - 128
	default:
		code = 94
	}

	if inverse {
		code |= 0x80
	}

	return code
}

// FromScreen converts a screen code back to PETSCII. Reverse video is
// discarded.
func FromScreen(screen uint8) uint8 {
	screen &= 0x7f
	switch {
	case screen <= 0x1f:
		return screen + 64
	case screen <= 0x3f:
		return screen
	}
	return screen + 32
}

// the glyphs of the two character sets over the text ranges. the shifted
// set swaps in lower case letters; upper case moves to codes the
// unshifted set spends on graphics.
var unshiftedText = []rune("@ABCDEFGHIJKLMNOPQRSTUVWXYZ[£]↑← !\"#$%&'()*+,-./0123456789:;<=>?")
var shiftedText = []rune("@abcdefghijklmnopqrstuvwxyz[£]↑← !\"#$%&'()*+,-./0123456789:;<=>?")

// recognisable glyphs from the graphics range
var graphicRunes = map[uint8]rune{
	0x40: '─',
	0x41: '♠',
	0x42: '│',
	0x43: '─',
	0x51: '●',
	0x53: '♥',
	0x57: '○',
	0x58: '♣',
	0x5a: '♦',
	0x5b: '┼',
	0x5e: 'π',
	0x60: ' ',
	0x66: '▒',
}

// ScreenRune gives a rune a terminal can display in place of a screen
// code. Reverse video is ignored here; that is the caller's style
// decision. Graphics characters without a close Unicode relative render
// as a middle dot.
func ScreenRune(screen uint8, shifted bool) rune {
	screen &= 0x7f

	if screen <= 0x3f {
		if shifted {
			return shiftedText[screen]
		}
		return unshiftedText[screen]
	}

	if shifted && screen >= 0x41 && screen <= 0x5a {
		return rune(screen)
	}

	if r, ok := graphicRunes[screen]; ok {
		return r
	}

	return '·'
}
