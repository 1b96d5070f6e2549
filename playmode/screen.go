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
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/hardware/vic"
)

// the visible sprite area begins at these hardware coordinates. used to
// place the sprite overlay on the character grid
const (
	spriteOriginX = 24
	spriteOriginY = 50
)

// memory as the overlay repaint sees it. the memory package's Peek
// function satisfies this.
type peeker interface {
	Peek(address uint16) (uint8, error)
}

// screen adapts the character matrix to a tcell terminal.
type screen struct {
	tcl tcell.Screen

	// top-left corner of the character matrix in terminal coordinates
	originX int
	originY int

	// character cells covered by the sprite overlay on the previous
	// frame. they are repainted before the overlay is drawn again
	overlay []int
}

func newScreen() (*screen, error) {
	tcl, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tcl.Init(); err != nil {
		return nil, err
	}
	tcl.HideCursor()

	scr := &screen{tcl: tcl}
	scr.layout()

	return scr, nil
}

func (scr *screen) close() {
	scr.tcl.Fini()
}

// layout centers the character matrix in the terminal.
func (scr *screen) layout() {
	w, h := scr.tcl.Size()

	scr.originX = (w - memorymap.Columns) / 2
	if scr.originX < 0 {
		scr.originX = 0
	}
	scr.originY = (h - memorymap.Rows) / 2
	if scr.originY < 0 {
		scr.originY = 0
	}
}

// color converts a four bit color register value to the palette color.
func color(c uint8) tcell.Color {
	rgb := vic.Palette[c&0x0f]
	return tcell.NewRGBColor(int32(rgb.Red), int32(rgb.Green), int32(rgb.Blue))
}

// drawCell puts one screen cell on the terminal.
func (scr *screen) drawCell(v *vic.VIC, index int, char uint8, col uint8) {
	x := scr.originX + index%memorymap.Columns
	y := scr.originY + index/memorymap.Columns

	style := tcell.StyleDefault.
		Foreground(color(col)).
		Background(color(v.Background()))

	// the top bit of a screen code selects reverse video
	if char&0x80 == 0x80 {
		style = style.Reverse(true)
	}

	scr.tcl.SetContent(x, y, keyboard.ScreenRune(char&0x7f, v.Shifted()), nil, style)
}

// render brings the terminal up to date with the machine.
func (scr *screen) render(v *vic.VIC, mem peeker) {
	// repaint cells the sprite overlay covered last frame. the dirty list
	// knows nothing about the overlay
	for _, index := range scr.overlay {
		ch, _ := mem.Peek(memorymap.OriginScreen + uint16(index))
		col, _ := mem.Peek(memorymap.OriginColorRAM + uint16(index))
		scr.drawCell(v, index, ch, col)
	}
	scr.overlay = scr.overlay[:0]

	for _, cell := range v.Dirty() {
		scr.drawCell(v, cell.Index, cell.Char, cell.Color)
	}

	scr.border(v)
	scr.sprites(v)
	scr.tcl.Show()
}

// repaint redraws everything, border included. used after a terminal
// resize.
func (scr *screen) repaint(v *vic.VIC) {
	scr.tcl.Clear()
	scr.layout()

	snp := v.Snapshot()
	for i := 0; i < memorymap.Cells; i++ {
		scr.drawCell(v, i, snp.Chars[i], snp.Colors[i])
	}

	scr.border(v)
	scr.sprites(v)
	scr.tcl.Sync()
}

// border fills the terminal outside the character matrix with the border
// color.
func (scr *screen) border(v *vic.VIC) {
	w, h := scr.tcl.Size()
	style := tcell.StyleDefault.Background(color(v.Border()))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inside := x >= scr.originX && x < scr.originX+memorymap.Columns &&
				y >= scr.originY && y < scr.originY+memorymap.Rows
			if !inside {
				scr.tcl.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// sprites draws the coarse sprite overlay. an enabled sprite appears as a
// colored block at its position on the character grid.
func (scr *screen) sprites(v *vic.VIC) {
	for _, sprite := range v.Sprites() {
		if !sprite.Enabled {
			continue
		}

		cx := (sprite.X - spriteOriginX) / 8
		cy := (int(sprite.Y) - spriteOriginY) / 8
		if cx < 0 || cx >= memorymap.Columns || cy < 0 || cy >= memorymap.Rows {
			continue
		}

		index := cy*memorymap.Columns + cx
		scr.overlay = append(scr.overlay, index)

		style := tcell.StyleDefault.
			Foreground(color(sprite.Color)).
			Background(color(v.Background()))
		scr.tcl.SetContent(scr.originX+cx, scr.originY+cy, '█', nil, style)
	}
}
