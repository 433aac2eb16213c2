// Package video renders the memory mapped text window.
package video

import (
	"fmt"
	"image/color"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/alek/charset"
	"github.com/ezrec/alek/memory"
)

const (
	TEXT_BASE   = 700 // Logical address of the text window.
	TEXT_WIDTH  = 10  // Characters per row.
	TEXT_HEIGHT = 10  // Rows.

	BACKGROUND = 112 // Default background color.
	FOREGROUND = 889 // Default foreground color.
)

// Text is a character window over a run of physical cells, starting at the
// physical address of Base.
type Text struct {
	Base   memory.Word // Logical address of the first cell.
	Width  int         // Characters per row.
	Height int         // Rows.
	Wide   bool        // Characters render at double width.

	Background memory.Word // Digit color of the window.
	Foreground memory.Word // Digit color of the glyphs.
}

// NewText returns the default text window.
func NewText() *Text {
	return &Text{
		Base:       TEXT_BASE,
		Width:      TEXT_WIDTH,
		Height:     TEXT_HEIGHT,
		Wide:       true,
		Background: BACKGROUND,
		Foreground: FOREGROUND,
	}
}

// Defines returns an iter of defines for the window.
func (tv *Text) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"TEXT_BASE":   fmt.Sprintf("%d", tv.Base),
		"TEXT_WIDTH":  fmt.Sprintf("%d", tv.Width),
		"TEXT_HEIGHT": fmt.Sprintf("%d", tv.Height),
	})
}

// Size is the number of cells in the window.
func (tv *Text) Size() int {
	return tv.Width * tv.Height
}

// Physical returns the physical address of the cell at x, y.
func (tv *Text) Physical(mem *memory.Memory, x, y int) memory.Word {
	return memory.Wrap(int(mem.Physical(tv.Base)) + y*tv.Width + x)
}

// Contains reports whether a physical address is inside the window, and
// its position.
func (tv *Text) Contains(mem *memory.Memory, phys memory.Word) (x, y int, ok bool) {
	offset := int(memory.Wrap(int(phys) - int(mem.Physical(tv.Base))))
	if offset >= tv.Size() {
		return
	}

	return offset % tv.Width, offset / tv.Width, true
}

// Clear zeroes every cell of the window.
func (tv *Text) Clear(mem *memory.Memory) {
	for y := range tv.Height {
		for x := range tv.Width {
			mem.Cell[tv.Physical(mem, x, y)] = 0
		}
	}
}

// Cells returns the character codes of the window, row by row.
func (tv *Text) Cells(mem *memory.Memory) (cells []memory.Word) {
	cells = make([]memory.Word, 0, tv.Size())
	for y := range tv.Height {
		for x := range tv.Width {
			cells = append(cells, mem.Cell[tv.Physical(mem, x, y)])
		}
	}
	return
}

// Lines renders the rows of the window. Cells without a glyph are blank.
func (tv *Text) Lines(mem *memory.Memory) (lines []string) {
	cells := tv.Cells(mem)
	for y := range tv.Height {
		var line strings.Builder
		for _, code := range cells[y*tv.Width : (y+1)*tv.Width] {
			r, ok := charset.Glyph(code)
			if !ok {
				r = ' '
			}
			line.WriteRune(r)
		}
		lines = append(lines, line.String())
	}
	return
}

// Render returns the window as newline separated rows.
func (tv *Text) Render(mem *memory.Memory) string {
	return strings.Join(tv.Lines(mem), "\n")
}

// Each digit of a color word is an intensity level, 230 * (v/8)^0.85.
var levels = [10]uint8{0, 39, 70, 99, 127, 154, 180, 205, 230, 254}

// Color converts a digit color word, red in the hundreds digit, to RGB.
func Color(w memory.Word) color.RGBA {
	return color.RGBA{
		R: levels[w.Hundreds()%10],
		G: levels[w.Tens()],
		B: levels[w.Units()],
		A: 0xff,
	}
}
