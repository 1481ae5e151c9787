// Package render draws arranged grids as text, one character cell per
// layout unit.
package render

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/grindlemire/go-grid/internal/grid"
)

// continuation marks the second cell of a wide rune.
const continuation rune = 0

// Canvas is a fixed-size 2D grid of runes.
type Canvas struct {
	cells  []rune
	width  int
	height int
}

// NewCanvas creates a canvas filled with spaces. Negative sizes become 0.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	cells := make([]rune, w*h)
	for i := range cells {
		cells[i] = ' '
	}
	return &Canvas{cells: cells, width: w, height: h}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// Rect returns the canvas bounds as a Rect starting at (0, 0).
func (c *Canvas) Rect() grid.Rect {
	return grid.NewRect(0, 0, c.width, c.height)
}

// idx converts (x, y) to a flat index, or -1 when out of bounds.
func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Rune returns the rune at (x, y), or 0 when out of bounds.
func (c *Canvas) Rune(x, y int) rune {
	i := c.idx(x, y)
	if i < 0 {
		return 0
	}
	return c.cells[i]
}

// SetRune writes r at (x, y). Wide runes take two cells and are replaced
// by a space when only one cell is left on the line.
func (c *Canvas) SetRune(x, y int, r rune) {
	i := c.idx(x, y)
	if i < 0 {
		return
	}

	// Writing over half of a wide rune blanks the other half.
	if c.cells[i] == continuation && x > 0 {
		c.cells[i-1] = ' '
	}
	if x+1 < c.width && c.cells[i+1] == continuation {
		c.cells[i+1] = ' '
	}

	if RuneWidth(r) == 2 {
		if x+1 >= c.width {
			c.cells[i] = ' '
			return
		}
		if x+2 < c.width && c.cells[i+2] == continuation {
			c.cells[i+2] = ' '
		}
		c.cells[i] = r
		c.cells[i+1] = continuation
		return
	}
	c.cells[i] = r
}

// SetString writes s starting at (x, y), stopping before the text would
// pass maxWidth columns. It returns the number of columns used.
func (c *Canvas) SetString(x, y int, s string, maxWidth int) int {
	used := 0
	for _, r := range s {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > maxWidth {
			break
		}
		c.SetRune(x+used, y, r)
		used += w
	}
	return used
}

// Fill sets every cell of rect to r.
func (c *Canvas) Fill(rect grid.Rect, r rune) {
	rect = rect.Intersect(c.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c.SetRune(x, y, r)
		}
	}
}

// String returns the canvas as lines with trailing spaces removed.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		row := c.cells[y*c.width : (y+1)*c.width]
		line := make([]rune, 0, len(row))
		for _, r := range row {
			if r != continuation {
				line = append(line, r)
			}
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RuneWidth returns the number of columns r occupies: 2 for East Asian
// wide and fullwidth runes, 0 for control runes, otherwise 1.
func RuneWidth(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
