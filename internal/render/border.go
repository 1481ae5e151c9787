package render

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-grid/internal/grid"
)

// BorderStyle selects the characters boxes are drawn with.
type BorderStyle int

const (
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle BorderStyle = iota
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (╭, ╮, ╰, ╯)
	BorderRounded
	// BorderASCII uses plain +, - and |.
	BorderASCII
)

var borderNames = map[string]BorderStyle{
	"single":  BorderSingle,
	"double":  BorderDouble,
	"rounded": BorderRounded,
	"ascii":   BorderASCII,
}

// ParseBorder returns the style with the given name.
func ParseBorder(name string) (BorderStyle, error) {
	b, ok := borderNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown border style %q (want single, double, rounded or ascii)", name)
	}
	return b, nil
}

// BorderChars holds the characters used to draw a box and the slot guides.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune

	// Guide marks slot boundaries.
	Guide rune

	// Solid fills boxes too small to outline.
	Solid rune
}

// Chars returns the characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{
			TopLeft: '╔', Top: '═', TopRight: '╗',
			Left: '║', Right: '║',
			BottomLeft: '╚', Bottom: '═', BottomRight: '╝',
			Guide: '·', Solid: '█',
		}
	case BorderRounded:
		return BorderChars{
			TopLeft: '╭', Top: '─', TopRight: '╮',
			Left: '│', Right: '│',
			BottomLeft: '╰', Bottom: '─', BottomRight: '╯',
			Guide: '·', Solid: '█',
		}
	case BorderASCII:
		return BorderChars{
			TopLeft: '+', Top: '-', TopRight: '+',
			Left: '|', Right: '|',
			BottomLeft: '+', Bottom: '-', BottomRight: '+',
			Guide: '.', Solid: '#',
		}
	default:
		return BorderChars{
			TopLeft: '┌', Top: '─', TopRight: '┐',
			Left: '│', Right: '│',
			BottomLeft: '└', Bottom: '─', BottomRight: '┘',
			Guide: '·', Solid: '█',
		}
	}
}

// DrawBox outlines rect on the canvas. Boxes clipped below 2x2 are filled
// solid instead.
func DrawBox(c *Canvas, rect grid.Rect, border BorderStyle) {
	chars := border.Chars()

	rect = rect.Intersect(c.Rect())
	if rect.IsEmpty() {
		return
	}
	if rect.Width < 2 || rect.Height < 2 {
		c.Fill(rect, chars.Solid)
		return
	}

	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	c.SetRune(left, top, chars.TopLeft)
	c.SetRune(right, top, chars.TopRight)
	c.SetRune(left, bottom, chars.BottomLeft)
	c.SetRune(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		c.SetRune(x, top, chars.Top)
		c.SetRune(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetRune(left, y, chars.Left)
		c.SetRune(right, y, chars.Right)
	}
}
