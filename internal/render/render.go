package render

import "github.com/grindlemire/go-grid/internal/grid"

// Options control how an arrangement is drawn.
type Options struct {
	Border BorderStyle

	// Guides marks the boundaries between slots.
	Guides bool
}

// Labeler names a child for display. An empty name leaves the box
// unlabeled.
type Labeler func(grid.Managed) string

// Draw paints a onto c: slot guides first, then every child outlined and
// labeled, in the order the children were added.
func Draw(c *Canvas, a *grid.Arrangement, label Labeler, opts Options) {
	chars := opts.Border.Chars()
	if opts.Guides {
		drawGuides(c, a, chars.Guide)
	}

	for _, child := range a.Children() {
		r, ok := a.Placement(child)
		if !ok || r.IsEmpty() {
			continue
		}
		DrawBox(c, r, opts.Border)
		if label == nil || r.Width < 3 || r.Height < 2 {
			continue
		}
		if name := label(child); name != "" {
			c.SetString(r.X+1, r.Y, name, r.Width-2)
		}
	}
}

// drawGuides marks interior column and row boundaries inside the content
// area.
func drawGuides(c *Canvas, a *grid.Arrangement, guide rune) {
	content := a.Content
	for i := 0; i+1 < len(a.Columns); i++ {
		x := content.X + a.Columns[i]
		if x >= content.Right() {
			break
		}
		c.Fill(grid.NewRect(x, content.Y, 1, content.Height), guide)
	}
	for i := 0; i+1 < len(a.Rows); i++ {
		y := content.Y + a.Rows[i]
		if y >= content.Bottom() {
			break
		}
		c.Fill(grid.NewRect(content.X, y, content.Width, 1), guide)
	}
}

// Arrangement draws a on a canvas covering its bounds and returns the
// text.
func Arrangement(a *grid.Arrangement, label Labeler, opts Options) string {
	c := NewCanvas(a.Bounds.Right(), a.Bounds.Bottom())
	Draw(c, a, label, opts)
	return c.String()
}
