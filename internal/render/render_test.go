package render

import (
	"testing"

	"github.com/grindlemire/go-grid/internal/grid"
)

type box struct {
	size grid.Size
	rect grid.Rect
}

func (b *box) RequestedSize() grid.Size { return b.size }
func (b *box) SetPlacement(r grid.Rect) { b.rect = r }

func TestArrangement(t *testing.T) {
	type tc struct {
		build func(c *grid.Container, names map[grid.Managed]string)
		w, h  int
		opts  Options
		want  string
	}

	tests := map[string]tc{
		"two filled cells": {
			build: func(c *grid.Container, names map[grid.Managed]string) {
				a := &box{size: grid.Size{Width: 6, Height: 3}}
				b := &box{size: grid.Size{Width: 4, Height: 3}}
				c.Add(a, grid.Placement{Sticky: grid.StickyAll})
				c.Add(b, grid.Placement{Column: 1, Sticky: grid.StickyAll})
				names[a], names[b] = "a", "b"
			},
			w: 10, h: 3,
			opts: Options{Border: BorderASCII},
			want: "+a---++b-+\n" +
				"|    ||  |\n" +
				"+----++--+\n",
		},
		"guides around a centered child": {
			build: func(c *grid.Container, names map[grid.Managed]string) {
				c.ColumnConfigure(0, grid.SlotConstraint{MinSize: 5})
				c.ColumnConfigure(1, grid.SlotConstraint{MinSize: 5})
				c.RowConfigure(0, grid.SlotConstraint{MinSize: 3})
				a := &box{size: grid.Size{Width: 4, Height: 2}}
				c.Add(a, grid.Placement{})
				names[a] = "a"
			},
			w: 10, h: 3,
			opts: Options{Border: BorderASCII, Guides: true},
			want: "+a-+ .\n" +
				"+--+ .\n" +
				"     .\n",
		},
		"label truncated to box": {
			build: func(c *grid.Container, names map[grid.Managed]string) {
				a := &box{size: grid.Size{Width: 3, Height: 2}}
				c.Add(a, grid.Placement{})
				names[a] = "xyz"
			},
			w: 3, h: 2,
			opts: Options{Border: BorderSingle},
			want: "┌x┐\n" +
				"└─┘\n",
		},
		"thin child drawn solid": {
			build: func(c *grid.Container, names map[grid.Managed]string) {
				a := &box{size: grid.Size{Width: 4, Height: 1}}
				c.Add(a, grid.Placement{})
				names[a] = "a"
			},
			w: 4, h: 1,
			opts: Options{Border: BorderASCII},
			want: "####\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := grid.NewContainer()
			names := map[grid.Managed]string{}
			tt.build(c, names)

			got := Arrangement(c.Arrange(tt.w, tt.h), func(m grid.Managed) string { return names[m] }, tt.opts)
			if got != tt.want {
				t.Errorf("Arrangement() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestCanvas_WideRunes(t *testing.T) {
	c := NewCanvas(5, 1)
	if n := c.SetString(0, 0, "日本語", 3); n != 2 {
		t.Errorf("SetString() used %d columns, want 2", n)
	}
	if got := c.String(); got != "日\n" {
		t.Errorf("String() = %q, want %q", got, "日\n")
	}

	// Overwriting the second half blanks the first.
	c.SetRune(1, 0, 'x')
	if got := c.String(); got != " x\n" {
		t.Errorf("String() = %q, want %q", got, " x\n")
	}

	// A wide rune in the last column does not fit.
	c.SetRune(4, 0, '本')
	if got := c.Rune(4, 0); got != ' ' {
		t.Errorf("Rune(4, 0) = %q, want space", got)
	}
}

func TestCanvas_Bounds(t *testing.T) {
	c := NewCanvas(-1, 2)
	if c.Width() != 0 || c.Height() != 2 {
		t.Fatalf("NewCanvas(-1, 2) = %dx%d", c.Width(), c.Height())
	}
	c = NewCanvas(2, 2)
	c.SetRune(5, 5, 'x')
	c.Fill(grid.NewRect(-1, -1, 2, 2), '#')
	if got := c.String(); got != "#\n\n" {
		t.Errorf("String() = %q", got)
	}
	if r := c.Rune(-1, 0); r != 0 {
		t.Errorf("Rune out of bounds = %q, want 0", r)
	}
}

func TestParseBorder(t *testing.T) {
	tests := map[string]BorderStyle{
		"single":  BorderSingle,
		"Double":  BorderDouble,
		"rounded": BorderRounded,
		"ASCII":   BorderASCII,
	}
	for name, want := range tests {
		got, err := ParseBorder(name)
		if err != nil || got != want {
			t.Errorf("ParseBorder(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseBorder("dotted"); err == nil {
		t.Error("ParseBorder(dotted) succeeded")
	}
}
