package grid

import "testing"

func testArrangement() *Arrangement {
	return &Arrangement{
		Content: NewRect(5, 5, 60, 30),
		Columns: []int{10, 10, 30, 60},
		Rows:    []int{10, 30},
	}
}

func TestArrangement_BBox(t *testing.T) {
	type tc struct {
		col, row, col2, row2 int
		want                 Rect
	}

	tests := map[string]tc{
		"first cell":          {0, 0, 0, 0, NewRect(5, 5, 10, 10)},
		"zero width column":   {1, 0, 1, 0, NewRect(15, 5, 0, 10)},
		"range":               {1, 0, 3, 1, NewRect(15, 5, 50, 30)},
		"reversed corners":    {3, 1, 1, 0, NewRect(15, 5, 50, 30)},
		"whole grid":          {0, 0, 3, 1, NewRect(5, 5, 60, 30)},
		"past the end":        {4, 2, 9, 9, NewRect(65, 35, 0, 0)},
		"negative start":      {-3, -1, 0, 0, NewRect(5, 5, 10, 10)},
		"range beyond bounds": {2, 1, 20, 20, NewRect(15, 15, 50, 20)},
	}

	a := testArrangement()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := a.BBox(tt.col, tt.row, tt.col2, tt.row2); got != tt.want {
				t.Errorf("BBox(%d, %d, %d, %d) = %+v, want %+v",
					tt.col, tt.row, tt.col2, tt.row2, got, tt.want)
			}
		})
	}

	if got := a.Cell(2, 1); got != NewRect(15, 15, 20, 20) {
		t.Errorf("Cell(2, 1) = %+v", got)
	}
}

func TestArrangement_Location(t *testing.T) {
	type tc struct {
		x, y     int
		col, row int
	}

	tests := map[string]tc{
		"origin":                  {5, 5, 0, 0},
		"before grid":             {4, 0, -1, -1},
		"zero width slot skipped": {15, 14, 2, 0},
		"last pixel":              {64, 34, 3, 1},
		"past the end":            {65, 35, 4, 2},
		"middle":                  {40, 20, 3, 1},
	}

	a := testArrangement()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			col, row := a.Location(tt.x, tt.y)
			if col != tt.col || row != tt.row {
				t.Errorf("Location(%d, %d) = (%d, %d), want (%d, %d)",
					tt.x, tt.y, col, row, tt.col, tt.row)
			}
		})
	}
}

func TestArrangement_Empty(t *testing.T) {
	a := &Arrangement{Content: NewRect(1, 1, 0, 0)}
	if got := a.BBox(0, 0, 2, 2); got != NewRect(1, 1, 0, 0) {
		t.Errorf("BBox on empty grid = %+v", got)
	}
	if col, row := a.Location(3, 3); col != 0 || row != 0 {
		t.Errorf("Location on empty grid = (%d, %d), want (0, 0)", col, row)
	}
}
