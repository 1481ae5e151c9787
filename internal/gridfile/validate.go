package gridfile

import (
	"fmt"

	"github.com/grindlemire/go-grid/internal/grid"
)

// Validate checks f for values the grid would reject. The first problem
// found is returned as a *ConfigError.
func (f *File) Validate() error {
	if f.Width < 0 {
		return newError("width", ErrInvalidValue, "must not be negative, got %d", f.Width)
	}
	if f.Height < 0 {
		return newError("height", ErrInvalidValue, "must not be negative, got %d", f.Height)
	}
	if _, err := f.insetEdges(); err != nil {
		return err
	}
	if err := validateSlots("columns", f.Columns); err != nil {
		return err
	}
	if err := validateSlots("rows", f.Rows); err != nil {
		return err
	}

	names := make(map[string]int, len(f.Children))
	for i, c := range f.Children {
		field := fmt.Sprintf("children[%d]", i)
		if c.Name == "" {
			return newError(field+".name", ErrMissingField, "child needs a name")
		}
		if prev, ok := names[c.Name]; ok {
			return newError(field+".name", ErrDuplicateName, "%q already used by children[%d]", c.Name, prev)
		}
		names[c.Name] = i
		if err := c.validate(field); err != nil {
			return err
		}
	}
	return nil
}

func validateSlots(field string, slots []SlotSpec) error {
	seen := make(map[int]int, len(slots))
	for i, s := range slots {
		f := fmt.Sprintf("%s[%d]", field, i)
		if s.Index < 0 || s.Index >= grid.MaxSlot {
			return newError(f+".index", ErrInvalidValue, "must be in [0, %d), got %d", grid.MaxSlot, s.Index)
		}
		if prev, ok := seen[s.Index]; ok {
			return newError(f+".index", ErrDuplicateIndex, "index %d already configured by %s[%d]", s.Index, field, prev)
		}
		seen[s.Index] = i
		switch {
		case s.MinSize < 0:
			return newError(f+".minsize", ErrInvalidValue, "must not be negative, got %d", s.MinSize)
		case s.Weight < 0:
			return newError(f+".weight", ErrInvalidValue, "must not be negative, got %d", s.Weight)
		case s.Pad < 0:
			return newError(f+".pad", ErrInvalidValue, "must not be negative, got %d", s.Pad)
		}
	}
	return nil
}

func (c ChildSpec) validate(field string) error {
	if c.Column < 0 {
		return newError(field+".column", ErrInvalidValue, "must not be negative, got %d", c.Column)
	}
	if c.Row < 0 {
		return newError(field+".row", ErrInvalidValue, "must not be negative, got %d", c.Row)
	}
	if c.ColumnSpan < 0 {
		return newError(field+".columnspan", ErrInvalidValue, "must not be negative, got %d", c.ColumnSpan)
	}
	if c.RowSpan < 0 {
		return newError(field+".rowspan", ErrInvalidValue, "must not be negative, got %d", c.RowSpan)
	}
	if c.Column >= grid.MaxSlot {
		return newError(field+".column", ErrInvalidValue, "must be below %d, got %d", grid.MaxSlot, c.Column)
	}
	if c.Row >= grid.MaxSlot {
		return newError(field+".row", ErrInvalidValue, "must be below %d, got %d", grid.MaxSlot, c.Row)
	}
	p := c.placement()
	if p.ColumnSpan > grid.MaxSlot-p.Column {
		return newError(field+".columnspan", ErrInvalidValue, "grid ends past column %d", grid.MaxSlot)
	}
	if p.RowSpan > grid.MaxSlot-p.Row {
		return newError(field+".rowspan", ErrInvalidValue, "grid ends past row %d", grid.MaxSlot)
	}
	if c.Width < 0 {
		return newError(field+".width", ErrInvalidValue, "must not be negative, got %d", c.Width)
	}
	if c.Height < 0 {
		return newError(field+".height", ErrInvalidValue, "must not be negative, got %d", c.Height)
	}
	if _, _, err := padPair(field+".padx", c.PadX); err != nil {
		return err
	}
	if _, _, err := padPair(field+".pady", c.PadY); err != nil {
		return err
	}
	if c.IPadX < 0 {
		return newError(field+".ipadx", ErrInvalidValue, "must not be negative, got %d", c.IPadX)
	}
	if c.IPadY < 0 {
		return newError(field+".ipady", ErrInvalidValue, "must not be negative, got %d", c.IPadY)
	}
	if _, err := grid.ParseSticky(c.Sticky); err != nil {
		return newError(field+".sticky", err, "%v", err)
	}
	return nil
}

// insetEdges expands the inset shorthand.
func (f *File) insetEdges() (grid.Edges, error) {
	for _, v := range f.Inset {
		if v < 0 {
			return grid.Edges{}, newError("inset", ErrInvalidValue, "must not be negative, got %v", f.Inset)
		}
	}
	switch len(f.Inset) {
	case 0:
		return grid.Edges{}, nil
	case 1:
		return grid.EdgeAll(f.Inset[0]), nil
	case 2:
		return grid.EdgeSymmetric(f.Inset[0], f.Inset[1]), nil
	case 4:
		return grid.EdgeTRBL(f.Inset[0], f.Inset[1], f.Inset[2], f.Inset[3]), nil
	}
	return grid.Edges{}, newError("inset", ErrInvalidValue, "takes 1, 2 or 4 values, got %d", len(f.Inset))
}

// padPair expands a one or two value padding list into leading and
// trailing amounts.
func padPair(field string, v []int) (lead, trail int, err error) {
	switch len(v) {
	case 0:
	case 1:
		lead, trail = v[0], v[0]
	case 2:
		lead, trail = v[0], v[1]
	default:
		return 0, 0, newError(field, ErrInvalidValue, "takes 1 or 2 values, got %d", len(v))
	}
	if lead < 0 || trail < 0 {
		return 0, 0, newError(field, ErrInvalidValue, "must not be negative, got %v", v)
	}
	return lead, trail, nil
}
