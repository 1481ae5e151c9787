// Package gridfile loads grid layout descriptions from YAML or TOML files.
//
// A layout file declares the target size, row and column constraints and
// the children to place. [Load] parses and validates a file; [File.Build]
// turns it into a ready-to-arrange container.
package gridfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Common errors
var (
	ErrUnknownFormat  = errors.New("unknown layout file format")
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidValue   = errors.New("invalid value")
	ErrDuplicateName  = errors.New("duplicate child name")
	ErrDuplicateIndex = errors.New("slot configured twice")
	ErrDecode         = errors.New("cannot decode layout file")
)

// ConfigError is a layout file error with the offending field.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("layout error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("layout error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newError creates a ConfigError wrapping err.
func newError(field string, err error, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Message: fmt.Sprintf(format, args...), Err: err}
}

// Format is the encoding of a layout file.
type Format uint8

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns "yaml" or "toml".
func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// File is a layout description.
type File struct {
	// Width and Height are the area to arrange in. Zero means the natural
	// size on that axis.
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`

	// Inset is the container border in CSS shorthand: one value for all
	// sides, two for vertical and horizontal, or four for top, right,
	// bottom, left.
	Inset []int `yaml:"inset,omitempty" toml:"inset,omitempty"`

	Columns  []SlotSpec  `yaml:"columns,omitempty" toml:"columns,omitempty"`
	Rows     []SlotSpec  `yaml:"rows,omitempty" toml:"rows,omitempty"`
	Children []ChildSpec `yaml:"children" toml:"children"`
}

// SlotSpec configures one row or column.
type SlotSpec struct {
	Index   int    `yaml:"index" toml:"index"`
	MinSize int    `yaml:"minsize,omitempty" toml:"minsize,omitempty"`
	Weight  int    `yaml:"weight,omitempty" toml:"weight,omitempty"`
	Pad     int    `yaml:"pad,omitempty" toml:"pad,omitempty"`
	Uniform string `yaml:"uniform,omitempty" toml:"uniform,omitempty"`
}

// ChildSpec places one child.
type ChildSpec struct {
	Name       string `yaml:"name" toml:"name"`
	Column     int    `yaml:"column" toml:"column"`
	Row        int    `yaml:"row" toml:"row"`
	ColumnSpan int    `yaml:"columnspan,omitempty" toml:"columnspan,omitempty"`
	RowSpan    int    `yaml:"rowspan,omitempty" toml:"rowspan,omitempty"`

	// Width and Height are the requested content size.
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`

	// PadX and PadY take one value for both sides or two for
	// leading and trailing.
	PadX  []int `yaml:"padx,omitempty" toml:"padx,omitempty"`
	PadY  []int `yaml:"pady,omitempty" toml:"pady,omitempty"`
	IPadX int   `yaml:"ipadx,omitempty" toml:"ipadx,omitempty"`
	IPadY int   `yaml:"ipady,omitempty" toml:"ipady,omitempty"`

	Sticky string `yaml:"sticky,omitempty" toml:"sticky,omitempty"`
}

// Load reads, parses and validates the layout file at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes and validates a layout description. Unknown fields are
// rejected.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, newError("", ErrDecode, "%s: %v", format, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to nothing; it is still a valid empty layout.
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, newError("", ErrDecode, "%s: %v", format, err)
		}
	}

	f.normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// normalize brings names and uniform tags to NFC so that tags that look
// the same compare equal.
func (f *File) normalize() {
	for i := range f.Columns {
		f.Columns[i].Uniform = norm.NFC.String(f.Columns[i].Uniform)
	}
	for i := range f.Rows {
		f.Rows[i].Uniform = norm.NFC.String(f.Rows[i].Uniform)
	}
	for i := range f.Children {
		f.Children[i].Name = norm.NFC.String(strings.TrimSpace(f.Children[i].Name))
	}
}
