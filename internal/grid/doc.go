// Package grid implements a grid geometry solver for rectangular layouts.
//
// Children occupy one or more contiguous rows and columns. Each row and
// column carries a minimum size, a weight that controls how it grows and
// shrinks, extra padding, and an optional uniform group. [Solve] resolves
// one axis at a time into trailing-edge offsets, and [PlaceSticky] turns a
// cell rectangle into the child's final rectangle.
//
// [Container] owns the constraint tables and managed children and ties the
// two together. Types are re-exported through the root grid package.
package grid
