// Package grid provides a grid geometry manager for rectangular layouts.
//
// Users import this single package for the public API: the per-axis
// constraint solver, sticky placement, and the Container that owns row and
// column constraints and places managed children.
package grid
